// seehuhn.de/go/radial - animated radial charts
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package surface provides implementations of radial.Canvas.
//
//   - [Image] fills paths with the rasteriser from the raster package.
//   - [Vector] uses golang.org/x/image/vector.
//   - [GG] draws through a github.com/gogpu/gg context.
//   - [PDF] writes vector output to a single-page PDF file.
//
// The raster backends composite in premultiplied RGBA; they agree with
// each other up to anti-aliasing differences along edges.
package surface

import (
	"image"
	"image/color"
	"image/png"
	"io"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// walk calls fn for every segment of p. The point slice aliases p.Coords.
func walk(p *path.Data, fn func(cmd path.Command, pts []vec.Vec2)) {
	if p == nil {
		return
	}
	k := 0
	for _, cmd := range p.Cmds {
		var n int
		switch cmd {
		case path.CmdMoveTo, path.CmdLineTo:
			n = 1
		case path.CmdQuadTo:
			n = 2
		case path.CmdCubeTo:
			n = 3
		}
		fn(cmd, p.Coords[k:k+n])
		k += n
	}
}

// fillBackground paints every pixel of img with bg.
func fillBackground(img *image.RGBA, bg color.NRGBA) {
	r, g, b, a := bg.RGBA()
	pr, pg, pb, pa := uint8(r>>8), uint8(g>>8), uint8(b>>8), uint8(a>>8)
	pix := img.Pix
	for i := 0; i+3 < len(pix); i += 4 {
		pix[i], pix[i+1], pix[i+2], pix[i+3] = pr, pg, pb, pa
	}
}

// encodePNG writes img to w in PNG format.
func encodePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}
