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

package surface

import (
	"image"
	"image/color"
	"io"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/radial"
	"seehuhn.de/go/radial/raster"
)

// Image is a canvas backed by an in-memory RGBA image.
type Image struct {
	img *image.RGBA
	bg  color.NRGBA
	r   *raster.Rasteriser
}

var _ radial.Canvas = (*Image)(nil)

// NewImage returns a width×height canvas filled with bg.
func NewImage(width, height int, bg color.NRGBA) *Image {
	width, height = max(width, 0), max(height, 0)
	s := &Image{
		img: image.NewRGBA(image.Rect(0, 0, width, height)),
		bg:  bg,
		r: raster.NewRasteriser(rect.Rect{
			URx: float64(width),
			URy: float64(height),
		}),
	}
	s.Clear()
	return s
}

// Size implements radial.Canvas.
func (s *Image) Size() (width, height float64) {
	b := s.img.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

// Clear paints the whole canvas with the background colour.
func (s *Image) Clear() {
	fillBackground(s.img, s.bg)
}

// DrawPath implements radial.Canvas.
func (s *Image) DrawPath(p *path.Data, c color.NRGBA) {
	if c.A == 0 {
		return
	}
	s.r.Fill(p, raster.NonZero, func(y, xMin int, coverage []float32) {
		s.blend(y, xMin, coverage, c)
	})
}

// DrawCircle implements radial.Canvas.
func (s *Image) DrawCircle(center vec.Vec2, radius float64, c color.NRGBA) {
	s.DrawPath(radial.Circle(center, radius), c)
}

// blend composites c, scaled by coverage, over one span of a row.
func (s *Image) blend(y, xMin int, coverage []float32, c color.NRGBA) {
	alpha := float32(c.A) / 255
	sr, sg, sb := float32(c.R), float32(c.G), float32(c.B)

	off := s.img.PixOffset(xMin, y)
	row := s.img.Pix[off : off+4*len(coverage)]
	for i, cov := range coverage {
		a := cov * alpha
		ia := 1 - a
		px := row[4*i : 4*i+4 : 4*i+4]
		px[0] = uint8(sr*a + float32(px[0])*ia + 0.5)
		px[1] = uint8(sg*a + float32(px[1])*ia + 0.5)
		px[2] = uint8(sb*a + float32(px[2])*ia + 0.5)
		px[3] = uint8(255*a + float32(px[3])*ia + 0.5)
	}
}

// RGBA returns the underlying image. It is shared with the canvas.
func (s *Image) RGBA() *image.RGBA {
	return s.img
}

// WritePNG encodes the current canvas contents as PNG.
func (s *Image) WritePNG(w io.Writer) error {
	return encodePNG(w, s.img)
}
