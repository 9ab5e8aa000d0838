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

	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/radial"
)

// Vector is a canvas which rasterises with golang.org/x/image/vector.
type Vector struct {
	img *image.RGBA
	bg  color.NRGBA
	z   *vector.Rasterizer
}

var _ radial.Canvas = (*Vector)(nil)

// NewVector returns a width×height canvas filled with bg.
func NewVector(width, height int, bg color.NRGBA) *Vector {
	width, height = max(width, 0), max(height, 0)
	s := &Vector{
		img: image.NewRGBA(image.Rect(0, 0, width, height)),
		bg:  bg,
		z:   vector.NewRasterizer(width, height),
	}
	s.Clear()
	return s
}

// Size implements radial.Canvas.
func (s *Vector) Size() (width, height float64) {
	b := s.img.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

// Clear paints the whole canvas with the background colour.
func (s *Vector) Clear() {
	fillBackground(s.img, s.bg)
}

// DrawPath implements radial.Canvas.
func (s *Vector) DrawPath(p *path.Data, c color.NRGBA) {
	if c.A == 0 || p == nil || len(p.Cmds) == 0 {
		return
	}
	b := s.img.Bounds()
	s.z.Reset(b.Dx(), b.Dy())

	open := false
	walk(p, func(cmd path.Command, pts []vec.Vec2) {
		switch cmd {
		case path.CmdMoveTo:
			if open {
				s.z.ClosePath()
			}
			s.z.MoveTo(float32(pts[0].X), float32(pts[0].Y))
			open = true
		case path.CmdLineTo:
			s.z.LineTo(float32(pts[0].X), float32(pts[0].Y))
		case path.CmdQuadTo:
			s.z.QuadTo(
				float32(pts[0].X), float32(pts[0].Y),
				float32(pts[1].X), float32(pts[1].Y))
		case path.CmdCubeTo:
			s.z.CubeTo(
				float32(pts[0].X), float32(pts[0].Y),
				float32(pts[1].X), float32(pts[1].Y),
				float32(pts[2].X), float32(pts[2].Y))
		case path.CmdClose:
			s.z.ClosePath()
			open = false
		}
	})
	if open {
		s.z.ClosePath()
	}

	s.z.Draw(s.img, b, image.NewUniform(c), image.Point{})
}

// DrawCircle implements radial.Canvas.
func (s *Vector) DrawCircle(center vec.Vec2, radius float64, c color.NRGBA) {
	s.DrawPath(radial.Circle(center, radius), c)
}

// RGBA returns the underlying image. It is shared with the canvas.
func (s *Vector) RGBA() *image.RGBA {
	return s.img
}

// WritePNG encodes the current canvas contents as PNG.
func (s *Vector) WritePNG(w io.Writer) error {
	return encodePNG(w, s.img)
}
