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
	"math"

	"github.com/gogpu/gg"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/radial"
)

// GG is a canvas which draws through a gogpu/gg context.
//
// Fill errors reported by gg are not returned from the drawing methods;
// the first one is kept and returned by Err and Close.
type GG struct {
	dc  *gg.Context
	bg  color.NRGBA
	err error
}

var _ radial.Canvas = (*GG)(nil)

// NewGG returns a width×height canvas filled with bg.
func NewGG(width, height int, bg color.NRGBA) *GG {
	s := &GG{
		dc: gg.NewContext(max(width, 0), max(height, 0)),
		bg: bg,
	}
	s.dc.SetFillRule(gg.FillRuleNonZero)
	s.Clear()
	return s
}

// Size implements radial.Canvas.
func (s *GG) Size() (width, height float64) {
	return float64(s.dc.Width()), float64(s.dc.Height())
}

// Clear paints the whole canvas with the background colour.
func (s *GG) Clear() {
	s.dc.ClearWithColor(gg.FromColor(s.bg))
}

// DrawPath implements radial.Canvas.
func (s *GG) DrawPath(p *path.Data, c color.NRGBA) {
	if c.A == 0 || p == nil || len(p.Cmds) == 0 {
		return
	}
	s.dc.ClearPath()
	walk(p, func(cmd path.Command, pts []vec.Vec2) {
		switch cmd {
		case path.CmdMoveTo:
			s.dc.MoveTo(pts[0].X, pts[0].Y)
		case path.CmdLineTo:
			s.dc.LineTo(pts[0].X, pts[0].Y)
		case path.CmdQuadTo:
			s.dc.QuadraticTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y)
		case path.CmdCubeTo:
			s.dc.CubicTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
		case path.CmdClose:
			s.dc.ClosePath()
		}
	})
	s.fill(c)
}

// DrawCircle implements radial.Canvas.
func (s *GG) DrawCircle(center vec.Vec2, radius float64, c color.NRGBA) {
	// gg does not reject non-finite coordinates
	if c.A == 0 || !(radius > 0) || math.IsInf(radius+center.X+center.Y, 0) ||
		math.IsNaN(radius+center.X+center.Y) {
		return
	}
	s.dc.ClearPath()
	s.dc.DrawCircle(center.X, center.Y, radius)
	s.fill(c)
}

func (s *GG) fill(c color.NRGBA) {
	s.dc.SetColor(c)
	if err := s.dc.Fill(); err != nil && s.err == nil {
		s.err = err
		radial.Logger().Warn("gg fill failed", "error", err)
	}
}

// Image returns a snapshot of the canvas.
func (s *GG) Image() image.Image {
	return s.dc.Image()
}

// SavePNG writes the canvas to a PNG file.
func (s *GG) SavePNG(name string) error {
	return s.dc.SavePNG(name)
}

// Err returns the first drawing error, if any.
func (s *GG) Err() error {
	return s.err
}

// Close releases the gg context and returns the first drawing error.
func (s *GG) Close() error {
	err := s.dc.Close()
	if s.err != nil {
		return s.err
	}
	return err
}
