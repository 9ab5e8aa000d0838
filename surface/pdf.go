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
	"image/color"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	pdfcolor "seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/radial"
)

// PDF is a canvas which writes a single PDF page.
// One unit of the canvas is one PDF point.
//
// PDF has no notion of the alpha of a fill colour without extended
// graphics state, so translucent colours are pre-blended onto the
// background colour.
type PDF struct {
	page          *document.Page
	width, height float64
	bg            color.NRGBA
}

var _ radial.Canvas = (*PDF)(nil)

// NewPDF creates the file fileName and returns a canvas for its only
// page. The caller must call Close to finish the file.
func NewPDF(fileName string, width, height float64, bg color.NRGBA) (*PDF, error) {
	paper := &pdf.Rectangle{URx: width, URy: height}
	page, err := document.CreateSinglePage(fileName, paper, pdf.V1_7, nil)
	if err != nil {
		return nil, err
	}

	s := &PDF{page: page, width: width, height: height, bg: bg}
	s.fillRect(s.bg)

	// PDF has the origin at the bottom left; charts use the top left.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, height})
	return s, nil
}

// Size implements radial.Canvas.
func (s *PDF) Size() (width, height float64) {
	return s.width, s.height
}

// DrawPath implements radial.Canvas.
func (s *PDF) DrawPath(p *path.Data, c color.NRGBA) {
	if c.A == 0 || p == nil || len(p.Cmds) == 0 {
		return
	}
	// colour operators are not allowed inside a path object
	s.page.SetFillColor(s.deviceColor(c))

	var cur, start vec.Vec2
	walk(p, func(cmd path.Command, pts []vec.Vec2) {
		switch cmd {
		case path.CmdMoveTo:
			s.page.MoveTo(pts[0].X, pts[0].Y)
			cur, start = pts[0], pts[0]
		case path.CmdLineTo:
			s.page.LineTo(pts[0].X, pts[0].Y)
			cur = pts[0]
		case path.CmdQuadTo:
			// PDF has no quadratic curves: raise the degree.
			c1 := cur.Add(pts[0].Sub(cur).Mul(2.0 / 3))
			c2 := pts[1].Add(pts[0].Sub(pts[1]).Mul(2.0 / 3))
			s.page.CurveTo(c1.X, c1.Y, c2.X, c2.Y, pts[1].X, pts[1].Y)
			cur = pts[1]
		case path.CmdCubeTo:
			s.page.CurveTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
			cur = pts[2]
		case path.CmdClose:
			s.page.ClosePath()
			cur = start
		}
	})
	s.page.Fill()
}

// DrawCircle implements radial.Canvas.
func (s *PDF) DrawCircle(center vec.Vec2, radius float64, c color.NRGBA) {
	s.DrawPath(radial.Circle(center, radius), c)
}

// Close writes the page and closes the file.
func (s *PDF) Close() error {
	return s.page.Close()
}

func (s *PDF) fillRect(c color.NRGBA) {
	s.page.SetFillColor(s.deviceColor(c))
	s.page.Rectangle(0, 0, s.width, s.height)
	s.page.Fill()
}

// deviceColor converts c to DeviceRGB, blending it onto the background
// according to its alpha.
func (s *PDF) deviceColor(c color.NRGBA) pdfcolor.Color {
	a := float64(c.A) / 255
	mix := func(fg, bg uint8) float64 {
		return (float64(fg)*a + float64(bg)*(1-a)) / 255
	}
	return pdfcolor.DeviceRGB{mix(c.R, s.bg.R), mix(c.G, s.bg.G), mix(c.B, s.bg.B)}
}
