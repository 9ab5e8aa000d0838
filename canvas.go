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

package radial

import (
	"image/color"
	"time"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Canvas is the drawing surface charts render onto.
// Coordinates are device pixels with the origin at the top-left corner
// and the y axis pointing down.
type Canvas interface {
	// Size returns the extent of the drawing area.
	Size() (width, height float64)

	// DrawPath fills the closed path p with c, using the nonzero winding
	// rule and source-over compositing.
	DrawPath(p *path.Data, c color.NRGBA)

	// DrawCircle fills a circle with c.
	DrawCircle(center vec.Vec2, radius float64, c color.NRGBA)
}

// Clearer is implemented by canvases which can be reset to their
// background between frames.
type Clearer interface {
	Clear()
}

// Chart is implemented by [Donut] and [Race].
type Chart interface {
	Draw(c Canvas, now time.Time)
	Restart(now time.Time)
	Active(now time.Time) bool
	Close()
}

// Scene binds a chart to a canvas. It implements anim.Target, so that a
// chart can be driven by an anim.Player.
type Scene struct {
	Chart  Chart
	Canvas Canvas

	// Present, if set, is called after every frame, for example to copy
	// the canvas to the screen or to write it to a file.
	Present func(now time.Time)
}

// Frame clears the canvas if possible, draws the chart for time now and
// reports whether the animation is still running.
func (s *Scene) Frame(now time.Time) bool {
	if cl, ok := s.Canvas.(Clearer); ok {
		cl.Clear()
	}
	s.Chart.Draw(s.Canvas, now)
	if s.Present != nil {
		s.Present(now)
	}
	return s.Chart.Active(now)
}

// Restart restarts the chart animation.
func (s *Scene) Restart(now time.Time) {
	s.Chart.Restart(now)
}

// center returns the centre of the canvas.
func center(c Canvas) vec.Vec2 {
	w, h := c.Size()
	return vec.Vec2{X: w / 2, Y: h / 2}
}
