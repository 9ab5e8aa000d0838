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
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// maxArcSegment is the largest angle, in degrees, approximated by a single
// cubic Bézier segment. At 90° the radial error is below 0.03% of the
// radius.
const maxArcSegment = 90.0

// AnnulusWedge returns the closed outline of a ring segment.
//
// The outer arc lies on the circle inscribed in the square of side
// outerDiameter whose top-left corner is offset. It starts at startAngle
// and sweeps by sweepAngle degrees. The inner arc lies on the concentric
// circle of diameter innerDiameter and is traced backwards from
// startAngle+sweepAngle, so that the two arcs together with the implicit
// connecting lines enclose the wedge.
//
// The function is total: innerDiameter is clamped to [0, outerDiameter],
// an inner diameter of 0 yields a pie wedge, a zero sweep yields a path of
// zero area, and non-finite arguments yield an empty path. Sweeps of
// more than two full turns are reduced to between one and two turns
// with the same end angle.
func AnnulusWedge(offset vec.Vec2, outerDiameter, innerDiameter, startAngle, sweepAngle float64) *path.Data {
	p := &path.Data{}
	if !allFinite(offset.X, offset.Y, outerDiameter, innerDiameter, startAngle, sweepAngle) {
		return p
	}

	startAngle = math.Mod(startAngle, FullCircleDegrees)
	if math.Abs(sweepAngle) > 2*FullCircleDegrees {
		// Beyond one full turn the filled area is the whole ring; keep
		// the end angle and trace at most two turns.
		turns := FullCircleDegrees + math.Mod(math.Abs(sweepAngle), FullCircleDegrees)
		sweepAngle = math.Copysign(turns, sweepAngle)
	}

	outerR := max(outerDiameter, 0) / 2
	innerR := min(max(innerDiameter, 0)/2, outerR)
	center := vec.Vec2{X: offset.X + outerR, Y: offset.Y + outerR}

	appendArc(p, center, outerR, startAngle, sweepAngle, true)
	if innerR > 0 {
		appendArc(p, center, innerR, startAngle+sweepAngle, -sweepAngle, false)
	} else {
		p.LineTo(center)
	}
	return p.Close()
}

// Circle returns a closed path tracing the circle of the given radius
// clockwise, starting at 3 o'clock.
func Circle(center vec.Vec2, radius float64) *path.Data {
	p := &path.Data{}
	if !allFinite(center.X, center.Y, radius) || radius <= 0 {
		return p
	}
	appendArc(p, center, radius, 0, FullCircleDegrees, true)
	return p.Close()
}

// PointOnCircle returns the point at angle degrees on the circle around
// center.
func PointOnCircle(center vec.Vec2, radius, angle float64) vec.Vec2 {
	a := math.Mod(angle, FullCircleDegrees) * math.Pi / 180
	sin, cos := math.Sincos(a)
	return vec.Vec2{X: center.X + radius*cos, Y: center.Y + radius*sin}
}

// appendArc adds a circular arc to p. The arc start is connected to the
// current point with a line, or starts a new subpath if moveTo is set.
func appendArc(p *path.Data, center vec.Vec2, r, start, sweep float64, moveTo bool) {
	a0 := start * math.Pi / 180
	p0 := pointAt(center, r, a0)
	if moveTo {
		p.MoveTo(p0)
	} else {
		p.LineTo(p0)
	}
	if sweep == 0 || r == 0 {
		return
	}

	n := int(math.Ceil(math.Abs(sweep) / maxArcSegment))
	phi := sweep / float64(n) * math.Pi / 180
	arm := r * 4 / 3 * math.Tan(phi/4)

	for range n {
		a1 := a0 + phi
		p3 := pointAt(center, r, a1)
		c1 := p0.Add(tangentAt(a0).Mul(arm))
		c2 := p3.Sub(tangentAt(a1).Mul(arm))
		p.CubeTo(c1, c2, p3)
		a0, p0 = a1, p3
	}
}

func pointAt(center vec.Vec2, r, a float64) vec.Vec2 {
	sin, cos := math.Sincos(a)
	return vec.Vec2{X: center.X + r*cos, Y: center.Y + r*sin}
}

// tangentAt is the unit tangent of the circle at angle a, in the
// direction of increasing angle.
func tangentAt(a float64) vec.Vec2 {
	sin, cos := math.Sincos(a)
	return vec.Vec2{X: -sin, Y: cos}
}

func allFinite(xs ...float64) bool {
	for _, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}
	return true
}
