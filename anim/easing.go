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

package anim

import "math"

// Easing maps the elapsed fraction of an animation, in [0, 1], to the
// animation progress. Easings used by an Animator must be monotone
// non-decreasing with Easing(0) = 0 and Easing(1) = 1.
type Easing func(t float64) float64

// Linear is the identity easing.
func Linear(t float64) float64 {
	return t
}

// FastOutSlowIn accelerates quickly and decelerates gently towards the end.
// This is the standard material motion curve.
var FastOutSlowIn = CubicBezier(0.4, 0, 0.2, 1)

// CubicBezier returns the easing described by the unit cubic Bézier curve
// through (0,0), (x1,y1), (x2,y2) and (1,1), as used by CSS
// transition-timing-function.
//
// x1 and x2 are clamped to [0, 1] so that the curve is a function of x.
// The easing is monotone whenever y1 and y2 lie in [0, 1].
func CubicBezier(x1, y1, x2, y2 float64) Easing {
	x1 = min(max(x1, 0), 1)
	x2 = min(max(x2, 0), 1)

	// Polynomial coefficients, B(s) = ((a·s + b)·s + c)·s
	cx := 3 * x1
	bx := 3*(x2-x1) - cx
	ax := 1 - cx - bx
	cy := 3 * y1
	by := 3*(y2-y1) - cy
	ay := 1 - cy - by

	sampleX := func(s float64) float64 { return ((ax*s+bx)*s + cx) * s }
	sampleY := func(s float64) float64 { return ((ay*s+by)*s + cy) * s }
	slopeX := func(s float64) float64 { return (3*ax*s+2*bx)*s + cx }

	// solve returns the curve parameter s with sampleX(s) = x.
	solve := func(x float64) float64 {
		s := x
		for range 8 {
			err := sampleX(s) - x
			if math.Abs(err) < bezierEpsilon {
				return s
			}
			d := slopeX(s)
			if math.Abs(d) < 1e-6 {
				break
			}
			s = min(max(s-err/d, 0), 1)
		}

		// Newton did not converge, fall back to bisection.
		lo, hi := 0.0, 1.0
		s = x
		for range 64 {
			v := sampleX(s)
			if math.Abs(v-x) < bezierEpsilon {
				break
			}
			if v < x {
				lo = s
			} else {
				hi = s
			}
			s = (lo + hi) / 2
		}
		return s
	}

	return func(t float64) float64 {
		switch {
		case !(t > 0): // also catches NaN
			return 0
		case t >= 1:
			return 1
		}
		return sampleY(solve(t))
	}
}

const bezierEpsilon = 1e-7
