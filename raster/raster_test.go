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

package raster

import (
	"math"
	"testing"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/radial"
)

// TestTriangleCoverage verifies exact coverage values for a simple triangle.
// The triangle (0,0)→(10,0)→(10,1)→close has a diagonal edge y = x/10.
// Each pixel X should have coverage (2X+1)/20: 0.05, 0.15, ..., 0.95.
func TestTriangleCoverage(t *testing.T) {
	triangle := (&path.Data{}).
		MoveTo(vec.Vec2{X: 0, Y: 0}).
		LineTo(vec.Vec2{X: 10, Y: 0}).
		LineTo(vec.Vec2{X: 10, Y: 1}).
		Close()

	for _, rule := range []Rule{NonZero, EvenOdd} {
		r := NewRasteriser(rect.Rect{URx: 10, URy: 1})

		coverage := make([]float32, 10)
		r.Fill(triangle, rule, func(y, xMin int, cov []float32) {
			if y == 0 {
				copy(coverage[xMin:], cov)
			}
		})

		const epsilon = 1e-6
		for x := range 10 {
			expected := float32(2*x+1) / 20.0
			if math.Abs(float64(coverage[x]-expected)) > epsilon {
				t.Errorf("rule %d, pixel %d: expected coverage %.4f, got %.4f",
					rule, x, expected, coverage[x])
			}
		}
	}
}

// fineRasteriser returns a Rasteriser with a flatness small enough that
// the covered area of circles matches πr² to within 0.1%.
func fineRasteriser(w, h float64) *Rasteriser {
	r := NewRasteriser(rect.Rect{URx: w, URy: h})
	r.Flatness = 0.01
	return r
}

// render fills p into a w×h coverage buffer.
func render(r *Rasteriser, p *path.Data, rule Rule, w, h int) []float32 {
	buf := make([]float32, w*h)
	r.Fill(p, rule, func(y, xMin int, coverage []float32) {
		if y < 0 || y >= h || xMin < 0 || xMin+len(coverage) > w {
			panic("coverage outside the clip rectangle")
		}
		copy(buf[y*w+xMin:], coverage)
	})
	return buf
}

func sum(buf []float32) float64 {
	total := 0.0
	for _, c := range buf {
		total += float64(c)
	}
	return total
}

func TestFillArea(t *testing.T) {
	const size = 100
	ring := func(outer, inner, sweep float64) float64 {
		return math.Pi * (outer*outer - inner*inner) / 4 * sweep / 360
	}

	cases := []struct {
		name  string
		path  *path.Data
		want  float64
		noHit bool
	}{
		{
			name: "disk",
			path: radial.AnnulusWedge(vec.Vec2{X: 10, Y: 10}, 80, 0, 0, 360),
			want: ring(80, 0, 360),
		},
		{
			name: "annulus",
			path: radial.AnnulusWedge(vec.Vec2{X: 10, Y: 10}, 80, 40, -90, 360),
			want: ring(80, 40, 360),
		},
		{
			name: "wedge",
			path: radial.AnnulusWedge(vec.Vec2{X: 0, Y: 0}, 100, 30, -90, 250),
			want: ring(100, 30, 250),
		},
		{
			name: "reversed",
			path: radial.AnnulusWedge(vec.Vec2{X: 0, Y: 0}, 100, 30, 0, -120),
			want: ring(100, 30, 120),
		},
		{
			name: "thin",
			path: radial.AnnulusWedge(vec.Vec2{X: 0, Y: 0}, 100, 98, 0, 360),
			want: ring(100, 98, 360),
		},
		{
			name: "zero sweep",
			path: radial.AnnulusWedge(vec.Vec2{X: 0, Y: 0}, 100, 50, 30, 0),
			want: 0,
		},
		{
			name:  "empty",
			path:  &path.Data{},
			noHit: true,
		},
		{
			name:  "outside",
			path:  radial.Circle(vec.Vec2{X: -50, Y: -50}, 10),
			noHit: true,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := fineRasteriser(size, size)
			hit := false
			buf := make([]float32, size*size)
			r.Fill(tc.path, NonZero, func(y, xMin int, coverage []float32) {
				hit = true
				copy(buf[y*size+xMin:], coverage)
			})
			if tc.noHit {
				if hit {
					t.Error("unexpected output")
				}
				return
			}
			got := sum(buf)
			if math.Abs(got-tc.want) > 2e-3*tc.want+1e-3 {
				t.Errorf("covered area %g, want %g", got, tc.want)
			}
			for i, c := range buf {
				if c < 0 || c > 1+1e-6 {
					t.Fatalf("pixel %d: coverage %g out of range", i, c)
				}
			}
		})
	}
}

func TestFillRules(t *testing.T) {
	const size = 64
	center := vec.Vec2{X: 32, Y: 32}
	p := radial.Circle(center, 30)
	p.Cmds = append(p.Cmds, radial.Circle(center, 15).Cmds...)
	p.Coords = append(p.Coords, radial.Circle(center, 15).Coords...)

	r := fineRasteriser(size, size)

	nonZero := render(r, p, NonZero, size, size)
	if want := math.Pi * 30 * 30; math.Abs(sum(nonZero)-want) > 2e-3*want {
		t.Errorf("nonzero: covered area %g, want %g", sum(nonZero), want)
	}
	if c := nonZero[32*size+32]; math.Abs(float64(c)-1) > 1e-5 {
		t.Errorf("nonzero: centre coverage %g, want 1", c)
	}

	evenOdd := render(r, p, EvenOdd, size, size)
	if want := math.Pi * (30*30 - 15*15); math.Abs(sum(evenOdd)-want) > 2e-3*want {
		t.Errorf("evenodd: covered area %g, want %g", sum(evenOdd), want)
	}
	if c := evenOdd[32*size+32]; math.Abs(float64(c)) > 1e-5 {
		t.Errorf("evenodd: centre coverage %g, want 0", c)
	}
}

func TestClip(t *testing.T) {
	// a disk centred on the corner of the clip rectangle: only one
	// quarter is visible
	r := fineRasteriser(40, 40)
	buf := render(r, radial.Circle(vec.Vec2{}, 30), NonZero, 40, 40)
	if want := math.Pi * 30 * 30 / 4; math.Abs(sum(buf)-want) > 2e-3*want {
		t.Errorf("covered area %g, want %g", sum(buf), want)
	}
}

func TestCTM(t *testing.T) {
	r := fineRasteriser(100, 100)
	r.CTM = matrix.Matrix{2, 0, 0, 2, 10, 10}
	buf := render(r, radial.Circle(vec.Vec2{X: 20, Y: 20}, 10), NonZero, 100, 100)
	if want := math.Pi * 20 * 20; math.Abs(sum(buf)-want) > 2e-3*want {
		t.Errorf("covered area %g, want %g", sum(buf), want)
	}
	if c := buf[50*100+50]; math.Abs(float64(c)-1) > 1e-5 {
		t.Errorf("centre coverage %g, want 1", c)
	}
}

// TestReuse checks that buffers kept between calls do not leak coverage
// from one path into the next.
func TestReuse(t *testing.T) {
	r := NewRasteriser(rect.Rect{URx: 200, URy: 200})
	render(r, radial.Circle(vec.Vec2{X: 100, Y: 100}, 95), NonZero, 200, 200)

	r.Reset(rect.Rect{URx: 20, URy: 20})
	r.Flatness = 0.01
	buf := render(r, radial.Circle(vec.Vec2{X: 10, Y: 10}, 5), NonZero, 20, 20)
	if want := math.Pi * 25; math.Abs(sum(buf)-want) > 1e-2*want {
		t.Errorf("covered area %g, want %g", sum(buf), want)
	}
}
