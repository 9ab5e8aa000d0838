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
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"maps"
	"math"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"
	"testing"
	"time"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/radial"
	"seehuhn.de/go/radial/testcases"
)

var (
	white = color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	t0    = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
)

// drawSettled draws the settled chart of sc onto c.
func drawSettled(t *testing.T, sc testcases.Scenario, c radial.Canvas) {
	t.Helper()
	chart, err := sc.NewChart(t0)
	if err != nil {
		t.Fatal(err)
	}
	defer chart.Close()
	chart.Draw(c, t0.Add(sc.Duration()))
}

// TestBackendsAgree renders every scenario with the built-in rasteriser
// and compares the result with the x/image/vector and gg backends.
func TestBackendsAgree(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, sc := range testcases.All[category] {
			name := category + "_" + sc.Name
			t.Run(name, func(t *testing.T) {
				w, h := sc.Width, sc.Height

				ref := NewImage(w, h, white)
				drawSettled(t, sc, ref)

				vz := NewVector(w, h, white)
				drawSettled(t, sc, vz)
				if err := compareImages(name+"_vector", ref.RGBA(), vz.RGBA()); err != nil {
					t.Errorf("vector: %v", err)
				}

				g := NewGG(w, h, white)
				defer g.Close()
				drawSettled(t, sc, g)
				if err := g.Err(); err != nil {
					t.Fatal(err)
				}
				if err := compareImages(name+"_gg", ref.RGBA(), g.Image()); err != nil {
					t.Errorf("gg: %v", err)
				}
			})
		}
	}
}

// compareImages checks that two renderings agree up to anti-aliasing.
// Differences of up to two levels per channel count as equal, to allow
// for different rounding in the compositing step.
func compareImages(name string, expected, actual image.Image) error {
	b := expected.Bounds()
	if actual.Bounds().Size() != b.Size() {
		return fmt.Errorf("size %v, want %v", actual.Bounds().Size(), b.Size())
	}
	w, h := b.Dx(), b.Dy()
	total := w * h
	if total == 0 {
		return nil
	}
	ab := actual.Bounds()

	diffs := make([]int, total)
	for y := range h {
		for x := range w {
			diffs[y*w+x] = max(pixelDiff(
				expected.At(b.Min.X+x, b.Min.Y+y),
				actual.At(ab.Min.X+x, ab.Min.Y+y))-2, 0)
		}
	}
	unsorted := slices.Clone(diffs)
	sort.Ints(diffs)

	p80 := diffs[int(math.Round(0.80*float64(total-1)))]
	p95 := diffs[int(math.Round(0.95*float64(total-1)))]
	p99 := diffs[int(math.Round(0.99*float64(total-1)))]

	var failures []string
	if p80 > 0 {
		failures = append(failures, fmt.Sprintf("80th percentile diff is %d (want 0)", p80))
	}
	if p95 >= 64 {
		failures = append(failures, fmt.Sprintf("95th percentile diff is %d (want <64)", p95))
	}
	if p99 >= 128 {
		failures = append(failures, fmt.Sprintf("99th percentile diff is %d (want <128)", p99))
	}

	if len(failures) > 0 {
		_ = writeDiffImage(name, unsorted, w, h)
		return fmt.Errorf("%s", strings.Join(failures, "; "))
	}
	return nil
}

// pixelDiff returns the largest per-channel difference of two colours,
// in 8-bit units.
func pixelDiff(a, b color.Color) int {
	r0, g0, b0, a0 := a.RGBA()
	r1, g1, b1, a1 := b.RGBA()
	d := 0
	for _, pair := range [][2]uint32{{r0, r1}, {g0, g1}, {b0, b1}, {a0, a1}} {
		diff := int(pair[0]>>8) - int(pair[1]>>8)
		if diff < 0 {
			diff = -diff
		}
		d = max(d, diff)
	}
	return d
}

func writeDiffImage(name string, diffs []int, w, h int) (err error) {
	if err := os.MkdirAll("debug", 0755); err != nil {
		return err
	}

	img := image.NewGray(image.Rect(0, 0, w, h))
	for i, d := range diffs {
		img.Pix[i] = uint8(min(d, 255))
	}

	f, err := os.Create(filepath.Join("debug", name+".png"))
	if err != nil {
		return err
	}
	err = png.Encode(f, img)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}

func TestImageBlend(t *testing.T) {
	for _, tc := range []struct {
		name   string
		canvas interface {
			radial.Canvas
			RGBA() *image.RGBA
		}
	}{
		{"image", NewImage(20, 20, white)},
		{"vector", NewVector(20, 20, white)},
	} {
		t.Run(tc.name, func(t *testing.T) {
			c := tc.canvas
			if w, h := c.Size(); w != 20 || h != 20 {
				t.Fatalf("size %gx%g", w, h)
			}
			c.DrawCircle(vec.Vec2{X: 10, Y: 10}, 8, color.NRGBA{R: 0xFF, A: 0x80})
			got := c.RGBA().RGBAAt(10, 10)
			want := color.RGBA{R: 255, G: 127, B: 127, A: 255}
			if pixelDiff(got, want) > 1 {
				t.Errorf("centre pixel %v, want %v", got, want)
			}
			if corner := c.RGBA().RGBAAt(0, 0); corner != (color.RGBA{255, 255, 255, 255}) {
				t.Errorf("corner pixel %v, want white", corner)
			}

			// fully transparent colours leave the canvas untouched
			c.DrawCircle(vec.Vec2{X: 10, Y: 10}, 8, color.NRGBA{G: 0xFF})
			if again := c.RGBA().RGBAAt(10, 10); again != got {
				t.Errorf("transparent fill changed pixel to %v", again)
			}
		})
	}
}

func TestGGNonFiniteCircle(t *testing.T) {
	g := NewGG(10, 10, white)
	defer g.Close()
	red := color.NRGBA{R: 0xFF, A: 0xFF}
	g.DrawCircle(vec.Vec2{X: math.NaN(), Y: 5}, 3, red)
	g.DrawCircle(vec.Vec2{X: 5, Y: math.Inf(-1)}, 3, red)
	g.DrawCircle(vec.Vec2{X: 5, Y: 5}, math.Inf(1), red)
	if err := g.Err(); err != nil {
		t.Fatal(err)
	}
	if d := pixelDiff(g.Image().At(5, 5), white); d != 0 {
		t.Errorf("centre pixel %v, want white", g.Image().At(5, 5))
	}
}

func TestClear(t *testing.T) {
	s := NewImage(8, 8, white)
	s.DrawCircle(vec.Vec2{X: 4, Y: 4}, 4, color.NRGBA{A: 0xFF})
	s.Clear()
	for i := 0; i < len(s.RGBA().Pix); i++ {
		if s.RGBA().Pix[i] != 0xFF {
			t.Fatalf("byte %d is %d after Clear", i, s.RGBA().Pix[i])
		}
	}
}

func TestWritePNG(t *testing.T) {
	sc, ok := testcases.Lookup("donut_preview_ring")
	if !ok {
		t.Fatal("scenario not found")
	}
	s := NewImage(sc.Width, sc.Height, white)
	drawSettled(t, sc, s)

	var buf bytes.Buffer
	if err := s.WritePNG(&buf); err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if err := compareImages("png", s.RGBA(), img); err != nil {
		t.Error(err)
	}
}

func TestPDF(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"donut_preview_pie", "race_preview_thin"} {
		sc, ok := testcases.Lookup(name)
		if !ok {
			t.Fatalf("scenario %q not found", name)
		}
		fname := filepath.Join(dir, name+".pdf")
		page, err := NewPDF(fname, float64(sc.Width), float64(sc.Height), white)
		if err != nil {
			t.Fatal(err)
		}
		if w, h := page.Size(); w != float64(sc.Width) || h != float64(sc.Height) {
			t.Errorf("%s: size %gx%g", name, w, h)
		}
		drawSettled(t, sc, page)
		if err := page.Close(); err != nil {
			t.Fatal(err)
		}

		data, err := os.ReadFile(fname)
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.HasPrefix(data, []byte("%PDF-")) {
			t.Errorf("%s: missing PDF header", name)
		}
	}
}
