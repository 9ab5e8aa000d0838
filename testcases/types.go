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

// Package testcases contains named chart scenarios, used by the tests of
// the surface backends and by the radialdemo command.
package testcases

import (
	"fmt"
	"image/color"
	"time"

	"seehuhn.de/go/radial"
)

// Kind selects the chart type of a scenario.
type Kind int

const (
	Donut Kind = iota
	Race
)

func (k Kind) String() string {
	switch k {
	case Donut:
		return "donut"
	case Race:
		return "race"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Scenario defines a single chart to render.
type Scenario struct {
	Name   string // lowercase a-z, 0-9 and _ only
	Kind   Kind
	Items  []radial.ChartItem[float64]
	Width  int // canvas width in pixels
	Height int // canvas height in pixels

	Donut radial.DonutConfig // used if Kind == Donut
	Race  radial.RaceConfig  // used if Kind == Race
}

// NewChart constructs the chart of the scenario, with its animation
// started at time now.
func (s Scenario) NewChart(now time.Time) (radial.Chart, error) {
	switch s.Kind {
	case Donut:
		return radial.NewDonut(s.Items, s.Donut, now)
	case Race:
		return radial.NewRace(s.Items, s.Race, now)
	default:
		return nil, fmt.Errorf("scenario %q: unknown chart kind %v", s.Name, s.Kind)
	}
}

// Duration returns the animation duration of the scenario.
func (s Scenario) Duration() time.Duration {
	if s.Kind == Race {
		return s.Race.AnimationDuration
	}
	return s.Donut.AnimationDuration
}

// Preview colours.
var (
	Red     = color.NRGBA{R: 0xFF, A: 0xFF}
	Green   = color.NRGBA{G: 0xFF, A: 0xFF}
	Blue    = color.NRGBA{B: 0xFF, A: 0xFF}
	Magenta = color.NRGBA{R: 0xFF, B: 0xFF, A: 0xFF}
)

// Items builds chart items from values, cycling through the preview
// colours red, blue, green and magenta.
func Items(values ...float64) []radial.ChartItem[float64] {
	palette := []color.NRGBA{Red, Blue, Green, Magenta}
	items := make([]radial.ChartItem[float64], len(values))
	for i, v := range values {
		items[i] = radial.ChartItem[float64]{
			Data:  v,
			Value: v,
			Label: fmt.Sprint(v),
			Color: palette[i%len(palette)],
		}
	}
	return items
}
