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
	"errors"
	"fmt"
	"log/slog"
	"time"

	"seehuhn.de/go/radial/anim"
)

var (
	// ErrInvalidThickness is returned for a ring thickness outside (0, 1].
	// This guarantees that the inner diameter never exceeds the outer one.
	ErrInvalidThickness = errors.New("radial: thickness must be in (0, 1]")

	// ErrInvalidDuration is returned for a negative animation duration.
	ErrInvalidDuration = anim.ErrInvalidDuration
)

// Default chart parameters.
const (
	DefaultDonutThickness = 0.5
	DefaultRaceThickness  = 0.7
)

// DonutConfig configures a [Donut].
type DonutConfig struct {
	// Thickness is the ring width as a fraction of the radius, in (0, 1].
	// A thickness of 1 draws a pie chart.
	Thickness float64

	// AnimationDuration is the time the ring takes to rotate into place.
	AnimationDuration time.Duration

	// Easing shapes the animation. Nil selects anim.FastOutSlowIn.
	Easing anim.Easing
}

// DefaultDonutConfig returns a half-thickness ring with a two second
// animation.
func DefaultDonutConfig() DonutConfig {
	return DonutConfig{
		Thickness:         DefaultDonutThickness,
		AnimationDuration: anim.DefaultDuration,
	}
}

// Validate checks the configuration.
func (c DonutConfig) Validate() error {
	return validate(c.Thickness, c.AnimationDuration)
}

// RaceConfig configures a [Race].
type RaceConfig struct {
	// MaxWeight is the value corresponding to a full ring. Values <= 0
	// select the largest item value.
	MaxWeight float64

	// Thickness is the width of each ring as a fraction of the chart
	// radius, in (0, 1]. Rings which do not fit are not drawn.
	Thickness float64

	// AnimationDuration is the time the rings take to fill.
	AnimationDuration time.Duration

	// Easing shapes the animation. Nil selects anim.FastOutSlowIn.
	Easing anim.Easing
}

// DefaultRaceConfig returns the default race parameters.
func DefaultRaceConfig() RaceConfig {
	return RaceConfig{
		Thickness:         DefaultRaceThickness,
		AnimationDuration: anim.DefaultDuration,
	}
}

// Validate checks the configuration.
func (c RaceConfig) Validate() error {
	return validate(c.Thickness, c.AnimationDuration)
}

func validate(thickness float64, d time.Duration) error {
	var err error
	switch {
	case !(thickness > 0 && thickness <= 1):
		err = fmt.Errorf("%w: got %g", ErrInvalidThickness, thickness)
	case d < 0:
		err = fmt.Errorf("%w: %v", ErrInvalidDuration, d)
	}
	if err != nil {
		Logger().Warn("chart configuration rejected", "error", err)
	}
	return err
}

func animConfig(d time.Duration, e anim.Easing) anim.Config {
	return anim.Config{
		Duration: d,
		Debounce: RestartDebounce,
		Easing:   e,
		Logger:   slog.New(currentHandler{}),
	}
}
