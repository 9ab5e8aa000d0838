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

// Package anim drives the progress value of chart animations.
//
// An [Animator] is a small state machine which maps wall-clock time to a
// progress value in [0, 1]. It never starts goroutines or timers: all
// transitions, including the restart debounce, are evaluated lazily
// whenever the owner asks for the current progress. A [Player] supplies
// the frame ticks for real-time playback.
package anim

import (
	"errors"
	"fmt"
	"log/slog"
	"time"
)

// Default animation parameters.
const (
	DefaultDuration = 2 * time.Second
	DefaultDebounce = 200 * time.Millisecond
)

// ErrInvalidDuration is returned for negative durations.
var ErrInvalidDuration = errors.New("anim: invalid duration")

// Phase is the state of an Animator.
type Phase int

const (
	// Idle is the state before the first trigger. Progress is 0.
	Idle Phase = iota

	// Resetting holds progress at 0 until the restart debounce has elapsed.
	Resetting

	// Animating interpolates progress from 0 to 1.
	Animating

	// Settled holds progress at 1 until the next restart.
	Settled

	// Closed is terminal. Progress is frozen.
	Closed
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Resetting:
		return "resetting"
	case Animating:
		return "animating"
	case Settled:
		return "settled"
	case Closed:
		return "closed"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// Config holds the parameters of an Animator.
type Config struct {
	// Duration is the length of one run from 0 to 1.
	// A zero duration jumps to 1 at the trigger time.
	Duration time.Duration

	// Debounce is the time progress is held at 0 after a restart.
	Debounce time.Duration

	// Easing shapes the progress curve. Nil selects FastOutSlowIn.
	Easing Easing

	// Logger receives debug messages about phase changes.
	// Nil disables logging.
	Logger *slog.Logger
}

// DefaultConfig returns the default animation parameters: a two second
// run, a 200ms restart debounce and the FastOutSlowIn curve.
func DefaultConfig() Config {
	return Config{
		Duration: DefaultDuration,
		Debounce: DefaultDebounce,
		Easing:   FastOutSlowIn,
	}
}

// Validate checks that the durations are non-negative.
func (c Config) Validate() error {
	if c.Duration < 0 {
		return fmt.Errorf("%w: duration %v", ErrInvalidDuration, c.Duration)
	}
	if c.Debounce < 0 {
		return fmt.Errorf("%w: debounce %v", ErrInvalidDuration, c.Debounce)
	}
	return nil
}

// Animator animates a progress value from 0 to 1.
//
// Each chart instance owns exactly one Animator. The Animator is not safe
// for concurrent use; all methods must be called from the goroutine which
// renders the chart.
type Animator struct {
	cfg   Config
	phase Phase

	// start is the instant the current run begins. While Resetting, this
	// lies in the future.
	start time.Time

	// last is the most recent progress value reported in the current run.
	last float64
}

// New returns an Animator in the Idle phase.
func New(cfg Config) (*Animator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Easing == nil {
		cfg.Easing = FastOutSlowIn
	}
	return &Animator{cfg: cfg}, nil
}

// SetConfig replaces the animation parameters. A run in progress keeps
// its start time but uses the new duration and easing from now on.
func (a *Animator) SetConfig(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.Easing == nil {
		cfg.Easing = FastOutSlowIn
	}
	a.cfg = cfg
	return nil
}

// Duration returns the configured run length.
func (a *Animator) Duration() time.Duration {
	return a.cfg.Duration
}

// Phase returns the state of the animator at time now.
func (a *Animator) Phase(now time.Time) Phase {
	a.advance(now)
	return a.phase
}

// Start begins a run at time now. It has no effect unless the animator
// is Idle or Settled.
func (a *Animator) Start(now time.Time) {
	switch a.phase {
	case Idle, Settled:
		a.begin(now)
	}
}

// Restart forces progress back to 0 and begins a new run once the
// debounce interval has elapsed. A restart while Resetting re-arms the
// debounce; a restart while Idle is the same as Start.
func (a *Animator) Restart(now time.Time) {
	switch a.phase {
	case Closed:
		return
	case Idle:
		a.begin(now)
		return
	}

	a.last = 0
	if a.cfg.Debounce <= 0 {
		a.begin(now)
		return
	}
	a.start = now.Add(a.cfg.Debounce)
	a.setPhase(Resetting)
}

// Progress returns the animation progress at time now.
// Within a run the returned values never decrease, even if now does.
func (a *Animator) Progress(now time.Time) float64 {
	a.advance(now)

	var p float64
	switch a.phase {
	case Idle, Resetting:
		p = 0
	case Settled:
		p = 1
	case Closed:
		return a.last
	case Animating:
		elapsed := now.Sub(a.start)
		if elapsed > 0 {
			p = a.cfg.Easing(float64(elapsed) / float64(a.cfg.Duration))
			p = min(max(p, 0), 1)
		}
	}

	p = max(p, a.last)
	a.last = p
	return p
}

// Active reports whether the value returned by Progress may still change
// without another call to Start or Restart. Frame loops stop scheduling
// frames once this returns false.
func (a *Animator) Active(now time.Time) bool {
	a.advance(now)
	return a.phase == Resetting || a.phase == Animating
}

// Close stops the animator. A pending restart is discarded, progress is
// frozen at its last reported value, and all later calls are no-ops.
func (a *Animator) Close() {
	if a.phase != Closed {
		a.setPhase(Closed)
	}
}

func (a *Animator) begin(now time.Time) {
	a.start = now
	a.last = 0
	a.setPhase(Animating)
	a.advance(now)
}

// advance performs the time-driven transitions
// Resetting → Animating → Settled.
func (a *Animator) advance(now time.Time) {
	if a.phase == Resetting && !now.Before(a.start) {
		a.setPhase(Animating)
	}
	if a.phase == Animating && now.Sub(a.start) >= a.cfg.Duration {
		a.setPhase(Settled)
	}
}

func (a *Animator) setPhase(p Phase) {
	if a.cfg.Logger != nil {
		a.cfg.Logger.Debug("animation phase",
			slog.String("from", a.phase.String()),
			slog.String("to", p.String()))
	}
	a.phase = p
}
