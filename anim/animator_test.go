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

import (
	"errors"
	"testing"
	"time"
)

var t0 = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func newAnimator(t *testing.T, cfg Config) *Animator {
	t.Helper()
	a, err := New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	return a
}

func TestConfigValidate(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("default config: %v", err)
	}
	for _, cfg := range []Config{
		{Duration: -time.Second},
		{Duration: time.Second, Debounce: -1},
	} {
		if _, err := New(cfg); !errors.Is(err, ErrInvalidDuration) {
			t.Errorf("%+v: got %v, want ErrInvalidDuration", cfg, err)
		}
	}
}

func TestLifecycle(t *testing.T) {
	cfg := DefaultConfig()
	a := newAnimator(t, cfg)

	if ph := a.Phase(t0); ph != Idle {
		t.Fatalf("new animator is %v, want idle", ph)
	}
	if p := a.Progress(t0.Add(time.Hour)); p != 0 {
		t.Errorf("idle progress %g, want 0", p)
	}
	if a.Active(t0) {
		t.Error("idle animator is active")
	}

	a.Start(t0)
	steps := []struct {
		dt    time.Duration
		phase Phase
	}{
		{0, Animating},
		{cfg.Duration / 2, Animating},
		{cfg.Duration - time.Nanosecond, Animating},
		{cfg.Duration, Settled},
		{time.Hour, Settled},
	}
	for _, s := range steps {
		if ph := a.Phase(t0.Add(s.dt)); ph != s.phase {
			t.Errorf("at %v: phase %v, want %v", s.dt, ph, s.phase)
		}
	}
	if p := a.Progress(t0.Add(time.Hour)); p != 1 {
		t.Errorf("settled progress %g, want 1", p)
	}

	// Start has no effect while animating
	b := newAnimator(t, cfg)
	b.Start(t0)
	b.Start(t0.Add(cfg.Duration / 2))
	if ph := b.Phase(t0.Add(cfg.Duration)); ph != Settled {
		t.Errorf("second Start moved the run, phase %v", ph)
	}
}

// TestProgressMonotone samples a run at frame intervals and checks that
// progress starts at 0, never decreases and reaches 1 by the end.
func TestProgressMonotone(t *testing.T) {
	for _, easing := range []Easing{Linear, FastOutSlowIn, CubicBezier(0.68, 0, 0.32, 1)} {
		cfg := DefaultConfig()
		cfg.Easing = easing
		a := newAnimator(t, cfg)
		a.Start(t0)

		frame := time.Second / 60
		prev := -1.0
		for dt := time.Duration(0); dt <= cfg.Duration+frame; dt += frame {
			p := a.Progress(t0.Add(dt))
			if dt == 0 && p != 0 {
				t.Errorf("progress %g at the start, want 0", p)
			}
			if p < prev {
				t.Fatalf("progress decreased from %g to %g at %v", prev, p, dt)
			}
			if p < 0 || p > 1 {
				t.Fatalf("progress %g out of range", p)
			}
			prev = p
		}
		if prev != 1 {
			t.Errorf("final progress %g, want 1", prev)
		}
	}
}

// TestProgressClockSkew checks that progress does not run backwards when
// the clock does.
func TestProgressClockSkew(t *testing.T) {
	a := newAnimator(t, DefaultConfig())
	a.Start(t0)
	p1 := a.Progress(t0.Add(time.Second))
	p2 := a.Progress(t0.Add(500 * time.Millisecond))
	if p2 < p1 {
		t.Errorf("progress went from %g back to %g", p1, p2)
	}
}

func TestRestart(t *testing.T) {
	cfg := DefaultConfig()
	a := newAnimator(t, cfg)
	a.Start(t0)

	now := t0.Add(5 * time.Second)
	if p := a.Progress(now); p != 1 {
		t.Fatalf("progress %g, want 1", p)
	}

	a.Restart(now)
	if ph := a.Phase(now); ph != Resetting {
		t.Fatalf("phase %v after restart, want resetting", ph)
	}
	if p := a.Progress(now); p != 0 {
		t.Errorf("progress %g after restart, want 0", p)
	}
	if p := a.Progress(now.Add(cfg.Debounce - time.Millisecond)); p != 0 {
		t.Errorf("progress %g during debounce, want 0", p)
	}
	if ph := a.Phase(now.Add(cfg.Debounce)); ph != Animating {
		t.Errorf("phase %v after debounce, want animating", ph)
	}
	if ph := a.Phase(now.Add(cfg.Debounce + cfg.Duration)); ph != Settled {
		t.Errorf("phase %v at the end, want settled", ph)
	}
}

func TestRestartWhileAnimating(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Easing = Linear
	a := newAnimator(t, cfg)
	a.Start(t0)

	mid := t0.Add(cfg.Duration / 2)
	if p := a.Progress(mid); p != 0.5 {
		t.Fatalf("progress %g, want 0.5", p)
	}
	a.Restart(mid)
	if p := a.Progress(mid); p != 0 {
		t.Errorf("progress %g after restart, want 0", p)
	}

	// a second restart during the debounce re-arms it
	later := mid.Add(cfg.Debounce / 2)
	a.Restart(later)
	if ph := a.Phase(mid.Add(cfg.Debounce)); ph != Resetting {
		t.Errorf("phase %v, want resetting", ph)
	}
	if p := a.Progress(later.Add(cfg.Debounce + cfg.Duration/4)); p != 0.25 {
		t.Errorf("progress %g, want 0.25", p)
	}
}

func TestRestartFromIdle(t *testing.T) {
	a := newAnimator(t, DefaultConfig())
	a.Restart(t0)
	if ph := a.Phase(t0); ph != Animating {
		t.Errorf("phase %v, want animating without debounce", ph)
	}
}

func TestRestartWithoutDebounce(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Debounce = 0
	a := newAnimator(t, cfg)
	a.Start(t0)
	now := t0.Add(time.Minute)
	a.Restart(now)
	if ph := a.Phase(now); ph != Animating {
		t.Errorf("phase %v, want animating", ph)
	}
}

func TestZeroDuration(t *testing.T) {
	a := newAnimator(t, Config{})
	a.Start(t0)
	if p := a.Progress(t0); p != 1 {
		t.Errorf("progress %g, want 1", p)
	}
	if a.Active(t0) {
		t.Error("zero-length animation is active")
	}
}

func TestClose(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Easing = Linear
	a := newAnimator(t, cfg)
	a.Start(t0)

	mid := t0.Add(cfg.Duration / 2)
	p := a.Progress(mid)
	a.Close()
	if got := a.Progress(t0.Add(time.Hour)); got != p {
		t.Errorf("progress %g after close, want frozen at %g", got, p)
	}
	if a.Active(mid) {
		t.Error("closed animator is active")
	}

	// a restart pending at close time is dropped
	b := newAnimator(t, cfg)
	b.Start(t0)
	b.Restart(mid)
	b.Close()
	if ph := b.Phase(mid.Add(time.Hour)); ph != Closed {
		t.Errorf("phase %v, want closed", ph)
	}
	b.Restart(mid.Add(time.Hour))
	b.Start(mid.Add(time.Hour))
	if ph := b.Phase(mid.Add(2 * time.Hour)); ph != Closed {
		t.Errorf("closed animator was revived, phase %v", ph)
	}
}

func TestPhaseString(t *testing.T) {
	for ph, want := range map[Phase]string{
		Idle:      "idle",
		Resetting: "resetting",
		Animating: "animating",
		Settled:   "settled",
		Closed:    "closed",
		Phase(9):  "Phase(9)",
	} {
		if got := ph.String(); got != want {
			t.Errorf("%d: got %q, want %q", int(ph), got, want)
		}
	}
}
