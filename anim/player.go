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
	"context"
	"time"
)

// DefaultInterval is the frame interval of a Player, about 60 frames per
// second.
const DefaultInterval = time.Second / 60

// Target is the thing a Player animates.
type Target interface {
	// Frame renders one frame for time now and reports whether further
	// frames are needed.
	Frame(now time.Time) bool

	// Restart handles a restart request, for example a tap on the chart.
	Restart(now time.Time)
}

// Player is a frame loop for one Target. All calls into the Target are
// made from the goroutine executing Run, so the Target needs no locking.
type Player struct {
	// Interval is the time between frames. Zero selects DefaultInterval.
	Interval time.Duration

	// StopWhenSettled makes Run return as soon as the Target needs no
	// more frames. Otherwise Run idles until a restart request arrives.
	StopWhenSettled bool

	// Now returns the current time. Nil selects time.Now.
	Now func() time.Time

	target Target
	taps   chan struct{}
}

// NewPlayer returns a Player for t.
func NewPlayer(t Target) *Player {
	return &Player{
		target: t,
		taps:   make(chan struct{}, 1),
	}
}

// Tap requests a restart of the animation. It is safe to call from any
// goroutine and never blocks; taps arriving faster than the loop can
// handle them are merged.
func (p *Player) Tap() {
	select {
	case p.taps <- struct{}{}:
	default:
	}
}

// Run renders frames until ctx is cancelled, or, if StopWhenSettled is
// set, until the Target settles. The returned error is nil if the Target
// settled and ctx.Err() otherwise.
//
// While the Target is settled no ticker is running, so an idle Player
// costs nothing.
func (p *Player) Run(ctx context.Context) error {
	interval := p.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}
	now := p.Now
	if now == nil {
		now = time.Now
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	active := p.target.Frame(now())
	for {
		if !active {
			ticker.Stop()
			if p.StopWhenSettled {
				return nil
			}
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-p.taps:
			p.target.Restart(now())
			if !active {
				ticker.Reset(interval)
			}
			active = p.target.Frame(now())
		case <-ticker.C:
			active = p.target.Frame(now())
		}
	}
}
