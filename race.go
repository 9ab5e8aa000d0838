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
	"slices"
	"time"

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/radial/anim"
)

// Race is a gauge chart with one concentric ring per item, the first item
// outermost. Each ring shows a faint full-circle track, a progress wedge
// starting at 12 o'clock, and two marker dots at the start and at the
// current end of the wedge.
//
// A Race is not safe for concurrent use.
type Race[T any] struct {
	items []ChartItem[T]
	cfg   RaceConfig
	anim  *anim.Animator

	slices []Slice[T]
	dirty  bool
}

// NewRace creates a race chart and starts its animation at time now.
func NewRace[T any](items []ChartItem[T], cfg RaceConfig, now time.Time) (*Race[T], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	a, err := anim.New(animConfig(cfg.AnimationDuration, cfg.Easing))
	if err != nil {
		return nil, err
	}
	r := &Race[T]{
		items: slices.Clone(items),
		cfg:   cfg,
		anim:  a,
		dirty: true,
	}
	a.Start(now)
	return r, nil
}

// SetItems replaces the items without restarting the animation.
func (r *Race[T]) SetItems(items []ChartItem[T]) {
	r.items = slices.Clone(items)
	r.dirty = true
}

// SetConfig replaces the configuration.
func (r *Race[T]) SetConfig(cfg RaceConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := r.anim.SetConfig(animConfig(cfg.AnimationDuration, cfg.Easing)); err != nil {
		return err
	}
	if cfg.MaxWeight != r.cfg.MaxWeight {
		r.dirty = true
	}
	r.cfg = cfg
	return nil
}

// Slices returns the settled progress wedges, one per ring.
func (r *Race[T]) Slices() []Slice[T] {
	if r.dirty {
		r.slices = AllocateIndependent(r.items, r.cfg.MaxWeight)
		r.dirty = false
	}
	return r.slices
}

// Ring describes the geometry of one ring of a race chart.
type Ring struct {
	// Offset is the top-left corner of the square bounding the outer
	// circle of the ring.
	Offset vec.Vec2

	OuterDiameter float64
	InnerDiameter float64
}

// Rings returns the ring geometry for a canvas of the given size.
// Rings which would have no extent are omitted.
func (r *Race[T]) Rings(width, height float64) []Ring {
	n := len(r.items)
	diameter := min(width, height)
	if n == 0 || !(diameter > 0) {
		return nil
	}
	t := diameter / 2 * r.cfg.Thickness
	base := vec.Vec2{X: (width - diameter) / 2, Y: (height - diameter) / 2}

	rings := make([]Ring, 0, n)
	for i := range n {
		fi := float64(i)
		outer := diameter - fi*t
		if outer <= 0 {
			break
		}
		rings = append(rings, Ring{
			Offset:        base.Add(vec.Vec2{X: t / 2 * fi, Y: t / 2 * fi}),
			OuterDiameter: outer,
			InnerDiameter: max(diameter-(fi+1)*t, 0),
		})
	}
	return rings
}

// Draw renders the frame for time now.
func (r *Race[T]) Draw(c Canvas, now time.Time) {
	p := r.anim.Progress(now)

	w, h := c.Size()
	rings := r.Rings(w, h)
	if len(rings) == 0 {
		return
	}
	t := min(w, h) / 2 * r.cfg.Thickness
	mid := center(c)
	dot := t / 4

	for i, s := range r.Slices()[:len(rings)] {
		ring := rings[i]
		col := s.Item.fill()

		track := AnnulusWedge(ring.Offset, ring.OuterDiameter, ring.InnerDiameter,
			YAxisStartAngle+1, FullCircleDegrees)
		c.DrawPath(track, withAlpha(col, TrackAlpha))

		sweep := s.SweepAngle * p
		if sweep != 0 {
			wedge := AnnulusWedge(ring.Offset, ring.OuterDiameter, ring.InnerDiameter,
				s.StartAngle, sweep)
			c.DrawPath(wedge, col)
		}

		m := ring.InnerDiameter/2 + t/4
		c.DrawCircle(PointOnCircle(mid, m, YAxisStartAngle), dot, col)
		c.DrawCircle(PointOnCircle(mid, m, YAxisStartAngle+sweep), dot, col)
	}
}

// Tap handles a tap or click on the chart by restarting the animation.
func (r *Race[T]) Tap(now time.Time) {
	r.Restart(now)
}

// Progress returns the animation progress at time now.
func (r *Race[T]) Progress(now time.Time) float64 {
	return r.anim.Progress(now)
}

// Restart replays the animation: progress drops to 0 immediately and the
// animation starts again after [RestartDebounce].
func (r *Race[T]) Restart(now time.Time) {
	r.anim.Restart(now)
}

// Active reports whether more frames are needed.
func (r *Race[T]) Active(now time.Time) bool {
	return r.anim.Active(now)
}

// Close stops the animation. Pending restarts are discarded.
func (r *Race[T]) Close() {
	r.anim.Close()
}
