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

// Donut is a ring chart whose wedges partition the full circle.
//
// While the animation runs, the whole ring rotates into place: every
// wedge is scaled by the progress p and its start is rotated by
// (start+360°)·p, so at p=1 the first wedge begins at 12 o'clock.
//
// A Donut is not safe for concurrent use.
type Donut[T any] struct {
	items []ChartItem[T]
	cfg   DonutConfig
	anim  *anim.Animator

	slices []Slice[T]
	dirty  bool
}

// NewDonut creates a donut chart and starts its animation at time now.
func NewDonut[T any](items []ChartItem[T], cfg DonutConfig, now time.Time) (*Donut[T], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	a, err := anim.New(animConfig(cfg.AnimationDuration, cfg.Easing))
	if err != nil {
		return nil, err
	}
	d := &Donut[T]{
		items: slices.Clone(items),
		cfg:   cfg,
		anim:  a,
		dirty: true,
	}
	a.Start(now)
	return d, nil
}

// SetItems replaces the items. The chart is redrawn with the new
// proportions on the next frame; the animation is not restarted.
func (d *Donut[T]) SetItems(items []ChartItem[T]) {
	d.items = slices.Clone(items)
	d.dirty = true
}

// SetConfig replaces the configuration.
func (d *Donut[T]) SetConfig(cfg DonutConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := d.anim.SetConfig(animConfig(cfg.AnimationDuration, cfg.Easing)); err != nil {
		return err
	}
	d.cfg = cfg
	return nil
}

// Slices returns the wedges of the settled chart, with start angles
// relative to 12 o'clock.
func (d *Donut[T]) Slices() []Slice[T] {
	if d.dirty {
		d.slices = AllocateCumulative(d.items)
		d.dirty = false
	}
	return d.slices
}

// Draw renders the frame for time now. The donut is a circle inscribed in
// the shorter side of the canvas and centred along the longer side.
func (d *Donut[T]) Draw(c Canvas, now time.Time) {
	p := d.anim.Progress(now)

	w, h := c.Size()
	outer := min(w, h)
	if !(outer > 0) {
		return
	}
	inner := outer * (1 - d.cfg.Thickness)
	offset := vec.Vec2{X: (w - outer) / 2, Y: (h - outer) / 2}

	for _, s := range d.Slices() {
		sweep := s.SweepAngle * p
		if sweep == 0 {
			continue
		}
		start := YAxisStartAngle + (s.StartAngle+FullCircleDegrees)*p
		c.DrawPath(AnnulusWedge(offset, outer, inner, start, sweep), s.Item.fill())
	}
}

// Progress returns the animation progress at time now.
func (d *Donut[T]) Progress(now time.Time) float64 {
	return d.anim.Progress(now)
}

// Restart replays the animation: progress drops to 0 immediately and the
// animation starts again after [RestartDebounce].
func (d *Donut[T]) Restart(now time.Time) {
	d.anim.Restart(now)
}

// Active reports whether more frames are needed.
func (d *Donut[T]) Active(now time.Time) bool {
	return d.anim.Active(now)
}

// Close stops the animation. Pending restarts are discarded.
func (d *Donut[T]) Close() {
	d.anim.Close()
}
