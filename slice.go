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

import "math"

// Slice is the angular extent allotted to one item, in degrees.
type Slice[T any] struct {
	Item       ChartItem[T]
	StartAngle float64
	SweepAngle float64
}

// EndAngle returns StartAngle + SweepAngle.
func (s Slice[T]) EndAngle() float64 {
	return s.StartAngle + s.SweepAngle
}

// AllocateCumulative partitions the full circle among the items, in
// proportion to their values. Slices are returned in input order and are
// contiguous: each slice starts where the previous one ends, the first
// at 0°. If the total weight is positive the sweeps add up to 360°;
// otherwise all sweeps are 0.
func AllocateCumulative[T any](items []ChartItem[T]) []Slice[T] {
	weights := make([]float64, len(items))
	total, largest := 0.0, 0.0
	for i := range items {
		weights[i] = items[i].weight()
		total += weights[i]
		largest = max(largest, weights[i])
	}
	if math.IsInf(total, 1) {
		// the weights are finite, but their sum overflows
		total = 0
		for i := range weights {
			weights[i] /= largest
			total += weights[i]
		}
	}
	if !(total > 0) {
		if len(items) > 0 {
			Logger().Debug("degenerate total weight", "total", total, "items", len(items))
		}
		total = 0
	}

	res := make([]Slice[T], len(items))
	start := 0.0
	for i, it := range items {
		sweep := 0.0
		if total > 0 {
			sweep = weights[i] / total * FullCircleDegrees
		}
		res[i] = Slice[T]{Item: it, StartAngle: start, SweepAngle: sweep}
		start += sweep
	}
	return res
}

// AllocateIndependent gives every item its own sweep, relative to a
// common track weight (see [TrackWeight]), so that an item whose value
// equals the track weight sweeps a full circle. All slices start at
// [YAxisStartAngle].
//
// Sweeps exceed 360° if an item is heavier than the track weight. This
// only happens when maxWeight is given explicitly. Sweeps which overflow
// are clamped to [math.MaxFloat64].
func AllocateIndependent[T any](items []ChartItem[T], maxWeight float64) []Slice[T] {
	track := TrackWeight(items, maxWeight)
	if track == 0 && len(items) > 0 {
		Logger().Debug("degenerate track weight", "items", len(items))
	}

	res := make([]Slice[T], len(items))
	for i, it := range items {
		sweep := 0.0
		if track > 0 {
			sweep = it.weight() / track * FullCircleDegrees
			if math.IsInf(sweep, 1) {
				// tiny explicit maxWeight: the ring overlaps itself
				sweep = math.MaxFloat64
			}
		}
		res[i] = Slice[T]{Item: it, StartAngle: YAxisStartAngle, SweepAngle: sweep}
	}
	return res
}

// TrackWeight returns the reference weight of a race chart: maxWeight if
// it is positive and finite, the largest item value otherwise, and 1 if
// there are no items.
func TrackWeight[T any](items []ChartItem[T], maxWeight float64) float64 {
	if maxWeight > 0 && !math.IsInf(maxWeight, 1) {
		return maxWeight
	}
	if len(items) == 0 {
		return 1
	}
	track := 0.0
	for i := range items {
		track = max(track, items[i].weight())
	}
	return track
}
