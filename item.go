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
	"image/color"
	"math"
)

// ChartItem is one weighted entry of a chart.
// Renderers only read items; they keep their own copy of the item list.
type ChartItem[T any] struct {
	// Data is an opaque payload for the caller.
	Data T

	// Value is the weight of the item. Negative, NaN and infinite values
	// are treated as 0.
	Value float64

	Label string
	Desc  string

	// Color is the fill colour of the item. The zero value selects
	// opaque red.
	Color color.NRGBA
}

var defaultItemColor = color.NRGBA{R: 0xFF, A: 0xFF}

// fill returns the colour used to draw the item.
func (it *ChartItem[T]) fill() color.NRGBA {
	if it.Color == (color.NRGBA{}) {
		return defaultItemColor
	}
	return it.Color
}

// weight returns the item value normalised to a finite, non-negative number.
func (it *ChartItem[T]) weight() float64 {
	v := it.Value
	if v >= 0 && !math.IsInf(v, 1) {
		return v
	}
	Logger().Debug("item value normalised to 0",
		"label", it.Label,
		"value", v)
	return 0
}

// withAlpha returns c with its opacity replaced by a, in [0, 1].
func withAlpha(c color.NRGBA, a float64) color.NRGBA {
	c.A = uint8(math.Round(min(max(a, 0), 1) * 255))
	return c
}
