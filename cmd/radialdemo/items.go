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

package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"image/color"
	"os"
	"strings"

	"seehuhn.de/go/radial"
)

// jsonItem is the file format of a chart item.
//
//	[{"value": 10, "label": "a", "color": "#ff0000"}, ...]
type jsonItem struct {
	Value float64 `json:"value"`
	Label string  `json:"label,omitempty"`
	Desc  string  `json:"desc,omitempty"`
	Color string  `json:"color,omitempty"`
}

func readItems(fname string) ([]radial.ChartItem[float64], error) {
	data, err := os.ReadFile(fname)
	if err != nil {
		return nil, err
	}
	var raw []jsonItem
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}

	items := make([]radial.ChartItem[float64], len(raw))
	for i, it := range raw {
		var col color.NRGBA
		if it.Color != "" {
			col, err = parseColor(it.Color)
			if err != nil {
				return nil, fmt.Errorf("%s: item %d: %w", fname, i, err)
			}
		}
		items[i] = radial.ChartItem[float64]{
			Data:  it.Value,
			Value: it.Value,
			Label: it.Label,
			Desc:  it.Desc,
			Color: col,
		}
	}
	return items, nil
}

// parseColor parses #rrggbb and #rrggbbaa.
func parseColor(s string) (color.NRGBA, error) {
	b, err := hex.DecodeString(strings.TrimPrefix(s, "#"))
	if err != nil || (len(b) != 3 && len(b) != 4) {
		return color.NRGBA{}, fmt.Errorf("invalid colour %q", s)
	}
	c := color.NRGBA{R: b[0], G: b[1], B: b[2], A: 0xFF}
	if len(b) == 4 {
		c.A = b[3]
	}
	return c, nil
}
