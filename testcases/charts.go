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

package testcases

import (
	"seehuhn.de/go/radial"
	"seehuhn.de/go/radial/anim"
)

var donutCases = []Scenario{
	{
		Name:   "preview_pie",
		Kind:   Donut,
		Items:  Items(10, 20, 30, 40),
		Width:  200,
		Height: 200,
		Donut:  donutConfig(1),
	},
	{
		Name:   "preview_ring",
		Kind:   Donut,
		Items:  Items(10, 20, 30, 40),
		Width:  200,
		Height: 200,
		Donut:  donutConfig(0.4),
	},
	{
		Name:   "default_wide",
		Kind:   Donut,
		Items:  Items(10, 20, 30, 40),
		Width:  320,
		Height: 180,
		Donut:  radial.DefaultDonutConfig(),
	},
	{
		Name:   "single_item",
		Kind:   Donut,
		Items:  Items(7),
		Width:  96,
		Height: 96,
		Donut:  radial.DefaultDonutConfig(),
	},
	{
		Name:   "zero_total",
		Kind:   Donut,
		Items:  Items(0, 0, 0),
		Width:  96,
		Height: 96,
		Donut:  radial.DefaultDonutConfig(),
	},
	{
		Name:   "negative_clamped",
		Kind:   Donut,
		Items:  Items(-5, 25, 75),
		Width:  128,
		Height: 160,
		Donut:  radial.DefaultDonutConfig(),
	},
}

var raceCases = []Scenario{
	{
		Name:   "preview_thin",
		Kind:   Race,
		Items:  Items(10, 20, 30, 40),
		Width:  200,
		Height: 200,
		Race:   raceConfig(50, 0.3),
	},
	{
		Name:   "preview_hairline",
		Kind:   Race,
		Items:  Items(10, 20, 30, 40),
		Width:  200,
		Height: 200,
		Race:   raceConfig(50, 0.2),
	},
	{
		Name:   "derived_track",
		Kind:   Race,
		Items:  Items(10, 20, 30, 40),
		Width:  240,
		Height: 200,
		Race:   raceConfig(0, 0.2),
	},
	{
		Name:   "overflow",
		Kind:   Race,
		Items:  Items(30, 60),
		Width:  160,
		Height: 160,
		Race:   raceConfig(40, 0.4),
	},
	{
		Name:   "default_config",
		Kind:   Race,
		Items:  Items(3, 4),
		Width:  128,
		Height: 128,
		Race:   radial.DefaultRaceConfig(),
	},
}

func donutConfig(thickness float64) radial.DonutConfig {
	return radial.DonutConfig{
		Thickness:         thickness,
		AnimationDuration: anim.DefaultDuration,
	}
}

func raceConfig(maxWeight, thickness float64) radial.RaceConfig {
	return radial.RaceConfig{
		MaxWeight:         maxWeight,
		Thickness:         thickness,
		AnimationDuration: anim.DefaultDuration,
	}
}
