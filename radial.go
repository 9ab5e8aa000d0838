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

// Package radial renders animated radial charts: a donut chart and a
// multi-ring "race" gauge.
//
// Weighted items are converted into angular slices, the slices are scaled
// by the progress of an animation, and the result is drawn as annulus
// wedges onto a [Canvas]. Angles are in degrees; 0° points to 3 o'clock
// and angles increase clockwise in device space, where the y axis points
// down.
//
// The package does no I/O and starts no goroutines. Canvas
// implementations live in the surface sub-package, frame loops in the
// anim sub-package.
package radial

import "time"

const (
	// FullCircleDegrees is the angle of a full turn.
	FullCircleDegrees = 360.0

	// YAxisStartAngle rotates angle zero from 3 o'clock to 12 o'clock.
	YAxisStartAngle = -90.0

	// TrackAlpha is the opacity of the backdrop ring of a race chart.
	TrackAlpha = 0.02

	// RestartDebounce is the time a restarted chart is held at zero
	// progress before the animation runs again.
	RestartDebounce = 200 * time.Millisecond
)
