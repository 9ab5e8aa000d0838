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
	"fmt"
	"io"
	"os"

	"seehuhn.de/go/radial"
	"seehuhn.de/go/radial/surface"
)

// backend is a raster canvas which can be saved as PNG.
type backend struct {
	canvas radial.Canvas
	save   func(fname string) error
	close  func() error
}

func newBackend(name string, width, height int) (*backend, error) {
	bg, err := parseColor(background)
	if err != nil {
		return nil, err
	}

	switch name {
	case "raster":
		s := surface.NewImage(width, height, bg)
		return &backend{canvas: s, save: pngWriter(s.WritePNG)}, nil
	case "vector":
		s := surface.NewVector(width, height, bg)
		return &backend{canvas: s, save: pngWriter(s.WritePNG)}, nil
	case "gg":
		s := surface.NewGG(width, height, bg)
		return &backend{canvas: s, save: s.SavePNG, close: s.Close}, nil
	default:
		return nil, fmt.Errorf("unknown backend %q (must be raster, vector or gg)", name)
	}
}

func (b *backend) Close() error {
	if b.close == nil {
		return nil
	}
	fn := b.close
	b.close = nil
	return fn()
}

func pngWriter(write func(io.Writer) error) func(string) error {
	return func(fname string) error {
		f, err := os.Create(fname)
		if err != nil {
			return err
		}
		if err := write(f); err != nil {
			f.Close()
			return err
		}
		return f.Close()
	}
}
