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
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"seehuhn.de/go/radial"
)

// epoch is the start time of the synthetic clock.
var epoch = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)

func newFramesCmd() *cobra.Command {
	var (
		outDir      string
		fps         int
		backendName string
		size        int
		maxFrames   int
	)

	cmd := &cobra.Command{
		Use:   "frames",
		Short: "Write the animation as a numbered PNG sequence",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if fps <= 0 {
				return fmt.Errorf("invalid frame rate %d", fps)
			}
			sc, err := loadScenario()
			if err != nil {
				return err
			}
			w, h := sc.Width, sc.Height
			if size > 0 {
				w, h = size, size
			}

			b, err := newBackend(backendName, w, h)
			if err != nil {
				return err
			}
			defer b.Close()

			chart, err := sc.NewChart(epoch)
			if err != nil {
				return err
			}
			defer chart.Close()

			if err := os.MkdirAll(outDir, 0755); err != nil {
				return err
			}

			var frameErr error
			frame := 0
			scene := &radial.Scene{
				Chart:  chart,
				Canvas: b.canvas,
				Present: func(time.Time) {
					if frameErr != nil {
						return
					}
					fname := filepath.Join(outDir, fmt.Sprintf("%s_%04d.png", scenarioName, frame))
					frameErr = b.save(fname)
				},
			}

			step := time.Second / time.Duration(fps)
			for ; frame < maxFrames; frame++ {
				active := scene.Frame(epoch.Add(time.Duration(frame) * step))
				if frameErr != nil {
					return frameErr
				}
				if !active {
					frame++
					break
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d frames to %s\n", frame, outDir)
			return b.Close()
		},
	}

	cmd.Flags().StringVarP(&outDir, "output", "o", "frames", "Output directory")
	cmd.Flags().IntVar(&fps, "fps", 30, "Frames per second of the synthetic clock")
	cmd.Flags().StringVarP(&backendName, "backend", "b", "raster", "Rasteriser: raster, vector or gg")
	cmd.Flags().IntVar(&size, "size", 0, "Square canvas size in pixels (default: scenario size)")
	cmd.Flags().IntVar(&maxFrames, "max-frames", 1000, "Upper limit on the number of frames")
	return cmd
}
