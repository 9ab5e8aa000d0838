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
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"seehuhn.de/go/radial"
	"seehuhn.de/go/radial/anim"
)

func newPlayCmd() *cobra.Command {
	var (
		outPath     string
		backendName string
		runFor      time.Duration
		tapEvery    time.Duration
		fps         int
	)

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Run the animation in real time",
		Long: `play drives the chart with the wall clock at the given frame rate.
With --tap-every, restart requests are sent periodically, the way taps on
the chart would. The last frame is written to a PNG file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if fps <= 0 {
				return fmt.Errorf("invalid frame rate %d", fps)
			}
			sc, err := loadScenario()
			if err != nil {
				return err
			}
			b, err := newBackend(backendName, sc.Width, sc.Height)
			if err != nil {
				return err
			}
			defer b.Close()

			chart, err := sc.NewChart(time.Now())
			if err != nil {
				return err
			}
			defer chart.Close()

			frames := 0
			scene := &radial.Scene{
				Chart:   chart,
				Canvas:  b.canvas,
				Present: func(time.Time) { frames++ },
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			if runFor > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, runFor)
				defer cancel()
			}

			player := anim.NewPlayer(scene)
			player.Interval = time.Second / time.Duration(fps)
			player.StopWhenSettled = tapEvery <= 0

			if tapEvery > 0 {
				go func() {
					t := time.NewTicker(tapEvery)
					defer t.Stop()
					for {
						select {
						case <-ctx.Done():
							return
						case <-t.C:
							radial.Logger().Info("tap")
							player.Tap()
						}
					}
				}()
			}

			start := time.Now()
			err = player.Run(ctx)
			if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
				err = nil
			}
			if err != nil {
				return err
			}
			radial.Logger().Info("player stopped",
				"frames", frames,
				"elapsed", time.Since(start))

			if err := b.save(outPath); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "rendered %d frames, last frame in %s\n", frames, outPath)
			return b.Close()
		},
	}

	cmd.Flags().StringVarP(&outPath, "output", "o", "last.png", "Output file for the last frame")
	cmd.Flags().StringVarP(&backendName, "backend", "b", "raster", "Rasteriser: raster, vector or gg")
	cmd.Flags().DurationVar(&runFor, "for", 0, "Stop after this time (default: when settled, or 10s with --tap-every)")
	cmd.Flags().DurationVar(&tapEvery, "tap-every", 0, "Send a restart request at this interval")
	cmd.Flags().IntVar(&fps, "fps", 60, "Frames per second")

	cmd.PreRun = func(cmd *cobra.Command, args []string) {
		if tapEvery > 0 && runFor <= 0 {
			runFor = 10 * time.Second
		}
	}
	return cmd
}
