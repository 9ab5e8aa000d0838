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
	"image/color"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"seehuhn.de/go/radial/surface"
	"seehuhn.de/go/radial/testcases"
)

func newPDFCmd() *cobra.Command {
	var (
		outPath string
		at      time.Duration
		all     bool
	)

	cmd := &cobra.Command{
		Use:   "pdf",
		Short: "Write one frame of the animation as a PDF page",
		Long: `pdf draws the chart as it appears at the given time after the
animation start. By default the settled chart is drawn. With --all, one
file per scenario is written to the output directory.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			bg, err := parseColor(background)
			if err != nil {
				return err
			}

			if all {
				dir := outPath
				if dir == "" {
					dir = "."
				}
				if err := os.MkdirAll(dir, 0755); err != nil {
					return err
				}
				for _, name := range testcases.Names() {
					sc, _ := testcases.Lookup(name)
					fname := filepath.Join(dir, name+".pdf")
					if err := writePDF(fname, sc, at, bg); err != nil {
						return fmt.Errorf("%s: %w", name, err)
					}
					fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", fname)
				}
				return nil
			}

			sc, err := loadScenario()
			if err != nil {
				return err
			}
			if outPath == "" {
				outPath = scenarioName + ".pdf"
			}
			if err := writePDF(outPath, sc, at, bg); err != nil {
				return fmt.Errorf("%s: %w", outPath, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", outPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "output", "o", "", "Output file, or directory with --all (default: <scenario>.pdf)")
	cmd.Flags().DurationVar(&at, "at", -1, "Time after the animation start (default: end of the animation)")
	cmd.Flags().BoolVar(&all, "all", false, "Write every scenario")
	return cmd
}

// writePDF draws the chart of sc at time at after the animation start.
// A negative at selects the end of the animation.
func writePDF(fname string, sc testcases.Scenario, at time.Duration, bg color.NRGBA) error {
	if at < 0 {
		at = sc.Duration()
	}
	chart, err := sc.NewChart(epoch)
	if err != nil {
		return err
	}
	defer chart.Close()

	page, err := surface.NewPDF(fname, float64(sc.Width), float64(sc.Height), bg)
	if err != nil {
		return err
	}
	chart.Draw(page, epoch.Add(at))
	return page.Close()
}
