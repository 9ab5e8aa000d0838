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

// Command radialdemo renders the donut and race charts without a window
// system: as PNG frame sequences, as a single PDF page, or in real time.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"seehuhn.de/go/radial"
	"seehuhn.de/go/radial/testcases"
)

var (
	scenarioName string
	itemsPath    string
	background   string
	verbose      bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "radialdemo",
		Short: "Render animated radial charts",
		Long: `radialdemo renders the donut and race charts from a named scenario,
optionally with the items replaced by a JSON file.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelWarn
			if verbose {
				level = slog.LevelDebug
			}
			h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
			radial.SetLogger(slog.New(h))
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&scenarioName, "scenario", "s", "donut_preview_ring",
		"Scenario to render, one of: "+strings.Join(testcases.Names(), ", "))
	flags.StringVarP(&itemsPath, "items", "i", "", "JSON file with chart items, replacing the scenario items")
	flags.StringVar(&background, "bg", "#ffffff", "Background colour, #rrggbb or #rrggbbaa")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Log state transitions to stderr")

	rootCmd.AddCommand(
		newFramesCmd(),
		newPDFCmd(),
		newSlicesCmd(),
		newPlayCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadScenario returns the selected scenario, with its items replaced if
// an items file was given.
func loadScenario() (testcases.Scenario, error) {
	sc, ok := testcases.Lookup(scenarioName)
	if !ok {
		return sc, fmt.Errorf("unknown scenario %q", scenarioName)
	}
	if itemsPath != "" {
		items, err := readItems(itemsPath)
		if err != nil {
			return sc, err
		}
		sc.Items = items
	}
	return sc, nil
}
