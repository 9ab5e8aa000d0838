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
	"encoding/json"

	"github.com/spf13/cobra"

	"seehuhn.de/go/radial"
	"seehuhn.de/go/radial/testcases"
)

type jsonSlice struct {
	Label string  `json:"label,omitempty"`
	Value float64 `json:"value"`
	Start float64 `json:"start"`
	Sweep float64 `json:"sweep"`
	End   float64 `json:"end"`
}

type jsonAllocation struct {
	Scenario    string      `json:"scenario"`
	Mode        string      `json:"mode"`
	TrackWeight float64     `json:"track_weight,omitempty"`
	Slices      []jsonSlice `json:"slices"`
}

func newSlicesCmd() *cobra.Command {
	var pretty bool

	cmd := &cobra.Command{
		Use:   "slices",
		Short: "Print the angular allocation of the chart items as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := loadScenario()
			if err != nil {
				return err
			}

			out := jsonAllocation{Scenario: scenarioName}
			var slices []radial.Slice[float64]
			switch sc.Kind {
			case testcases.Race:
				out.Mode = "independent"
				out.TrackWeight = radial.TrackWeight(sc.Items, sc.Race.MaxWeight)
				slices = radial.AllocateIndependent(sc.Items, sc.Race.MaxWeight)
			default:
				out.Mode = "cumulative"
				slices = radial.AllocateCumulative(sc.Items)
			}
			for _, s := range slices {
				out.Slices = append(out.Slices, jsonSlice{
					Label: s.Item.Label,
					Value: s.Item.Value,
					Start: s.StartAngle,
					Sweep: s.SweepAngle,
					End:   s.EndAngle(),
				})
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			if pretty {
				enc.SetIndent("", "  ")
			}
			return enc.Encode(out)
		},
	}

	cmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	return cmd
}
