// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package galaxycmd

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ogiekako/icfpc2020-postmortem/pkg/galaxy/host"
)

var tickCmd = &cobra.Command{
	Use:   "tick [flags]",
	Short: "Run a single interact tick, sending to the alien server as needed.",
	Long: `Run interact(protocol, state, (x, y)) to a terminal flag, round-tripping
through the alien server whenever the protocol asks for it, and print the
resulting state and any images drawn.`,
	Run: func(cmd *cobra.Command, args []string) {
		configureLogging(cmd)
		runTickCmd(cmd)
	},
}

func runTickCmd(cmd *cobra.Command) {
	it, err := host.New()
	if err != nil {
		fatal(err)
	}
	//
	it = it.WithLogger(log.WithField("cmd", "tick"))
	//
	result, err := it.Galaxy(
		GetString(cmd, "protocol"),
		GetString(cmd, "state"),
		GetInt64(cmd, "x"),
		GetInt64(cmd, "y"),
		GetString(cmd, "api-key"),
	)
	if err != nil {
		fatal(err)
	}
	//
	fmt.Printf("state: %s\n", result.State())
	//
	for i := 0; i < result.ImageCount(); i++ {
		img := result.Image(i)
		fmt.Printf("image %d:", i)
		//
		for j := 0; j < img.Count(); j++ {
			x, y := img.Point(j)
			fmt.Printf(" (%d,%d)", x, y)
		}
		//
		fmt.Println()
	}
}

func init() {
	rootCmd.AddCommand(tickCmd)
	tickCmd.Flags().String("protocol", "galaxy", "the library name of the protocol to run")
	tickCmd.Flags().String("state", "nil", "the current protocol state, as galaxy expression text")
	tickCmd.Flags().Int64("x", 0, "click X coordinate")
	tickCmd.Flags().Int64("y", 0, "click Y coordinate")
}
