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

// Package galaxycmd wires the galaxy interpreter up as a cobra CLI:
// one-shot expression evaluation, the wire codec, a single interact
// tick against the alien server, and an interactive REPL that keeps
// state across ticks.
package galaxycmd

import (
	"fmt"
	"os"
	"runtime/debug"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Version may be set at build time with -ldflags "-X"; when it is empty, the
// module version from the embedded build info is printed instead.
var Version string

var rootCmd = &cobra.Command{
	Use:   "galaxy",
	Short: "An interpreter for the ICFP2020 galaxy combinator language.",
	Long:  "An interpreter, wire codec and alien-server driver for the ICFP2020 galaxy combinator language.",
	Run: func(cmd *cobra.Command, args []string) {
		if GetFlag(cmd, "version") {
			fmt.Print("galaxy ")
			if Version != "" {
				fmt.Printf("%s", Version)
			} else if info, ok := debug.ReadBuildInfo(); ok {
				fmt.Printf("%s", info.Main.Version)
			} else {
				fmt.Printf("(unknown version)")
			}
			fmt.Println()
			//
			return
		}
		//
		cmd.Help() //nolint:errcheck
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func configureLogging(cmd *cobra.Command) {
	if GetFlag(cmd, "verbose") {
		log.SetLevel(log.DebugLevel)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging (driver send/receive and command activity)")
	rootCmd.PersistentFlags().Bool("version", false, "print version information")
	rootCmd.PersistentFlags().String("api-key", os.Getenv("API_KEY"), "API key for the alien server (defaults to $API_KEY)")
}
