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

	"github.com/spf13/cobra"

	"github.com/ogiekako/icfpc2020-postmortem/pkg/galaxy/eval"
	"github.com/ogiekako/icfpc2020-postmortem/pkg/galaxy/library"
	"github.com/ogiekako/icfpc2020-postmortem/pkg/galaxy/modulate"
	"github.com/ogiekako/icfpc2020-postmortem/pkg/galaxy/parser"
	"github.com/ogiekako/icfpc2020-postmortem/pkg/galaxy/term"
)

var modulateCmd = &cobra.Command{
	Use:   "modulate expr",
	Short: "Evaluate expr and modulate the result into a bit string.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		env, err := library.Default()
		if err != nil {
			fatal(err)
		}
		//
		parsed, err := parser.ParseExpr(args[0], env)
		if err != nil {
			fatal(err)
		}
		//
		sess := eval.NewSession(env)
		fmt.Println(modulate.Encode(sess, term.NewShared(parsed)))
	},
}

var demodulateCmd = &cobra.Command{
	Use:   "demodulate bits",
	Short: "Demodulate a bit string back into a galaxy value's text form.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(modulate.Decode(args[0]).String())
	},
}

func init() {
	rootCmd.AddCommand(modulateCmd)
	rootCmd.AddCommand(demodulateCmd)
}
