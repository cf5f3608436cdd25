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
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ogiekako/icfpc2020-postmortem/pkg/galaxy/eval"
	"github.com/ogiekako/icfpc2020-postmortem/pkg/galaxy/library"
	"github.com/ogiekako/icfpc2020-postmortem/pkg/galaxy/parser"
	"github.com/ogiekako/icfpc2020-postmortem/pkg/galaxy/term"
)

var evalCmd = &cobra.Command{
	Use:   "eval [flags] expr...",
	Short: "Evaluate a galaxy expression to weak head normal form.",
	Long: `Evaluate a galaxy expression against the bundled protocol library and print the
reduced term. Multiple arguments are joined with spaces, so quoting the whole
expression is optional.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		configureLogging(cmd)
		runEvalCmd(strings.Join(args, " "), GetString(cmd, "define"))
	},
}

func runEvalCmd(expr, defineLine string) {
	env, err := library.Default()
	if err != nil {
		fatal(err)
	}
	//
	if defineLine != "" {
		name, t, err := parser.ParseLine(defineLine, env)
		if err != nil {
			fatal(err)
		}
		//
		env.Define(name, t)
	}
	//
	parsed, err := parser.ParseExpr(expr, env)
	if err != nil {
		fatal(err)
	}
	//
	log.WithField("expr", expr).Debug("evaluating")
	//
	result := evalTerm(env, parsed)
	fmt.Println(result)
}

func evalTerm(env *library.Environment, parsed term.Term) term.Term {
	sess := eval.NewSession(env)
	return sess.Eval(parsed)
}

func init() {
	rootCmd.AddCommand(evalCmd)
	evalCmd.Flags().String("define", "", `an extra "name = expr" library line, visible to expr`)
}
