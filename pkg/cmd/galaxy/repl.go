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
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ogiekako/icfpc2020-postmortem/pkg/galaxy/host"
)

var replCmd = &cobra.Command{
	Use:   "repl [flags]",
	Short: "Run an interactive loop that keeps protocol state across ticks.",
	Long: `Start an interactive session: each line either defines a library binding
("name = expr"), or is treated as a click "x y" against the current protocol,
echoing the resulting images until the session is closed.`,
	Run: func(cmd *cobra.Command, args []string) {
		configureLogging(cmd)
		runReplCmd(cmd)
	},
}

// lineReader is the subset of golang.org/x/term.Terminal and
// bufio.Scanner this command needs, so the same loop below works
// whether stdin is an interactive TTY or a piped script.
type lineReader interface {
	ReadLine() (string, error)
}

type scannerReader struct{ s *bufio.Scanner }

func (r scannerReader) ReadLine() (string, error) {
	if !r.s.Scan() {
		if err := r.s.Err(); err != nil {
			return "", err
		}
		//
		return "", io.EOF
	}
	//
	return r.s.Text(), nil
}

func newLineReader(prompt string) lineReader {
	fd := int(os.Stdin.Fd())
	//
	if term.IsTerminal(fd) {
		return term.NewTerminal(struct {
			io.Reader
			io.Writer
		}{os.Stdin, os.Stdout}, prompt)
	}
	//
	return scannerReader{bufio.NewScanner(os.Stdin)}
}

func runReplCmd(cmd *cobra.Command) {
	it, err := host.New()
	if err != nil {
		fatal(err)
	}
	//
	protocol := GetString(cmd, "protocol")
	state := GetString(cmd, "state")
	apiKey := GetString(cmd, "api-key")
	//
	reader := newLineReader("galaxy> ")
	//
	for {
		line, err := reader.ReadLine()
		if errors.Is(err, io.EOF) {
			return
		} else if err != nil {
			fatal(err)
		}
		//
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		//
		if eq := strings.Index(line, " = "); eq >= 0 {
			if err := it.Define(line[:eq], line[eq+3:]); err != nil {
				fmt.Println(err)
			}
			//
			continue
		}
		//
		var x, y int64
		if _, err := fmt.Sscanf(line, "%d %d", &x, &y); err != nil {
			fmt.Printf("expected \"x y\" or \"name = expr\", got %q\n", line)
			continue
		}
		//
		result, err := it.Galaxy(protocol, state, x, y, apiKey)
		if err != nil {
			fmt.Println(err)
			continue
		}
		//
		state = result.State()
		//
		for i := 0; i < result.ImageCount(); i++ {
			img := result.Image(i)
			fmt.Printf("image %d:", i)
			//
			for j := 0; j < img.Count(); j++ {
				px, py := img.Point(j)
				fmt.Printf(" (%d,%d)", px, py)
			}
			//
			fmt.Println()
		}
	}
}

func init() {
	rootCmd.AddCommand(replCmd)
	replCmd.Flags().String("protocol", "galaxy", "the library name of the protocol to run")
	replCmd.Flags().String("state", "nil", "the initial protocol state, as galaxy expression text")
}
