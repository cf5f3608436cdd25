// Package library loads the protocol library — a flat "name =
// expression" text asset — into a name-to-term mapping, grounded on the
// parsing shape of original_source/interpreter/src/lib.rs's
// default_env() and restyled after the compiler's
// pkg/corset/environment.go (a small struct over a map, with
// Has/Lookup-style accessors and panics reserved for genuine
// programmer-error invariant violations rather than data errors, which
// go through galerr instead).
package library

import (
	_ "embed"
	"strings"

	"github.com/ogiekako/icfpc2020-postmortem/pkg/galaxy/parser"
	"github.com/ogiekako/icfpc2020-postmortem/pkg/galaxy/term"
)

//go:embed galaxy.txt
var defaultLibrary string

// Environment maps library names to their fully parsed term. It is
// built once by Load and is read-only thereafter: evaluation never
// mutates it (see term.Clone and eval.Session for how a tick borrows a
// definition without touching the copy stored here).
type Environment struct {
	defs map[string]term.Term
}

// Has reports whether name is bound in this environment. It also
// satisfies parser.Lookup, so the parser can accept forward references
// to names defined later in the same library text.
func (e *Environment) Has(name string) bool {
	_, ok := e.defs[name]
	return ok
}

// Lookup returns the template term bound to name, or false if name is
// unbound. The returned term must not be mutated in place; callers that
// need to evaluate it should term.Clone it first (eval.Session does
// this automatically).
func (e *Environment) Lookup(name string) (term.Term, bool) {
	t, ok := e.defs[name]
	return t, ok
}

// Define inserts or replaces a binding. Tests, the REPL and the eval
// command's --define flag use this to add self-defined protocols
// between ticks; production code should otherwise treat an Environment as
// immutable once Load has returned.
func (e *Environment) Define(name string, t term.Term) {
	e.defs[name] = t
}

// Default loads the bundled library asset.
func Default() (*Environment, error) {
	return Load(defaultLibrary)
}

// Load parses text — a sequence of "name = expression" lines — into a
// fresh Environment. Names may be referenced before their own
// definition appears later in the text, since every name is visible to
// the parser (via Has) from the very first line: the literal parsing
// order does not constrain the definition order of a combinator
// library, only the environment's completeness at the end.
func Load(text string) (*Environment, error) {
	env := &Environment{defs: make(map[string]term.Term)}
	lines := nonBlankLines(text)
	//
	// First pass: register every name so forward references resolve
	// via Has regardless of definition order.
	for _, line := range lines {
		name, _, ok := strings.Cut(line, " = ")
		if !ok {
			continue
		}
		//
		env.defs[name] = nil
	}
	//
	// Second pass: parse each body now that every name is known.
	for _, line := range lines {
		name, t, err := parser.ParseLine(line, env)
		if err != nil {
			return nil, err
		}
		//
		env.defs[name] = t
	}
	//
	return env, nil
}

func nonBlankLines(text string) []string {
	all := strings.Split(text, "\n")
	lines := make([]string, 0, len(all))
	//
	for _, line := range all {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	//
	return lines
}
