// Package host is the thin façade spec §4.5 describes: construct an
// interpreter once, run ticks against it, and read the result back
// through plain accessors, rather than handing the caller the
// evaluator's own internal types.
package host

import (
	"github.com/sirupsen/logrus"

	"github.com/ogiekako/icfpc2020-postmortem/pkg/galaxy/interact"
	"github.com/ogiekako/icfpc2020-postmortem/pkg/galaxy/library"
	"github.com/ogiekako/icfpc2020-postmortem/pkg/galaxy/parser"
	"github.com/ogiekako/icfpc2020-postmortem/pkg/galaxy/transport"
)

// Interpreter loads the protocol library once and runs ticks against
// it. A single Interpreter may be reused across many ticks, and
// distinct Interpreter values are safe to use from different
// goroutines concurrently (see SPEC_FULL.md §5); a single Interpreter's
// Galaxy method is not safe to call reentrantly from multiple
// goroutines at once.
type Interpreter struct {
	env *library.Environment
	log *logrus.Entry
}

// New loads the bundled library and constructs an Interpreter.
func New() (*Interpreter, error) {
	env, err := library.Default()
	if err != nil {
		return nil, err
	}
	//
	return &Interpreter{env: env, log: logrus.NewEntry(logrus.StandardLogger())}, nil
}

// WithLogger returns a copy of it that logs send/receive activity
// through log instead of the standard logger.
func (it *Interpreter) WithLogger(log *logrus.Entry) *Interpreter {
	return &Interpreter{env: it.env, log: log}
}

// Define adds or replaces a library binding, e.g. a self-defined
// protocol (spec §8 scenario 7). Intended for tests and the REPL; it
// is not safe to call concurrently with a Galaxy call against the same
// Interpreter.
func (it *Interpreter) Define(name, expr string) error {
	t, err := parser.ParseExpr(expr, it.env)
	if err != nil {
		return err
	}
	//
	it.env.Define(name, t)
	//
	return nil
}

// Galaxy runs one interact tick of protocol against state and the
// click (x, y), using apiKey for any alien-server round trips the
// protocol requests.
func (it *Interpreter) Galaxy(protocol, state string, x, y int64, apiKey string) (*InteractResult, error) {
	sender := transport.NewHTTPSender(apiKey)
	//
	result, err := interact.Tick(it.env, sender, protocol, state, x, y, it.log)
	if err != nil {
		return nil, err
	}
	//
	return &InteractResult{result: result}, nil
}

// InteractResult is the opaque result handle spec §4.5 describes,
// exposing only the accessors named there.
type InteractResult struct {
	result interact.Result
}

// State returns the new, canonicalized state text.
func (r *InteractResult) State() string {
	return r.result.State
}

// ImageCount returns the number of images the tick produced.
func (r *InteractResult) ImageCount() int {
	return len(r.result.Images)
}

// Image returns the i'th image.
func (r *InteractResult) Image(i int) Image {
	return Image{points: r.result.Images[i]}
}

// Image is an ordered, lexicographically-sorted sequence of points.
type Image struct {
	points interact.Image
}

// Count returns the number of points in the image.
func (im Image) Count() int {
	return len(im.points)
}

// Point returns the i'th point as (x, y).
func (im Image) Point(i int) (int64, int64) {
	p := im.points[i]
	return p.X, p.Y
}
