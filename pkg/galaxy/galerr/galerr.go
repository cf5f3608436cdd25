// Package galerr defines the single fatal-error type raised by every
// package under pkg/galaxy. Every error path the core can hit — a bad
// parse, forcing a value to the wrong shape, an unknown interact flag,
// a transport failure — is fatal to the current tick (spec §7), so
// rather than threading distinct error types through every layer, the
// core raises a *Fault via panic and a single boundary function per
// entry point recovers it back into a normal error return.
package galerr

import "fmt"

// Kind classifies which of the fatal conditions spec §7 enumerates
// produced a Fault.
type Kind int

// The five fatal-condition kinds named in spec §7, "Error handling
// design".
const (
	// ParseFault is an unknown identifier, an unterminated list, or
	// exhausted input while parsing.
	ParseFault Kind = iota
	// TypeFault is forcing a term to a shape (Num, pair, list) it
	// does not have.
	TypeFault
	// FlagFault is an interact flag outside {0, 1}.
	FlagFault
	// TransportFault is a failure in the alien-server round trip.
	TransportFault
	// PrimitiveFault is a saturated primitive reducing to an
	// impossible shape, e.g. division by zero or an application of the
	// reserved mod/dem tokens.
	PrimitiveFault
)

func (k Kind) String() string {
	switch k {
	case ParseFault:
		return "parse fault"
	case TypeFault:
		return "type fault"
	case FlagFault:
		return "flag fault"
	case TransportFault:
		return "transport fault"
	case PrimitiveFault:
		return "primitive fault"
	default:
		return "fault"
	}
}

// Fault is the error type every fatal condition in the core is reported
// as. Term carries the offending term or bit-string rendered to text,
// per spec §7's requirement that the signal "carries the offending term
// or bit-string".
type Fault struct {
	Kind   Kind
	Term   string
	Detail string
}

// New constructs a Fault of the given kind.
func New(kind Kind, term, detail string) *Fault {
	return &Fault{Kind: kind, Term: term, Detail: detail}
}

func (f *Fault) Error() string {
	if f.Term == "" {
		return fmt.Sprintf("%s: %s", f.Kind, f.Detail)
	}
	//
	return fmt.Sprintf("%s: %s (in %q)", f.Kind, f.Detail, f.Term)
}

// Raise panics with a freshly constructed Fault. Every core package
// calls this instead of returning an error directly; Recover at the
// tick boundary turns it back into one.
func Raise(kind Kind, term, detail string) {
	panic(New(kind, term, detail))
}

// Recover, deferred at a boundary function, converts a panicking Fault
// into *err. A panic carrying anything other than a *Fault is
// re-panicked unchanged — it indicates a bug in this repository, not a
// condition spec §7 anticipates.
func Recover(err *error) {
	r := recover()
	if r == nil {
		return
	}
	//
	if fault, ok := r.(*Fault); ok {
		*err = fault
		return
	}
	//
	panic(r)
}
