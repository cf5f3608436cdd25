// Package eval implements call-by-need weak-head-normal-form reduction
// over term.Term trees against a library.Environment, grounded on
// original_source/interpreter/src/lib.rs's Expr::eval and restyled as
// the iterative "spine machine" spec §9 recommends in place of naive
// recursion: Session.whnf walks the left spine of nested Ap nodes using
// an explicit stack (internal/util/stack, adapted from the compiler's
// pkg/util/collection/stack) instead of the Go call stack, so deeply
// left-nested application chains don't exhaust it.
package eval

import (
	"fmt"

	"github.com/ogiekako/icfpc2020-postmortem/internal/util/stack"
	"github.com/ogiekako/icfpc2020-postmortem/pkg/galaxy/galerr"
	"github.com/ogiekako/icfpc2020-postmortem/pkg/galaxy/library"
	"github.com/ogiekako/icfpc2020-postmortem/pkg/galaxy/term"
)

// Session evaluates terms against a single Environment for the
// duration of one tick. Its memo caches, per name, the one *term.Shared
// a Var reference to that name resolves to during this Session's
// lifetime — sharing work across repeated references to the same
// library definition within one tick, without ever mutating the
// Environment's own copy (spec §5; see term.Clone).
type Session struct {
	env  *library.Environment
	memo map[string]*term.Shared
}

// NewSession starts a fresh evaluation session over env. Callers
// construct a fresh Session at least once per tick (interact.Tick makes
// one for each evaluate/send round); reusing a Session across ticks would
// let one tick's memoized reductions leak into the next, which spec §5
// explicitly rules out.
func NewSession(env *library.Environment) *Session {
	return &Session{env: env, memo: make(map[string]*term.Shared)}
}

// Eval reduces t to weak head normal form. Panics with a *galerr.Fault
// on any of the fatal conditions in spec §7; callers at a package
// boundary should defer galerr.Recover.
func (s *Session) Eval(t term.Term) term.Term {
	return s.whnf(t)
}

// Force reduces the term held by sh to WHNF, caching the result in sh
// so a second Force call (or a second Var reference resolving to the
// same cell) returns instantly.
func (s *Session) Force(sh *term.Shared) term.Term {
	if sh.Forced() {
		return sh.Term()
	}
	//
	result := s.whnf(sh.Term())
	sh.Store(result)
	//
	return result
}

// ForceNum forces sh and requires the result to be a Num.
func (s *Session) ForceNum(sh *term.Shared) int64 {
	v := s.Force(sh)
	//
	n, ok := v.(term.Num)
	if !ok {
		galerr.Raise(galerr.TypeFault, v.String(), "expected a number")
	}
	//
	return n.Value
}

// ForcePair forces sh and requires the result to be a saturated cons
// cell, returning its head and tail cells.
func (s *Session) ForcePair(sh *term.Shared) (*term.Shared, *term.Shared) {
	v := s.Force(sh)
	//
	op, ok := v.(term.Op)
	if !ok || op.Prim != term.ConsPrim || len(op.Args) != 2 {
		galerr.Raise(galerr.TypeFault, v.String(), "expected a cons pair")
	}
	//
	return op.Args[0], op.Args[1]
}

// ForceList repeatedly force-pairs sh, terminating on a saturated nil,
// and returns the ordered sequence of (still unforced) element cells.
func (s *Session) ForceList(sh *term.Shared) []*term.Shared {
	var elems []*term.Shared
	//
	for {
		v := s.Force(sh)
		//
		op, ok := v.(term.Op)
		if !ok {
			galerr.Raise(galerr.TypeFault, v.String(), "expected a list")
		}
		//
		switch {
		case op.Prim == term.NilPrim && len(op.Args) == 0:
			return elems
		case op.Prim == term.ConsPrim && len(op.Args) == 2:
			elems = append(elems, op.Args[0])
			sh = op.Args[1]
		default:
			galerr.Raise(galerr.TypeFault, v.String(), "expected a list")
		}
	}
}

// ForcePoint forces sh and requires a 2D integer point, i.e. a pair of
// numbers.
func (s *Session) ForcePoint(sh *term.Shared) (int64, int64) {
	hd, tl := s.ForcePair(sh)
	return s.ForceNum(hd), s.ForceNum(tl)
}

// whnf is the spine machine. It walks t's left-leaning chain of Ap
// nodes using an explicit stack of pending arguments rather than Go
// call recursion, matching spec §9's "push Ap left-children until an
// Op is reached, then match against the spine for saturation."
//
// The only recursion left is s.Force, invoked by reduce for primitives
// that must fully evaluate an operand to produce their own result
// (arithmetic, comparison, isnil) and by resolveVar when a Var's
// definition is looked up;
// that recursion is bounded by the operand's own structure, not by the
// total number of spine links walked to reach it.
func (s *Session) whnf(t term.Term) term.Term {
	pending := stack.NewStack[*term.Shared]()
	//
	for {
		switch v := t.(type) {
		case term.Num:
			if !pending.IsEmpty() {
				galerr.Raise(galerr.TypeFault, v.String(), "applying a number as a function")
			}
			//
			return v
		case term.Var:
			t = s.resolveVar(v.Name)
		case term.Ap:
			pending.Push(v.Arg)
			t = v.Fun.Term()
		case term.Op:
			args := v.Args
			//
			if !pending.IsEmpty() {
				args = append(append([]*term.Shared{}, args...), pending.Pop())
			}
			//
			switch {
			case len(args) < v.Prim.Arity():
				if len(args) == len(v.Args) {
					return v
				}
				//
				t = term.Op{Prim: v.Prim, Args: args}
			default:
				t = s.reduce(term.Op{Prim: v.Prim, Args: args})
			}
		default:
			galerr.Raise(galerr.TypeFault, fmt.Sprint(t), "unreduced term shape")
		}
	}
}

// resolveVar looks up name's per-tick memoized cell, cloning and
// registering it on first reference, then forces it.
func (s *Session) resolveVar(name string) term.Term {
	sh, ok := s.memo[name]
	//
	if !ok {
		tpl, found := s.env.Lookup(name)
		if !found {
			galerr.Raise(galerr.ParseFault, name, "reference to an unbound variable was forced")
		}
		//
		sh = term.NewShared(term.Clone(tpl))
		s.memo[name] = sh
	}
	//
	return s.Force(sh)
}
