package eval

import (
	"github.com/ogiekako/icfpc2020-postmortem/pkg/galaxy/galerr"
	"github.com/ogiekako/icfpc2020-postmortem/pkg/galaxy/term"
)

// reduce fires op's reduction rule, assuming op is already saturated
// (len(op.Args) == op.Prim.Arity()). The structural primitives (s, c,
// b, i, t, f, car, cdr, cons, nil) rewrite into a new term for whnf's
// loop to keep unwinding — no forcing, no recursion, preserving
// laziness exactly (e.g. "t" never touches its unused second argument).
// Only the arithmetic, comparison and isnil rules must force their
// operands now, since their result is a concrete leaf value rather
// than a further-reducible term.
func (s *Session) reduce(op term.Op) term.Term {
	a := op.Args
	//
	switch op.Prim {
	case term.I:
		return a[0].Term()
	case term.T:
		return a[0].Term()
	case term.F:
		return a[1].Term()
	case term.B:
		// b x0 x1 x2 = ap x0 (ap x1 x2)
		return term.Ap{Fun: a[0], Arg: term.NewShared(term.Ap{Fun: a[1], Arg: a[2]})}
	case term.C:
		// c x0 x1 x2 = ap (ap x0 x2) x1
		return term.Ap{Fun: term.NewShared(term.Ap{Fun: a[0], Arg: a[2]}), Arg: a[1]}
	case term.S:
		// s x0 x1 x2 = ap (ap x0 x2) (ap x1 x2)
		return term.Ap{
			Fun: term.NewShared(term.Ap{Fun: a[0], Arg: a[2]}),
			Arg: term.NewShared(term.Ap{Fun: a[1], Arg: a[2]}),
		}
	case term.ConsPrim:
		// cons x0 x1 x2 = ap (ap x2 x0) x1
		return term.Ap{Fun: term.NewShared(term.Ap{Fun: a[2], Arg: a[0]}), Arg: a[1]}
	case term.Car:
		// car x0 = ap x0 t
		return term.Ap{Fun: a[0], Arg: term.NewShared(term.Boolean(true))}
	case term.Cdr:
		// cdr x0 = ap x0 f
		return term.Ap{Fun: a[0], Arg: term.NewShared(term.Boolean(false))}
	case term.NilPrim:
		// nil x0 = t
		return term.Boolean(true)
	case term.Neg:
		return term.Num{Value: -s.ForceNum(a[0])}
	case term.Add:
		return term.Num{Value: s.ForceNum(a[0]) + s.ForceNum(a[1])}
	case term.Mul:
		return term.Num{Value: s.ForceNum(a[0]) * s.ForceNum(a[1])}
	case term.Div:
		x, y := s.ForceNum(a[0]), s.ForceNum(a[1])
		if y == 0 {
			galerr.Raise(galerr.PrimitiveFault, op.String(), "division by zero")
		}
		//
		return term.Num{Value: x / y} // Go truncates toward zero, matching spec.
	case term.Eq:
		return term.Boolean(s.ForceNum(a[0]) == s.ForceNum(a[1]))
	case term.Lt:
		return term.Boolean(s.ForceNum(a[0]) < s.ForceNum(a[1]))
	case term.Isnil:
		return term.Boolean(s.isNil(a[0]))
	case term.Mod, term.Dem:
		galerr.Raise(galerr.PrimitiveFault, op.String(), "mod/dem are reserved and cannot be reduced directly")
		//
		return nil
	default:
		galerr.Raise(galerr.PrimitiveFault, op.String(), "unknown primitive")
		//
		return nil
	}
}

func (s *Session) isNil(sh *term.Shared) bool {
	v := s.Force(sh)
	//
	op, ok := v.(term.Op)
	if !ok {
		galerr.Raise(galerr.TypeFault, v.String(), "isnil applied to a non-list value")
	}
	//
	switch op.Prim {
	case term.NilPrim:
		return true
	case term.ConsPrim:
		return false
	default:
		galerr.Raise(galerr.TypeFault, v.String(), "isnil applied to a non-list value")
		//
		return false
	}
}
