package term_test

import (
	"testing"

	"github.com/ogiekako/icfpc2020-postmortem/pkg/galaxy/term"
)

func TestNumString(t *testing.T) {
	if got := (term.Num{Value: -7}).String(); got != "-7" {
		t.Errorf("Num{-7}.String() = %q, want %q", got, "-7")
	}
}

func TestApString(t *testing.T) {
	a := term.Ap{
		Fun: term.NewShared(term.Var{Name: "car"}),
		Arg: term.NewShared(term.Num{Value: 1}),
	}
	//
	if got := a.String(); got != "ap car 1" {
		t.Errorf("Ap.String() = %q, want %q", got, "ap car 1")
	}
}

func TestOpStringBuildsApSpine(t *testing.T) {
	op := term.Op{Prim: term.ConsPrim, Args: []*term.Shared{
		term.NewShared(term.Num{Value: 1}),
		term.NewShared(term.Num{Value: 2}),
	}}
	//
	if got := op.String(); got != "ap ap cons 1 2" {
		t.Errorf("Op.String() = %q, want %q", got, "ap ap cons 1 2")
	}
}

func TestOpStringPartial(t *testing.T) {
	op := term.Op{Prim: term.ConsPrim, Args: []*term.Shared{
		term.NewShared(term.Num{Value: 1}),
	}}
	//
	if got := op.String(); got != "ap cons 1" {
		t.Errorf("Op.String() = %q, want %q", got, "ap cons 1")
	}
}

func TestBoolean(t *testing.T) {
	tt, ok := term.Boolean(true).(term.Op)
	if !ok || tt.Prim != term.T {
		t.Errorf("Boolean(true) = %v, want Op{Prim: T}", term.Boolean(true))
	}
	//
	ff, ok := term.Boolean(false).(term.Op)
	if !ok || ff.Prim != term.F {
		t.Errorf("Boolean(false) = %v, want Op{Prim: F}", term.Boolean(false))
	}
}

func TestNilIsSaturated(t *testing.T) {
	n, ok := term.Nil().(term.Op)
	if !ok || n.Prim != term.NilPrim || len(n.Args) != 0 {
		t.Errorf("Nil() = %v, want a zero-arg NilPrim op", term.Nil())
	}
}

func TestConsBuildsApSpine(t *testing.T) {
	hd := term.NewShared(term.Num{Value: 1})
	tl := term.NewShared(term.Nil())
	//
	got, ok := term.Cons(hd, tl).(term.Ap)
	if !ok {
		t.Fatalf("Cons(...) = %v, want an Ap", term.Cons(hd, tl))
	}
	//
	inner, ok := got.Fun.Term().(term.Ap)
	if !ok {
		t.Fatalf("Cons(...).Fun = %v, want a nested Ap", got.Fun.Term())
	}
	//
	if op, ok := inner.Fun.Term().(term.Op); !ok || op.Prim != term.ConsPrim {
		t.Errorf("innermost function is %v, want the bare ConsPrim op", inner.Fun.Term())
	}
	//
	if inner.Arg != hd {
		t.Errorf("Cons did not thread hd through unchanged")
	}
	//
	if got.Arg != tl {
		t.Errorf("Cons did not thread tl through unchanged")
	}
}

func TestPairIsAlreadySaturated(t *testing.T) {
	hd := term.NewShared(term.Num{Value: 1})
	tl := term.NewShared(term.Nil())
	//
	got, ok := term.Pair(hd, tl).(term.Op)
	if !ok || got.Prim != term.ConsPrim || len(got.Args) != 2 {
		t.Fatalf("Pair(...) = %v, want a saturated ConsPrim op", term.Pair(hd, tl))
	}
	//
	if got.Args[0] != hd || got.Args[1] != tl {
		t.Errorf("Pair did not thread hd/tl through unchanged")
	}
}

func TestCloneLeavesNumAndVarUnchanged(t *testing.T) {
	if got := term.Clone(term.Num{Value: 5}); got != (term.Num{Value: 5}) {
		t.Errorf("Clone(Num) = %v, want unchanged", got)
	}
	//
	if got := term.Clone(term.Var{Name: "x0"}); got != (term.Var{Name: "x0"}) {
		t.Errorf("Clone(Var) = %v, want unchanged", got)
	}
}

func TestCloneAllocatesFreshSharedCells(t *testing.T) {
	hd := term.NewShared(term.Num{Value: 1})
	hd.Store(term.Num{Value: 1}) // mark forced, so a shallow copy would leak this.
	//
	orig := term.Ap{Fun: term.NewShared(term.Op{Prim: term.ConsPrim}), Arg: hd}
	//
	cloned, ok := term.Clone(orig).(term.Ap)
	if !ok {
		t.Fatalf("Clone(Ap) = %v, want an Ap", term.Clone(orig))
	}
	//
	if cloned.Arg == orig.Arg {
		t.Errorf("Clone reused the original Shared cell instead of allocating a fresh one")
	}
	//
	if cloned.Arg.Forced() {
		t.Errorf("cloned cell inherited the forced flag; clones must start unforced")
	}
	//
	if cloned.Arg.Term() != (term.Num{Value: 1}) {
		t.Errorf("Clone changed the held value")
	}
}

func TestCloneOpDeepCopiesArgs(t *testing.T) {
	orig := term.Op{Prim: term.Add, Args: []*term.Shared{
		term.NewShared(term.Num{Value: 1}),
		term.NewShared(term.Num{Value: 2}),
	}}
	//
	cloned, ok := term.Clone(orig).(term.Op)
	if !ok {
		t.Fatalf("Clone(Op) = %v, want an Op", term.Clone(orig))
	}
	//
	for i := range orig.Args {
		if cloned.Args[i] == orig.Args[i] {
			t.Errorf("Clone reused Args[%d]'s Shared cell", i)
		}
	}
}

func TestPrimitiveArityAndName(t *testing.T) {
	for _, tc := range []struct {
		prim  term.Primitive
		name  string
		arity int
	}{
		{term.Add, "add", 2},
		{term.Neg, "neg", 1},
		{term.S, "s", 3},
		{term.ConsPrim, "cons", 3},
		{term.NilPrim, "nil", 1},
	} {
		if got := tc.prim.String(); got != tc.name {
			t.Errorf("%v.String() = %q, want %q", tc.prim, got, tc.name)
		}
		//
		if got := tc.prim.Arity(); got != tc.arity {
			t.Errorf("%v.Arity() = %d, want %d", tc.prim, got, tc.arity)
		}
	}
}

func TestLookupPrimitiveResolvesVecToCons(t *testing.T) {
	p, ok := term.LookupPrimitive("vec")
	if !ok || p != term.ConsPrim {
		t.Errorf("LookupPrimitive(\"vec\") = (%v, %v), want (ConsPrim, true)", p, ok)
	}
}

func TestLookupPrimitiveMissOnUnknownToken(t *testing.T) {
	if _, ok := term.LookupPrimitive("galaxy"); ok {
		t.Errorf("LookupPrimitive(\"galaxy\") should miss")
	}
}
