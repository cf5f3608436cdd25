// Package term defines the expression tree evaluated by the galaxy
// interpreter: integer literals, variable references, applications and
// primitive operators, plus a memoizing wrapper used for call-by-need
// sharing.
package term

import (
	"fmt"
	"strings"
)

// Term is any node in the expression tree. Every concrete type below
// implements it.
type Term interface {
	fmt.Stringer
	isTerm()
}

// Num is a 64-bit signed integer literal.
type Num struct {
	Value int64
}

func (Num) isTerm() {}

// String renders the literal in decimal.
func (n Num) String() string {
	return fmt.Sprintf("%d", n.Value)
}

// Var is a reference to a name in the environment. Names beginning with
// ":" or "x" are permitted even when not (yet) bound, per the galaxy
// grammar's free-variable convention.
type Var struct {
	Name string
}

func (Var) isTerm() {}

func (v Var) String() string {
	return v.Name
}

// Ap is the application of Fun to Arg.
type Ap struct {
	Fun *Shared
	Arg *Shared
}

func (Ap) isTerm() {}

func (a Ap) String() string {
	return fmt.Sprintf("ap %s %s", a.Fun.Term(), a.Arg.Term())
}

// Op is a primitive applied to zero or more already-bound arguments. An
// Op is partial while len(Args) < Arity(Prim) and saturated (ready to
// fire its reduction rule) exactly when equality holds.
type Op struct {
	Prim Primitive
	Args []*Shared
}

func (Op) isTerm() {}

func (o Op) String() string {
	var b strings.Builder
	//
	b.WriteString(o.Prim.String())
	//
	for _, a := range o.Args {
		rendered := b.String()
		b.Reset()
		b.WriteString("ap ")
		b.WriteString(rendered)
		b.WriteString(" ")
		b.WriteString(a.Term().String())
	}
	//
	return b.String()
}

// Boolean constructs the saturated Op for a Go bool, per the galaxy
// convention that booleans are t/f applied to zero arguments.
func Boolean(b bool) Term {
	if b {
		return Op{Prim: T}
	}
	//
	return Op{Prim: F}
}

// Nil is the saturated nil constant.
func Nil() Term {
	return Op{Prim: NilPrim}
}

// Cons constructs an Ap-spine encoding of cons applied to hd and tl,
// i.e. "ap ap cons hd tl", the same shape the parser produces for list
// sugar.
func Cons(hd, tl *Shared) Term {
	return Ap{
		Fun: NewShared(Ap{Fun: NewShared(Op{Prim: ConsPrim}), Arg: hd}),
		Arg: tl,
	}
}

// Pair constructs an already-saturated cons cell directly, i.e. the WHNF
// that "ap ap cons hd tl" reduces to. Used by code (the codec's
// decoder) that builds values already known to be in normal form,
// without paying for a redundant trip through eval.
func Pair(hd, tl *Shared) Term {
	return Op{Prim: ConsPrim, Args: []*Shared{hd, tl}}
}
