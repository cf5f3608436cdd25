package parser_test

import (
	"testing"

	"github.com/ogiekako/icfpc2020-postmortem/pkg/galaxy/galerr"
	"github.com/ogiekako/icfpc2020-postmortem/pkg/galaxy/parser"
	"github.com/ogiekako/icfpc2020-postmortem/pkg/galaxy/term"
)

// stubEnv reports a name bound iff it appears in the set.
type stubEnv map[string]bool

func (s stubEnv) Has(name string) bool { return s[name] }

func TestParseNum(t *testing.T) {
	got, err := parser.ParseExpr("42", nil)
	if err != nil {
		t.Fatalf("ParseExpr: %v", err)
	}
	//
	if n, ok := got.(term.Num); !ok || n.Value != 42 {
		t.Errorf("ParseExpr(42) = %v, want Num{42}", got)
	}
}

func TestParseNegativeNum(t *testing.T) {
	got, err := parser.ParseExpr("-1", nil)
	if err != nil {
		t.Fatalf("ParseExpr: %v", err)
	}
	//
	if n, ok := got.(term.Num); !ok || n.Value != -1 {
		t.Errorf("ParseExpr(-1) = %v, want Num{-1}", got)
	}
}

func TestParsePrimitive(t *testing.T) {
	got, err := parser.ParseExpr("cons", nil)
	if err != nil {
		t.Fatalf("ParseExpr: %v", err)
	}
	//
	if op, ok := got.(term.Op); !ok || op.Prim != term.ConsPrim || len(op.Args) != 0 {
		t.Errorf("ParseExpr(cons) = %v, want bare ConsPrim op", got)
	}
}

func TestParseVecAliasesToConsPrim(t *testing.T) {
	got, err := parser.ParseExpr("vec", nil)
	if err != nil {
		t.Fatalf("ParseExpr: %v", err)
	}
	//
	if op, ok := got.(term.Op); !ok || op.Prim != term.ConsPrim {
		t.Errorf("ParseExpr(vec) = %v, want ConsPrim", got)
	}
}

func TestParseApNesting(t *testing.T) {
	got, err := parser.ParseExpr("ap ap cons 1 2", nil)
	if err != nil {
		t.Fatalf("ParseExpr: %v", err)
	}
	//
	outer, ok := got.(term.Ap)
	if !ok {
		t.Fatalf("ParseExpr(...) = %v, want outer Ap", got)
	}
	//
	inner, ok := outer.Fun.Term().(term.Ap)
	if !ok {
		t.Fatalf("outer.Fun = %v, want inner Ap", outer.Fun.Term())
	}
	//
	if op, ok := inner.Fun.Term().(term.Op); !ok || op.Prim != term.ConsPrim {
		t.Errorf("innermost fn = %v, want bare ConsPrim", inner.Fun.Term())
	}
	//
	if n, ok := inner.Arg.Term().(term.Num); !ok || n.Value != 1 {
		t.Errorf("first arg = %v, want Num{1}", inner.Arg.Term())
	}
	//
	if n, ok := outer.Arg.Term().(term.Num); !ok || n.Value != 2 {
		t.Errorf("second arg = %v, want Num{2}", outer.Arg.Term())
	}
}

func TestParseListSugarDesugarsToNilTerminatedCons(t *testing.T) {
	got, err := parser.ParseExpr("( 1 , 2 )", nil)
	if err != nil {
		t.Fatalf("ParseExpr: %v", err)
	}
	//
	// (1, 2) desugars to ap ap cons 1 ap ap cons 2 nil.
	outer, ok := got.(term.Ap)
	if !ok {
		t.Fatalf("got %v, want an Ap", got)
	}
	//
	inner, ok := outer.Arg.Term().(term.Ap)
	if !ok {
		t.Fatalf("tail = %v, want a nested Ap for the second cons", outer.Arg.Term())
	}
	//
	innerInner, ok := inner.Fun.Term().(term.Ap)
	if !ok {
		t.Fatalf("tail.Fun = %v, want a nested Ap", inner.Fun.Term())
	}
	//
	if n, ok := innerInner.Arg.Term().(term.Num); !ok || n.Value != 2 {
		t.Errorf("second element = %v, want Num{2}", innerInner.Arg.Term())
	}
	//
	if op, ok := inner.Arg.Term().(term.Op); !ok || op.Prim != term.NilPrim {
		t.Errorf("list tail = %v, want NilPrim", inner.Arg.Term())
	}
}

func TestParseEmptyListSugarIsNil(t *testing.T) {
	got, err := parser.ParseExpr("( )", nil)
	if err != nil {
		t.Fatalf("ParseExpr: %v", err)
	}
	//
	if op, ok := got.(term.Op); !ok || op.Prim != term.NilPrim {
		t.Errorf("ParseExpr(()) = %v, want NilPrim", got)
	}
}

func TestParseBoundIdentifierBecomesVar(t *testing.T) {
	got, err := parser.ParseExpr("galaxy", stubEnv{"galaxy": true})
	if err != nil {
		t.Fatalf("ParseExpr: %v", err)
	}
	//
	if v, ok := got.(term.Var); !ok || v.Name != "galaxy" {
		t.Errorf("ParseExpr(galaxy) = %v, want Var{galaxy}", got)
	}
}

func TestParseFreeVariableConventionAcceptsColonAndXPrefixes(t *testing.T) {
	for _, name := range []string{":1234", "x0", "x99"} {
		got, err := parser.ParseExpr(name, nil)
		if err != nil {
			t.Fatalf("ParseExpr(%q): %v", name, err)
		}
		//
		if v, ok := got.(term.Var); !ok || v.Name != name {
			t.Errorf("ParseExpr(%q) = %v, want Var{%q}", name, got, name)
		}
	}
}

func TestParseUnknownIdentifierFaults(t *testing.T) {
	_, err := parser.ParseExpr("galaxy", nil)
	if err == nil {
		t.Fatal("expected an error for an unbound, non-free-variable identifier")
	}
	//
	fault, ok := err.(*galerr.Fault)
	if !ok || fault.Kind != galerr.ParseFault {
		t.Errorf("err = %v, want a ParseFault", err)
	}
}

func TestParseTrailingTokensFaults(t *testing.T) {
	_, err := parser.ParseExpr("1 2", nil)
	if err == nil {
		t.Fatal("expected an error for trailing tokens")
	}
}

func TestParseExhaustedInputFaults(t *testing.T) {
	_, err := parser.ParseExpr("ap 1", nil)
	if err == nil {
		t.Fatal("expected an error for exhausted input mid-application")
	}
}

func TestParseUnterminatedListFaults(t *testing.T) {
	_, err := parser.ParseExpr("( 1 , 2", nil)
	if err == nil {
		t.Fatal("expected an error for an unterminated list")
	}
}

func TestParseLineSplitsNameFromExpr(t *testing.T) {
	name, got, err := parser.ParseLine("double = ap ap add x0 x0", stubEnv{})
	if err != nil {
		t.Fatalf("ParseLine: %v", err)
	}
	//
	if name != "double" {
		t.Errorf("name = %q, want %q", name, "double")
	}
	//
	if _, ok := got.(term.Ap); !ok {
		t.Errorf("parsed expr = %v, want an Ap", got)
	}
}

func TestParseLineRequiresEqualsSeparator(t *testing.T) {
	_, _, err := parser.ParseLine("not an assignment", nil)
	if err == nil {
		t.Fatal("expected an error for a line without \" = \"")
	}
}
