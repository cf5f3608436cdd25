// Package parser converts the galaxy language's whitespace-tokenized
// prefix notation (plus list sugar) into term.Term trees, grounded on
// the original_source/interpreter/src/lib.rs `parse` function and
// restyled after the compiler's pkg/corset/parser.go: a cursor over a
// token slice, one recursive-descent function per grammar production,
// and parse errors reported through galerr.Fault rather than Go's
// error return (so that "unknown identifier" and "exhausted input"
// are fatal the way spec §7 requires of every parse failure).
package parser

import (
	"strconv"
	"strings"

	"github.com/ogiekako/icfpc2020-postmortem/pkg/galaxy/galerr"
	"github.com/ogiekako/icfpc2020-postmortem/pkg/galaxy/term"
)

// Lookup is the subset of library.Environment the parser needs: telling
// whether a bare identifier already has a binding, so it can be
// accepted as a Var instead of rejected as unknown.
type Lookup interface {
	Has(name string) bool
}

// emptyLookup treats every name as unbound; used by ParseExpr callers
// (e.g. tests) that have no environment yet but still want to parse
// names starting with ":" or "x".
type emptyLookup struct{}

func (emptyLookup) Has(string) bool { return false }

// Parser walks a token stream produced by splitting a line on
// whitespace.
type Parser struct {
	tokens []string
	pos    int
	env    Lookup
}

// New constructs a Parser over expr's whitespace-separated tokens,
// resolving bare identifiers against env (pass nil to treat every name
// as unbound).
func New(expr string, env Lookup) *Parser {
	if env == nil {
		env = emptyLookup{}
	}
	//
	return &Parser{tokens: strings.Fields(expr), env: env}
}

// ParseExpr parses a single expression against env and returns its
// term.Term, or a *galerr.Fault (ParseFault) if the expression is
// malformed.
func ParseExpr(expr string, env Lookup) (result term.Term, err error) {
	defer galerr.Recover(&err)
	//
	p := New(expr, env)
	result = p.parseExpr()
	//
	if p.pos != len(p.tokens) {
		galerr.Raise(galerr.ParseFault, expr, "trailing tokens after expression")
	}
	//
	return result, nil
}

// ParseLine parses a "name = expression" library line, splitting on the
// literal " = " per spec §6. env resolves names already defined earlier
// in the same library (forward references resolve once the whole
// library has been loaded; see library.Load).
func ParseLine(line string, env Lookup) (name string, result term.Term, err error) {
	defer galerr.Recover(&err)
	//
	parts := strings.SplitN(line, " = ", 2)
	if len(parts) != 2 {
		galerr.Raise(galerr.ParseFault, line, "expected \"name = expression\"")
	}
	//
	name = parts[0]
	p := New(parts[1], env)
	result = p.parseExpr()
	//
	if p.pos != len(p.tokens) {
		galerr.Raise(galerr.ParseFault, line, "trailing tokens after expression")
	}
	//
	return name, result, nil
}

func (p *Parser) next() string {
	if p.pos >= len(p.tokens) {
		galerr.Raise(galerr.ParseFault, strings.Join(p.tokens, " "), "iterator exhausted")
	}
	//
	tok := p.tokens[p.pos]
	p.pos++
	//
	return tok
}

func (p *Parser) peek() (string, bool) {
	if p.pos >= len(p.tokens) {
		return "", false
	}
	//
	return p.tokens[p.pos], true
}

// parseExpr implements the grammar:
//
//	expr := "ap" expr expr
//	      | primitive-name
//	      | integer-literal
//	      | identifier
//	      | "(" [ expr ("," expr)* ] ")"
func (p *Parser) parseExpr() term.Term {
	tok := p.next()
	//
	switch {
	case tok == "(":
		return p.parseList()
	case tok == "ap":
		fn := term.NewShared(p.parseExpr())
		arg := term.NewShared(p.parseExpr())
		//
		return term.Ap{Fun: fn, Arg: arg}
	default:
		return p.parseAtom(tok)
	}
}

func (p *Parser) parseList() term.Term {
	var elems []term.Term
	//
	for {
		next, ok := p.peek()
		if !ok {
			galerr.Raise(galerr.ParseFault, strings.Join(p.tokens, " "), "unterminated list")
		}
		//
		if next == ")" {
			p.next()
			break
		}
		//
		elems = append(elems, p.parseExpr())
		//
		if next, ok := p.peek(); ok && next == "," {
			p.next()
		}
	}
	//
	result := term.Nil()
	//
	for i := len(elems) - 1; i >= 0; i-- {
		result = term.Cons(term.NewShared(elems[i]), term.NewShared(result))
	}
	//
	return result
}

func (p *Parser) parseAtom(tok string) term.Term {
	if prim, ok := term.LookupPrimitive(tok); ok {
		return term.Op{Prim: prim}
	}
	//
	if n, err := strconv.ParseInt(tok, 10, 64); err == nil {
		return term.Num{Value: n}
	}
	//
	if p.env.Has(tok) || strings.HasPrefix(tok, ":") || strings.HasPrefix(tok, "x") {
		return term.Var{Name: tok}
	}
	//
	galerr.Raise(galerr.ParseFault, tok, "unknown identifier")
	//
	return nil
}
