// Package modulate implements the bit-string wire codec for data
// values (numbers and cons/nil trees), grounded on
// original_source/interpreter/src/lib.rs's Expr::modulate and
// Expr::demodulate/demodulate_iter. Encoding never touches the eval
// machinery's primitive-reduction path (mod/dem fault there, per
// DESIGN.md) — it walks an already-evaluated value directly.
package modulate

import (
	"math/bits"
	"strings"

	"github.com/ogiekako/icfpc2020-postmortem/pkg/galaxy/eval"
	"github.com/ogiekako/icfpc2020-postmortem/pkg/galaxy/galerr"
	"github.com/ogiekako/icfpc2020-postmortem/pkg/galaxy/term"
)

// Encode forces sh (using s for any nested thunks) and renders it as a
// modulated bit string, recursing into cons cells depth-first. Panics
// with a *galerr.Fault (TypeFault) if the value contains anything other
// than numbers, nil and cons cells — e.g. a bare combinator or a
// partially-applied operator is not data and cannot be sent over the
// wire.
func Encode(s *eval.Session, sh *term.Shared) string {
	v := s.Force(sh)
	//
	switch t := v.(type) {
	case term.Num:
		return encodeNum(t.Value)
	case term.Op:
		switch {
		case t.Prim == term.NilPrim && len(t.Args) == 0:
			return "00"
		case t.Prim == term.ConsPrim && len(t.Args) == 2:
			return "11" + Encode(s, t.Args[0]) + Encode(s, t.Args[1])
		}
	}
	//
	galerr.Raise(galerr.TypeFault, v.String(), "value is not modulatable data")
	//
	return ""
}

func encodeNum(n int64) string {
	var sign string
	abs := n
	//
	if n >= 0 {
		sign = "01"
	} else {
		sign = "10"
		abs = -n
	}
	//
	keta := 64 - bits.LeadingZeros64(uint64(abs))
	width := (keta + 3) / 4
	//
	var b strings.Builder
	b.WriteString(sign)
	//
	for i := 0; i < width; i++ {
		b.WriteByte('1')
	}
	//
	b.WriteByte('0')
	//
	for i := 4*width - 1; i >= 0; i-- {
		if abs>>uint(i)&1 == 1 {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	//
	return b.String()
}

// Decode parses a modulated bit string back into a term.Term, already
// in normal form (a tree of Num/Nil/Cons nodes, no combinators, no
// thunks left to force).
func Decode(bitstring string) term.Term {
	r := &bitReader{bits: bitstring}
	return decode(r)
}

type bitReader struct {
	bits string
	pos  int
}

func (r *bitReader) next() bool {
	if r.pos >= len(r.bits) {
		galerr.Raise(galerr.ParseFault, r.bits, "bit string exhausted while demodulating")
	}
	//
	c := r.bits[r.pos]
	r.pos++
	//
	return c == '1'
}

func decode(r *bitReader) term.Term {
	t0 := r.next()
	t1 := r.next()
	//
	switch {
	case !t0 && !t1:
		return term.Nil()
	case t0 && t1:
		hd := decode(r)
		tl := decode(r)
		//
		return term.Pair(term.NewShared(hd), term.NewShared(tl))
	default:
		positive := t1
		width := 0
		//
		for r.next() {
			width++
		}
		//
		var v int64
		//
		for i := 4*width - 1; i >= 0; i-- {
			if r.next() {
				v |= 1 << uint(i)
			}
		}
		//
		if !positive {
			v = -v
		}
		//
		return term.Num{Value: v}
	}
}
