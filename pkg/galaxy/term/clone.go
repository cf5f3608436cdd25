package term

// Clone deep-copies t, allocating fresh, unforced Shared cells for every
// Ap/Op child it contains. Num and Var leaves carry no Shared children
// and are returned unchanged.
//
// This exists so that a reference to a library definition can be
// evaluated without mutating the definition's own, permanently-stored
// AST: per spec, "the environment itself is never mutated by
// evaluation ... otherwise results would leak between ticks" (and,
// within a single tick, between an earlier and a later redefinition of
// the same name). See eval.Session, which clones exactly once per name
// per tick and memoizes the clone so repeated references still share
// work within that one tick.
func Clone(t Term) Term {
	switch v := t.(type) {
	case Num:
		return v
	case Var:
		return v
	case Ap:
		return Ap{Fun: cloneShared(v.Fun), Arg: cloneShared(v.Arg)}
	case Op:
		args := make([]*Shared, len(v.Args))
		//
		for i, a := range v.Args {
			args[i] = cloneShared(a)
		}
		//
		return Op{Prim: v.Prim, Args: args}
	default:
		return t
	}
}

func cloneShared(s *Shared) *Shared {
	return NewShared(Clone(s.Term()))
}
