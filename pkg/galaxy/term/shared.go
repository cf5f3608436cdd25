package term

// Shared wraps a Term with a one-shot "has been reduced" flag, so that
// repeated evaluation of the same subterm under the same environment
// returns the cached reduct instead of re-deriving it. Sharing is by
// reference: two Ap children that should observe each other's reduction
// must be the same *Shared, which is the parser's and the codec's
// responsibility to arrange, not this type's.
//
// Evaluation is single-threaded per tick (see the concurrency notes in
// SPEC_FULL.md), so the forced flag needs no synchronization — the same
// reasoning the stack package next door relies on for its own lack of
// locking.
type Shared struct {
	term   Term
	forced bool
}

// NewShared wraps t in a fresh, unforced cell.
func NewShared(t Term) *Shared {
	return &Shared{term: t}
}

// Term returns the current term held by this cell, without forcing it.
func (s *Shared) Term() Term {
	return s.term
}

// Forced reports whether this cell's cached reduct may be reused as-is.
func (s *Shared) Forced() bool {
	return s.forced
}

// Store replaces the held term and marks the cell forced, caching the
// result of a reduction so that later lookups skip straight to it.
func (s *Shared) Store(t Term) {
	s.term = t
	s.forced = true
}
