package difftree

// NewNode builds a single node from its raw fields, for comparing tree shapes
// in tests.
func NewNode[A, B Signed](deltaA A, deltaB B, spanA A, spanB B, left, right *Tree[A, B]) *Tree[A, B] {
	return &Tree[A, B]{
		deltaA: deltaA,
		deltaB: deltaB,
		spanA:  spanA,
		spanB:  spanB,
		left:   left,
		right:  right,
	}
}

// SplayMax reexports the internal [splayMax] method.
func (t *Tree[A, B]) SplayMax() *Tree[A, B] {
	return t.splayMax()
}

// SplayMin reexports the internal [splayMin] method.
func (t *Tree[A, B]) SplayMin() *Tree[A, B] {
	return t.splayMin()
}

// SplitOrigin reexports the internal [split] method, including the origin of
// the right tree's frame.
func (t *Tree[A, B]) SplitOrigin(boundary A) (*Tree[A, B], *Tree[A, B], A) {
	return t.split(boundary)
}
