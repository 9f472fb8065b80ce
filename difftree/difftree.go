// Package difftree maps offsets between two monotonic coordinate spaces that
// address the same content, such as a string's UTF-16 code units and its UTF-8
// bytes.
//
// The mapping is stored as a persistent splay tree of spans. Every node keeps
// its coordinates relative to its parent, so a rotation only has to adjust a
// couple of deltas instead of rewriting a whole subtree. Trees are immutable:
// every operation returns a new root and shares the untouched subtrees with the
// tree it was derived from.
package difftree

import "fmt"

// Signed is the set of integer types usable as a coordinate space.
//
// Coordinates must be signed because deltas to the parent may be negative.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Entry is the flat form of a single span: its absolute start in both spaces,
// and its width in both spaces.
type Entry[A, B Signed] struct {
	A     A
	B     B
	SpanA A
	SpanB B
}

// Point is an absolute position in both coordinate spaces.
type Point[A, B Signed] struct {
	A A
	B B
}

// Tree is a node in a differential splay tree, and the root of the subtree
// below it.
//
// A nil *Tree is the empty (absent) tree. Nodes are never modified once
// built.
type Tree[A, B Signed] struct {
	deltaA A
	deltaB B

	spanA A
	spanB B

	left  *Tree[A, B]
	right *Tree[A, B]
}

// New builds a balanced tree from entries, which must be non-empty, strictly
// increasing in both A and B, and have non-negative spans.
//
// The median entry of each slice becomes the subtree root, so the result has
// logarithmic depth.
func New[A, B Signed](entries []Entry[A, B]) (*Tree[A, B], error) {
	if err := validate(entries); err != nil {
		return nil, err
	}

	return build(entries, 0, 0), nil
}

// MustNew is like [New] but panics if entries are invalid.
func MustNew[A, B Signed](entries []Entry[A, B]) *Tree[A, B] {
	tree, err := New(entries)
	if err != nil {
		panic(err)
	}

	return tree
}

// validate checks the construction precondition.
func validate[A, B Signed](entries []Entry[A, B]) error {
	if len(entries) == 0 {
		return ErrEmpty
	}

	for i, entry := range entries {
		if entry.SpanA < 0 || entry.SpanB < 0 {
			return fmt.Errorf("%w: entry %d has span (%d, %d)", ErrNegativeSpan, i, entry.SpanA, entry.SpanB)
		}

		if i == 0 {
			continue
		}

		previous := entries[i-1]

		if entry.A <= previous.A || entry.B <= previous.B {
			return fmt.Errorf(
				"%w: entry %d at (%d, %d) does not follow (%d, %d)",
				ErrUnordered, i, entry.A, entry.B, previous.A, previous.B,
			)
		}
	}

	return nil
}

// build creates the subtree for entries, with deltas relative to the parent
// located at (a, b).
func build[A, B Signed](entries []Entry[A, B], a A, b B) *Tree[A, B] {
	if len(entries) == 0 {
		return nil
	}

	mid := len(entries) / 2
	m := entries[mid]

	return &Tree[A, B]{
		deltaA: m.A - a,
		deltaB: m.B - b,
		spanA:  m.SpanA,
		spanB:  m.SpanB,
		left:   build(entries[:mid], m.A, m.B),
		right:  build(entries[mid+1:], m.A, m.B),
	}
}

// DeltaA returns the node's A coordinate relative to its parent. For a root
// this is the absolute coordinate.
func (t *Tree[A, B]) DeltaA() A {
	return t.deltaA
}

// DeltaB returns the node's B coordinate relative to its parent.
func (t *Tree[A, B]) DeltaB() B {
	return t.deltaB
}

// SpanA returns the width of the node's span in A.
func (t *Tree[A, B]) SpanA() A {
	return t.spanA
}

// SpanB returns the width of the node's span in B.
func (t *Tree[A, B]) SpanB() B {
	return t.spanB
}

// Left returns the left subtree, or nil.
func (t *Tree[A, B]) Left() *Tree[A, B] {
	return t.left
}

// Right returns the right subtree, or nil.
func (t *Tree[A, B]) Right() *Tree[A, B] {
	return t.right
}

// withDelta returns a copy of the node positioned at (a, b) relative to its
// parent.
func (t *Tree[A, B]) withDelta(a A, b B) *Tree[A, B] {
	n := *t
	n.deltaA = a
	n.deltaB = b

	return &n
}

// withLeft returns a copy of the node with the given left subtree.
func (t *Tree[A, B]) withLeft(left *Tree[A, B]) *Tree[A, B] {
	n := *t
	n.left = left

	return &n
}

// withRight returns a copy of the node with the given right subtree.
func (t *Tree[A, B]) withRight(right *Tree[A, B]) *Tree[A, B] {
	n := *t
	n.right = right

	return &n
}

// shifted returns a copy of the node moved by (a, b) within its parent's
// frame.
func (t *Tree[A, B]) shifted(a A, b B) *Tree[A, B] {
	return t.withDelta(t.deltaA+a, t.deltaB+b)
}
