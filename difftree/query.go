package difftree

import "iter"

// MapAtoB returns the B coordinate corresponding to the A coordinate a.
//
// Coordinates that are not the start of a stored span are clamped: the result
// is the B coordinate of the last node visited while searching for a, whether
// the search stopped on an exact match or ran off the tree. Nothing is
// interpolated. An empty tree maps everything to zero.
func (t *Tree[A, B]) MapAtoB(a A) B {
	var (
		absA A
		absB B
	)

	for n := t; n != nil; {
		absA += n.deltaA
		absB += n.deltaB

		switch {
		case a < absA && n.left != nil:
			n = n.left
		case a > absA && n.right != nil:
			n = n.right
		default:
			return absB
		}
	}

	return absB
}

// MapBtoA returns the A coordinate corresponding to the B coordinate b, with
// the same clamping as [Tree.MapAtoB].
func (t *Tree[A, B]) MapBtoA(b B) A {
	var (
		absA A
		absB B
	)

	for n := t; n != nil; {
		absA += n.deltaA
		absB += n.deltaB

		switch {
		case b < absB && n.left != nil:
			n = n.left
		case b > absB && n.right != nil:
			n = n.right
		default:
			return absA
		}
	}

	return absA
}

// FoldFunc combines one node into the accumulator. value is the node's
// absolute position and parent is its parent's absolute position, or nil for
// the root of the fold.
type FoldFunc[A, B Signed, C any] func(acc C, node *Tree[A, B], value Point[A, B], parent *Point[A, B]) C

// Fold walks t in order, threading acc through f.
func Fold[A, B Signed, C any](t *Tree[A, B], f FoldFunc[A, B, C], acc C) C {
	if t == nil {
		return acc
	}

	return fold(t, f, acc, nil)
}

func fold[A, B Signed, C any](t *Tree[A, B], f FoldFunc[A, B, C], acc C, parent *Point[A, B]) C {
	value := Point[A, B]{A: t.deltaA, B: t.deltaB}

	if parent != nil {
		value.A += parent.A
		value.B += parent.B
	}

	if t.left != nil {
		acc = fold(t.left, f, acc, &value)
	}

	acc = f(acc, t, value, parent)

	if t.right != nil {
		acc = fold(t.right, f, acc, &value)
	}

	return acc
}

// All returns an iterator over the entries of t in ascending order.
func (t *Tree[A, B]) All() iter.Seq[Entry[A, B]] {
	return func(yield func(Entry[A, B]) bool) {
		t.walk(0, 0, yield)
	}
}

// walk yields the entries below t, whose parent is at (a, b). It reports
// whether the iteration should continue.
func (t *Tree[A, B]) walk(a A, b B, yield func(Entry[A, B]) bool) bool {
	if t == nil {
		return true
	}

	a += t.deltaA
	b += t.deltaB

	return t.left.walk(a, b, yield) &&
		yield(Entry[A, B]{A: a, B: b, SpanA: t.spanA, SpanB: t.spanB}) &&
		t.right.walk(a, b, yield)
}

// Entries returns the entries of t in ascending order. Passing them to [New]
// rebuilds an equivalent, balanced tree.
func (t *Tree[A, B]) Entries() []Entry[A, B] {
	return Fold[A, B, []Entry[A, B]](t, func(entries []Entry[A, B], node *Tree[A, B], value Point[A, B], _ *Point[A, B]) []Entry[A, B] {
		return append(entries, Entry[A, B]{A: value.A, B: value.B, SpanA: node.spanA, SpanB: node.spanB})
	}, []Entry[A, B](nil))
}

// End returns the absolute position just past the last span of t, which is
// the zero point for an empty tree.
func (t *Tree[A, B]) End() Point[A, B] {
	var end Point[A, B]

	for n := t; n != nil; n = n.right {
		end.A += n.deltaA
		end.B += n.deltaB

		if n.right == nil {
			end.A += n.spanA
			end.B += n.spanB
		}
	}

	return end
}

// Len returns the number of spans stored in t.
func (t *Tree[A, B]) Len() int {
	if t == nil {
		return 0
	}

	return 1 + t.left.Len() + t.right.Len()
}
