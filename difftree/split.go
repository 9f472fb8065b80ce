package difftree

import "fmt"

// Split divides t into the spans before boundary and the spans from boundary
// onwards.
//
// The left tree keeps t's coordinates and has its last span at the root, ready
// to be merged onto. The right tree is rebased so that its first span starts
// at (0, 0), except when nothing lies before boundary: then the right tree is
// t itself (restructured) and keeps t's coordinates.
//
// A boundary strictly inside a span cuts that span in two. The left piece gets
// boundary-a of the A width, and the same amount of the B width, capped so the
// right piece keeps at least one unit of B; the right piece gets the rest. A
// span less than two units wide in B cannot be cut, and the boundary moves
// back to the start of that span instead. Merging the halves of a cut gives
// back the same coverage, but with the cut span stored as two entries.
//
// Either half is nil when boundary lies outside the range covered by t.
func (t *Tree[A, B]) Split(boundary A) (*Tree[A, B], *Tree[A, B]) {
	left, right, _ := t.split(boundary)

	return left, right
}

// split is [Tree.Split], additionally reporting the A coordinate in t's frame
// that the origin of right's frame corresponds to.
func (t *Tree[A, B]) split(boundary A) (*Tree[A, B], *Tree[A, B], A) {
	if t == nil {
		return nil, nil, 0
	}

	s := t.Splay(boundary)

	switch {
	case boundary == s.deltaA:
		if s.left == nil {
			return nil, s, 0
		}

		return s.detachLeft(), s.withLeft(nil).withDelta(0, 0), s.deltaA

	case boundary > s.deltaA:
		// s is the last span starting before boundary, and everything to its
		// right starts after boundary.
		if boundary < s.deltaA+s.spanA {
			if !s.cuttable() {
				return s.split(s.deltaA)
			}

			head, tail, _ := s.cut(boundary)

			return head, tail, boundary
		}

		if s.right == nil {
			return s, nil, 0
		}

		tail := s.right.shifted(s.deltaA, s.deltaB).splayMin()

		return s.withRight(nil), tail.withDelta(0, 0), tail.deltaA

	default:
		// s is the first span starting after boundary, and everything to its
		// left starts before boundary.
		if s.left == nil {
			return nil, s, 0
		}

		head := s.detachLeft()
		rest := s.withLeft(nil)

		if boundary < head.deltaA+head.spanA {
			if !head.cuttable() {
				return s.split(head.deltaA)
			}

			prefix, piece, at := head.cut(boundary)
			rest = rest.withDelta(s.deltaA-at.A, s.deltaB-at.B)

			return prefix, piece.withRight(rest), boundary
		}

		return head, rest.withDelta(0, 0), s.deltaA
	}
}

// detachLeft returns the left subtree of t, rebased into t's frame, with its
// last span at the root.
func (t *Tree[A, B]) detachLeft() *Tree[A, B] {
	return t.left.shifted(t.deltaA, t.deltaB).splayMax()
}

// cuttable reports whether the span at the root of t can be cut into two
// pieces that are both non-empty in B.
func (t *Tree[A, B]) cuttable() bool {
	return t.spanB >= 2
}

// cut splits the span at the root of t at boundary, which must lie strictly
// inside it, and t must be [Tree.cuttable]. The left piece keeps t's left
// subtree and position, the right piece is placed at (0, 0) and keeps t's
// right subtree. at is the absolute position of the cut.
func (t *Tree[A, B]) cut(boundary A) (left, right *Tree[A, B], at Point[A, B]) {
	cutA := boundary - t.deltaA

	// Compared as int64 so that a wide A never truncates into a narrow B.
	cutB := B(min(int64(cutA), int64(t.spanB)-1))

	left = &Tree[A, B]{
		deltaA: t.deltaA,
		deltaB: t.deltaB,
		spanA:  cutA,
		spanB:  cutB,
		left:   t.left,
	}

	right = &Tree[A, B]{
		spanA: t.spanA - cutA,
		spanB: t.spanB - cutB,
	}

	if t.right != nil {
		right.right = t.right.shifted(-cutA, -cutB)
	}

	return left, right, Point[A, B]{A: boundary, B: t.deltaB + cutB}
}

// Merge appends other after t: other's first span is placed where t's last
// span ends, in both coordinate spaces.
//
// If either tree is nil the other one is returned. If t's last span is empty
// in either space the two trees cannot be joined in strictly increasing order,
// and ErrUnordered is returned.
func (t *Tree[A, B]) Merge(other *Tree[A, B]) (*Tree[A, B], error) {
	if t == nil {
		return other, nil
	}

	if other == nil {
		return t, nil
	}

	l := t.splayMax()

	if l.spanA == 0 || l.spanB == 0 {
		return nil, fmt.Errorf(
			"%w: last span at (%d, %d) has width (%d, %d)",
			ErrUnordered, l.deltaA, l.deltaB, l.spanA, l.spanB,
		)
	}

	r := other.splayMin()

	return l.withRight(r.withDelta(l.spanA, l.spanB)), nil
}
