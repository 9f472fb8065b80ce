package difftree

// RotateRight makes the left child of t the new root, with t as its right
// child. If t has no left child, t is returned unchanged.
//
//	    g            e
//	   / \          / \
//	  e   h   →    a   g
//	 / \              / \
//	a   b            b   h
//
// Only the deltas of e, g and b change: e takes over g's position, g is
// re-expressed relative to e, and b keeps its absolute position under g.
func (t *Tree[A, B]) RotateRight() *Tree[A, B] {
	if t == nil || t.left == nil {
		return t
	}

	g := t
	e := g.left
	b := e.right

	if b != nil {
		b = b.shifted(e.deltaA, e.deltaB)
	}

	gNew := g.withDelta(-e.deltaA, -e.deltaB).withLeft(b)
	eNew := e.withDelta(e.deltaA+g.deltaA, e.deltaB+g.deltaB).withRight(gNew)

	return eNew
}

// RotateLeft makes the right child of t the new root, with t as its left
// child. It mirrors [Tree.RotateRight].
func (t *Tree[A, B]) RotateLeft() *Tree[A, B] {
	if t == nil || t.right == nil {
		return t
	}

	g := t
	f := g.right
	c := f.left

	if c != nil {
		c = c.shifted(f.deltaA, f.deltaB)
	}

	gNew := g.withDelta(-f.deltaA, -f.deltaB).withRight(c)
	fNew := f.withDelta(f.deltaA+g.deltaA, f.deltaB+g.deltaB).withLeft(gNew)

	return fNew
}

// RotateRightOnRightChild rotates the right child of t to the right, keeping t
// as the root.
func (t *Tree[A, B]) RotateRightOnRightChild() *Tree[A, B] {
	if t == nil || t.right == nil {
		return t
	}

	return t.withRight(t.right.RotateRight())
}

// RotateLeftOnLeftChild rotates the left child of t to the left, keeping t as
// the root.
func (t *Tree[A, B]) RotateLeftOnLeftChild() *Tree[A, B] {
	if t == nil || t.left == nil {
		return t
	}

	return t.withLeft(t.left.RotateLeft())
}

// Splay moves the node starting at target to the root.
//
// If no span starts at target, the last node on the search path becomes the
// root instead: that is the nearest span on one side of target, and every
// span in the root's subtree on target's side lies beyond target. The entries
// of the tree are unchanged.
//
// target is in the same frame as t's own delta, i.e. absolute for a root.
func (t *Tree[A, B]) Splay(target A) *Tree[A, B] {
	if t == nil {
		return nil
	}

	for {
		switch {
		case target < t.deltaA && t.left != nil:
			child := t.deltaA + t.left.deltaA

			switch {
			case target < child && t.left.left != nil:
				// Zig-zig.
				t = t.RotateRight().RotateRight()
			case target > child && t.left.right != nil:
				// Zig-zag.
				t = t.RotateLeftOnLeftChild().RotateRight()
			default:
				// Zig. Either child is the target, or the search ends there.
				return t.RotateRight()
			}
		case target > t.deltaA && t.right != nil:
			child := t.deltaA + t.right.deltaA

			switch {
			case target > child && t.right.right != nil:
				t = t.RotateLeft().RotateLeft()
			case target < child && t.right.left != nil:
				t = t.RotateRightOnRightChild().RotateLeft()
			default:
				return t.RotateLeft()
			}
		default:
			return t
		}
	}
}

// splayMax moves the last span of t to the root.
func (t *Tree[A, B]) splayMax() *Tree[A, B] {
	if t == nil {
		return nil
	}

	for t.right != nil {
		if t.right.right == nil {
			return t.RotateLeft()
		}

		t = t.RotateLeft().RotateLeft()
	}

	return t
}

// splayMin moves the first span of t to the root.
func (t *Tree[A, B]) splayMin() *Tree[A, B] {
	if t == nil {
		return nil
	}

	for t.left != nil {
		if t.left.left == nil {
			return t.RotateRight()
		}

		t = t.RotateRight().RotateRight()
	}

	return t
}
