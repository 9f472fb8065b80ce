package difftree

import "fmt"

// Insert splices sub into t at index. The spans of t from index onwards are
// moved to follow the last span of sub.
//
// Inserting into an empty tree yields sub.
func (t *Tree[A, B]) Insert(index A, sub *Tree[A, B]) (*Tree[A, B], error) {
	left, right := t.Split(index)

	merged, err := left.Merge(sub)
	if err != nil {
		return nil, err
	}

	return merged.Merge(right)
}

// Delete removes the spans covering [start, end) from t and closes the gap.
// The result is nil when nothing remains.
func (t *Tree[A, B]) Delete(start, end A) (*Tree[A, B], error) {
	return t.Replace(start, end, nil)
}

// Replace swaps the spans covering [start, end) for replacement. A nil
// replacement makes this a [Tree.Delete].
func (t *Tree[A, B]) Replace(start, end A, replacement *Tree[A, B]) (*Tree[A, B], error) {
	if end < start {
		return nil, fmt.Errorf("%w: [%d, %d)", ErrInvalidRange, start, end)
	}

	left, rest, origin := t.split(start)

	// rest is in its own frame, so end is re-expressed relative to it.
	_, right, _ := rest.split(end - origin)

	merged, err := left.Merge(replacement)
	if err != nil {
		return nil, err
	}

	return merged.Merge(right)
}
