package difftree

import "errors"

var (
	// ErrEmpty is returned when a tree is built from no entries.
	ErrEmpty = errors.New("difftree: no entries")
	// ErrNegativeSpan is returned when an entry has a negative width.
	ErrNegativeSpan = errors.New("difftree: negative span")
	// ErrUnordered is returned when entries, or the two sides of a merge, are
	// not strictly increasing in both coordinate spaces.
	ErrUnordered = errors.New("difftree: entries out of order")
	// ErrInvalidRange is returned when an edit range ends before it starts.
	ErrInvalidRange = errors.New("difftree: range end precedes start")
)
