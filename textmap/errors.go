package textmap

import "errors"

var (
	// ErrOutOfRange is returned for offsets before the start or past the end
	// of the text.
	ErrOutOfRange = errors.New("textmap: offset out of range")
	// ErrNotBoundary is returned for offsets that fall inside a unit, such as
	// the middle of a surrogate pair or of a multi-byte character.
	ErrNotBoundary = errors.New("textmap: offset inside a unit")
)
