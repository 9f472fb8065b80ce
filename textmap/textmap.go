// Package textmap keeps offsets of a string in two encodings in step while
// the string is edited.
//
// A [Text] pairs a string with a [difftree.Tree] mapping one unit of the
// string (UTF-16 code units or grapheme clusters) to UTF-8 bytes. Edits are
// addressed in units; only the edited region and the units it disturbs are
// re-segmented, and the tree is updated by splicing rather than rebuilt.
package textmap

import (
	"fmt"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/rivo/uniseg"

	"github.com/crystalix007/difftree/difftree"
)

// UTF16 is an offset in UTF-16 code units.
type UTF16 int

// Grapheme is an offset in user-perceived characters (extended grapheme
// clusters).
type Grapheme int

// Byte is an offset in UTF-8 bytes.
type Byte int

// Segmenter turns a string into one span per unit, starting at the origin.
// It returns nil for the empty string.
type Segmenter[A difftree.Signed] func(s string) *difftree.Tree[A, Byte]

// FromUTF16 maps the UTF-16 code units of s to its bytes, one span per rune.
// Invalid bytes are each treated as U+FFFD.
func FromUTF16(s string) *difftree.Tree[UTF16, Byte] {
	var (
		entries []difftree.Entry[UTF16, Byte]
		a       UTF16
	)

	for b := 0; b < len(s); {
		r, size := utf8.DecodeRuneInString(s[b:])
		units := UTF16(utf16.RuneLen(r))

		entries = append(entries, difftree.Entry[UTF16, Byte]{
			A:     a,
			B:     Byte(b),
			SpanA: units,
			SpanB: Byte(size),
		})

		a += units
		b += size
	}

	return fromEntries(entries)
}

// FromGraphemes maps the grapheme clusters of s to its bytes, one span per
// cluster.
func FromGraphemes(s string) *difftree.Tree[Grapheme, Byte] {
	var (
		entries []difftree.Entry[Grapheme, Byte]
		cluster string
		state   = -1
		b       int
	)

	for rest := s; len(rest) > 0; {
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)

		entries = append(entries, difftree.Entry[Grapheme, Byte]{
			A:     Grapheme(len(entries)),
			B:     Byte(b),
			SpanA: 1,
			SpanB: Byte(len(cluster)),
		})

		b += len(cluster)
	}

	return fromEntries(entries)
}

func fromEntries[A difftree.Signed](entries []difftree.Entry[A, Byte]) *difftree.Tree[A, Byte] {
	if len(entries) == 0 {
		return nil
	}

	// Segmentation yields contiguous, non-empty spans.
	return difftree.MustNew(entries)
}

// Text is a string together with the offset map of its units.
//
// A Text is not safe for concurrent use, but the trees returned by
// [Text.Offsets] are immutable and may be shared freely.
type Text[A difftree.Signed] struct {
	text    string
	offsets *difftree.Tree[A, Byte]
	segment Segmenter[A]

	// context is the number of units before an edit that are segmented
	// again, since the edit may extend the unit it follows.
	context A
}

// NewUTF16 returns s addressed in UTF-16 code units.
func NewUTF16(s string) *Text[UTF16] {
	return New[UTF16](s, FromUTF16, 0)
}

// NewGraphemes returns s addressed in grapheme clusters.
func NewGraphemes(s string) *Text[Grapheme] {
	return New[Grapheme](s, FromGraphemes, 1)
}

// New returns s addressed in the units produced by segment. context is the
// number of units before an edit that it can merge with or split.
func New[A difftree.Signed](s string, segment Segmenter[A], context A) *Text[A] {
	return &Text[A]{
		text:    s,
		offsets: segment(s),
		segment: segment,
		context: context,
	}
}

// String returns the current text.
func (t *Text[A]) String() string {
	return t.text
}

// Offsets returns the current offset map. It is nil for the empty text.
func (t *Text[A]) Offsets() *difftree.Tree[A, Byte] {
	return t.offsets
}

// Len returns the length of the text in units.
func (t *Text[A]) Len() A {
	return t.offsets.End().A
}

// ToByte returns the byte offset of the unit boundary a.
func (t *Text[A]) ToByte(a A) (Byte, error) {
	end := t.offsets.End()

	switch {
	case a == end.A:
		return end.B, nil
	case a < 0 || a > end.A:
		return 0, fmt.Errorf("%w: unit %d of %d", ErrOutOfRange, a, end.A)
	}

	b := t.offsets.MapAtoB(a)

	if t.offsets.MapBtoA(b) != a {
		return 0, fmt.Errorf("%w: unit %d", ErrNotBoundary, a)
	}

	return b, nil
}

// FromByte returns the unit offset of the byte offset b, which must fall on
// a unit boundary.
func (t *Text[A]) FromByte(b Byte) (A, error) {
	end := t.offsets.End()

	switch {
	case b == end.B:
		return end.A, nil
	case b < 0 || b > end.B:
		return 0, fmt.Errorf("%w: byte %d of %d", ErrOutOfRange, b, end.B)
	}

	a := t.offsets.MapBtoA(b)

	if t.offsets.MapAtoB(a) != b {
		return 0, fmt.Errorf("%w: byte %d", ErrNotBoundary, b)
	}

	return a, nil
}

// Insert inserts s before unit at.
func (t *Text[A]) Insert(at A, s string) error {
	return t.Replace(at, at, s)
}

// Delete removes the units in [start, end).
func (t *Text[A]) Delete(start, end A) error {
	return t.Replace(start, end, "")
}

// Replace swaps the units in [start, end) for s.
//
// The edited text is segmented again from context units before start up to
// the first unit boundary after the edit where the new segmentation agrees
// with the old one. Segmentations that share a boundary agree on everything
// after it, so the rest of the offset map is kept as is.
func (t *Text[A]) Replace(start, end A, s string) error {
	if end < start {
		return fmt.Errorf("%w: [%d, %d)", difftree.ErrInvalidRange, start, end)
	}

	startByte, err := t.ToByte(start)
	if err != nil {
		return err
	}

	endByte, err := t.ToByte(end)
	if err != nil {
		return err
	}

	lo := max(start-t.context, 0)

	loByte, err := t.ToByte(lo)
	if err != nil {
		return err
	}

	edited := t.text[loByte:startByte] + s
	length := t.Len()

	for hi, step := end, A(1); ; step *= 2 {
		if step > length-hi {
			hi = length
		} else {
			hi = t.ceil(hi + step)
		}

		hiByte, err := t.ToByte(hi)
		if err != nil {
			return err
		}

		window := edited + t.text[endByte:hiByte]
		segments := t.segment(window)

		if unit, old, ok := t.resync(segments, Byte(len(edited)), endByte, Byte(len(window))); ok {
			replacement, _ := segments.Split(unit)

			if hi, err = t.FromByte(old); err != nil {
				return err
			}

			return t.splice(lo, hi, replacement, startByte, endByte, s)
		}

		if hi == length {
			return t.splice(lo, hi, segments, startByte, endByte, s)
		}
	}
}

// splice replaces the units [lo, hi) of the offset map with replacement, and
// the bytes [startByte, endByte) of the text with s.
func (t *Text[A]) splice(lo, hi A, replacement *difftree.Tree[A, Byte], startByte, endByte Byte, s string) error {
	offsets, err := t.offsets.Replace(lo, hi, replacement)
	if err != nil {
		return fmt.Errorf("splicing [%d, %d): %w", lo, hi, err)
	}

	t.text = t.text[:startByte] + s + t.text[endByte:]
	t.offsets = offsets

	return nil
}

// resync returns the first unit boundary of segments at or after the edited
// prefix and strictly inside the window that is also a boundary of the old
// text, where the window continues the old text from endByte. It returns the
// boundary as a unit of segments and as a byte of the old text.
func (t *Text[A]) resync(segments *difftree.Tree[A, Byte], edited, endByte, window Byte) (A, Byte, bool) {
	for e := range segments.All() {
		boundary := e.B + e.SpanB

		if boundary < edited {
			continue
		}

		if boundary >= window {
			break
		}

		old := endByte + boundary - edited

		if _, err := t.FromByte(old); err == nil {
			return e.A + e.SpanA, old, true
		}
	}

	return 0, 0, false
}

// ceil returns the first unit boundary at or after a, which must lie within
// the text.
func (t *Text[A]) ceil(a A) A {
	n := t.offsets.Splay(a)

	if n.DeltaA() >= a {
		return n.DeltaA()
	}

	return n.DeltaA() + n.SpanA()
}
