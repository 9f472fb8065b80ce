package textmap_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/crystalix007/difftree/difftree"
	"github.com/crystalix007/difftree/textmap"
)

type utf16Entry = difftree.Entry[textmap.UTF16, textmap.Byte]

func TestFromUTF16(t *testing.T) {
	t.Parallel()

	// 'a' is one byte, 'é' two, '€' three, and '😀' four bytes and a
	// surrogate pair.
	offsets := textmap.FromUTF16("a\u00e9€😀b")

	require.Equal(t, []utf16Entry{
		{A: 0, B: 0, SpanA: 1, SpanB: 1},
		{A: 1, B: 1, SpanA: 1, SpanB: 2},
		{A: 2, B: 3, SpanA: 1, SpanB: 3},
		{A: 3, B: 6, SpanA: 2, SpanB: 4},
		{A: 5, B: 10, SpanA: 1, SpanB: 1},
	}, offsets.Entries())

	t.Run("Empty", func(t *testing.T) {
		t.Parallel()

		require.Nil(t, textmap.FromUTF16(""))
	})

	t.Run("Invalid", func(t *testing.T) {
		t.Parallel()

		require.Equal(t, []utf16Entry{
			{A: 0, B: 0, SpanA: 1, SpanB: 1},
			{A: 1, B: 1, SpanA: 1, SpanB: 1},
		}, textmap.FromUTF16("\xffx").Entries())
	})
}

func TestFromGraphemes(t *testing.T) {
	t.Parallel()

	// "e" followed by a combining acute accent is a single cluster, as is the
	// flag made of two regional indicators.
	offsets := textmap.FromGraphemes("ce\u0301\U0001F1E9\U0001F1EA!")

	require.Equal(t, []difftree.Entry[textmap.Grapheme, textmap.Byte]{
		{A: 0, B: 0, SpanA: 1, SpanB: 1},
		{A: 1, B: 1, SpanA: 1, SpanB: 3},
		{A: 2, B: 4, SpanA: 1, SpanB: 8},
		{A: 3, B: 12, SpanA: 1, SpanB: 1},
	}, offsets.Entries())

	require.Nil(t, textmap.FromGraphemes(""))
}

func TestText_ToByte(t *testing.T) {
	t.Parallel()

	text := textmap.NewUTF16("a\u00e9€😀b")

	for a, b := range map[textmap.UTF16]textmap.Byte{0: 0, 1: 1, 2: 3, 3: 6, 5: 10, 6: 11} {
		got, err := text.ToByte(a)

		require.NoError(t, err)
		require.Equal(t, b, got)

		back, err := text.FromByte(b)

		require.NoError(t, err)
		require.Equal(t, a, back)
	}

	_, err := text.ToByte(4)

	require.ErrorIs(t, err, textmap.ErrNotBoundary)

	_, err = text.ToByte(7)

	require.ErrorIs(t, err, textmap.ErrOutOfRange)

	_, err = text.ToByte(-1)

	require.ErrorIs(t, err, textmap.ErrOutOfRange)

	_, err = text.FromByte(2)

	require.ErrorIs(t, err, textmap.ErrNotBoundary)

	_, err = text.FromByte(12)

	require.ErrorIs(t, err, textmap.ErrOutOfRange)

	require.Equal(t, textmap.UTF16(6), text.Len())
}

func TestText_edits(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		initial  string
		edit     func(text *textmap.Text[textmap.UTF16]) error
		expected string
	}{
		{
			name:    "InsertMiddle",
			initial: "a\u00e9€b",
			edit: func(text *textmap.Text[textmap.UTF16]) error {
				return text.Insert(2, "😀x")
			},
			expected: "a\u00e9😀x€b",
		},
		{
			name:    "InsertStart",
			initial: "€b",
			edit: func(text *textmap.Text[textmap.UTF16]) error {
				return text.Insert(0, "\u00e9")
			},
			expected: "\u00e9€b",
		},
		{
			name:    "InsertEnd",
			initial: "€b",
			edit: func(text *textmap.Text[textmap.UTF16]) error {
				return text.Insert(2, "😀")
			},
			expected: "€b😀",
		},
		{
			name:    "InsertIntoEmpty",
			initial: "",
			edit: func(text *textmap.Text[textmap.UTF16]) error {
				return text.Insert(0, "h\u00e9")
			},
			expected: "h\u00e9",
		},
		{
			name:    "DeleteSurrogatePair",
			initial: "a😀b",
			edit: func(text *textmap.Text[textmap.UTF16]) error {
				return text.Delete(1, 3)
			},
			expected: "ab",
		},
		{
			name:    "DeleteAll",
			initial: "a😀b",
			edit: func(text *textmap.Text[textmap.UTF16]) error {
				return text.Delete(0, 4)
			},
			expected: "",
		},
		{
			name:    "Replace",
			initial: "hello w\u00f6rld",
			edit: func(text *textmap.Text[textmap.UTF16]) error {
				return text.Replace(6, 11, "€🌍")
			},
			expected: "hello €🌍",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			text := textmap.NewUTF16(test.initial)

			require.NoError(t, test.edit(text))
			require.Equal(t, test.expected, text.String())
			require.Equal(t, textmap.FromUTF16(test.expected).Entries(), text.Offsets().Entries())
		})
	}
}

func TestText_editErrors(t *testing.T) {
	t.Parallel()

	text := textmap.NewUTF16("a😀b")

	require.ErrorIs(t, text.Insert(2, "x"), textmap.ErrNotBoundary)
	require.ErrorIs(t, text.Delete(3, 1), difftree.ErrInvalidRange)
	require.ErrorIs(t, text.Replace(0, 9, "x"), textmap.ErrOutOfRange)

	// Failed edits leave the text untouched.
	require.Equal(t, "a😀b", text.String())
	require.Equal(t, textmap.FromUTF16("a😀b").Entries(), text.Offsets().Entries())
}

func TestText_graphemeEdits(t *testing.T) {
	t.Parallel()

	t.Run("CombiningMark", func(t *testing.T) {
		t.Parallel()

		text := textmap.NewGraphemes("cafe")

		require.NoError(t, text.Insert(4, "\u0301"))
		require.Equal(t, "cafe\u0301", text.String())
		require.Equal(t, textmap.Grapheme(4), text.Len())
		require.Equal(t, textmap.FromGraphemes("cafe\u0301").Entries(), text.Offsets().Entries())
	})

	t.Run("SplitCluster", func(t *testing.T) {
		t.Parallel()

		text := textmap.NewGraphemes("ce\u0301x")

		// Inserting before the cluster does not touch its shape.
		require.NoError(t, text.Insert(1, "ab"))
		require.Equal(t, textmap.FromGraphemes("cabe\u0301x").Entries(), text.Offsets().Entries())

		require.NoError(t, text.Delete(0, 3))
		require.Equal(t, "e\u0301x", text.String())
		require.Equal(t, textmap.FromGraphemes("e\u0301x").Entries(), text.Offsets().Entries())
	})

	t.Run("Sequence", func(t *testing.T) {
		t.Parallel()

		text := textmap.NewGraphemes("")

		require.NoError(t, text.Insert(0, "w\u00f6rld"))
		require.NoError(t, text.Insert(0, "hello "))
		require.NoError(t, text.Replace(6, 7, "W"))
		require.NoError(t, text.Insert(11, "!"))
		require.NoError(t, text.Delete(5, 6))

		require.Equal(t, "helloW\u00f6rld!", text.String())
		require.Equal(t, textmap.FromGraphemes("helloW\u00f6rld!").Entries(), text.Offsets().Entries())

		b, err := text.ToByte(7)

		require.NoError(t, err)
		require.Equal(t, textmap.Byte(8), b)
	})

	t.Run("RegionalIndicators", func(t *testing.T) {
		t.Parallel()

		// Regional indicators pair up from the left, so an edit can move every
		// flag after it.
		const (
			a = "\U0001F1E6"
			b = "\U0001F1E7"
			c = "\U0001F1E8"
			d = "\U0001F1E9"
			z = "\U0001F1FF"
		)

		tests := []struct {
			name     string
			initial  string
			edit     func(text *textmap.Text[textmap.Grapheme]) error
			expected string
		}{
			{
				name:    "InsertStart",
				initial: a + b + c + d,
				edit: func(text *textmap.Text[textmap.Grapheme]) error {
					return text.Insert(0, z)
				},
				expected: z + a + b + c + d,
			},
			{
				name:    "InsertMiddle",
				initial: a + b + c + d,
				edit: func(text *textmap.Text[textmap.Grapheme]) error {
					return text.Insert(1, z)
				},
				expected: a + b + z + c + d,
			},
			{
				name:    "DeleteSeparator",
				initial: a + "x" + b + c + d,
				edit: func(text *textmap.Text[textmap.Grapheme]) error {
					return text.Delete(1, 2)
				},
				expected: a + b + c + d,
			},
			{
				name:    "ReplaceFlag",
				initial: a + b + c + d + "!",
				edit: func(text *textmap.Text[textmap.Grapheme]) error {
					return text.Replace(0, 1, z)
				},
				expected: z + c + d + "!",
			},
		}

		for _, test := range tests {
			t.Run(test.name, func(t *testing.T) {
				t.Parallel()

				text := textmap.NewGraphemes(test.initial)

				require.NoError(t, test.edit(text))
				require.Equal(t, test.expected, text.String())
				require.Equal(t, textmap.FromGraphemes(test.expected).Entries(), text.Offsets().Entries())
			})
		}
	})
}
