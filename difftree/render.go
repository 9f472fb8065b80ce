package difftree

import (
	"fmt"
	"strings"
)

// Render describes t as a Graphviz digraph, one vertex per span, labelled
// with the node's deltas padded to width digits followed by its absolute
// position. It is a debugging aid; the output is not meant to be parsed.
func (t *Tree[A, B]) Render(width int) string {
	vertices := Fold[A, B, []string](t, func(vertices []string, node *Tree[A, B], value Point[A, B], parent *Point[A, B]) []string {
		vertex := fmt.Sprintf(
			"    %d[label=\"%s, %s → %d, %d\"]",
			value.A, signed(int64(node.deltaA), width), signed(int64(node.deltaB), width), value.A, value.B,
		)

		if parent != nil {
			vertex += fmt.Sprintf("\n    %d -> %d", parent.A, value.A)
		}

		return append(vertices, vertex)
	}, nil)

	return "digraph \"DiffTree\" {\n" + strings.Join(vertices, "\n\n") + "\n}"
}

// String renders t without padding.
func (t *Tree[A, B]) String() string {
	return t.Render(0)
}

// signed formats x with an explicit sign, zero-padded to width digits. The
// minus sign is U+2212.
func signed(x int64, width int) string {
	if x >= 0 {
		return fmt.Sprintf("+%0*d", width, x)
	}

	return fmt.Sprintf("−%0*d", width, -x)
}
