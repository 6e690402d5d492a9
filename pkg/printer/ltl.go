package printer

import (
	"fmt"

	"github.com/hriener/behemoth/pkg/term"
)

// LTL renders terms built from the linear temporal logic grammar used
// by the `ltl` demo: infix binary operators in parentheses, prefix
// unary operators, and bare names for variables.
type LTL struct {
	Arena *term.Arena
}

// AsString implements Printer. It panics on a node with more than two
// children, matching the reference library's own ltl_expr_printer,
// which throws on the same condition — an LTL formula never has a
// ternary-or-wider operator, so this is an invariant violation, not a
// user-facing error.
func (p LTL) AsString(h term.Handle) string {
	n := p.Arena.Get(h)

	switch len(n.Children) {
	case 0:
		return n.Name
	case 1:
		return fmt.Sprintf("%s(%s)", n.Name, p.AsString(n.Children[0]))
	case 2:
		return fmt.Sprintf("((%s)%s(%s))", p.AsString(n.Children[0]), n.Name, p.AsString(n.Children[1]))
	default:
		panic(fmt.Sprintf("printer.LTL: unsupported number of children in LTL formula: %s", n.Name))
	}
}
