package printer

import (
	"fmt"

	"github.com/hriener/behemoth/pkg/term"
)

// CTL renders terms built from the computation tree logic grammar
// used by the `ctl` demo. It is LTL's printer plus one special case:
// the until operators EU/AU are rendered as "(E(lhs)U(rhs))" and
// "(A(lhs)U(rhs))" rather than the generic infix form, so the temporal
// quantifier (E or A)
// reads as a prefix on the left operand rather than gluing the whole
// operator name between the two sides.
type CTL struct {
	Arena *term.Arena
}

// AsString implements Printer.
func (p CTL) AsString(h term.Handle) string {
	n := p.Arena.Get(h)

	switch len(n.Children) {
	case 0:
		return n.Name
	case 1:
		return fmt.Sprintf("%s(%s)", n.Name, p.AsString(n.Children[0]))
	case 2:
		if n.Name == "EU" || n.Name == "AU" {
			return fmt.Sprintf("(%s(%s)U(%s))", n.Name[:1], p.AsString(n.Children[0]), p.AsString(n.Children[1]))
		}
		return fmt.Sprintf("((%s)%s(%s))", p.AsString(n.Children[0]), n.Name, p.AsString(n.Children[1]))
	default:
		panic(fmt.Sprintf("printer.CTL: unsupported number of children in CTL formula: %s", n.Name))
	}
}
