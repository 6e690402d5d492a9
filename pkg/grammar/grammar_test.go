package grammar

import (
	"reflect"
	"testing"

	"github.com/hriener/behemoth/pkg/term"
)

func TestMatchesOfReturnsDeclarationOrder(t *testing.T) {
	a := term.NewArena()
	n := a.Intern("_N", nil, term.None)
	not := a.Intern("not", []term.Handle{n}, term.NoDoubleApplication)
	and := a.Intern("and", []term.Handle{n, n}, term.None)
	x0 := a.Intern("x0", nil, term.None)

	g := New()
	g.Add(n, not)
	g.Add(n, and)
	g.Add(n, x0)

	got := g.MatchesOf(n)
	want := []term.Handle{not, and, x0}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("MatchesOf(_N) = %v, want %v", got, want)
	}
}

func TestMatchesOfFiltersByMatch(t *testing.T) {
	a := term.NewArena()
	n := a.Intern("_N", nil, term.None)
	m := a.Intern("_M", nil, term.None)
	not := a.Intern("not", []term.Handle{n}, term.NoDoubleApplication)

	g := New()
	g.Add(n, not)

	if got := g.MatchesOf(m); len(got) != 0 {
		t.Fatalf("MatchesOf(_M) = %v, want empty", got)
	}
}

func TestAddAllowsSharedMatch(t *testing.T) {
	a := term.NewArena()
	n := a.Intern("_N", nil, term.None)
	x0 := a.Intern("x0", nil, term.None)
	x1 := a.Intern("x1", nil, term.None)

	g := New()
	g.Add(n, x0)
	g.Add(n, x1)

	if got := len(g.MatchesOf(n)); got != 2 {
		t.Fatalf("expected two rules matching _N, got %d", got)
	}
}
