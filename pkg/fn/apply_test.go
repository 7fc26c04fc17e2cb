package fn

import (
	"strings"
	"testing"
)

func TestPipe_EqualsDirectCall(t *testing.T) {
	t.Parallel()

	out := Pipe("abc", strings.ToUpper)
	if out != "ABC" {
		t.Fatalf("expected ABC, got: %v", out)
	}
	if out != strings.ToUpper("abc") {
		t.Fatalf("Pipe should equal direct invocation, got: %v", out)
	}
}

func TestPipe2_LeftToRightOrder(t *testing.T) {
	t.Parallel()

	var order []string
	f := func(x int) int {
		order = append(order, "f")
		return x + 1
	}
	g := func(x int) int {
		order = append(order, "g")
		return x * 2
	}

	out := Pipe2(3, f, g)
	if out != 8 {
		t.Fatalf("expected 8, got: %v", out)
	}
	if len(order) != 2 || order[0] != "f" || order[1] != "g" {
		t.Fatalf("expected f then g, got: %v", order)
	}
}

func TestPipe3_MatchesNestedInvocation(t *testing.T) {
	t.Parallel()

	increment := func(x int) int { return x + 1 }
	square := func(x int) int { return x * x }
	negate := func(x int) int { return -x }

	out := Pipe3(3, increment, square, negate)
	if out != negate(square(increment(3))) {
		t.Fatalf("expected %v, got: %v", negate(square(increment(3))), out)
	}
}

func TestIdentity(t *testing.T) {
	t.Parallel()

	if Identity(42) != 42 {
		t.Fatalf("identity should return its argument")
	}
	if Identity("x") != "x" {
		t.Fatalf("identity should return its argument")
	}
}

func TestConst(t *testing.T) {
	t.Parallel()

	f := Const[string](7)
	if f("anything") != 7 || f("") != 7 {
		t.Fatalf("const function should ignore its argument")
	}
}
