package fn

import (
	"errors"
	"strings"
	"testing"
)

func increment(x int) int { return x + 1 }
func square(x int) int    { return x * x }

func TestCompose_EqualsNestedCall(t *testing.T) {
	t.Parallel()

	h := Compose(increment, square)
	if h(3) != 16 {
		t.Fatalf("expected 16, got: %v", h(3))
	}
	if h(5) != square(increment(5)) {
		t.Fatalf("compose should equal g(f(a))")
	}
}

func TestCompose_Lazy(t *testing.T) {
	t.Parallel()

	calls := 0
	f := func(x int) int {
		calls++
		return x + 1
	}

	h := Compose(f, square)
	if calls != 0 {
		t.Fatalf("composing should not invoke f, got %d calls", calls)
	}

	h(1)
	h(1)
	if calls != 2 {
		t.Fatalf("each invocation should re-run f, got %d calls", calls)
	}
}

func TestCompose_Associativity(t *testing.T) {
	t.Parallel()

	negate := func(x int) int { return -x }

	left := Compose(Compose(increment, square), negate)
	right := Compose(increment, Compose(square, negate))

	for _, in := range []int{-3, 0, 1, 7} {
		if left(in) != right(in) {
			t.Fatalf("associativity broken at %d: %d != %d", in, left(in), right(in))
		}
	}
}

func TestCompose3(t *testing.T) {
	t.Parallel()

	negate := func(x int) int { return -x }
	h := Compose3(increment, square, negate)
	if h(3) != -16 {
		t.Fatalf("expected -16, got: %v", h(3))
	}
}

func TestComposeErr_ShortCircuit(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	gCalled := false

	h := ComposeErr(
		func(x int) (int, error) { return 0, boom },
		func(x int) (int, error) {
			gCalled = true
			return x + 1, nil
		})

	_, err := h(1)
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got: %v", err)
	}
	if gCalled {
		t.Fatalf("g should not run when f failed")
	}
}

func TestComposeErr_Success(t *testing.T) {
	t.Parallel()

	h := ComposeErr(
		func(x int) (int, error) { return x + 1, nil },
		func(x int) (int, error) { return x * x, nil })

	out, err := h(3)
	if err != nil || out != 16 {
		t.Fatalf("expected 16, got: %v, err: %v", out, err)
	}
}

func TestComposeResult_ShortCircuit(t *testing.T) {
	t.Parallel()

	gCalled := false
	h := ComposeResult(
		func(x int) Result[int, string] { return Failure[int, string]("neg") },
		func(x int) Result[int, string] {
			gCalled = true
			return Success[int, string](x + 1)
		})

	out := h(4)
	if out.IsSuccess() || out.Failure() != "neg" {
		t.Fatalf("expected failure neg, got: success=%v, failure=%v", out.IsSuccess(), out.Failure())
	}
	if gCalled {
		t.Fatalf("g should not run when f failed")
	}
}

func TestComposeResult_Associativity(t *testing.T) {
	t.Parallel()

	var calls []string
	traced := func(name string, inner func(int) Result[int, string]) func(int) Result[int, string] {
		return func(x int) Result[int, string] {
			calls = append(calls, name)
			return inner(x)
		}
	}

	f := traced("f", func(x int) Result[int, string] {
		return Success[int, string](x + 1)
	})
	g := traced("g", func(x int) Result[int, string] {
		if x > 3 {
			return Failure[int, string]("big")
		}
		return Success[int, string](x * 2)
	})
	h := traced("h", func(x int) Result[int, string] {
		return Success[int, string](x - 1)
	})

	left := ComposeResult(ComposeResult(f, g), h)
	right := ComposeResult(f, ComposeResult(g, h))

	// 1 runs all three steps; 5 fails at g and must skip h
	for _, in := range []int{1, 5} {
		calls = nil
		lv := left(in)
		leftCalls := strings.Join(calls, ",")

		calls = nil
		rv := right(in)
		rightCalls := strings.Join(calls, ",")

		if !equalResults(lv, rv) {
			t.Fatalf("groupings disagree at %d: success=%v/%v, val=%v/%v, failure=%v/%v",
				in, lv.IsSuccess(), rv.IsSuccess(), lv.Value(), rv.Value(), lv.Failure(), rv.Failure())
		}
		if leftCalls != rightCalls {
			t.Fatalf("call sequences disagree at %d: %q != %q", in, leftCalls, rightCalls)
		}
	}
}

func TestComposeResult_Success(t *testing.T) {
	t.Parallel()

	h := ComposeResult(
		func(x int) Result[int, string] { return Success[int, string](x * 2) },
		func(x int) Result[int, string] { return Success[int, string](x + 1) })

	out := h(4)
	if !out.IsSuccess() || out.Value() != 9 {
		t.Fatalf("expected success 9, got: success=%v, val=%v", out.IsSuccess(), out.Value())
	}
}
