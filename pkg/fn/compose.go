package fn

// Compose is left to right function composition. Compose(f, g)(x) == g(f(x)).
// Neither f nor g runs until the returned function is invoked; every
// invocation runs f exactly once, then g exactly once.
func Compose[A, B, C any](f func(A) B, g func(B) C) func(A) C {
	return func(a A) C {
		return g(f(a))
	}
}

// Compose3 composes three functions left to right.
func Compose3[A, B, C, D any](f func(A) B, g func(B) C, h func(C) D) func(A) D {
	return Compose(Compose(f, g), h)
}

// ComposeErr composes two functions of Go's (value, error) shape. The second
// function never runs if the first returned an error.
func ComposeErr[A, B, C any](f func(A) (B, error), g func(B) (C, error)) func(A) (C, error) {
	return func(a A) (C, error) {
		b, err := f(a)
		if err != nil {
			var zero C
			return zero, err
		}
		return g(b)
	}
}

// ComposeResult is Kleisli composition over Result: it chains two
// result-returning functions, short-circuiting on the first failure.
func ComposeResult[A, B, C, E any](f func(A) Result[B, E], g func(B) Result[C, E]) func(A) Result[C, E] {
	return func(a A) Result[C, E] {
		return FlatMap(f(a), g)
	}
}
