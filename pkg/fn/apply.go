package fn

// Pipe is forward application: it feeds x to f, left to right.
// Pipe(x, f) == f(x).
func Pipe[A, B any](x A, f func(A) B) B {
	return f(x)
}

// Pipe2 feeds x through f then g, strictly left to right.
func Pipe2[A, B, C any](x A, f func(A) B, g func(B) C) C {
	return g(f(x))
}

// Pipe3 feeds x through f, g, then h, strictly left to right.
func Pipe3[A, B, C, D any](x A, f func(A) B, g func(B) C, h func(C) D) D {
	return h(g(f(x)))
}

// Identity returns its argument unchanged. It is the left and right identity
// of Compose.
func Identity[A any](a A) A {
	return a
}

// Const accepts a value and returns a function that always returns that value
// irrespective of the returned function's argument.
func Const[B, A any](a A) func(B) A {
	return func(_ B) A {
		return a
	}
}
