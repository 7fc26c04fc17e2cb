package fn

// Map transforms the success value with t. A failed result is passed through
// untouched and t is never invoked.
func Map[In, Out, E any](r Result[In, E], t func(In) Out) Result[Out, E] {
	if !r.isSuccess {
		return FailureFrom[In, Out](r)
	}
	return Result[Out, E]{
		value:     t(r.value),
		isSuccess: true,
		createdAt: r.createdAt,
		id:        r.id,
	}
}

// FlatMap chains a result-returning transformation. On success the result of
// u is returned directly, never re-wrapped; on failure u is never invoked and
// the failure payload is carried through unchanged.
func FlatMap[In, Out, E any](r Result[In, E], u func(In) Result[Out, E]) Result[Out, E] {
	if !r.isSuccess {
		return FailureFrom[In, Out](r)
	}
	return u(r.value)
}

// MapFailure transforms the failure payload with t. A successful result is
// passed through untouched.
func MapFailure[T, In, Out any](r Result[T, In], t func(In) Out) Result[T, Out] {
	if r.isSuccess {
		return Result[T, Out]{
			value:     r.value,
			isSuccess: true,
			createdAt: r.createdAt,
			id:        r.id,
		}
	}
	return Result[T, Out]{
		failure:   t(r.failure),
		isSuccess: false,
		createdAt: r.createdAt,
		id:        r.id,
	}
}

// Tee runs a side effect on the success value without changing the result.
func Tee[T, E any](r Result[T, E], effect func(T)) Result[T, E] {
	if r.isSuccess {
		effect(r.value)
	}
	return r
}

// TeeFailure runs a side effect on the failure payload without changing the
// result.
func TeeFailure[T, E any](r Result[T, E], effect func(E)) Result[T, E] {
	if !r.isSuccess {
		effect(r.failure)
	}
	return r
}

// DoubleTee runs exactly one of the two side effects, then returns the result
// unchanged.
func DoubleTee[T, E any](r Result[T, E], onSuccess func(T), onFailure func(E)) Result[T, E] {
	if r.isSuccess {
		onSuccess(r.value)
	} else {
		onFailure(r.failure)
	}
	return r
}

// Finally collapses a result to a plain value via exactly one of the two
// handlers.
func Finally[T, E, Out any](r Result[T, E], onSuccess func(T) Out, onFailure func(E) Out) Out {
	if r.isSuccess {
		return onSuccess(r.value)
	}
	return onFailure(r.failure)
}

// Try bridges a (value, error) function into the container: an error return
// becomes a failure, otherwise the value becomes a success.
func Try[In, Out any](r Result[In, error], f func(In) (Out, error)) Result[Out, error] {
	if !r.isSuccess {
		return FailureFrom[In, Out](r)
	}

	out, err := f(r.value)
	if err != nil {
		return Failure[Out, error](err)
	}
	return Success[Out, error](out)
}

// FromTuple converts a standard Go (value, error) pair to a Result.
func FromTuple[T any](v T, err error) Result[T, error] {
	if err != nil {
		return Failure[T, error](err)
	}
	return Success[T, error](v)
}

// Validate gates a successful value with pred; an invalid value becomes a
// failure built by onInvalid. A failed result is passed through.
func Validate[T, E any](r Result[T, E], pred func(T) bool, onInvalid func(T) E) Result[T, E] {
	if !r.isSuccess {
		return r
	}
	if pred(r.value) {
		return r
	}
	return Failure[T, E](onInvalid(r.value))
}
