package fn

import (
	"time"

	"github.com/google/uuid"
)

// Result is a two-variant container: either a success value of type T or a
// failure payload of type E. A given instance is always exactly one of the
// two and never changes variant after construction.
type Result[T, E any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	failure   E
	isSuccess bool
}

func Success[T, E any](v T) Result[T, E] {
	return Result[T, E]{
		value:     v,
		isSuccess: true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Failure[T, E any](e E) Result[T, E] {
	return Result[T, E]{
		failure:   e,
		isSuccess: false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// FailureFrom re-types a failed result to a new success type. The failure
// payload, id and creation time are carried over by identity, which is what
// lets Map and FlatMap short-circuit without rebuilding anything.
func FailureFrom[In, Out, E any](from Result[In, E]) Result[Out, E] {
	return Result[Out, E]{
		failure:   from.failure,
		isSuccess: false,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

func (r Result[T, E]) Value() T {
	return r.value
}

func (r Result[T, E]) Failure() E {
	return r.failure
}

func (r Result[T, E]) IsSuccess() bool {
	return r.isSuccess
}

func (r Result[T, E]) IsFailure() bool {
	return !r.isSuccess
}

func (r Result[T, E]) CreatedAt() time.Time {
	return r.createdAt
}

func (r Result[T, E]) Id() uuid.UUID {
	return r.id
}
