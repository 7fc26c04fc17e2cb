package chain

import (
	"context"

	"github.com/fnkit/fnkit/pkg/fn"
)

// Chain wraps a fn.Result with context to enable fluent chaining
type Chain[T, E any] struct {
	ctx    context.Context
	result fn.Result[T, E]
}

// Start creates a new chain from a fn.Result
func Start[T, E any](ctx context.Context, result fn.Result[T, E]) *Chain[T, E] {
	return &Chain[T, E]{
		ctx:    ctx,
		result: result,
	}
}

// FromValue creates a new chain from a successful value
func FromValue[T, E any](ctx context.Context, value T) *Chain[T, E] {
	return &Chain[T, E]{
		ctx:    ctx,
		result: fn.Success[T, E](value),
	}
}

// Result returns the underlying fn.Result
func (c *Chain[T, E]) Result() fn.Result[T, E] {
	return c.result
}

// Then chains a function that returns fn.Result[U, E]
func Then[T, U, E any](c *Chain[T, E], onSuccess func(context.Context, T) fn.Result[U, E]) *Chain[U, E] {
	return &Chain[U, E]{
		ctx: c.ctx,
		result: fn.FlatMap(c.result, func(t T) fn.Result[U, E] {
			return onSuccess(c.ctx, t)
		}),
	}
}

// ThenTry chains a function that returns (U, error)
func ThenTry[T, U any](c *Chain[T, error], tryOnSuccess func(context.Context, T) (U, error)) *Chain[U, error] {
	return &Chain[U, error]{
		ctx: c.ctx,
		result: fn.Try(c.result, func(t T) (U, error) {
			return tryOnSuccess(c.ctx, t)
		}),
	}
}

// Map chains a pure transformation function
func Map[T, U, E any](c *Chain[T, E], onSuccess func(context.Context, T) U) *Chain[U, E] {
	return &Chain[U, E]{
		ctx: c.ctx,
		result: fn.Map(c.result, func(t T) U {
			return onSuccess(c.ctx, t)
		}),
	}
}

// Ensure performs a side effect without changing the result
func (c *Chain[T, E]) Ensure(onSuccess func(context.Context, T)) *Chain[T, E] {
	return &Chain[T, E]{
		ctx: c.ctx,
		result: fn.Tee(c.result, func(t T) {
			onSuccess(c.ctx, t)
		}),
	}
}

// RepeatUntil re-applies onSuccess while the chain stays successful, stopping
// once until reports false
func (c *Chain[T, E]) RepeatUntil(onSuccess func(ctx context.Context, t T) fn.Result[T, E],
	until func(ctx context.Context, t T) bool) *Chain[T, E] {

	if c.result.IsFailure() {
		return c
	}

	for {
		c = Then(c, onSuccess)

		if c.result.IsFailure() || !until(c.ctx, c.result.Value()) {
			return c
		}
	}
}

// While re-applies onSuccess for as long as the chain is successful and the
// while predicate holds
func (c *Chain[T, E]) While(onSuccess func(ctx context.Context, t T) fn.Result[T, E],
	while func(ctx context.Context, t T) bool) *Chain[T, E] {

	for !c.result.IsFailure() && while(c.ctx, c.result.Value()) {
		c = Then(c, onSuccess)
	}
	return c
}

// Or picks this chain if it succeeded, otherwise the alternative; with both
// failed, this chain's failure wins
func (c *Chain[T, E]) Or(alternative *Chain[T, E]) *Chain[T, E] {
	if c.result.IsSuccess() {
		return c
	}
	if alternative.result.IsSuccess() {
		return alternative
	}
	return c
}

// And requires both chains to succeed; the first failure wins, otherwise the
// required chain's result is kept
func (c *Chain[T, E]) And(required *Chain[T, E]) *Chain[T, E] {
	if c.result.IsFailure() {
		return c
	}
	return required
}

// Finally collapses the chain into a final result using fn.Finally
func Finally[T, E, U any](c *Chain[T, E], onSuccess func(context.Context, T) U,
	onFailure func(context.Context, E) U) U {
	return fn.Finally(c.result,
		func(t T) U { return onSuccess(c.ctx, t) },
		func(e E) U { return onFailure(c.ctx, e) })
}
