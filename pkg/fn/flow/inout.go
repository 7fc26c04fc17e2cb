package flow

import (
	"context"

	"github.com/fnkit/fnkit/pkg/fn"
)

// ToChan feeds plain values into a channel of successful results, stopping
// early when the context is cancelled.
func ToChan[T, E any](ctx context.Context, values ...T) <-chan fn.Result[T, E] {
	in := make(chan fn.Result[T, E])

	go func() {
		defer close(in)

		for _, v := range values {
			if ctx.Err() != nil {
				return
			}

			select {
			case in <- fn.Success[T, E](v):
			case <-ctx.Done():
				return
			}
		}
	}()

	return in
}

// ToChanResults feeds pre-built results into a channel.
func ToChanResults[T, E any](ctx context.Context, results ...fn.Result[T, E]) <-chan fn.Result[T, E] {
	in := make(chan fn.Result[T, E])

	go func() {
		defer close(in)

		for _, r := range results {
			if ctx.Err() != nil {
				return
			}

			select {
			case in <- r:
			case <-ctx.Done():
				return
			}
		}
	}()

	return in
}

// Collect drains a channel into a slice, stopping early when the context is
// cancelled.
func Collect[T any](ctx context.Context, out <-chan T) []T {
	res := make([]T, 0)

	for {
		select {
		case v, ok := <-out:
			if !ok {
				return res
			}
			res = append(res, v)
		case <-ctx.Done():
			return res
		}
	}
}

// FirstOrDefault returns the first value delivered by the channel, or the
// default when the channel closes or the context is cancelled first.
func FirstOrDefault[T any](ctx context.Context, out <-chan T, defaultV T) T {
	select {
	case v, ok := <-out:
		if !ok {
			return defaultV
		}
		return v
	case <-ctx.Done():
		return defaultV
	}
}
