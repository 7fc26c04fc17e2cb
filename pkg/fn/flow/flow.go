package flow

import (
	"context"
	"sync"

	"github.com/fnkit/fnkit/pkg/fn"
)

// Stage transforms one result into the next, per item. Stages are built with
// MapStage, ThenStage, TryStage and ValidateStage, or written by hand.
type Stage[In, Out, E any] func(ctx context.Context, in fn.Result[In, E]) fn.Result[Out, E]

func MapStage[In, Out, E any](onSuccess func(ctx context.Context, r In) Out) Stage[In, Out, E] {
	return func(ctx context.Context, in fn.Result[In, E]) fn.Result[Out, E] {
		return fn.Map(in, func(r In) Out {
			return onSuccess(ctx, r)
		})
	}
}

func ThenStage[In, Out, E any](onSuccess func(ctx context.Context, r In) fn.Result[Out, E]) Stage[In, Out, E] {
	return func(ctx context.Context, in fn.Result[In, E]) fn.Result[Out, E] {
		return fn.FlatMap(in, func(r In) fn.Result[Out, E] {
			return onSuccess(ctx, r)
		})
	}
}

func TryStage[In, Out any](onTryExecute func(ctx context.Context, r In) (Out, error)) Stage[In, Out, error] {
	return func(ctx context.Context, in fn.Result[In, error]) fn.Result[Out, error] {
		return fn.Try(in, func(r In) (Out, error) {
			return onTryExecute(ctx, r)
		})
	}
}

func ValidateStage[T, E any](pred func(ctx context.Context, r T) bool,
	onInvalid func(r T) E) Stage[T, T, E] {
	return func(ctx context.Context, in fn.Result[T, E]) fn.Result[T, E] {
		return fn.Validate(in, func(r T) bool {
			return pred(ctx, r)
		}, onInvalid)
	}
}

// locomotive is the worker loop: it pulls results from inputCh, runs the
// stage, and pushes downstream until the input closes or the context ends.
func locomotive[In, Out, E any](ctx context.Context, inputCh <-chan fn.Result[In, E],
	outCh chan<- fn.Result[Out, E], stage Stage[In, Out, E], wg *sync.WaitGroup) {
	defer wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case in, ok := <-inputCh:
			if !ok {
				return
			}

			pr := stage(ctx, in)

			select {
			case <-ctx.Done():
				return
			case outCh <- pr:
			}
		}
	}
}

// Run fans a same-type stage out over the given number of workers.
func Run[T, E any](ctx context.Context, inputCh <-chan fn.Result[T, E],
	stage Stage[T, T, E], workers int) <-chan fn.Result[T, E] {
	return Turnout(ctx, inputCh, stage, workers)
}

// Turnout fans a type-changing stage out over the given number of workers.
// The output channel closes once every worker has drained.
func Turnout[In, Out, E any](ctx context.Context, inputCh <-chan fn.Result[In, E],
	stage Stage[In, Out, E], workers int) <-chan fn.Result[Out, E] {

	out := make(chan fn.Result[Out, E])
	wg := &sync.WaitGroup{}

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go locomotive(ctx, inputCh, out, stage, wg)
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}

type FinallyHandlers[In, E, Out any] struct {
	OnSuccess func(ctx context.Context, r In) Out
	OnFailure func(ctx context.Context, e E) Out
}

// Finally collapses every result on the channel to a plain value via the
// handlers.
func Finally[In, E, Out any](ctx context.Context, inputCh <-chan fn.Result[In, E],
	handlers FinallyHandlers[In, E, Out]) <-chan Out {

	out := make(chan Out)

	go func() {
		defer close(out)

		for {
			select {
			case <-ctx.Done():
				return
			case in, ok := <-inputCh:
				if !ok {
					return
				}

				v := fn.Finally(in,
					func(r In) Out { return handlers.OnSuccess(ctx, r) },
					func(e E) Out { return handlers.OnFailure(ctx, e) })

				select {
				case <-ctx.Done():
					return
				case out <- v:
				}
			}
		}
	}()

	return out
}
