package stream

import (
	"context"

	"github.com/ib-77/ropfx/pkg/rop/functor"
)

// Map returns a channel of f(v) for every v received from in, in the same
// order. A panic in f is raised in the worker goroutine.
func Map[In, Out any](ctx context.Context, in <-chan In, f func(In) Out) <-chan Out {
	out := make(chan Out, BufferSize(ctx, 0))
	go locomotive(ctx, in, out, f)
	return out
}

func Fmap[In, Out any](ctx context.Context) functor.Fmap[In, Out, <-chan In, <-chan Out] {
	return func(in <-chan In, f func(In) Out) <-chan Out {
		return Map(ctx, in, f)
	}
}
