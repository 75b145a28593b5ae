package solo

import (
	"context"

	"github.com/ib-77/ropfx/pkg/rop"
	"github.com/ib-77/ropfx/pkg/rop/functor"
)

func Succeed[T any](input T) rop.Result[T] {
	return rop.Success(input)
}

func Fail[T any](err error) rop.Result[T] {
	return rop.Fail[T](err)
}

func Cancel[T any](err error) rop.Result[T] {
	return rop.Cancel[T](err)
}

func Switch[In any, Out any](ctx context.Context,
	input rop.Result[In],
	onSuccess func(ctx context.Context, r In) rop.Result[Out]) rop.Result[Out] {

	if input.IsSuccess() {
		return onSuccess(ctx, input.Result())
	}
	return rop.From[In, Out](input)
}

func Map[In any, Out any](ctx context.Context,
	input rop.Result[In],
	onSuccess func(ctx context.Context, r In) Out) rop.Result[Out] {

	if input.IsSuccess() {
		return rop.Carry(input, onSuccess(ctx, input.Result()))
	}
	return rop.From[In, Out](input)
}

// Fmap lifts plain functions through Map with ctx.
func Fmap[In, Out any](ctx context.Context) functor.Fmap[In, Out, rop.Result[In], rop.Result[Out]] {
	return func(input rop.Result[In], f func(In) Out) rop.Result[Out] {
		return Map(ctx, input, func(_ context.Context, r In) Out {
			return f(r)
		})
	}
}

func Tee[T any](ctx context.Context,
	input rop.Result[T],
	onSuccess func(ctx context.Context, r rop.Result[T])) rop.Result[T] {

	if input.IsSuccess() {
		onSuccess(ctx, input)
	}

	return input
}

func Try[In any, Out any](ctx context.Context, input rop.Result[In],
	onTryExecute func(ctx context.Context, r In) (Out, error)) rop.Result[Out] {

	if input.IsSuccess() {

		out, err := onTryExecute(ctx, input.Result())
		if err != nil {
			if rop.IsCancellationError(err) {
				return rop.Cancel[Out](err)
			}
			return rop.Fail[Out](err)
		}

		return rop.Carry(input, out)
	}

	return rop.From[In, Out](input)
}

func Finally[In, Out any](ctx context.Context, input rop.Result[In],
	onSuccess func(ctx context.Context, r In) Out,
	onError func(ctx context.Context, err error) Out,
	onCancel func(ctx context.Context, err error) Out) Out {

	if input.IsSuccess() {
		return onSuccess(ctx, input.Result())
	} else if input.IsCancel() {
		return onCancel(ctx, input.Err())
	} else {
		return onError(ctx, input.Err())
	}
}
