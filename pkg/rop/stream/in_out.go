package stream

import "context"

// Of sends values one by one and closes the channel. It stops early when ctx
// is done.
func Of[T any](ctx context.Context, values ...T) <-chan T {
	in := make(chan T)

	go func() {
		defer close(in)

		for _, v := range values {
			if ctx.Err() != nil {
				return
			}

			select {
			case in <- v:
			case <-ctx.Done():
				return
			}
		}
	}()

	return in
}

func FromSlice[T any](ctx context.Context, values []T) <-chan T {
	return Of(ctx, values...)
}

// ToSlice collects out until it is closed or ctx is done.
func ToSlice[T any](ctx context.Context, out <-chan T) []T {
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

// First returns the first value of out, or defaultV when out is closed empty
// or ctx is done first.
func First[T any](ctx context.Context, out <-chan T, defaultV T) T {
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
