package functor

// Fmap is the map of a context FA holding A values. It applies f to every value
// held by fa and returns the context FB of the results, keeping the shape and
// any effect of fa.
type Fmap[A, B, FA, FB any] func(fa FA, f func(A) B) FB

// Map calls m. It lets an Fmap be stored behind an interface.
func (m Fmap[A, B, FA, FB]) Map(fa FA, f func(A) B) FB {
	return m(fa, f)
}

// Id returns its argument.
func Id[A any](a A) A {
	return a
}

// Const returns a function that ignores its argument and always returns a.
func Const[B, A any](a A) func(B) A {
	return func(_ B) A {
		return a
	}
}

// Flip swaps the arguments of a two-argument function.
func Flip[A, B, C any](f func(A, B) C) func(B, A) C {
	return func(b B, a A) C {
		return f(a, b)
	}
}

func Slice[A, B any]() Fmap[A, B, []A, []B] {
	return func(fa []A, f func(A) B) []B {
		if fa == nil {
			return nil
		}
		out := make([]B, len(fa))
		for i, a := range fa {
			out[i] = f(a)
		}
		return out
	}
}

func Pointer[A, B any]() Fmap[A, B, *A, *B] {
	return func(fa *A, f func(A) B) *B {
		if fa == nil {
			return nil
		}
		b := f(*fa)
		return &b
	}
}

func MapValues[K comparable, A, B any]() Fmap[A, B, map[K]A, map[K]B] {
	return func(fa map[K]A, f func(A) B) map[K]B {
		if fa == nil {
			return nil
		}
		out := make(map[K]B, len(fa))
		for k, a := range fa {
			out[k] = f(a)
		}
		return out
	}
}

func Identity[A, B any]() Fmap[A, B, A, B] {
	return func(fa A, f func(A) B) B {
		return f(fa)
	}
}

// Func maps over the result of a function: the returned function runs fa and
// then f.
func Func[R, A, B any]() Fmap[A, B, func(R) A, func(R) B] {
	return func(fa func(R) A, f func(A) B) func(R) B {
		return func(r R) B {
			return f(fa(r))
		}
	}
}
