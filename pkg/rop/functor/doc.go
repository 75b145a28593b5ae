// Package functor describes the map capability of a context in a form Go
// generics can carry around.
//
// Go cannot abstract over a type constructor F, so a context is not passed as
// F but as its map, instantiated for one pair of element types:
//
//	type Fmap[A, B, FA, FB any] func(fa FA, f func(A) B) FB
//
// Every context package exports a constructor for its instance (solo.Fmap,
// option.Fmap, stream.Fmap). This package provides the instances for the
// built-in shapes:
// - Slice: []A, element-wise, length preserved
// - Pointer: *A, nil stays nil
// - MapValues: map[K]A, keys preserved
// - Identity: A itself
// - Func: func(R) A, the reader context (post-composition)
//
// An Fmap is expected to obey the functor laws:
//
//	m(x, Id) == x
//	m(m(x, f), g) == m(x, func(a A) C { return g(f(a)) })
package functor
