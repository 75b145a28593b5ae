// Package infix provides the map-based combinators for mixing pure functions
// with a context (Result, Option, slices, channels, ...) without hand-written
// lifting code.
//
// Go has no user-defined operators, so each operator is a function and the
// context is passed as its functor.Fmap. Operators and their Go names:
// - >$>   MapThen(m, fa, f): map, context first, for left-to-right chains
// - $>    ReplaceWith(m, fb, a): keep the effect of fb, replace its value by a
// - <$<   MapOver(m, f, fa): map, function first, for right-to-left chains
// - >=$>  KleisliMap(m, f, g): run f, then map the pure g over its result
// - <$=<  KleisliMapR(m, g, f): KleisliMap with the operands swapped
// - |>    Pipe(a, f): apply f to a
// - .>    Compose(f, g): f, then g
// - <$    Replace(m, a, fb): the standard discard-left, value first
// - fmap  Map(m, fa, f): the context's own map
//
// Left-associative operators chain by nesting the first argument,
// right-associative ones by nesting the last:
//
//	infix.MapThen(m2, infix.MapThen(m1, x, f), g)   // x >$> f >$> g
//	infix.MapOver(m2, g, infix.MapOver(m1, f, x))   // g <$< f <$< x
//
// Every context operator, KleisliMap included, is built from the map of the
// context only. Nothing here needs a bind, so any Fmap is enough, and an
// effect held by the context is never run twice.
//
// Functions passed in are called as is. A panic or a failure carried by the
// context goes through untouched.
package infix
