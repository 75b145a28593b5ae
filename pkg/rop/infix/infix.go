package infix

import "github.com/ib-77/ropfx/pkg/rop/functor"

// Map is the map of the context under its plain name.
func Map[A, B, FA, FB any](m functor.Fmap[A, B, FA, FB], fa FA, f func(A) B) FB {
	return m(fa, f)
}

// Replace is the standard discard-left: a <$ fb.
func Replace[B, A, FB, FA any](m functor.Fmap[B, A, FB, FA], a A, fb FB) FA {
	return m(fb, functor.Const[B](a))
}

// MapThen applies f inside fa (fa >$> f).
func MapThen[A, B, FA, FB any](m functor.Fmap[A, B, FA, FB], fa FA, f func(A) B) FB {
	return m(fa, f)
}

// ReplaceWith keeps the effect of fb and sets its value to a (fb $> a).
func ReplaceWith[B, A, FB, FA any](m functor.Fmap[B, A, FB, FA], fb FB, a A) FA {
	return Replace(m, a, fb)
}

// MapOver is MapThen with the function first (f <$< fa).
func MapOver[A, B, FA, FB any](m functor.Fmap[A, B, FA, FB], f func(A) B, fa FA) FB {
	return MapThen(m, fa, f)
}

// KleisliMap returns a function that runs f and maps g over its result
// (f >=$> g). m is the map of the context f returns.
func KleisliMap[A, B, C, FB, FC any](m functor.Fmap[B, C, FB, FC], f func(A) FB, g func(B) C) func(A) FC {
	return func(a A) FC {
		return MapThen(m, f(a), g)
	}
}

// KleisliMapR is KleisliMap written right to left (g <$=< f).
func KleisliMapR[A, B, C, FB, FC any](m functor.Fmap[B, C, FB, FC], g func(B) C, f func(A) FB) func(A) FC {
	return KleisliMap(m, f, g)
}

// Pipe applies f to a (a |> f).
func Pipe[A, B any](a A, f func(A) B) B {
	return f(a)
}

// Compose returns f followed by g (f .> g).
func Compose[A, B, C any](f func(A) B, g func(B) C) func(A) C {
	return func(a A) C {
		return g(f(a))
	}
}

// Void keeps the effect of fa and forgets its value.
func Void[A, FA, FU any](m functor.Fmap[A, struct{}, FA, FU], fa FA) FU {
	return ReplaceWith(m, fa, struct{}{})
}

// Flow composes steps of the same type left to right. No steps is the identity.
func Flow[A any](steps ...func(A) A) func(A) A {
	if len(steps) == 0 {
		return functor.Id[A]
	}

	flow := steps[0]
	for _, next := range steps[1:] {
		flow = Compose(flow, next)
	}
	return flow
}

// PipeAll runs a through steps left to right.
func PipeAll[A any](a A, steps ...func(A) A) A {
	return Pipe(a, Flow(steps...))
}
