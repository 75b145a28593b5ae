package option

import "github.com/ib-77/ropfx/pkg/rop/functor"

type Option[A any] struct {
	value A
	some  bool
}

func Some[A any](a A) Option[A] {
	return Option[A]{value: a, some: true}
}

func None[A any]() Option[A] {
	return Option[A]{}
}

// FromPointer is None for nil, Some of the pointed-to value otherwise.
func FromPointer[A any](p *A) Option[A] {
	if p == nil {
		return None[A]()
	}
	return Some(*p)
}

func (o Option[A]) IsSome() bool {
	return o.some
}

func (o Option[A]) IsNone() bool {
	return !o.some
}

func (o Option[A]) Get() (A, bool) {
	return o.value, o.some
}

func (o Option[A]) UnwrapOr(def A) A {
	if o.some {
		return o.value
	}
	return def
}

func Map[A, B any](o Option[A], f func(A) B) Option[B] {
	if !o.some {
		return None[B]()
	}
	return Some(f(o.value))
}

// FlatMap is the bind of Option.
func FlatMap[A, B any](o Option[A], f func(A) Option[B]) Option[B] {
	if !o.some {
		return None[B]()
	}
	return f(o.value)
}

func Fmap[A, B any]() functor.Fmap[A, B, Option[A], Option[B]] {
	return Map[A, B]
}
