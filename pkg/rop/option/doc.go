// Package option provides Option[A], a value that may be absent, as a context
// for the infix combinators.
package option
