// Package stream treats a receive-only channel as a context for the infix
// combinators: a <-chan T yields its values over time, and mapping it starts a
// worker that forwards f(v) in order.
//
// It keeps the plumbing of a pipeline: channel helpers bound to a
// context.Context, buffer configuration carried by the context, and the
// locomotive loop that drives a map stage. Every goroutine started here exits
// once its input is closed or its context is done.
package stream
