// Package solo contains single-value, synchronous ROP primitives that operate
// on Result[T]. These functions are the Result context the infix combinators
// run against.
//
// Highlights:
// - Succeed/Fail/Cancel: construct Result[T]
// - Map: transform the successful value, keeping id, creation time and state
// - Switch: move from Result[In] to Result[Out] (bind)
// - Try: call a function (Out, error) and convert error to failure
// - Tee: side effect on success
// - Finally: reduce to a concrete value via success/error/cancel handlers
// - Fmap: the functor.Fmap of Result, for package infix
package solo
