// Package solo contains single-value, synchronous primitives that
// operate on either.Either. These functions are the building blocks for
// error-aware flows without exceptions or panics.
//
// Highlights:
// - Succeed/Fail: construct Either values
// - Validate/AndValidate: apply validation producing failure on invalid input
// - Switch: move from Either[In, F] to Either[Out, F]
// - Map/MapErr: transform the success or failure payload
// - Try: call a function returning (Out, error) and convert the error to failure
// - Tee/TeeIf/DoubleTee: side-effect helpers
// - Finally: reduce to a concrete value via success/failure handlers
package solo
