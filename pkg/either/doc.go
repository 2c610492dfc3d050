// Package either provides two algebraic wrapper types for modeling
// fallible and optional values: Either[S, F], a two-armed sum of a
// success payload and a failure payload, and Option[T], an Either
// specialized over the Nothing sentinel.
//
// Values are immutable: the variant is fixed at construction and every
// operation on them is a pure function, so instances are safe to share
// across goroutines without locking.
//
// Highlights:
// - Ok/Fail, Some/None: construct a variant
// - IsOk/IsFail/IsResult: guards over values of unknown type
// - Combine: fold many results into one, first failure wins
// - ValueOr/UnwrapOr: strict and permissive extraction with a default
// - Equality: defensive variant-and-payload comparison
// - Values: iterate the 0-or-1 contained payloads
//
// For composing results into pipelines, see the solo and chain
// sub-packages.
package either
