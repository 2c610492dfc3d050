package either

import "reflect"

// ResultOk wraps a value in the Ok variant. It mirrors Ok and exists for
// call sites that read better with the result_ prefix.
func ResultOk[S, F any](value S) Either[S, F] {
	return Ok[S, F](value)
}

// ResultFail wraps an error payload in the Fail variant.
func ResultFail[S, F any](err F) Either[S, F] {
	return Fail[S, F](err)
}

// Combine folds an ordered sequence of results into one. If every input
// is Ok, it returns Ok of the payloads in input order; an empty input
// yields Ok of an empty slice. Otherwise the first non-Ok element wins
// and the remaining elements are not examined.
func Combine[S, F any](results ...Either[S, F]) Either[[]S, F] {
	values := make([]S, 0, len(results))
	for _, r := range results {
		if !r.IsOk() {
			return Fail[[]S, F](r.Err())
		}
		values = append(values, r.Value())
	}
	return Ok[[]S, F](values)
}

// ValueOr returns the success payload of r, or def when r is Fail.
// Passing the zero-value Either is a contract violation and panics;
// callers that cannot guarantee a well-formed result should use
// UnwrapOr instead.
func ValueOr[S, F any](r Either[S, F], def S) S {
	if !r.IsValid() {
		panic("either: ValueOr called on an invalid zero-value Either")
	}
	if r.IsFail() {
		return def
	}
	return r.Value()
}

// UnwrapOr is the permissive extractor. It returns the success payload
// when v is an Ok result or present Option, def when v is a Fail, an
// absent Option, an invalid Either, or nil, and v itself for any other
// non-nil value. It never panics.
//
// Note the last arm: a plain non-Result value such as 0 or an empty
// slice is considered valid and returned unchanged. Callers wanting a
// strict contract should use ValueOr.
func UnwrapOr(v, def any) any {
	if i, ok := v.(instance); ok {
		if i.variant() == kindOk {
			return i.payload()
		}
		return def
	}
	if IsNil(v) {
		return def
	}
	return v
}

// Equality is the defensive comparison: true iff both arguments are
// well-formed results of the same variant whose payloads are equal.
// Anything else, cross-variant pairs and non-Result operands included,
// compares false rather than panicking.
func Equality(r1, r2 any) bool {
	i1, ok1 := r1.(instance)
	i2, ok2 := r2.(instance)
	if !ok1 || !ok2 {
		return false
	}
	k := i1.variant()
	if k == kindInvalid || k != i2.variant() {
		return false
	}
	return reflect.DeepEqual(i1.payload(), i2.payload())
}

// IsNil reports whether v is nil, including a typed nil pointer boxed
// in an interface.
func IsNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
