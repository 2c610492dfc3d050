package either

import (
	"fmt"
	"iter"
	"reflect"
)

type kind uint8

const (
	kindInvalid kind = iota
	kindOk
	kindFail
)

// Either is an immutable two-armed sum type: every properly constructed
// value is exactly one of Ok (carrying an S) or Fail (carrying an F).
// The zero value is neither and is reported as invalid by IsValid and
// the package guards.
type Either[S, F any] struct {
	ok   S
	fail F
	kind kind
}

func Ok[S, F any](value S) Either[S, F] {
	return Either[S, F]{
		ok:   value,
		kind: kindOk,
	}
}

func Fail[S, F any](err F) Either[S, F] {
	return Either[S, F]{
		fail: err,
		kind: kindFail,
	}
}

// Value returns the success payload, or the zero S when not Ok.
func (e Either[S, F]) Value() S {
	return e.ok
}

// Err returns the failure payload, or the zero F when not Fail.
func (e Either[S, F]) Err() F {
	return e.fail
}

// Get returns the success payload and whether it is present.
func (e Either[S, F]) Get() (S, bool) {
	return e.ok, e.kind == kindOk
}

func (e Either[S, F]) IsOk() bool {
	return e.kind == kindOk
}

func (e Either[S, F]) IsFail() bool {
	return e.kind == kindFail
}

// IsValid reports whether e was built by a constructor rather than being
// the zero value.
func (e Either[S, F]) IsValid() bool {
	return e.kind != kindInvalid
}

// Equal reports whether e and other are the same variant with equal
// payloads. Payloads are compared with reflect.DeepEqual since S and F
// are unconstrained. Invalid values are equal to nothing, themselves
// included.
func (e Either[S, F]) Equal(other Either[S, F]) bool {
	switch e.kind {
	case kindOk:
		return other.kind == kindOk && reflect.DeepEqual(e.ok, other.ok)
	case kindFail:
		return other.kind == kindFail && reflect.DeepEqual(e.fail, other.fail)
	default:
		return false
	}
}

// Values returns a lazy sequence of at most one element: the success
// payload when e is Ok, nothing otherwise. The sequence is restartable;
// ranging over it again replays the same result.
func (e Either[S, F]) Values() iter.Seq[S] {
	return func(yield func(S) bool) {
		if e.kind == kindOk {
			yield(e.ok)
		}
	}
}

func (e Either[S, F]) String() string {
	switch e.kind {
	case kindOk:
		return fmt.Sprintf("Ok(%v)", e.ok)
	case kindFail:
		return fmt.Sprintf("Fail(%v)", e.fail)
	default:
		return "Invalid"
	}
}

// variant is the non-generic view shared by all Either instantiations.
// It backs the package guards and the permissive helpers, which must
// inspect values of unknown type without reflection.
func (e Either[S, F]) variant() kind {
	return e.kind
}

// payload returns whichever arm is populated as an any.
func (e Either[S, F]) payload() any {
	switch e.kind {
	case kindOk:
		return e.ok
	case kindFail:
		return e.fail
	default:
		return nil
	}
}
