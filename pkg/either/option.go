package either

// Nothing is the sentinel failure type for Option: a type with a single
// value and no payload, standing for "no value here".
type Nothing struct{}

func (Nothing) String() string {
	return "Nothing"
}

// Option is an Either specialized over Nothing on the failure arm.
// Ok means present, Fail(Nothing{}) means absent.
type Option[T any] = Either[T, Nothing]

func Some[T any](value T) Option[T] {
	return Ok[T, Nothing](value)
}

func None[T any]() Option[T] {
	return Fail[T, Nothing](Nothing{})
}

// FromPtr lifts a pointer into an Option: nil becomes None, anything
// else becomes Some of the pointed-to value.
func FromPtr[T any](p *T) Option[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}
