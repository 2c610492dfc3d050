package either

// instance is satisfied by every Either instantiation regardless of its
// type arguments. It lets the guards and permissive helpers narrow an
// any-typed value with a plain type assertion.
type instance interface {
	variant() kind
	payload() any
}

// IsOk reports whether v is the Ok variant of any Either instantiation.
// It accepts any value and never panics.
func IsOk(v any) bool {
	i, ok := v.(instance)
	return ok && i.variant() == kindOk
}

// IsFail reports whether v is the Fail variant of any Either
// instantiation. It accepts any value and never panics.
func IsFail(v any) bool {
	i, ok := v.(instance)
	return ok && i.variant() == kindFail
}

// IsResult reports whether v is a well-formed Either value, i.e. either
// variant but not the zero value. It accepts any value and never panics.
func IsResult(v any) bool {
	i, ok := v.(instance)
	return ok && i.variant() != kindInvalid
}
