package either

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCombineAllOk(t *testing.T) {
	t.Parallel()

	combined := Combine(
		Ok[int, string](1),
		Ok[int, string](2),
		Ok[int, string](3),
	)

	assert.True(t, combined.IsOk())
	assert.Equal(t, []int{1, 2, 3}, combined.Value())
}

func TestCombineFirstFailWins(t *testing.T) {
	t.Parallel()

	combined := Combine(
		Ok[int, string](1),
		Fail[int, string]("x"),
		Fail[int, string]("y"),
		Ok[int, string](2),
	)

	assert.True(t, combined.IsFail())
	assert.Equal(t, "x", combined.Err())
}

func TestCombineEmpty(t *testing.T) {
	t.Parallel()

	combined := Combine[int, string]()

	assert.True(t, combined.IsOk())
	assert.Equal(t, []int{}, combined.Value())
}

func TestCombinePreservesOrder(t *testing.T) {
	t.Parallel()

	in := make([]Either[int, error], 0, 50)
	want := make([]int, 0, 50)
	for i := range 50 {
		in = append(in, Ok[int, error](i))
		want = append(want, i)
	}

	combined := Combine(in...)
	assert.Equal(t, want, combined.Value())
}

func TestValueOr(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 42, ValueOr(Ok[int, string](42), 0))
	assert.Equal(t, 0, ValueOr(Fail[int, string]("e"), 0))
}

func TestValueOrPanicsOnInvalid(t *testing.T) {
	t.Parallel()

	var zero Either[int, string]
	assert.Panics(t, func() {
		ValueOr(zero, 0)
	})
}

func TestUnwrapOr(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "default", UnwrapOr(nil, "default"))
	assert.Equal(t, 7, UnwrapOr(Ok[int, string](7), 0))
	assert.Equal(t, 0, UnwrapOr(Fail[int, string]("e"), 0))
	assert.Equal(t, 0, UnwrapOr(None[int](), 0))
	assert.Equal(t, 3, UnwrapOr(Some(3), 0))

	// a plain non-Result value is returned unchanged, zero values included
	assert.Equal(t, 5, UnwrapOr(5, 0))
	assert.Equal(t, 0, UnwrapOr(0, 9))
}

func TestUnwrapOrTypedNil(t *testing.T) {
	t.Parallel()

	var p *int
	assert.Equal(t, "default", UnwrapOr(p, "default"))
}

func TestUnwrapOrInvalidEither(t *testing.T) {
	t.Parallel()

	var zero Either[int, string]
	assert.Equal(t, -1, UnwrapOr(zero, -1))
}

func TestEquality(t *testing.T) {
	t.Parallel()

	assert.True(t, Equality(Ok[int, string](1), Ok[int, string](1)))
	assert.False(t, Equality(Ok[int, string](1), Ok[int, string](2)))
	assert.True(t, Equality(Fail[int, string]("e"), Fail[int, string]("e")))
	assert.False(t, Equality(Ok[int, int](1), Fail[int, int](1)))
}

func TestEqualityNonResults(t *testing.T) {
	t.Parallel()

	assert.False(t, Equality(1, Ok[int, string](1)))
	assert.False(t, Equality(Ok[int, string](1), 1))
	assert.False(t, Equality(nil, nil))
	assert.False(t, Equality("a", "a"))

	var zero Either[int, string]
	assert.False(t, Equality(zero, zero))
}

func TestEqualityAcrossInstantiations(t *testing.T) {
	t.Parallel()

	// same variant and payload, different failure arms
	assert.True(t, Equality(Ok[int, string](1), Ok[int, error](1)))
}

func TestExtractionIsIdempotent(t *testing.T) {
	t.Parallel()

	r := Ok[int, string](11)
	for range 3 {
		assert.Equal(t, 11, ValueOr(r, 0))
		assert.Equal(t, 11, UnwrapOr(r, 0))
		assert.True(t, Equality(r, Ok[int, string](11)))
	}
}

func TestResultConstructors(t *testing.T) {
	t.Parallel()

	ok := ResultOk[int, string](2)
	assert.True(t, IsOk(ok))
	assert.Equal(t, 2, ok.Value())

	fail := ResultFail[int, string]("error")
	assert.True(t, IsFail(fail))
	assert.Equal(t, "error", fail.Err())
}

func TestIsNil(t *testing.T) {
	t.Parallel()

	var p *int
	var m map[string]int
	var s []int

	assert.True(t, IsNil(nil))
	assert.True(t, IsNil(p))
	assert.True(t, IsNil(m))
	assert.True(t, IsNil(s))
	assert.False(t, IsNil(0))
	assert.False(t, IsNil(""))
	assert.False(t, IsNil(struct{}{}))
}
