package chain

import (
	"github.com/ib-77/either/pkg/either"
	"github.com/ib-77/either/pkg/either/solo"
)

// Chain wraps an either.Either to enable fluent composition.
type Chain[S, F any] struct {
	res either.Either[S, F]
}

func Start[S, F any](r either.Either[S, F]) Chain[S, F] {
	return Chain[S, F]{res: r}
}

func FromValue[S, F any](v S) Chain[S, F] {
	return Start(either.Ok[S, F](v))
}

// Result returns the underlying either.Either.
func (c Chain[S, F]) Result() either.Either[S, F] {
	return c.res
}

// Then composes a function that already returns an Either of the same type.
func (c Chain[S, F]) Then(onSuccess func(s S) either.Either[S, F]) Chain[S, F] {
	if !c.res.IsOk() {
		return c
	}
	return Chain[S, F]{res: onSuccess(c.res.Value())}
}

// Map transforms the successful value to a new value of the same type.
func (c Chain[S, F]) Map(onSuccess func(s S) S) Chain[S, F] {
	if !c.res.IsOk() {
		return c
	}
	return Chain[S, F]{res: either.Ok[S, F](onSuccess(c.res.Value()))}
}

// Ensure triggers side effects for success or failure without changing
// the result.
func (c Chain[S, F]) Ensure(onSuccess func(s S), onFailure func(err F)) Chain[S, F] {
	if c.res.IsFail() {
		if onFailure != nil {
			onFailure(c.res.Err())
		}
		return c
	}

	if c.res.IsOk() && onSuccess != nil {
		onSuccess(c.res.Value())
	}
	return c
}

// Or picks the first successful chain among the receiver and the
// alternative; when neither succeeded, the first failure wins, and the
// receiver is returned as a last resort.
func (c Chain[S, F]) Or(alternative Chain[S, F]) Chain[S, F] {
	return c.or(alternative)
}

func (c Chain[S, F]) or(chains ...Chain[S, F]) Chain[S, F] {
	candidates := make([]Chain[S, F], 0, len(chains)+1)
	candidates = append(candidates, c)
	candidates = append(candidates, chains...)

	hasFail := false
	var failRes either.Either[S, F]

	for _, ch := range candidates {
		res := ch.res

		if res.IsOk() {
			return Chain[S, F]{res: res}
		}

		if res.IsFail() && !hasFail {
			hasFail = true
			failRes = res
		}
	}

	if hasFail {
		return Chain[S, F]{res: failRes}
	}

	return c
}

// And requires every chain to succeed: the first failure wins, otherwise
// the last chain's result is kept.
func (c Chain[S, F]) And(required Chain[S, F]) Chain[S, F] {
	return c.and(required)
}

func (c Chain[S, F]) and(chains ...Chain[S, F]) Chain[S, F] {
	candidates := make([]Chain[S, F], 0, len(chains)+1)
	candidates = append(candidates, c)
	candidates = append(candidates, chains...)

	var res either.Either[S, F]
	for _, ch := range candidates {
		res = ch.res

		if res.IsFail() {
			return Chain[S, F]{res: res}
		}
	}

	return Chain[S, F]{res: res}
}

// Then chains a function that returns an Either of a new success type.
// Type-changing steps are free functions since methods cannot introduce
// type parameters.
func Then[In, Out, F any](c Chain[In, F],
	onSuccess func(in In) either.Either[Out, F]) Chain[Out, F] {
	return Chain[Out, F]{res: solo.Switch(c.res, onSuccess)}
}

// ThenTry chains a function that returns (Out, error).
func ThenTry[In, Out any](c Chain[In, error],
	tryOnSuccess func(in In) (Out, error)) Chain[Out, error] {
	return Chain[Out, error]{res: solo.Try(c.res, tryOnSuccess)}
}

// Map chains a pure transformation to a new success type.
func Map[In, Out, F any](c Chain[In, F], onSuccess func(in In) Out) Chain[Out, F] {
	return Chain[Out, F]{res: solo.Map(c.res, onSuccess)}
}

// Finally collapses the chain to a final value, delegating to solo.Finally.
func Finally[S, F, Out any](c Chain[S, F],
	onSuccess func(s S) Out,
	onFailure func(err F) Out) Out {
	return solo.Finally(c.res, onSuccess, onFailure)
}
