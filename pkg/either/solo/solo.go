package solo

import (
	"errors"

	"github.com/ib-77/either/pkg/either"
)

func Succeed[S, F any](input S) either.Either[S, F] {
	return either.Ok[S, F](input)
}

func Fail[S, F any](err F) either.Either[S, F] {
	return either.Fail[S, F](err)
}

func Validate[S any](input S,
	validate func(in S) (isValid bool, errMsg string)) either.Either[S, error] {
	return AndValidate(Succeed[S, error](input), validate)
}

func AndValidate[S any](input either.Either[S, error],
	validate func(in S) (valid bool, errMsg string)) either.Either[S, error] {

	if input.IsOk() {
		if isValid, errMsg := validate(input.Value()); isValid {
			return either.Ok[S, error](input.Value())
		} else {
			return either.Fail[S, error](errors.New(errMsg))
		}
	}
	return input
}

func Switch[In, Out, F any](input either.Either[In, F],
	onSuccess func(r In) either.Either[Out, F]) either.Either[Out, F] {

	if input.IsOk() {
		return onSuccess(input.Value())
	}
	return either.Fail[Out, F](input.Err())
}

func Map[In, Out, F any](input either.Either[In, F],
	onSuccess func(r In) Out) either.Either[Out, F] {

	if input.IsOk() {
		return either.Ok[Out, F](onSuccess(input.Value()))
	}
	return either.Fail[Out, F](input.Err())
}

// MapErr transforms the failure payload, leaving successes untouched.
func MapErr[S, F, G any](input either.Either[S, F],
	onFailure func(err F) G) either.Either[S, G] {

	if input.IsFail() {
		return either.Fail[S, G](onFailure(input.Err()))
	}
	return either.Ok[S, G](input.Value())
}

func Tee[S, F any](input either.Either[S, F],
	onSuccess func(r either.Either[S, F])) either.Either[S, F] {

	if input.IsOk() {
		onSuccess(input)
	}

	return input
}

func TeeIf[S, F any](input either.Either[S, F],
	condition func(r either.Either[S, F]) bool,
	onSuccessAndCondition func(r either.Either[S, F])) either.Either[S, F] {

	if input.IsOk() {
		if condition(input) {
			onSuccessAndCondition(input)
		}
	}

	return input
}

func DoubleTee[S, F any](input either.Either[S, F],
	onSuccess func(r S),
	onFailure func(err F)) either.Either[S, F] {

	if input.IsOk() {
		onSuccess(input.Value())
	} else {
		onFailure(input.Err())
	}

	return input
}

func Try[In, Out any](input either.Either[In, error],
	onTryExecute func(r In) (Out, error)) either.Either[Out, error] {

	if input.IsOk() {

		out, err := onTryExecute(input.Value())
		if err != nil {
			return either.Fail[Out, error](err)
		}

		return either.Ok[Out, error](out)
	}

	return either.Fail[Out, error](input.Err())
}

func FailOnError[S any](input either.Either[S, error],
	maybeErr func(in S) error) either.Either[S, error] {
	if input.IsOk() {
		err := maybeErr(input.Value())
		if err != nil {
			return either.Fail[S, error](err)
		}
		return input
	}
	return input
}

func Finally[In, F, Out any](input either.Either[In, F],
	onSuccess func(r In) Out,
	onFailure func(err F) Out) Out {

	if input.IsOk() {
		return onSuccess(input.Value())
	}
	return onFailure(input.Err())
}
