package solo

import (
	"errors"

	"github.com/ib-77/result/pkg/rop"
)

func Map[T, U, E any](input rop.Result[T, E], onOk func(T) U) rop.Result[U, E] {
	if v, e, ok := input.Get(); ok {
		return rop.Ok[U, E](onOk(v))
	} else {
		return rop.Err[U](e)
	}
}

func MapErr[T, E, F any](input rop.Result[T, E], onErr func(E) F) rop.Result[T, F] {
	if v, e, ok := input.Get(); ok {
		return rop.Ok[T, F](v)
	} else {
		return rop.Err[T](onErr(e))
	}
}

// MapOr applies onOk to an Ok value and returns def for an Err.
func MapOr[T, E, U any](input rop.Result[T, E], def U, onOk func(T) U) U {
	if v, _, ok := input.Get(); ok {
		return onOk(v)
	}
	return def
}

func MapOrElse[T, E, U any](input rop.Result[T, E], onErr func(E) U, onOk func(T) U) U {
	if v, e, ok := input.Get(); ok {
		return onOk(v)
	} else {
		return onErr(e)
	}
}

// And returns other when input is Ok and keeps input's error otherwise.
func And[T, U, E any](input rop.Result[T, E], other rop.Result[U, E]) rop.Result[U, E] {
	if _, e, ok := input.Get(); !ok {
		return rop.Err[U](e)
	}
	return other
}

// AndThen calls onOk with the Ok value. An Err is passed through and onOk is
// not called.
func AndThen[T, U, E any](input rop.Result[T, E], onOk func(T) rop.Result[U, E]) rop.Result[U, E] {
	if v, e, ok := input.Get(); ok {
		return onOk(v)
	} else {
		return rop.Err[U](e)
	}
}

func Or[T, E, F any](input rop.Result[T, E], other rop.Result[T, F]) rop.Result[T, F] {
	if v, _, ok := input.Get(); ok {
		return rop.Ok[T, F](v)
	}
	return other
}

func OrElse[T, E, F any](input rop.Result[T, E], onErr func(E) rop.Result[T, F]) rop.Result[T, F] {
	if v, e, ok := input.Get(); ok {
		return rop.Ok[T, F](v)
	} else {
		return onErr(e)
	}
}

// Match evaluates exactly one of the two branches.
func Match[T, E, R any](input rop.Result[T, E], onOk func(T) R, onErr func(E) R) R {
	if v, e, ok := input.Get(); ok {
		return onOk(v)
	} else {
		return onErr(e)
	}
}

// Transpose turns Ok(Some(v)) into Some(Ok(v)), Ok(None) into None and
// Err(e) into Some(Err(e)). rop.TransposeOption reverses it.
func Transpose[T, E any](input rop.Result[rop.Option[T], E]) rop.Option[rop.Result[T, E]] {
	if o, e, ok := input.Get(); ok {
		return rop.MapOption(o, rop.Ok[T, E])
	} else {
		return rop.Some(rop.Err[T](e))
	}
}

// Flatten removes one level of nesting.
func Flatten[T, E any](input rop.Result[rop.Result[T, E], E]) rop.Result[T, E] {
	if inner, e, ok := input.Get(); ok {
		return inner
	} else {
		return rop.Err[T](e)
	}
}

// FromPair converts a (value, error) return into a Result.
func FromPair[T any](value T, err error) rop.Result[T, error] {
	if err != nil {
		return rop.Err[T](err)
	}
	return rop.Ok[T, error](value)
}

func ToPair[T any](input rop.Result[T, error]) (T, error) {
	v, e, ok := input.Get()
	if ok {
		return v, nil
	}
	var zero T
	return zero, e
}

func Try[In, Out any](input rop.Result[In, error],
	onTryExecute func(r In) (Out, error)) rop.Result[Out, error] {

	return AndThen(input, func(v In) rop.Result[Out, error] {
		out, err := onTryExecute(v)
		return FromPair(out, err)
	})
}

func Validate[T any](input rop.Result[T, error],
	validate func(in T) (valid bool, errMsg string)) rop.Result[T, error] {

	if v, _, ok := input.Get(); ok {
		if isValid, errMsg := validate(v); !isValid {
			return rop.Err[T](errors.New(errMsg))
		}
	}
	return input
}

func Tee[T, E any](input rop.Result[T, E], onOk func(r T)) rop.Result[T, E] {
	if v, _, ok := input.Get(); ok {
		onOk(v)
	}
	return input
}

func TeeIf[T, E any](input rop.Result[T, E],
	condition func(r T) bool,
	onOkAndCondition func(r T)) rop.Result[T, E] {

	if v, _, ok := input.Get(); ok && condition(v) {
		onOkAndCondition(v)
	}
	return input
}

func DoubleTee[T, E any](input rop.Result[T, E],
	onOk func(r T),
	onErr func(err E)) rop.Result[T, E] {

	if v, e, ok := input.Get(); ok {
		onOk(v)
	} else {
		onErr(e)
	}
	return input
}
