package rop

import (
	"errors"
	"fmt"
)

// ErrWrongVariant is wrapped by every ExtractError.
var ErrWrongVariant = errors.New("wrong variant")

// ExtractError is the panic value raised when a value is extracted from the
// variant that does not hold it.
type ExtractError struct {
	Op      string
	Message string
}

func (e *ExtractError) Error() string {
	return e.Message
}

func (e *ExtractError) Unwrap() error {
	return ErrWrongVariant
}

func violation(op, msg string) *ExtractError {
	return &ExtractError{Op: op, Message: msg}
}

// Expect returns the Ok value or panics with msg followed by the error.
func (r Result[T, E]) Expect(msg string) T {
	if !r.ok {
		panic(violation("Result.Expect", fmt.Sprintf("%s: %v", msg, r.err)))
	}
	return r.value
}

// Unwrap returns the Ok value or panics with a message carrying the error.
func (r Result[T, E]) Unwrap() T {
	if !r.ok {
		panic(violation("Result.Unwrap",
			fmt.Sprintf("called `Result.Unwrap()` on an `Err` value: %v", r.err)))
	}
	return r.value
}

func (r Result[T, E]) UnwrapOr(def T) T {
	if r.ok {
		return r.value
	}
	return def
}

// UnwrapOrElse returns the Ok value or computes one from the error.
func (r Result[T, E]) UnwrapOrElse(orElse func(err E) T) T {
	if r.ok {
		return r.value
	}
	return orElse(r.err)
}

// ExpectErr returns the Err value or panics with msg followed by the value.
func (r Result[T, E]) ExpectErr(msg string) E {
	if r.ok {
		panic(violation("Result.ExpectErr", fmt.Sprintf("%s: %v", msg, r.value)))
	}
	return r.err
}

// UnwrapErr returns the Err value or panics with a message carrying the value.
func (r Result[T, E]) UnwrapErr() E {
	if r.ok {
		panic(violation("Result.UnwrapErr",
			fmt.Sprintf("called `Result.UnwrapErr()` on an `Ok` value: %v", r.value)))
	}
	return r.err
}
