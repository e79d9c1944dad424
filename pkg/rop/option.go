package rop

import "fmt"

// Option represents an optional value: Some(v) or None.
type Option[T any] struct {
	value T
	some  bool
}

func Some[T any](value T) Option[T] {
	return Option[T]{value: value, some: true}
}

func None[T any]() Option[T] {
	return Option[T]{}
}

// Wrap returns None when value is nil (see IsNil) and Some otherwise.
func Wrap[T any](value T) Option[T] {
	if IsNil(value) {
		return None[T]()
	}
	return Some(value)
}

func (o Option[T]) IsSome() bool {
	return o.some
}

func (o Option[T]) IsNone() bool {
	return !o.some
}

// Get returns the value and whether it is present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.some
}

func (o Option[T]) Expect(msg string) T {
	if !o.some {
		panic(violation("Option.Expect", msg))
	}
	return o.value
}

func (o Option[T]) Unwrap() T {
	if !o.some {
		panic(violation("Option.Unwrap", "called `Option.Unwrap()` on a `None` value"))
	}
	return o.value
}

func (o Option[T]) UnwrapOr(def T) T {
	if o.some {
		return o.value
	}
	return def
}

func (o Option[T]) UnwrapOrElse(orElse func() T) T {
	if o.some {
		return o.value
	}
	return orElse()
}

func (o Option[T]) Contains(x T) bool {
	return o.some && equal(o.value, x)
}

func (o Option[T]) Equal(other Option[T]) bool {
	if o.some != other.some {
		return false
	}
	return !o.some || equal(o.value, other.value)
}

func (o Option[T]) String() string {
	if o.some {
		return fmt.Sprintf("Some(%v)", o.value)
	}
	return "None"
}

// MapOption applies f to the value when present.
func MapOption[T, U any](o Option[T], f func(T) U) Option[U] {
	if o.some {
		return Some(f(o.value))
	}
	return None[U]()
}

// OkOr turns Some(v) into Ok(v) and None into Err(err).
func OkOr[T, E any](o Option[T], err E) Result[T, E] {
	if o.some {
		return Ok[T, E](o.value)
	}
	return Err[T](err)
}

// TransposeOption maps Some(Ok(v)) to Ok(Some(v)), Some(Err(e)) to Err(e)
// and None to Ok(None). It undoes solo.Transpose.
func TransposeOption[T, E any](o Option[Result[T, E]]) Result[Option[T], E] {
	if !o.some {
		return Ok[Option[T], E](None[T]())
	}
	if o.value.ok {
		return Ok[Option[T], E](Some(o.value.value))
	}
	return Err[Option[T]](o.value.err)
}
