package rop

import (
	"fmt"
	"reflect"
)

// Result holds either a success value (Ok) or a failure value (Err), never
// both. The variant is tracked explicitly, so T and E may be nil-able types.
//
// The zero Result is an Err holding the zero E; use Ok and Err to build one.
type Result[T, E any] struct {
	value T
	err   E
	ok    bool
}

// Ok constructs the success variant.
func Ok[T, E any](value T) Result[T, E] {
	return Result[T, E]{
		value: value,
		ok:    true,
	}
}

// Err constructs the failure variant.
func Err[T, E any](err E) Result[T, E] {
	return Result[T, E]{
		err: err,
		ok:  false,
	}
}

func (r Result[T, E]) IsOk() bool {
	return r.ok
}

func (r Result[T, E]) IsErr() bool {
	return !r.ok
}

// Contains reports whether r is Ok and its value equals x (see Equal).
func (r Result[T, E]) Contains(x T) bool {
	return r.ok && equal(r.value, x)
}

// ContainsErr reports whether r is Err and its error equals x (see Equal).
func (r Result[T, E]) ContainsErr(x E) bool {
	return !r.ok && equal(r.err, x)
}

// OkOption returns Some(value) for Ok and None for Err.
func (r Result[T, E]) OkOption() Option[T] {
	if r.ok {
		return Some(r.value)
	}
	return None[T]()
}

// ErrOption returns Some(err) for Err and None for Ok.
func (r Result[T, E]) ErrOption() Option[E] {
	if r.ok {
		return None[E]()
	}
	return Some(r.err)
}

// Payload returns whichever slot is populated. It erases the variant, so
// prefer Get or the solo combinators.
func (r Result[T, E]) Payload() any {
	if r.ok {
		return r.value
	}
	return r.err
}

// Get destructures r. Only the slot selected by ok is meaningful.
func (r Result[T, E]) Get() (value T, err E, ok bool) {
	return r.value, r.err, r.ok
}

// Equal reports whether both results hold the same variant with equal
// payloads. Comparable payloads use ==, so pointers compare by identity and
// Equal agrees with == on comparable Results; other payloads use deep
// equality. Ok never equals Err.
func (r Result[T, E]) Equal(other Result[T, E]) bool {
	if r.ok != other.ok {
		return false
	}
	if r.ok {
		return equal(r.value, other.value)
	}
	return equal(r.err, other.err)
}

func (r Result[T, E]) String() string {
	if r.ok {
		return fmt.Sprintf("Ok(%v)", r.value)
	}
	return fmt.Sprintf("Err(%v)", r.err)
}

// equal compares with == when both values are comparable, so pointers and
// channels compare by identity. Slices, maps and values holding them fall
// back to reflect.DeepEqual.
func equal[V any](a, b V) bool {
	va, vb := reflect.ValueOf(any(a)), reflect.ValueOf(any(b))
	if va.Comparable() && vb.Comparable() {
		return any(a) == any(b)
	}
	return reflect.DeepEqual(a, b)
}
