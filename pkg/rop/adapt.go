package rop

import (
	"context"
	"errors"
	"runtime"
	"runtime/debug"

	"github.com/ib-77/result/pkg/rop/core"
)

// FromCallback calls f and returns Ok with its result. A panic in f becomes
// Err(Some(Unexpected)), or Err(None) when the panic value is nil-like,
// including panic(nil).
func FromCallback[T any](f func() T) Result[T, Option[Unexpected]] {
	return fromCallback(f, true)
}

// FromCallbackContext is FromCallback with recovery options read from ctx.
func FromCallbackContext[T any](ctx context.Context, f func() T) Result[T, Option[Unexpected]] {
	return fromCallback(f, core.IsStackCaptureEnabled(ctx, true))
}

func FromVoidCallback(f func()) Result[Unit, Option[Unexpected]] {
	return fromCallback(func() Unit {
		f()
		return UnitValue
	}, true)
}

func fromCallback[T any](f func() T, captureStack bool) (res Result[T, Option[Unexpected]]) {
	defer func() {
		if r := recover(); r != nil {
			res = Err[T](capture(r, captureStack))
		}
	}()
	return Ok[T, Option[Unexpected]](f())
}

// capture must run in the deferred call so the stack still shows the panic site.
func capture(value any, captureStack bool) Option[Unexpected] {
	if IsNil(value) || isPanicNil(value) {
		return None[Unexpected]()
	}
	u := NewUnexpected(value)
	if captureStack {
		u.Stack = debug.Stack()
	}
	return Some(u)
}

// isPanicNil reports whether value is what recover returns after panic(nil).
func isPanicNil(value any) bool {
	err, ok := value.(error)
	if !ok {
		return false
	}
	var panicNil *runtime.PanicNilError
	return errors.As(err, &panicNil)
}
