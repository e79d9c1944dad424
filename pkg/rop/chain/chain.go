package chain

import (
	"context"

	"github.com/ib-77/result/pkg/rop"
	"github.com/ib-77/result/pkg/rop/solo"
)

// Chain carries a rop.Result[T, E] together with the context handed to every
// step. Steps run only while the result is Ok, except MapErr and Recover.
type Chain[T, E any] struct {
	ctx    context.Context
	result rop.Result[T, E]
}

// Start begins a chain at an existing Ok or Err result.
func Start[T, E any](ctx context.Context, result rop.Result[T, E]) *Chain[T, E] {
	return &Chain[T, E]{
		ctx:    ctx,
		result: result,
	}
}

// FromValue begins a chain at Ok(value) with failure type E.
func FromValue[T, E any](ctx context.Context, value T) *Chain[T, E] {
	return &Chain[T, E]{
		ctx:    ctx,
		result: rop.Ok[T, E](value),
	}
}

// Result returns the current rop.Result[T, E] of the chain.
func (c *Chain[T, E]) Result() rop.Result[T, E] {
	return c.result
}

func (c *Chain[T, E]) Context() context.Context {
	return c.ctx
}

// Then runs onOk on the Ok value; its Result[U, E] becomes the new state.
func Then[T, U, E any](c *Chain[T, E], onOk func(context.Context, T) rop.Result[U, E]) *Chain[U, E] {
	return &Chain[U, E]{
		ctx: c.ctx,
		result: solo.AndThen(c.result, func(v T) rop.Result[U, E] {
			return onOk(c.ctx, v)
		}),
	}
}

// ThenTry runs a (U, error) step on the Ok value of an error-typed chain.
func ThenTry[T, U any](c *Chain[T, error], tryOnOk func(context.Context, T) (U, error)) *Chain[U, error] {
	return &Chain[U, error]{
		ctx: c.ctx,
		result: solo.Try(c.result, func(v T) (U, error) {
			return tryOnOk(c.ctx, v)
		}),
	}
}

// Map replaces the Ok value with onOk(value), keeping E.
func Map[T, U, E any](c *Chain[T, E], onOk func(context.Context, T) U) *Chain[U, E] {
	return &Chain[U, E]{
		ctx: c.ctx,
		result: solo.Map(c.result, func(v T) U {
			return onOk(c.ctx, v)
		}),
	}
}

// MapErr transforms the error side
func MapErr[T, E, F any](c *Chain[T, E], onErr func(context.Context, E) F) *Chain[T, F] {
	return &Chain[T, F]{
		ctx: c.ctx,
		result: solo.MapErr(c.result, func(e E) F {
			return onErr(c.ctx, e)
		}),
	}
}

// Recover chains a function that may turn an error back into a value
func Recover[T, E, F any](c *Chain[T, E], onErr func(context.Context, E) rop.Result[T, F]) *Chain[T, F] {
	return &Chain[T, F]{
		ctx: c.ctx,
		result: solo.OrElse(c.result, func(e E) rop.Result[T, F] {
			return onErr(c.ctx, e)
		}),
	}
}

// Ensure performs a side effect without changing the result
func (c *Chain[T, E]) Ensure(onOk func(context.Context, T)) *Chain[T, E] {
	return &Chain[T, E]{
		ctx: c.ctx,
		result: solo.Tee(c.result, func(v T) {
			onOk(c.ctx, v)
		}),
	}
}

// Validate fails the chain with errMsg when validate rejects the value
func Validate[T any](c *Chain[T, error], validate func(context.Context, T) (bool, string)) *Chain[T, error] {
	return &Chain[T, error]{
		ctx: c.ctx,
		result: solo.Validate(c.result, func(v T) (bool, string) {
			return validate(c.ctx, v)
		}),
	}
}

// Finally collapses the chain into a final value using solo.Match
func Finally[T, E, U any](c *Chain[T, E], onOk func(context.Context, T) U, onErr func(context.Context, E) U) U {
	return solo.Match(c.result,
		func(v T) U { return onOk(c.ctx, v) },
		func(e E) U { return onErr(c.ctx, e) })
}

// RepeatUntil runs step at least once and keeps running it while until
// reports true for the new value. It stops at the first Err.
func (c *Chain[T, E]) RepeatUntil(step func(context.Context, T) rop.Result[T, E],
	until func(context.Context, T) bool) *Chain[T, E] {

	if c.result.IsErr() {
		return c
	}

	for {
		c = Then(c, step)

		if c.result.IsErr() || !until(c.ctx, c.result.Unwrap()) {
			return c
		}
	}
}

// While runs step as long as the chain is Ok and while reports true.
func (c *Chain[T, E]) While(step func(context.Context, T) rop.Result[T, E],
	while func(context.Context, T) bool) *Chain[T, E] {

	for c.result.IsOk() && while(c.ctx, c.result.Unwrap()) {
		c = Then(c, step)
	}
	return c
}
