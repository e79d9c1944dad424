package rop

import (
	"context"

	"github.com/ib-77/result/pkg/rop/core"
)

// Pending is an asynchronous computation started by Go or GoVoid. Its outcome
// is written once, before Done is closed, and never changes afterwards.
type Pending[T any] struct {
	done    chan struct{}
	value   T
	failure Option[Unexpected]
	ok      bool
}

// Go runs f on a new goroutine. f receives ctx and is responsible for
// honouring its cancellation; Pending never interrupts it.
func Go[T any](ctx context.Context, f func(ctx context.Context) (T, error)) *Pending[T] {
	p := &Pending[T]{done: make(chan struct{})}
	go p.run(ctx, f, core.IsStackCaptureEnabled(ctx, true))
	return p
}

func GoVoid(ctx context.Context, f func(ctx context.Context) error) *Pending[Unit] {
	return Go(ctx, func(ctx context.Context) (Unit, error) {
		return UnitValue, f(ctx)
	})
}

func (p *Pending[T]) run(ctx context.Context, f func(ctx context.Context) (T, error), captureStack bool) {
	returned := false
	defer close(p.done)
	defer func() {
		if r := recover(); r != nil {
			p.failure = capture(r, captureStack)
			return
		}
		if !returned {
			// runtime.Goexit: settled without a failure value
			p.failure = None[Unexpected]()
		}
	}()

	value, err := f(ctx)
	returned = true
	if err != nil {
		p.failure = capture(err, false)
		return
	}
	p.value, p.ok = value, true
}

// Done is closed once the computation has settled.
func (p *Pending[T]) Done() <-chan struct{} {
	return p.done
}

// Await blocks until p settles. See FromAsync.
func (p *Pending[T]) Await() Result[T, Option[Unexpected]] {
	<-p.done
	if p.ok {
		return Ok[T, Option[Unexpected]](p.value)
	}
	return Err[T](p.failure)
}

// FromAsync blocks until p settles and returns Ok with its value. A returned
// error or a panic becomes Err(Some(Unexpected)); a computation that ended
// without either (runtime.Goexit, nil-like panic) becomes Err(None).
func FromAsync[T any](p *Pending[T]) Result[T, Option[Unexpected]] {
	return p.Await()
}

func FromVoidAsync(p *Pending[Unit]) Result[Unit, Option[Unexpected]] {
	return p.Await()
}
