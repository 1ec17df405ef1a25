// Package async runs units of background work detached from the request that
// spawned them. A unit keeps the request's logger but not its cancellation:
// the HTTP response must never wait on, or abort, the work it scheduled.
package async

import (
	"context"
	"runtime/debug"
	"sync"

	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

// Dispatcher schedules detached background units and tracks them so the
// process can drain in-flight work on shutdown. Failures are logged and
// reported to Sentry when configured; they are never surfaced to the
// scheduling caller.
type Dispatcher struct {
	wg sync.WaitGroup
}

// New creates a Dispatcher
func New() *Dispatcher {
	return &Dispatcher{}
}

// Dispatch executes handler in a new goroutine with a fresh background
// context that preserves the ctxlog logger of ctx. Panics are recovered and
// logged with their stack trace.
func (d *Dispatcher) Dispatch(ctx context.Context, handler func(ctx context.Context) error) {
	newCtx := detach(ctx)
	d.wg.Add(1)

	go func() {
		defer d.wg.Done()
		defer func() {
			if r := recover(); r != nil {
				stack := debug.Stack()
				ctxlog.From(newCtx).Error("panic in background unit",
					"recover", r,
					"stack", string(stack))
				sentry.CurrentHub().Recover(r)
			}
		}()

		if err := handler(newCtx); err != nil {
			ctxlog.From(newCtx).Error("background unit failed", "error", err)
			sentry.CaptureException(err)
		}
	}()
}

// Wait blocks until every dispatched unit has finished or ctx expires.
// Workflows carry no overall timeout, so a stalled remote call can make this
// return ctx.Err().
func (d *Dispatcher) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return goerr.Wrap(ctx.Err(), "background units still in flight")
	}
}

// detach builds a background context carrying over the values a unit still
// needs after the response is flushed. Currently that is only the logger.
func detach(ctx context.Context) context.Context {
	return ctxlog.With(context.Background(), ctxlog.From(ctx))
}
