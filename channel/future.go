package channel

import (
	"context"
	"sync"

	"github.com/kroma-labs/wire-go/wire"
)

// Future is a cancellable, single-assignment, awaitable result,
// standing in for the runtime's Future<Response>. There is no
// built-in Go equivalent; Future is built from a done channel plus a
// context.CancelFunc, the minimal machinery described for the
// "Futures and transforms" design note: a cancellable, single-shot
// asynchronous result.
type Future struct {
	done   chan struct{}
	once   sync.Once
	resp   *wire.Response
	err    error
	cancel context.CancelFunc
}

// newFuture allocates an unresolved Future backed by cancel, the
// cancellation function of the context the producing goroutine is
// running under.
func newFuture(cancel context.CancelFunc) *Future {
	return &Future{done: make(chan struct{}), cancel: cancel}
}

// Run starts fn on its own goroutine under a context derived from ctx
// and returns a Future that resolves with fn's result. Cancelling the
// returned Future cancels that derived context.
func Run(ctx context.Context, fn func(ctx context.Context) (*wire.Response, error)) *Future {
	runCtx, cancel := context.WithCancel(ctx)
	f := newFuture(cancel)
	go func() {
		resp, err := fn(runCtx)
		f.resolve(resp, err)
	}()
	return f
}

// Resolved returns an already-completed Future, useful for decorators
// that can answer synchronously (e.g. a cache hit, or a classifier
// short-circuit) without spawning a goroutine.
func Resolved(resp *wire.Response, err error) *Future {
	f := newFuture(func() {})
	f.resolve(resp, err)
	return f
}

// resolve completes f exactly once; later calls are no-ops, matching
// the single-assignment contract.
func (f *Future) resolve(resp *wire.Response, err error) {
	f.once.Do(func() {
		f.resp, f.err = resp, err
		close(f.done)
	})
}

// Get blocks until f resolves or ctx is done, whichever comes first.
// A blocking stub calls Get with a deadline context; an async facet
// calls Get with the caller's own (often background) context. This is
// the runtime's one await code path, per the "Blocking-on-async"
// design note.
func (f *Future) Get(ctx context.Context) (*wire.Response, error) {
	select {
	case <-f.done:
		return f.resp, f.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Cancel cancels the in-flight operation backing f. A cancelled
// Future does not trigger another retry attempt in a RetryingChannel;
// it simply resolves with ctx.Canceled's cause once the inner
// goroutine observes the cancellation.
func (f *Future) Cancel() {
	f.cancel()
}
