// Package promise provides a one-shot completion cell used as the in-flight
// handle for concurrently started computations.  A Promise can be resolved
// exactly once; the first resolution wins and all later ones are silently
// ignored.  Unlike a channel, a resolved Promise can be read any number of
// times by any number of goroutines.
//
// There is no failure channel: computations in this library carry their
// failure inside the resolved value (a Result), so the only error Await can
// report is cancellation of the waiting context.
package promise

import (
	"context"
	"sync/atomic"
)

// Promise is a single-assignment cell holding a value of type T.
// Create with New or Start; never copy a Promise after first use.
type Promise[T any] struct {
	resolved uint32
	done     chan struct{}

	value T
}

// New creates an unresolved Promise that must be resolved manually.
func New[T any]() *Promise[T] {
	return &Promise[T]{
		done: make(chan struct{}),
	}
}

// Start runs f on its own goroutine and returns a Promise that resolves with
// f's return value.  The context is passed through to f untouched; the
// Promise itself never cancels the computation.
func Start[T any](ctx context.Context, f func(context.Context) T) *Promise[T] {
	p := New[T]()

	go func() {
		p.Resolve(f(ctx))
	}()

	return p
}

// Resolve completes the Promise with v and reports whether this call was the
// one that resolved it.  Later calls are ignored.
func (p *Promise[T]) Resolve(v T) bool {
	if atomic.CompareAndSwapUint32(&p.resolved, 0, 1) {
		p.value = v
		close(p.done)
		return true
	}
	return false
}

// Done returns a channel that is closed once the Promise is resolved.
func (p *Promise[T]) Done() <-chan struct{} {
	return p.done
}

// Value returns the resolved value without blocking, along with whether the
// Promise has been resolved yet.
func (p *Promise[T]) Value() (T, bool) {
	select {
	case <-p.done:
		return p.value, true
	default:
		return *new(T), false
	}
}

// Await blocks until the Promise resolves or the context is done, in which
// case it returns the context's error.  Concurrent waiters all observe the
// same value.
func (p *Promise[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-p.done:
		return p.value, nil
	case <-ctx.Done():
		return *new(T), ctx.Err()
	}
}
