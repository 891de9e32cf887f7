// Package task provides Task[A], a deferred computation that cannot fail:
// invoking it always yields a value of type A.  Nothing runs until the Task
// is invoked, and every invocation runs the computation afresh; Tasks are
// never memoized.
package task

import (
	"context"
	"time"

	"github.com/digitalmonad/fpkit/promise"
)

// Task is a deferred computation producing an A when invoked.
type Task[A any] func(ctx context.Context) A

// Of lifts an already-computed value into a Task.
func Of[A any](a A) Task[A] {
	return func(context.Context) A { return a }
}

// Fork starts the Task on its own goroutine and returns the completion
// handle.
func (t Task[A]) Fork(ctx context.Context) *promise.Promise[A] {
	return promise.Start(ctx, t)
}

// Map transforms the Task's value.
func Map[A, B any](t Task[A], f func(A) B) Task[B] {
	return func(ctx context.Context) B {
		return f(t(ctx))
	}
}

// Chain feeds the Task's value into f to obtain the next Task, running the
// two in sequence.
func Chain[A, B any](t Task[A], f func(A) Task[B]) Task[B] {
	return func(ctx context.Context) B {
		return f(t(ctx))(ctx)
	}
}

// Ap runs the function Task and the value Task concurrently, applying one to
// the other once both settle.
func Ap[A, B any](fab Task[func(A) B], fa Task[A]) Task[B] {
	return func(ctx context.Context) B {
		pf := fab.Fork(ctx)
		pa := fa.Fork(ctx)

		<-pf.Done()
		<-pa.Done()
		f, _ := pf.Value()
		a, _ := pa.Value()
		return f(a)
	}
}

// Delay postpones the Task by d.  When the context is done before the delay
// elapses the wait is cut short and the Task runs immediately; the Task's
// own boundaries are expected to observe the context.
func Delay[A any](d time.Duration, t Task[A]) Task[A] {
	return func(ctx context.Context) A {
		timer := time.NewTimer(d)
		defer timer.Stop()

		select {
		case <-timer.C:
		case <-ctx.Done():
		}
		return t(ctx)
	}
}
