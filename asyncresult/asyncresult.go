// Package asyncresult provides AsyncResult[E, A]: a deferred computation
// that, when invoked, yields either a typed failure E or a success A, never
// panicking its failure out.  It is the composition of the library's two
// simpler primitives: a Task (deferred, cannot fail) carrying a Result
// (tagged failure/success union).
//
// Invoking an AsyncResult runs a fresh computation each time; nothing is
// memoized and side effects re-execute per invocation.  The context is
// passed through to the underlying computation untouched: the core adds no
// cancellation or timeout of its own, and callers needing either must build
// it into the wrapped operation.
//
// Combinators come in sequential and parallel flavors.  Sequential ones
// (Chain, ApSeq, TraverseSeqArray) run on the caller's goroutine in program
// order and short-circuit on failure.  Parallel ones (Ap, TraverseArray)
// fork every computation before awaiting any; "parallel" means concurrently
// initiated, and the positional order of collected values always matches
// input order regardless of completion order.
package asyncresult

import (
	"context"

	"github.com/digitalmonad/fpkit/option"
	"github.com/digitalmonad/fpkit/promise"
	"github.com/digitalmonad/fpkit/result"
	"github.com/digitalmonad/fpkit/task"
)

// AsyncResult is a deferred computation settling to Result[E, A].
type AsyncResult[E, A any] func(ctx context.Context) result.Result[E, A]

// Ok returns an already-settled success.
func Ok[E, A any](a A) AsyncResult[E, A] {
	return func(context.Context) result.Result[E, A] {
		return result.Ok[E, A](a)
	}
}

// Err returns an already-settled failure.
func Err[E, A any](e E) AsyncResult[E, A] {
	return func(context.Context) result.Result[E, A] {
		return result.Err[E, A](e)
	}
}

// Of is Ok under its applicative name.
func Of[E, A any](a A) AsyncResult[E, A] {
	return Ok[E, A](a)
}

// FromResult defers an already-computed Result.
func FromResult[E, A any](r result.Result[E, A]) AsyncResult[E, A] {
	return func(context.Context) result.Result[E, A] {
		return r
	}
}

// FromOption lifts an Option, producing the failure from onNone when absent.
func FromOption[E, A any](o option.Option[A], onNone func() E) AsyncResult[E, A] {
	return FromResult(result.FromOption(o, onNone))
}

// FromPredicate succeeds with a when the predicate holds and otherwise fails
// with onFalse(a).
func FromPredicate[E, A any](a A, pred func(A) bool, onFalse func(A) E) AsyncResult[E, A] {
	return FromResult(result.FromPredicate(a, pred, onFalse))
}

// FromTask lifts a computation that cannot fail.
func FromTask[E, A any](t task.Task[A]) AsyncResult[E, A] {
	return func(ctx context.Context) result.Result[E, A] {
		return result.Ok[E, A](t(ctx))
	}
}

// FromFallible wraps an operation that reports failure through its error
// return, converting a non-nil error into the typed failure via onErr.  This
// is the host-error conversion boundary: panics inside f are not recovered,
// so the wrapped operation must route every failure through its error
// return.
func FromFallible[E, A any](f func(ctx context.Context) (A, error), onErr func(error) E) AsyncResult[E, A] {
	return func(ctx context.Context) result.Result[E, A] {
		a, err := f(ctx)
		if err != nil {
			return result.Err[E, A](onErr(err))
		}
		return result.Ok[E, A](a)
	}
}

// FromFallibleFunc is FromFallible for operations that take no context.
func FromFallibleFunc[E, A any](f func() (A, error), onErr func(error) E) AsyncResult[E, A] {
	return FromFallible(func(context.Context) (A, error) {
		return f()
	}, onErr)
}

// Fork starts the computation on its own goroutine and returns the
// completion handle.
func (ar AsyncResult[E, A]) Fork(ctx context.Context) *promise.Promise[result.Result[E, A]] {
	return promise.Start(ctx, ar)
}

// Map transforms the success value; failure short-circuits.
func Map[E, A, B any](fa AsyncResult[E, A], f func(A) B) AsyncResult[E, B] {
	return func(ctx context.Context) result.Result[E, B] {
		return result.Map(fa(ctx), f)
	}
}

// MapErr transforms the failure value; success passes through untouched.
func MapErr[E, F, A any](fa AsyncResult[E, A], f func(E) F) AsyncResult[F, A] {
	return func(ctx context.Context) result.Result[F, A] {
		return result.MapErr(fa(ctx), f)
	}
}

// BiMap transforms both channels independently.
func BiMap[E, F, A, B any](fa AsyncResult[E, A], f func(E) F, g func(A) B) AsyncResult[F, B] {
	return func(ctx context.Context) result.Result[F, B] {
		return result.BiMap(fa(ctx), f, g)
	}
}

// Chain runs the computation and, on success, feeds the value into f to
// obtain the next one; failure short-circuits without invoking f.
func Chain[E, A, B any](fa AsyncResult[E, A], f func(A) AsyncResult[E, B]) AsyncResult[E, B] {
	return func(ctx context.Context) result.Result[E, B] {
		r := fa(ctx)
		if e, failed := r.Failure(); failed {
			return result.Err[E, B](e)
		}
		a, _ := r.Value()
		return f(a)(ctx)
	}
}

// ChainFirst runs f for its effect but keeps the original success value.
func ChainFirst[E, A, B any](fa AsyncResult[E, A], f func(A) AsyncResult[E, B]) AsyncResult[E, A] {
	return Chain(fa, func(a A) AsyncResult[E, A] {
		return Map(f(a), func(B) A { return a })
	})
}

// ChainResult sequences into a synchronous Result-returning step.
func ChainResult[E, A, B any](fa AsyncResult[E, A], f func(A) result.Result[E, B]) AsyncResult[E, B] {
	return Chain(fa, func(a A) AsyncResult[E, B] {
		return FromResult(f(a))
	})
}

// Fold collapses the computation into a Task with one handler per case.
func Fold[E, A, B any](fa AsyncResult[E, A], onErr func(E) B, onOk func(A) B) task.Task[B] {
	return func(ctx context.Context) B {
		return result.Fold(fa(ctx), onErr, onOk)
	}
}

// GetOrElse collapses the computation into a Task, replacing a failure
// through onErr.
func GetOrElse[E, A any](fa AsyncResult[E, A], onErr func(E) A) task.Task[A] {
	return func(ctx context.Context) A {
		return result.GetOrElse(fa(ctx), onErr)
	}
}

// Swap exchanges the two channels.
func Swap[E, A any](fa AsyncResult[E, A]) AsyncResult[A, E] {
	return func(ctx context.Context) result.Result[A, E] {
		return result.Swap(fa(ctx))
	}
}
