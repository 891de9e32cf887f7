package asyncresult

import (
	"context"

	"github.com/digitalmonad/fpkit/monoid"
	"github.com/digitalmonad/fpkit/result"
)

// Ap applies a wrapped function to a wrapped value, forking both
// computations before awaiting either.  Both always run to completion; when
// both fail, the function side's failure wins.
func Ap[E, A, B any](fab AsyncResult[E, func(A) B], fa AsyncResult[E, A]) AsyncResult[E, B] {
	return func(ctx context.Context) result.Result[E, B] {
		pf := fab.Fork(ctx)
		pa := fa.Fork(ctx)

		<-pf.Done()
		<-pa.Done()
		rf, _ := pf.Value()
		ra, _ := pa.Value()

		return result.Ap(rf, ra)
	}
}

// ApSeq is Ap with deterministic sequential execution: the function side
// runs first, then the value side.  The value side never starts when the
// function side fails.
func ApSeq[E, A, B any](fab AsyncResult[E, func(A) B], fa AsyncResult[E, A]) AsyncResult[E, B] {
	return Chain(fab, func(f func(A) B) AsyncResult[E, B] {
		return Map(fa, f)
	})
}

// ApValidation is Ap with failure accumulation: both computations run
// concurrently to completion, and when both fail their failures are combined
// with the Semigroup, function side on the left.
func ApValidation[E, A, B any](s monoid.Semigroup[E], fab AsyncResult[E, func(A) B], fa AsyncResult[E, A]) AsyncResult[E, B] {
	return func(ctx context.Context) result.Result[E, B] {
		pf := fab.Fork(ctx)
		pa := fa.Fork(ctx)

		<-pf.Done()
		<-pa.Done()
		rf, _ := pf.Value()
		ra, _ := pa.Value()

		return result.ApValidation(s, rf, ra)
	}
}

// OrElse recovers from failure by feeding the failure value into onErr;
// success passes through untouched.
func OrElse[E, F, A any](fa AsyncResult[E, A], onErr func(E) AsyncResult[F, A]) AsyncResult[F, A] {
	return func(ctx context.Context) result.Result[F, A] {
		r := fa(ctx)
		if e, failed := r.Failure(); failed {
			return onErr(e)(ctx)
		}
		a, _ := r.Value()
		return result.Ok[F, A](a)
	}
}

// Alt returns the computation's outcome when successful and otherwise runs
// the alternative supplied by that.
func Alt[E, A any](fa AsyncResult[E, A], that func() AsyncResult[E, A]) AsyncResult[E, A] {
	return OrElse(fa, func(E) AsyncResult[E, A] {
		return that()
	})
}

// AltValidation is Alt with failure accumulation: when both the computation
// and its alternative fail, the two failures are combined with the
// Semigroup, the first computation's failure on the left.
func AltValidation[E, A any](s monoid.Semigroup[E], fa AsyncResult[E, A], that func() AsyncResult[E, A]) AsyncResult[E, A] {
	return func(ctx context.Context) result.Result[E, A] {
		r := fa(ctx)
		e1, failed := r.Failure()
		if !failed {
			return r
		}

		r2 := that()(ctx)
		if e2, failed := r2.Failure(); failed {
			return result.Err[E, A](s.Combine(e1, e2))
		}
		return r2
	}
}
