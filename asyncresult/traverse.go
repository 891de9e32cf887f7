package asyncresult

import (
	"context"
	"time"

	"golang.org/x/time/rate"

	"github.com/digitalmonad/fpkit/internal/par"
	"github.com/digitalmonad/fpkit/promise"
	"github.com/digitalmonad/fpkit/result"
)

// TraverseArray applies f to every element and forks all resulting
// computations before awaiting any.  Every computation runs to completion;
// the aggregated result is the first failure by input index (not the first
// to fail in wall-clock time) or the successes in input order.
func TraverseArray[E, A, B any](xs []A, f func(A) AsyncResult[E, B]) AsyncResult[E, []B] {
	return func(ctx context.Context) result.Result[E, []B] {
		return collect(par.All(ctx, launchers(xs, f)))
	}
}

// SequenceArray collects already-built computations the way TraverseArray
// does.
func SequenceArray[E, A any](xs []AsyncResult[E, A]) AsyncResult[E, []A] {
	return TraverseArray(xs, func(fa AsyncResult[E, A]) AsyncResult[E, A] { return fa })
}

// TraverseSeqArray applies f to every element strictly one at a time in
// input order, stopping at the first failure; later elements never start.
func TraverseSeqArray[E, A, B any](xs []A, f func(A) AsyncResult[E, B]) AsyncResult[E, []B] {
	return func(ctx context.Context) result.Result[E, []B] {
		out := make([]B, 0, len(xs))
		for _, a := range xs {
			r := f(a)(ctx)
			if e, failed := r.Failure(); failed {
				return result.Err[E, []B](e)
			}
			b, _ := r.Value()
			out = append(out, b)
		}
		return result.Ok[E, []B](out)
	}
}

// SequenceSeqArray collects already-built computations the way
// TraverseSeqArray does.
func SequenceSeqArray[E, A any](xs []AsyncResult[E, A]) AsyncResult[E, []A] {
	return TraverseSeqArray(xs, func(fa AsyncResult[E, A]) AsyncResult[E, A] { return fa })
}

// TraverseArrayLimit is TraverseArray with at most limit computations in
// flight.  Failure policy matches TraverseArray.  Panics when limit < 1.
func TraverseArrayLimit[E, A, B any](limit int, xs []A, f func(A) AsyncResult[E, B]) AsyncResult[E, []B] {
	return func(ctx context.Context) result.Result[E, []B] {
		return collect(par.AllLimit(ctx, limit, launchers(xs, f)))
	}
}

// TraverseArrayRate is TraverseArray with launches paced through a token
// bucket of the given rate and burst.  Computations still run concurrently
// once launched; only the launch rate is limited.  Pacing stops once the
// context is done: remaining elements launch immediately and observe the
// context at their own boundaries.  Panics when limit is not positive or
// burst is less than 1, since a zero rate could never launch past the
// initial burst.
func TraverseArrayRate[E, A, B any](limit rate.Limit, burst int, xs []A, f func(A) AsyncResult[E, B]) AsyncResult[E, []B] {
	if limit <= 0 {
		panic("asyncresult: rate limit must be greater than 0")
	}
	if burst < 1 {
		panic("asyncresult: rate burst must be 1 or greater")
	}

	return func(ctx context.Context) result.Result[E, []B] {
		limiter := rate.NewLimiter(limit, burst)

		fs := launchers(xs, f)
		ps := make([]*promise.Promise[result.Result[E, B]], len(fs))
		for i, fn := range fs {
			waitTurn(ctx, limiter)
			ps[i] = promise.Start(ctx, fn)
		}

		rs := make([]result.Result[E, B], len(ps))
		for i, p := range ps {
			<-p.Done()
			rs[i], _ = p.Value()
		}
		return collect(rs)
	}
}

func waitTurn(ctx context.Context, limiter *rate.Limiter) {
	delay := limiter.Reserve().Delay()
	if delay == 0 {
		return
	}

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-timer.C:
	case <-ctx.Done():
	}
}

// launchers adapts the traversal input into the shape the par collectors run.
func launchers[E, A, B any](xs []A, f func(A) AsyncResult[E, B]) []func(context.Context) result.Result[E, B] {
	fs := make([]func(context.Context) result.Result[E, B], len(xs))
	for i, a := range xs {
		fs[i] = f(a)
	}
	return fs
}

// collect scans settled results in input order, returning the first failure
// found or all successes in input order.
func collect[E, B any](rs []result.Result[E, B]) result.Result[E, []B] {
	out := make([]B, 0, len(rs))
	for _, r := range rs {
		if e, failed := r.Failure(); failed {
			return result.Err[E, []B](e)
		}
		b, _ := r.Value()
		out = append(out, b)
	}
	return result.Ok[E, []B](out)
}
