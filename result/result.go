// Package result provides Result[E, A], an immutable tagged union holding
// either a typed failure E or a success A.  Exactly one of the two variants
// holds at a time.  The failure channel is a type parameter rather than Go's
// error interface so callers can model their failure domain precisely;
// instantiating E as error works fine when that is all that is needed.
//
// Combinators are package-level generic functions: Map and BiMap give the
// Functor/Bifunctor shape, Chain the Monad shape, Ap the Applicative shape,
// and ApValidation an applicative that accumulates failures through a
// Semigroup instead of short-circuiting.
package result

import (
	"github.com/digitalmonad/fpkit/monoid"
	"github.com/digitalmonad/fpkit/option"
)

// Result is either Err(e) or Ok(a).  The zero value is Err with E's zero
// value; construct through Ok and Err.
type Result[E, A any] struct {
	ok  bool
	err E
	val A
}

// Ok wraps a success value.
func Ok[E, A any](a A) Result[E, A] {
	return Result[E, A]{ok: true, val: a}
}

// Err wraps a failure value.
func Err[E, A any](e E) Result[E, A] {
	return Result[E, A]{err: e}
}

// Of is Ok under its applicative name.
func Of[E, A any](a A) Result[E, A] {
	return Ok[E, A](a)
}

// IsOk reports whether the Result is a success.
func (r Result[E, A]) IsOk() bool {
	return r.ok
}

// IsErr reports whether the Result is a failure.
func (r Result[E, A]) IsErr() bool {
	return !r.ok
}

// Value returns the success value and whether the Result is a success.
func (r Result[E, A]) Value() (A, bool) {
	return r.val, r.ok
}

// Failure returns the failure value and whether the Result is a failure.
func (r Result[E, A]) Failure() (E, bool) {
	return r.err, !r.ok
}

// Match invokes exactly one of the two handlers.  Nil handlers are allowed
// and skipped.
func (r Result[E, A]) Match(onErr func(E), onOk func(A)) {
	if r.ok {
		if onOk != nil {
			onOk(r.val)
		}
		return
	}
	if onErr != nil {
		onErr(r.err)
	}
}

// FromOption lifts an Option, producing the failure from onNone when absent.
func FromOption[E, A any](o option.Option[A], onNone func() E) Result[E, A] {
	if a, ok := o.Unwrap(); ok {
		return Ok[E, A](a)
	}
	return Err[E, A](onNone())
}

// FromPredicate succeeds with a when the predicate holds and otherwise fails
// with onFalse(a).
func FromPredicate[E, A any](a A, pred func(A) bool, onFalse func(A) E) Result[E, A] {
	if pred(a) {
		return Ok[E, A](a)
	}
	return Err[E, A](onFalse(a))
}

// ToOption discards the failure channel.
func ToOption[E, A any](r Result[E, A]) option.Option[A] {
	if !r.ok {
		return option.None[A]()
	}
	return option.Some(r.val)
}

// Map transforms the success value; failure passes through untouched.
func Map[E, A, B any](r Result[E, A], f func(A) B) Result[E, B] {
	if !r.ok {
		return Err[E, B](r.err)
	}
	return Ok[E, B](f(r.val))
}

// MapErr transforms the failure value; success passes through untouched.
func MapErr[E, F, A any](r Result[E, A], f func(E) F) Result[F, A] {
	if r.ok {
		return Ok[F, A](r.val)
	}
	return Err[F, A](f(r.err))
}

// BiMap transforms both channels independently.
func BiMap[E, F, A, B any](r Result[E, A], f func(E) F, g func(A) B) Result[F, B] {
	if r.ok {
		return Ok[F, B](g(r.val))
	}
	return Err[F, B](f(r.err))
}

// Chain feeds the success value into f to obtain the next Result; failure
// short-circuits without invoking f.
func Chain[E, A, B any](r Result[E, A], f func(A) Result[E, B]) Result[E, B] {
	if !r.ok {
		return Err[E, B](r.err)
	}
	return f(r.val)
}

// ChainFirst runs f for its effect on the Result channel but keeps the
// original success value.
func ChainFirst[E, A, B any](r Result[E, A], f func(A) Result[E, B]) Result[E, A] {
	return Chain(r, func(a A) Result[E, A] {
		return Map(f(a), func(B) A { return a })
	})
}

// Ap applies a wrapped function to a wrapped value.  The function side's
// failure wins when both sides fail.
func Ap[E, A, B any](fab Result[E, func(A) B], fa Result[E, A]) Result[E, B] {
	if !fab.ok {
		return Err[E, B](fab.err)
	}
	return Map(fa, fab.val)
}

// ApValidation is Ap with failure accumulation: when both sides fail their
// failures are combined with the Semigroup, function side on the left.
func ApValidation[E, A, B any](s monoid.Semigroup[E], fab Result[E, func(A) B], fa Result[E, A]) Result[E, B] {
	if !fab.ok {
		if !fa.ok {
			return Err[E, B](s.Combine(fab.err, fa.err))
		}
		return Err[E, B](fab.err)
	}
	return Map(fa, fab.val)
}

// Alt returns r when successful, otherwise the Result produced by that.
func Alt[E, A any](r Result[E, A], that func() Result[E, A]) Result[E, A] {
	if r.ok {
		return r
	}
	return that()
}

// OrElse recovers from failure by feeding the failure value into onErr;
// success passes through untouched.
func OrElse[E, F, A any](r Result[E, A], onErr func(E) Result[F, A]) Result[F, A] {
	if r.ok {
		return Ok[F, A](r.val)
	}
	return onErr(r.err)
}

// Fold collapses the Result into a single value with one handler per case.
func Fold[E, A, B any](r Result[E, A], onErr func(E) B, onOk func(A) B) B {
	if r.ok {
		return onOk(r.val)
	}
	return onErr(r.err)
}

// GetOrElse returns the success value or computes a fallback from the failure.
func GetOrElse[E, A any](r Result[E, A], onErr func(E) A) A {
	if r.ok {
		return r.val
	}
	return onErr(r.err)
}

// Swap exchanges the two channels.
func Swap[E, A any](r Result[E, A]) Result[A, E] {
	if r.ok {
		return Err[A, E](r.val)
	}
	return Ok[A, E](r.err)
}

// TraverseSlice applies f to every element left to right, short-circuiting on
// the first failure; on success the collected values keep their input order.
func TraverseSlice[E, A, B any](xs []A, f func(A) Result[E, B]) Result[E, []B] {
	out := make([]B, 0, len(xs))
	for _, a := range xs {
		r := f(a)
		if !r.ok {
			return Err[E, []B](r.err)
		}
		out = append(out, r.val)
	}
	return Ok[E, []B](out)
}

// SequenceSlice collects a slice of Results into a Result of a slice,
// short-circuiting on the first failure.
func SequenceSlice[E, A any](rs []Result[E, A]) Result[E, []A] {
	return TraverseSlice(rs, func(r Result[E, A]) Result[E, A] { return r })
}
