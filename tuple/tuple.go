// Package tuple provides Tuple2, a minimal immutable ordered pair used as the
// product type for the library's derived instances: both slots map
// independently (Bifunctor), the first slot extracts and extends (Comonad),
// folds (Foldable) and traverses through Result or Option (Traversable), and
// pairs applied with a Semigroup over the second slot form the writer-style
// applicative.
package tuple

import (
	"github.com/digitalmonad/fpkit/monoid"
	"github.com/digitalmonad/fpkit/option"
	"github.com/digitalmonad/fpkit/result"
)

// Tuple2 is an ordered pair.  The fields are unexported; construct with New.
type Tuple2[A, B any] struct {
	first  A
	second B
}

// New is the canonical Tuple2 constructor.
func New[A, B any](a A, b B) Tuple2[A, B] {
	return Tuple2[A, B]{first: a, second: b}
}

// First returns the first slot.
func (t Tuple2[A, B]) First() A {
	return t.first
}

// Second returns the second slot.
func (t Tuple2[A, B]) Second() B {
	return t.second
}

// Unpack ejects both slots into the multiple return values customary in Go.
func (t Tuple2[A, B]) Unpack() (A, B) {
	return t.first, t.second
}

// Swap exchanges the two slots.
func Swap[A, B any](t Tuple2[A, B]) Tuple2[B, A] {
	return New(t.second, t.first)
}

// MapFirst applies f to the first slot, keeping the second.
func MapFirst[A, B, C any](t Tuple2[A, C], f func(A) B) Tuple2[B, C] {
	return New(f(t.first), t.second)
}

// MapSecond applies f to the second slot, keeping the first.
func MapSecond[A, B, C any](t Tuple2[C, A], f func(A) B) Tuple2[C, B] {
	return New(t.first, f(t.second))
}

// BiMap applies f and g to the first and second slots independently.
func BiMap[A, B, C, D any](t Tuple2[A, C], f func(A) B, g func(C) D) Tuple2[B, D] {
	return New(f(t.first), g(t.second))
}

// Extract returns the first slot; the comonadic counit.
func Extract[A, B any](t Tuple2[A, B]) A {
	return t.first
}

// Extend applies f to the whole pair and stores the outcome in the first
// slot, keeping the second.
func Extend[A, B, C any](t Tuple2[A, B], f func(Tuple2[A, B]) C) Tuple2[C, B] {
	return New(f(t), t.second)
}

// Duplicate nests the pair into its own first slot.
func Duplicate[A, B any](t Tuple2[A, B]) Tuple2[Tuple2[A, B], B] {
	return New(t, t.second)
}

// Reduce folds the first slot into the accumulator.
func Reduce[A, B, Acc any](t Tuple2[A, B], acc Acc, f func(Acc, A) Acc) Acc {
	return f(acc, t.first)
}

// FoldMap maps the first slot into the Monoid.
func FoldMap[A, B, M any](m monoid.Monoid[M], t Tuple2[A, B], f func(A) M) M {
	return m.Combine(m.Empty(), f(t.first))
}

// TraverseResult runs f over the first slot; a failure discards the pair,
// a success rebuilds it around the new first slot.
func TraverseResult[E, A, B, C any](t Tuple2[A, C], f func(A) result.Result[E, B]) result.Result[E, Tuple2[B, C]] {
	return result.Map(f(t.first), func(b B) Tuple2[B, C] {
		return New(b, t.second)
	})
}

// TraverseOption is TraverseResult for Option.
func TraverseOption[A, B, C any](t Tuple2[A, C], f func(A) option.Option[B]) option.Option[Tuple2[B, C]] {
	return option.Map(f(t.first), func(b B) Tuple2[B, C] {
		return New(b, t.second)
	})
}

// Of lifts a value into a pair whose second slot is the Monoid's identity;
// the unit of the writer-style applicative.
func Of[A, M any](m monoid.Monoid[M], a A) Tuple2[A, M] {
	return New(a, m.Empty())
}

// Ap applies a pair holding a function to a pair holding its argument,
// combining the second slots with the Semigroup (function side on the left).
func Ap[A, B, M any](s monoid.Semigroup[M], fab Tuple2[func(A) B, M], fa Tuple2[A, M]) Tuple2[B, M] {
	return New(fab.first(fa.first), s.Combine(fab.second, fa.second))
}
