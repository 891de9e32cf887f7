// Package monoid provides generic associative-combination algebra.
// A Semigroup is an associative binary operation over some type A and a
// Monoid is a Semigroup with a two-sided identity element.  Instances are
// plain values, so callers can pass them around and build their own on the
// fly with MakeSemigroup and MakeMonoid.
package monoid

import "cmp"

// Semigroup is an associative combination operation over A.
// Combine must satisfy Combine(a, Combine(b, c)) == Combine(Combine(a, b), c).
type Semigroup[A any] struct {
	Combine func(A, A) A
}

// Monoid is a Semigroup with an identity element.
// Empty must satisfy Combine(Empty(), a) == a == Combine(a, Empty()).
type Monoid[A any] struct {
	Empty   func() A
	Combine func(A, A) A
}

// MakeSemigroup builds a Semigroup from a combine function.
func MakeSemigroup[A any](combine func(A, A) A) Semigroup[A] {
	return Semigroup[A]{Combine: combine}
}

// MakeMonoid builds a Monoid from an identity constructor and a combine function.
func MakeMonoid[A any](empty func() A, combine func(A, A) A) Monoid[A] {
	return Monoid[A]{Empty: empty, Combine: combine}
}

// Semigroup returns the underlying Semigroup of the Monoid.
func (m Monoid[A]) Semigroup() Semigroup[A] {
	return Semigroup[A]{Combine: m.Combine}
}

// Number is the constraint accepted by the Sum and Product monoids.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// String concatenates strings; the identity is "".
var String = Monoid[string]{
	Empty:   func() string { return "" },
	Combine: func(a, b string) string { return a + b },
}

// All combines booleans with logical and; the identity is true.
var All = Monoid[bool]{
	Empty:   func() bool { return true },
	Combine: func(a, b bool) bool { return a && b },
}

// Any combines booleans with logical or; the identity is false.
var Any = Monoid[bool]{
	Empty:   func() bool { return false },
	Combine: func(a, b bool) bool { return a || b },
}

// Sum adds numbers; the identity is 0.
func Sum[A Number]() Monoid[A] {
	return Monoid[A]{
		Empty:   func() A { return 0 },
		Combine: func(a, b A) A { return a + b },
	}
}

// Product multiplies numbers; the identity is 1.
func Product[A Number]() Monoid[A] {
	return Monoid[A]{
		Empty:   func() A { return 1 },
		Combine: func(a, b A) A { return a * b },
	}
}

// Slice appends slices; the identity is nil.
func Slice[A any]() Monoid[[]A] {
	return Monoid[[]A]{
		Empty: func() []A { return nil },
		Combine: func(a, b []A) []A {
			out := make([]A, 0, len(a)+len(b))
			out = append(out, a...)
			return append(out, b...)
		},
	}
}

// First always keeps the left operand.
func First[A any]() Semigroup[A] {
	return Semigroup[A]{Combine: func(a, _ A) A { return a }}
}

// Last always keeps the right operand.
func Last[A any]() Semigroup[A] {
	return Semigroup[A]{Combine: func(_, b A) A { return b }}
}

// Min keeps the smaller operand.
func Min[A cmp.Ordered]() Semigroup[A] {
	return Semigroup[A]{Combine: func(a, b A) A {
		if b < a {
			return b
		}
		return a
	}}
}

// Max keeps the larger operand.
func Max[A cmp.Ordered]() Semigroup[A] {
	return Semigroup[A]{Combine: func(a, b A) A {
		if b > a {
			return b
		}
		return a
	}}
}

// Func composes endomorphisms left to right; the identity is the identity function.
func Func[A any]() Monoid[func(A) A] {
	return Monoid[func(A) A]{
		Empty: func() func(A) A {
			return func(a A) A { return a }
		},
		Combine: func(f, g func(A) A) func(A) A {
			return func(a A) A { return g(f(a)) }
		},
	}
}

// Dual flips the argument order of a Semigroup's combine.
func Dual[A any](s Semigroup[A]) Semigroup[A] {
	return Semigroup[A]{Combine: func(a, b A) A { return s.Combine(b, a) }}
}

// DualMonoid flips the argument order of a Monoid's combine.
func DualMonoid[A any](m Monoid[A]) Monoid[A] {
	return Monoid[A]{
		Empty:   m.Empty,
		Combine: func(a, b A) A { return m.Combine(b, a) },
	}
}

// Concat folds a non-empty sequence given explicitly as a head element plus
// the remaining elements, so a Semigroup suffices.
func Concat[A any](s Semigroup[A], head A, rest []A) A {
	acc := head
	for _, a := range rest {
		acc = s.Combine(acc, a)
	}
	return acc
}

// ConcatAll folds a slice with a Monoid, starting from the identity.
func ConcatAll[A any](m Monoid[A], xs []A) A {
	acc := m.Empty()
	for _, a := range xs {
		acc = m.Combine(acc, a)
	}
	return acc
}

// FoldMap maps every element into the Monoid and folds in a single pass.
func FoldMap[A, B any](m Monoid[B], f func(A) B, xs []A) B {
	acc := m.Empty()
	for _, a := range xs {
		acc = m.Combine(acc, f(a))
	}
	return acc
}
