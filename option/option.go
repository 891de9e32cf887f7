// Package option provides an optional value: an Option[A] either holds a
// value of type A or holds nothing.  It replaces nil-pointer and ok-bool
// conventions with a single composable type.
package option

// Option is an immutable container that is either Some(a) or None.
// The zero value is None.
type Option[A any] struct {
	present bool
	value   A
}

// Some wraps a present value.
func Some[A any](a A) Option[A] {
	return Option[A]{present: true, value: a}
}

// None returns the absent Option.
func None[A any]() Option[A] {
	return Option[A]{}
}

// FromPtr converts a possibly nil pointer into an Option, dereferencing when
// non-nil.
func FromPtr[A any](p *A) Option[A] {
	if p == nil {
		return None[A]()
	}
	return Some(*p)
}

// IsSome reports whether the Option holds a value.
func (o Option[A]) IsSome() bool {
	return o.present
}

// IsNone reports whether the Option is absent.
func (o Option[A]) IsNone() bool {
	return !o.present
}

// Unwrap returns the held value and whether it is present.
func (o Option[A]) Unwrap() (A, bool) {
	return o.value, o.present
}

// Map transforms the held value, passing None through untouched.
func Map[A, B any](o Option[A], f func(A) B) Option[B] {
	if !o.present {
		return None[B]()
	}
	return Some(f(o.value))
}

// Chain feeds the held value into f to produce the next Option; None
// short-circuits without invoking f.
func Chain[A, B any](o Option[A], f func(A) Option[B]) Option[B] {
	if !o.present {
		return None[B]()
	}
	return f(o.value)
}

// Alt returns o when present, otherwise the Option produced by that.
func Alt[A any](o Option[A], that func() Option[A]) Option[A] {
	if o.present {
		return o
	}
	return that()
}

// Filter keeps the value only when the predicate holds.
func Filter[A any](o Option[A], pred func(A) bool) Option[A] {
	if o.present && pred(o.value) {
		return o
	}
	return None[A]()
}

// Fold collapses the Option into a single value with one handler per case.
func Fold[A, B any](o Option[A], onNone func() B, onSome func(A) B) B {
	if o.present {
		return onSome(o.value)
	}
	return onNone()
}

// GetOrElse returns the held value or the supplied fallback.
func GetOrElse[A any](o Option[A], onNone func() A) A {
	if o.present {
		return o.value
	}
	return onNone()
}
