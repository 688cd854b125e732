// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package seq

import "fmt"

// Option is a container holding zero or one value of type A.
// The zero value is the empty option. Transformations preserve the
// at-most-one cardinality and never mutate the receiver.
type Option[A any] struct {
	present bool
	value   A
}

// Some returns an option holding value.
func Some[A any](value A) Option[A] {
	return Option[A]{present: true, value: value}
}

// None returns the empty option.
// Equivalent to the zero value Option[A]{}.
func None[A any]() Option[A] {
	return Option[A]{}
}

// IsSome reports whether the option holds a value.
func (o Option[A]) IsSome() bool {
	return o.present
}

// IsNone reports whether the option is empty.
func (o Option[A]) IsNone() bool {
	return !o.present
}

// Get returns the held value and true, or zero and false.
func (o Option[A]) Get() (A, bool) {
	if !o.present {
		var zero A
		return zero, false
	}
	return o.value, true
}

// OrElse returns the held value, or fallback if the option is empty.
func (o Option[A]) OrElse(fallback A) A {
	if !o.present {
		return fallback
	}
	return o.value
}

// Filter returns the option unchanged if it holds a value satisfying
// pred, and the empty option otherwise.
func (o Option[A]) Filter(pred func(A) bool) Option[A] {
	if o.present && pred(o.value) {
		return o
	}
	return Option[A]{}
}

// ToSeq returns a sequence holding the option's value, or the empty
// sequence.
func (o Option[A]) ToSeq() Seq[A] {
	if !o.present {
		return Seq[A]{}
	}
	return Seq[A]{}.Cons(o.value)
}

// String renders "Some(v)" or "None".
func (o Option[A]) String() string {
	if !o.present {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.value)
}

// MatchOption dispatches on the option variant, calling onNone for
// the empty option or onSome with the held value otherwise.
func MatchOption[A, T any](o Option[A], onNone func() T, onSome func(A) T) T {
	if !o.present {
		return onNone()
	}
	return onSome(o.value)
}

// MapOption applies f to the held value, if any.
func MapOption[A, B any](o Option[A], f func(A) B) Option[B] {
	if !o.present {
		return Option[B]{}
	}
	return Some(f(o.value))
}

// FlatMapOption applies f, which itself returns an option, to the
// held value. The result is f's option directly — no double wrapping.
func FlatMapOption[A, B any](o Option[A], f func(A) Option[B]) Option[B] {
	if !o.present {
		return Option[B]{}
	}
	return f(o.value)
}
