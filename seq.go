// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package seq

import (
	"fmt"
	"iter"
	"strings"
)

// Seq is an immutable singly-linked sequence of elements of type A.
// The zero value is the empty sequence and is ready to use.
//
// A Seq is a closed two-variant structure: either empty, or a cell
// holding a head element and a tail sequence. Operations never mutate
// a sequence after it has been returned to the caller, so any Seq may
// be read from multiple goroutines without synchronization, and tails
// are freely shared between sequences.
type Seq[A any] struct {
	root *node[A]
}

// node is a non-empty sequence cell. len caches the number of cells
// reachable from this one, making Len O(1); it is fixed before the
// owning operation returns and never changes afterwards.
type node[A any] struct {
	head A
	tail *node[A]
	len  int
}

// lenOf returns the cached length of a possibly-nil cell chain.
func lenOf[A any](n *node[A]) int {
	if n == nil {
		return 0
	}
	return n.len
}

// Empty returns the empty sequence.
// Equivalent to the zero value Seq[A]{}.
func Empty[A any]() Seq[A] {
	return Seq[A]{}
}

// Of builds a sequence containing the given elements in order.
func Of[A any](elems ...A) Seq[A] {
	return FromSlice(elems)
}

// FromSlice builds a sequence with the same elements as the slice,
// in order. The slice is not retained.
func FromSlice[A any](elems []A) Seq[A] {
	var root *node[A]
	for i := len(elems) - 1; i >= 0; i-- {
		root = &node[A]{head: elems[i], tail: root, len: lenOf(root) + 1}
	}
	return Seq[A]{root: root}
}

// Cons returns a new sequence with head as the first element and the
// receiver as the tail. O(1); the receiver is shared, not copied.
func (s Seq[A]) Cons(head A) Seq[A] {
	return Seq[A]{root: &node[A]{head: head, tail: s.root, len: lenOf(s.root) + 1}}
}

// IsEmpty reports whether the sequence has no elements.
func (s Seq[A]) IsEmpty() bool {
	return s.root == nil
}

// Len returns the number of elements. O(1).
func (s Seq[A]) Len() int {
	return lenOf(s.root)
}

// Head returns the first element.
// Fails with [ErrEmptyAccess] on the empty sequence.
func (s Seq[A]) Head() (A, error) {
	if s.root == nil {
		var zero A
		return zero, ErrEmptyAccess
	}
	return s.root.head, nil
}

// Tail returns the sequence without its first element.
// Fails with [ErrEmptyAccess] on the empty sequence.
func (s Seq[A]) Tail() (Seq[A], error) {
	if s.root == nil {
		return Seq[A]{}, ErrEmptyAccess
	}
	return Seq[A]{root: s.root.tail}, nil
}

// Match dispatches on the sequence variant, calling onEmpty for the
// empty sequence or onNode with the head and tail otherwise.
func Match[A, T any](s Seq[A], onEmpty func() T, onNode func(head A, tail Seq[A]) T) T {
	if s.root == nil {
		return onEmpty()
	}
	return onNode(s.root.head, Seq[A]{root: s.root.tail})
}

// ToSlice returns the elements as a fresh slice in head-to-tail order.
// Returns nil for the empty sequence.
func (s Seq[A]) ToSlice() []A {
	if s.root == nil {
		return nil
	}
	out := make([]A, 0, s.root.len)
	for n := s.root; n != nil; n = n.tail {
		out = append(out, n.head)
	}
	return out
}

// All returns an iterator over the elements in head-to-tail order,
// usable with range.
func (s Seq[A]) All() iter.Seq[A] {
	return func(yield func(A) bool) {
		for n := s.root; n != nil; n = n.tail {
			if !yield(n.head) {
				return
			}
		}
	}
}

// String renders the sequence as "[e1 e2 e3]" with space-separated
// elements in their default %v form; the empty sequence renders "[]".
func (s Seq[A]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for n := s.root; n != nil; n = n.tail {
		if n != s.root {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%v", n.head)
	}
	b.WriteByte(']')
	return b.String()
}
