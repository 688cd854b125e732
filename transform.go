// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package seq

// Transformation operations on sequences.
//
// Operations that change the element type are top-level functions:
// Go methods cannot introduce type parameters, so Map, FlatMap, Fold
// and ZipWith take the sequence as their first argument. Operations
// that preserve the element type (Filter, Concat, Reverse, SortFunc)
// are methods.
//
// All traversals are iterative. Results are assembled front-to-back
// through an append cursor over freshly allocated cells, so no
// operation consumes call stack proportional to sequence length.

// builder assembles a sequence front-to-back. Its cells are mutable
// only until seal returns; after that they are ordinary immutable
// sequence cells.
type builder[A any] struct {
	root  *node[A]
	last  *node[A]
	count int
}

func (b *builder[A]) append(head A) {
	n := &node[A]{head: head}
	if b.last == nil {
		b.root = n
	} else {
		b.last.tail = n
	}
	b.last = n
	b.count++
}

// seal attaches the (possibly nil, possibly shared) suffix, fixes the
// length cache of the fresh cells, and returns the finished sequence.
func (b *builder[A]) seal(suffix *node[A]) Seq[A] {
	if b.root == nil {
		return Seq[A]{root: suffix}
	}
	b.last.tail = suffix
	l := b.count + lenOf(suffix)
	for n := b.root; n != suffix; n = n.tail {
		n.len = l
		l--
	}
	return Seq[A]{root: b.root}
}

// Map returns a new sequence holding f applied to each element,
// preserving order. f is called exactly once per element.
func Map[A, B any](s Seq[A], f func(A) B) Seq[B] {
	var b builder[B]
	for n := s.root; n != nil; n = n.tail {
		b.append(f(n.head))
	}
	return b.seal(nil)
}

// Filter returns the elements satisfying pred, in their original
// order. Dropped elements leave nothing behind.
func (s Seq[A]) Filter(pred func(A) bool) Seq[A] {
	var b builder[A]
	for n := s.root; n != nil; n = n.tail {
		if pred(n.head) {
			b.append(n.head)
		}
	}
	return b.seal(nil)
}

// Concat returns the receiver's elements followed by other's.
// The receiver's cells are copied; other's cells are shared as the
// suffix of the result. An empty receiver returns other as-is.
func (s Seq[A]) Concat(other Seq[A]) Seq[A] {
	if s.root == nil {
		return other
	}
	if other.root == nil {
		return s
	}
	var b builder[A]
	for n := s.root; n != nil; n = n.tail {
		b.append(n.head)
	}
	return b.seal(other.root)
}

// FlatMap applies f to each element and concatenates the resulting
// sequences in order.
func FlatMap[A, B any](s Seq[A], f func(A) Seq[B]) Seq[B] {
	var b builder[B]
	for n := s.root; n != nil; n = n.tail {
		for m := f(n.head).root; m != nil; m = m.tail {
			b.append(m.head)
		}
	}
	return b.seal(nil)
}

// Each applies action to every element in head-to-tail order, purely
// for its side effects.
func (s Seq[A]) Each(action func(A)) {
	for n := s.root; n != nil; n = n.tail {
		action(n.head)
	}
}

// Fold reduces the sequence to a single value with a strict left
// fold: the accumulator starts at seed and op is applied exactly
// Len times, threading left to right through the elements.
func Fold[A, B any](s Seq[A], seed B, op func(B, A) B) B {
	acc := seed
	for n := s.root; n != nil; n = n.tail {
		acc = op(acc, n.head)
	}
	return acc
}

// Reverse returns the elements in tail-to-head order.
func (s Seq[A]) Reverse() Seq[A] {
	var out Seq[A]
	for n := s.root; n != nil; n = n.tail {
		out = out.Cons(n.head)
	}
	return out
}
