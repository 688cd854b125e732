// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package seq

// Equal reports structural equality: both sequences have the same
// length and pairwise-equal elements in order. Structural sharing is
// irrelevant — two independently built sequences with the same
// elements are equal.
func Equal[A comparable](a, b Seq[A]) bool {
	if lenOf(a.root) != lenOf(b.root) {
		return false
	}
	for na, nb := a.root, b.root; na != nil; na, nb = na.tail, nb.tail {
		if na.head != nb.head {
			return false
		}
	}
	return true
}

// EqualFunc is Equal with a caller-supplied element equality, usable
// across two different element types.
func EqualFunc[A, B any](a Seq[A], b Seq[B], eq func(A, B) bool) bool {
	if lenOf(a.root) != lenOf(b.root) {
		return false
	}
	na, nb := a.root, b.root
	for na != nil {
		if !eq(na.head, nb.head) {
			return false
		}
		na, nb = na.tail, nb.tail
	}
	return true
}
