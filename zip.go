// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package seq

// ZipWith pairs the sequences positionally and applies combine to
// each pair, producing a sequence of the results in order.
//
// The operation is all-or-nothing: if the sequences differ in length
// it fails with [ErrLengthMismatch] — regardless of which side is
// longer — and no partial or truncated result is returned. combine is
// not called when the lengths differ.
func ZipWith[A, B, C any](a Seq[A], b Seq[B], combine func(A, B) C) (Seq[C], error) {
	if lenOf(a.root) != lenOf(b.root) {
		return Seq[C]{}, ErrLengthMismatch
	}
	var out builder[C]
	for na, nb := a.root, b.root; na != nil; na, nb = na.tail, nb.tail {
		out.append(combine(na.head, nb.head))
	}
	return out.seal(nil), nil
}
