// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package seq

// SortFunc returns the elements ordered by the comparator: compare
// returns negative when x sorts before y, zero when they are tied,
// positive when x sorts after y. The sort is stable — tied elements
// keep their original relative order — and O(n²) by insertion; the
// intended data sizes are small. The receiver is unchanged.
func (s Seq[A]) SortFunc(compare func(x, y A) int) Seq[A] {
	if s.root == nil || s.root.tail == nil {
		return s
	}
	// Insertion sort over fresh cells. The chain is mutable until the
	// length caches are fixed below, never after return. Each element
	// is inserted after any existing tied elements, which together
	// with head-to-tail traversal keeps the original order of ties.
	var sorted *node[A]
	count := 0
	for n := s.root; n != nil; n = n.tail {
		fresh := &node[A]{head: n.head}
		count++
		if sorted == nil || compare(fresh.head, sorted.head) < 0 {
			fresh.tail = sorted
			sorted = fresh
			continue
		}
		at := sorted
		for at.tail != nil && compare(fresh.head, at.tail.head) >= 0 {
			at = at.tail
		}
		fresh.tail = at.tail
		at.tail = fresh
	}
	l := count
	for n := sorted; n != nil; n = n.tail {
		n.len = l
		l--
	}
	return Seq[A]{root: sorted}
}
