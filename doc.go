// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package seq provides an immutable singly-linked sequence and a
// zero-or-one-element option container, with the standard functional
// transformation vocabulary over both.
//
// The core type [Seq] is a persistent cons list: every operation
// returns a new sequence and leaves the receiver untouched, sharing
// unchanged cells where safe. [Option] is the matching single-value
// container. Both are closed two-variant structures whose zero value
// is the empty variant.
//
// # Design Philosophy
//
// seq provides:
//   - Value types whose zero values are valid empty structures
//   - Explicit failure values for shape violations, never panics
//   - Iterative traversals with no stack cost proportional to length
//
// Sum variants are encoded as a struct with an unexported
// discriminant (a nil-able cell pointer for [Seq], a presence flag
// for [Option]); dispatch is exhaustive through [Match] and
// [MatchOption].
//
// # Sequence Operations
//
// Construction and access:
//
//   - [Empty], [Of], [FromSlice]: Build sequences
//   - [Seq.Cons]: Prepend an element in O(1), sharing the tail
//   - [Seq.Head], [Seq.Tail]: First element / remainder — fail with
//     [ErrEmptyAccess] on the empty sequence
//   - [Seq.IsEmpty], [Seq.Len]: Shape queries (Len is O(1))
//   - [Match]: Variant dispatch with head/tail binding
//   - [Seq.ToSlice], [Seq.All], [Seq.String]: Projections
//
// Transformation — functions where the element type changes, methods
// where it does not:
//
//   - [Map]: One-to-one element transformation, order preserving
//   - [Seq.Filter]: Keep elements satisfying a predicate
//   - [Seq.Concat]: Receiver's elements followed by the argument's;
//     the argument's cells become the shared suffix of the result
//   - [FlatMap]: Transform each element to a sequence and concatenate
//   - [Seq.Each]: Strict head-to-tail side-effect traversal
//   - [Fold]: Strict left fold from a seed
//   - [Seq.SortFunc]: Stable comparator insertion sort
//   - [Seq.Reverse]: Tail-to-head order
//   - [ZipWith]: Positional pairing — all-or-nothing, failing with
//     [ErrLengthMismatch] on unequal lengths
//
// Equality is structural:
//
//   - [Equal]: Same length, pairwise == in order
//   - [EqualFunc]: Caller-supplied element equality
//
// # Option Operations
//
//   - [Some], [None]: Constructors
//   - [Option.IsSome], [Option.IsNone], [Option.Get], [Option.OrElse]
//   - [MatchOption]: Variant dispatch
//   - [MapOption], [FlatMapOption], [Option.Filter]: Transformations
//     preserving the at-most-one cardinality
//   - [Option.ToSeq]: Zero-or-one-element sequence bridge
//
// # Concurrency
//
// Sequences and options are immutable after construction, so any
// value may be read concurrently by multiple goroutines without
// synchronization. Determinism holds whenever the caller-supplied
// transformer, predicate, and comparator functions are pure.
//
// # Example
//
//	s := seq.Of(7, 1, 5, 6, 2, 3)
//	sorted := s.SortFunc(func(x, y int) int { return x - y })
//	doubled := seq.Map(sorted, func(x int) int { return x * 2 })
//	fmt.Println(doubled) // [2 4 6 10 12 14]
package seq
