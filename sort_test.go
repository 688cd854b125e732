// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package seq_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"code.hybscloud.com/seq"
)

func intAsc(x, y int) int  { return x - y }
func intDesc(x, y int) int { return y - x }

func TestSortFuncAscending(t *testing.T) {
	got := seq.Of(7, 1, 5, 6, 2, 3).SortFunc(intAsc)
	if diff := cmp.Diff([]int{1, 2, 3, 5, 6, 7}, got.ToSlice()); diff != "" {
		t.Fatalf("SortFunc mismatch (-want +got):\n%s", diff)
	}
}

func TestSortFuncDescending(t *testing.T) {
	got := seq.Of(7, 1, 5, 6, 2, 3).SortFunc(intDesc)
	if diff := cmp.Diff([]int{7, 6, 5, 3, 2, 1}, got.ToSlice()); diff != "" {
		t.Fatalf("SortFunc mismatch (-want +got):\n%s", diff)
	}
}

func TestSortFuncEmptyAndSingle(t *testing.T) {
	if !seq.Empty[int]().SortFunc(intAsc).IsEmpty() {
		t.Fatal("sorting empty should be empty")
	}
	if !seq.Equal(seq.Of(5).SortFunc(intAsc), seq.Of(5)) {
		t.Fatal("sorting a singleton should be itself")
	}
}

func TestSortFuncPreservesLen(t *testing.T) {
	s := seq.Of(3, 1, 2, 1, 3)
	if got := s.SortFunc(intAsc).Len(); got != s.Len() {
		t.Fatalf("sorted Len = %d, want %d", got, s.Len())
	}
}

func TestSortFuncLeavesReceiver(t *testing.T) {
	s := seq.Of(3, 1, 2)
	s.SortFunc(intAsc)
	if !seq.Equal(s, seq.Of(3, 1, 2)) {
		t.Fatalf("receiver changed: %v", s)
	}
}

func TestSortFuncStable(t *testing.T) {
	type pair struct {
		key int
		tag string
	}
	s := seq.Of(
		pair{2, "a"},
		pair{1, "b"},
		pair{2, "c"},
		pair{1, "d"},
		pair{2, "e"},
	)
	got := s.SortFunc(func(x, y pair) int { return x.key - y.key })
	want := []pair{{1, "b"}, {1, "d"}, {2, "a"}, {2, "c"}, {2, "e"}}
	if diff := cmp.Diff(want, got.ToSlice(), cmp.AllowUnexported(pair{})); diff != "" {
		t.Fatalf("stability mismatch (-want +got):\n%s", diff)
	}
}

func TestSortFuncAllEqual(t *testing.T) {
	// A constant comparator must keep the original order.
	s := seq.Of(3, 1, 2)
	got := s.SortFunc(func(x, y int) int { return 0 })
	if !seq.Equal(got, s) {
		t.Fatalf("got %v, want %v", got, s)
	}
}

func TestSortFuncAlreadySorted(t *testing.T) {
	s := seq.Of(1, 2, 3, 4)
	if !seq.Equal(s.SortFunc(intAsc), s) {
		t.Fatal("sorting a sorted sequence should be identity")
	}
}
