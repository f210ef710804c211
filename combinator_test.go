// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lazy_test

import (
	"slices"
	"strconv"
	"testing"

	"code.hybscloud.com/lazy"
)

func TestTakeIdentities(t *testing.T) {
	s := lazy.Of(1, 2, 3)
	if !s.Take(0).IsEmpty() {
		t.Fatal("Take(0) not empty")
	}
	if !s.Take(-1).IsEmpty() {
		t.Fatal("Take(-1) not empty")
	}
	if !lazy.Equal(s.Take(3), s) {
		t.Fatal("Take(len) differs from the whole stream")
	}
	if !lazy.Equal(s.Take(10), s) {
		t.Fatal("Take past the end differs from the whole stream")
	}
}

func TestTakeDoesNotForceReceiver(t *testing.T) {
	s, calls := counting()
	_ = s.Take(5)
	if *calls != 0 {
		t.Fatalf("Take forced %d positions at call time, want 0", *calls)
	}
}

func TestDropIdentities(t *testing.T) {
	s := lazy.Of(1, 2, 3)
	if got := collect(s.Drop(1)); !slices.Equal(got, []int{2, 3}) {
		t.Fatalf("Drop(1) = %v, want [2 3]", got)
	}
	if !s.Drop(3).IsEmpty() {
		t.Fatal("Drop(len) not empty")
	}
	if !s.Drop(10).IsEmpty() {
		t.Fatal("Drop past the end not empty")
	}
}

func TestDropZeroIsIdentity(t *testing.T) {
	s, calls := counting()
	d := s.Drop(0)
	if *calls != 0 {
		t.Fatalf("Drop(0) forced %d positions, want 0", *calls)
	}
	if v, _ := d.First(); v != 1 {
		t.Fatalf("Drop(0) First = %d, want 1", v)
	}
	// Same handle: the force above is visible through the receiver.
	if v, _ := s.First(); v != 1 || *calls != 1 {
		t.Fatalf("receiver diverged from Drop(0): First=%d calls=%d", v, *calls)
	}
}

func TestMapLazy(t *testing.T) {
	s, calls := counting()
	doubled := lazy.Map(s, func(v int) int { return v * 2 })
	if *calls != 0 {
		t.Fatalf("Map forced %d positions at call time, want 0", *calls)
	}
	if got := collect(doubled.Take(3)); !slices.Equal(got, []int{2, 4, 6}) {
		t.Fatalf("mapped = %v, want [2 4 6]", got)
	}
	if *calls != 3 {
		t.Fatalf("mapped Take(3) ran generator %d times, want 3", *calls)
	}
}

func TestMapTypeChange(t *testing.T) {
	s := lazy.Of(1, 2, 3)
	strs := lazy.Map(s, strconv.Itoa)
	if got := collect(strs); !slices.Equal(got, []string{"1", "2", "3"}) {
		t.Fatalf("mapped = %v, want [1 2 3]", got)
	}
}

func TestConcatIdentities(t *testing.T) {
	e := lazy.Empty[int]()
	x := lazy.Of(1, 2, 3)
	if !e.Concat(lazy.Empty[int]()).IsEmpty() {
		t.Fatal("empty ++ empty not empty")
	}
	if !lazy.Equal(e.Concat(x), x) {
		t.Fatal("empty ++ x differs from x")
	}
	if !lazy.Equal(x.Concat(lazy.Empty[int]()), x) {
		t.Fatal("x ++ empty differs from x")
	}

	joined := lazy.Of(1, 2, 3).Concat(lazy.Of(4, 5, 6))
	got := lazy.FoldLeft(joined, "0", func(acc string, v int) string {
		return acc + strconv.Itoa(v)
	})
	if got != "0123456" {
		t.Fatalf("folded concat = %q, want %q", got, "0123456")
	}
}

// TestConcatInfiniteLeft: appending after an infinite stream never
// reaches the right operand, and consumption forces only what is
// demanded from the left.
func TestConcatInfiniteLeft(t *testing.T) {
	left, leftCalls := counting()
	right, rightCalls := counting()
	joined := left.Concat(right)
	if got := collect(joined.Take(4)); !slices.Equal(got, []int{1, 2, 3, 4}) {
		t.Fatalf("joined Take(4) = %v, want [1 2 3 4]", got)
	}
	if *leftCalls != 4 {
		t.Fatalf("left generator ran %d times, want 4", *leftCalls)
	}
	if *rightCalls != 0 {
		t.Fatalf("right generator ran %d times, want 0", *rightCalls)
	}
}

// TestConcatBothInfinite: concatenating two infinite streams is fine;
// downstream demand alone decides how much is forced.
func TestConcatBothInfinite(t *testing.T) {
	a, _ := counting()
	b, bCalls := counting()
	if got := collect(a.Concat(b).Take(2)); !slices.Equal(got, []int{1, 2}) {
		t.Fatalf("Take(2) = %v, want [1 2]", got)
	}
	if *bCalls != 0 {
		t.Fatalf("right generator ran %d times, want 0", *bCalls)
	}
}
