// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lazy

import (
	"fmt"
	"strings"
)

// Stream is a lazy, memoized, possibly infinite singly-linked sequence.
//
// A Stream value is a handle onto a shared lazy cell whose forced value
// is either nil (end of sequence) or a node pairing a head element with
// the tail Stream. Copying a Stream copies the handle, not the
// structure: forcing through one copy is visible through all copies,
// which is what keeps element production at most once per position.
//
// The zero value is the empty stream.
type Stream[T any] struct {
	cell *Memo[*node[T]]
}

// node is the non-empty variant: a head element and the lazy tail.
// Nodes are immutable after construction; all mutation lives in the
// memo cells.
type node[T any] struct {
	head T
	tail Stream[T]
}

// Empty returns the empty stream.
func Empty[T any]() Stream[T] {
	return Stream[T]{}
}

// Cons returns the stream with head followed by the stream produced by
// tail. The tail continuation runs at most once, on first demand; Cons
// itself evaluates nothing beyond head.
func Cons[T any](head T, tail func() Stream[T]) Stream[T] {
	return Stream[T]{cell: Ready(&node[T]{head: head, tail: suspend(tail)})}
}

// ConsMemo returns the stream with head followed by the stream held in
// the pre-built cell. Sharing the same cell across several ConsMemo
// calls shares the tail structure and its single forcing.
func ConsMemo[T any](head T, tail *Memo[Stream[T]]) Stream[T] {
	return Cons(head, tail.Force)
}

// Pure returns the one-element stream containing v.
func Pure[T any](v T) Stream[T] {
	return Stream[T]{cell: Ready(&node[T]{head: v})}
}

// suspend defers an entire stream computation, emptiness included.
// The produced stream resolves f at most once and caches the resolved
// node, so aliases of the suspension share one evaluation.
func suspend[T any](f func() Stream[T]) Stream[T] {
	return Stream[T]{cell: Deferred(func() *node[T] {
		return f().resolve()
	})}
}

// resolve forces the stream's own cell one step: nil means empty.
// It never forces the tail's cell.
func (s Stream[T]) resolve() *node[T] {
	if s.cell == nil {
		return nil
	}
	return s.cell.Force()
}

// Uncons deconstructs one step: (zero, empty, false) for the empty
// stream, or (head, tail, true) for a node. The returned tail is still
// lazy; only the receiver's own cell is forced.
func (s Stream[T]) Uncons() (T, Stream[T], bool) {
	n := s.resolve()
	if n == nil {
		var zero T
		return zero, Stream[T]{}, false
	}
	return n.head, n.tail, true
}

// First returns the head element, or false for the empty stream.
func (s Stream[T]) First() (T, bool) {
	v, _, ok := s.Uncons()
	return v, ok
}

// Rest returns the stream after the first element, or the empty stream
// if the receiver is empty. Forces one step of the receiver.
func (s Stream[T]) Rest() Stream[T] {
	_, rest, _ := s.Uncons()
	return rest
}

// IsEmpty reports whether the stream has no elements.
// Forces one step of the receiver.
func (s Stream[T]) IsEmpty() bool {
	return s.resolve() == nil
}

// Len counts the elements, forcing the entire stream.
// Diverges on an infinite stream; bound with Take first.
func (s Stream[T]) Len() int {
	n := 0
	for cur := s; !cur.IsEmpty(); cur = cur.Rest() {
		n++
	}
	return n
}

// String renders the already-forced prefix in parenthesized form,
// e.g. "(1 2 3)". It never forces: enumeration stops at the first
// unevaluated cell, so printing an infinite stream is safe.
func (s Stream[T]) String() string {
	var b strings.Builder
	b.WriteByte('(')
	first := true
	for cur := s; cur.cell != nil && cur.cell.Forced(); {
		n := cur.cell.Force()
		if n == nil {
			break
		}
		if !first {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%v", n.head)
		first = false
		cur = n.tail
	}
	b.WriteByte(')')
	return b.String()
}
