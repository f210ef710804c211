// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lazy

import (
	"iter"
)

// All exposes the stream to for-range consumption, advancing one
// memoized step per element. Elements already forced are replayed from
// cache; new positions are forced on demand.
//
// Ranging over an infinite stream without breaking out does not
// terminate; stopping early (break, or a bounding combinator upstream)
// is the caller's responsibility, consistent with the lazy-pull design.
func (s Stream[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			head, rest, ok := s.Uncons()
			if !ok || !yield(head) {
				return
			}
			s = rest
		}
	}
}

// FromSeq lifts a Go iterator into a stream via its pull form.
// Each pull is deferred until the corresponding position is demanded
// and happens at most once per position; the pull iterator is released
// when the sequence reports exhaustion.
func FromSeq[T any](seq iter.Seq[T]) Stream[T] {
	next, stop := iter.Pull(seq)
	return FromFunc(func() (T, bool) {
		v, ok := next()
		if !ok {
			stop()
		}
		return v, ok
	})
}
