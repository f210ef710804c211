// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lazy

// Take returns the first n elements as a new stream. n <= 0 yields the
// empty stream without touching the receiver.
//
// Fully lazy: Take forces nothing at call time, and consuming k of the
// returned elements forces exactly k positions of the receiver.
func (s Stream[T]) Take(n int) Stream[T] {
	if n <= 0 {
		return Empty[T]()
	}
	return suspend(func() Stream[T] {
		head, rest, ok := s.Uncons()
		if !ok {
			return Empty[T]()
		}
		return Cons(head, func() Stream[T] {
			return rest.Take(n - 1)
		})
	})
}

// Drop returns the stream after the first n elements. n <= 0 returns
// the receiver itself; dropping past the end yields the empty stream.
//
// Eager: the n skipped positions are forced immediately, since the
// caller has already committed to skipping exactly n.
func (s Stream[T]) Drop(n int) Stream[T] {
	for ; n > 0; n-- {
		_, rest, ok := s.Uncons()
		if !ok {
			return Empty[T]()
		}
		s = rest
	}
	return s
}

// Map returns the stream of f applied to each element. Fully lazy: f
// runs once per demanded position of the result.
func Map[T, R any](s Stream[T], f func(T) R) Stream[R] {
	return suspend(func() Stream[R] {
		head, rest, ok := s.Uncons()
		if !ok {
			return Empty[R]()
		}
		return Cons(f(head), func() Stream[R] {
			return Map(rest, f)
		})
	})
}

// Concat returns the stream of s followed by next. Lazy on both sides:
// next is never touched while s still has elements, so appending after
// an infinite stream is well-defined (next is simply unreachable).
func (s Stream[T]) Concat(next Stream[T]) Stream[T] {
	return suspend(func() Stream[T] {
		head, rest, ok := s.Uncons()
		if !ok {
			return next
		}
		return Cons(head, func() Stream[T] {
			return rest.Concat(next)
		})
	})
}
