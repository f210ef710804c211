// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lazy

// UnfoldRight produces a stream from a seed state. step returns the
// next element, the successor state, and true to continue, or false to
// end the stream.
//
// Construction is lazy: step runs once per demanded position, so an
// unbounded state progression is fine as long as consumption is
// bounded (Take, FoldLeftEither, breaking out of All).
func UnfoldRight[S, T any](state S, step func(S) (T, S, bool)) Stream[T] {
	return suspend(func() Stream[T] {
		v, next, ok := step(state)
		if !ok {
			return Empty[T]()
		}
		return Cons(v, func() Stream[T] {
			return UnfoldRight(next, step)
		})
	})
}

// UnfoldLeft produces a stream from a seed state, driving step to
// exhaustion before returning. Each discovered element is prepended to
// the result, so elements appear in the reverse of discovery order.
//
// Eager by construction: unusable on unbounded state progressions
// (would not terminate). Use UnfoldRight for those.
func UnfoldLeft[S, T any](state S, step func(S) (S, T, bool)) Stream[T] {
	acc := Empty[T]()
	for {
		next, v, ok := step(state)
		if !ok {
			return acc
		}
		acc = Stream[T]{cell: Ready(&node[T]{head: v, tail: acc})}
		state = next
	}
}
