// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lazy

// FromFunc lifts a pull generator into a stream. next reports the next
// element, or false on exhaustion.
//
// Every call to next is deferred until the corresponding position is
// first demanded, and memoization guarantees at most one call per
// position no matter how many handles read the stream: demanding n
// elements calls next exactly n times, with no probe past the last
// demanded position.
func FromFunc[T any](next func() (T, bool)) Stream[T] {
	var gen func() Stream[T]
	gen = func() Stream[T] {
		v, ok := next()
		if !ok {
			return Empty[T]()
		}
		return Cons(v, gen)
	}
	return suspend(gen)
}

// Of returns the stream of the given elements in order.
// The spine is still built lazily over the backing slice.
func Of[T any](elems ...T) Stream[T] {
	return fromSlice(elems, 0)
}

func fromSlice[T any](elems []T, i int) Stream[T] {
	if i >= len(elems) {
		return Empty[T]()
	}
	return Cons(elems[i], func() Stream[T] {
		return fromSlice(elems, i+1)
	})
}
