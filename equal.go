// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lazy

// Equal reports whether two streams hold the same elements in the same
// order. Element-by-element and short-circuiting: comparison stops at
// the first mismatch or the first exhausted side.
//
// Equality is a free function rather than a method because the element
// type must be comparable; inequality is the negation.
//
// Comparing two infinite streams with no finite point of difference
// does not terminate. Bound with Take when either side may be infinite.
func Equal[T comparable](a, b Stream[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc is Equal with an explicit element comparison, for element
// types that are not comparable or need non-standard equality.
func EqualFunc[T any](a, b Stream[T], eq func(T, T) bool) bool {
	for {
		av, arest, aok := a.Uncons()
		bv, brest, bok := b.Uncons()
		if !aok || !bok {
			return aok == bok
		}
		if !eq(av, bv) {
			return false
		}
		a, b = arest, brest
	}
}
