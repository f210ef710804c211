// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lazy

import (
	"code.hybscloud.com/kont"
)

// FoldLeft reduces the stream strictly, left to right:
// seed = combine(seed, head) per element, returning the final seed.
// Diverges on an infinite stream; use FoldLeftEither or Take to bound.
func FoldLeft[T, A any](s Stream[T], seed A, combine func(A, T) A) A {
	for {
		head, rest, ok := s.Uncons()
		if !ok {
			return seed
		}
		seed = combine(seed, head)
		s = rest
	}
}

// FoldLeftEither reduces left to right with early termination.
// step returns Right(acc) to continue folding with acc, or Left(final)
// to stop immediately with final; the rest of the stream, however long
// or infinite, is never forced past the stopping element.
func FoldLeftEither[T, A any](s Stream[T], seed A, step func(A, T) kont.Either[A, A]) A {
	for {
		head, rest, ok := s.Uncons()
		if !ok {
			return seed
		}
		e := step(seed, head)
		if final, stop := e.GetLeft(); stop {
			return final
		}
		seed, _ = e.GetRight()
		s = rest
	}
}

// FoldRight reduces the stream right-associatively with a strict
// accumulator: combine(head, FoldRight(rest, seed, combine)).
//
// Strict in the accumulator, so it forces the entire stream before the
// outermost combine runs: finite streams only. FoldRightLazy is the
// form safe on infinite streams.
func FoldRight[T, A any](s Stream[T], seed A, combine func(T, A) A) A {
	head, rest, ok := s.Uncons()
	if !ok {
		return seed
	}
	return combine(head, FoldRight(rest, seed, combine))
}

// FoldRightLazy reduces right-associatively with a deferred
// accumulator: combine receives the folded rest as an unevaluated cell
// and may return without forcing it, terminating the fold early by
// construction. This is the primary right fold and the only one usable
// on infinite streams.
func FoldRightLazy[T, A any](s Stream[T], seed A, combine func(T, *Memo[A]) A) A {
	head, rest, ok := s.Uncons()
	if !ok {
		return seed
	}
	return combine(head, Deferred(func() A {
		return FoldRightLazy(rest, seed, combine)
	}))
}
