// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package lazy provides a lazy, memoized, possibly infinite stream type
// built on a single-assignment lazy cell.
//
// A [Stream] is either empty or a head element paired with a memoized
// tail. Every element and every tail is computed on demand, at most
// once, regardless of how many handles share the structure.
//
// # Architecture
//
//   - Cells: [Memo] is the single-goroutine compute-once cell; [SyncMemo] hardens
//     the same contract for concurrent forcing with [code.hybscloud.com/atomix]
//     state transitions and [code.hybscloud.com/iox.Backoff] waiting.
//   - Streams: [Stream] values are handles onto shared cells; copying a handle
//     shares structure and its single forcing.
//   - Bridge: [Feed] adapts a concurrent producer into a Stream over a bounded
//     lock-free SPSC queue from [code.hybscloud.com/lfq].
//   - Early exit: [FoldLeftEither] short-circuits via [code.hybscloud.com/kont.Either].
//
// # API Topologies
//
//   - Construction: [Empty], [Cons], [ConsMemo], [Pure], [Of], [FromFunc],
//     [FromSeq], [UnfoldRight], [UnfoldLeft], [NewFeed].
//   - Deconstruction: [Stream.Uncons], [Stream.First], [Stream.Rest],
//     [Stream.IsEmpty], [Stream.Len].
//   - Combinators: [Stream.Take], [Stream.Drop], [Map], [Stream.Concat].
//   - Folds: [FoldLeft], [FoldLeftEither], [FoldRight], [FoldRightLazy].
//   - Equality: [Equal], [EqualFunc] (free functions; the element type
//     bound cannot be expressed as a conditional method).
//   - Iteration: [Stream.All] for for-range consumption, [FromSeq] for the
//     inverse lift.
//
// # Laziness Contract
//
// Take, Map, Concat, FromFunc, FromSeq, and UnfoldRight force nothing at
// call time and exactly as much as consumption demands afterwards.
// Drop, UnfoldLeft, Len, the folds, and Equal are strict to the extent
// their results require; applying them unbounded to an infinite stream
// does not terminate. That is the accepted trade of the design, not an
// error condition — bound with Take or stop pulling.
//
// If a user thunk or generator panics, the panic propagates to the
// forcing caller and the affected cell stays unevaluated, so a later
// force retries.
//
// # Example
//
//	fib := lazy.UnfoldRight([2]int{0, 1}, func(s [2]int) (int, [2]int, bool) {
//		return s[0] + s[1], [2]int{s[1], s[0] + s[1]}, true
//	})
//	for v := range fib.Take(5).All() {
//		fmt.Println(v) // 1 2 3 5 8
//	}
package lazy
