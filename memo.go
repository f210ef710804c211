// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lazy

// Memo is a single-assignment lazy cell. It holds either an unevaluated
// thunk producing a T, or the cached T from the first Force.
//
// The thunk is invoked at most once across the cell's lifetime, no matter
// how many handles share the cell or how many times Force is called.
// Single-goroutine use assumed; see SyncMemo for the concurrent variant.
type Memo[T any] struct {
	thunk func() T
	value T
	done  bool
}

// Deferred constructs an unevaluated cell wrapping thunk.
// The thunk runs only on the first Force, never at construction.
func Deferred[T any](thunk func() T) *Memo[T] {
	return &Memo[T]{thunk: thunk}
}

// Ready constructs an already-evaluated cell holding value.
func Ready[T any](value T) *Memo[T] {
	return &Memo[T]{value: value, done: true}
}

// Force returns the cached value, invoking the thunk on the first call.
// The thunk reference is dropped after evaluation so captured state
// becomes collectible.
//
// If the thunk panics, the panic propagates and the cell stays
// unevaluated: a later Force retries the thunk.
func (m *Memo[T]) Force() T {
	if m.done {
		return m.value
	}
	v := m.thunk()
	m.value = v
	m.thunk = nil
	m.done = true
	return v
}

// Forced reports whether the cell has been evaluated.
// Never triggers evaluation.
func (m *Memo[T]) Forced() bool {
	return m.done
}
