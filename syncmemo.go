// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lazy

import (
	"code.hybscloud.com/atomix"
	"code.hybscloud.com/iox"
)

// SyncMemo cell states. Transitions only move forward except on thunk
// panic, which resets syncBusy to syncNew so a later Force may retry.
const (
	syncNew  uint32 = iota // thunk not yet claimed
	syncBusy               // a forcer is running the thunk
	syncDone               // value cached
)

// SyncMemo is the concurrent variant of Memo: a compute-once lazy cell
// safe for forcing from multiple goroutines. The first forcer to claim
// the cell runs the thunk; concurrent forcers wait out the in-flight
// computation with adaptive backoff (iox.Backoff) and read the cached
// value, so the thunk still executes at most once.
type SyncMemo[T any] struct {
	state atomix.Uint32
	thunk func() T
	value T
}

// SyncDeferred constructs an unevaluated concurrent cell wrapping thunk.
func SyncDeferred[T any](thunk func() T) *SyncMemo[T] {
	return &SyncMemo[T]{thunk: thunk}
}

// SyncReady constructs an already-evaluated concurrent cell.
func SyncReady[T any](value T) *SyncMemo[T] {
	m := &SyncMemo[T]{value: value}
	m.state.StoreRelease(syncDone)
	return m
}

// Force returns the cached value, claiming and running the thunk on the
// first call. Losers of the claim race wait on the winner via
// iox.Backoff rather than computing redundantly.
//
// If the thunk panics, the panic propagates to the claiming forcer, the
// cell reverts to unevaluated, and any forcer (including waiters of the
// failed attempt) may retry.
func (m *SyncMemo[T]) Force() T {
	var bo iox.Backoff
	for {
		switch m.state.LoadAcquire() {
		case syncDone:
			return m.value
		case syncNew:
			if m.state.CompareAndSwap(syncNew, syncBusy) {
				return m.run()
			}
		}
		bo.Wait()
	}
}

// run executes the thunk under an exclusive syncBusy claim.
// StoreRelease on the state word pairs with the LoadAcquire in Force
// and Forced: a reader that observes syncDone is ordered after the
// write of value, so it reads a fully published cell.
func (m *SyncMemo[T]) run() T {
	committed := false
	defer func() {
		if !committed {
			m.state.StoreRelease(syncNew)
		}
	}()
	v := m.thunk()
	m.value = v
	m.thunk = nil
	committed = true
	m.state.StoreRelease(syncDone)
	return v
}

// Forced reports whether the cell holds a cached value.
// Never triggers or waits on evaluation.
func (m *SyncMemo[T]) Forced() bool {
	return m.state.LoadAcquire() == syncDone
}
