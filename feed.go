// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lazy

import (
	"code.hybscloud.com/atomix"
	"code.hybscloud.com/iox"
	"code.hybscloud.com/lfq"
)

// defaultFeedCapacity is the bounded capacity used when NewFeed is
// given a non-positive capacity. 4 keeps the SPSC ring within a single
// cache line while amortizing producer-side cached-index refresh.
const defaultFeedCapacity = 4

// Feed is the producer half of a bridge from a concurrent producer
// into a lazy Stream. Transport is a bounded lock-free SPSC queue:
// exactly one producer goroutine pushes, and the paired Stream is the
// single consumer.
//
// The Stream side stays lazy: nothing is pulled from the queue until a
// stream position is demanded, and each pulled element is memoized in
// the stream spine, so re-reading the stream replays cached elements
// rather than consuming the queue again.
type Feed[T any] struct {
	queue    lfq.SPSC[T]
	closed   atomix.Uint32
	pushSlot T
}

// NewFeed creates a feed with the given queue capacity and the lazy
// stream consuming it. A non-positive capacity selects the default.
func NewFeed[T any](capacity int) (*Feed[T], Stream[T]) {
	if capacity <= 0 {
		capacity = defaultFeedCapacity
	}
	f := &Feed[T]{}
	f.queue.Init(capacity)
	return f, FromFunc(f.pull)
}

// Push offers v to the stream. Non-blocking: returns iox.ErrWouldBlock
// when the bounded queue is full (the consumer has not demanded enough
// positions yet).
func (f *Feed[T]) Push(v T) error {
	f.pushSlot = v
	return f.queue.Enqueue(&f.pushSlot)
}

// PushWait offers v, waiting past the iox.ErrWouldBlock boundary with
// adaptive backoff until the consumer makes room.
func (f *Feed[T]) PushWait(v T) {
	var bo iox.Backoff
	for f.Push(v) != nil {
		bo.Wait()
	}
}

// Close marks the feed exhausted. Elements pushed before Close are
// still delivered; after the queue drains the stream ends.
func (f *Feed[T]) Close() {
	f.closed.Add(1)
}

// pull is the stream-side generator: waits with adaptive backoff until
// an element arrives or the feed is closed and drained.
func (f *Feed[T]) pull() (T, bool) {
	var bo iox.Backoff
	for {
		v, err := f.queue.Dequeue()
		if err == nil {
			return v, true
		}
		if f.closed.Load() != 0 {
			// Elements pushed between the failed dequeue and the close
			// observation are still in the queue; drain before ending.
			if v, err = f.queue.Dequeue(); err == nil {
				return v, true
			}
			var zero T
			return zero, false
		}
		bo.Wait()
	}
}
