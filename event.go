// Copyright (c) 2021 Hirotsuna Mizuno. All rights reserved.
// Use of this source code is governed by the MIT license that can be found in
// the LICENSE file.

package waitqueue

import (
	"context"
	"runtime"
	"sync/atomic"
)

// WaitEvent is a single-use handle for one registration in a Queue, returned
// by Queue.QueueWaitEvent. Exactly one of Wait, WaitContext or Abandon may be
// called on it.
//
// A WaitEvent that is dropped without any of them is abandoned only when the
// garbage collector finalizes it. Until then Signal still counts it as a live
// waiter and the wakeup is lost; call Abandon instead of dropping it.
type WaitEvent struct {
	e        *entry
	queue    string
	consumed atomic.Bool
}

func newWaitEvent(e *entry, queue string) *WaitEvent {
	ev := &WaitEvent{e: e, queue: queue}
	// A WaitEvent dropped without being consumed is abandoned, so that
	// Signal does not count it as woken.
	runtime.SetFinalizer(ev, (*WaitEvent).finalize)

	return ev
}

func (ev *WaitEvent) consume() {
	if ev.consumed.Swap(true) {
		panic("waitqueue: WaitEvent used more than once")
	}
	runtime.SetFinalizer(ev, nil)
}

func (ev *WaitEvent) finalize() {
	if !ev.consumed.Load() {
		ev.e.abandon()
	}
}

// Wait blocks until a wakeup is delivered by Signal or Broadcast, and then
// returns nil. If the queue is closed before a wakeup is delivered, it returns
// an error wrapping ErrClosed.
//
// Wait consumes the WaitEvent. Calling it again panics.
func (ev *WaitEvent) Wait() error {
	ev.consume()
	<-ev.e.c

	return ev.result()
}

// WaitContext is the same as Wait, except that it gives up when ctx is done
// before a wakeup is delivered. In that case the WaitEvent is abandoned and a
// *CanceledError is returned. A wakeup delivered before the cancellation is
// observed takes precedence, and WaitContext returns nil.
func (ev *WaitEvent) WaitContext(ctx context.Context) error {
	ev.consume()
	select {
	case <-ev.e.c:
	case <-ctx.Done():
		if ev.e.abandon() {
			return &CanceledError{err: ctx.Err()}
		}
		// signaled or closed concurrently; c is being closed
		<-ev.e.c
	}

	return ev.result()
}

// Abandon discards the WaitEvent without waiting. The registration stays in
// the queue until a Signal or Broadcast reaches it and skips it. Abandon
// consumes the WaitEvent; calling it on a consumed WaitEvent does nothing.
func (ev *WaitEvent) Abandon() {
	if ev.consumed.Swap(true) {
		return
	}
	runtime.SetFinalizer(ev, nil)
	ev.e.abandon()
}

func (ev *WaitEvent) result() error {
	if ev.e.state.Load() == stateClosed {
		return closedError(ev.queue)
	}
	return nil
}
