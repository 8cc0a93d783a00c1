// Copyright (c) 2021 Hirotsuna Mizuno. All rights reserved.
// Use of this source code is governed by the MIT license that can be found in
// the LICENSE file.

/*
Package waitqueue provides a minimal FIFO wait queue, a building block for
blocking synchronization primitives such as semaphores and condition variables.

A go-routine that wants to wait first registers with Queue.QueueWaitEvent and
then blocks on the returned WaitEvent. Other go-routines wake registered
waiters one at a time with Queue.Signal, oldest first, or all at once with
Queue.Broadcast. Because registering and blocking are two steps, a waiter can
register while holding its own lock, release the lock, and only then block,
without losing a wakeup sent in between:

	mu.Lock()
	for !ready {
		ev := q.QueueWaitEvent()
		mu.Unlock()
		if err := ev.Wait(); err != nil {
			return err // queue closed
		}
		mu.Lock()
	}
	mu.Unlock()

A WaitEvent given up with WaitEvent.Abandon, or by a canceled
WaitEvent.WaitContext, is skipped by Signal and Broadcast right away. A
WaitEvent that is simply dropped is skipped only after the garbage collector
has collected it; until then Signal may deliver its wakeup to the dropped
handle, so always call Abandon on a WaitEvent you will not wait on.

Closing the Queue releases all remaining waiters with ErrClosed. A Queue that
is dropped without Close is closed once it has been collected.

The queue protects only itself. State that decides whether to wait must be
guarded by the caller.
*/
package waitqueue
