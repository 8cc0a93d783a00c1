// Copyright (c) 2021 Hirotsuna Mizuno. All rights reserved.
// Use of this source code is governed by the MIT license that can be found in
// the LICENSE file.

package waitqueue

import (
	"runtime"
	"sync"

	"github.com/sirupsen/logrus"
)

// Queue is a FIFO queue of registered waiters. Waiters register with
// QueueWaitEvent and block on the returned WaitEvent; other go-routines wake
// them with Signal or Broadcast.
type Queue struct {
	line   line
	closed bool
	mu     sync.Mutex

	name string
	log  logrus.FieldLogger
}

// New creates a new Queue with the default configuration.
func New() *Queue {
	return NewWithConfig(nil)
}

// NewWithConfig creates a new Queue with the specified configuration. If conf
// is nil, the default configuration will be used.
func NewWithConfig(conf *Config) *Queue {
	if conf == nil {
		conf = &Config{}
	}

	q := &Queue{
		name: conf.Name,
		log:  conf.logger(),
	}
	// Entries do not refer back to the queue, so a dropped queue can be
	// collected while waiters are blocked. Release them with ErrClosed.
	runtime.SetFinalizer(q, (*Queue).Close)

	return q
}

// QueueWaitEvent registers a new waiter at the end of the queue and returns
// the WaitEvent to block on. It never blocks.
//
// Registering and blocking are separate steps so that a caller can register
// while holding its own lock, release the lock, and then call Wait without
// missing a Signal sent in between.
//
// If the queue is already closed, Wait on the returned WaitEvent fails with
// ErrClosed.
func (q *Queue) QueueWaitEvent() *WaitEvent {
	e := newEntry()
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		e.close()
	} else {
		q.line.add(e)
		q.mu.Unlock()
	}

	return newWaitEvent(e, q.name)
}

// Signal wakes the oldest live waiter in the queue and reports whether one was
// woken. Abandoned waiters found at the head of the queue are removed and
// skipped. It returns false without blocking if no live waiter is queued.
func (q *Queue) Signal() bool {
	var pruned int
	defer func() {
		if pruned != 0 {
			q.log.WithField("pruned", pruned).Debug("signal skipped abandoned waiters")
		}
	}()
	for {
		q.mu.Lock()
		if q.closed {
			q.mu.Unlock()
			return false
		}
		e := q.line.pop()
		q.mu.Unlock()
		if e == nil {
			return false
		}
		if e.signal() {
			return true
		}
		pruned++
	}
}

// Broadcast wakes all waiters queued at the time of the call, in registration
// order, and returns the number of waiters woken. Waiters registered while
// Broadcast is running are not woken by it. Abandoned waiters are removed and
// not counted.
func (q *Queue) Broadcast() int {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return 0
	}
	head, n := q.line.take()
	q.mu.Unlock()

	woken := 0
	for e := head; e != nil; {
		next := e.next
		e.next = nil
		if e.signal() {
			woken++
		}
		e = next
	}
	if pruned := n - woken; pruned != 0 {
		q.log.WithFields(logrus.Fields{
			"woken":  woken,
			"pruned": pruned,
		}).Debug("broadcast skipped abandoned waiters")
	}

	return woken
}

// Close closes the queue. Every waiter still queued is released: a go-routine
// blocked in Wait, or calling it later, gets an error wrapping ErrClosed.
// It returns the number of live waiters released. After Close, Signal reports
// false, Broadcast reports 0, and WaitEvents created by QueueWaitEvent fail
// immediately. Closing a closed queue does nothing and returns 0. A queue that
// becomes unreachable without Close is closed by its finalizer.
func (q *Queue) Close() int {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return 0
	}
	q.closed = true
	head, n := q.line.take()
	q.mu.Unlock()

	released := 0
	for e := head; e != nil; {
		next := e.next
		e.next = nil
		if e.close() {
			released++
		}
		e = next
	}
	q.log.WithFields(logrus.Fields{
		"released": released,
		"pruned":   n - released,
	}).Debug("queue closed")

	return released
}

// Length returns the current length of the queue. Abandoned waiters that have
// not yet been reached by Signal or Broadcast are included in the count.
func (q *Queue) Length() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.line.n
}
