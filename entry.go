// Copyright (c) 2021 Hirotsuna Mizuno. All rights reserved.
// Use of this source code is governed by the MIT license that can be found in
// the LICENSE file.

package waitqueue

import (
	"sync/atomic"
)

// entry states. Only transitions out of statePending are allowed, and only
// one of them succeeds.
const (
	statePending int32 = iota
	stateSignaled
	stateAbandoned
	stateClosed
)

// entry is a one-shot wakeup channel. The queue holds the sending side
// through the line; the WaitEvent holds the receiving side.
type entry struct {
	c     chan struct{}
	state atomic.Int32
	next  *entry
}

func newEntry() *entry {
	return &entry{c: make(chan struct{})}
}

// signal delivers the wakeup. It reports false if the receiving side has
// already gone away or the entry was closed.
func (e *entry) signal() bool {
	if !e.state.CompareAndSwap(statePending, stateSignaled) {
		return false
	}
	close(e.c)

	return true
}

// close discards the sending side without delivering a wakeup.
func (e *entry) close() bool {
	if !e.state.CompareAndSwap(statePending, stateClosed) {
		return false
	}
	close(e.c)

	return true
}

// abandon discards the receiving side. Nobody reads c afterwards, so it is
// left open.
func (e *entry) abandon() bool {
	return e.state.CompareAndSwap(statePending, stateAbandoned)
}
