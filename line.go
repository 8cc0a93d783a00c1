// Copyright (c) 2021 Hirotsuna Mizuno. All rights reserved.
// Use of this source code is governed by the MIT license that can be found in
// the LICENSE file.

package waitqueue

// line is the FIFO of registered entries. It is not safe for concurrent use;
// Queue guards it with its mutex.
type line struct {
	head, tail *entry
	n          int
}

func (l *line) add(e *entry) {
	if l.head == nil {
		l.head = e
	} else {
		l.tail.next = e
	}
	l.tail = e
	l.n++
}

// pop removes and returns the head entry, or nil if the line is empty.
func (l *line) pop() *entry {
	e := l.head
	if e == nil {
		return nil
	}
	l.head = e.next
	if l.head == nil {
		l.tail = nil
	}
	e.next = nil
	l.n--

	return e
}

// take detaches all entries at once and returns the old head. The detached
// entries remain chained through next in registration order.
func (l *line) take() (*entry, int) {
	head, n := l.head, l.n
	l.head, l.tail, l.n = nil, nil, 0

	return head, n
}
