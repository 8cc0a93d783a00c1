// Copyright (c) 2021 Hirotsuna Mizuno. All rights reserved.
// Use of this source code is governed by the MIT license that can be found in
// the LICENSE file.

package waitqueue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLine(t *testing.T) {
	var l line
	require.Nil(t, l.pop())

	es := []*entry{newEntry(), newEntry(), newEntry()}
	for _, e := range es {
		l.add(e)
	}
	require.Equal(t, 3, l.n)

	require.Same(t, es[0], l.pop())
	l.add(es[0])

	head, n := l.take()
	assert.Equal(t, 3, n)
	assert.Zero(t, l.n)
	assert.Nil(t, l.pop())

	var got []*entry
	for e := head; e != nil; e = e.next {
		got = append(got, e)
	}
	assert.Equal(t, []*entry{es[1], es[2], es[0]}, got)
}

func TestEntry_transitions(t *testing.T) {
	e := newEntry()
	require.True(t, e.signal())
	assert.False(t, e.signal())
	assert.False(t, e.abandon())
	assert.False(t, e.close())
	_, ok := <-e.c
	assert.False(t, ok)

	e = newEntry()
	require.True(t, e.abandon())
	assert.False(t, e.signal())
	assert.False(t, e.close())
	select {
	case <-e.c:
		t.Fatal("abandoned entry channel closed")
	default:
	}

	e = newEntry()
	require.True(t, e.close())
	assert.False(t, e.signal())
	assert.Equal(t, stateClosed, e.state.Load())
}
