// Copyright (c) 2021 Hirotsuna Mizuno. All rights reserved.
// Use of this source code is governed by the MIT license that can be found in
// the LICENSE file.

package waitqueue

import (
	stderrors "errors"
	"fmt"

	"github.com/pkg/errors"
)

// ErrClosed is the error returned by Wait and WaitContext when the queue was
// closed before a wakeup was delivered to the WaitEvent. The returned error
// wraps ErrClosed, so test it with errors.Is.
var ErrClosed = stderrors.New("wait queue closed")

// CanceledError is the error returned by WaitContext when the passed context is
// done before a wakeup is delivered. The WaitEvent is abandoned and will be
// skipped by Signal and Broadcast.
type CanceledError struct{ err error }

func (e CanceledError) Error() string {
	return fmt.Sprintf("canceled in queue: %s", e.err)
}
func (e CanceledError) String() string { return e.Error() }
func (e CanceledError) Unwrap() error  { return e.err }

func closedError(name string) error {
	if name == "" {
		return errors.WithStack(ErrClosed)
	}
	return errors.Wrapf(ErrClosed, "queue %q", name)
}
