// Copyright (c) 2021 Hirotsuna Mizuno. All rights reserved.
// Use of this source code is governed by the MIT license that can be found in
// the LICENSE file.

package waitqueue

import (
	"github.com/sirupsen/logrus"
)

// Config is the set of configuration parameters for Queue. The zero value is
// a valid configuration.
type Config struct {
	// Name identifies the queue in log entries and in errors returned by
	// Wait. Optional.
	Name string

	// Logger receives debug logs about pruned abandoned waiters and waiters
	// released by Close. If nil, the logrus standard logger is used.
	Logger logrus.FieldLogger
}

func (conf *Config) logger() logrus.FieldLogger {
	l := conf.Logger
	if l == nil {
		l = logrus.StandardLogger()
	}
	if conf.Name != "" {
		l = l.WithField("queue", conf.Name)
	}

	return l
}
