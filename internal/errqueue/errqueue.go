// Copyright (c) 2025 Jeremy Hahn
// Copyright (c) 2025 Automate The Things, LLC
//
// This file is part of go-fips-indicator.
//
// go-fips-indicator is dual-licensed:
//
// 1. GNU Affero General Public License v3.0 (AGPL-3.0)
//    See LICENSE file or visit https://www.gnu.org/licenses/agpl-3.0.html
//
// 2. Commercial License
//    Contact licensing@automatethethings.com for commercial licensing options.

// Package errqueue provides a per-goroutine transient error queue, the
// analogue of a global crypto error stack. The service indicator records
// configuration probe failures here and clears the queue before returning
// so that probing never pollutes a caller's own error reporting.
package errqueue

import (
	"sync"

	"github.com/jeremyhahn/go-fips-indicator/internal/threadlocal"
)

var queues sync.Map // goroutine ID -> []error

// Put appends an error to the calling goroutine's queue.
func Put(err error) {
	if err == nil {
		return
	}
	id := threadlocal.ID()
	var q []error
	if v, ok := queues.Load(id); ok {
		q = v.([]error)
	}
	queues.Store(id, append(q, err))
}

// Last returns the most recently recorded error for the calling goroutine,
// or nil if the queue is empty.
func Last() error {
	v, ok := queues.Load(threadlocal.ID())
	if !ok {
		return nil
	}
	q := v.([]error)
	if len(q) == 0 {
		return nil
	}
	return q[len(q)-1]
}

// Len returns the number of queued errors for the calling goroutine.
func Len() int {
	v, ok := queues.Load(threadlocal.ID())
	if !ok {
		return 0
	}
	return len(v.([]error))
}

// Clear discards all queued errors for the calling goroutine.
func Clear() {
	queues.Delete(threadlocal.ID())
}
