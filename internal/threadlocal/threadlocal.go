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

// Package threadlocal provides a goroutine-identity-keyed value registry.
//
// Go has no goroutine-local storage and no goroutine-exit hook, so values
// are keyed by the numeric goroutine ID and removed either explicitly via
// Delete or when the owning Store is reset. A registered destructor runs
// when an entry is removed.
//
// Each goroutine only ever reads and writes its own entry, so entries
// themselves need no synchronization; the registry map is the only shared
// structure.
package threadlocal

import (
	"errors"
	"runtime"
	"strconv"
	"sync"
	"sync/atomic"
)

// ErrStoreExhausted is returned by Set when the registry has reached its
// capacity bound. Callers are expected to degrade gracefully rather than
// fail the surrounding operation.
var ErrStoreExhausted = errors.New("threadlocal: store capacity exhausted")

// DefaultCapacity bounds the number of goroutines a Store will track.
// The bound exists so that a registry leak caused by goroutines that never
// call Delete manifests as a recoverable error instead of unbounded growth.
const DefaultCapacity = 1 << 20

type entry struct {
	value      any
	destructor func(any)
}

// Store is a registry of per-goroutine values.
type Store struct {
	entries  sync.Map // goroutine ID -> *entry
	count    atomic.Int64
	capacity int64
}

// New creates a Store tracking at most capacity goroutines. A capacity of
// zero or less selects DefaultCapacity.
func New(capacity int64) *Store {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Store{capacity: capacity}
}

// Get returns the calling goroutine's value, if one has been set.
func (s *Store) Get() (any, bool) {
	v, ok := s.entries.Load(ID())
	if !ok {
		return nil, false
	}
	return v.(*entry).value, true
}

// Set stores a value for the calling goroutine, replacing any existing
// value without running its destructor. The destructor, if non-nil, runs
// when the entry is removed. Returns ErrStoreExhausted when the capacity
// bound has been reached.
func (s *Store) Set(value any, destructor func(any)) error {
	id := ID()
	e := &entry{value: value, destructor: destructor}
	if _, exists := s.entries.Load(id); exists {
		s.entries.Store(id, e)
		return nil
	}
	if s.count.Add(1) > s.capacity {
		s.count.Add(-1)
		return ErrStoreExhausted
	}
	s.entries.Store(id, e)
	return nil
}

// Delete removes the calling goroutine's entry and runs its destructor.
// It is a no-op if no entry exists.
func (s *Store) Delete() {
	v, ok := s.entries.LoadAndDelete(ID())
	if !ok {
		return
	}
	s.count.Add(-1)
	e := v.(*entry)
	if e.destructor != nil {
		e.destructor(e.value)
	}
}

// Len returns the number of goroutines currently tracked.
func (s *Store) Len() int {
	return int(s.count.Load())
}

// ID returns the numeric ID of the calling goroutine, parsed from the
// first line of the goroutine's stack trace ("goroutine N [running]:").
func ID() uint64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	stack := buf[:n]

	// Skip "goroutine " and parse digits up to the following space.
	const prefix = "goroutine "
	if len(stack) <= len(prefix) {
		return 0
	}
	stack = stack[len(prefix):]
	i := 0
	for i < len(stack) && stack[i] != ' ' {
		i++
	}
	id, err := strconv.ParseUint(string(stack[:i]), 10, 64)
	if err != nil {
		return 0
	}
	return id
}
