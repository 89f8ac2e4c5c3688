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

//go:build fips

package indicator

import (
	"math"

	"github.com/jeremyhahn/go-fips-indicator/internal/errqueue"
	"github.com/jeremyhahn/go-fips-indicator/internal/threadlocal"
)

// serviceState is the per-goroutine indicator state. It is only ever read
// and written by its owning goroutine.
type serviceState struct {
	// lockDepth records the number of active suppression brackets. The
	// counter can only advance when it is zero.
	lockDepth uint64

	// counter is the indicator state. It is incremented when an approved
	// service completes.
	counter uint64
}

var states = threadlocal.New(0)

// getState returns the calling goroutine's indicator state, creating it on
// first use. FIPS 140-3 requires the indicator to be maintained whether or
// not the caller ever queries it, so creation is lazy inside every approved
// service. Returns nil when state cannot be created; callers degrade to
// not-approved.
func getState() *serviceState {
	if v, ok := states.Get(); ok {
		return v.(*serviceState)
	}
	st := &serviceState{}
	if err := states.Set(st, nil); err != nil {
		errqueue.Put(ErrStateUnavailable)
		return nil
	}
	return st
}

// IsFIPSBuild reports whether the validated state machine is compiled in.
func IsFIPSBuild() bool {
	return true
}

// BeforeCall returns the calling goroutine's approval counter. Call sites
// snapshot it immediately before a cryptographic operation.
func BeforeCall() uint64 {
	return counterValue()
}

// AfterCall returns the calling goroutine's approval counter. Call sites
// snapshot it immediately after a cryptographic operation; the operation
// was approved iff the value differs from the BeforeCall snapshot.
func AfterCall() uint64 {
	return counterValue()
}

// Approved reports whether a before/after snapshot pair signals an approved
// operation.
func Approved(before, after uint64) bool {
	return before != after
}

func counterValue() uint64 {
	st := getState()
	if st == nil {
		return 0
	}
	return st.counter
}

// updateState advances the approval counter by exactly one, unless a
// suppression bracket is active or state is unavailable.
func updateState() {
	st := getState()
	if st != nil && st.lockDepth == 0 {
		st.counter++
	}
}

// Lock opens a suppression bracket: approval signals from primitives
// invoked before the matching Unlock do not advance the counter.
// Lock and Unlock must not under/overflow in normal operation; an overflow
// can only be reached through unbalanced calls and panics rather than
// continuing with a corrupted nesting depth.
func Lock() {
	st := getState()
	if st == nil {
		return
	}
	if st.lockDepth == math.MaxUint64 {
		panic("indicator: lock depth overflow")
	}
	st.lockDepth++
}

// Unlock closes the innermost suppression bracket. An Unlock with no
// matching Lock signals a defect in the surrounding cryptographic code and
// panics rather than risk a false approval claim.
func Unlock() {
	st := getState()
	if st == nil {
		return
	}
	if st.lockDepth == 0 {
		panic("indicator: unlock without matching lock")
	}
	st.lockDepth--
}

// ReleaseState discards the calling goroutine's indicator state. Goroutines
// owned by long-lived worker pools should call it before returning to the
// pool; state is otherwise retained for the life of the goroutine ID.
func ReleaseState() {
	states.Delete()
}
