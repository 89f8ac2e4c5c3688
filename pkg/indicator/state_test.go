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
	"crypto"
	"math"
	"sync"
	"testing"

	"github.com/jeremyhahn/go-fips-indicator/internal/threadlocal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runOnFreshGoroutine executes fn on a new goroutine and waits for it.
// Indicator state is goroutine-confined, so tests that must start from a
// clean state cannot share the test runner's goroutine.
func runOnFreshGoroutine(fn func()) {
	done := make(chan struct{})
	go func() {
		defer close(done)
		defer ReleaseState()
		fn()
	}()
	<-done
}

func TestIsFIPSBuild(t *testing.T) {
	assert.True(t, IsFIPSBuild())
}

func TestBeforeAfterIdle(t *testing.T) {
	runOnFreshGoroutine(func() {
		before := BeforeCall()
		after := AfterCall()
		assert.Equal(t, before, after, "counter must not move without a predicate call")
		assert.False(t, Approved(before, after))
	})
}

func TestUpdateStateAdvancesByOne(t *testing.T) {
	runOnFreshGoroutine(func() {
		before := BeforeCall()
		updateState()
		after := AfterCall()
		assert.Equal(t, before+1, after)
		assert.True(t, Approved(before, after))
	})
}

func TestLockSuppressesAdvance(t *testing.T) {
	runOnFreshGoroutine(func() {
		before := BeforeCall()

		Lock()
		updateState()
		updateState()
		Unlock()

		assert.Equal(t, before, AfterCall(), "advance at depth > 0 must be suppressed")

		updateState()
		assert.Equal(t, before+1, AfterCall(), "advance at depth 0 must succeed")
	})
}

func TestNestedLockDepthCounting(t *testing.T) {
	runOnFreshGoroutine(func() {
		before := BeforeCall()

		// Composite-of-composite: the counter must stay suppressed until
		// every bracket is closed.
		Lock()
		Lock()
		updateState()
		Unlock()
		updateState()
		Unlock()

		assert.Equal(t, before, AfterCall())

		updateState()
		assert.Equal(t, before+1, AfterCall())
	})
}

func TestUnlockWithoutLockPanics(t *testing.T) {
	runOnFreshGoroutine(func() {
		// Force state creation so Unlock reaches the depth check.
		_ = BeforeCall()
		assert.Panics(t, func() { Unlock() })
	})
}

func TestLockDepthOverflowPanics(t *testing.T) {
	runOnFreshGoroutine(func() {
		st := getState()
		require.NotNil(t, st)
		st.lockDepth = math.MaxUint64
		assert.Panics(t, func() { Lock() })
		st.lockDepth = 0
	})
}

func TestGoroutineIsolation(t *testing.T) {
	const workers = 2
	var wg sync.WaitGroup
	deltas := make([]uint64, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			defer ReleaseState()
			before := BeforeCall()
			VerifyHMAC(crypto.SHA256)
			deltas[i] = AfterCall() - before
		}(i)
	}
	wg.Wait()

	for i := 0; i < workers; i++ {
		assert.Equal(t, uint64(1), deltas[i],
			"each goroutine must observe exactly its own advance")
	}
}

func TestReleaseStateDiscardsCounter(t *testing.T) {
	runOnFreshGoroutine(func() {
		updateState()
		require.Equal(t, uint64(1), AfterCall())

		ReleaseState()
		assert.Equal(t, uint64(0), AfterCall(), "released state must start fresh")
	})
}

func TestStateExhaustionDegradesToNotApproved(t *testing.T) {
	saved := states
	states = threadlocal.New(1)
	defer func() { states = saved }()

	// Occupy the single slot from another goroutine.
	occupied := make(chan struct{})
	release := make(chan struct{})
	go func() {
		_ = BeforeCall()
		close(occupied)
		<-release
		ReleaseState()
	}()
	<-occupied
	defer close(release)

	runOnFreshGoroutine(func() {
		// No state can be created: snapshots read zero, predicates and the
		// guard must not crash, and nothing ever reports approved.
		assert.Equal(t, uint64(0), BeforeCall())
		Lock()
		Unlock()
		VerifyHMAC(crypto.SHA256)
		assert.Equal(t, uint64(0), AfterCall())
	})
}

func TestCounterMonotonic(t *testing.T) {
	runOnFreshGoroutine(func() {
		last := BeforeCall()
		for i := 0; i < 100; i++ {
			updateState()
			next := AfterCall()
			require.Equal(t, last+1, next)
			last = next
		}
	})
}
