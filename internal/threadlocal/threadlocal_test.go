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

package threadlocal

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIDIsStableWithinGoroutine(t *testing.T) {
	assert.Equal(t, ID(), ID())
	assert.NotZero(t, ID())
}

func TestIDDiffersAcrossGoroutines(t *testing.T) {
	mine := ID()
	var theirs uint64
	done := make(chan struct{})
	go func() {
		theirs = ID()
		close(done)
	}()
	<-done
	assert.NotEqual(t, mine, theirs)
}

func TestSetGetDelete(t *testing.T) {
	s := New(0)

	_, ok := s.Get()
	assert.False(t, ok)

	require.NoError(t, s.Set("value", nil))
	v, ok := s.Get()
	require.True(t, ok)
	assert.Equal(t, "value", v)
	assert.Equal(t, 1, s.Len())

	s.Delete()
	_, ok = s.Get()
	assert.False(t, ok)
	assert.Equal(t, 0, s.Len())
}

func TestReplaceDoesNotDoubleCount(t *testing.T) {
	s := New(0)
	require.NoError(t, s.Set(1, nil))
	require.NoError(t, s.Set(2, nil))
	assert.Equal(t, 1, s.Len())

	v, ok := s.Get()
	require.True(t, ok)
	assert.Equal(t, 2, v)
	s.Delete()
}

func TestDestructorRunsOnDelete(t *testing.T) {
	s := New(0)
	var destroyed any
	require.NoError(t, s.Set("payload", func(v any) { destroyed = v }))

	s.Delete()
	assert.Equal(t, "payload", destroyed)

	// Delete with no entry is a no-op.
	assert.NotPanics(t, func() { s.Delete() })
}

func TestCapacityExhaustion(t *testing.T) {
	s := New(1)

	occupied := make(chan struct{})
	release := make(chan struct{})
	go func() {
		_ = s.Set("first", nil)
		close(occupied)
		<-release
		s.Delete()
	}()
	<-occupied

	err := s.Set("second", nil)
	assert.ErrorIs(t, err, ErrStoreExhausted)
	assert.Equal(t, 1, s.Len())

	close(release)
}

func TestGoroutineConfinement(t *testing.T) {
	s := New(0)
	const workers = 8

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			defer s.Delete()
			require.NoError(t, s.Set(i, nil))
			v, ok := s.Get()
			require.True(t, ok)
			assert.Equal(t, i, v, "goroutine must only see its own value")
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 0, s.Len())
}
