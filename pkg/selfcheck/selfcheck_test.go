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

package selfcheck

import (
	"testing"

	"github.com/jeremyhahn/go-fips-indicator/pkg/indicator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunCompletes(t *testing.T) {
	results, err := Run()
	require.NoError(t, err)
	require.Len(t, results, len(operations))

	for i, r := range results {
		assert.Equal(t, operations[i].name, r.Name)
	}
}

func TestRunVerdicts(t *testing.T) {
	results, err := Run()
	require.NoError(t, err)

	verdicts := make(map[string]bool, len(results))
	for _, r := range results {
		verdicts[r.Name] = r.Approved
	}

	if !indicator.IsFIPSBuild() {
		// The stub reports every operation as approved.
		for name, approved := range verdicts {
			assert.True(t, approved, name)
		}
		return
	}

	// Validated build: AES-192-GCM is the one deliberately unapproved
	// operation in the set.
	assert.False(t, verdicts["AES-192-GCM seal"])
	assert.True(t, verdicts["AES-256-GCM seal"])
	assert.True(t, verdicts["HMAC-SHA-1"])
	assert.True(t, verdicts["TLS 1.2 KDF (HKDF composite)"])
}
