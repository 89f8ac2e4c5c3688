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

//go:build !fips

package indicator

import (
	"crypto"
	"testing"

	"github.com/jeremyhahn/go-fips-indicator/pkg/types"
	"github.com/stretchr/testify/assert"
)

func TestStubIsNotFIPSBuild(t *testing.T) {
	assert.False(t, IsFIPSBuild())
}

func TestStubSnapshotConstants(t *testing.T) {
	// The stub always reports approved: BeforeCall is 0, AfterCall is 1,
	// regardless of what ran in between.
	assert.Equal(t, uint64(0), BeforeCall())
	assert.Equal(t, uint64(1), AfterCall())

	VerifyAEADGCM(24) // not an approved key size
	VerifyHMAC(crypto.MD5)

	assert.Equal(t, uint64(0), BeforeCall())
	assert.Equal(t, uint64(1), AfterCall())
	assert.True(t, Approved(BeforeCall(), AfterCall()))
}

func TestStubGuardAndVerifiersAreNoOps(t *testing.T) {
	assert.NotPanics(t, func() {
		Unlock() // no state machine, no imbalance fault
		Lock()
		ReleaseState()

		VerifyAEADGCM(16)
		VerifyAEADCCM(16, 4)
		VerifyCMAC(32)
		VerifyCipher(types.CipherAES256CBC)
		VerifyECKeyGen(types.CurveP256)
		VerifyECDH(types.CurveP384)
		VerifyKeyGen(&KeyContext{Type: types.KeyTypeRSA, Size: 256})
		VerifyDigestSign(nil)
		VerifyDigestVerify(nil)
		VerifyHMAC(crypto.SHA256)
		VerifyTLSKDF(crypto.MD5SHA1)
	})
}
