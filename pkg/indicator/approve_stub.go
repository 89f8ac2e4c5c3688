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

	"github.com/jeremyhahn/go-fips-indicator/pkg/types"
)

// Verifier entry points are no-ops in non-validated builds; call sites can
// invoke them unconditionally in either build mode.

// VerifyAEADGCM is a no-op in non-validated builds.
func VerifyAEADGCM(keyLength int) {}

// VerifyAEADCCM is a no-op in non-validated builds.
func VerifyAEADCCM(keyLength, tagLength int) {}

// VerifyCMAC is a no-op in non-validated builds.
func VerifyCMAC(keyLength int) {}

// VerifyCipher is a no-op in non-validated builds.
func VerifyCipher(alg types.CipherAlgorithm) {}

// VerifyECKeyGen is a no-op in non-validated builds.
func VerifyECKeyGen(curve types.EllipticCurve) {}

// VerifyECDH is a no-op in non-validated builds.
func VerifyECDH(curve types.EllipticCurve) {}

// VerifyKeyGen is a no-op in non-validated builds.
func VerifyKeyGen(ctx *KeyContext) {}

// VerifyDigestSign is a no-op in non-validated builds.
func VerifyDigestSign(ctx *SignatureContext) {}

// VerifyDigestVerify is a no-op in non-validated builds.
func VerifyDigestVerify(ctx *SignatureContext) {}

// VerifyHMAC is a no-op in non-validated builds.
func VerifyHMAC(digest crypto.Hash) {}

// VerifyTLSKDF is a no-op in non-validated builds.
func VerifyTLSKDF(digest crypto.Hash) {}
