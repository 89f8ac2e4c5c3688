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

	"github.com/jeremyhahn/go-fips-indicator/internal/errqueue"
	"github.com/jeremyhahn/go-fips-indicator/pkg/metrics"
	"github.com/jeremyhahn/go-fips-indicator/pkg/types"
)

// record advances the counter when a predicate approved the completed
// operation's configuration, and publishes the verdict to the check
// metrics either way. The metric reflects the predicate verdict, not the
// counter: an approved configuration inside a suppression bracket still
// counts as an approved check.
func record(family string, approved bool) {
	if approved {
		updateState()
	}
	metrics.RecordCheck(family, approved)
}

// VerifyAEADGCM checks a completed AES-GCM seal or open. Only 128 and 256
// bit keys are approved, and only with an internally generated IV
// (SP 800-38D Sec 8.2.2). keyLength is in bytes.
func VerifyAEADGCM(keyLength int) {
	record(metrics.FamilyAEADGCM, keyLength == 16 || keyLength == 32)
}

// VerifyAEADCCM checks a completed AES-CCM seal or open. Only 128 bit keys
// with 32 bit tags are approved. Both lengths are in bytes.
func VerifyAEADCCM(keyLength, tagLength int) {
	record(metrics.FamilyAEADCCM, keyLength == 16 && tagLength == 4)
}

// VerifyCMAC checks a completed AES-CMAC computation. Only 128 and 256 bit
// keys are approved. keyLength is in bytes.
func VerifyCMAC(keyLength int) {
	record(metrics.FamilyCMAC, keyLength == 16 || keyLength == 32)
}

// VerifyCipher checks a completed symmetric cipher operation. AES in ECB,
// CBC and CTR modes is approved at all three key sizes.
func VerifyCipher(alg types.CipherAlgorithm) {
	var approved bool
	switch alg {
	case types.CipherAES128ECB,
		types.CipherAES192ECB,
		types.CipherAES256ECB,
		types.CipherAES128CBC,
		types.CipherAES192CBC,
		types.CipherAES256CBC,
		types.CipherAES128CTR,
		types.CipherAES192CTR,
		types.CipherAES256CTR:
		approved = true
	}
	record(metrics.FamilyCipher, approved)
}

// VerifyECKeyGen checks a completed EC key-pair generation.
func VerifyECKeyGen(curve types.EllipticCurve) {
	record(metrics.FamilyECKeyGen, curveApproved(curve))
}

// VerifyECDH checks a completed ECDH shared-secret computation.
func VerifyECDH(curve types.EllipticCurve) {
	record(metrics.FamilyECDH, curveApproved(curve))
}

// VerifyKeyGen checks a completed asymmetric key-pair generation. RSA keys
// of 2048, 3072 and 4096 bits and EC keys on approved curves qualify; all
// other key types are unapproved.
func VerifyKeyGen(ctx *KeyContext) {
	var approved bool
	if ctx != nil {
		switch {
		case ctx.Type.IsRSA():
			// Note: Size is the modulus size in bytes.
			approved = ctx.Size == 256 || ctx.Size == 384 || ctx.Size == 512
		case ctx.Type == types.KeyTypeEC:
			approved = curveApproved(ctx.Curve)
		}
	}
	record(metrics.FamilyKeyGen, approved)
}

// VerifyDigestSign checks a completed hash-then-sign operation.
func VerifyDigestSign(ctx *SignatureContext) {
	record(metrics.FamilyDigestSign,
		signatureApproved(ctx, false, digestApprovedForSigning))
}

// VerifyDigestVerify checks a completed hash-then-verify operation. The
// verification path additionally admits SHA-1 digests and 1024 bit RSA
// keys, reflecting the standard's legacy-verification allowance.
func VerifyDigestVerify(ctx *SignatureContext) {
	record(metrics.FamilyDigestVerify,
		signatureApproved(ctx, true, digestApprovedForVerifying))
}

// VerifyHMAC checks a completed HMAC computation.
func VerifyHMAC(digest crypto.Hash) {
	var approved bool
	switch digest {
	case crypto.SHA1, crypto.SHA224, crypto.SHA256, crypto.SHA384, crypto.SHA512:
		approved = true
	}
	record(metrics.FamilyHMAC, approved)
}

// VerifyTLSKDF checks a completed TLS key-derivation. HMAC-MD5, HMAC-SHA1
// and HMAC-MD5/HMAC-SHA1 used concurrently are approved for the TLS
// 1.0/1.1 KDF; HMAC-SHA{256,384,512} for the TLS 1.2 KDF. These functions
// are only approved in the context of the TLS protocol.
func VerifyTLSKDF(digest crypto.Hash) {
	var approved bool
	switch digest {
	case crypto.MD5, crypto.SHA1, crypto.MD5SHA1,
		crypto.SHA256, crypto.SHA384, crypto.SHA512:
		approved = true
	}
	record(metrics.FamilyTLSKDF, approved)
}

// curveApproved reports whether the named curve is FIPS approved.
func curveApproved(curve types.EllipticCurve) bool {
	switch curve {
	case types.CurveP224, types.CurveP256, types.CurveP384, types.CurveP521:
		return true
	default:
		return false
	}
}

// digestApprovedForSigning reports whether the digest is FIPS approved for
// signing. SHA-512/256 is pending validation and deliberately absent.
func digestApprovedForSigning(digest crypto.Hash) bool {
	switch digest {
	case crypto.SHA224, crypto.SHA256, crypto.SHA384, crypto.SHA512:
		return true
	default:
		return false
	}
}

// digestApprovedForVerifying reports whether the digest is FIPS approved
// for verifying. SHA-512/256 is pending validation and deliberately absent.
func digestApprovedForVerifying(digest crypto.Hash) bool {
	switch digest {
	case crypto.SHA1, crypto.SHA224, crypto.SHA256, crypto.SHA384, crypto.SHA512:
		return true
	default:
		return false
	}
}

// signatureApproved evaluates the shared sign/verify rules. Any failure to
// probe the context's configuration is treated as not-approved, and the
// transient errors recorded while probing are cleared so they never leak
// into the caller's error handling.
func signatureApproved(ctx *SignatureContext, rsa1024OK bool, digestOK func(crypto.Hash) bool) bool {
	defer errqueue.Clear()

	if ctx == nil || ctx.Digest == 0 {
		// Signature schemes without a prehash are never FIPS approved.
		return false
	}

	switch {
	case ctx.KeyType.IsRSA():
		// The digest bound into the key context must be the digest that
		// drove the hash-then-sign computation.
		sigDigest, err := ctx.signatureDigest()
		if err != nil || sigDigest != ctx.Digest {
			return false
		}

		padding, err := ctx.padding()
		if err != nil {
			return false
		}
		if padding == types.PaddingPSS {
			// Only PSS where saltLen equals the digest length is tested
			// under ACVP; non-standard mask generation is excluded.
			saltLength, mgf1, err := ctx.pssParameters()
			if err != nil {
				return false
			}
			if saltLength != PSSSaltLengthDigest && saltLength != sigDigest.Size() {
				return false
			}
			if mgf1 != ctx.Digest {
				return false
			}
		}

		if !digestOK(ctx.Digest) {
			return false
		}
		// The approved RSA key sizes are 2048, 3072 and 4096 bits, plus
		// 1024 bits on the legacy verification path. KeySize is in bytes.
		switch ctx.KeySize {
		case 256, 384, 512:
			return true
		case 128:
			return rsa1024OK
		default:
			return false
		}

	case ctx.KeyType == types.KeyTypeEC:
		return digestOK(ctx.Digest) && curveApproved(ctx.Curve)

	default:
		// Ed25519 and every other key type are unapproved.
		return false
	}
}
