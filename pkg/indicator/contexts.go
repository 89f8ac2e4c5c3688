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

package indicator

import (
	"crypto"

	"github.com/jeremyhahn/go-fips-indicator/internal/errqueue"
	"github.com/jeremyhahn/go-fips-indicator/pkg/types"
)

// PSSSaltLengthDigest is the sentinel salt length meaning "equal to the
// size of the digest used in the signature". It matches the semantics of
// rsa.PSSSaltLengthEqualsHash.
const PSSSaltLengthDigest = -1

// SignatureContext describes the configuration of a completed hash-then-sign
// or hash-then-verify operation. Zero values represent attributes the call
// site could not read; the approval predicates treat those as configuration
// read failures, never as errors propagated to the caller.
type SignatureContext struct {
	// Digest is the message digest driving the hash-then-sign computation.
	// Zero means the operation ran without a pre-hash; such raw signature
	// schemes are never approved.
	Digest crypto.Hash

	// KeyType is the asymmetric key algorithm bound to the context.
	KeyType types.KeyType

	// KeySize is the RSA modulus size in bytes. Ignored for EC keys.
	KeySize int

	// Curve is the EC key's named curve. Ignored for RSA keys.
	Curve types.EllipticCurve

	// SignatureDigest is the digest bound into the key context. For RSA it
	// must match Digest for the operation to be approved. Zero means the
	// binding could not be read.
	SignatureDigest crypto.Hash

	// Padding is the RSA padding mode. PaddingUnset means the mode could
	// not be read.
	Padding types.RSAPadding

	// SaltLength is the PSS salt length in bytes, or PSSSaltLengthDigest
	// to derive it from the digest size. Only consulted for PSS padding.
	SaltLength int

	// MGF1Digest is the digest used by the PSS mask generation function.
	// Zero means the PSS parameters could not be read.
	MGF1Digest crypto.Hash
}

// signatureDigest probes the digest bound into the key context, recording a
// transient error when it is unset.
func (c *SignatureContext) signatureDigest() (crypto.Hash, error) {
	if c.SignatureDigest == 0 {
		errqueue.Put(ErrSignatureDigestUnset)
		return 0, ErrSignatureDigestUnset
	}
	return c.SignatureDigest, nil
}

// padding probes the RSA padding mode, recording a transient error when it
// is unset.
func (c *SignatureContext) padding() (types.RSAPadding, error) {
	if c.Padding == types.PaddingUnset {
		errqueue.Put(ErrPaddingUnset)
		return types.PaddingUnset, ErrPaddingUnset
	}
	return c.Padding, nil
}

// pssParameters probes the PSS salt length and MGF1 digest, recording a
// transient error when they are unreadable.
func (c *SignatureContext) pssParameters() (int, crypto.Hash, error) {
	if c.MGF1Digest == 0 {
		errqueue.Put(ErrPSSParametersUnset)
		return 0, 0, ErrPSSParametersUnset
	}
	return c.SaltLength, c.MGF1Digest, nil
}

// KeyContext describes the configuration of a completed key-pair generation.
type KeyContext struct {
	// Type is the generated key's algorithm.
	Type types.KeyType

	// Size is the RSA modulus size in bytes. Ignored for EC keys.
	Size int

	// Curve is the EC key's named curve. Ignored for RSA keys.
	Curve types.EllipticCurve
}
