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

// Package types defines the algorithm identifiers consumed by the service
// indicator's approval predicates. Identifiers follow Go standard library
// and NIST naming conventions so that call sites can map their own
// configuration onto them without translation tables.
package types

import "strings"

// =============================================================================
// Elliptic Curve Identifiers
// =============================================================================
// Curve names follow NIST naming conventions (P-256, P-384, P-521).

// EllipticCurve represents elliptic curve identifiers.
type EllipticCurve string

const (
	// CurveP224 is NIST P-224 (secp224r1).
	CurveP224 EllipticCurve = "P-224"

	// CurveP256 is NIST P-256 (secp256r1, prime256v1).
	CurveP256 EllipticCurve = "P-256"

	// CurveP384 is NIST P-384 (secp384r1).
	CurveP384 EllipticCurve = "P-384"

	// CurveP521 is NIST P-521 (secp521r1).
	CurveP521 EllipticCurve = "P-521"

	// CurveSecp256k1 is the secp256k1 curve used in Bitcoin/Ethereum.
	// It is not FIPS approved.
	CurveSecp256k1 EllipticCurve = "secp256k1"

	// CurveX25519 is Curve25519 for key agreement (X25519).
	// It is not FIPS approved.
	CurveX25519 EllipticCurve = "X25519"
)

// String returns the string representation.
func (c EllipticCurve) String() string {
	return string(c)
}

// Equals performs case-insensitive comparison for protocol compatibility.
func (c EllipticCurve) Equals(s string) bool {
	return strings.EqualFold(string(c), s)
}

// =============================================================================
// Symmetric Cipher Identifiers
// =============================================================================
// Names follow OpenSSL cipher naming (algorithm-keysize-mode).

// CipherAlgorithm identifies a symmetric cipher together with its key size
// and mode of operation.
type CipherAlgorithm string

const (
	CipherAES128ECB CipherAlgorithm = "AES-128-ECB"
	CipherAES192ECB CipherAlgorithm = "AES-192-ECB"
	CipherAES256ECB CipherAlgorithm = "AES-256-ECB"

	CipherAES128CBC CipherAlgorithm = "AES-128-CBC"
	CipherAES192CBC CipherAlgorithm = "AES-192-CBC"
	CipherAES256CBC CipherAlgorithm = "AES-256-CBC"

	CipherAES128CTR CipherAlgorithm = "AES-128-CTR"
	CipherAES192CTR CipherAlgorithm = "AES-192-CTR"
	CipherAES256CTR CipherAlgorithm = "AES-256-CTR"

	// CipherDES3CBC is triple-DES in CBC mode. It is not FIPS approved.
	CipherDES3CBC CipherAlgorithm = "DES-EDE3-CBC"
)

// String returns the string representation.
func (c CipherAlgorithm) String() string {
	return string(c)
}

// Equals performs case-insensitive comparison for protocol compatibility.
func (c CipherAlgorithm) Equals(s string) bool {
	return strings.EqualFold(string(c), s)
}

// =============================================================================
// Key Type Identifiers
// =============================================================================

// KeyType identifies the asymmetric key algorithm bound to a signing or
// key-generation context.
type KeyType string

const (
	// KeyTypeRSA is an RSA key used with PKCS#1 v1.5 or PSS padding.
	KeyTypeRSA KeyType = "RSA"

	// KeyTypeRSAPSS is an RSA key restricted to PSS padding.
	KeyTypeRSAPSS KeyType = "RSA-PSS"

	// KeyTypeEC is an ECDSA or ECDH key on a named curve.
	KeyTypeEC KeyType = "EC"

	// KeyTypeEd25519 is an Ed25519 signing key. It is not FIPS approved.
	KeyTypeEd25519 KeyType = "Ed25519"
)

// String returns the string representation.
func (k KeyType) String() string {
	return string(k)
}

// Equals performs case-insensitive comparison for protocol compatibility.
func (k KeyType) Equals(s string) bool {
	return strings.EqualFold(string(k), s)
}

// IsRSA returns true for the RSA key types, regardless of padding
// restriction.
func (k KeyType) IsRSA() bool {
	return k == KeyTypeRSA || k == KeyTypeRSAPSS
}

// =============================================================================
// RSA Padding Modes
// =============================================================================

// RSAPadding identifies the RSA padding mode bound to a signing context.
// The zero value means the padding mode has not been configured; approval
// predicates treat an unset padding mode as a configuration read failure.
type RSAPadding int

const (
	// PaddingUnset indicates no padding mode has been configured.
	PaddingUnset RSAPadding = iota

	// PaddingPKCS1v15 is RSASSA-PKCS1-v1_5 signature padding.
	PaddingPKCS1v15

	// PaddingPSS is RSASSA-PSS signature padding.
	PaddingPSS

	// PaddingOAEP is RSAES-OAEP encryption padding.
	PaddingOAEP
)

// String returns the string representation.
func (p RSAPadding) String() string {
	switch p {
	case PaddingPKCS1v15:
		return "PKCS1v15"
	case PaddingPSS:
		return "PSS"
	case PaddingOAEP:
		return "OAEP"
	default:
		return "unset"
	}
}
