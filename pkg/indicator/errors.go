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

import "errors"

var (
	// ErrStateUnavailable indicates per-goroutine indicator state could not
	// be created. All approval checks degrade to not-approved.
	ErrStateUnavailable = errors.New("indicator: per-goroutine state unavailable")

	// ErrPaddingUnset indicates the signing context carries no RSA padding mode
	ErrPaddingUnset = errors.New("indicator: rsa padding mode not configured")

	// ErrSignatureDigestUnset indicates no digest is bound to the signing context
	ErrSignatureDigestUnset = errors.New("indicator: signature digest not configured")

	// ErrPSSParametersUnset indicates the PSS salt length or MGF1 digest
	// could not be read from the signing context
	ErrPSSParametersUnset = errors.New("indicator: pss parameters not configured")
)
