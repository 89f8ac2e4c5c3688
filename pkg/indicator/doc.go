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

// Package indicator implements a FIPS 140-3 service indicator: a
// per-goroutine monotonic counter that advances exactly once for every
// completed cryptographic operation whose configuration is recognized as
// approved.
//
// # Usage
//
// A cryptographic call site snapshots the counter before and after the
// operation. The operation was approved if and only if the two snapshots
// differ:
//
//	before := indicator.BeforeCall()
//	ciphertext := aead.Seal(nil, nonce, plaintext, nil)
//	indicator.VerifyAEADGCM(len(key))
//	approved := indicator.Approved(before, indicator.AfterCall())
//
// Each algorithm family has its own Verify entry point that inspects only
// the operation's configuration (key size, curve, digest, padding), never
// its inputs or outputs. The indicator observes; it does not enforce.
//
// # Composite operations
//
// A primitive implemented on top of other approved primitives brackets its
// internal calls with Lock and Unlock so their individual approval signals
// are suppressed. Only the outer operation's own verifier, running at lock
// depth zero, advances the counter. Nesting is depth-counted, so composites
// built from composites compose correctly.
//
// # Concurrency
//
// All mutable state is confined to the calling goroutine; two goroutines
// never observe each other's counter. Goroutines in long-lived worker pools
// should call ReleaseState before being returned to the pool.
//
// # Invariant faults
//
// An Unlock with no matching Lock, or a lock depth that would overflow,
// indicates a defect in the surrounding cryptographic code that could
// otherwise produce a false approval claim. Both panic rather than
// continue with corrupted state.
//
// # Build modes
//
// The full state machine is compiled only under the "fips" build tag. In
// the default build every snapshot pair compares as approved (BeforeCall
// returns 0, AfterCall returns 1) and no per-goroutine state exists.
package indicator
