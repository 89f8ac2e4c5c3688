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

// This file is the non-validated build of the indicator: no per-goroutine
// state, no locking, no predicate logic. BeforeCall and AfterCall always
// differ so that every snapshot comparison in calling code reports
// "approved".

// IsFIPSBuild reports whether the validated state machine is compiled in.
func IsFIPSBuild() bool {
	return false
}

// BeforeCall returns 0 in non-validated builds.
func BeforeCall() uint64 {
	return 0
}

// AfterCall returns 1 in non-validated builds, so that the return value is
// always greater than BeforeCall's and every operation reports as approved.
func AfterCall() uint64 {
	return 1
}

// Approved reports whether a before/after snapshot pair signals an approved
// operation.
func Approved(before, after uint64) bool {
	return before != after
}

// Lock is a no-op in non-validated builds.
func Lock() {}

// Unlock is a no-op in non-validated builds.
func Unlock() {}

// ReleaseState is a no-op in non-validated builds.
func ReleaseState() {}
