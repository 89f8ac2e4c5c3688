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

// Package metrics provides Prometheus instrumentation for service indicator
// checks. It exposes per-family approval counters and a build info gauge so
// that operators can observe the proportion of approved operations without
// instrumenting individual call sites.
package metrics

import (
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	// Namespace is the Prometheus namespace for all indicator metrics
	Namespace = "fips"

	// Label names
	LabelFamily  = "family"
	LabelStatus  = "status"
	LabelVersion = "version"
	LabelMode    = "mode"
	LabelMethod  = "method"
	LabelCode    = "status_code"

	// Status values
	StatusApproved    = "approved"
	StatusNotApproved = "not_approved"

	// Algorithm family names, one per approval predicate
	FamilyAEADGCM      = "aead_gcm"
	FamilyAEADCCM      = "aead_ccm"
	FamilyCMAC         = "cmac"
	FamilyCipher       = "cipher"
	FamilyECKeyGen     = "ec_keygen"
	FamilyECDH         = "ecdh"
	FamilyKeyGen       = "keygen"
	FamilyDigestSign   = "digest_sign"
	FamilyDigestVerify = "digest_verify"
	FamilyHMAC         = "hmac"
	FamilyTLSKDF       = "tls_kdf"
)

var (
	// ChecksTotal tracks every indicator check by algorithm family and
	// outcome. Use RecordCheck to increment it with the appropriate labels.
	ChecksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "checks_total",
			Help:      "Total number of service indicator checks by family and status",
		},
		[]string{LabelFamily, LabelStatus},
	)

	// ApprovalsTotal tracks checks that resulted in a counter advance.
	ApprovalsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "approvals_total",
			Help:      "Total number of approved service indicator checks by family",
		},
		[]string{LabelFamily},
	)

	// BuildInfo reports the library version and build mode as labels with a
	// constant value of 1.
	BuildInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "build_info",
			Help:      "Library version and build mode (validated or stub)",
		},
		[]string{LabelVersion, LabelMode},
	)

	// HTTPRequestsTotal tracks status server requests by method and status code.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests by method and status code",
		},
		[]string{LabelMethod, LabelCode},
	)
)

var disabled atomic.Bool

// Enable turns metric collection on. Metrics are enabled by default.
func Enable() {
	disabled.Store(false)
}

// Disable turns metric collection off. The indicator state machine itself
// is unaffected; only the Prometheus counters stop updating.
func Disable() {
	disabled.Store(true)
}

// IsEnabled reports whether metric collection is active.
func IsEnabled() bool {
	return !disabled.Load()
}

// RecordCheck increments the check counters for one predicate evaluation.
func RecordCheck(family string, approved bool) {
	if disabled.Load() {
		return
	}
	status := StatusNotApproved
	if approved {
		status = StatusApproved
		ApprovalsTotal.WithLabelValues(family).Inc()
	}
	ChecksTotal.WithLabelValues(family, status).Inc()
}

// SetBuildInfo publishes the library version and build mode.
func SetBuildInfo(version, mode string) {
	if disabled.Load() {
		return
	}
	BuildInfo.WithLabelValues(version, mode).Set(1)
}
