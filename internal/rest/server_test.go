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

package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jeremyhahn/go-fips-indicator/pkg/correlation"
	"github.com/jeremyhahn/go-fips-indicator/pkg/health"
	"github.com/jeremyhahn/go-fips-indicator/pkg/indicator"
	"github.com/jeremyhahn/go-fips-indicator/pkg/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, checker *health.Checker) *Server {
	t.Helper()
	s, err := NewServer(&Config{
		Version:     "test",
		MetricsPath: "/metrics",
		Checker:     checker,
	})
	require.NoError(t, err)
	return s
}

func TestNewServerRequiresConfig(t *testing.T) {
	_, err := NewServer(nil)
	assert.Error(t, err)
}

func TestStatusEndpoint(t *testing.T) {
	s := newTestServer(t, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/status", nil)
	s.server.Handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var status StatusResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	assert.Equal(t, "test", status.Version)
	assert.Equal(t, indicator.IsFIPSBuild(), status.FIPSBuild)
	assert.NotEmpty(t, status.GoVersion)
}

func TestHealthEndpoints(t *testing.T) {
	checker := health.NewChecker()
	checker.MarkStarted()
	s := newTestServer(t, checker)

	for _, path := range []string{"/health", "/health/live", "/health/ready", "/health/startup"} {
		t.Run(path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, path, nil)
			s.server.Handler.ServeHTTP(rec, req)
			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}
}

func TestStartupProbeBeforeStarted(t *testing.T) {
	s := newTestServer(t, health.NewChecker())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health/startup", nil)
	s.server.Handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestReadinessReflectsFailingCheck(t *testing.T) {
	checker := health.NewChecker()
	checker.MarkStarted()
	checker.RegisterCheck("backend", func(ctx context.Context) health.CheckResult {
		return health.CheckResult{Status: health.StatusUnhealthy, Message: "down"}
	})
	s := newTestServer(t, checker)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
	s.server.Handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	s := newTestServer(t, nil)
	metrics.RecordCheck(metrics.FamilyHMAC, true)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	s.server.Handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "fips_checks_total")
}

func TestCorrelationIDMiddleware(t *testing.T) {
	s := newTestServer(t, nil)

	t.Run("generated", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		s.server.Handler.ServeHTTP(rec, req)
		assert.NotEmpty(t, rec.Header().Get(correlation.CorrelationIDHeader))
	})

	t.Run("propagated", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.Header.Set(correlation.CorrelationIDHeader, "inbound-id")
		s.server.Handler.ServeHTTP(rec, req)
		assert.Equal(t, "inbound-id", rec.Header().Get(correlation.CorrelationIDHeader))
	})
}
