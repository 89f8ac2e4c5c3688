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
	"encoding/json"
	"net/http"
	"runtime"

	"github.com/jeremyhahn/go-fips-indicator/pkg/health"
	"github.com/jeremyhahn/go-fips-indicator/pkg/indicator"
)

// handlerContext carries the state shared by all HTTP handlers.
type handlerContext struct {
	version string
	checker *health.Checker
}

// StatusResponse is the /api/v1/status payload.
type StatusResponse struct {
	Version   string `json:"version"`
	FIPSBuild bool   `json:"fips_build"`
	GoVersion string `json:"go_version"`
	OS        string `json:"os"`
	Arch      string `json:"arch"`
}

// HealthResponse wraps health probe results.
type HealthResponse struct {
	Status health.Status        `json:"status"`
	Checks []health.CheckResult `json:"checks,omitempty"`
}

func (h *handlerContext) statusHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, StatusResponse{
		Version:   h.version,
		FIPSBuild: indicator.IsFIPSBuild(),
		GoVersion: runtime.Version(),
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
	})
}

func (h *handlerContext) livenessHandler(w http.ResponseWriter, r *http.Request) {
	result := h.checker.Live(r.Context())
	writeJSON(w, statusCode(result.Status == health.StatusHealthy), HealthResponse{
		Status: result.Status,
		Checks: []health.CheckResult{result},
	})
}

func (h *handlerContext) readinessHandler(w http.ResponseWriter, r *http.Request) {
	results := h.checker.Ready(r.Context())
	status := health.StatusHealthy
	if !health.Healthy(results) {
		status = health.StatusUnhealthy
	}
	writeJSON(w, statusCode(status == health.StatusHealthy), HealthResponse{
		Status: status,
		Checks: results,
	})
}

func (h *handlerContext) startupHandler(w http.ResponseWriter, r *http.Request) {
	result := h.checker.Startup(r.Context())
	writeJSON(w, statusCode(result.Status == health.StatusHealthy), HealthResponse{
		Status: result.Status,
		Checks: []health.CheckResult{result},
	})
}

func statusCode(healthy bool) int {
	if healthy {
		return http.StatusOK
	}
	return http.StatusServiceUnavailable
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
