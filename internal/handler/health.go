package handler

import (
	"encoding/json"
	"net/http"
	"time"
)

// ReadyChecker reports whether a background loop has produced its first result
type ReadyChecker interface {
	IsReady() bool
}

type HealthHandler struct {
	evaluator ReadyChecker
	weather   ReadyChecker
}

func NewHealthHandler(evaluator, weather ReadyChecker) *HealthHandler {
	return &HealthHandler{evaluator: evaluator, weather: weather}
}

func (h *HealthHandler) Healthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

type ReadyResponse struct {
	Ready        bool      `json:"ready"`
	WeatherReady bool      `json:"weatherReady"`
	ServerTime   time.Time `json:"serverTime"`
}

// Readyz gates on the evaluator only. Weather is reported but never blocks
// readiness; the companion works without a forecast.
func (h *HealthHandler) Readyz(w http.ResponseWriter, r *http.Request) {
	ready := h.evaluator.IsReady()
	status := http.StatusOK
	if !ready {
		status = http.StatusServiceUnavailable
	}

	weatherReady := false
	if h.weather != nil {
		weatherReady = h.weather.IsReady()
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(ReadyResponse{
		Ready:        ready,
		WeatherReady: weatherReady,
		ServerTime:   time.Now(),
	})
}
