package handler

import (
	"net/http"

	"github.com/aquihaydragonesgonzalo/FLAM-EURIBIA/internal/store"
)

type WeatherHandler struct {
	store *store.Weather
}

func NewWeatherHandler(s *store.Weather) *WeatherHandler {
	return &WeatherHandler{store: s}
}

func (h *WeatherHandler) GetWeather(w http.ResponseWriter, r *http.Request) {
	report, ok := h.store.Report()
	if !ok {
		respondError(w, http.StatusServiceUnavailable, "weather not fetched yet")
		return
	}

	respondJSON(w, http.StatusOK, report)
}
