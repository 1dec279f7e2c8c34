package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/aquihaydragonesgonzalo/FLAM-EURIBIA/internal/auth"
)

type GateHandler struct {
	gate   *auth.Gate
	logger *slog.Logger
}

func NewGateHandler(gate *auth.Gate, logger *slog.Logger) *GateHandler {
	return &GateHandler{gate: gate, logger: logger}
}

type UnlockRequest struct {
	Code string `json:"code"`
}

type UnlockResponse struct {
	Token string `json:"token"`
}

// Unlock exchanges a passcode for a bearer token. Wrong codes get a uniform
// 401 regardless of which allow-list entry they missed.
func (h *GateHandler) Unlock(w http.ResponseWriter, r *http.Request) {
	var req UnlockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid unlock payload")
		return
	}

	token, err := h.gate.Unlock(req.Code)
	if err != nil {
		if errors.Is(err, auth.ErrWrongCode) {
			ServerStats.IncUnlockRejected()
			respondError(w, http.StatusUnauthorized, "wrong code")
			return
		}
		h.logger.Error("unlock failed", "error", err)
		respondError(w, http.StatusInternalServerError, "unlock failed")
		return
	}

	respondJSON(w, http.StatusOK, UnlockResponse{Token: token})
}
