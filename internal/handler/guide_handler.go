package handler

import (
	"errors"
	"net/http"

	"github.com/aquihaydragonesgonzalo/FLAM-EURIBIA/internal/domain"
	"github.com/aquihaydragonesgonzalo/FLAM-EURIBIA/internal/speech"
)

type GuideHandler struct {
	player         *speech.Player
	pronunciations []domain.Pronunciation
}

func NewGuideHandler(player *speech.Player, pronunciations []domain.Pronunciation) *GuideHandler {
	return &GuideHandler{player: player, pronunciations: pronunciations}
}

type TracksResponse struct {
	Tracks []domain.AudioTrack `json:"tracks"`
	Count  int                 `json:"count"`
}

// ListTracks returns the audio-guide catalog, optionally filtered by the
// activity query parameter.
func (h *GuideHandler) ListTracks(w http.ResponseWriter, r *http.Request) {
	tracks := h.player.Tracks(r.URL.Query().Get("activity"))
	respondJSON(w, http.StatusOK, TracksResponse{Tracks: tracks, Count: len(tracks)})
}

func (h *GuideHandler) Play(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		respondError(w, http.StatusBadRequest, "missing track id")
		return
	}

	status, err := h.player.Play(id)
	if err != nil {
		if errors.Is(err, speech.ErrUnknownTrack) {
			respondError(w, http.StatusNotFound, "track not found")
			return
		}
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, status)
}

func (h *GuideHandler) Stop(w http.ResponseWriter, r *http.Request) {
	h.player.Stop()
	respondJSON(w, http.StatusOK, h.player.Status())
}

func (h *GuideHandler) GetStatus(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.player.Status())
}

type PronunciationsResponse struct {
	Pronunciations []domain.Pronunciation `json:"pronunciations"`
}

func (h *GuideHandler) ListPronunciations(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, PronunciationsResponse{Pronunciations: h.pronunciations})
}
