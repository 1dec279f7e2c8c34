package handler

import (
	"encoding/json"
	"log/slog"
	"math"
	"net/http"
	"time"

	"github.com/aquihaydragonesgonzalo/FLAM-EURIBIA/internal/domain"
	"github.com/aquihaydragonesgonzalo/FLAM-EURIBIA/internal/store"
)

// Notifier wakes the evaluator after a sensor or toggle write so derived
// state refreshes before the next tick.
type Notifier interface {
	Notify()
}

// Progress persists the completed flags across restarts; nil disables
// persistence.
type Progress interface {
	SetCompleted(activityID string, completed bool) error
}

type HTTPHandler struct {
	store    *store.Live
	notifier Notifier
	progress Progress
	logger   *slog.Logger
}

func NewHTTPHandler(s *store.Live, notifier Notifier, progress Progress, logger *slog.Logger) *HTTPHandler {
	return &HTTPHandler{store: s, notifier: notifier, progress: progress, logger: logger}
}

type ItineraryResponse struct {
	Snapshot   domain.Snapshot `json:"snapshot"`
	ServerTime time.Time       `json:"serverTime"`
}

// GetItinerary returns the latest evaluated snapshot: every activity with its
// derived status, the gaps between windows, and the countdown.
func (h *HTTPHandler) GetItinerary(w http.ResponseWriter, r *http.Request) {
	snap, ok := h.store.Snapshot()
	if !ok {
		respondError(w, http.StatusServiceUnavailable, "itinerary not evaluated yet")
		return
	}

	respondJSON(w, http.StatusOK, ItineraryResponse{
		Snapshot:   snap,
		ServerTime: time.Now(),
	})
}

type ActivitiesResponse struct {
	Activities []domain.Activity `json:"activities"`
	Count      int               `json:"count"`
}

func (h *HTTPHandler) ListActivities(w http.ResponseWriter, r *http.Request) {
	activities := h.store.Activities()
	respondJSON(w, http.StatusOK, ActivitiesResponse{
		Activities: activities,
		Count:      len(activities),
	})
}

type ActivityResponse struct {
	Activity domain.Activity        `json:"activity"`
	Status   *domain.ActivityStatus `json:"status,omitempty"`
}

// GetActivity returns one activity and its derived status from the latest
// snapshot. Status is omitted before the first evaluation.
func (h *HTTPHandler) GetActivity(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		respondError(w, http.StatusBadRequest, "missing activity id")
		return
	}

	activity, ok := h.store.Activity(id)
	if !ok {
		respondError(w, http.StatusNotFound, "activity not found")
		return
	}

	resp := ActivityResponse{Activity: activity}
	if snap, ok := h.store.Snapshot(); ok {
		for i := range snap.Activities {
			if snap.Activities[i].ActivityID == id {
				resp.Status = &snap.Activities[i]
				break
			}
		}
	}

	respondJSON(w, http.StatusOK, resp)
}

type ToggleResponse struct {
	ID        string `json:"id"`
	Completed bool   `json:"completed"`
}

// ToggleCompleted flips the manual done flag. The flag never feeds phase
// classification; it only tracks what the traveller checked off.
func (h *HTTPHandler) ToggleCompleted(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	completed, ok := h.store.ToggleCompleted(id)
	if !ok {
		respondError(w, http.StatusNotFound, "activity not found")
		return
	}

	if h.progress != nil {
		if err := h.progress.SetCompleted(id, completed); err != nil {
			h.logger.Warn("failed to persist completed flag", "activity_id", id, "error", err)
		}
	}

	if h.notifier != nil {
		h.notifier.Notify()
	}

	respondJSON(w, http.StatusOK, ToggleResponse{ID: id, Completed: completed})
}

func (h *HTTPHandler) GetCountdown(w http.ResponseWriter, r *http.Request) {
	snap, ok := h.store.Snapshot()
	if !ok {
		respondError(w, http.StatusServiceUnavailable, "countdown not evaluated yet")
		return
	}

	respondJSON(w, http.StatusOK, snap.Countdown)
}

type PositionRequest struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

func (h *HTTPHandler) PostPosition(w http.ResponseWriter, r *http.Request) {
	var req PositionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid position payload")
		return
	}

	if req.Lat < -90 || req.Lat > 90 || req.Lon < -180 || req.Lon > 180 {
		respondError(w, http.StatusBadRequest, "coordinates out of range")
		return
	}

	h.store.SetPosition(domain.Coords{Lat: req.Lat, Lon: req.Lon}, time.Now())
	ServerStats.IncPositionUpdates()
	if h.notifier != nil {
		h.notifier.Notify()
	}

	w.WriteHeader(http.StatusAccepted)
}

type HeadingRequest struct {
	Heading    float64 `json:"heading"`
	Convention string  `json:"convention,omitempty"` // "compass" (default) or "alpha"
}

func (h *HTTPHandler) PostHeading(w http.ResponseWriter, r *http.Request) {
	var req HeadingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid heading payload")
		return
	}

	heading, ok := NormalizeHeading(req.Heading, req.Convention)
	if !ok {
		respondError(w, http.StatusBadRequest, "unknown heading convention: "+req.Convention)
		return
	}

	h.store.SetHeading(heading)
	if h.notifier != nil {
		h.notifier.Notify()
	}

	w.WriteHeader(http.StatusAccepted)
}

// NormalizeHeading converts a device orientation reading to a compass bearing
// in [0, 360). The "alpha" convention is the device-orientation angle, which
// increases counterclockwise; compass headings increase clockwise.
func NormalizeHeading(value float64, convention string) (float64, bool) {
	switch convention {
	case "", "compass":
	case "alpha":
		value = 360 - value
	default:
		return 0, false
	}
	value = math.Mod(value, 360)
	if value < 0 {
		value += 360
	}
	return value, true
}

type errorResponse struct {
	Error string `json:"error"`
}

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, errorResponse{Error: message})
}
