package handler

import (
	"encoding/json"
	"net/http"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/aquihaydragonesgonzalo/FLAM-EURIBIA/internal/domain"
	"github.com/aquihaydragonesgonzalo/FLAM-EURIBIA/internal/hub"
	"github.com/aquihaydragonesgonzalo/FLAM-EURIBIA/internal/store"
)

// Stats tracks server-wide counters
type Stats struct {
	startTime        time.Time
	requestCount     atomic.Int64
	wsConnections    atomic.Int64
	wsMessagesIn     atomic.Int64
	wsMessagesOut    atomic.Int64
	positionUpdates  atomic.Int64
	unlockRejected   atomic.Int64
	rateLimitBlocked atomic.Int64
}

// Global stats instance
var ServerStats = &Stats{
	startTime: time.Now(),
}

func (s *Stats) IncRequests()         { s.requestCount.Add(1) }
func (s *Stats) IncWSConnections()    { s.wsConnections.Add(1) }
func (s *Stats) DecWSConnections()    { s.wsConnections.Add(-1) }
func (s *Stats) IncWSMessagesIn()     { s.wsMessagesIn.Add(1) }
func (s *Stats) IncWSMessagesOut()    { s.wsMessagesOut.Add(1) }
func (s *Stats) IncPositionUpdates()  { s.positionUpdates.Add(1) }
func (s *Stats) IncUnlockRejected()   { s.unlockRejected.Add(1) }
func (s *Stats) IncRateLimitBlocked() { s.rateLimitBlocked.Add(1) }

type StatsHandler struct {
	store *store.Live
	hub   *hub.Hub
}

func NewStatsHandler(s *store.Live, h *hub.Hub) *StatsHandler {
	return &StatsHandler{store: s, hub: h}
}

type StatsResponse struct {
	Server    ServerStatsResponse    `json:"server"`
	Itinerary ItineraryStatsResponse `json:"itinerary"`
	WebSocket WebSocketStatsResponse `json:"websocket"`
	Go        GoStatsResponse        `json:"go"`
}

type ServerStatsResponse struct {
	Uptime          string    `json:"uptime"`
	UptimeSeconds   float64   `json:"uptime_seconds"`
	StartTime       time.Time `json:"start_time"`
	RequestCount    int64     `json:"request_count"`
	PositionUpdates int64     `json:"position_updates"`
	UnlockRejected  int64     `json:"unlock_rejected"`
	RateLimited     int64     `json:"rate_limited"`
	Version         string    `json:"version"`
}

type ItineraryStatsResponse struct {
	Activities  int       `json:"activities"`
	Completed   int       `json:"completed"`
	Active      int       `json:"active"`
	Upcoming    int       `json:"upcoming"`
	HasPosition bool      `json:"has_position"`
	EvaluatedAt time.Time `json:"evaluated_at"`
}

type WebSocketStatsResponse struct {
	Connections int64          `json:"connections"`
	MessagesIn  int64          `json:"messages_in"`
	MessagesOut int64          `json:"messages_out"`
	Subscribers map[string]int `json:"subscribers"`
}

type GoStatsResponse struct {
	Goroutines  int     `json:"goroutines"`
	HeapAlloc   uint64  `json:"heap_alloc_bytes"`
	HeapAllocMB float64 `json:"heap_alloc_mb"`
	NumGC       uint32  `json:"num_gc"`
	GoVersion   string  `json:"go_version"`
}

func (h *StatsHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	ServerStats.IncRequests()

	uptime := time.Since(ServerStats.startTime)

	var itinerary ItineraryStatsResponse
	if snap, ok := h.store.Snapshot(); ok {
		itinerary.Activities = len(snap.Activities)
		for _, a := range snap.Activities {
			switch a.Phase {
			case domain.PhaseCompleted:
				itinerary.Completed++
			case domain.PhaseActive:
				itinerary.Active++
			case domain.PhaseUpcoming:
				itinerary.Upcoming++
			}
		}
		itinerary.HasPosition = snap.HasPosition
		itinerary.EvaluatedAt = snap.EvaluatedAt
	}

	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	response := StatsResponse{
		Server: ServerStatsResponse{
			Uptime:          uptime.Round(time.Second).String(),
			UptimeSeconds:   uptime.Seconds(),
			StartTime:       ServerStats.startTime,
			RequestCount:    ServerStats.requestCount.Load(),
			PositionUpdates: ServerStats.positionUpdates.Load(),
			UnlockRejected:  ServerStats.unlockRejected.Load(),
			RateLimited:     ServerStats.rateLimitBlocked.Load(),
			Version:         "1.0.0",
		},
		Itinerary: itinerary,
		WebSocket: WebSocketStatsResponse{
			Connections: ServerStats.wsConnections.Load(),
			MessagesIn:  ServerStats.wsMessagesIn.Load(),
			MessagesOut: ServerStats.wsMessagesOut.Load(),
			Subscribers: map[string]int{
				hub.TopicItinerary: h.hub.SubscriberCount(hub.TopicItinerary),
				hub.TopicCountdown: h.hub.SubscriberCount(hub.TopicCountdown),
				hub.TopicWeather:   h.hub.SubscriberCount(hub.TopicWeather),
				hub.TopicPosition:  h.hub.SubscriberCount(hub.TopicPosition),
			},
		},
		Go: GoStatsResponse{
			Goroutines:  runtime.NumGoroutine(),
			HeapAlloc:   mem.HeapAlloc,
			HeapAllocMB: float64(mem.HeapAlloc) / 1024 / 1024,
			NumGC:       mem.NumGC,
			GoVersion:   runtime.Version(),
		},
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-cache")
	json.NewEncoder(w).Encode(response)
}
