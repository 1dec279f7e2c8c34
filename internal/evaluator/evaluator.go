package evaluator

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/aquihaydragonesgonzalo/FLAM-EURIBIA/internal/domain"
	"github.com/aquihaydragonesgonzalo/FLAM-EURIBIA/internal/engine"
	"github.com/aquihaydragonesgonzalo/FLAM-EURIBIA/internal/hub"
	"github.com/aquihaydragonesgonzalo/FLAM-EURIBIA/internal/store"
)

// Broadcaster is the hub seam; nil disables fanout
type Broadcaster interface {
	Broadcast(topic string, payload any)
}

// Config carries the fixed daily targets and the tick cadence
type Config struct {
	Arrival      string // "HH:MM"
	AllAboard    string // "HH:MM"
	TickInterval time.Duration
}

// Evaluator drives the per-second recomputation of the itinerary snapshot and
// the countdown. The computation itself lives in engine and is pure; this
// type only owns the tick source and the push triggers, so everything
// time-dependent stays in one small place.
type Evaluator struct {
	store       *store.Live
	broadcaster Broadcaster
	cfg         Config
	logger      *slog.Logger

	// notify coalesces sensor pushes between ticks; a buffered single slot
	// is enough since evaluation always reads the latest store state.
	notify chan struct{}

	now func() time.Time

	ready   bool
	readyMu sync.RWMutex
}

func New(s *store.Live, broadcaster Broadcaster, cfg Config, logger *slog.Logger) *Evaluator {
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = time.Second
	}
	return &Evaluator{
		store:       s,
		broadcaster: broadcaster,
		cfg:         cfg,
		logger:      logger.With("component", "evaluator"),
		notify:      make(chan struct{}, 1),
		now:         time.Now,
	}
}

// Run evaluates once immediately, then on every tick and on every Notify,
// until the context is cancelled.
func (e *Evaluator) Run(ctx context.Context) {
	ticker := time.NewTicker(e.cfg.TickInterval)
	defer ticker.Stop()

	e.evaluate()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			e.evaluate()
		case <-e.notify:
			e.evaluate()
		}
	}
}

// Notify requests an out-of-band evaluation after a sensor push or a
// completion toggle. It never blocks; a pending request is enough.
func (e *Evaluator) Notify() {
	select {
	case e.notify <- struct{}{}:
	default:
	}
}

func (e *Evaluator) evaluate() {
	now := e.now()
	activities := e.store.Activities()

	var pos *domain.Coords
	if p := e.store.Position(); p != nil {
		pos = &p.Coords
	}
	heading := e.store.Heading()

	snap := engine.Evaluate(activities, now, pos, heading)
	snap.Countdown = engine.EvaluateCountdown(now, e.cfg.Arrival, e.cfg.AllAboard)

	changed := e.store.SetSnapshot(snap)

	if e.broadcaster != nil {
		e.broadcaster.Broadcast(hub.TopicCountdown, snap.Countdown)
		if changed {
			e.broadcaster.Broadcast(hub.TopicItinerary, snap)
		}
		if pos != nil && changed {
			e.broadcaster.Broadcast(hub.TopicPosition, domain.Position{Coords: *pos, ReceivedAt: now})
		}
	}

	if !e.IsReady() {
		e.setReady(true)
		e.logger.Info("evaluator ready", "activities", len(activities))
	}

	e.logger.Debug("evaluation completed",
		"phase_active", countPhase(snap, domain.PhaseActive),
		"has_position", snap.HasPosition,
		"countdown", snap.Countdown.Remaining,
		"changed", changed,
	)
}

func (e *Evaluator) IsReady() bool {
	e.readyMu.RLock()
	defer e.readyMu.RUnlock()
	return e.ready
}

func (e *Evaluator) setReady(ready bool) {
	e.readyMu.Lock()
	defer e.readyMu.Unlock()
	e.ready = ready
}

func countPhase(snap domain.Snapshot, phase domain.Phase) int {
	n := 0
	for _, a := range snap.Activities {
		if a.Phase == phase {
			n++
		}
	}
	return n
}
