package store

import (
	"math"
	"sync"
	"time"

	"github.com/aquihaydragonesgonzalo/FLAM-EURIBIA/internal/domain"
)

// Live holds the current trip state: the activity list with its user-toggled
// completed flags, the latest sensor fixes, and the most recent evaluated
// snapshot. Reads hand out copies; a new snapshot replaces the old one
// wholesale, so readers never observe a partially updated evaluation.
type Live struct {
	mu         sync.RWMutex
	activities []domain.Activity
	position   *domain.Position
	heading    float64
	hasHeading bool
	snapshot   *domain.Snapshot
}

func NewLive(activities []domain.Activity) *Live {
	acts := make([]domain.Activity, len(activities))
	copy(acts, activities)
	return &Live{activities: acts}
}

func (s *Live) Activities() []domain.Activity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Activity, len(s.activities))
	copy(out, s.activities)
	return out
}

func (s *Live) Activity(id string) (domain.Activity, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, a := range s.activities {
		if a.ID == id {
			return a, true
		}
	}
	return domain.Activity{}, false
}

// ToggleCompleted flips the user completion flag for one activity and returns
// the new value. Time progression never calls this; it is a user-only mutation.
func (s *Live) ToggleCompleted(id string) (bool, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.activities {
		if s.activities[i].ID == id {
			s.activities[i].Completed = !s.activities[i].Completed
			return s.activities[i].Completed, true
		}
	}
	return false, false
}

// SetCompleted applies a persisted completion flag without toggling, used when
// restoring state on startup.
func (s *Live) SetCompleted(id string, completed bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.activities {
		if s.activities[i].ID == id {
			s.activities[i].Completed = completed
			return
		}
	}
}

func (s *Live) SetPosition(c domain.Coords, at time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.position = &domain.Position{Coords: c, ReceivedAt: at}
}

// Position returns the latest fix, or nil if none has ever arrived. A silent
// position source is a valid steady state, not an error.
func (s *Live) Position() *domain.Position {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.position == nil {
		return nil
	}
	p := *s.position
	return &p
}

func (s *Live) SetHeading(deg float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.heading = deg
	s.hasHeading = true
}

// Heading returns the latest device heading, defaulting to 0 when no
// orientation event has arrived yet.
func (s *Live) Heading() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.heading
}

// SetSnapshot installs a freshly evaluated snapshot and reports whether the
// itinerary-facing part of it changed in a way subscribers should hear about.
// The countdown changes every second and is broadcast separately.
func (s *Live) SetSnapshot(snap domain.Snapshot) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	prev := s.snapshot
	s.snapshot = &snap
	return prev == nil || itineraryChanged(prev, &snap)
}

func (s *Live) Snapshot() (domain.Snapshot, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.snapshot == nil {
		return domain.Snapshot{}, false
	}
	return *s.snapshot, true
}

// itineraryChanged compares the parts of two snapshots that drive the
// timeline display. Sub-meter distance jitter and fractional progress noise
// do not count as changes.
func itineraryChanged(old, new *domain.Snapshot) bool {
	if len(old.Activities) != len(new.Activities) || len(old.Gaps) != len(new.Gaps) {
		return true
	}
	for i := range new.Activities {
		a, b := &old.Activities[i], &new.Activities[i]
		if a.Phase != b.Phase || a.Completed != b.Completed || a.Nearby != b.Nearby {
			return true
		}
		if math.Abs(a.Progress-b.Progress) >= 1 {
			return true
		}
		if math.Abs(a.DistanceMeters-b.DistanceMeters) >= 1 {
			return true
		}
		if math.Abs(a.Direction-b.Direction) >= 1 {
			return true
		}
	}
	for i := range new.Gaps {
		if old.Gaps[i].InTransit != new.Gaps[i].InTransit {
			return true
		}
	}
	if old.HasPosition != new.HasPosition {
		return true
	}
	return false
}
