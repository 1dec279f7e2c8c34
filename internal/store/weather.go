package store

import (
	"sync"
	"time"

	"github.com/aquihaydragonesgonzalo/FLAM-EURIBIA/internal/domain"
)

// Weather keeps the last successfully fetched forecast. A failed refresh never
// clears it; stale data beats no data for a one-day shore excursion.
type Weather struct {
	mu     sync.RWMutex
	report *domain.WeatherReport
}

func NewWeather() *Weather {
	return &Weather{}
}

func (s *Weather) SetReport(r domain.WeatherReport) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.report = &r
}

// Report returns the latest report. ok is false until the first successful
// fetch; consumers show a loading state then.
func (s *Weather) Report() (domain.WeatherReport, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.report == nil {
		return domain.WeatherReport{}, false
	}
	return *s.report, true
}

func (s *Weather) LastFetched() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.report == nil {
		return time.Time{}
	}
	return s.report.FetchedAt
}
