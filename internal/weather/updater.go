package weather

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/aquihaydragonesgonzalo/FLAM-EURIBIA/internal/cache"
	"github.com/aquihaydragonesgonzalo/FLAM-EURIBIA/internal/domain"
	"github.com/aquihaydragonesgonzalo/FLAM-EURIBIA/internal/hub"
	"github.com/aquihaydragonesgonzalo/FLAM-EURIBIA/internal/schedule"
	"github.com/aquihaydragonesgonzalo/FLAM-EURIBIA/internal/store"
)

// Forecaster fetches a weather report for a coordinate.
type Forecaster interface {
	Fetch(ctx context.Context, lat, lon float64, forecastDays int) (*domain.WeatherReport, error)
}

type Broadcaster interface {
	Broadcast(topic string, payload any)
}

type Config struct {
	Lat             float64
	Lon             float64
	ForecastDays    int
	RefreshInterval time.Duration
	CacheTTL        time.Duration

	// Hourly entries outside [WindowStart, WindowEnd] are dropped; the rest
	// of the day is not part of the shore excursion.
	WindowStart string
	WindowEnd   string
}

// Updater refreshes the weather store on an interval. A failed refresh keeps
// the previous report; the optional redis cache seeds the store across
// restarts so the first response does not wait on Open-Meteo.
type Updater struct {
	client Forecaster
	store  *store.Weather
	hub    Broadcaster
	cache  *cache.RedisCache
	cfg    Config
	logger *slog.Logger

	ready   bool
	readyMu sync.RWMutex
}

func NewUpdater(client Forecaster, st *store.Weather, h Broadcaster, c *cache.RedisCache, cfg Config, logger *slog.Logger) *Updater {
	if cfg.ForecastDays <= 0 {
		cfg.ForecastDays = 5
	}
	if cfg.WindowStart == "" {
		cfg.WindowStart = "07:00"
	}
	if cfg.WindowEnd == "" {
		cfg.WindowEnd = "18:00"
	}
	if cfg.RefreshInterval <= 0 {
		cfg.RefreshInterval = 30 * time.Minute
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = time.Hour
	}
	return &Updater{
		client: client,
		store:  st,
		hub:    h,
		cache:  c,
		cfg:    cfg,
		logger: logger.With("component", "weather_updater"),
	}
}

func (u *Updater) Start(ctx context.Context) {
	u.seedFromCache(ctx)
	u.update(ctx)

	ticker := time.NewTicker(u.cfg.RefreshInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			u.update(ctx)
		}
	}
}

func (u *Updater) update(ctx context.Context) {
	start := time.Now()

	report, err := u.client.Fetch(ctx, u.cfg.Lat, u.cfg.Lon, u.cfg.ForecastDays)
	if err != nil {
		u.logger.Error("weather refresh failed", "error", err)
		return
	}

	report.Hourly = u.filterWindow(report.Hourly)
	u.store.SetReport(*report)
	u.setReady(true)

	if u.cache != nil {
		if err := u.cache.SetJSONCompressed(ctx, cache.KeyWeatherReport, report, u.cfg.CacheTTL); err != nil {
			u.logger.Warn("failed to cache weather report", "error", err)
		}
	}

	if u.hub != nil {
		u.hub.Broadcast(hub.TopicWeather, report)
	}

	u.logger.Info("weather refreshed",
		"hourly", len(report.Hourly),
		"daily", len(report.Daily),
		"duration_ms", time.Since(start).Milliseconds(),
	)
}

func (u *Updater) filterWindow(hourly []domain.HourlyForecast) []domain.HourlyForecast {
	start := schedule.MinutesOfDay(u.cfg.WindowStart)
	end := schedule.MinutesOfDay(u.cfg.WindowEnd)

	out := make([]domain.HourlyForecast, 0, len(hourly))
	for _, h := range hourly {
		m := schedule.MinutesOfDay(h.Time)
		if m >= start && m <= end {
			out = append(out, h)
		}
	}
	return out
}

func (u *Updater) seedFromCache(ctx context.Context) {
	if u.cache == nil {
		return
	}

	var report domain.WeatherReport
	found, err := u.cache.GetJSONCompressed(ctx, cache.KeyWeatherReport, &report)
	if err != nil {
		u.logger.Warn("failed to read cached weather report", "error", err)
		return
	}
	if !found {
		return
	}

	u.store.SetReport(report)
	u.setReady(true)
	u.logger.Info("seeded weather from cache", "fetched_at", report.FetchedAt)
}

func (u *Updater) IsReady() bool {
	u.readyMu.RLock()
	defer u.readyMu.RUnlock()
	return u.ready
}

func (u *Updater) setReady(ready bool) {
	u.readyMu.Lock()
	defer u.readyMu.Unlock()
	u.ready = ready
}
