package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/aquihaydragonesgonzalo/FLAM-EURIBIA/internal/auth"
	"github.com/aquihaydragonesgonzalo/FLAM-EURIBIA/internal/cache"
	"github.com/aquihaydragonesgonzalo/FLAM-EURIBIA/internal/config"
	"github.com/aquihaydragonesgonzalo/FLAM-EURIBIA/internal/evaluator"
	"github.com/aquihaydragonesgonzalo/FLAM-EURIBIA/internal/handler"
	"github.com/aquihaydragonesgonzalo/FLAM-EURIBIA/internal/hub"
	"github.com/aquihaydragonesgonzalo/FLAM-EURIBIA/internal/itinerary"
	"github.com/aquihaydragonesgonzalo/FLAM-EURIBIA/internal/middleware"
	"github.com/aquihaydragonesgonzalo/FLAM-EURIBIA/internal/speech"
	"github.com/aquihaydragonesgonzalo/FLAM-EURIBIA/internal/storage"
	"github.com/aquihaydragonesgonzalo/FLAM-EURIBIA/internal/store"
	"github.com/aquihaydragonesgonzalo/FLAM-EURIBIA/internal/weather"
	"github.com/aquihaydragonesgonzalo/FLAM-EURIBIA/pkg/gpx"
	"github.com/aquihaydragonesgonzalo/FLAM-EURIBIA/pkg/openmeteo"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))
	slog.SetDefault(logger)

	logger.Info("starting flamday server",
		"log_level", cfg.LogLevel.String(),
		"http_addr", cfg.HTTPAddr,
		"weather_enabled", cfg.WeatherEnabled,
		"redis_enabled", cfg.RedisEnabled,
	)

	db, err := storage.Open(cfg.DBPath)
	if err != nil {
		logger.Error("failed to open database", "path", cfg.DBPath, "error", err)
		os.Exit(1)
	}
	defer db.Close()

	activities := itinerary.Default()
	if cfg.ItineraryFile != "" {
		activities, err = itinerary.LoadFile(cfg.ItineraryFile)
		if err != nil {
			logger.Error("failed to load itinerary file", "path", cfg.ItineraryFile, "error", err)
			os.Exit(1)
		}
		logger.Info("loaded itinerary override", "path", cfg.ItineraryFile, "activities", len(activities))
	}

	liveStore := store.NewLive(activities)

	completed, err := db.CompletedActivities()
	if err != nil {
		logger.Warn("failed to restore completed flags", "error", err)
	}
	for _, id := range completed {
		liveStore.SetCompleted(id, true)
	}

	weatherStore := store.NewWeather()
	wsHub := hub.NewHub(logger)

	gate, err := auth.NewGate(cfg.GateCodes, cfg.JWTSecret, cfg.TokenTTL, db, logger)
	if err != nil {
		logger.Error("failed to init gate", "error", err)
		os.Exit(1)
	}

	var redisCache *cache.RedisCache
	if cfg.RedisEnabled {
		redisCache, err = cache.NewRedisCache(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, logger)
		if err != nil {
			logger.Warn("redis unavailable, continuing without cache", "error", err)
		} else {
			defer redisCache.Close()
		}
	}

	eval := evaluator.New(liveStore, wsHub, evaluator.Config{
		Arrival:      cfg.ArrivalTime,
		AllAboard:    cfg.AllAboardTime,
		TickInterval: cfg.TickInterval,
	}, logger)

	var weatherUpdater *weather.Updater
	if cfg.WeatherEnabled {
		weatherClient := openmeteo.New(cfg.WeatherBaseURL, cfg.WeatherTimezone)
		weatherUpdater = weather.NewUpdater(weatherClient, weatherStore, wsHub, redisCache, weather.Config{
			Lat:             cfg.WeatherLat,
			Lon:             cfg.WeatherLon,
			ForecastDays:    cfg.WeatherForecastDays,
			RefreshInterval: cfg.WeatherRefreshInterval,
			CacheTTL:        cfg.CacheTTL,
		}, logger)
	}

	var track *gpx.Track
	if cfg.TrackGPXPath != "" {
		track, err = gpx.NewParser(logger).ParseFile(cfg.TrackGPXPath)
		if err != nil {
			logger.Warn("failed to load GPX track", "path", cfg.TrackGPXPath, "error", err)
			track = nil
		}
	}

	player := speech.NewPlayer(itinerary.AudioGuides(), nil, logger)

	httpHandler := handler.NewHTTPHandler(liveStore, eval, db, logger)
	gateHandler := handler.NewGateHandler(gate, logger)
	guideHandler := handler.NewGuideHandler(player, itinerary.Pronunciations())
	weatherHandler := handler.NewWeatherHandler(weatherStore)
	budgetHandler := handler.NewBudgetHandler(liveStore, db, logger)
	exportHandler := handler.NewExportHandler(liveStore, cfg.ExportTitle, logger)
	mapHandler := handler.NewMapHandler(liveStore, track, logger)
	wsHandler := handler.NewWSHandler(wsHub, liveStore, weatherStore, eval, logger)
	statsHandler := handler.NewStatsHandler(liveStore, wsHub)

	var weatherReady handler.ReadyChecker
	if weatherUpdater != nil {
		weatherReady = weatherUpdater
	}
	healthHandler := handler.NewHealthHandler(eval, weatherReady)

	gated := http.NewServeMux()

	gated.HandleFunc("GET /v1/itinerary", httpHandler.GetItinerary)
	gated.HandleFunc("GET /v1/activities", httpHandler.ListActivities)
	gated.HandleFunc("GET /v1/activities/{id}", httpHandler.GetActivity)
	gated.HandleFunc("POST /v1/activities/{id}/complete", httpHandler.ToggleCompleted)
	gated.HandleFunc("GET /v1/countdown", httpHandler.GetCountdown)
	gated.HandleFunc("POST /v1/position", httpHandler.PostPosition)
	gated.HandleFunc("POST /v1/heading", httpHandler.PostHeading)

	gated.HandleFunc("GET /v1/weather", weatherHandler.GetWeather)

	gated.HandleFunc("GET /v1/guide/tracks", guideHandler.ListTracks)
	gated.HandleFunc("POST /v1/guide/tracks/{id}/play", guideHandler.Play)
	gated.HandleFunc("POST /v1/guide/stop", guideHandler.Stop)
	gated.HandleFunc("GET /v1/guide/status", guideHandler.GetStatus)
	gated.HandleFunc("GET /v1/guide/pronunciations", guideHandler.ListPronunciations)

	gated.HandleFunc("GET /v1/budget", budgetHandler.GetBudget)
	gated.HandleFunc("POST /v1/budget/expenses", budgetHandler.AddExpense)
	gated.HandleFunc("DELETE /v1/budget/expenses/{id}", budgetHandler.DeleteExpense)

	gated.HandleFunc("GET /v1/export", exportHandler.Export)

	gated.HandleFunc("GET /v1/map/track", mapHandler.GetTrack)
	gated.HandleFunc("GET /v1/map/markers", mapHandler.GetMarkers)
	gated.HandleFunc("GET /v1/map/layers", mapHandler.GetLayers)

	gated.HandleFunc("/v1/ws", wsHandler.ServeWS)

	mux := http.NewServeMux()
	mux.Handle("/v1/", gate.Middleware(gated))

	mux.HandleFunc("POST /v1/gate/unlock", gateHandler.Unlock)
	mux.HandleFunc("GET /v1/stats", statsHandler.GetStats)
	mux.HandleFunc("GET /healthz", healthHandler.Healthz)
	mux.HandleFunc("GET /readyz", healthHandler.Readyz)

	rl := middleware.NewRateLimiter(cfg.RateLimitPerWindow, cfg.RateLimitWindow, cfg.RateLimitWhitelist,
		handler.ServerStats.IncRateLimitBlocked, logger)

	root := handler.GzipMiddleware(handler.CORSMiddleware(rl.Middleware(mux)))

	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      root,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go wsHub.Run(ctx)

	go eval.Run(ctx)

	if weatherUpdater != nil {
		go weatherUpdater.Start(ctx)
	}

	go func() {
		logger.Info("starting HTTP server", "addr", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", "error", err)
			cancel()
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	logger.Info("shutdown signal received")

	player.Stop()
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", "error", err)
	}

	logger.Info("shutdown complete")
}
