package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	LogLevel        slog.Level
	HTTPAddr        string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration

	GateCodes []string
	JWTSecret string
	TokenTTL  time.Duration

	ArrivalTime   string
	AllAboardTime string
	TickInterval  time.Duration
	ItineraryFile string
	ExportTitle   string

	TrackGPXPath string

	DBPath string

	WeatherEnabled         bool
	WeatherBaseURL         string
	WeatherLat             float64
	WeatherLon             float64
	WeatherTimezone        string
	WeatherForecastDays    int
	WeatherRefreshInterval time.Duration

	RedisEnabled  bool
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	CacheTTL      time.Duration

	RateLimitPerWindow int
	RateLimitWindow    time.Duration
	RateLimitWhitelist []string
}

// Load reads the configuration from the environment. A .env file in the
// working directory is merged in first when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	codes := getCSVEnv("GATE_CODES")
	if len(codes) == 0 {
		return nil, fmt.Errorf("GATE_CODES environment variable is required")
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable is required")
	}

	return &Config{
		LogLevel:        getLogLevelEnv("LOG_LEVEL", slog.LevelInfo),
		HTTPAddr:        getEnv("HTTP_ADDR", ":8080"),
		ReadTimeout:     getDurationEnv("READ_TIMEOUT", 10*time.Second),
		WriteTimeout:    getDurationEnv("WRITE_TIMEOUT", 10*time.Second),
		ShutdownTimeout: getDurationEnv("SHUTDOWN_TIMEOUT", 30*time.Second),

		GateCodes: codes,
		JWTSecret: secret,
		TokenTTL:  getDurationEnv("TOKEN_TTL", 48*time.Hour),

		ArrivalTime:   getEnv("ARRIVAL_TIME", "07:00"),
		AllAboardTime: getEnv("ONBOARD_TIME", "17:45"),
		TickInterval:  getDurationEnv("TICK_INTERVAL", time.Second),
		ItineraryFile: getEnv("ITINERARY_FILE", ""),
		ExportTitle:   getEnv("EXPORT_TITLE", "Flåm Shore Excursion"),

		TrackGPXPath: getEnv("TRACK_GPX_PATH", ""),

		DBPath: getEnv("DB_PATH", "flamday.db"),

		WeatherEnabled:         getBoolEnv("WEATHER_ENABLED", true),
		WeatherBaseURL:         getEnv("WEATHER_API_URL", "https://api.open-meteo.com/v1/forecast"),
		WeatherLat:             getFloatEnv("WEATHER_LAT", 60.8630),
		WeatherLon:             getFloatEnv("WEATHER_LON", 7.1128),
		WeatherTimezone:        getEnv("WEATHER_TIMEZONE", "Europe/Oslo"),
		WeatherForecastDays:    getIntEnv("WEATHER_FORECAST_DAYS", 5),
		WeatherRefreshInterval: getDurationEnv("WEATHER_REFRESH_INTERVAL", 30*time.Minute),

		RedisEnabled:  getBoolEnv("REDIS_ENABLED", false),
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getIntEnv("REDIS_DB", 0),
		CacheTTL:      getDurationEnv("CACHE_TTL", time.Hour),

		RateLimitPerWindow: getIntEnv("RATE_LIMIT_PER_WINDOW", 120),
		RateLimitWindow:    getDurationEnv("RATE_LIMIT_WINDOW", time.Minute),
		RateLimitWhitelist: getCSVEnv("RATE_LIMIT_WHITELIST"),
	}, nil
}

func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getDurationEnv(key string, defaultVal time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultVal
}

func getIntEnv(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}

func getFloatEnv(key string, defaultVal float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return defaultVal
}

func getBoolEnv(key string, defaultVal bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return defaultVal
}

func getLogLevelEnv(key string, defaultVal slog.Level) slog.Level {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}

	switch strings.ToLower(v) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return defaultVal
	}
}

func getCSVEnv(key string) []string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return nil
	}

	parts := strings.Split(v, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		t := strings.TrimSpace(p)
		if t != "" {
			result = append(result, t)
		}
	}
	return result
}
