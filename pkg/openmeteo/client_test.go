package openmeteo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const forecastFixture = `{
	"latitude": 60.75,
	"longitude": 7.0,
	"hourly": {
		"time": ["2026-05-12T06:00", "2026-05-12T07:00", "2026-05-12T08:00"],
		"temperature_2m": [6.2, 7.1, 8.4],
		"precipitation_probability": [10, 15, 35],
		"weather_code": [2, 3, 61]
	},
	"daily": {
		"time": ["2026-05-12", "2026-05-13"],
		"temperature_2m_max": [12.5, 11.0],
		"temperature_2m_min": [4.1, 3.8],
		"weather_code": [3, 61],
		"sunrise": ["2026-05-12T05:02", "2026-05-13T04:59"],
		"sunset": ["2026-05-12T22:08", "2026-05-13T22:11"],
		"daylight_duration": [61560.0, 61920.0]
	}
}`

func TestFetchDecodesForecast(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "60.7500", r.URL.Query().Get("latitude"))
		assert.Equal(t, "Europe/Oslo", r.URL.Query().Get("timezone"))
		assert.Equal(t, "2", r.URL.Query().Get("forecast_days"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(forecastFixture))
	}))
	defer srv.Close()

	client := New(srv.URL, "Europe/Oslo")
	report, err := client.Fetch(context.Background(), 60.75, 7.0, 2)
	require.NoError(t, err)

	require.Len(t, report.Hourly, 3)
	assert.Equal(t, "07:00", report.Hourly[1].Time)
	assert.Equal(t, 7.1, report.Hourly[1].TempC)
	assert.Equal(t, 15.0, report.Hourly[1].PrecipProb)
	assert.Equal(t, 3, report.Hourly[1].WeatherCode)

	require.Len(t, report.Daily, 2)
	assert.Equal(t, "2026-05-12", report.Daily[0].Date)
	assert.Equal(t, 12.5, report.Daily[0].MaxC)
	assert.Equal(t, 4.1, report.Daily[0].MinC)

	require.NotNil(t, report.Astronomy)
	assert.Equal(t, 5, report.Astronomy.Sunrise.Hour())
	assert.Equal(t, 2, report.Astronomy.Sunrise.Minute())
	assert.Equal(t, 22, report.Astronomy.Sunset.Hour())
	assert.InDelta(t, 17.1, report.Astronomy.DaylightHours, 0.01)
	assert.False(t, report.FetchedAt.IsZero())
}

func TestFetchAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"error": true, "reason": "Latitude must be in range"}`))
	}))
	defer srv.Close()

	client := New(srv.URL, "Europe/Oslo")
	_, err := client.Fetch(context.Background(), 999, 7.0, 2)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Latitude must be in range")
}

func TestFetchBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := New(srv.URL, "Europe/Oslo")
	_, err := client.Fetch(context.Background(), 60.75, 7.0, 2)
	require.Error(t, err)
}

func TestHourLabel(t *testing.T) {
	assert.Equal(t, "07:00", hourLabel("2026-05-12T07:00"))
	assert.Equal(t, "23:45", hourLabel("2026-05-12T23:45"))
	assert.Equal(t, "garbage", hourLabel("garbage"))
}
