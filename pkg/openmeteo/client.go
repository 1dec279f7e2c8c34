package openmeteo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/aquihaydragonesgonzalo/FLAM-EURIBIA/internal/domain"
)

const DefaultBaseURL = "https://api.open-meteo.com/v1/forecast"

type Client struct {
	baseURL    string
	timezone   string
	httpClient *http.Client
}

func New(baseURL, timezone string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:  baseURL,
		timezone: timezone,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        10,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
}

type apiResponse struct {
	Hourly struct {
		Time          []string  `json:"time"`
		Temperature2m []float64 `json:"temperature_2m"`
		PrecipProb    []float64 `json:"precipitation_probability"`
		WeatherCode   []int     `json:"weather_code"`
	} `json:"hourly"`
	Daily struct {
		Time             []string  `json:"time"`
		Temperature2mMax []float64 `json:"temperature_2m_max"`
		Temperature2mMin []float64 `json:"temperature_2m_min"`
		WeatherCode      []int     `json:"weather_code"`
		Sunrise          []string  `json:"sunrise"`
		Sunset           []string  `json:"sunset"`
		DaylightDuration []float64 `json:"daylight_duration"`
	} `json:"daily"`
	Reason string `json:"reason,omitempty"`
	Error  bool   `json:"error,omitempty"`
}

// Fetch retrieves the hourly forecast, the daily outlook and the solar data
// for the given coordinates in a single Open-Meteo request.
func (c *Client) Fetch(ctx context.Context, lat, lon float64, forecastDays int) (*domain.WeatherReport, error) {
	params := url.Values{}
	params.Set("latitude", fmt.Sprintf("%.4f", lat))
	params.Set("longitude", fmt.Sprintf("%.4f", lon))
	params.Set("hourly", "temperature_2m,precipitation_probability,weather_code")
	params.Set("daily", "temperature_2m_max,temperature_2m_min,weather_code,sunrise,sunset,daylight_duration")
	params.Set("timezone", c.timezone)
	params.Set("forecast_days", fmt.Sprintf("%d", forecastDays))

	reqURL := fmt.Sprintf("%s?%s", c.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var apiResp apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	if apiResp.Error {
		return nil, fmt.Errorf("API error: %s", apiResp.Reason)
	}

	return c.toDomain(&apiResp), nil
}

func (c *Client) toDomain(apiResp *apiResponse) *domain.WeatherReport {
	report := &domain.WeatherReport{
		FetchedAt: time.Now(),
	}

	loc, err := time.LoadLocation(c.timezone)
	if err != nil {
		loc = time.UTC
	}

	// Hourly entries are reduced to bare "HH:MM" labels, so only the first
	// forecast day is kept; later days would alias onto the same labels.
	h := apiResp.Hourly
	var firstDay string
	if len(h.Time) > 0 {
		firstDay = datePrefix(h.Time[0])
	}
	for i, t := range h.Time {
		if i >= len(h.Temperature2m) || i >= len(h.WeatherCode) {
			break
		}
		if datePrefix(t) != firstDay {
			break
		}
		var precip float64
		if i < len(h.PrecipProb) {
			precip = h.PrecipProb[i]
		}
		report.Hourly = append(report.Hourly, domain.HourlyForecast{
			Time:        hourLabel(t),
			TempC:       h.Temperature2m[i],
			PrecipProb:  precip,
			WeatherCode: h.WeatherCode[i],
		})
	}

	d := apiResp.Daily
	for i, t := range d.Time {
		if i >= len(d.Temperature2mMax) || i >= len(d.Temperature2mMin) || i >= len(d.WeatherCode) {
			break
		}
		report.Daily = append(report.Daily, domain.DailyForecast{
			Date:        t,
			MaxC:        d.Temperature2mMax[i],
			MinC:        d.Temperature2mMin[i],
			WeatherCode: d.WeatherCode[i],
		})
	}

	if len(d.Sunrise) > 0 && len(d.Sunset) > 0 {
		sunrise, errRise := time.ParseInLocation("2006-01-02T15:04", d.Sunrise[0], loc)
		sunset, errSet := time.ParseInLocation("2006-01-02T15:04", d.Sunset[0], loc)
		if errRise == nil && errSet == nil {
			astro := &domain.Astronomy{
				Sunrise: sunrise,
				Sunset:  sunset,
			}
			if len(d.DaylightDuration) > 0 {
				astro.DaylightHours = d.DaylightDuration[0] / 3600
			} else {
				astro.DaylightHours = sunset.Sub(sunrise).Hours()
			}
			report.Astronomy = astro
		}
	}

	return report
}

// hourLabel reduces an ISO hourly timestamp like "2026-05-12T07:00" to "07:00".
func hourLabel(iso string) string {
	if i := strings.IndexByte(iso, 'T'); i >= 0 && len(iso) >= i+6 {
		return iso[i+1 : i+6]
	}
	return iso
}

func datePrefix(iso string) string {
	if i := strings.IndexByte(iso, 'T'); i >= 0 {
		return iso[:i]
	}
	return iso
}
