package domain

import "time"

// HourlyForecast is one hour of the excursion-window forecast
type HourlyForecast struct {
	Time        string  `json:"time"` // "HH:MM"
	TempC       float64 `json:"temp"`
	PrecipProb  float64 `json:"precip"`
	WeatherCode int     `json:"code"`
}

// DailyForecast is one day of the outlook
type DailyForecast struct {
	Date        string  `json:"date"` // "2006-01-02"
	MaxC        float64 `json:"max"`
	MinC        float64 `json:"min"`
	WeatherCode int     `json:"code"`
}

// Astronomy holds the solar data for the excursion day
type Astronomy struct {
	Sunrise       time.Time `json:"sunrise"`
	Sunset        time.Time `json:"sunset"`
	DaylightHours float64   `json:"daylightHours"`
}

// WeatherReport is the latest successfully fetched weather state. FetchedAt is
// zero until the first fetch succeeds; consumers render a loading state then.
type WeatherReport struct {
	Hourly    []HourlyForecast `json:"hourly"`
	Daily     []DailyForecast  `json:"daily"`
	Astronomy *Astronomy       `json:"astronomy,omitempty"`
	FetchedAt time.Time        `json:"fetchedAt"`
}
