package domain

import (
	"context"
	"time"
)

// RawMessage represents an unprocessed message from the snapshot topic.
type RawMessage struct {
	Key       []byte
	Value     []byte
	Headers   map[string]string
	Topic     string
	Partition int
	Offset    int64
	Timestamp time.Time
	Commit    func(ctx context.Context) error
}

// Location identifies the place a snapshot describes.
type Location struct {
	ID       string `json:"id" validate:"required"`
	Name     string `json:"name,omitempty"`
	Timezone string `json:"timezone,omitempty"` // IANA identifier, e.g. "Asia/Shanghai"
}

// AirQuality is the current air quality reading. Index and Category must both
// be set for the AQI line to render.
type AirQuality struct {
	Index    *int   `json:"index,omitempty" validate:"omitempty,min=0"`
	Category string `json:"category,omitempty"`
}

// Current holds the current conditions. Temperatures are canonical °C.
type Current struct {
	Temperature   int           `json:"temperature"`
	FeelsLike     *int          `json:"feels_like,omitempty"`
	Condition     ConditionCode `json:"condition"`
	WeatherText   string        `json:"weather_text,omitempty"`
	WindDirection string        `json:"wind_direction,omitempty"`
	WindLevel     string        `json:"wind_level,omitempty"`
	Humidity      *int          `json:"humidity,omitempty" validate:"omitempty,min=0,max=100"`
	AirQuality    *AirQuality   `json:"air_quality,omitempty"`
}

// HalfDay is the day-time or night-time part of a daily forecast.
type HalfDay struct {
	Condition                ConditionCode `json:"condition"`
	Temperature              int           `json:"temperature"`
	PrecipitationProbability *int          `json:"precipitation_probability,omitempty" validate:"omitempty,min=0,max=100"`
}

// Daily is one day of the forecast.
type Daily struct {
	Date    time.Time  `json:"date"`
	Day     *HalfDay   `json:"day,omitempty"`
	Night   *HalfDay   `json:"night,omitempty"`
	Sunrise *time.Time `json:"sunrise,omitempty"`
	Sunset  *time.Time `json:"sunset,omitempty"`
}

// Yesterday is the trend-chart baseline.
type Yesterday struct {
	DaytimeTemperature   *int `json:"day,omitempty"`
	NighttimeTemperature *int `json:"night,omitempty"`
}

// WeatherSnapshot is the normalized weather model produced once per refresh
// cycle. Daily[0] is today relative to LastUpdated's calendar date.
type WeatherSnapshot struct {
	Location    Location   `json:"location"`
	Current     *Current   `json:"current,omitempty"`
	Daily       []Daily    `json:"daily" validate:"dive"`
	Yesterday   *Yesterday `json:"yesterday,omitempty"`
	LastUpdated time.Time  `json:"last_updated" validate:"required"`
}

// Today returns the first daily record, if any.
func (s WeatherSnapshot) Today() (Daily, bool) {
	if len(s.Daily) == 0 {
		return Daily{}, false
	}
	return s.Daily[0], true
}
