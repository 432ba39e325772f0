package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validSnapshotJSON = `{
	"location": {"id": "loc-sh", "name": "Shanghai", "timezone": "Asia/Shanghai"},
	"current": {
		"temperature": 18,
		"feels_like": 16,
		"condition": "PARTLY_CLOUDY",
		"weather_text": "Partly cloudy",
		"wind_direction": "NE",
		"wind_level": "Level 3",
		"humidity": 60,
		"air_quality": {"index": 42, "category": "Good"}
	},
	"daily": [
		{
			"date": "2024-04-26T00:00:00+08:00",
			"day": {"condition": "cloudy", "temperature": 20, "precipitation_probability": 10},
			"night": {"condition": "clear", "temperature": 15},
			"sunrise": "2024-04-26T05:15:00+08:00",
			"sunset": "2024-04-26T18:30:00+08:00"
		}
	],
	"yesterday": {"day": 21, "night": 13},
	"last_updated": "2024-04-26T08:30:00+08:00"
}`

func TestParseSnapshot(t *testing.T) {
	t.Run("valid snapshot", func(t *testing.T) {
		snap, err := ParseSnapshot(RawMessage{Value: []byte(validSnapshotJSON)})
		require.NoError(t, err)

		assert.Equal(t, "loc-sh", snap.Location.ID)
		require.NotNil(t, snap.Current)
		assert.Equal(t, 18, snap.Current.Temperature)
		assert.Equal(t, ConditionCloudy, snap.Current.Condition)
		require.NotNil(t, snap.Current.AirQuality)
		assert.Equal(t, 42, *snap.Current.AirQuality.Index)
		require.Len(t, snap.Daily, 1)
		assert.Equal(t, 15, snap.Daily[0].Night.Temperature)
		assert.Equal(t, 10, *snap.Daily[0].Day.PrecipitationProbability)
		require.NotNil(t, snap.Daily[0].Sunset)
		assert.Equal(t, 18, snap.Daily[0].Sunset.Hour())
		assert.Equal(t, 21, *snap.Yesterday.DaytimeTemperature)
		assert.Equal(t, 13, *snap.Yesterday.NighttimeTemperature)
		assert.True(t, snap.LastUpdated.Equal(time.Date(2024, 4, 26, 0, 30, 0, 0, time.UTC)))
	})

	t.Run("forecast only", func(t *testing.T) {
		data := `{"location":{"id":"loc-1"},"daily":[{"date":"2024-04-26T00:00:00Z"}],"last_updated":"2024-04-26T00:00:00Z"}`
		snap, err := ParseSnapshot(RawMessage{Value: []byte(data)})
		require.NoError(t, err)
		assert.Nil(t, snap.Current)
	})

	t.Run("unmapped condition becomes unknown", func(t *testing.T) {
		data := `{"location":{"id":"loc-1"},"current":{"temperature":3,"condition":"volcanic ash"},"daily":[{"date":"2024-04-26T00:00:00Z"}],"last_updated":"2024-04-26T00:00:00Z"}`
		snap, err := ParseSnapshot(RawMessage{Value: []byte(data)})
		require.NoError(t, err)
		assert.Equal(t, ConditionUnknown, snap.Current.Condition)
	})

	t.Run("invalid JSON", func(t *testing.T) {
		_, err := ParseSnapshot(RawMessage{Value: []byte("{invalid json")})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse snapshot")
	})

	t.Run("current without daily", func(t *testing.T) {
		data := `{"location":{"id":"loc-1"},"current":{"temperature":3,"condition":"rain"},"daily":[],"last_updated":"2024-04-26T00:00:00Z"}`
		_, err := ParseSnapshot(RawMessage{Value: []byte(data)})
		require.ErrorIs(t, err, ErrNoDailyForecast)
	})

	t.Run("missing location id", func(t *testing.T) {
		data := `{"location":{"name":"Nowhere"},"daily":[],"last_updated":"2024-04-26T00:00:00Z"}`
		_, err := ParseSnapshot(RawMessage{Value: []byte(data)})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "ID")
	})

	t.Run("missing last updated", func(t *testing.T) {
		data := `{"location":{"id":"loc-1"},"daily":[]}`
		_, err := ParseSnapshot(RawMessage{Value: []byte(data)})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "LastUpdated")
	})

	t.Run("humidity out of range", func(t *testing.T) {
		data := `{"location":{"id":"loc-1"},"current":{"temperature":3,"humidity":140},"daily":[{"date":"2024-04-26T00:00:00Z"}],"last_updated":"2024-04-26T00:00:00Z"}`
		_, err := ParseSnapshot(RawMessage{Value: []byte(data)})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Humidity")
	})

	t.Run("precipitation probability out of range", func(t *testing.T) {
		data := `{"location":{"id":"loc-1"},"daily":[{"date":"2024-04-26T00:00:00Z","day":{"condition":"rain","temperature":9,"precipitation_probability":101}}],"last_updated":"2024-04-26T00:00:00Z"}`
		_, err := ParseSnapshot(RawMessage{Value: []byte(data)})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "PrecipitationProbability")
	})

	t.Run("negative aqi", func(t *testing.T) {
		data := `{"location":{"id":"loc-1"},"current":{"temperature":3,"air_quality":{"index":-1,"category":"Good"}},"daily":[{"date":"2024-04-26T00:00:00Z"}],"last_updated":"2024-04-26T00:00:00Z"}`
		_, err := ParseSnapshot(RawMessage{Value: []byte(data)})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Index")
	})
}
