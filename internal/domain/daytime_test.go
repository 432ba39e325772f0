package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsDaytimeByHour(t *testing.T) {
	tests := []struct {
		hour, minute int
		want         bool
	}{
		{4, 59, false},
		{5, 0, true},
		{12, 0, true},
		{18, 59, true},
		{19, 0, false},
		{0, 0, false},
	}

	for _, tt := range tests {
		at := time.Date(2024, 4, 26, tt.hour, tt.minute, 0, 0, shanghai)
		assert.Equal(t, tt.want, IsDaytimeByHour(at), at.Format("15:04"))
	}
}

func TestIsDaylight(t *testing.T) {
	sunrise := time.Date(2024, 4, 26, 5, 15, 0, 0, shanghai)
	sunset := time.Date(2024, 4, 26, 18, 30, 0, 0, shanghai)

	assert.False(t, IsDaylight(sunrise.Add(-time.Minute), sunrise, sunset))
	assert.True(t, IsDaylight(sunrise, sunrise, sunset))
	assert.True(t, IsDaylight(sunset.Add(-time.Second), sunrise, sunset))
	assert.False(t, IsDaylight(sunset, sunrise, sunset))
}

func TestIsDaytime(t *testing.T) {
	snap := testSnapshot()
	sunrise := time.Date(2024, 4, 26, 5, 15, 0, 0, shanghai)
	sunset := time.Date(2024, 4, 26, 18, 30, 0, 0, shanghai)
	snap.Daily[0].Sunrise = &sunrise
	snap.Daily[0].Sunset = &sunset

	// 18:45 is after sunset but before the 19:00 clock cutoff.
	at := time.Date(2024, 4, 26, 18, 45, 0, 0, shanghai)
	assert.True(t, IsDaytime(DaytimeClock, snap, at))
	assert.False(t, IsDaytime(DaytimeSun, snap, at))

	t.Run("sun source without sun times uses clock", func(t *testing.T) {
		noSun := testSnapshot()
		assert.True(t, IsDaytime(DaytimeSun, noSun, at))
	})

	t.Run("sun source without forecast uses clock", func(t *testing.T) {
		empty := WeatherSnapshot{}
		assert.False(t, IsDaytime(DaytimeSun, empty, time.Date(2024, 4, 26, 3, 0, 0, 0, shanghai)))
	})

	t.Run("unknown source uses clock", func(t *testing.T) {
		assert.True(t, IsDaytime(DaytimeSource("moon"), snap, at))
	})
}
