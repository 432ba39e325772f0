package domain

import "time"

// DaytimeSource names how a renderer decides between day and night icons.
type DaytimeSource string

const (
	// DaytimeClock uses the local hour: day is 05:00 up to 19:00.
	DaytimeClock DaytimeSource = "clock"
	// DaytimeSun uses today's sunrise and sunset, falling back to the clock
	// when the forecast has no sun times.
	DaytimeSun DaytimeSource = "sun"
)

const (
	dayStartHour = 5
	dayEndHour   = 19
)

// IsDaytimeByHour reports whether t's local hour is in [05:00, 19:00).
func IsDaytimeByHour(t time.Time) bool {
	h := t.Hour()
	return h >= dayStartHour && h < dayEndHour
}

// IsDaylight reports whether now lies in [sunrise, sunset).
func IsDaylight(now, sunrise, sunset time.Time) bool {
	return !now.Before(sunrise) && now.Before(sunset)
}

// IsDaytime resolves day or night for s at now using source. now should
// already be in the location's zone.
func IsDaytime(source DaytimeSource, s WeatherSnapshot, now time.Time) bool {
	if source == DaytimeSun {
		if today, ok := s.Today(); ok && today.Sunrise != nil && today.Sunset != nil {
			return IsDaylight(now, *today.Sunrise, *today.Sunset)
		}
	}
	return IsDaytimeByHour(now)
}
