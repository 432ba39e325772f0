package domain

import (
	"strconv"
	"time"
)

// Formatters below never fail: a missing input yields "" so a partially
// populated forecast renders blank lines instead of "null/18°".

// FormatCurrentTemperature renders the current temperature in the configured
// unit, e.g. "18℃".
func FormatCurrentTemperature(s WeatherSnapshot, cfg DisplayConfig) string {
	if s.Current == nil {
		return ""
	}
	return cfg.TemperatureUnit.Format(s.Current.Temperature)
}

// FormatTrendTemperature renders "{night}/{day}°". Both bounds are required; a
// lone bound is misleading and yields "".
func FormatTrendTemperature(night, day *int, unit TemperatureUnit) string {
	if night == nil || day == nil {
		return ""
	}
	return strconv.Itoa(unit.Round(*night)) + "/" + unit.FormatShort(*day)
}

// FormatTodayTrend applies FormatTrendTemperature to today's forecast.
func FormatTodayTrend(s WeatherSnapshot, cfg DisplayConfig) string {
	return FormatDailyTrend(s, 0, cfg)
}

// FormatDailyTrend applies FormatTrendTemperature to Daily[dayIndex].
func FormatDailyTrend(s WeatherSnapshot, dayIndex int, cfg DisplayConfig) string {
	if dayIndex < 0 || dayIndex >= len(s.Daily) {
		return ""
	}
	d := s.Daily[dayIndex]
	return FormatTrendTemperature(halfDayTemperature(d.Night), halfDayTemperature(d.Day), cfg.TemperatureUnit)
}

// FormatYesterdayTrend renders yesterday's baseline in trend form.
func FormatYesterdayTrend(s WeatherSnapshot, cfg DisplayConfig) string {
	if s.Yesterday == nil {
		return ""
	}
	return FormatTrendTemperature(s.Yesterday.NighttimeTemperature, s.Yesterday.DaytimeTemperature, cfg.TemperatureUnit)
}

func halfDayTemperature(h *HalfDay) *int {
	if h == nil {
		return nil
	}
	t := h.Temperature
	return &t
}

// FormatAqiOrHumidity renders "AQI {index} ({category})" when air quality is
// fully populated, otherwise "{Humidity} {value}%", otherwise "". AQI always
// wins; the two are never combined.
func FormatAqiOrHumidity(s WeatherSnapshot, loc Locale) string {
	if s.Current == nil {
		return ""
	}
	if aq := s.Current.AirQuality; aq != nil && aq.Index != nil && aq.Category != "" {
		return "AQI " + strconv.Itoa(*aq.Index) + " (" + aq.Category + ")"
	}
	if h := s.Current.Humidity; h != nil {
		return loc.label(labelHumidity) + " " + strconv.Itoa(*h) + "%"
	}
	return ""
}

// FormatWindLine renders "{direction} {level}" when both are present.
func FormatWindLine(s WeatherSnapshot) string {
	if s.Current == nil || s.Current.WindDirection == "" || s.Current.WindLevel == "" {
		return ""
	}
	return s.Current.WindDirection + " " + s.Current.WindLevel
}

// FormatFeelsLike renders "{Feels like} 16℃".
func FormatFeelsLike(s WeatherSnapshot, cfg DisplayConfig, loc Locale) string {
	if s.Current == nil || s.Current.FeelsLike == nil {
		return ""
	}
	return loc.label(labelFeelsLike) + " " + cfg.TemperatureUnit.Format(*s.Current.FeelsLike)
}

// FormatWeekLabel labels Daily[dayIndex]. Day 0 reads "Today" when reference
// falls on the snapshot's calendar date and "Yesterday" when reference is one
// calendar day behind it; every other case is the weekday of the forecast date.
// Calendar dates are compared in reference's time zone.
func FormatWeekLabel(s WeatherSnapshot, dayIndex int, reference time.Time, loc Locale) string {
	if dayIndex < 0 || dayIndex >= len(s.Daily) {
		return ""
	}
	if dayIndex == 0 && !s.LastUpdated.IsZero() && !reference.IsZero() {
		switch daysBetween(reference, s.LastUpdated.In(reference.Location())) {
		case 0:
			return loc.label(labelToday)
		case 1:
			return loc.label(labelYesterday)
		}
	}
	date := s.Daily[dayIndex].Date
	if date.IsZero() {
		return ""
	}
	return loc.Weekday(date.Weekday())
}

// FormatClock renders the time-slot line, e.g. "09:05 Mon".
func FormatClock(now time.Time, loc Locale) string {
	if now.IsZero() {
		return ""
	}
	return now.Format("15:04") + " " + loc.WeekdayShort(now.Weekday())
}

// FormatUpdateTime renders the snapshot's refresh time in zone.
func FormatUpdateTime(s WeatherSnapshot, zone *time.Location) string {
	if s.LastUpdated.IsZero() {
		return ""
	}
	if zone == nil {
		zone = time.UTC
	}
	return s.LastUpdated.In(zone).Format("15:04")
}

// calendarDay drops the clock, keeping t's own calendar date.
func calendarDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// daysBetween counts calendar days from "from" to "to".
func daysBetween(from, to time.Time) int {
	return int(calendarDay(to).Sub(calendarDay(from)).Hours() / 24)
}
