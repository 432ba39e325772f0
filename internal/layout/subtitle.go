package layout

import (
	"strings"

	"github.com/couchcryptid/weather-presenter/internal/domain"
)

// subtitleLine renders the time slot for the configured selector. Unknown
// selectors show the clock.
func subtitleLine(in input) string {
	switch in.cfg.Subtitle {
	case domain.SubtitleAQI:
		return aqiOrHumidity(in)
	case domain.SubtitleWind:
		return domain.FormatWindLine(in.snap)
	case domain.SubtitleLunar:
		return lunar(in)
	case domain.SubtitleFeelsLike:
		return domain.FormatFeelsLike(in.snap, in.cfg, in.rc.Locale)
	case domain.SubtitleCustom:
		return FormatCustomSubtitle(in.cfg.CustomSubtitle, in.snap, in.cfg, in.rc)
	default:
		return domain.FormatClock(in.rc.Now, in.rc.Locale)
	}
}

// lunar gates the lunar date on a Chinese locale and the user's preference.
func lunar(in input) string {
	if !in.rc.Locale.IsChinese() || in.cfg.HideLunar {
		return ""
	}
	return domain.FormatLunarSubtitle(in.rc.Now)
}

// CustomKeywords lists the placeholders understood by FormatCustomSubtitle.
var CustomKeywords = map[string]string{
	"$cw$":   "current weather text",
	"$ct$":   "current temperature",
	"$ft$":   "feels-like temperature",
	"$tt$":   "today's night/day temperatures",
	"$yt$":   "yesterday's night/day temperatures",
	"$aqi$":  "air quality, or humidity",
	"$wind$": "wind direction and level",
	"$l$":    "lunar date",
	"$w$":    "weekday",
	"$d$":    "date",
	"$ut$":   "last update time",
	"$lc$":   "location name",
}

// FormatCustomSubtitle expands a user template such as "$lc$ $ct$ · $aqi$".
// Placeholders whose value is missing expand to nothing.
func FormatCustomSubtitle(template string, snap domain.WeatherSnapshot, cfg domain.DisplayConfig, rc RenderContext) string {
	if template == "" {
		return ""
	}
	in := input{snap: snap, cfg: cfg, rc: rc}

	var feelsLike, weekday, date string
	if snap.Current != nil && snap.Current.FeelsLike != nil {
		feelsLike = cfg.TemperatureUnit.Format(*snap.Current.FeelsLike)
	}
	if !rc.Now.IsZero() {
		weekday = rc.Locale.Weekday(rc.Now.Weekday())
		date = rc.Now.Format("01-02")
	}

	r := strings.NewReplacer(
		"$cw$", weatherText(in),
		"$ct$", currentTemperature(in),
		"$ft$", feelsLike,
		"$tt$", todayTrend(in),
		"$yt$", domain.FormatYesterdayTrend(snap, cfg),
		"$aqi$", aqiOrHumidity(in),
		"$wind$", domain.FormatWindLine(snap),
		"$l$", lunar(in),
		"$w$", weekday,
		"$d$", date,
		"$ut$", domain.FormatUpdateTime(snap, rc.Now.Location()),
		"$lc$", locationName(in),
	)
	return strings.TrimSpace(r.Replace(template))
}
