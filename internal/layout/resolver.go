// Package layout resolves a widget's view style into a Presentation. Every
// variant is a row in one table; there is no per-variant code path.
package layout

import (
	"math"
	"strings"
	"time"

	"github.com/couchcryptid/weather-presenter/internal/domain"
)

const (
	colorWhite    = "#FFFFFF"
	colorDarkText = "#212121"
	colorDarkCard = "#000000"
)

// RenderContext carries the per-render facts the core must not look up
// itself. Now is expected to be in the location's zone.
type RenderContext struct {
	Now       time.Time
	Locale    domain.Locale
	IsDaytime bool
}

type input struct {
	snap domain.WeatherSnapshot
	cfg  domain.DisplayConfig
	rc   RenderContext
}

type lineBuilder func(in input) string

// variant is one row of the layout table. days > 0 shows a daily strip of that
// many cells below the current-conditions icon.
type variant struct {
	title    lineBuilder
	subtitle lineBuilder
	timeSlot bool
	days     int
}

var variants = map[domain.ViewStyle]variant{
	domain.ViewRectangle: {title: line(weatherText, currentTemperature), subtitle: line(locationName, todayTrend), timeSlot: true},
	domain.ViewSymmetry:  {title: line(locationName, weatherText), subtitle: line(currentTemperature, todayTrend), timeSlot: true},
	domain.ViewTile:      {title: currentTemperature, subtitle: weatherText, timeSlot: true},
	domain.ViewMini:      {title: currentTemperature, subtitle: locationName},
	domain.ViewVertical:  {title: currentTemperature, subtitle: line(weatherText, todayTrend), timeSlot: true},
	domain.ViewTemp:      {title: currentTemperature, subtitle: todayTrend},
	domain.ViewPixel:     {title: line(currentTemperature, weatherText), subtitle: aqiOrHumidity, timeSlot: true},
	domain.ViewDaily3:    {title: line(weatherText, currentTemperature), subtitle: locationName, timeSlot: true, days: 3},
	domain.ViewDaily5:    {title: line(weatherText, currentTemperature), subtitle: locationName, days: 5},
}

// EffectiveStyle maps unknown view styles onto ViewSymmetry.
func EffectiveStyle(style domain.ViewStyle) domain.ViewStyle {
	if _, ok := variants[style]; ok {
		return style
	}
	return domain.ViewSymmetry
}

// Resolve builds the Presentation for style. It reads nothing beyond its
// arguments and never mutates snap.
func Resolve(style domain.ViewStyle, snap domain.WeatherSnapshot, cfg domain.DisplayConfig, rc RenderContext) domain.Presentation {
	style = EffectiveStyle(style)
	v := variants[style]
	in := input{snap: snap, cfg: cfg, rc: rc}

	palette := resolveColors(cfg)
	p := domain.Presentation{
		ViewStyle: style,
		Title:     v.title(in),
		Subtitle:  v.subtitle(in),
		Icon:      domain.SelectIcon(currentCondition(in), rc.IsDaytime, cfg.IconStyle, !palette.darkText),
		TextColor: palette.text,
		TextScale: textScale(cfg.TextSizePercent),
		Card:      palette.card,
	}
	if v.timeSlot && !cfg.HideSubtitle {
		timeLine := subtitleLine(in)
		p.TimeLine = &timeLine
	}
	if v.days > 0 {
		p.Days = dayStrip(in, v.days, !palette.darkText)
	}
	return p
}

// line joins the non-empty outputs of builders with a single space.
func line(builders ...lineBuilder) lineBuilder {
	return func(in input) string {
		parts := make([]string, 0, len(builders))
		for _, b := range builders {
			parts = append(parts, b(in))
		}
		return joinNonEmpty(" ", parts...)
	}
}

func joinNonEmpty(sep string, parts ...string) string {
	var kept []string
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}

func currentTemperature(in input) string {
	return domain.FormatCurrentTemperature(in.snap, in.cfg)
}

func todayTrend(in input) string {
	return domain.FormatTodayTrend(in.snap, in.cfg)
}

func aqiOrHumidity(in input) string {
	return domain.FormatAqiOrHumidity(in.snap, in.rc.Locale)
}

func weatherText(in input) string {
	if in.snap.Current == nil {
		return ""
	}
	return in.snap.Current.WeatherText
}

func locationName(in input) string {
	return in.snap.Location.Name
}

// currentCondition prefers current conditions and falls back to today's
// forecast half matching the time of day.
func currentCondition(in input) domain.ConditionCode {
	if in.snap.Current != nil {
		return in.snap.Current.Condition
	}
	today, ok := in.snap.Today()
	if !ok {
		return domain.ConditionUnknown
	}
	return halfDayCondition(today, in.rc.IsDaytime)
}

func halfDayCondition(d domain.Daily, daytime bool) domain.ConditionCode {
	primary, secondary := d.Night, d.Day
	if daytime {
		primary, secondary = d.Day, d.Night
	}
	switch {
	case primary != nil:
		return primary.Condition
	case secondary != nil:
		return secondary.Condition
	default:
		return domain.ConditionUnknown
	}
}

// dayStrip renders up to n cells, truncated to the forecast length. Strip icons
// always use the daytime artwork.
func dayStrip(in input, n int, darkBackground bool) []domain.DayCell {
	n = min(n, len(in.snap.Daily))
	cells := make([]domain.DayCell, n)
	for i := range n {
		cells[i] = domain.DayCell{
			Label:       domain.FormatWeekLabel(in.snap, i, in.rc.Now, in.rc.Locale),
			Icon:        domain.SelectIcon(halfDayCondition(in.snap.Daily[i], true), true, in.cfg.IconStyle, darkBackground),
			Temperature: domain.FormatDailyTrend(in.snap, i, in.cfg),
		}
	}
	return cells
}

type colors struct {
	text     string
	darkText bool
	card     *domain.Card
}

// resolveColors picks the text color. An explicit light or dark text setting
// wins; auto follows the card when one is shown and DarkText otherwise.
func resolveColors(cfg domain.DisplayConfig) colors {
	var c colors
	if cfg.ShowCard {
		c.card = &domain.Card{Color: cardColor(cfg), Alpha: alpha(cfg.CardAlphaPercent)}
	}

	switch cfg.TextColor {
	case domain.ColorLight:
		c.darkText = false
	case domain.ColorDark:
		c.darkText = true
	default:
		c.darkText = cfg.DarkText
		if c.card != nil {
			c.darkText = c.card.Color == colorWhite
		}
	}

	c.text = colorWhite
	if c.darkText {
		c.text = colorDarkText
	}
	return c
}

func cardColor(cfg domain.DisplayConfig) string {
	switch cfg.CardStyle {
	case domain.ColorLight:
		return colorWhite
	case domain.ColorDark:
		return colorDarkCard
	default:
		// Auto follows the wallpaper hint: dark text implies a light backdrop.
		if cfg.DarkText {
			return colorWhite
		}
		return colorDarkCard
	}
}

// alpha converts a 0-100 percentage into a 0-255 channel value.
func alpha(percent int) int {
	percent = max(0, min(100, percent))
	return int(math.Round(float64(percent) * 255 / 100))
}

func textScale(percent int) float64 {
	if percent <= 0 {
		return 1
	}
	return float64(percent) / 100
}
