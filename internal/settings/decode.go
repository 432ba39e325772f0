// Package settings is the boundary between persisted string preferences and
// the typed DisplayConfig. Invalid values never reach the core: they are
// replaced by defaults here and reported back as Fallbacks.
package settings

import (
	"slices"
	"strconv"

	"github.com/couchcryptid/weather-presenter/internal/domain"
)

// Preference keys as persisted by the settings store.
const (
	KeyViewStyle       = "view_style"
	KeyTemperatureUnit = "temperature_unit"
	KeyCardStyle       = "card_style"
	KeyTextColor       = "text_color"
	KeyDarkText        = "dark_text"
	KeyIconStyle       = "icon_style"
	KeySubtitle        = "subtitle"
	KeyCustomSubtitle  = "custom_subtitle"
	KeyHideSubtitle    = "hide_subtitle"
	KeyHideLunar       = "hide_lunar"
	KeyTextSize        = "text_size"
	KeyShowCard        = "show_card"
	KeyCardAlpha       = "card_alpha"
	KeyLanguage        = "language"
)

const (
	minTextSize = 50
	maxTextSize = 200
)

var (
	units      = []domain.TemperatureUnit{domain.Celsius, domain.Fahrenheit, domain.Kelvin}
	colorModes = []domain.ColorMode{domain.ColorAuto, domain.ColorLight, domain.ColorDark}
	iconStyles = []domain.IconStyle{domain.IconMaterial, domain.IconMinimal}
	subtitles  = []domain.SubtitleSelector{
		domain.SubtitleTime, domain.SubtitleAQI, domain.SubtitleWind,
		domain.SubtitleLunar, domain.SubtitleFeelsLike, domain.SubtitleCustom,
	}
)

// Fallback records a persisted value that was replaced by its default.
type Fallback struct {
	Key     string
	Value   string
	Default string
}

type decoder struct {
	prefs     map[string]string
	fallbacks []Fallback
}

// Decode builds a DisplayConfig from persisted preferences. Missing keys take
// their default silently; present but invalid values take their default and
// are returned as fallbacks for the caller to log.
func Decode(prefs map[string]string) (domain.DisplayConfig, []Fallback) {
	d := decoder{prefs: prefs}
	def := domain.DefaultDisplayConfig()

	cfg := domain.DisplayConfig{
		TemperatureUnit:  enum(&d, KeyTemperatureUnit, units, def.TemperatureUnit),
		ViewStyle:        enum(&d, KeyViewStyle, domain.ViewStyles, def.ViewStyle),
		CardStyle:        enum(&d, KeyCardStyle, colorModes, def.CardStyle),
		TextColor:        enum(&d, KeyTextColor, colorModes, def.TextColor),
		DarkText:         d.boolean(KeyDarkText, def.DarkText),
		IconStyle:        enum(&d, KeyIconStyle, iconStyles, def.IconStyle),
		Subtitle:         enum(&d, KeySubtitle, subtitles, def.Subtitle),
		CustomSubtitle:   prefs[KeyCustomSubtitle],
		HideSubtitle:     d.boolean(KeyHideSubtitle, def.HideSubtitle),
		HideLunar:        d.boolean(KeyHideLunar, def.HideLunar),
		TextSizePercent:  d.percent(KeyTextSize, def.TextSizePercent, minTextSize, maxTextSize),
		ShowCard:         d.boolean(KeyShowCard, def.ShowCard),
		CardAlphaPercent: d.percent(KeyCardAlpha, def.CardAlphaPercent, 0, 100),
		Language:         def.Language,
	}
	if lang, ok := prefs[KeyLanguage]; ok && lang != "" {
		cfg.Language = lang
	}
	return cfg, d.fallbacks
}

func (d *decoder) fallback(key, value, def string) {
	d.fallbacks = append(d.fallbacks, Fallback{Key: key, Value: value, Default: def})
}

func enum[T ~string](d *decoder, key string, allowed []T, def T) T {
	raw, ok := d.prefs[key]
	if !ok || raw == "" {
		return def
	}
	if v := T(raw); slices.Contains(allowed, v) {
		return v
	}
	d.fallback(key, raw, string(def))
	return def
}

func (d *decoder) boolean(key string, def bool) bool {
	raw, ok := d.prefs[key]
	if !ok || raw == "" {
		return def
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		d.fallback(key, raw, strconv.FormatBool(def))
		return def
	}
	return v
}

// percent parses an integer percentage. Out-of-range values are clamped and
// reported.
func (d *decoder) percent(key string, def, lo, hi int) int {
	raw, ok := d.prefs[key]
	if !ok || raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		d.fallback(key, raw, strconv.Itoa(def))
		return def
	}
	clamped := max(lo, min(hi, v))
	if clamped != v {
		d.fallback(key, raw, strconv.Itoa(clamped))
	}
	return clamped
}
