package domain

// ViewStyle selects a layout variant. Values outside the closed set resolve to
// ViewSymmetry.
type ViewStyle string

const (
	ViewRectangle ViewStyle = "rectangle"
	ViewSymmetry  ViewStyle = "symmetry"
	ViewTile      ViewStyle = "tile"
	ViewMini      ViewStyle = "mini"
	ViewVertical  ViewStyle = "vertical"
	ViewTemp      ViewStyle = "temp"
	ViewPixel     ViewStyle = "pixel"
	ViewDaily3    ViewStyle = "3_days"
	ViewDaily5    ViewStyle = "5_days"
)

// ViewStyles lists the closed set in display order.
var ViewStyles = []ViewStyle{
	ViewRectangle, ViewSymmetry, ViewTile, ViewMini, ViewVertical,
	ViewTemp, ViewPixel, ViewDaily3, ViewDaily5,
}

// ColorMode is shared by card background and text color settings.
type ColorMode string

const (
	ColorAuto  ColorMode = "auto"
	ColorLight ColorMode = "light"
	ColorDark  ColorMode = "dark"
)

// IconStyle picks between the full-color and monochrome icon packs.
type IconStyle string

const (
	IconMaterial IconStyle = "material"
	IconMinimal  IconStyle = "minimal"
)

// SubtitleSelector chooses the single derived line shown in the time slot.
type SubtitleSelector string

const (
	SubtitleTime      SubtitleSelector = "time"
	SubtitleAQI       SubtitleSelector = "aqi"
	SubtitleWind      SubtitleSelector = "wind"
	SubtitleLunar     SubtitleSelector = "lunar"
	SubtitleFeelsLike SubtitleSelector = "feels_like"
	SubtitleCustom    SubtitleSelector = "custom"
)

// DisplayConfig is the strongly typed presentation settings for one widget or
// notification instance. It is built once at the settings boundary; nothing in
// the core parses setting strings.
type DisplayConfig struct {
	TemperatureUnit  TemperatureUnit  `json:"temperature_unit"`
	ViewStyle        ViewStyle        `json:"view_style"`
	CardStyle        ColorMode        `json:"card_style"`
	TextColor        ColorMode        `json:"text_color"`
	DarkText         bool             `json:"dark_text"`
	IconStyle        IconStyle        `json:"icon_style"`
	Subtitle         SubtitleSelector `json:"subtitle"`
	CustomSubtitle   string           `json:"custom_subtitle,omitempty"`
	HideSubtitle     bool             `json:"hide_subtitle"`
	HideLunar        bool             `json:"hide_lunar"`
	TextSizePercent  int              `json:"text_size"`
	ShowCard         bool             `json:"show_card"`
	CardAlphaPercent int              `json:"card_alpha"`
	Language         string           `json:"language"`
}

// DefaultDisplayConfig is the configuration of a freshly placed widget.
func DefaultDisplayConfig() DisplayConfig {
	return DisplayConfig{
		TemperatureUnit:  Celsius,
		ViewStyle:        ViewSymmetry,
		CardStyle:        ColorAuto,
		TextColor:        ColorAuto,
		IconStyle:        IconMaterial,
		Subtitle:         SubtitleTime,
		TextSizePercent:  100,
		CardAlphaPercent: 100,
		Language:         "en",
	}
}
