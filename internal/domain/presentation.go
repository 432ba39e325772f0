package domain

import "time"

// DayCell is one column of a multi-day strip.
type DayCell struct {
	Label       string  `json:"label"`
	Icon        IconKey `json:"icon"`
	Temperature string  `json:"temperature"`
}

// Card is the optional rounded background behind a widget.
type Card struct {
	Color string `json:"color"`
	Alpha int    `json:"alpha"`
}

// Presentation is the renderer-agnostic output of layout resolution. Every
// text field is already formatted; renderers only place it.
type Presentation struct {
	ViewStyle ViewStyle `json:"view_style"`
	Title     string    `json:"title"`
	Subtitle  string    `json:"subtitle"`
	TimeLine  *string   `json:"time_line,omitempty"`
	Icon      IconKey   `json:"icon"`
	Days      []DayCell `json:"days,omitempty"`
	TextColor string    `json:"text_color"`
	TextScale float64   `json:"text_scale"`
	Card      *Card     `json:"card,omitempty"`
}

// SurfaceKind distinguishes home-screen widgets from persistent notifications.
type SurfaceKind string

const (
	SurfaceWidget       SurfaceKind = "widget"
	SurfaceNotification SurfaceKind = "notification"
)

// RenderedPresentation is a Presentation addressed to one surface instance.
type RenderedPresentation struct {
	WidgetID     string       `json:"widget_id"`
	Kind         SurfaceKind  `json:"kind"`
	LocationID   string       `json:"location_id"`
	RenderedAt   time.Time    `json:"rendered_at"`
	Presentation Presentation `json:"presentation"`
}
