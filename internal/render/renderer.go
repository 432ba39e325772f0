// Package render builds the per-call RenderContext (clock, zone, locale,
// day/night) and hands it to the layout resolver. It is the only place the
// presentation path reads the clock.
package render

import (
	"log/slog"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/couchcryptid/weather-presenter/internal/domain"
	"github.com/couchcryptid/weather-presenter/internal/layout"
	"github.com/couchcryptid/weather-presenter/internal/observability"
)

// Renderer renders snapshots for configured surfaces. It is safe for
// concurrent use.
type Renderer struct {
	clock   clockwork.Clock
	zones   *ZoneCache
	source  domain.DaytimeSource
	logger  *slog.Logger
	metrics *observability.Metrics
}

// NewRenderer creates a Renderer. metrics may be nil.
func NewRenderer(clock clockwork.Clock, zones *ZoneCache, source domain.DaytimeSource, logger *slog.Logger, metrics *observability.Metrics) *Renderer {
	return &Renderer{
		clock:   clock,
		zones:   zones,
		source:  source,
		logger:  logger,
		metrics: metrics,
	}
}

// Now returns the renderer's clock time.
func (r *Renderer) Now() time.Time {
	return r.clock.Now()
}

// Render resolves a presentation at the current clock time.
func (r *Renderer) Render(snap domain.WeatherSnapshot, cfg domain.DisplayConfig) domain.Presentation {
	return r.RenderAt(snap, cfg, r.clock.Now())
}

// RenderAt resolves a presentation as if the clock read now.
func (r *Renderer) RenderAt(snap domain.WeatherSnapshot, cfg domain.DisplayConfig, now time.Time) domain.Presentation {
	rc := r.Context(snap, cfg, now)

	effective := layout.EffectiveStyle(cfg.ViewStyle)
	if effective != cfg.ViewStyle {
		r.logger.Warn("unknown view style, using default",
			"view_style", cfg.ViewStyle, "default", effective, "location_id", snap.Location.ID)
		r.countFallback("view_style")
	}
	if snap.Current != nil && !snap.Current.Condition.Known() {
		r.logger.Warn("unknown condition code, using default icon",
			"condition", snap.Current.Condition, "location_id", snap.Location.ID)
		r.countFallback("condition")
	}

	return layout.Resolve(cfg.ViewStyle, snap, cfg, rc)
}

// Context builds the RenderContext for snap at now: now moved into the
// location's zone, the configured locale and the day/night flag.
func (r *Renderer) Context(snap domain.WeatherSnapshot, cfg domain.DisplayConfig, now time.Time) layout.RenderContext {
	zone, err := r.zones.Lookup(snap.Location.Timezone)
	if err != nil {
		r.logger.Warn("unknown time zone, using UTC", "error", err, "location_id", snap.Location.ID)
		r.countFallback("zone")
	}
	local := now.In(zone)

	return layout.RenderContext{
		Now:       local,
		Locale:    domain.ResolveLocale(cfg.Language),
		IsDaytime: domain.IsDaytime(r.source, snap, local),
	}
}

func (r *Renderer) countFallback(reason string) {
	if r.metrics != nil {
		r.metrics.RenderFallbacks.WithLabelValues(reason).Inc()
	}
}
