package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/couchcryptid/weather-presenter/internal/domain"
	"github.com/couchcryptid/weather-presenter/internal/observability"
	"github.com/couchcryptid/weather-presenter/internal/render"
	"github.com/couchcryptid/weather-presenter/internal/settings"
)

// WidgetSource returns the surfaces bound to a location.
type WidgetSource interface {
	WidgetsForLocation(ctx context.Context, locationID string) ([]settings.Widget, error)
}

// PresentationTransformer implements Transformer. It parses a snapshot,
// looks up the surfaces showing its location and renders one presentation
// per surface.
type PresentationTransformer struct {
	widgets  WidgetSource
	renderer *render.Renderer
	logger   *slog.Logger
	metrics  *observability.Metrics
}

// NewTransformer creates a PresentationTransformer.
func NewTransformer(widgets WidgetSource, renderer *render.Renderer, logger *slog.Logger, metrics *observability.Metrics) *PresentationTransformer {
	return &PresentationTransformer{
		widgets:  widgets,
		renderer: renderer,
		logger:   logger,
		metrics:  metrics,
	}
}

func (t *PresentationTransformer) Transform(ctx context.Context, raw domain.RawMessage) ([]domain.RenderedPresentation, error) {
	snap, err := domain.ParseSnapshot(raw)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	widgets, err := t.widgets.WidgetsForLocation(ctx, snap.Location.ID)
	t.metrics.SettingsLookup.Observe(time.Since(start).Seconds())
	if err != nil {
		return nil, fmt.Errorf("lookup widgets for %s: %w", snap.Location.ID, err)
	}
	if len(widgets) == 0 {
		t.logger.Debug("no surfaces bound to location", "location_id", snap.Location.ID)
		return nil, nil
	}

	// One instant per snapshot so every surface shows the same clock.
	now := t.renderer.Now()
	out := make([]domain.RenderedPresentation, 0, len(widgets))
	for _, w := range widgets {
		cfg, fallbacks := settings.Decode(w.Prefs)
		for _, fb := range fallbacks {
			t.logger.Warn("invalid preference, using default",
				"widget_id", w.ID, "key", fb.Key, "value", fb.Value, "default", fb.Default)
			t.metrics.SettingsFallbacks.WithLabelValues(fb.Key).Inc()
		}

		kind := w.Kind
		if kind == "" {
			kind = domain.SurfaceWidget
		}
		p := t.renderer.RenderAt(snap, cfg, now)
		t.metrics.PresentationsRendered.WithLabelValues(string(p.ViewStyle), string(kind)).Inc()

		out = append(out, domain.RenderedPresentation{
			WidgetID:     w.ID,
			Kind:         kind,
			LocationID:   snap.Location.ID,
			RenderedAt:   now,
			Presentation: p,
		})
	}
	return out, nil
}
