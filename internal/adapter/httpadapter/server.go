package httpadapter

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	sharedobs "github.com/couchcryptid/storm-data-shared/observability"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/couchcryptid/weather-presenter/internal/domain"
	"github.com/couchcryptid/weather-presenter/internal/observability"
	"github.com/couchcryptid/weather-presenter/internal/settings"
)

const maxPreviewBody = 1 << 20

// Previewer renders a snapshot for one set of display settings.
type Previewer interface {
	Render(snap domain.WeatherSnapshot, cfg domain.DisplayConfig) domain.Presentation
	RenderAt(snap domain.WeatherSnapshot, cfg domain.DisplayConfig, now time.Time) domain.Presentation
}

// Server exposes health, readiness, metrics and preview HTTP endpoints.
type Server struct {
	httpServer *http.Server
	previewer  Previewer
	validate   *validator.Validate
	logger     *slog.Logger
	metrics    *observability.Metrics
}

// NewServer creates an HTTP server with /healthz, /readyz, /metrics and
// /api/v1/preview routes.
func NewServer(addr string, ready sharedobs.ReadinessChecker, previewer Previewer, logger *slog.Logger, metrics *observability.Metrics) *Server {
	mux := http.NewServeMux()

	s := &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      mux,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		previewer: previewer,
		validate:  validator.New(validator.WithRequiredStructEnabled()),
		logger:    logger,
		metrics:   metrics,
	}

	mux.HandleFunc("GET /healthz", sharedobs.LivenessHandler())
	mux.HandleFunc("GET /readyz", sharedobs.ReadinessHandler(ready))
	mux.Handle("GET /metrics", promhttp.Handler())
	mux.HandleFunc("POST /api/v1/preview", s.handlePreview)

	return s
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}

// PreviewRequest is the body of POST /api/v1/preview. Settings uses the same
// string keys as the settings store. Now defaults to the server clock.
type PreviewRequest struct {
	Snapshot *domain.WeatherSnapshot `json:"snapshot" validate:"required"`
	Settings map[string]string       `json:"settings,omitempty"`
	Now      *time.Time              `json:"now,omitempty"`
}

// PreviewResponse carries the presentation and any settings that were
// replaced by their defaults.
type PreviewResponse struct {
	Presentation domain.Presentation `json:"presentation"`
	Fallbacks    []PreviewFallback   `json:"fallbacks,omitempty"`
}

type PreviewFallback struct {
	Key     string `json:"key"`
	Value   string `json:"value"`
	Default string `json:"default"`
}

func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	var req PreviewRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxPreviewBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		s.rejectPreview(w, "decode request: "+err.Error())
		return
	}
	if err := s.validate.Struct(req); err != nil {
		s.rejectPreview(w, err.Error())
		return
	}
	if err := domain.ValidateSnapshot(*req.Snapshot); err != nil {
		s.rejectPreview(w, err.Error())
		return
	}

	cfg, fallbacks := settings.Decode(req.Settings)
	var p domain.Presentation
	if req.Now != nil {
		p = s.previewer.RenderAt(*req.Snapshot, cfg, *req.Now)
	} else {
		p = s.previewer.Render(*req.Snapshot, cfg)
	}

	resp := PreviewResponse{Presentation: p}
	for _, fb := range fallbacks {
		resp.Fallbacks = append(resp.Fallbacks, PreviewFallback(fb))
	}
	s.metrics.PreviewRequests.WithLabelValues("success").Inc()
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) rejectPreview(w http.ResponseWriter, msg string) {
	s.metrics.PreviewRequests.WithLabelValues("invalid").Inc()
	writeJSON(w, http.StatusBadRequest, map[string]string{"error": msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck // best-effort response
}
