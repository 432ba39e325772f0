package observability

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_Format(t *testing.T) {
	var buf bytes.Buffer
	newLogger(&buf, "info", "json").Info("rendered", "widget_id", "w-1")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "rendered", line["msg"])
	assert.Equal(t, "w-1", line["widget_id"])

	buf.Reset()
	newLogger(&buf, "info", "TEXT").Info("rendered", "widget_id", "w-1")
	assert.Contains(t, buf.String(), "widget_id=w-1")
}

func TestNewLogger_Level(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, "warn", "json")
	logger.Info("dropped")
	assert.Empty(t, buf.String())

	logger.Warn("kept")
	assert.Contains(t, buf.String(), "kept")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, parseLevel("warning"))
	assert.Equal(t, slog.LevelError, parseLevel("error"))
	assert.Equal(t, slog.LevelInfo, parseLevel("verbose"))
}

func TestNewMetricsForTesting(t *testing.T) {
	m := NewMetricsForTesting()
	m.PresentationsRendered.WithLabelValues("symmetry", "widget").Inc()
	m.RenderFallbacks.WithLabelValues("view_style").Add(2)

	assert.InDelta(t, 1, testutil.ToFloat64(m.PresentationsRendered.WithLabelValues("symmetry", "widget")), 0)
	assert.InDelta(t, 2, testutil.ToFloat64(m.RenderFallbacks.WithLabelValues("view_style")), 0)

	// A second set must not collide with the first.
	assert.NotPanics(t, func() { NewMetricsForTesting() })
}
