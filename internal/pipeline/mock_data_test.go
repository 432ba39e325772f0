package pipeline_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/weather-presenter/internal/domain"
	"github.com/couchcryptid/weather-presenter/internal/pipeline"
	"github.com/couchcryptid/weather-presenter/internal/settings"
)

func TestPresentationTransformer_WithMockJSONData(t *testing.T) {
	snapshots := readMockSnapshots(t)
	require.Len(t, snapshots, 4)

	// Every location gets one surface per view style.
	widgets := fakeWidgets{byLocation: map[string][]settings.Widget{}}
	for _, snap := range snapshots {
		for _, style := range domain.ViewStyles {
			widgets.byLocation[snap.Location.ID] = append(widgets.byLocation[snap.Location.ID], settings.Widget{
				ID:         snap.Location.ID + "-" + string(style),
				LocationID: snap.Location.ID,
				Prefs:      map[string]string{settings.KeyViewStyle: string(style)},
			})
		}
	}

	metrics := newTestMetrics()
	tfm := pipeline.NewTransformer(widgets, newTestRenderer(t, metrics), slog.Default(), metrics)

	cases := []struct {
		locationID string
		days       int
		hasCurrent bool
	}{
		{locationID: "loc-sh", days: 5, hasCurrent: true},
		{locationID: "loc-bj", days: 3, hasCurrent: true},
		{locationID: "loc-ny", days: 3, hasCurrent: true},
		{locationID: "loc-sz", days: 3, hasCurrent: false},
	}

	for i, tc := range cases {
		t.Run(tc.locationID, func(t *testing.T) {
			snap := snapshots[i]
			require.Equal(t, tc.locationID, snap.Location.ID)
			require.Len(t, snap.Daily, tc.days)

			out, err := tfm.Transform(context.Background(), rawFromSnapshot(t, snap))
			require.NoError(t, err)
			require.Len(t, out, len(domain.ViewStyles))

			for j, rp := range out {
				style := domain.ViewStyles[j]
				p := rp.Presentation
				assert.Equal(t, style, p.ViewStyle)
				assert.Equal(t, tc.locationID, rp.LocationID)
				assert.NotEmpty(t, p.Icon)
				assert.NotContains(t, p.Title, "null")
				assert.NotContains(t, p.Subtitle, "null")

				switch style {
				case domain.ViewDaily3:
					assert.Len(t, p.Days, min(3, tc.days))
				case domain.ViewDaily5:
					assert.Len(t, p.Days, min(5, tc.days))
				default:
					assert.Empty(t, p.Days)
				}

				if !tc.hasCurrent && style == domain.ViewTile {
					assert.Empty(t, p.Title, "no current conditions means no temperature")
				}
			}
		})
	}
}

func TestPresentationTransformer_MockDataDayLabels(t *testing.T) {
	snapshots := readMockSnapshots(t)
	widgets := fakeWidgets{byLocation: map[string][]settings.Widget{
		"loc-sh": {{ID: "w", LocationID: "loc-sh", Prefs: map[string]string{"view_style": "5_days"}}},
		"loc-ny": {{ID: "w", LocationID: "loc-ny", Prefs: map[string]string{"view_style": "3_days"}}},
	}}
	metrics := newTestMetrics()
	tfm := pipeline.NewTransformer(widgets, newTestRenderer(t, metrics), slog.Default(), metrics)

	out, err := tfm.Transform(context.Background(), rawFromSnapshot(t, snapshots[0]))
	require.NoError(t, err)
	require.Len(t, out, 1)
	labels := dayLabels(out[0].Presentation.Days)
	assert.Equal(t, []string{"Today", "Saturday", "Sunday", "Monday", "Tuesday"}, labels)

	// New York was refreshed on Thursday evening local time, which is Friday
	// morning in UTC. Labels follow the location's calendar.
	out, err = tfm.Transform(context.Background(), rawFromSnapshot(t, snapshots[2]))
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, []string{"Today", "Friday", "Saturday"}, dayLabels(out[0].Presentation.Days))
}

func dayLabels(cells []domain.DayCell) []string {
	labels := make([]string, len(cells))
	for i, c := range cells {
		labels[i] = c.Label
	}
	return labels
}

func readMockSnapshots(t *testing.T) []domain.WeatherSnapshot {
	t.Helper()

	path := filepath.Join("..", "..", "data", "mock", "snapshots.json")
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var snapshots []domain.WeatherSnapshot
	require.NoError(t, json.Unmarshal(data, &snapshots))
	return snapshots
}
