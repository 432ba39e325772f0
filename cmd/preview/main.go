// Command preview renders snapshot fixtures as terminal cards, one per view
// style, and optionally checks the rendering invariants the service relies on.
//
// Usage:
//
//	go run ./cmd/preview -snapshots data/mock/snapshots.json -location loc-sh
//	go run ./cmd/preview -styles 3_days,pixel -lang zh -unit f
//	go run ./cmd/preview -check
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/go-cmp/cmp"
	"github.com/jonboulle/clockwork"

	"github.com/couchcryptid/weather-presenter/internal/domain"
	"github.com/couchcryptid/weather-presenter/internal/render"
	"github.com/couchcryptid/weather-presenter/internal/settings"
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	frameStyle  = lipgloss.NewStyle().
			Padding(0, 1).
			Width(30).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#4A4A4A"))
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	cellStyle  = lipgloss.NewStyle().Padding(0, 1).Align(lipgloss.Center)
)

// phase tracks pass/fail for an invariant check.
type phase struct {
	name   string
	errors []string
}

func (p *phase) errorf(format string, args ...any) {
	p.errors = append(p.errors, fmt.Sprintf(format, args...))
}

func (p *phase) passed() bool { return len(p.errors) == 0 }

func main() {
	snapshotsPath := flag.String("snapshots", "data/mock/snapshots.json", "path to snapshot JSON fixture")
	location := flag.String("location", "", "only render this location id")
	styles := flag.String("styles", "", "comma-separated view styles (default all)")
	lang := flag.String("lang", "en", "display language")
	unit := flag.String("unit", "c", "temperature unit: c, f or k")
	nowFlag := flag.String("now", "", "render time in RFC3339 (default each snapshot's last_updated)")
	check := flag.Bool("check", false, "run invariant checks instead of rendering cards")
	flag.Parse()

	snapshots, err := loadSnapshots(*snapshotsPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: load snapshots: %v\n", err)
		os.Exit(1)
	}

	var now time.Time
	if *nowFlag != "" {
		if now, err = time.Parse(time.RFC3339, *nowFlag); err != nil {
			fmt.Fprintf(os.Stderr, "FATAL: -now: %v\n", err)
			os.Exit(1)
		}
	}

	zones, err := render.NewZoneCache(16, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: %v\n", err)
		os.Exit(1)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	renderer := render.NewRenderer(clockwork.NewRealClock(), zones, domain.DaytimeClock, logger, nil)

	if *check {
		os.Exit(runChecks(renderer, snapshots, now))
	}

	selected, err := parseStyles(*styles)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: %v\n", err)
		os.Exit(1)
	}
	prefs := map[string]string{
		settings.KeyLanguage:        *lang,
		settings.KeyTemperatureUnit: *unit,
	}
	for _, snap := range snapshots {
		if *location != "" && snap.Location.ID != *location {
			continue
		}
		printLocation(renderer, snap, selected, prefs, renderTime(now, snap))
	}
}

func loadSnapshots(path string) ([]domain.WeatherSnapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, err
	}
	snapshots := make([]domain.WeatherSnapshot, 0, len(raws))
	for i, raw := range raws {
		snap, err := domain.ParseSnapshot(domain.RawMessage{Value: raw})
		if err != nil {
			return nil, fmt.Errorf("snapshot %d: %w", i, err)
		}
		snapshots = append(snapshots, snap)
	}
	return snapshots, nil
}

func parseStyles(list string) ([]domain.ViewStyle, error) {
	if list == "" {
		return domain.ViewStyles, nil
	}
	var styles []domain.ViewStyle
	for _, s := range strings.Split(list, ",") {
		style := domain.ViewStyle(strings.TrimSpace(s))
		if !slices.Contains(domain.ViewStyles, style) {
			return nil, fmt.Errorf("unknown view style %q", s)
		}
		styles = append(styles, style)
	}
	return styles, nil
}

func renderTime(now time.Time, snap domain.WeatherSnapshot) time.Time {
	if !now.IsZero() {
		return now
	}
	return snap.LastUpdated
}

// ── Cards ──

func printLocation(r *render.Renderer, snap domain.WeatherSnapshot, styles []domain.ViewStyle, prefs map[string]string, now time.Time) {
	fmt.Println(headerStyle.Render(fmt.Sprintf("%s (%s) at %s", snap.Location.Name, snap.Location.ID, now.Format(time.RFC3339))))

	cards := make([]string, 0, len(styles))
	for _, style := range styles {
		p := withStyle(prefs, style)
		cfg, _ := settings.Decode(p)
		cards = append(cards, card(r.RenderAt(snap, cfg, now)))
	}
	for i := 0; i < len(cards); i += 3 {
		fmt.Println(lipgloss.JoinHorizontal(lipgloss.Top, cards[i:min(i+3, len(cards))]...))
	}
	fmt.Println()
}

func withStyle(prefs map[string]string, style domain.ViewStyle) map[string]string {
	out := make(map[string]string, len(prefs)+1)
	for k, v := range prefs {
		out[k] = v
	}
	out[settings.KeyViewStyle] = string(style)
	return out
}

func card(p domain.Presentation) string {
	text := lipgloss.NewStyle().Foreground(lipgloss.Color(p.TextColor))
	frame := frameStyle
	if p.Card != nil {
		frame = frame.Background(lipgloss.Color(p.Card.Color))
	}

	lines := []string{
		mutedStyle.Render(string(p.ViewStyle) + "  " + string(p.Icon)),
		text.Bold(true).Render(p.Title),
		text.Render(p.Subtitle),
	}
	if p.TimeLine != nil {
		lines = append(lines, mutedStyle.Render(*p.TimeLine))
	}
	if len(p.Days) > 0 {
		cells := make([]string, len(p.Days))
		for i, d := range p.Days {
			cells[i] = cellStyle.Render(d.Label + "\n" + d.Temperature)
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return frame.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// ── Checks ──

func runChecks(r *render.Renderer, snapshots []domain.WeatherSnapshot, now time.Time) int {
	fmt.Println("=== Presentation Invariant Checks ===")
	fmt.Println()

	phases := []*phase{
		checkIdempotent(r, snapshots, now),
		checkSnapshotUntouched(r, snapshots, now),
		checkUnknownStyle(r, snapshots, now),
		checkTrendAllOrNothing(snapshots),
		checkIconFallback(),
		checkDayStrip(r, snapshots, now),
	}

	allPassed := true
	for _, p := range phases {
		status := "\033[32mPASS\033[0m"
		if !p.passed() {
			status = fmt.Sprintf("\033[31mFAIL (%d errors)\033[0m", len(p.errors))
			allPassed = false
		}
		fmt.Printf("  %-42s %s\n", p.name, status)
	}

	for _, p := range phases {
		if p.passed() {
			continue
		}
		fmt.Printf("\n--- %s ---\n", p.name)
		for i, e := range p.errors {
			fmt.Printf("  [%d] %s\n", i+1, e)
		}
	}

	if allPassed {
		fmt.Println("\nAll checks passed.")
		return 0
	}
	fmt.Println("\nChecks FAILED.")
	return 1
}

func eachStyle(snapshots []domain.WeatherSnapshot, fn func(snap domain.WeatherSnapshot, cfg domain.DisplayConfig)) {
	for _, snap := range snapshots {
		for _, style := range domain.ViewStyles {
			cfg := domain.DefaultDisplayConfig()
			cfg.ViewStyle = style
			fn(snap, cfg)
		}
	}
}

func checkIdempotent(r *render.Renderer, snapshots []domain.WeatherSnapshot, now time.Time) *phase {
	p := &phase{name: "Rendering is deterministic"}
	eachStyle(snapshots, func(snap domain.WeatherSnapshot, cfg domain.DisplayConfig) {
		at := renderTime(now, snap)
		if diff := cmp.Diff(r.RenderAt(snap, cfg, at), r.RenderAt(snap, cfg, at)); diff != "" {
			p.errorf("%s/%s: %s", snap.Location.ID, cfg.ViewStyle, diff)
		}
	})
	return p
}

func checkSnapshotUntouched(r *render.Renderer, snapshots []domain.WeatherSnapshot, now time.Time) *phase {
	p := &phase{name: "Rendering leaves the snapshot unchanged"}
	eachStyle(snapshots, func(snap domain.WeatherSnapshot, cfg domain.DisplayConfig) {
		before, _ := json.Marshal(snap)
		r.RenderAt(snap, cfg, renderTime(now, snap))
		after, _ := json.Marshal(snap)
		if string(before) != string(after) {
			p.errorf("%s/%s: snapshot changed", snap.Location.ID, cfg.ViewStyle)
		}
	})
	return p
}

func checkUnknownStyle(r *render.Renderer, snapshots []domain.WeatherSnapshot, now time.Time) *phase {
	p := &phase{name: "Unknown view style renders as symmetry"}
	for _, snap := range snapshots {
		at := renderTime(now, snap)
		cfg := domain.DefaultDisplayConfig()
		want := r.RenderAt(snap, cfg, at)
		cfg.ViewStyle = "hologram"
		if diff := cmp.Diff(want, r.RenderAt(snap, cfg, at)); diff != "" {
			p.errorf("%s: %s", snap.Location.ID, diff)
		}
	}
	return p
}

func checkTrendAllOrNothing(snapshots []domain.WeatherSnapshot) *phase {
	p := &phase{name: "Trend needs both bounds"}
	cfg := domain.DefaultDisplayConfig()
	for _, snap := range snapshots {
		if len(snap.Daily) == 0 {
			continue
		}
		if got := domain.FormatTodayTrend(snap, cfg); got == "" || !strings.Contains(got, "/") {
			p.errorf("%s: full trend rendered %q", snap.Location.ID, got)
		}

		noDay := cloneWithToday(snap, func(d *domain.Daily) { d.Day = nil })
		if got := domain.FormatTodayTrend(noDay, cfg); got != "" {
			p.errorf("%s: missing day bound rendered %q", snap.Location.ID, got)
		}
		noNight := cloneWithToday(snap, func(d *domain.Daily) { d.Night = nil })
		if got := domain.FormatTodayTrend(noNight, cfg); got != "" {
			p.errorf("%s: missing night bound rendered %q", snap.Location.ID, got)
		}
	}
	return p
}

func cloneWithToday(snap domain.WeatherSnapshot, edit func(*domain.Daily)) domain.WeatherSnapshot {
	daily := append([]domain.Daily(nil), snap.Daily...)
	edit(&daily[0])
	snap.Daily = daily
	return snap
}

func checkIconFallback() *phase {
	p := &phase{name: "Unknown condition draws the fallback icon"}
	for _, style := range []domain.IconStyle{domain.IconMaterial, domain.IconMinimal} {
		for _, daytime := range []bool{true, false} {
			for _, dark := range []bool{true, false} {
				want := domain.SelectIcon(domain.ConditionOvercast, daytime, style, dark)
				for _, code := range []domain.ConditionCode{domain.ConditionUnknown, "volcanic_ash", ""} {
					if got := domain.SelectIcon(code, daytime, style, dark); got != want {
						p.errorf("%q style=%s day=%t dark=%t: got %s, want %s", code, style, daytime, dark, got, want)
					}
				}
			}
		}
	}
	return p
}

func checkDayStrip(r *render.Renderer, snapshots []domain.WeatherSnapshot, now time.Time) *phase {
	p := &phase{name: "Day strip fits the forecast"}
	eachStyle(snapshots, func(snap domain.WeatherSnapshot, cfg domain.DisplayConfig) {
		days := r.RenderAt(snap, cfg, renderTime(now, snap)).Days
		want := 0
		switch cfg.ViewStyle {
		case domain.ViewDaily3:
			want = min(3, len(snap.Daily))
		case domain.ViewDaily5:
			want = min(5, len(snap.Daily))
		}
		if len(days) != want {
			p.errorf("%s/%s: %d cells, want %d", snap.Location.ID, cfg.ViewStyle, len(days), want)
		}
		for i, d := range days {
			if d.Label == "" || d.Icon == "" {
				p.errorf("%s/%s: cell %d incomplete: %+v", snap.Location.ID, cfg.ViewStyle, i, d)
			}
		}
	})
	return p
}
