// Command genmock reads a flat forecast CSV (one row per location and day)
// and generates the WeatherSnapshot fixture used by the pipeline and
// integration test suites. Every snapshot is round-tripped through
// domain.ParseSnapshot so the fixture only contains what the service accepts.
//
// Usage:
//
//	go run ./cmd/genmock \
//	  -csv data/mock/forecast_240426.csv \
//	  -out data/mock/snapshots.json
package main

import (
	"encoding/csv"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/couchcryptid/weather-presenter/internal/domain"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	csvPath := flag.String("csv", "", "forecast CSV with one row per location and day")
	out := flag.String("out", "", "output path for the snapshot JSON fixture")
	flag.Parse()

	if *csvPath == "" || *out == "" {
		flag.Usage()
		return fmt.Errorf("missing required flags: -csv, -out")
	}

	snapshots, err := processCSV(*csvPath)
	if err != nil {
		return fmt.Errorf("processing %s: %w", *csvPath, err)
	}

	for i := range snapshots {
		data, err := json.Marshal(snapshots[i])
		if err != nil {
			return fmt.Errorf("marshal %s: %w", snapshots[i].Location.ID, err)
		}
		if _, err := domain.ParseSnapshot(domain.RawMessage{Value: data}); err != nil {
			return fmt.Errorf("snapshot %s rejected: %w", snapshots[i].Location.ID, err)
		}
	}

	if err := writeJSON(*out, snapshots); err != nil {
		return fmt.Errorf("writing fixture: %w", err)
	}
	log.Printf("wrote fixture: %s", *out)

	printStats(snapshots)
	return nil
}

// processCSV folds rows into snapshots in first-seen location order. Current
// conditions and yesterday's baseline are read from a location's first row.
func processCSV(path string) ([]domain.WeatherSnapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("no data rows")
	}

	colIdx := map[string]int{}
	for i, h := range rows[0] {
		colIdx[h] = i
	}

	var snapshots []domain.WeatherSnapshot
	index := map[string]int{}

	for n, row := range rows[1:] {
		line := n + 2
		id := get(row, colIdx, "location_id")
		updated, err := time.Parse(time.RFC3339, get(row, colIdx, "last_updated"))
		if err != nil {
			return nil, fmt.Errorf("line %d: last_updated: %w", line, err)
		}

		i, ok := index[id]
		if !ok {
			snap := domain.WeatherSnapshot{
				Location: domain.Location{
					ID:       id,
					Name:     get(row, colIdx, "name"),
					Timezone: get(row, colIdx, "timezone"),
				},
				Current:     parseCurrent(row, colIdx),
				Yesterday:   parseYesterday(row, colIdx),
				LastUpdated: updated,
			}
			snapshots = append(snapshots, snap)
			i = len(snapshots) - 1
			index[id] = i
		}

		daily, err := parseDaily(row, colIdx, updated.Location())
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		snapshots[i].Daily = append(snapshots[i].Daily, daily)
	}

	return snapshots, nil
}

func parseDaily(row []string, idx map[string]int, zone *time.Location) (domain.Daily, error) {
	date, err := time.ParseInLocation(time.DateOnly, get(row, idx, "date"), zone)
	if err != nil {
		return domain.Daily{}, fmt.Errorf("date: %w", err)
	}
	d := domain.Daily{
		Date: date,
		Day: &domain.HalfDay{
			Condition:                domain.ConditionCode(get(row, idx, "day_condition")),
			Temperature:              atoi(get(row, idx, "day_temp")),
			PrecipitationProbability: optionalInt(get(row, idx, "day_pop")),
		},
		Night: &domain.HalfDay{
			Condition:   domain.ConditionCode(get(row, idx, "night_condition")),
			Temperature: atoi(get(row, idx, "night_temp")),
		},
	}
	if d.Sunrise, err = clockOn(date, get(row, idx, "sunrise")); err != nil {
		return domain.Daily{}, fmt.Errorf("sunrise: %w", err)
	}
	if d.Sunset, err = clockOn(date, get(row, idx, "sunset")); err != nil {
		return domain.Daily{}, fmt.Errorf("sunset: %w", err)
	}
	return d, nil
}

func parseCurrent(row []string, idx map[string]int) *domain.Current {
	temp := optionalInt(get(row, idx, "current_temp"))
	if temp == nil {
		return nil
	}
	c := &domain.Current{
		Temperature:   *temp,
		FeelsLike:     optionalInt(get(row, idx, "feels_like")),
		Condition:     domain.ConditionCode(get(row, idx, "current_condition")),
		WeatherText:   get(row, idx, "current_text"),
		WindDirection: get(row, idx, "wind_direction"),
		WindLevel:     get(row, idx, "wind_level"),
		Humidity:      optionalInt(get(row, idx, "humidity")),
	}
	if aqi := optionalInt(get(row, idx, "aqi")); aqi != nil {
		c.AirQuality = &domain.AirQuality{Index: aqi, Category: get(row, idx, "aqi_category")}
	}
	return c
}

func parseYesterday(row []string, idx map[string]int) *domain.Yesterday {
	day := optionalInt(get(row, idx, "yesterday_day"))
	night := optionalInt(get(row, idx, "yesterday_night"))
	if day == nil && night == nil {
		return nil
	}
	return &domain.Yesterday{DaytimeTemperature: day, NighttimeTemperature: night}
}

// clockOn places an "HH:MM" wall-clock reading on date.
func clockOn(date time.Time, hhmm string) (*time.Time, error) {
	if hhmm == "" {
		return nil, nil
	}
	t, err := time.Parse("15:04", hhmm)
	if err != nil {
		return nil, err
	}
	at := time.Date(date.Year(), date.Month(), date.Day(), t.Hour(), t.Minute(), 0, 0, date.Location())
	return &at, nil
}

func get(row []string, idx map[string]int, col string) string {
	i, ok := idx[col]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func optionalInt(value string) *int {
	if value == "" {
		return nil
	}
	v, err := strconv.Atoi(value)
	if err != nil {
		return nil
	}
	return &v
}

func atoi(value string) int {
	v, _ := strconv.Atoi(value)
	return v
}

func writeJSON(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	return os.WriteFile(path, data, 0o600)
}

func printStats(snapshots []domain.WeatherSnapshot) {
	conditions := map[domain.ConditionCode]int{}
	var days, withCurrent, withAQI int
	for i := range snapshots {
		s := &snapshots[i]
		days += len(s.Daily)
		if s.Current != nil {
			withCurrent++
			conditions[s.Current.Condition]++
			if s.Current.AirQuality != nil {
				withAQI++
			}
		}
		for _, d := range s.Daily {
			conditions[d.Day.Condition]++
			conditions[d.Night.Condition]++
		}
	}

	fmt.Println("\n=== Stats for updating test assertions ===")
	fmt.Printf("Snapshots: %d (with current: %d, with AQI: %d)\n", len(snapshots), withCurrent, withAQI)
	fmt.Printf("Daily records: %d\n", days)

	codes := make([]string, 0, len(conditions))
	for c := range conditions {
		codes = append(codes, string(c))
	}
	sort.Strings(codes)
	fmt.Print("Conditions: ")
	for _, c := range codes {
		fmt.Printf("%s=%d ", c, conditions[domain.ConditionCode(c)])
	}
	fmt.Println()
}
