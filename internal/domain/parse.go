package domain

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// ErrNoDailyForecast is returned for a snapshot that carries current
// conditions without at least today's forecast.
var ErrNoDailyForecast = errors.New("current conditions require at least one daily forecast")

var validate = validator.New(validator.WithRequiredStructEnabled())

// ParseSnapshot decodes and validates a WeatherSnapshot from a raw message.
func ParseSnapshot(raw RawMessage) (WeatherSnapshot, error) {
	var snap WeatherSnapshot
	if err := json.Unmarshal(raw.Value, &snap); err != nil {
		return WeatherSnapshot{}, fmt.Errorf("parse snapshot: %w", err)
	}
	if err := ValidateSnapshot(snap); err != nil {
		return WeatherSnapshot{}, fmt.Errorf("parse snapshot: %w", err)
	}
	return snap, nil
}

// ValidateSnapshot checks struct constraints and that current conditions are
// accompanied by a daily forecast.
func ValidateSnapshot(snap WeatherSnapshot) error {
	if err := validate.Struct(snap); err != nil {
		return err
	}
	if snap.Current != nil && len(snap.Daily) == 0 {
		return ErrNoDailyForecast
	}
	return nil
}
