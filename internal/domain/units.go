package domain

import (
	"math"
	"strconv"
)

// TemperatureUnit is the user's display unit. Snapshots are always °C.
type TemperatureUnit string

const (
	Celsius    TemperatureUnit = "c"
	Fahrenheit TemperatureUnit = "f"
	Kelvin     TemperatureUnit = "k"
)

// FromCelsius converts a canonical °C value into u. Unknown units are treated
// as Celsius.
func (u TemperatureUnit) FromCelsius(c float64) float64 {
	switch u {
	case Fahrenheit:
		return c*9/5 + 32
	case Kelvin:
		return c + 273.15
	default:
		return c
	}
}

// ToCelsius is the inverse of FromCelsius.
func (u TemperatureUnit) ToCelsius(v float64) float64 {
	switch u {
	case Fahrenheit:
		return (v - 32) * 5 / 9
	case Kelvin:
		return v - 273.15
	default:
		return v
	}
}

// Round converts c into u and rounds half away from zero.
func (u TemperatureUnit) Round(c int) int {
	return int(math.Round(u.FromCelsius(float64(c))))
}

// Glyph is the unit's short suffix for a full reading, e.g. "18℃".
func (u TemperatureUnit) Glyph() string {
	switch u {
	case Fahrenheit:
		return "℉"
	case Kelvin:
		return "K"
	default:
		return "℃"
	}
}

// Format renders a °C value in u with the unit glyph.
func (u TemperatureUnit) Format(c int) string {
	return strconv.Itoa(u.Round(c)) + u.Glyph()
}

// FormatShort renders a °C value in u with a bare degree sign.
func (u TemperatureUnit) FormatShort(c int) string {
	return strconv.Itoa(u.Round(c)) + "°"
}
