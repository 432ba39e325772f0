package domain

import "strings"

// ConditionCode is the closed set of weather conditions the presenter can draw.
type ConditionCode string

const (
	ConditionClear       ConditionCode = "clear"
	ConditionCloudy      ConditionCode = "cloudy"
	ConditionOvercast    ConditionCode = "overcast"
	ConditionRain        ConditionCode = "rain"
	ConditionWind        ConditionCode = "wind"
	ConditionSnow        ConditionCode = "snow"
	ConditionFog         ConditionCode = "fog"
	ConditionHaze        ConditionCode = "haze"
	ConditionSleet       ConditionCode = "sleet"
	ConditionThunderRain ConditionCode = "thunder_rain"
	ConditionThunder     ConditionCode = "thunder"
	ConditionHail        ConditionCode = "hail"
	ConditionUnknown     ConditionCode = "unknown"
)

// conditionAliases maps provider vocabularies onto the closed set. Keys are
// lower-cased with spaces and dashes folded to underscores.
var conditionAliases = map[string]ConditionCode{
	"clear":         ConditionClear,
	"sunny":         ConditionClear,
	"cloudy":        ConditionCloudy,
	"partly_cloudy": ConditionCloudy,
	"overcast":      ConditionOvercast,
	"rain":          ConditionRain,
	"drizzle":       ConditionRain,
	"shower":        ConditionRain,
	"wind":          ConditionWind,
	"windy":         ConditionWind,
	"snow":          ConditionSnow,
	"fog":           ConditionFog,
	"mist":          ConditionFog,
	"haze":          ConditionHaze,
	"smog":          ConditionHaze,
	"sleet":         ConditionSleet,
	"thunder_rain":  ConditionThunderRain,
	"thunderstorm":  ConditionThunderRain,
	"thunder":       ConditionThunder,
	"hail":          ConditionHail,
}

// ParseConditionCode normalizes an upstream condition name such as
// "PARTLY_CLOUDY" or "Thunderstorm". Unmapped names become ConditionUnknown.
func ParseConditionCode(s string) ConditionCode {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.NewReplacer(" ", "_", "-", "_").Replace(key)
	if c, ok := conditionAliases[key]; ok {
		return c
	}
	return ConditionUnknown
}

// UnmarshalText normalizes condition names while decoding snapshots.
func (c *ConditionCode) UnmarshalText(text []byte) error {
	*c = ParseConditionCode(string(text))
	return nil
}

// Known reports whether c is a member of the closed set other than unknown.
func (c ConditionCode) Known() bool {
	_, ok := iconAssets[c]
	return ok
}
