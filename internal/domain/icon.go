package domain

// IconKey identifies an icon asset. Renderers hand it to their icon resource
// provider; the core never interprets it.
type IconKey string

// iconAsset names the day and night artwork for a condition.
type iconAsset struct {
	day   string
	night string
}

var iconAssets = map[ConditionCode]iconAsset{
	ConditionClear:       {day: "clear_day", night: "clear_night"},
	ConditionCloudy:      {day: "partly_cloudy_day", night: "partly_cloudy_night"},
	ConditionOvercast:    {day: "cloudy", night: "cloudy"},
	ConditionRain:        {day: "rain", night: "rain"},
	ConditionWind:        {day: "wind", night: "wind"},
	ConditionSnow:        {day: "snow", night: "snow"},
	ConditionFog:         {day: "fog", night: "fog"},
	ConditionHaze:        {day: "haze", night: "haze"},
	ConditionSleet:       {day: "sleet", night: "sleet"},
	ConditionThunderRain: {day: "thunderstorm", night: "thunderstorm"},
	ConditionThunder:     {day: "thunder", night: "thunder"},
	ConditionHail:        {day: "hail", night: "hail"},
}

// SelectIcon maps a condition to its icon asset. Unknown or unmapped codes draw
// the overcast icon. For the minimal style darkBackground picks the light tint;
// it never changes which condition is drawn.
func SelectIcon(code ConditionCode, isDaytime bool, style IconStyle, darkBackground bool) IconKey {
	asset, ok := iconAssets[code]
	if !ok {
		asset = iconAssets[ConditionOvercast]
	}

	name := asset.night
	if isDaytime {
		name = asset.day
	}

	if style != IconMinimal {
		return IconKey("weather_" + name)
	}
	if darkBackground {
		return IconKey("weather_" + name + "_mini_light")
	}
	return IconKey("weather_" + name + "_mini_dark")
}
