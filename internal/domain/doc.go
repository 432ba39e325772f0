// Package domain holds the pure presentation core for weather widgets and
// notifications: the snapshot model, icon selection, text formatting and the
// typed display settings. Nothing here performs I/O or reads the clock.
//
// # Snapshots
//
// A WeatherSnapshot is produced once per refresh cycle by the upstream
// provider adapter and published as JSON to the snapshot topic. Temperatures
// are canonical degrees Celsius and are converted only when formatted. Daily[0]
// is "today" relative to LastUpdated's calendar date. A snapshot with current
// conditions always carries at least one daily record; [ParseSnapshot]
// enforces this.
//
// Condition names from providers are folded onto a closed set of codes by
// [ParseConditionCode]. Anything unmapped becomes ConditionUnknown and draws
// the overcast icon.
//
// # Formatting
//
// Formatters are total. A missing optional field produces an empty string and
// never a placeholder:
//
//	trend:     "{night}/{day}°"      both bounds or nothing
//	aqi:       "AQI 42 (Good)"       else "Humidity 65%", else ""
//	wind:      "NE Level 3"          both parts or nothing
//	week:      "Today" / "Yesterday" / weekday of the forecast date
//
// Labels and weekday names come from the Locale resolved by [ResolveLocale].
// Lunar dates are only produced on request; whether to show them is a layout
// decision gated on a Chinese locale.
//
// # Day and night
//
// Two rules exist. [IsDaytimeByHour] treats 05:00 to 19:00 local time as day;
// [IsDaylight] uses sunrise and sunset. [IsDaytime] picks one by DaytimeSource.
package domain
