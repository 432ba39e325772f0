package domain

import (
	"time"

	"github.com/6tail/lunar-go/calendar"
)

// FormatLunarSubtitle converts a Gregorian calendar date into its Chinese lunar
// month and day, e.g. 2024-02-10 -> "正月初一". Leap months carry the "闰"
// prefix. Callers decide whether the locale and settings allow it.
func FormatLunarSubtitle(date time.Time) string {
	if date.IsZero() {
		return ""
	}
	lunar := calendar.NewSolarFromYmd(date.Year(), int(date.Month()), date.Day()).GetLunar()
	return lunar.GetMonthInChinese() + "月" + lunar.GetDayInChinese()
}
