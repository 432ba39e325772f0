package layout

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/weather-presenter/internal/domain"
)

var shanghai = time.FixedZone("CST", 8*3600)

func intPtr(v int) *int { return &v }

func testSnapshot() domain.WeatherSnapshot {
	days := make([]domain.Daily, 5)
	conditions := []domain.ConditionCode{
		domain.ConditionCloudy, domain.ConditionRain, domain.ConditionClear,
		domain.ConditionSnow, domain.ConditionFog,
	}
	for i := range days {
		days[i] = domain.Daily{
			Date:  time.Date(2024, 4, 26+i, 0, 0, 0, 0, shanghai),
			Day:   &domain.HalfDay{Condition: conditions[i], Temperature: 20 + i},
			Night: &domain.HalfDay{Condition: domain.ConditionClear, Temperature: 10 + i},
		}
	}
	return domain.WeatherSnapshot{
		Location: domain.Location{ID: "loc-sh", Name: "Shanghai", Timezone: "Asia/Shanghai"},
		Current: &domain.Current{
			Temperature:   18,
			FeelsLike:     intPtr(16),
			Condition:     domain.ConditionCloudy,
			WeatherText:   "Cloudy",
			WindDirection: "NE",
			WindLevel:     "Level 3",
			Humidity:      intPtr(60),
			AirQuality:    &domain.AirQuality{Index: intPtr(42), Category: "Good"},
		},
		Daily:       days,
		Yesterday:   &domain.Yesterday{DaytimeTemperature: intPtr(21), NighttimeTemperature: intPtr(13)},
		LastUpdated: time.Date(2024, 4, 26, 8, 30, 0, 0, shanghai),
	}
}

func testContext() RenderContext {
	return RenderContext{
		Now:       time.Date(2024, 4, 26, 9, 5, 0, 0, shanghai),
		Locale:    domain.ResolveLocale("en"),
		IsDaytime: true,
	}
}

func TestResolve_Variants(t *testing.T) {
	snap := testSnapshot()
	cfg := domain.DefaultDisplayConfig()
	rc := testContext()

	tests := []struct {
		style    domain.ViewStyle
		title    string
		subtitle string
		timeSlot bool
		days     int
	}{
		{domain.ViewRectangle, "Cloudy 18℃", "Shanghai 10/20°", true, 0},
		{domain.ViewSymmetry, "Shanghai Cloudy", "18℃ 10/20°", true, 0},
		{domain.ViewTile, "18℃", "Cloudy", true, 0},
		{domain.ViewMini, "18℃", "Shanghai", false, 0},
		{domain.ViewVertical, "18℃", "Cloudy 10/20°", true, 0},
		{domain.ViewTemp, "18℃", "10/20°", false, 0},
		{domain.ViewPixel, "18℃ Cloudy", "AQI 42 (Good)", true, 0},
		{domain.ViewDaily3, "Cloudy 18℃", "Shanghai", true, 3},
		{domain.ViewDaily5, "Cloudy 18℃", "Shanghai", false, 5},
	}

	for _, tt := range tests {
		t.Run(string(tt.style), func(t *testing.T) {
			p := Resolve(tt.style, snap, cfg, rc)

			assert.Equal(t, tt.style, p.ViewStyle)
			assert.Equal(t, tt.title, p.Title)
			assert.Equal(t, tt.subtitle, p.Subtitle)
			assert.Equal(t, domain.IconKey("weather_partly_cloudy_day"), p.Icon)
			assert.Len(t, p.Days, tt.days)
			if tt.timeSlot {
				require.NotNil(t, p.TimeLine)
				assert.Equal(t, "09:05 Fri", *p.TimeLine)
			} else {
				assert.Nil(t, p.TimeLine)
			}
		})
	}
}

func TestResolve_EveryStyleHasAVariant(t *testing.T) {
	for _, style := range domain.ViewStyles {
		_, ok := variants[style]
		assert.True(t, ok, "style %s", style)
	}
	assert.Len(t, variants, len(domain.ViewStyles))
}

func TestResolve_UnknownStyleFallsBackToSymmetry(t *testing.T) {
	snap := testSnapshot()
	cfg := domain.DefaultDisplayConfig()
	rc := testContext()

	want := Resolve(domain.ViewSymmetry, snap, cfg, rc)
	for _, style := range []domain.ViewStyle{"not-a-real-style", "", "SYMMETRY"} {
		got := Resolve(style, snap, cfg, rc)
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("Resolve(%q) mismatch (-want +got):\n%s", style, diff)
		}
	}
	assert.Equal(t, domain.ViewSymmetry, EffectiveStyle("not-a-real-style"))
	assert.Equal(t, domain.ViewTile, EffectiveStyle(domain.ViewTile))
}

func TestResolve_Idempotent(t *testing.T) {
	snap := testSnapshot()
	cfg := domain.DefaultDisplayConfig()
	cfg.Subtitle = domain.SubtitleCustom
	cfg.CustomSubtitle = "$lc$ $ct$ $aqi$"
	rc := testContext()

	for _, style := range domain.ViewStyles {
		first := Resolve(style, snap, cfg, rc)
		second := Resolve(style, snap, cfg, rc)
		if diff := cmp.Diff(first, second); diff != "" {
			t.Errorf("Resolve(%q) not idempotent (-first +second):\n%s", style, diff)
		}
	}
}

func TestResolve_DoesNotMutateSnapshot(t *testing.T) {
	snap := testSnapshot()
	before := testSnapshot()

	for _, style := range domain.ViewStyles {
		Resolve(style, snap, domain.DefaultDisplayConfig(), testContext())
	}
	if diff := cmp.Diff(before, snap); diff != "" {
		t.Errorf("snapshot mutated (-before +after):\n%s", diff)
	}
}

func TestResolve_DayStrip(t *testing.T) {
	snap := testSnapshot()
	cfg := domain.DefaultDisplayConfig()
	rc := testContext()

	p := Resolve(domain.ViewDaily5, snap, cfg, rc)
	require.Len(t, p.Days, 5)
	assert.Equal(t, domain.DayCell{Label: "Today", Icon: "weather_partly_cloudy_day", Temperature: "10/20°"}, p.Days[0])
	assert.Equal(t, domain.DayCell{Label: "Saturday", Icon: "weather_rain", Temperature: "11/21°"}, p.Days[1])
	assert.Equal(t, "Tuesday", p.Days[4].Label)
	assert.Equal(t, domain.IconKey("weather_fog"), p.Days[4].Icon)

	t.Run("truncated to forecast length", func(t *testing.T) {
		short := testSnapshot()
		short.Daily = short.Daily[:2]
		p := Resolve(domain.ViewDaily5, short, cfg, rc)
		assert.Len(t, p.Days, 2)
	})

	t.Run("missing day half uses night condition", func(t *testing.T) {
		partial := testSnapshot()
		partial.Daily[0].Day = nil
		p := Resolve(domain.ViewDaily3, partial, cfg, rc)
		assert.Equal(t, domain.IconKey("weather_clear_day"), p.Days[0].Icon)
		assert.Empty(t, p.Days[0].Temperature)
	})

	t.Run("yesterday label when viewed a day early", func(t *testing.T) {
		early := rc
		early.Now = rc.Now.AddDate(0, 0, -1)
		p := Resolve(domain.ViewDaily3, snap, cfg, early)
		assert.Equal(t, "Yesterday", p.Days[0].Label)
	})
}

func TestResolve_HideSubtitle(t *testing.T) {
	cfg := domain.DefaultDisplayConfig()
	cfg.HideSubtitle = true

	for _, style := range domain.ViewStyles {
		p := Resolve(style, testSnapshot(), cfg, testContext())
		assert.Nil(t, p.TimeLine, "style %s", style)
	}
}

func TestResolve_MissingCurrent(t *testing.T) {
	snap := testSnapshot()
	snap.Current = nil
	cfg := domain.DefaultDisplayConfig()

	p := Resolve(domain.ViewRectangle, snap, cfg, testContext())
	assert.Empty(t, p.Title)
	assert.Equal(t, "Shanghai 10/20°", p.Subtitle)
	assert.Equal(t, domain.IconKey("weather_partly_cloudy_day"), p.Icon)

	night := testContext()
	night.IsDaytime = false
	p = Resolve(domain.ViewTile, snap, cfg, night)
	assert.Equal(t, domain.IconKey("weather_clear_night"), p.Icon)
	assert.Empty(t, p.Title)
	assert.Empty(t, p.Subtitle)
}

func TestResolve_EmptySnapshot(t *testing.T) {
	p := Resolve(domain.ViewDaily5, domain.WeatherSnapshot{}, domain.DefaultDisplayConfig(), testContext())

	assert.Empty(t, p.Title)
	assert.Empty(t, p.Subtitle)
	assert.Empty(t, p.Days)
	assert.Equal(t, domain.IconKey("weather_cloudy"), p.Icon)
}

func TestResolve_Colors(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*domain.DisplayConfig)
		textColor string
		card      *domain.Card
		icon      domain.IconKey
	}{
		{
			name:      "auto without card follows dark text",
			mutate:    func(c *domain.DisplayConfig) { c.DarkText = true },
			textColor: colorDarkText,
			icon:      "weather_partly_cloudy_day_mini_dark",
		},
		{
			name:      "auto without card defaults to white",
			mutate:    func(c *domain.DisplayConfig) {},
			textColor: colorWhite,
			icon:      "weather_partly_cloudy_day_mini_light",
		},
		{
			name: "explicit light text wins over light card",
			mutate: func(c *domain.DisplayConfig) {
				c.TextColor = domain.ColorLight
				c.ShowCard = true
				c.CardStyle = domain.ColorLight
			},
			textColor: colorWhite,
			card:      &domain.Card{Color: colorWhite, Alpha: 255},
			icon:      "weather_partly_cloudy_day_mini_light",
		},
		{
			name: "auto text follows light card",
			mutate: func(c *domain.DisplayConfig) {
				c.ShowCard = true
				c.CardStyle = domain.ColorLight
				c.CardAlphaPercent = 50
			},
			textColor: colorDarkText,
			card:      &domain.Card{Color: colorWhite, Alpha: 128},
			icon:      "weather_partly_cloudy_day_mini_dark",
		},
		{
			name: "auto text follows dark card",
			mutate: func(c *domain.DisplayConfig) {
				c.DarkText = true
				c.ShowCard = true
				c.CardStyle = domain.ColorDark
				c.CardAlphaPercent = 0
			},
			textColor: colorWhite,
			card:      &domain.Card{Color: colorDarkCard, Alpha: 0},
			icon:      "weather_partly_cloudy_day_mini_light",
		},
		{
			name: "auto card follows wallpaper hint",
			mutate: func(c *domain.DisplayConfig) {
				c.DarkText = true
				c.ShowCard = true
			},
			textColor: colorDarkText,
			card:      &domain.Card{Color: colorWhite, Alpha: 255},
			icon:      "weather_partly_cloudy_day_mini_dark",
		},
		{
			name: "explicit dark text",
			mutate: func(c *domain.DisplayConfig) {
				c.TextColor = domain.ColorDark
			},
			textColor: colorDarkText,
			icon:      "weather_partly_cloudy_day_mini_dark",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := domain.DefaultDisplayConfig()
			cfg.IconStyle = domain.IconMinimal
			tt.mutate(&cfg)

			p := Resolve(domain.ViewTile, testSnapshot(), cfg, testContext())
			assert.Equal(t, tt.textColor, p.TextColor)
			assert.Equal(t, tt.card, p.Card)
			assert.Equal(t, tt.icon, p.Icon)
		})
	}
}

func TestResolve_TextScale(t *testing.T) {
	cfg := domain.DefaultDisplayConfig()
	assert.InDelta(t, 1.0, Resolve(domain.ViewMini, testSnapshot(), cfg, testContext()).TextScale, 1e-9)

	cfg.TextSizePercent = 150
	assert.InDelta(t, 1.5, Resolve(domain.ViewMini, testSnapshot(), cfg, testContext()).TextScale, 1e-9)

	cfg.TextSizePercent = 0
	assert.InDelta(t, 1.0, Resolve(domain.ViewMini, testSnapshot(), cfg, testContext()).TextScale, 1e-9)
}

func TestJoinNonEmpty(t *testing.T) {
	assert.Equal(t, "a b", joinNonEmpty(" ", "a", "", "b"))
	assert.Equal(t, "", joinNonEmpty(" ", "", ""))
	assert.Equal(t, "a", joinNonEmpty(" ", "a"))
}
