package domain

import (
	"fmt"
	"time"

	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/zh"
	ut "github.com/go-playground/universal-translator"
	"golang.org/x/text/language"
)

type labelKey string

const (
	labelToday     labelKey = "today"
	labelYesterday labelKey = "yesterday"
	labelHumidity  labelKey = "humidity"
	labelFeelsLike labelKey = "feels_like"
)

var labelTexts = map[string]map[labelKey]string{
	"en": {
		labelToday:     "Today",
		labelYesterday: "Yesterday",
		labelHumidity:  "Humidity",
		labelFeelsLike: "Feels like",
	},
	"zh": {
		labelToday:     "今天",
		labelYesterday: "昨天",
		labelHumidity:  "湿度",
		labelFeelsLike: "体感",
	},
}

// supportedTags is ordered so that a failed match lands on English.
var supportedTags = []language.Tag{language.English, language.Chinese}

var (
	translators = newUniversalTranslator()
	matcher     = language.NewMatcher(supportedTags)
)

// newUniversalTranslator registers every label once at init. Translators are
// only read afterwards.
func newUniversalTranslator() *ut.UniversalTranslator {
	english := en.New()
	uni := ut.New(english, english, zh.New())
	for locale, labels := range labelTexts {
		trans, found := uni.GetTranslator(locale)
		if !found {
			panic(fmt.Sprintf("locale %q is not registered", locale))
		}
		for key, text := range labels {
			if err := trans.Add(key, text, false); err != nil {
				panic(fmt.Sprintf("register %s label %q: %v", locale, key, err))
			}
		}
	}
	return uni
}

// Locale carries the labels and weekday names for one display language. The
// zero value is English.
type Locale struct {
	tag   language.Tag
	trans ut.Translator
}

// ResolveLocale matches a BCP 47 tag such as "zh-CN" against the supported
// languages. Malformed or unsupported tags resolve to English.
func ResolveLocale(lang string) Locale {
	tag, err := language.Parse(lang)
	if err != nil {
		tag = language.English
	}
	_, idx, _ := matcher.Match(tag)
	matched := supportedTags[idx]

	name := "en"
	if matched == language.Chinese {
		name = "zh"
	}
	trans, _ := translators.GetTranslator(name)
	return Locale{tag: matched, trans: trans}
}

// IsChinese reports whether lunar dates may be shown for this locale.
func (l Locale) IsChinese() bool {
	return l.tag == language.Chinese
}

// String returns the matched language tag.
func (l Locale) String() string {
	if l.trans == nil {
		return language.English.String()
	}
	return l.tag.String()
}

func (l Locale) translator() ut.Translator {
	if l.trans == nil {
		trans, _ := translators.GetTranslator("en")
		return trans
	}
	return l.trans
}

func (l Locale) label(key labelKey) string {
	s, err := l.translator().T(key)
	if err != nil {
		return ""
	}
	return s
}

// Weekday returns the full localized weekday name.
func (l Locale) Weekday(d time.Weekday) string {
	return l.translator().WeekdayWide(d)
}

// WeekdayShort returns the abbreviated localized weekday name.
func (l Locale) WeekdayShort(d time.Weekday) string {
	return l.translator().WeekdayAbbreviated(d)
}
