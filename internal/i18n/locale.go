package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// DefaultLocale is used when a requested locale has no value or is not supported.
const DefaultLocale = "tr"

// Locales lists supported locales, default first.
var Locales = []string{"tr", "en", "de", "ru", "pl"}

var matcher = newMatcher()

func newMatcher() language.Matcher {
	tags := make([]language.Tag, len(Locales))
	for i, l := range Locales {
		tags[i] = language.MustParse(l)
	}

	return language.NewMatcher(tags)
}

func IsSupported(locale string) bool {
	for _, l := range Locales {
		if l == locale {
			return true
		}
	}

	return false
}

// Normalize maps a language tag such as "en-US", "de_DE" or "RU" to a supported
// locale. Empty, malformed or unsupported tags resolve to DefaultLocale.
func Normalize(tag string) string {
	tag = strings.ToLower(strings.TrimSpace(tag))
	if tag == "" {
		return DefaultLocale
	}

	tag = strings.ReplaceAll(tag, "_", "-")
	if IsSupported(tag) {
		return tag
	}

	t, err := language.Parse(tag)
	if err != nil {
		return DefaultLocale
	}

	_, idx, conf := matcher.Match(t)
	if conf == language.No {
		return DefaultLocale
	}

	return Locales[idx]
}

// Negotiate picks the best supported locale for an Accept-Language header value.
func Negotiate(acceptLanguage string) string {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return DefaultLocale
	}

	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return DefaultLocale
	}

	return Locales[idx]
}
