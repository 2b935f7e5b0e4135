package i18n

import (
	"slices"
	"strings"
)

// Resolve returns the display value for locale using the fallback chain:
// requested locale, then fallback (DefaultLocale unless given), then the first
// non-blank value in Locales order. Absent values resolve to "".
func Resolve(v LocalizedText, locale string, fallback ...string) string {
	if len(v) == 0 {
		return ""
	}

	if s := v[locale]; strings.TrimSpace(s) != "" {
		return s
	}

	if s := v[fallbackLocale(fallback)]; strings.TrimSpace(s) != "" {
		return s
	}

	for _, k := range keys(v) {
		if s := v[k]; strings.TrimSpace(s) != "" {
			return s
		}
	}

	return ""
}

// ResolveList applies the Resolve chain to lists, treating an empty list as missing.
// The result is a copy and never nil.
func ResolveList(v LocalizedList, locale string, fallback ...string) []string {
	if len(v) == 0 {
		return []string{}
	}

	if l := v[locale]; len(l) > 0 {
		return slices.Clone(l)
	}

	if l := v[fallbackLocale(fallback)]; len(l) > 0 {
		return slices.Clone(l)
	}

	for _, k := range keys(v) {
		if l := v[k]; len(l) > 0 {
			return slices.Clone(l)
		}
	}

	return []string{}
}

func fallbackLocale(fallback []string) string {
	if len(fallback) > 0 && fallback[0] != "" {
		return fallback[0]
	}

	return DefaultLocale
}
