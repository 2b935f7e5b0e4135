package i18n

import (
	"bytes"
	"encoding/json"
	"slices"
	"sort"
	"strings"
)

// LocalizedText maps a locale code to a display string. Any locale may be missing.
type LocalizedText map[string]string

// LocalizedList maps a locale code to an ordered list of strings (amenities, tags).
type LocalizedList map[string][]string

// TextFrom converts a decoded JSON value into LocalizedText.
// Unsupported locales and non-string entries are dropped. ok is false when v is not an object.
func TextFrom(v any) (LocalizedText, bool) {
	obj, ok := v.(map[string]any)
	if !ok {
		return LocalizedText{}, false
	}

	t := make(LocalizedText, len(obj))
	for key, val := range obj {
		s, isString := val.(string)
		if !isString || !IsSupported(key) {
			continue
		}
		t[key] = s
	}

	return t, true
}

// ListFrom converts a decoded JSON value into LocalizedList.
// Entries that are not arrays are dropped, non-string items are filtered out.
func ListFrom(v any) (LocalizedList, bool) {
	obj, ok := v.(map[string]any)
	if !ok {
		return LocalizedList{}, false
	}

	l := make(LocalizedList, len(obj))
	for key, val := range obj {
		if !IsSupported(key) {
			continue
		}
		items, ok := StringsFrom(val)
		if !ok {
			continue
		}
		l[key] = items
	}

	return l, true
}

// StringsFrom keeps the string items of a decoded JSON array.
func StringsFrom(v any) ([]string, bool) {
	switch items := v.(type) {
	case []string:
		return slices.Clone(items), true
	case []any:
		out := make([]string, 0, len(items))
		for _, item := range items {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out, true
	default:
		return nil, false
	}
}

// UnmarshalJSON never fails on shape: anything but an object yields an empty value.
// JSON null leaves the receiver untouched so absent and null patch fields look the same.
func (t *LocalizedText) UnmarshalJSON(data []byte) error {
	if isNull(data) {
		return nil
	}

	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		*t = LocalizedText{}
		return nil
	}

	*t, _ = TextFrom(v)
	return nil
}

func (l *LocalizedList) UnmarshalJSON(data []byte) error {
	if isNull(data) {
		return nil
	}

	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		*l = LocalizedList{}
		return nil
	}

	*l, _ = ListFrom(v)
	return nil
}

// Empty reports whether no locale carries a non-blank value.
func (t LocalizedText) Empty() bool {
	for _, v := range t {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}

	return true
}

func (t LocalizedText) Clone() LocalizedText {
	if t == nil {
		return nil
	}

	out := make(LocalizedText, len(t))
	for k, v := range t {
		out[k] = v
	}

	return out
}

func (l LocalizedList) Clone() LocalizedList {
	if l == nil {
		return nil
	}

	out := make(LocalizedList, len(l))
	for k, v := range l {
		out[k] = slices.Clone(v)
	}

	return out
}

// Merge overlays patch on existing per locale: locales present in patch win,
// every other locale of existing is kept. Inputs are not modified.
func Merge(existing, patch LocalizedText) LocalizedText {
	if existing == nil && patch == nil {
		return nil
	}

	out := make(LocalizedText, len(existing)+len(patch))
	for k, v := range existing {
		out[k] = v
	}
	for k, v := range patch {
		out[k] = v
	}

	return out
}

// keys returns map keys in supported-locale order, followed by any other keys sorted.
func keys[V any](m map[string]V) []string {
	out := make([]string, 0, len(m))
	for _, l := range Locales {
		if _, ok := m[l]; ok {
			out = append(out, l)
		}
	}

	var extra []string
	for k := range m {
		if !IsSupported(k) {
			extra = append(extra, k)
		}
	}
	sort.Strings(extra)

	return append(out, extra...)
}

func isNull(data []byte) bool {
	return bytes.Equal(bytes.TrimSpace(data), []byte("null"))
}
