package portal

import (
	"slices"
	"sort"
	"strconv"
	"strings"

	"github.com/daniilsolovey/hotel-portal/internal/i18n"

	"github.com/google/uuid"
)

// imageContainerKeys are probed in order when images arrive wrapped in an object.
var imageContainerKeys = []string{"list", "images", "items"}

// NormalizeAmenities returns a list for every supported locale.
// A flat array is copied to each locale, a per-locale map keeps its string arrays,
// anything else yields empty lists.
func NormalizeAmenities(v any) i18n.LocalizedList {
	out := make(i18n.LocalizedList, len(i18n.Locales))

	var perLocale i18n.LocalizedList
	switch t := v.(type) {
	case i18n.LocalizedList:
		perLocale = t
	case map[string][]string:
		perLocale = t
	default:
		if flat, ok := i18n.StringsFrom(v); ok {
			for _, l := range i18n.Locales {
				out[l] = slices.Clone(flat)
			}
			return out
		}
		perLocale, _ = i18n.ListFrom(v)
	}

	for _, l := range i18n.Locales {
		if items, ok := perLocale[l]; ok && items != nil {
			out[l] = slices.Clone(items)
		} else {
			out[l] = []string{}
		}
	}

	return out
}

// NormalizeTags accepts an array or a comma separated string and returns
// trimmed, non-empty, unique tags in first-occurrence order.
func NormalizeTags(v any) []string {
	var items []string
	if s, ok := v.(string); ok {
		items = strings.Split(s, ",")
	} else {
		items, _ = i18n.StringsFrom(v)
	}

	out := make([]string, 0, len(items))
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}

	return out
}

// NormalizeImages extracts up to MaxImages unique URLs from a loosely shaped image
// collection. fallback (a legacy single-image field) is appended as the last candidate.
// The cover image of the result is element 0.
func NormalizeImages(v any, fallback string) []string {
	out := []string{}
	seen := make(map[string]struct{})
	add := func(url string) {
		url = strings.TrimSpace(url)
		if url == "" {
			return
		}
		if _, ok := seen[url]; ok {
			return
		}
		seen[url] = struct{}{}
		out = append(out, url)
	}

	for _, c := range imageCandidates(v) {
		add(candidateURL(c))
	}
	add(fallback)

	if len(out) > MaxImages {
		out = out[:MaxImages]
	}

	return out
}

// NormalizeBlogImages is the BlogImage variant of NormalizeImages. Alt texts and
// ids survive, missing ids are derived from the URL, and exactly one image is
// flagged main: the first one flagged by the client, else the first one.
func NormalizeBlogImages(v any, fallback string) []BlogImage {
	out := []BlogImage{}
	seen := make(map[string]struct{})
	add := func(img BlogImage) {
		img.URL = strings.TrimSpace(img.URL)
		if img.URL == "" {
			return
		}
		if _, ok := seen[img.URL]; ok {
			return
		}
		seen[img.URL] = struct{}{}
		out = append(out, img)
	}

	if typed, ok := v.([]BlogImage); ok {
		for _, img := range typed {
			img.Alt = img.Alt.Clone()
			add(img)
		}
	} else {
		for _, c := range imageCandidates(v) {
			add(blogImageFrom(c))
		}
	}
	add(BlogImage{URL: fallback})

	if len(out) > MaxImages {
		out = out[:MaxImages]
	}

	return flagMain(out)
}

// CoverImage returns the URL of the main image, or of the first one when none is flagged.
func CoverImage(images []BlogImage) string {
	for _, img := range images {
		if img.IsMain {
			return img.URL
		}
	}

	if len(images) > 0 {
		return images[0].URL
	}

	return ""
}

func flagMain(images []BlogImage) []BlogImage {
	mainIdx := -1
	for i := range images {
		if images[i].ID == "" {
			images[i].ID = imageID(images[i].URL)
		}
		if images[i].Alt == nil {
			images[i].Alt = i18n.LocalizedText{}
		}
		if images[i].IsMain && mainIdx < 0 {
			mainIdx = i
		}
		images[i].IsMain = false
	}

	if len(images) > 0 {
		images[max(mainIdx, 0)].IsMain = true
	}

	return images
}

// imageID keeps ids of id-less images stable across reads.
func imageID(url string) string {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(url)).String()
}

func imageCandidates(v any) []any {
	switch t := v.(type) {
	case nil:
		return nil
	case string:
		return []any{t}
	case []string:
		out := make([]any, len(t))
		for i := range t {
			out[i] = t[i]
		}
		return out
	case []any:
		return t
	case map[string]any:
		if _, ok := t["url"].(string); ok {
			return []any{t}
		}
		for _, key := range imageContainerKeys {
			if inner, ok := t[key]; ok {
				switch inner.(type) {
				case string, []any:
					return imageCandidates(inner)
				}
			}
		}
		out := make([]any, 0, len(t))
		for _, key := range objectKeys(t) {
			out = append(out, t[key])
		}
		return out
	default:
		return nil
	}
}

func candidateURL(c any) string {
	switch t := c.(type) {
	case string:
		return t
	case map[string]any:
		url, _ := t["url"].(string)
		return url
	default:
		return ""
	}
}

func blogImageFrom(c any) BlogImage {
	switch t := c.(type) {
	case string:
		return BlogImage{URL: t}
	case map[string]any:
		img := BlogImage{}
		img.URL, _ = t["url"].(string)
		img.ID, _ = t["id"].(string)
		img.IsMain, _ = t["isMain"].(bool)
		if alt, ok := i18n.TextFrom(t["alt"]); ok {
			img.Alt = alt
		}
		return img
	default:
		return BlogImage{}
	}
}

// objectKeys orders object keys numerically when they look like indexes ("0", "1", "10").
func objectKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	sort.Slice(keys, func(i, j int) bool {
		a, errA := strconv.Atoi(keys[i])
		b, errB := strconv.Atoi(keys[j])
		switch {
		case errA == nil && errB == nil:
			return a < b
		case errA == nil:
			return true
		case errB == nil:
			return false
		default:
			return keys[i] < keys[j]
		}
	})

	return keys
}
