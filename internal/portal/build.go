package portal

import (
	"math"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/daniilsolovey/hotel-portal/internal/i18n"

	"github.com/google/uuid"
)

// Defaults fill blog post fields the admin left empty.
type Defaults struct {
	Author   string
	Category string
}

var DefaultContent = Defaults{
	Author:   "Kemer Residence",
	Category: "Genel",
}

// BuildBlogPost produces the canonical record for a new post.
func BuildBlogPost(in BlogPostInput, d Defaults, now time.Time) (BlogPost, error) {
	images := NormalizeBlogImages(in.Images, deref(in.Image))

	p := BlogPost{
		ID:                 idOrNew(in.ID),
		Slug:               textOrEmpty(in.Slug),
		Title:              textOrEmpty(in.Title),
		Excerpt:            textOrEmpty(in.Excerpt),
		Content:            textOrEmpty(in.Content),
		Image:              CoverImage(images),
		Images:             images,
		Author:             stringOr(in.Author, d.Author),
		Category:           stringOr(in.Category, d.Category),
		ReadTime:           FormatReadTime(in.ReadTime),
		PublishedAt:        now,
		Active:             true,
		Tags:               NormalizeTags(in.Tags),
		SeoTitle:           textOrEmpty(in.SeoTitle),
		SeoDescription:     textOrEmpty(in.SeoDescription),
		SeoKeywords:        textOrEmpty(in.SeoKeywords),
		ExternalLink:       strings.TrimSpace(deref(in.ExternalLink)),
		ExternalLinkTitle:  textOrEmpty(in.ExternalLinkTitle),
		ExternalLinkButton: textOrEmpty(in.ExternalLinkButton),
		Version:            1,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	if in.PublishedAt != nil && !in.PublishedAt.IsZero() {
		p.PublishedAt = *in.PublishedAt
	}
	if in.Active != nil {
		p.Active = *in.Active
	}

	return p, validateBlogPost(p)
}

// MergeBlogPost applies a partial update. Localized fields merge per locale, scalars
// present in the patch replace stored ones, absent fields keep their stored value.
func MergeBlogPost(existing BlogPost, patch BlogPostInput, now time.Time) (BlogPost, error) {
	p := existing
	p.Slug = i18n.Merge(existing.Slug, patch.Slug)
	p.Title = i18n.Merge(existing.Title, patch.Title)
	p.Excerpt = i18n.Merge(existing.Excerpt, patch.Excerpt)
	p.Content = i18n.Merge(existing.Content, patch.Content)
	p.SeoTitle = i18n.Merge(existing.SeoTitle, patch.SeoTitle)
	p.SeoDescription = i18n.Merge(existing.SeoDescription, patch.SeoDescription)
	p.SeoKeywords = i18n.Merge(existing.SeoKeywords, patch.SeoKeywords)
	p.ExternalLinkTitle = i18n.Merge(existing.ExternalLinkTitle, patch.ExternalLinkTitle)
	p.ExternalLinkButton = i18n.Merge(existing.ExternalLinkButton, patch.ExternalLinkButton)

	switch {
	case patch.Images != nil:
		p.Images = NormalizeBlogImages(patch.Images, deref(patch.Image))
	case patch.Image != nil:
		p.Images = promoteBlogImage(existing.Images, *patch.Image)
	default:
		p.Images = NormalizeBlogImages(existing.Images, "")
	}
	p.Image = CoverImage(p.Images)

	if patch.Author != nil {
		p.Author = *patch.Author
	}
	if patch.Category != nil {
		p.Category = *patch.Category
	}
	if patch.ReadTime != nil {
		p.ReadTime = FormatReadTime(patch.ReadTime)
	} else {
		p.ReadTime = FormatReadTime(existing.ReadTime)
	}
	if patch.PublishedAt != nil && !patch.PublishedAt.IsZero() {
		p.PublishedAt = *patch.PublishedAt
	}
	if patch.Active != nil {
		p.Active = *patch.Active
	}
	if patch.Tags != nil {
		p.Tags = NormalizeTags(patch.Tags)
	} else {
		p.Tags = slices.Clone(existing.Tags)
	}
	if patch.ExternalLink != nil {
		p.ExternalLink = strings.TrimSpace(*patch.ExternalLink)
	}

	p.Version = existing.Version + 1
	p.UpdatedAt = now

	return p, validateBlogPost(p)
}

// promoteBlogImage moves url to the front of the collection as the main image,
// inserting it when it is not there yet.
func promoteBlogImage(images []BlogImage, url string) []BlogImage {
	url = strings.TrimSpace(url)
	if url == "" {
		return NormalizeBlogImages(images, "")
	}

	main := BlogImage{URL: url}
	rest := make([]BlogImage, 0, len(images))
	for _, img := range images {
		img.Alt = img.Alt.Clone()
		img.IsMain = false
		if img.URL == url {
			main = img
			continue
		}
		rest = append(rest, img)
	}
	main.IsMain = true

	return NormalizeBlogImages(append([]BlogImage{main}, rest...), "")
}

func validateBlogPost(p BlogPost) error {
	required := []struct {
		field string
		value i18n.LocalizedText
	}{
		{"slug", p.Slug},
		{"title", p.Title},
		{"content", p.Content},
		{"excerpt", p.Excerpt},
	}
	for _, r := range required {
		if r.value.Empty() {
			return newValidationError(r.field, "at least one locale is required")
		}
	}

	if len(p.Images) == 0 {
		return newValidationError("images", "at least one image is required")
	}

	return nil
}

// BuildRoom produces the canonical record for a new room.
func BuildRoom(in RoomInput, now time.Time) (Room, error) {
	images := NormalizeImages(in.Images, deref(in.Image))

	r := Room{
		ID:          idOrNew(in.ID),
		Name:        textOrEmpty(in.Name),
		Description: textOrEmpty(in.Description),
		Image:       firstOr(images, ""),
		Images:      images,
		Price:       toFloat(in.Price),
		Capacity:    toText(in.Capacity),
		Size:        toText(in.Size),
		Amenities:   NormalizeAmenities(in.Amenities),
		Order:       toInt(in.Order),
		Active:      true,
		Version:     1,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if in.Active != nil {
		r.Active = *in.Active
	}

	return r, validateRoom(r)
}

// MergeRoom applies a partial update to a room. Amenities present in the patch
// replace the stored ones as a whole.
func MergeRoom(existing Room, patch RoomInput, now time.Time) (Room, error) {
	r := existing
	r.Name = i18n.Merge(existing.Name, patch.Name)
	r.Description = i18n.Merge(existing.Description, patch.Description)

	switch {
	case patch.Images != nil:
		r.Images = NormalizeImages(patch.Images, deref(patch.Image))
	case patch.Image != nil:
		candidates := append([]string{*patch.Image}, existing.Images...)
		r.Images = NormalizeImages(candidates, "")
	default:
		r.Images = NormalizeImages(existing.Images, "")
	}
	r.Image = firstOr(r.Images, "")

	if patch.Price != nil {
		r.Price = toFloat(patch.Price)
	}
	if patch.Capacity != nil {
		r.Capacity = toText(patch.Capacity)
	}
	if patch.Size != nil {
		r.Size = toText(patch.Size)
	}
	if patch.Amenities != nil {
		r.Amenities = NormalizeAmenities(patch.Amenities)
	} else {
		r.Amenities = NormalizeAmenities(existing.Amenities)
	}
	if patch.Order != nil {
		r.Order = toInt(patch.Order)
	}
	if patch.Active != nil {
		r.Active = *patch.Active
	}

	r.Version = existing.Version + 1
	r.UpdatedAt = now

	return r, validateRoom(r)
}

func validateRoom(r Room) error {
	if r.Name.Empty() {
		return newValidationError("name", "at least one locale is required")
	}

	if len(r.Images) == 0 {
		return newValidationError("images", "at least one image is required")
	}

	return nil
}

func idOrNew(id *string) string {
	if id != nil && strings.TrimSpace(*id) != "" {
		return strings.TrimSpace(*id)
	}

	return uuid.NewString()
}

func textOrEmpty(t i18n.LocalizedText) i18n.LocalizedText {
	if t == nil {
		return i18n.LocalizedText{}
	}

	return t.Clone()
}

func stringOr(s *string, def string) string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return def
	}

	return strings.TrimSpace(*s)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}

func firstOr(list []string, def string) string {
	if len(list) == 0 {
		return def
	}

	return list[0]
}

// toFloat reads a price: numbers pass through, numeric strings are parsed, anything else is 0.
func toFloat(v any) float64 {
	switch t := v.(type) {
	case float64:
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return 0
		}
		return t
	case int:
		return float64(t)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0
		}
		return f
	default:
		return 0
	}
}

func toInt(v any) int {
	switch t := v.(type) {
	case float64:
		if math.IsNaN(t) || t > math.MaxInt32 || t < math.MinInt32 {
			return 0
		}
		return int(t)
	case int:
		return t
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(t))
		if err != nil {
			return 0
		}
		return n
	default:
		return 0
	}
}

// toText stringifies free-form room attributes such as capacity ("2+1") or size.
func toText(v any) string {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case bool:
		return strconv.FormatBool(t)
	default:
		return ""
	}
}
