package portal

import (
	"encoding/json"
	"strings"

	"github.com/daniilsolovey/hotel-portal/internal/db"
	"github.com/daniilsolovey/hotel-portal/internal/i18n"
)

const (
	DefaultLogoURL   = "/logo.svg"
	DefaultBannerURL = "https://images.unsplash.com/photo-1566073771259-6a8506099945?q=80&w=2070"
	DefaultSiteName  = "Kemer Residence"
)

// columnDecoder decodes the jsonb columns of one row. A column that does not have
// its expected shape decodes to the empty value and is remembered as malformed.
type columnDecoder struct {
	malformed []string
}

func (d *columnDecoder) bad(column string) {
	d.malformed = append(d.malformed, column)
}

func (d *columnDecoder) value(column string, raw db.JSON) (any, bool) {
	if raw.IsNull() {
		return nil, false
	}

	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		d.bad(column)
		return nil, false
	}

	return v, true
}

func (d *columnDecoder) text(column string, raw db.JSON) i18n.LocalizedText {
	v, ok := d.value(column, raw)
	if !ok {
		return i18n.LocalizedText{}
	}

	t, ok := i18n.TextFrom(v)
	if !ok {
		d.bad(column)
	}

	return t
}

func (d *columnDecoder) stringList(column string, raw db.JSON) []string {
	v, ok := d.value(column, raw)
	if !ok {
		return []string{}
	}

	list, ok := i18n.StringsFrom(v)
	if !ok {
		d.bad(column)
		return []string{}
	}

	return list
}

func (d *columnDecoder) amenities(column string, raw db.JSON) i18n.LocalizedList {
	v, ok := d.value(column, raw)
	if ok && !isCollection(v) {
		d.bad(column)
		v = nil
	}

	return NormalizeAmenities(v)
}

func (d *columnDecoder) images(column string, raw db.JSON, fallback string) []string {
	v, ok := d.value(column, raw)
	if ok && !isImageShape(v) {
		d.bad(column)
		v = nil
	}

	return NormalizeImages(v, fallback)
}

func (d *columnDecoder) blogImages(column string, raw db.JSON, fallback string) []BlogImage {
	v, ok := d.value(column, raw)
	if ok && !isImageShape(v) {
		d.bad(column)
		v = nil
	}

	return NormalizeBlogImages(v, fallback)
}

func isCollection(v any) bool {
	switch v.(type) {
	case []any, map[string]any:
		return true
	default:
		return false
	}
}

func isImageShape(v any) bool {
	if _, ok := v.(string); ok {
		return true
	}

	return isCollection(v)
}

// NewBlogPost maps a stored row, applying create-time defaults to fields older rows lack.
// The second result lists columns that were malformed.
func NewBlogPost(p *db.BlogPost, d Defaults) (BlogPost, []string) {
	dec := &columnDecoder{}
	images := dec.blogImages(db.Columns.BlogPost.Images, p.Images, p.Image)

	post := BlogPost{
		ID:                 p.ID,
		Slug:               dec.text(db.Columns.BlogPost.Slug, p.Slug),
		Title:              dec.text(db.Columns.BlogPost.Title, p.Title),
		Excerpt:            dec.text(db.Columns.BlogPost.Excerpt, p.Excerpt),
		Content:            dec.text(db.Columns.BlogPost.Content, p.Content),
		Image:              CoverImage(images),
		Images:             images,
		Author:             orDefault(p.Author, d.Author),
		Category:           orDefault(p.Category, d.Category),
		ReadTime:           FormatReadTime(p.ReadTime),
		PublishedAt:        p.PublishedAt,
		Active:             p.Active == nil || *p.Active,
		Tags:               dec.stringList(db.Columns.BlogPost.Tags, p.Tags),
		SeoTitle:           dec.text(db.Columns.BlogPost.SeoTitle, p.SeoTitle),
		SeoDescription:     dec.text(db.Columns.BlogPost.SeoDescription, p.SeoDescription),
		SeoKeywords:        dec.text(db.Columns.BlogPost.SeoKeywords, p.SeoKeywords),
		ExternalLink:       deref(p.ExternalLink),
		ExternalLinkTitle:  dec.text(db.Columns.BlogPost.ExternalLinkTitle, p.ExternalLinkTitle),
		ExternalLinkButton: dec.text(db.Columns.BlogPost.ExternalLinkButton, p.ExternalLinkButton),
		Version:            p.Version,
		CreatedAt:          p.CreatedAt,
		UpdatedAt:          p.UpdatedAt,
	}

	return post, dec.malformed
}

func NewRoom(r *db.Room) (Room, []string) {
	dec := &columnDecoder{}
	images := dec.images(db.Columns.Room.Images, r.Images, r.Image)

	room := Room{
		ID:          r.ID,
		Name:        dec.text(db.Columns.Room.Name, r.Name),
		Description: dec.text(db.Columns.Room.Description, r.Description),
		Image:       firstOr(images, r.Image),
		Images:      images,
		Price:       r.Price,
		Capacity:    r.Capacity,
		Size:        r.Size,
		Amenities:   dec.amenities(db.Columns.Room.Amenities, r.Amenities),
		Order:       r.Order,
		Active:      r.Active == nil || *r.Active,
		Version:     r.Version,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}

	return room, dec.malformed
}

// NewSiteInfo builds the typed settings view. Unknown keys are ignored, missing ones get defaults.
func NewSiteInfo(settings []db.SiteSetting) (SiteInfo, []string) {
	dec := &columnDecoder{}
	info := SiteInfo{
		SiteName:        i18n.LocalizedText{},
		SiteDescription: i18n.LocalizedText{},
		Contact:         Contact{Address: i18n.LocalizedText{}},
	}

	for _, s := range settings {
		v, ok := dec.value(s.Key, s.Value)
		if !ok {
			continue
		}

		switch s.Key {
		case "logoUrl":
			info.LogoURL = stringValue(v)
		case "bannerUrl":
			info.BannerURL = stringValue(v)
		case "siteName":
			info.SiteName = textValue(v)
		case "siteDescription":
			info.SiteDescription = textValue(v)
		case "contact":
			obj, isObj := v.(map[string]any)
			if !isObj {
				dec.bad(s.Key)
				continue
			}
			info.Contact = Contact{
				Phone:    stringValue(obj["phone"]),
				Email:    stringValue(obj["email"]),
				Whatsapp: stringValue(obj["whatsapp"]),
				Address:  textValue(obj["address"]),
				MapURL:   stringValue(obj["mapUrl"]),
			}
		case "social":
			obj, isObj := v.(map[string]any)
			if !isObj {
				dec.bad(s.Key)
				continue
			}
			info.Social = Social{
				Facebook:    stringValue(obj["facebook"]),
				Instagram:   stringValue(obj["instagram"]),
				Twitter:     stringValue(obj["twitter"]),
				Youtube:     stringValue(obj["youtube"]),
				Tripadvisor: stringValue(obj["tripadvisor"]),
			}
		}
	}

	info.LogoURL = orDefault(info.LogoURL, DefaultLogoURL)
	info.BannerURL = orDefault(info.BannerURL, DefaultBannerURL)
	if info.SiteName.Empty() {
		info.SiteName = i18n.LocalizedText{i18n.DefaultLocale: DefaultSiteName}
	}

	return info, dec.malformed
}

// newSettingsMap decodes every setting value; malformed values become nil.
func newSettingsMap(settings []db.SiteSetting) (map[string]any, []string) {
	dec := &columnDecoder{}
	out := make(map[string]any, len(settings))
	for _, s := range settings {
		v, _ := dec.value(s.Key, s.Value)
		out[s.Key] = v
	}

	return out, dec.malformed
}

func NewTranslation(t *db.Translation) Translation {
	return Translation{
		ID:        t.ID,
		Key:       t.Key,
		Locale:    t.Locale,
		Value:     t.Value,
		Category:  t.Category,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

func newDBBlogPost(p BlogPost) *db.BlogPost {
	active := p.Active
	var link *string
	if p.ExternalLink != "" {
		link = &p.ExternalLink
	}

	return &db.BlogPost{
		ID:                 p.ID,
		Slug:               toJSON(p.Slug),
		Title:              toJSON(p.Title),
		Excerpt:            toJSON(p.Excerpt),
		Content:            toJSON(p.Content),
		Image:              p.Image,
		Images:             toJSON(p.Images),
		Author:             p.Author,
		Category:           p.Category,
		ReadTime:           p.ReadTime,
		PublishedAt:        p.PublishedAt,
		Active:             &active,
		Tags:               toJSON(p.Tags),
		SeoTitle:           toJSON(p.SeoTitle),
		SeoDescription:     toJSON(p.SeoDescription),
		SeoKeywords:        toJSON(p.SeoKeywords),
		ExternalLink:       link,
		ExternalLinkTitle:  toJSON(p.ExternalLinkTitle),
		ExternalLinkButton: toJSON(p.ExternalLinkButton),
		Version:            p.Version,
		CreatedAt:          p.CreatedAt,
		UpdatedAt:          p.UpdatedAt,
	}
}

func newDBRoom(r Room) *db.Room {
	active := r.Active

	return &db.Room{
		ID:          r.ID,
		Name:        toJSON(r.Name),
		Description: toJSON(r.Description),
		Image:       r.Image,
		Images:      toJSON(r.Images),
		Price:       r.Price,
		Capacity:    r.Capacity,
		Size:        r.Size,
		Amenities:   toJSON(r.Amenities),
		Order:       r.Order,
		Active:      &active,
		Version:     r.Version,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func newDBTranslation(t Translation) *db.Translation {
	return &db.Translation{
		ID:        t.ID,
		Key:       t.Key,
		Locale:    t.Locale,
		Value:     t.Value,
		Category:  t.Category,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

// toJSON marshals maps, slices and strings, which cannot fail.
func toJSON(v any) db.JSON {
	b, err := json.Marshal(v)
	if err != nil {
		return nil
	}

	return b
}

func stringValue(v any) string {
	s, _ := v.(string)
	return strings.TrimSpace(s)
}

// textValue accepts a per-locale object or a plain string stored for the default locale.
func textValue(v any) i18n.LocalizedText {
	if s, ok := v.(string); ok {
		if strings.TrimSpace(s) == "" {
			return i18n.LocalizedText{}
		}
		return i18n.LocalizedText{i18n.DefaultLocale: s}
	}

	t, _ := i18n.TextFrom(v)
	return t
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}

	return s
}
