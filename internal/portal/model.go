package portal

import (
	"time"

	"github.com/daniilsolovey/hotel-portal/internal/i18n"
)

// MaxImages caps every image collection.
const MaxImages = 10

type BlogImage struct {
	ID     string             `json:"id"`
	URL    string             `json:"url"`
	Alt    i18n.LocalizedText `json:"alt"`
	IsMain bool               `json:"isMain"`
}

type BlogPost struct {
	ID                 string
	Slug               i18n.LocalizedText
	Title              i18n.LocalizedText
	Excerpt            i18n.LocalizedText
	Content            i18n.LocalizedText
	Image              string
	Images             []BlogImage
	Author             string
	Category           string
	ReadTime           string
	PublishedAt        time.Time
	Active             bool
	Tags               []string
	SeoTitle           i18n.LocalizedText
	SeoDescription     i18n.LocalizedText
	SeoKeywords        i18n.LocalizedText
	ExternalLink       string
	ExternalLinkTitle  i18n.LocalizedText
	ExternalLinkButton i18n.LocalizedText
	Version            int
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

type Room struct {
	ID          string
	Name        i18n.LocalizedText
	Description i18n.LocalizedText
	Image       string
	Images      []string
	Price       float64
	Capacity    string
	Size        string
	Amenities   i18n.LocalizedList
	Order       int
	Active      bool
	Version     int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type Contact struct {
	Phone    string
	Email    string
	Whatsapp string
	Address  i18n.LocalizedText
	MapURL   string
}

type Social struct {
	Facebook    string
	Instagram   string
	Twitter     string
	Youtube     string
	Tripadvisor string
}

// SiteInfo is the typed view of the site_settings key/value store.
type SiteInfo struct {
	LogoURL         string
	BannerURL       string
	SiteName        i18n.LocalizedText
	SiteDescription i18n.LocalizedText
	Contact         Contact
	Social          Social
}

type Translation struct {
	ID        string
	Key       string
	Locale    string
	Value     string
	Category  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type TranslationFilter struct {
	Locale   string
	Category string
	Key      string
}

// ImportResult counts what ImportMessages did with each flattened key.
type ImportResult struct {
	Created int `json:"created"`
	Updated int `json:"updated"`
	Skipped int `json:"skipped"`
}

// BlogPostInput is a loosely-typed admin payload. Nil fields are absent.
// Images, ReadTime and Tags keep whatever shape the client sent.
type BlogPostInput struct {
	ID                 *string            `json:"id"`
	Slug               i18n.LocalizedText `json:"slug"`
	Title              i18n.LocalizedText `json:"title"`
	Excerpt            i18n.LocalizedText `json:"excerpt"`
	Content            i18n.LocalizedText `json:"content"`
	Image              *string            `json:"image"`
	Images             any                `json:"images"`
	Author             *string            `json:"author"`
	Category           *string            `json:"category"`
	ReadTime           any                `json:"readTime"`
	PublishedAt        *time.Time         `json:"publishedAt"`
	Active             *bool              `json:"active"`
	Tags               any                `json:"tags"`
	SeoTitle           i18n.LocalizedText `json:"seoTitle"`
	SeoDescription     i18n.LocalizedText `json:"seoDescription"`
	SeoKeywords        i18n.LocalizedText `json:"seoKeywords"`
	ExternalLink       *string            `json:"externalLink"`
	ExternalLinkTitle  i18n.LocalizedText `json:"externalLinkTitle"`
	ExternalLinkButton i18n.LocalizedText `json:"externalLinkButton"`
	Version            *int               `json:"version"`
}

type RoomInput struct {
	ID          *string            `json:"id"`
	Name        i18n.LocalizedText `json:"name"`
	Description i18n.LocalizedText `json:"description"`
	Image       *string            `json:"image"`
	Images      any                `json:"images"`
	Price       any                `json:"price"`
	Capacity    any                `json:"capacity"`
	Size        any                `json:"size"`
	Amenities   any                `json:"amenities"`
	Order       any                `json:"order"`
	Active      *bool              `json:"active"`
	Version     *int               `json:"version"`
}

type TranslationInput struct {
	Key      *string `json:"key"`
	Locale   *string `json:"locale"`
	Value    *string `json:"value"`
	Category *string `json:"category"`
}
