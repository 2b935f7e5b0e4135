package rest

import (
	"time"

	"github.com/daniilsolovey/hotel-portal/internal/i18n"
)

type BlogImage struct {
	ID     string             `json:"id"`
	URL    string             `json:"url"`
	Alt    i18n.LocalizedText `json:"alt"`
	IsMain bool               `json:"isMain"`
}

type BlogPost struct {
	ID                 string             `json:"id"`
	Slug               i18n.LocalizedText `json:"slug"`
	Title              i18n.LocalizedText `json:"title"`
	Excerpt            i18n.LocalizedText `json:"excerpt"`
	Content            i18n.LocalizedText `json:"content"`
	Image              string             `json:"image"`
	Images             []BlogImage        `json:"images"`
	Author             string             `json:"author"`
	Category           string             `json:"category"`
	ReadTime           string             `json:"readTime"`
	PublishedAt        time.Time          `json:"publishedAt"`
	Active             bool               `json:"active"`
	Tags               []string           `json:"tags"`
	SeoTitle           i18n.LocalizedText `json:"seoTitle"`
	SeoDescription     i18n.LocalizedText `json:"seoDescription"`
	SeoKeywords        i18n.LocalizedText `json:"seoKeywords"`
	ExternalLink       string             `json:"externalLink,omitempty"`
	ExternalLinkTitle  i18n.LocalizedText `json:"externalLinkTitle"`
	ExternalLinkButton i18n.LocalizedText `json:"externalLinkButton"`
	Version            int                `json:"version"`
	CreatedAt          time.Time          `json:"createdAt"`
	UpdatedAt          time.Time          `json:"updatedAt"`
}

type Room struct {
	ID          string             `json:"id"`
	Name        i18n.LocalizedText `json:"name"`
	Description i18n.LocalizedText `json:"description"`
	Image       string             `json:"image"`
	Images      []string           `json:"images"`
	Price       float64            `json:"price"`
	Capacity    string             `json:"capacity"`
	Size        string             `json:"size"`
	Amenities   i18n.LocalizedList `json:"amenities"`
	Order       int                `json:"order"`
	Active      bool               `json:"active"`
	Version     int                `json:"version"`
	CreatedAt   time.Time          `json:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt"`
}

type Translation struct {
	ID        string    `json:"id"`
	Key       string    `json:"key"`
	Locale    string    `json:"locale"`
	Value     string    `json:"value"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TranslationSearch is decoded from the query string with urlstruct.
type TranslationSearch struct {
	Locale   string
	Category string
	Key      string
}

type BlogSlugs struct {
	Slugs i18n.LocalizedText `json:"slugs"`
}

type UploadResponse struct {
	Success  bool   `json:"success"`
	URL      string `json:"url"`
	FileName string `json:"filename"`
	Size     int64  `json:"size"`
	Type     string `json:"type"`
	Storage  string `json:"storage"`
}

type ErrorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
