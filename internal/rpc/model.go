package rpc

import (
	"time"

	"github.com/daniilsolovey/hotel-portal/internal/i18n"
)

type BlogImage struct {
	ID     string `json:"id"`
	URL    string `json:"url"`
	Alt    string `json:"alt"`
	IsMain bool   `json:"isMain"`
}

type BlogPost struct {
	ID                 string             `json:"id"`
	Slug               string             `json:"slug"`
	Slugs              i18n.LocalizedText `json:"slugs"`
	Title              string             `json:"title"`
	Excerpt            string             `json:"excerpt"`
	Content            string             `json:"content"`
	Image              string             `json:"image"`
	Images             []BlogImage        `json:"images"`
	Author             string             `json:"author"`
	Category           string             `json:"category"`
	ReadTime           string             `json:"readTime"`
	PublishedAt        time.Time          `json:"publishedAt"`
	Tags               []string           `json:"tags"`
	SeoTitle           string             `json:"seoTitle"`
	SeoDescription     string             `json:"seoDescription"`
	SeoKeywords        string             `json:"seoKeywords"`
	ExternalLink       string             `json:"externalLink,omitempty"`
	ExternalLinkTitle  string             `json:"externalLinkTitle,omitempty"`
	ExternalLinkButton string             `json:"externalLinkButton,omitempty"`
}

type Room struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Images      []string `json:"images"`
	Price       float64  `json:"price"`
	Capacity    string   `json:"capacity"`
	Size        string   `json:"size"`
	Amenities   []string `json:"amenities"`
	Order       int      `json:"order"`
}

type Contact struct {
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Whatsapp string `json:"whatsapp"`
	Address  string `json:"address"`
	MapURL   string `json:"mapUrl"`
}

type Social struct {
	Facebook    string `json:"facebook"`
	Instagram   string `json:"instagram"`
	Twitter     string `json:"twitter"`
	Youtube     string `json:"youtube"`
	Tripadvisor string `json:"tripadvisor"`
}

// SiteInfo is the site header/footer content for one locale.
type SiteInfo struct {
	Locale          string  `json:"locale"`
	LogoURL         string  `json:"logoUrl"`
	BannerURL       string  `json:"bannerUrl"`
	SiteName        string  `json:"siteName"`
	SiteDescription string  `json:"siteDescription"`
	Contact         Contact `json:"contact"`
	Social          Social  `json:"social"`
}
