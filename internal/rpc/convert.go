package rpc

import (
	"github.com/daniilsolovey/hotel-portal/internal/i18n"
	"github.com/daniilsolovey/hotel-portal/internal/portal"
)

func NewBlogImage(img portal.BlogImage, locale string) BlogImage {
	return BlogImage{
		ID:     img.ID,
		URL:    img.URL,
		Alt:    i18n.Resolve(img.Alt, locale),
		IsMain: img.IsMain,
	}
}

func NewBlogPost(p portal.BlogPost, locale string) BlogPost {
	images := make([]BlogImage, len(p.Images))
	for i := range p.Images {
		images[i] = NewBlogImage(p.Images[i], locale)
	}

	return BlogPost{
		ID:                 p.ID,
		Slug:               i18n.Resolve(p.Slug, locale),
		Slugs:              p.Slug.Clone(),
		Title:              i18n.Resolve(p.Title, locale),
		Excerpt:            i18n.Resolve(p.Excerpt, locale),
		Content:            i18n.Resolve(p.Content, locale),
		Image:              p.Image,
		Images:             images,
		Author:             p.Author,
		Category:           p.Category,
		ReadTime:           p.ReadTime,
		PublishedAt:        p.PublishedAt,
		Tags:               p.Tags,
		SeoTitle:           i18n.Resolve(p.SeoTitle, locale),
		SeoDescription:     i18n.Resolve(p.SeoDescription, locale),
		SeoKeywords:        i18n.Resolve(p.SeoKeywords, locale),
		ExternalLink:       p.ExternalLink,
		ExternalLinkTitle:  i18n.Resolve(p.ExternalLinkTitle, locale),
		ExternalLinkButton: i18n.Resolve(p.ExternalLinkButton, locale),
	}
}

func NewBlogPosts(list []portal.BlogPost, locale string) []BlogPost {
	out := make([]BlogPost, len(list))
	for i := range list {
		out[i] = NewBlogPost(list[i], locale)
	}

	return out
}

func NewRoom(r portal.Room, locale string) Room {
	return Room{
		ID:          r.ID,
		Name:        i18n.Resolve(r.Name, locale),
		Description: i18n.Resolve(r.Description, locale),
		Image:       r.Image,
		Images:      r.Images,
		Price:       r.Price,
		Capacity:    r.Capacity,
		Size:        r.Size,
		Amenities:   i18n.ResolveList(r.Amenities, locale),
		Order:       r.Order,
	}
}

func NewRooms(list []portal.Room, locale string) []Room {
	out := make([]Room, len(list))
	for i := range list {
		out[i] = NewRoom(list[i], locale)
	}

	return out
}

func NewSiteInfo(s portal.SiteInfo, locale string) SiteInfo {
	return SiteInfo{
		Locale:          locale,
		LogoURL:         s.LogoURL,
		BannerURL:       s.BannerURL,
		SiteName:        i18n.Resolve(s.SiteName, locale),
		SiteDescription: i18n.Resolve(s.SiteDescription, locale),
		Contact: Contact{
			Phone:    s.Contact.Phone,
			Email:    s.Contact.Email,
			Whatsapp: s.Contact.Whatsapp,
			Address:  i18n.Resolve(s.Contact.Address, locale),
			MapURL:   s.Contact.MapURL,
		},
		Social: Social(s.Social),
	}
}
