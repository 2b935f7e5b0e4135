package rest

import (
	"github.com/daniilsolovey/hotel-portal/internal/portal"
	"github.com/daniilsolovey/hotel-portal/internal/storage"
)

func Map[From, To any](list []From, converter func(From) To) []To {
	result := make([]To, len(list))
	for i := range list {
		result[i] = converter(list[i])
	}
	return result
}

func NewBlogImage(img portal.BlogImage) BlogImage {
	return BlogImage{
		ID:     img.ID,
		URL:    img.URL,
		Alt:    img.Alt,
		IsMain: img.IsMain,
	}
}

func NewBlogPost(p portal.BlogPost) BlogPost {
	return BlogPost{
		ID:                 p.ID,
		Slug:               p.Slug,
		Title:              p.Title,
		Excerpt:            p.Excerpt,
		Content:            p.Content,
		Image:              p.Image,
		Images:             Map(p.Images, NewBlogImage),
		Author:             p.Author,
		Category:           p.Category,
		ReadTime:           p.ReadTime,
		PublishedAt:        p.PublishedAt,
		Active:             p.Active,
		Tags:               p.Tags,
		SeoTitle:           p.SeoTitle,
		SeoDescription:     p.SeoDescription,
		SeoKeywords:        p.SeoKeywords,
		ExternalLink:       p.ExternalLink,
		ExternalLinkTitle:  p.ExternalLinkTitle,
		ExternalLinkButton: p.ExternalLinkButton,
		Version:            p.Version,
		CreatedAt:          p.CreatedAt,
		UpdatedAt:          p.UpdatedAt,
	}
}

func NewRoom(r portal.Room) Room {
	return Room{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Image:       r.Image,
		Images:      r.Images,
		Price:       r.Price,
		Capacity:    r.Capacity,
		Size:        r.Size,
		Amenities:   r.Amenities,
		Order:       r.Order,
		Active:      r.Active,
		Version:     r.Version,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func NewTranslation(t portal.Translation) Translation {
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

func (s TranslationSearch) ToModel() portal.TranslationFilter {
	return portal.TranslationFilter{
		Locale:   s.Locale,
		Category: s.Category,
		Key:      s.Key,
	}
}

func NewUploadResponse(u *storage.Upload) UploadResponse {
	return UploadResponse{
		Success:  true,
		URL:      u.URL,
		FileName: u.FileName,
		Size:     u.Size,
		Type:     u.Type,
		Storage:  u.Storage,
	}
}
