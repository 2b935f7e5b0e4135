package portal

import (
	"context"

	"github.com/daniilsolovey/hotel-portal/internal/db"
)

// Repository is the persistence collaborator; db.Repository implements it.
type Repository interface {
	BlogPosts(ctx context.Context, onlyActive bool) ([]db.BlogPost, error)
	BlogPostByID(ctx context.Context, id string) (*db.BlogPost, error)
	BlogPostBySlug(ctx context.Context, slug string) (*db.BlogPost, error)
	SlugTaken(ctx context.Context, locale, slug, excludeID string) (bool, error)
	AddBlogPost(ctx context.Context, post *db.BlogPost) (*db.BlogPost, error)
	UpdateBlogPost(ctx context.Context, post *db.BlogPost, version int) (bool, error)
	DeleteBlogPost(ctx context.Context, id string) (bool, error)

	Rooms(ctx context.Context, onlyActive bool) ([]db.Room, error)
	RoomByID(ctx context.Context, id string) (*db.Room, error)
	AddRoom(ctx context.Context, room *db.Room) (*db.Room, error)
	UpdateRoom(ctx context.Context, room *db.Room, version int) (bool, error)
	DeleteRoom(ctx context.Context, id string) (bool, error)

	Settings(ctx context.Context) ([]db.SiteSetting, error)
	UpsertSettings(ctx context.Context, settings []db.SiteSetting) error

	Translations(ctx context.Context, search db.TranslationSearch) ([]db.Translation, error)
	TranslationByID(ctx context.Context, id string) (*db.Translation, error)
	TranslationByKey(ctx context.Context, key, locale string) (*db.Translation, error)
	AddTranslation(ctx context.Context, tr *db.Translation) (*db.Translation, error)
	UpdateTranslation(ctx context.Context, tr *db.Translation) (bool, error)
	DeleteTranslation(ctx context.Context, id string) (bool, error)
}

var _ Repository = (*db.Repository)(nil)
