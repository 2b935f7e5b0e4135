package portal

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/daniilsolovey/hotel-portal/internal/db"
)

var testNow = time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)

// noOpLogger creates a logger that discards all output for tests
func noOpLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.LevelError + 1,
	}))
}

// stubRepository is a manual stub implementation of Repository
type stubRepository struct {
	blogPostsFunc         func(ctx context.Context, onlyActive bool) ([]db.BlogPost, error)
	blogPostByIDFunc      func(ctx context.Context, id string) (*db.BlogPost, error)
	blogPostBySlugFunc    func(ctx context.Context, slug string) (*db.BlogPost, error)
	slugTakenFunc         func(ctx context.Context, locale, slug, excludeID string) (bool, error)
	addBlogPostFunc       func(ctx context.Context, post *db.BlogPost) (*db.BlogPost, error)
	updateBlogPostFunc    func(ctx context.Context, post *db.BlogPost, version int) (bool, error)
	deleteBlogPostFunc    func(ctx context.Context, id string) (bool, error)
	roomsFunc             func(ctx context.Context, onlyActive bool) ([]db.Room, error)
	roomByIDFunc          func(ctx context.Context, id string) (*db.Room, error)
	addRoomFunc           func(ctx context.Context, room *db.Room) (*db.Room, error)
	updateRoomFunc        func(ctx context.Context, room *db.Room, version int) (bool, error)
	deleteRoomFunc        func(ctx context.Context, id string) (bool, error)
	settingsFunc          func(ctx context.Context) ([]db.SiteSetting, error)
	upsertSettingsFunc    func(ctx context.Context, settings []db.SiteSetting) error
	translationsFunc      func(ctx context.Context, search db.TranslationSearch) ([]db.Translation, error)
	translationByIDFunc   func(ctx context.Context, id string) (*db.Translation, error)
	translationByKeyFunc  func(ctx context.Context, key, locale string) (*db.Translation, error)
	addTranslationFunc    func(ctx context.Context, tr *db.Translation) (*db.Translation, error)
	updateTranslationFunc func(ctx context.Context, tr *db.Translation) (bool, error)
	deleteTranslationFunc func(ctx context.Context, id string) (bool, error)
}

func (s *stubRepository) BlogPosts(ctx context.Context, onlyActive bool) ([]db.BlogPost, error) {
	if s.blogPostsFunc != nil {
		return s.blogPostsFunc(ctx, onlyActive)
	}
	return nil, nil
}

func (s *stubRepository) BlogPostByID(ctx context.Context, id string) (*db.BlogPost, error) {
	if s.blogPostByIDFunc != nil {
		return s.blogPostByIDFunc(ctx, id)
	}
	return nil, nil
}

func (s *stubRepository) BlogPostBySlug(ctx context.Context, slug string) (*db.BlogPost, error) {
	if s.blogPostBySlugFunc != nil {
		return s.blogPostBySlugFunc(ctx, slug)
	}
	return nil, nil
}

func (s *stubRepository) SlugTaken(ctx context.Context, locale, slug, excludeID string) (bool, error) {
	if s.slugTakenFunc != nil {
		return s.slugTakenFunc(ctx, locale, slug, excludeID)
	}
	return false, nil
}

func (s *stubRepository) AddBlogPost(ctx context.Context, post *db.BlogPost) (*db.BlogPost, error) {
	if s.addBlogPostFunc != nil {
		return s.addBlogPostFunc(ctx, post)
	}
	return post, nil
}

func (s *stubRepository) UpdateBlogPost(ctx context.Context, post *db.BlogPost, version int) (bool, error) {
	if s.updateBlogPostFunc != nil {
		return s.updateBlogPostFunc(ctx, post, version)
	}
	return true, nil
}

func (s *stubRepository) DeleteBlogPost(ctx context.Context, id string) (bool, error) {
	if s.deleteBlogPostFunc != nil {
		return s.deleteBlogPostFunc(ctx, id)
	}
	return false, nil
}

func (s *stubRepository) Rooms(ctx context.Context, onlyActive bool) ([]db.Room, error) {
	if s.roomsFunc != nil {
		return s.roomsFunc(ctx, onlyActive)
	}
	return nil, nil
}

func (s *stubRepository) RoomByID(ctx context.Context, id string) (*db.Room, error) {
	if s.roomByIDFunc != nil {
		return s.roomByIDFunc(ctx, id)
	}
	return nil, nil
}

func (s *stubRepository) AddRoom(ctx context.Context, room *db.Room) (*db.Room, error) {
	if s.addRoomFunc != nil {
		return s.addRoomFunc(ctx, room)
	}
	return room, nil
}

func (s *stubRepository) UpdateRoom(ctx context.Context, room *db.Room, version int) (bool, error) {
	if s.updateRoomFunc != nil {
		return s.updateRoomFunc(ctx, room, version)
	}
	return true, nil
}

func (s *stubRepository) DeleteRoom(ctx context.Context, id string) (bool, error) {
	if s.deleteRoomFunc != nil {
		return s.deleteRoomFunc(ctx, id)
	}
	return false, nil
}

func (s *stubRepository) Settings(ctx context.Context) ([]db.SiteSetting, error) {
	if s.settingsFunc != nil {
		return s.settingsFunc(ctx)
	}
	return nil, nil
}

func (s *stubRepository) UpsertSettings(ctx context.Context, settings []db.SiteSetting) error {
	if s.upsertSettingsFunc != nil {
		return s.upsertSettingsFunc(ctx, settings)
	}
	return nil
}

func (s *stubRepository) Translations(ctx context.Context, search db.TranslationSearch) ([]db.Translation, error) {
	if s.translationsFunc != nil {
		return s.translationsFunc(ctx, search)
	}
	return nil, nil
}

func (s *stubRepository) TranslationByID(ctx context.Context, id string) (*db.Translation, error) {
	if s.translationByIDFunc != nil {
		return s.translationByIDFunc(ctx, id)
	}
	return nil, nil
}

func (s *stubRepository) TranslationByKey(ctx context.Context, key, locale string) (*db.Translation, error) {
	if s.translationByKeyFunc != nil {
		return s.translationByKeyFunc(ctx, key, locale)
	}
	return nil, nil
}

func (s *stubRepository) AddTranslation(ctx context.Context, tr *db.Translation) (*db.Translation, error) {
	if s.addTranslationFunc != nil {
		return s.addTranslationFunc(ctx, tr)
	}
	return tr, nil
}

func (s *stubRepository) UpdateTranslation(ctx context.Context, tr *db.Translation) (bool, error) {
	if s.updateTranslationFunc != nil {
		return s.updateTranslationFunc(ctx, tr)
	}
	return true, nil
}

func (s *stubRepository) DeleteTranslation(ctx context.Context, id string) (bool, error) {
	if s.deleteTranslationFunc != nil {
		return s.deleteTranslationFunc(ctx, id)
	}
	return false, nil
}

func newTestManager(repo Repository) *Manager {
	m := NewManager(repo, Config{SettingsTTL: time.Minute}, noOpLogger())
	m.now = func() time.Time { return testNow }

	return m
}

func ptr[T any](v T) *T {
	return &v
}
