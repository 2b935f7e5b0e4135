// Package portaltest provides an in-memory portal.Repository for handler tests.
package portaltest

import (
	"context"
	"encoding/json"
	"sort"
	"strings"
	"sync"

	"github.com/daniilsolovey/hotel-portal/internal/db"
	"github.com/daniilsolovey/hotel-portal/internal/portal"
)

var _ portal.Repository = (*Repository)(nil)

// Repository keeps rows in maps and mimics the constraints of the postgres schema.
// When Err is set every call fails with it.
type Repository struct {
	mu           sync.Mutex
	posts        map[string]db.BlogPost
	rooms        map[string]db.Room
	settings     map[string]db.SiteSetting
	translations map[string]db.Translation

	Err error
}

func New() *Repository {
	return &Repository{
		posts:        map[string]db.BlogPost{},
		rooms:        map[string]db.Room{},
		settings:     map[string]db.SiteSetting{},
		translations: map[string]db.Translation{},
	}
}

// uniqueViolation satisfies pg.Error the way a postgres 23505 error does.
type uniqueViolation struct {
	constraint string
}

func (e uniqueViolation) Error() string {
	return "ERROR #23505 duplicate key value violates unique constraint " + e.constraint
}

func (e uniqueViolation) Field(field byte) string {
	switch field {
	case 'C':
		return "23505"
	case 'n':
		return e.constraint
	default:
		return ""
	}
}

func (e uniqueViolation) IntegrityViolation() bool {
	return true
}

func isActive(active *bool) bool {
	return active == nil || *active
}

func slugs(raw db.JSON) map[string]string {
	var m map[string]string
	_ = json.Unmarshal(raw, &m)
	return m
}

func (r *Repository) BlogPosts(ctx context.Context, onlyActive bool) ([]db.BlogPost, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}

	out := []db.BlogPost{}
	for _, p := range r.posts {
		if !onlyActive || isActive(p.Active) {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].PublishedAt.After(out[j].PublishedAt)
	})

	return out, nil
}

func (r *Repository) BlogPostByID(ctx context.Context, id string) (*db.BlogPost, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}

	p, ok := r.posts[id]
	if !ok {
		return nil, nil
	}

	return &p, nil
}

func (r *Repository) BlogPostBySlug(ctx context.Context, slug string) (*db.BlogPost, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}

	for _, p := range r.posts {
		for _, s := range slugs(p.Slug) {
			if s == slug {
				return &p, nil
			}
		}
	}

	return nil, nil
}

func (r *Repository) SlugTaken(ctx context.Context, locale, slug, excludeID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return false, r.Err
	}

	for id, p := range r.posts {
		if id != excludeID && slugs(p.Slug)[locale] == slug {
			return true, nil
		}
	}

	return false, nil
}

func (r *Repository) AddBlogPost(ctx context.Context, post *db.BlogPost) (*db.BlogPost, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}

	if _, ok := r.posts[post.ID]; ok {
		return nil, uniqueViolation{constraint: "blog_posts_pkey"}
	}
	r.posts[post.ID] = *post

	return post, nil
}

func (r *Repository) UpdateBlogPost(ctx context.Context, post *db.BlogPost, version int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return false, r.Err
	}

	stored, ok := r.posts[post.ID]
	if !ok || stored.Version != version {
		return false, nil
	}
	r.posts[post.ID] = *post

	return true, nil
}

func (r *Repository) DeleteBlogPost(ctx context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return false, r.Err
	}

	_, ok := r.posts[id]
	delete(r.posts, id)

	return ok, nil
}

func (r *Repository) Rooms(ctx context.Context, onlyActive bool) ([]db.Room, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}

	out := []db.Room{}
	for _, room := range r.rooms {
		if !onlyActive || isActive(room.Active) {
			out = append(out, room)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Order != out[j].Order {
			return out[i].Order < out[j].Order
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})

	return out, nil
}

func (r *Repository) RoomByID(ctx context.Context, id string) (*db.Room, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}

	room, ok := r.rooms[id]
	if !ok {
		return nil, nil
	}

	return &room, nil
}

func (r *Repository) AddRoom(ctx context.Context, room *db.Room) (*db.Room, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}

	if _, ok := r.rooms[room.ID]; ok {
		return nil, uniqueViolation{constraint: "rooms_pkey"}
	}
	r.rooms[room.ID] = *room

	return room, nil
}

func (r *Repository) UpdateRoom(ctx context.Context, room *db.Room, version int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return false, r.Err
	}

	stored, ok := r.rooms[room.ID]
	if !ok || stored.Version != version {
		return false, nil
	}
	r.rooms[room.ID] = *room

	return true, nil
}

func (r *Repository) DeleteRoom(ctx context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return false, r.Err
	}

	_, ok := r.rooms[id]
	delete(r.rooms, id)

	return ok, nil
}

func (r *Repository) Settings(ctx context.Context) ([]db.SiteSetting, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}

	out := make([]db.SiteSetting, 0, len(r.settings))
	for _, s := range r.settings {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })

	return out, nil
}

func (r *Repository) UpsertSettings(ctx context.Context, settings []db.SiteSetting) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}

	for _, s := range settings {
		r.settings[s.Key] = s
	}

	return nil
}

func (r *Repository) Translations(ctx context.Context, search db.TranslationSearch) ([]db.Translation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}

	out := []db.Translation{}
	for _, t := range r.translations {
		switch {
		case search.Locale != "" && t.Locale != search.Locale,
			search.Category != "" && t.Category != search.Category,
			search.KeyPrefix != "" && !strings.HasPrefix(t.Key, search.KeyPrefix),
			len(search.Locales) > 0 && !contains(search.Locales, t.Locale):
			continue
		}
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Category != out[j].Category {
			return out[i].Category < out[j].Category
		}
		if out[i].Key != out[j].Key {
			return out[i].Key < out[j].Key
		}
		return out[i].Locale < out[j].Locale
	})

	return out, nil
}

func (r *Repository) TranslationByID(ctx context.Context, id string) (*db.Translation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}

	t, ok := r.translations[id]
	if !ok {
		return nil, nil
	}

	return &t, nil
}

func (r *Repository) TranslationByKey(ctx context.Context, key, locale string) (*db.Translation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}

	if t := r.byKey(key, locale); t != nil {
		cp := *t
		return &cp, nil
	}

	return nil, nil
}

func (r *Repository) AddTranslation(ctx context.Context, tr *db.Translation) (*db.Translation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}

	if _, ok := r.translations[tr.ID]; ok || r.byKey(tr.Key, tr.Locale) != nil {
		return nil, uniqueViolation{constraint: "translations_key_locale_key"}
	}
	r.translations[tr.ID] = *tr

	return tr, nil
}

func (r *Repository) UpdateTranslation(ctx context.Context, tr *db.Translation) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return false, r.Err
	}

	if _, ok := r.translations[tr.ID]; !ok {
		return false, nil
	}
	if other := r.byKey(tr.Key, tr.Locale); other != nil && other.ID != tr.ID {
		return false, uniqueViolation{constraint: "translations_key_locale_key"}
	}
	r.translations[tr.ID] = *tr

	return true, nil
}

func (r *Repository) DeleteTranslation(ctx context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return false, r.Err
	}

	_, ok := r.translations[id]
	delete(r.translations, id)

	return ok, nil
}

func (r *Repository) byKey(key, locale string) *db.Translation {
	for _, t := range r.translations {
		if t.Key == key && t.Locale == locale {
			return &t
		}
	}

	return nil
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}

	return false
}
