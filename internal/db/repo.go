package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-pg/pg/v10"
)

const uniqueViolation = "23505"

type Repository struct {
	db pg.DBI
}

func New(db pg.DBI) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Ping(ctx context.Context) error {
	if db, ok := r.db.(*pg.DB); ok {
		if err := db.Ping(ctx); err != nil {
			return err
		}
		return nil
	}

	return nil
}

func (r *Repository) Close() error {
	if db, ok := r.db.(*pg.DB); ok {
		if err := db.Close(); err != nil {
			return err
		}
		return nil
	}

	return nil
}

// inTx runs fn in a transaction. A repository already bound to a transaction reuses it.
func (r *Repository) inTx(ctx context.Context, fn func(tx *pg.Tx) error) error {
	if tx, ok := r.db.(*pg.Tx); ok {
		return fn(tx)
	}

	return r.db.RunInTransaction(ctx, fn)
}

// IsUniqueViolation reports whether err was caused by a unique constraint.
func IsUniqueViolation(err error) bool {
	var pgErr pg.Error
	return errors.As(err, &pgErr) && pgErr.Field('C') == uniqueViolation
}

// BlogPosts returns posts sorted by publishedAt DESC. Rows with NULL active count as active.
func (r *Repository) BlogPosts(ctx context.Context, onlyActive bool) ([]BlogPost, error) {
	var posts []BlogPost
	query := r.db.ModelContext(ctx, &posts)
	if onlyActive {
		query = query.Where(`"t"."active" IS NOT FALSE`)
	}

	err := query.
		OrderExpr(`"t"."publishedAt" DESC`).
		OrderExpr(`"t"."createdAt" DESC`).
		Select()
	if err != nil {
		return nil, fmt.Errorf("failed to query blog posts: %w", err)
	}

	return posts, nil
}

func (r *Repository) BlogPostByID(ctx context.Context, id string) (*BlogPost, error) {
	post := &BlogPost{}
	err := r.db.ModelContext(ctx, post).
		Where(`"t"."id" = ?`, id).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get blog post by id: %w", err)
	}

	return post, nil
}

// BlogPostBySlug finds the post whose slug matches in any locale.
func (r *Repository) BlogPostBySlug(ctx context.Context, slug string) (*BlogPost, error) {
	post := &BlogPost{}
	err := r.db.ModelContext(ctx, post).
		Where(`EXISTS (
			SELECT 1 FROM jsonb_each_text(
				CASE WHEN jsonb_typeof("t"."slug") = 'object' THEN "t"."slug" ELSE '{}'::jsonb END
			) AS s WHERE s.value = ?)`, slug).
		OrderExpr(`"t"."createdAt" ASC`).
		Limit(1).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get blog post by slug: %w", err)
	}

	return post, nil
}

// SlugTaken reports whether another post already uses slug for locale.
func (r *Repository) SlugTaken(ctx context.Context, locale, slug, excludeID string) (bool, error) {
	query := r.db.ModelContext(ctx, (*BlogPost)(nil)).
		Where(`jsonb_typeof("t"."slug") = 'object'`).
		Where(`"t"."slug" ->> ?::text = ?`, locale, slug)
	if excludeID != "" {
		query = query.Where(`"t"."id" <> ?`, excludeID)
	}

	exists, err := query.Exists()
	if err != nil {
		return false, fmt.Errorf("failed to check slug: %w", err)
	}

	return exists, nil
}

func (r *Repository) AddBlogPost(ctx context.Context, post *BlogPost) (*BlogPost, error) {
	if _, err := r.db.ModelContext(ctx, post).Insert(); err != nil {
		return nil, fmt.Errorf("failed to insert blog post: %w", err)
	}

	return post, nil
}

// UpdateBlogPost writes post only if the stored version still equals version.
func (r *Repository) UpdateBlogPost(ctx context.Context, post *BlogPost, version int) (bool, error) {
	res, err := r.db.ModelContext(ctx, post).
		WherePK().
		Where(`"t"."version" = ?`, version).
		Update()
	if err != nil {
		return false, fmt.Errorf("failed to update blog post: %w", err)
	}

	return res.RowsAffected() > 0, nil
}

func (r *Repository) DeleteBlogPost(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ModelContext(ctx, &BlogPost{ID: id}).WherePK().Delete()
	if err != nil {
		return false, fmt.Errorf("failed to delete blog post: %w", err)
	}

	return res.RowsAffected() > 0, nil
}

// Rooms returns rooms in display order.
func (r *Repository) Rooms(ctx context.Context, onlyActive bool) ([]Room, error) {
	var rooms []Room
	query := r.db.ModelContext(ctx, &rooms)
	if onlyActive {
		query = query.Where(`"t"."active" IS NOT FALSE`)
	}

	err := query.
		OrderExpr(`"t"."order" ASC`).
		OrderExpr(`"t"."createdAt" ASC`).
		Select()
	if err != nil {
		return nil, fmt.Errorf("failed to query rooms: %w", err)
	}

	return rooms, nil
}

func (r *Repository) RoomByID(ctx context.Context, id string) (*Room, error) {
	room := &Room{}
	err := r.db.ModelContext(ctx, room).
		Where(`"t"."id" = ?`, id).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get room by id: %w", err)
	}

	return room, nil
}

func (r *Repository) AddRoom(ctx context.Context, room *Room) (*Room, error) {
	if _, err := r.db.ModelContext(ctx, room).Insert(); err != nil {
		return nil, fmt.Errorf("failed to insert room: %w", err)
	}

	return room, nil
}

func (r *Repository) UpdateRoom(ctx context.Context, room *Room, version int) (bool, error) {
	res, err := r.db.ModelContext(ctx, room).
		WherePK().
		Where(`"t"."version" = ?`, version).
		Update()
	if err != nil {
		return false, fmt.Errorf("failed to update room: %w", err)
	}

	return res.RowsAffected() > 0, nil
}

func (r *Repository) DeleteRoom(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ModelContext(ctx, &Room{ID: id}).WherePK().Delete()
	if err != nil {
		return false, fmt.Errorf("failed to delete room: %w", err)
	}

	return res.RowsAffected() > 0, nil
}

func (r *Repository) Settings(ctx context.Context) ([]SiteSetting, error) {
	var settings []SiteSetting
	err := r.db.ModelContext(ctx, &settings).
		OrderExpr(`"t"."key" ASC`).
		Select()
	if err != nil {
		return nil, fmt.Errorf("failed to query settings: %w", err)
	}

	return settings, nil
}

// UpsertSettings writes every setting by key in a single transaction.
func (r *Repository) UpsertSettings(ctx context.Context, settings []SiteSetting) error {
	return r.inTx(ctx, func(tx *pg.Tx) error {
		for i := range settings {
			_, err := tx.ModelContext(ctx, &settings[i]).
				OnConflict(`("key") DO UPDATE`).
				Set(`"value" = EXCLUDED."value"`).
				Set(`"updatedAt" = EXCLUDED."updatedAt"`).
				Insert()
			if err != nil {
				return fmt.Errorf("failed to upsert setting %q: %w", settings[i].Key, err)
			}
		}
		return nil
	})
}

// TranslationSearch filters translations; empty fields are ignored.
type TranslationSearch struct {
	Locale    string
	Category  string
	KeyPrefix string
	Locales   []string
}

func (r *Repository) Translations(ctx context.Context, search TranslationSearch) ([]Translation, error) {
	var list []Translation
	query := r.db.ModelContext(ctx, &list)

	if search.Locale != "" {
		query = query.Where(`"t"."locale" = ?`, search.Locale)
	}
	if len(search.Locales) > 0 {
		query = query.Where(`"t"."locale" IN (?)`, pg.In(search.Locales))
	}
	if search.Category != "" {
		query = query.Where(`"t"."category" = ?`, search.Category)
	}
	if search.KeyPrefix != "" {
		query = query.Where(`"t"."key" LIKE ?`, search.KeyPrefix+"%")
	}

	err := query.
		OrderExpr(`"t"."category" ASC`).
		OrderExpr(`"t"."key" ASC`).
		OrderExpr(`"t"."locale" ASC`).
		Select()
	if err != nil {
		return nil, fmt.Errorf("failed to query translations: %w", err)
	}

	return list, nil
}

func (r *Repository) TranslationByID(ctx context.Context, id string) (*Translation, error) {
	tr := &Translation{}
	err := r.db.ModelContext(ctx, tr).
		Where(`"t"."id" = ?`, id).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get translation by id: %w", err)
	}

	return tr, nil
}

func (r *Repository) TranslationByKey(ctx context.Context, key, locale string) (*Translation, error) {
	tr := &Translation{}
	err := r.db.ModelContext(ctx, tr).
		Where(`"t"."key" = ?`, key).
		Where(`"t"."locale" = ?`, locale).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get translation by key: %w", err)
	}

	return tr, nil
}

func (r *Repository) AddTranslation(ctx context.Context, tr *Translation) (*Translation, error) {
	if _, err := r.db.ModelContext(ctx, tr).Insert(); err != nil {
		return nil, fmt.Errorf("failed to insert translation: %w", err)
	}

	return tr, nil
}

func (r *Repository) UpdateTranslation(ctx context.Context, tr *Translation) (bool, error) {
	res, err := r.db.ModelContext(ctx, tr).WherePK().Update()
	if err != nil {
		return false, fmt.Errorf("failed to update translation: %w", err)
	}

	return res.RowsAffected() > 0, nil
}

func (r *Repository) DeleteTranslation(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ModelContext(ctx, &Translation{ID: id}).WherePK().Delete()
	if err != nil {
		return false, fmt.Errorf("failed to delete translation: %w", err)
	}

	return res.RowsAffected() > 0, nil
}
