package portal

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/daniilsolovey/hotel-portal/internal/db"
	"github.com/daniilsolovey/hotel-portal/internal/i18n"
)

const entityBlog = "blog"

// BlogPosts returns posts sorted by publishedAt DESC.
func (m *Manager) BlogPosts(ctx context.Context, includeInactive bool) ([]BlogPost, error) {
	list, err := m.repo.BlogPosts(ctx, !includeInactive)
	if err != nil {
		return nil, storageErr("get blog posts", err)
	}

	posts := make([]BlogPost, len(list))
	for i := range list {
		posts[i] = m.newBlogPost(ctx, &list[i])
	}

	return posts, nil
}

func (m *Manager) BlogPostByID(ctx context.Context, id string) (*BlogPost, error) {
	row, err := m.repo.BlogPostByID(ctx, id)
	if err != nil {
		return nil, storageErr("get blog post by id", err)
	} else if row == nil {
		return nil, ErrNotFound
	}

	post := m.newBlogPost(ctx, row)
	return &post, nil
}

// BlogPostBySlug finds a post by its slug in any locale.
func (m *Manager) BlogPostBySlug(ctx context.Context, slug string) (*BlogPost, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, newValidationError("slug", "slug is required")
	}

	row, err := m.repo.BlogPostBySlug(ctx, slug)
	if err != nil {
		return nil, storageErr("get blog post by slug", err)
	} else if row == nil {
		return nil, ErrNotFound
	}

	post := m.newBlogPost(ctx, row)
	return &post, nil
}

// BlogSlugs returns every locale's slug of the post that owns slug.
func (m *Manager) BlogSlugs(ctx context.Context, slug string) (i18n.LocalizedText, error) {
	post, err := m.BlogPostBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	return post.Slug, nil
}

func (m *Manager) CreateBlogPost(ctx context.Context, in BlogPostInput) (*BlogPost, error) {
	post, err := BuildBlogPost(in, m.defaults, m.now())
	if err != nil {
		return nil, err
	}

	if err := m.checkSlugs(ctx, post.Slug, ""); err != nil {
		return nil, err
	}

	_, err = m.repo.AddBlogPost(ctx, newDBBlogPost(post))
	countWrite(entityBlog, "create", err)
	if db.IsUniqueViolation(err) {
		return nil, newValidationError("id", fmt.Sprintf("blog post %q already exists", post.ID))
	} else if err != nil {
		return nil, storageErr("create blog post", err)
	}

	return &post, nil
}

// UpdateBlogPost merges patch into the stored post. A patch carrying a version that is
// no longer current, or losing a concurrent write, fails with ErrConflict.
func (m *Manager) UpdateBlogPost(ctx context.Context, id string, patch BlogPostInput) (*BlogPost, error) {
	existing, err := m.BlogPostByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Version != nil && *patch.Version != existing.Version {
		return nil, ErrConflict
	}

	post, err := MergeBlogPost(*existing, patch, m.now())
	if err != nil {
		return nil, err
	}

	if patch.Slug != nil {
		if err := m.checkSlugs(ctx, post.Slug, id); err != nil {
			return nil, err
		}
	}

	ok, err := m.repo.UpdateBlogPost(ctx, newDBBlogPost(post), existing.Version)
	countWrite(entityBlog, "update", err)
	if err != nil {
		return nil, storageErr("update blog post", err)
	} else if !ok {
		return nil, ErrConflict
	}

	return &post, nil
}

func (m *Manager) DeleteBlogPost(ctx context.Context, id string) error {
	ok, err := m.repo.DeleteBlogPost(ctx, id)
	countWrite(entityBlog, "delete", err)
	if err != nil {
		return storageErr("delete blog post", err)
	} else if !ok {
		return ErrNotFound
	}

	return nil
}

// checkSlugs rejects slugs already used by another post in the same locale.
func (m *Manager) checkSlugs(ctx context.Context, slugs i18n.LocalizedText, excludeID string) error {
	for _, locale := range i18n.Locales {
		slug := strings.TrimSpace(slugs[locale])
		if slug == "" {
			continue
		}

		taken, err := m.repo.SlugTaken(ctx, locale, slug, excludeID)
		if err != nil {
			return storageErr("check slug", err)
		}
		if taken {
			return newValidationError("slug", fmt.Sprintf("slug %q is already used for locale %s", slug, locale))
		}
	}

	return nil
}

func (m *Manager) newBlogPost(ctx context.Context, row *db.BlogPost) BlogPost {
	post, malformed := NewBlogPost(row, m.defaults)
	m.warnMalformed(ctx, db.Tables.BlogPost.Name, row.ID, malformed)

	return post
}

// IsNotFound is a shortcut for errors.Is(err, ErrNotFound).
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
