package portal

import (
	"errors"
	"testing"
	"time"

	"github.com/daniilsolovey/hotel-portal/internal/i18n"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validBlogInput() BlogPostInput {
	return BlogPostInput{
		Slug:    i18n.LocalizedText{"tr": "kemer-rehberi", "en": "kemer-guide"},
		Title:   i18n.LocalizedText{"tr": "Başlık", "en": "Title"},
		Excerpt: i18n.LocalizedText{"tr": "Özet"},
		Content: i18n.LocalizedText{"tr": "İçerik"},
		Images:  []any{"https://x/1.jpg"},
	}
}

func TestBuildBlogPost_LegacyCoverFallback(t *testing.T) {
	in := validBlogInput()
	in.Title = i18n.LocalizedText{"tr": "Başlık", "en": "Title"}
	in.Images = []any{}
	in.Image = ptr("https://x/cover.jpg")

	post, err := BuildBlogPost(in, DefaultContent, testNow)
	require.NoError(t, err)

	require.Len(t, post.Images, 1)
	assert.Equal(t, "https://x/cover.jpg", post.Images[0].URL)
	assert.True(t, post.Images[0].IsMain)
	assert.Equal(t, "https://x/cover.jpg", post.Image)
	assert.Equal(t, "5 dk", post.ReadTime)
	assert.True(t, post.Active)
}

func TestBuildBlogPost_Defaults(t *testing.T) {
	post, err := BuildBlogPost(validBlogInput(), Defaults{Author: "Editor", Category: "News"}, testNow)
	require.NoError(t, err)

	assert.NotEmpty(t, post.ID)
	assert.Equal(t, "Editor", post.Author)
	assert.Equal(t, "News", post.Category)
	assert.Equal(t, testNow, post.PublishedAt)
	assert.Equal(t, testNow, post.CreatedAt)
	assert.Equal(t, 1, post.Version)
	assert.Equal(t, []string{}, post.Tags)
	assert.Equal(t, i18n.LocalizedText{}, post.SeoTitle)
}

func TestBuildBlogPost_ExplicitFields(t *testing.T) {
	published := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	in := validBlogInput()
	in.ID = ptr("post-1")
	in.Author = ptr("  Ayşe ")
	in.ReadTime = 8.0
	in.Active = ptr(false)
	in.PublishedAt = &published
	in.Tags = "sea, sun"

	post, err := BuildBlogPost(in, DefaultContent, testNow)
	require.NoError(t, err)

	assert.Equal(t, "post-1", post.ID)
	assert.Equal(t, "Ayşe", post.Author)
	assert.Equal(t, "Genel", post.Category)
	assert.Equal(t, "8 dk", post.ReadTime)
	assert.False(t, post.Active)
	assert.Equal(t, published, post.PublishedAt)
	assert.Equal(t, []string{"sea", "sun"}, post.Tags)
}

func TestBuildBlogPost_Validation(t *testing.T) {
	tests := []struct {
		name   string
		modify func(in *BlogPostInput)
		field  string
	}{
		{name: "NoSlug", modify: func(in *BlogPostInput) { in.Slug = nil }, field: "slug"},
		{name: "BlankTitle", modify: func(in *BlogPostInput) { in.Title = i18n.LocalizedText{"tr": " "} }, field: "title"},
		{name: "NoContent", modify: func(in *BlogPostInput) { in.Content = i18n.LocalizedText{} }, field: "content"},
		{name: "NoExcerpt", modify: func(in *BlogPostInput) { in.Excerpt = nil }, field: "excerpt"},
		{name: "NoImages", modify: func(in *BlogPostInput) { in.Images = []any{"", "  "} }, field: "images"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validBlogInput()
			tt.modify(&in)

			_, err := BuildBlogPost(in, DefaultContent, testNow)

			var verr *ValidationError
			require.True(t, errors.As(err, &verr), "got %v", err)
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}

func existingPost(t *testing.T) BlogPost {
	t.Helper()

	in := validBlogInput()
	in.ID = ptr("post-1")
	in.Title = i18n.LocalizedText{"tr": "A", "en": "B"}
	in.Images = []any{"https://x/1.jpg", "https://x/2.jpg"}
	in.Tags = []any{"sea"}

	post, err := BuildBlogPost(in, DefaultContent, testNow.Add(-time.Hour))
	require.NoError(t, err)

	return post
}

func TestMergeBlogPost_PerLocale(t *testing.T) {
	existing := existingPost(t)

	merged, err := MergeBlogPost(existing, BlogPostInput{
		Title: i18n.LocalizedText{"en": "C"},
	}, testNow)
	require.NoError(t, err)

	assert.Equal(t, i18n.LocalizedText{"tr": "A", "en": "C"}, merged.Title)
	assert.Equal(t, i18n.LocalizedText{"tr": "A", "en": "B"}, existing.Title)
	assert.Equal(t, existing.Slug, merged.Slug)
	assert.Equal(t, existing.Images, merged.Images)
	assert.Equal(t, []string{"sea"}, merged.Tags)
	assert.Equal(t, existing.Version+1, merged.Version)
	assert.Equal(t, testNow, merged.UpdatedAt)
	assert.Equal(t, existing.CreatedAt, merged.CreatedAt)
}

func TestMergeBlogPost_Images(t *testing.T) {
	existing := existingPost(t)

	t.Run("ReplaceCollection", func(t *testing.T) {
		merged, err := MergeBlogPost(existing, BlogPostInput{
			Images: []any{map[string]any{"url": "https://x/9.jpg"}},
		}, testNow)
		require.NoError(t, err)

		require.Len(t, merged.Images, 1)
		assert.Equal(t, "https://x/9.jpg", merged.Images[0].URL)
		assert.Equal(t, "https://x/9.jpg", merged.Image)
	})

	t.Run("ReplaceCollectionWithCover", func(t *testing.T) {
		merged, err := MergeBlogPost(existing, BlogPostInput{
			Images: []any{"https://x/9.jpg"},
			Image:  ptr("https://x/cover.jpg"),
		}, testNow)
		require.NoError(t, err)

		require.Len(t, merged.Images, 2)
		assert.Equal(t, "https://x/cover.jpg", merged.Images[1].URL)
	})

	t.Run("PromoteExisting", func(t *testing.T) {
		merged, err := MergeBlogPost(existing, BlogPostInput{Image: ptr("https://x/2.jpg")}, testNow)
		require.NoError(t, err)

		require.Len(t, merged.Images, 2)
		assert.Equal(t, "https://x/2.jpg", merged.Images[0].URL)
		assert.True(t, merged.Images[0].IsMain)
		assert.Equal(t, "https://x/1.jpg", merged.Images[1].URL)
		assert.False(t, merged.Images[1].IsMain)
		assert.Equal(t, "https://x/2.jpg", merged.Image)
		assert.True(t, existing.Images[0].IsMain, "existing must not change")
	})

	t.Run("PromoteNew", func(t *testing.T) {
		merged, err := MergeBlogPost(existing, BlogPostInput{Image: ptr("https://x/new.jpg")}, testNow)
		require.NoError(t, err)

		require.Len(t, merged.Images, 3)
		assert.Equal(t, "https://x/new.jpg", merged.Images[0].URL)
		assert.Equal(t, "https://x/new.jpg", merged.Image)
	})

	t.Run("ZeroImagesRejected", func(t *testing.T) {
		_, err := MergeBlogPost(existing, BlogPostInput{Images: []any{}}, testNow)

		var verr *ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Equal(t, "images", verr.Field)
	})
}

func TestMergeBlogPost_Scalars(t *testing.T) {
	existing := existingPost(t)

	merged, err := MergeBlogPost(existing, BlogPostInput{
		Author:       ptr("New Author"),
		ReadTime:     "10",
		Active:       ptr(false),
		Tags:         []any{},
		ExternalLink: ptr(" https://example.com "),
	}, testNow)
	require.NoError(t, err)

	assert.Equal(t, "New Author", merged.Author)
	assert.Equal(t, existing.Category, merged.Category)
	assert.Equal(t, "10 dk", merged.ReadTime)
	assert.False(t, merged.Active)
	assert.Equal(t, []string{}, merged.Tags)
	assert.Equal(t, "https://example.com", merged.ExternalLink)
}

func validRoomInput() RoomInput {
	return RoomInput{
		Name:      i18n.LocalizedText{"tr": "Standart Oda", "en": "Standard Room"},
		Images:    []any{"https://x/r1.jpg", "https://x/r2.jpg"},
		Price:     "120.5",
		Capacity:  2.0,
		Size:      "25 m²",
		Amenities: []any{"WiFi", "AC"},
		Order:     "3",
	}
}

func TestBuildRoom(t *testing.T) {
	room, err := BuildRoom(validRoomInput(), testNow)
	require.NoError(t, err)

	assert.NotEmpty(t, room.ID)
	assert.Equal(t, "https://x/r1.jpg", room.Image)
	assert.Equal(t, 120.5, room.Price)
	assert.Equal(t, "2", room.Capacity)
	assert.Equal(t, "25 m²", room.Size)
	assert.Equal(t, 3, room.Order)
	assert.True(t, room.Active)
	assert.Equal(t, 1, room.Version)
	for _, l := range i18n.Locales {
		assert.Equal(t, []string{"WiFi", "AC"}, room.Amenities[l])
	}
}

func TestBuildRoom_Validation(t *testing.T) {
	in := validRoomInput()
	in.Name = nil
	_, err := BuildRoom(in, testNow)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "name", verr.Field)

	in = validRoomInput()
	in.Images = nil
	_, err = BuildRoom(in, testNow)
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "images", verr.Field)
}

func TestBuildRoom_LenientNumbers(t *testing.T) {
	in := validRoomInput()
	in.Price = "cheap"
	in.Order = "first"

	room, err := BuildRoom(in, testNow)
	require.NoError(t, err)
	assert.Zero(t, room.Price)
	assert.Zero(t, room.Order)
}

func TestMergeRoom(t *testing.T) {
	existing, err := BuildRoom(validRoomInput(), testNow.Add(-time.Hour))
	require.NoError(t, err)

	t.Run("ImageMovesToFront", func(t *testing.T) {
		merged, err := MergeRoom(existing, RoomInput{Image: ptr("https://x/r2.jpg")}, testNow)
		require.NoError(t, err)

		assert.Equal(t, []string{"https://x/r2.jpg", "https://x/r1.jpg"}, merged.Images)
		assert.Equal(t, "https://x/r2.jpg", merged.Image)
	})

	t.Run("ZeroImagesRejected", func(t *testing.T) {
		_, err := MergeRoom(existing, RoomInput{Images: []any{}}, testNow)

		var verr *ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Equal(t, "images", verr.Field)
	})

	t.Run("HugeOrder", func(t *testing.T) {
		merged, err := MergeRoom(existing, RoomInput{Order: 1e300}, testNow)
		require.NoError(t, err)
		assert.Zero(t, merged.Order)

		merged, err = MergeRoom(existing, RoomInput{Order: 3.0}, testNow)
		require.NoError(t, err)
		assert.Equal(t, 3, merged.Order)
	})

	t.Run("AmenitiesReplaced", func(t *testing.T) {
		merged, err := MergeRoom(existing, RoomInput{
			Amenities: map[string]any{"en": []any{"Balcony"}},
		}, testNow)
		require.NoError(t, err)

		assert.Equal(t, []string{"Balcony"}, merged.Amenities["en"])
		assert.Equal(t, []string{}, merged.Amenities["tr"])
	})

	t.Run("NameMergedPerLocale", func(t *testing.T) {
		merged, err := MergeRoom(existing, RoomInput{
			Name:  i18n.LocalizedText{"de": "Standardzimmer"},
			Price: 99.0,
		}, testNow)
		require.NoError(t, err)

		assert.Equal(t, "Standart Oda", merged.Name["tr"])
		assert.Equal(t, "Standardzimmer", merged.Name["de"])
		assert.Equal(t, 99.0, merged.Price)
		assert.Equal(t, existing.Order, merged.Order)
		assert.Equal(t, 2, merged.Version)
	})

	t.Run("AmenitiesNotAliased", func(t *testing.T) {
		merged, err := MergeRoom(existing, RoomInput{}, testNow)
		require.NoError(t, err)

		merged.Amenities["tr"][0] = "changed"
		assert.Equal(t, "WiFi", existing.Amenities["tr"][0])
	})
}
