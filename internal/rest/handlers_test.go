package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/daniilsolovey/hotel-portal/internal/portal"
	"github.com/daniilsolovey/hotel-portal/internal/portal/portaltest"
	"github.com/daniilsolovey/hotel-portal/internal/storage"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	blogPayload = `{
		"slug": {"tr": "kemer-rehberi", "en": "kemer-guide"},
		"title": {"tr": "Kemer Rehberi", "en": "Kemer Guide"},
		"excerpt": {"tr": "Özet"},
		"content": {"tr": "İçerik"},
		"images": ["/uploads/blog-1.jpg", "/uploads/blog-2.jpg"],
		"tags": "sea, sun"
	}`
	roomPayload = `{
		"name": {"tr": "Deniz Manzaralı", "en": "Sea View"},
		"images": "/uploads/room-1.jpg",
		"price": "120",
		"amenities": ["Wi-Fi", "Klima"],
		"order": 2
	}`
)

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error {
	return f(ctx)
}

func noOpLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}

func newTestServer(t *testing.T, db Pinger) (*echo.Echo, *portaltest.Repository) {
	t.Helper()

	repo := portaltest.New()
	manager := portal.NewManager(repo, portal.Config{}, noOpLogger())
	uploader := storage.NewUploader(storage.NewLocal(t.TempDir(), "/uploads"))

	e := echo.New()
	NewHandler(manager, uploader, db, noOpLogger()).RegisterRoutes(e)

	return e, repo
}

func do(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, r)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func createPost(t *testing.T, e *echo.Echo) BlogPost {
	t.Helper()

	rec := do(e, http.MethodPost, "/api/admin/blog", blogPayload)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	return decode[BlogPost](t, rec)
}

func TestHandler_Blog(t *testing.T) {
	t.Run("Create", func(t *testing.T) {
		e, _ := newTestServer(t, nil)

		post := createPost(t, e)
		assert.NotEmpty(t, post.ID)
		assert.Equal(t, "/uploads/blog-1.jpg", post.Image)
		require.Len(t, post.Images, 2)
		assert.True(t, post.Images[0].IsMain)
		assert.False(t, post.Images[1].IsMain)
		assert.Equal(t, "5 dk", post.ReadTime)
		assert.Equal(t, []string{"sea", "sun"}, post.Tags)
		assert.Equal(t, 1, post.Version)
		assert.True(t, post.Active)
	})

	t.Run("CreateValidationError", func(t *testing.T) {
		e, _ := newTestServer(t, nil)

		rec := do(e, http.MethodPost, "/api/admin/blog", `{"slug":{"tr":"a"},"content":{"tr":"b"},"excerpt":{"tr":"c"},"images":["/x.jpg"]}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "title", decode[ErrorResponse](t, rec).Field)
	})

	t.Run("CreateInvalidBody", func(t *testing.T) {
		e, _ := newTestServer(t, nil)

		rec := do(e, http.MethodPost, "/api/admin/blog", `{"title":`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("CreateSlugCollision", func(t *testing.T) {
		e, _ := newTestServer(t, nil)
		createPost(t, e)

		rec := do(e, http.MethodPost, "/api/admin/blog", blogPayload)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "slug", decode[ErrorResponse](t, rec).Field)
	})

	t.Run("ListAndGet", func(t *testing.T) {
		e, _ := newTestServer(t, nil)
		post := createPost(t, e)

		rec := do(e, http.MethodGet, "/api/admin/blog", "")
		require.Equal(t, http.StatusOK, rec.Code)
		list := decode[[]BlogPost](t, rec)
		require.Len(t, list, 1)
		assert.Equal(t, post.ID, list[0].ID)

		rec = do(e, http.MethodGet, "/api/admin/blog/"+post.ID, "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, post.Title, decode[BlogPost](t, rec).Title)

		rec = do(e, http.MethodGet, "/api/admin/blog/missing", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "not found", decode[ErrorResponse](t, rec).Error)
	})

	t.Run("Update", func(t *testing.T) {
		e, _ := newTestServer(t, nil)
		post := createPost(t, e)

		rec := do(e, http.MethodPut, "/api/admin/blog/"+post.ID, `{"title":{"en":"Kemer Guide 2025"},"image":"/uploads/blog-2.jpg","version":1}`)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		updated := decode[BlogPost](t, rec)
		assert.Equal(t, 2, updated.Version)
		assert.Equal(t, "Kemer Rehberi", updated.Title["tr"])
		assert.Equal(t, "Kemer Guide 2025", updated.Title["en"])
		assert.Equal(t, "/uploads/blog-2.jpg", updated.Image)
		assert.Equal(t, "/uploads/blog-2.jpg", updated.Images[0].URL)
		assert.True(t, updated.Images[0].IsMain)
	})

	t.Run("UpdateStaleVersion", func(t *testing.T) {
		e, _ := newTestServer(t, nil)
		post := createPost(t, e)

		require.Equal(t, http.StatusOK, do(e, http.MethodPut, "/api/admin/blog/"+post.ID, `{"version":1}`).Code)

		rec := do(e, http.MethodPut, "/api/admin/blog/"+post.ID, `{"title":{"en":"Late"},"version":1}`)
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("UpdateNotFound", func(t *testing.T) {
		e, _ := newTestServer(t, nil)

		rec := do(e, http.MethodPut, "/api/admin/blog/missing", `{"title":{"en":"x"}}`)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("Delete", func(t *testing.T) {
		e, _ := newTestServer(t, nil)
		post := createPost(t, e)

		rec := do(e, http.MethodDelete, "/api/admin/blog/"+post.ID, "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "blog post deleted", decode[MessageResponse](t, rec).Message)

		rec = do(e, http.MethodDelete, "/api/admin/blog/"+post.ID, "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("StorageFailure", func(t *testing.T) {
		e, repo := newTestServer(t, nil)
		repo.Err = errors.New("connection refused")

		rec := do(e, http.MethodGet, "/api/admin/blog", "")
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "internal error", decode[ErrorResponse](t, rec).Error)
	})
}

func TestHandler_BlogSlugs(t *testing.T) {
	e, _ := newTestServer(t, nil)
	createPost(t, e)

	tests := []struct {
		name       string
		query      string
		wantStatus int
		wantSlugs  map[string]string
	}{
		{
			name:       "ByEnglishSlug",
			query:      "?slug=kemer-guide",
			wantStatus: http.StatusOK,
			wantSlugs:  map[string]string{"tr": "kemer-rehberi", "en": "kemer-guide"},
		},
		{
			name:       "ByTurkishSlug",
			query:      "?slug=kemer-rehberi",
			wantStatus: http.StatusOK,
			wantSlugs:  map[string]string{"tr": "kemer-rehberi", "en": "kemer-guide"},
		},
		{
			name:       "Unknown",
			query:      "?slug=nope",
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "Missing",
			query:      "",
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(e, http.MethodGet, "/api/blog/slugs"+tt.query, "")
			require.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())

			if tt.wantSlugs != nil {
				assert.Equal(t, tt.wantSlugs, map[string]string(decode[BlogSlugs](t, rec).Slugs))
			}
		})
	}
}

func TestHandler_Rooms(t *testing.T) {
	e, _ := newTestServer(t, nil)

	rec := do(e, http.MethodPost, "/api/admin/rooms", roomPayload)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	room := decode[Room](t, rec)
	assert.Equal(t, "/uploads/room-1.jpg", room.Image)
	assert.Equal(t, []string{"/uploads/room-1.jpg"}, room.Images)
	assert.Equal(t, 120.0, room.Price)
	assert.Equal(t, 2, room.Order)
	for _, locale := range []string{"tr", "en", "de", "ru", "pl"} {
		assert.Equal(t, []string{"Wi-Fi", "Klima"}, room.Amenities[locale], locale)
	}

	t.Run("List", func(t *testing.T) {
		rec := do(e, http.MethodGet, "/api/admin/rooms", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Len(t, decode[[]Room](t, rec), 1)
	})

	t.Run("UpdateAmenitiesPerLocale", func(t *testing.T) {
		rec := do(e, http.MethodPut, "/api/admin/rooms/"+room.ID, `{"amenities":{"tr":["Havuz"],"en":["Pool"]},"active":false}`)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		updated := decode[Room](t, rec)
		assert.Equal(t, []string{"Havuz"}, updated.Amenities["tr"])
		assert.Equal(t, []string{"Pool"}, updated.Amenities["en"])
		assert.Equal(t, []string{}, updated.Amenities["de"])
		assert.False(t, updated.Active)
		assert.Equal(t, "Sea View", updated.Name["en"])
	})

	t.Run("UpdateRemovingAllImages", func(t *testing.T) {
		rec := do(e, http.MethodPut, "/api/admin/rooms/"+room.ID, `{"images":[]}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "images", decode[ErrorResponse](t, rec).Field)
	})

	t.Run("GetNotFound", func(t *testing.T) {
		assert.Equal(t, http.StatusNotFound, do(e, http.MethodGet, "/api/admin/rooms/missing", "").Code)
	})

	t.Run("Delete", func(t *testing.T) {
		rec := do(e, http.MethodDelete, "/api/admin/rooms/"+room.ID, "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "room deleted", decode[MessageResponse](t, rec).Message)
	})
}

func TestHandler_Settings(t *testing.T) {
	e, _ := newTestServer(t, nil)

	rec := do(e, http.MethodPost, "/api/admin/settings", `{"logoUrl":"/uploads/logo.png","contact":{"phone":"+90 242 000 00 00"}}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "settings updated", decode[MessageResponse](t, rec).Message)

	rec = do(e, http.MethodGet, "/api/admin/settings", "")
	require.Equal(t, http.StatusOK, rec.Code)

	settings := decode[map[string]any](t, rec)
	assert.Equal(t, "/uploads/logo.png", settings["logoUrl"])
	assert.Equal(t, map[string]any{"phone": "+90 242 000 00 00"}, settings["contact"])

	t.Run("Empty", func(t *testing.T) {
		assert.Equal(t, http.StatusBadRequest, do(e, http.MethodPost, "/api/admin/settings", `{}`).Code)
	})

	t.Run("NotAnObject", func(t *testing.T) {
		assert.Equal(t, http.StatusBadRequest, do(e, http.MethodPost, "/api/admin/settings", `["logoUrl"]`).Code)
	})
}

func TestHandler_Translations(t *testing.T) {
	e, _ := newTestServer(t, nil)

	for _, body := range []string{
		`{"key":"navigation.home","locale":"tr","value":"Ana Sayfa"}`,
		`{"key":"navigation.home","locale":"en","value":"Home"}`,
		`{"key":"rooms.title","locale":"en","value":"Rooms"}`,
	} {
		rec := do(e, http.MethodPost, "/api/admin/translations", body)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	}

	tests := []struct {
		name     string
		query    string
		wantKeys []string
	}{
		{name: "All", query: "", wantKeys: []string{"navigation.home", "navigation.home", "rooms.title"}},
		{name: "ByLocale", query: "?locale=en", wantKeys: []string{"navigation.home", "rooms.title"}},
		{name: "ByCategory", query: "?category=rooms", wantKeys: []string{"rooms.title"}},
		{name: "ByKeyPrefix", query: "?key=navigation.", wantKeys: []string{"navigation.home", "navigation.home"}},
		{name: "NoMatch", query: "?locale=de", wantKeys: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(e, http.MethodGet, "/api/admin/translations"+tt.query, "")
			require.Equal(t, http.StatusOK, rec.Code)

			keys := []string{}
			for _, tr := range decode[[]Translation](t, rec) {
				keys = append(keys, tr.Key)
			}
			assert.Equal(t, tt.wantKeys, keys)
		})
	}

	t.Run("Duplicate", func(t *testing.T) {
		rec := do(e, http.MethodPost, "/api/admin/translations", `{"key":"rooms.title","locale":"en","value":"Our Rooms"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "key", decode[ErrorResponse](t, rec).Field)
	})

	t.Run("UnsupportedLocale", func(t *testing.T) {
		rec := do(e, http.MethodPost, "/api/admin/translations", `{"key":"rooms.title","locale":"fr","value":"Chambres"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "locale", decode[ErrorResponse](t, rec).Field)
	})

	t.Run("UpdateAndDelete", func(t *testing.T) {
		rec := do(e, http.MethodGet, "/api/admin/translations?category=rooms", "")
		list := decode[[]Translation](t, rec)
		require.Len(t, list, 1)

		rec = do(e, http.MethodPut, "/api/admin/translations/"+list[0].ID, `{"value":"Our Rooms"}`)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Equal(t, "Our Rooms", decode[Translation](t, rec).Value)

		rec = do(e, http.MethodDelete, "/api/admin/translations/"+list[0].ID, "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "translation deleted", decode[MessageResponse](t, rec).Message)

		assert.Equal(t, http.StatusNotFound, do(e, http.MethodGet, "/api/admin/translations/"+list[0].ID, "").Code)
	})

	t.Run("Import", func(t *testing.T) {
		rec := do(e, http.MethodPost, "/api/admin/translations/import/tr", `{
			"navigation": {"home": "Ana Sayfa", "blog": "Blog"},
			"common": {"nights": 3, "list": ["a"]}
		}`)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Equal(t, portal.ImportResult{Created: 2, Updated: 0, Skipped: 2}, decode[portal.ImportResult](t, rec))
	})

	t.Run("ImportUnsupportedLocale", func(t *testing.T) {
		rec := do(e, http.MethodPost, "/api/admin/translations/import/fr", `{"a":"b"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func multipartBody(t *testing.T, kind, fileName string, content []byte) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	if kind != "" {
		require.NoError(t, w.WriteField("kind", kind))
	}
	if fileName != "" {
		part, err := w.CreateFormFile("file", fileName)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	return body, w.FormDataContentType()
}

func TestHandler_Upload(t *testing.T) {
	png := append([]byte("\x89PNG\r\n\x1a\n"), bytes.Repeat([]byte{0}, 64)...)

	tests := []struct {
		name       string
		kind       string
		fileName   string
		content    []byte
		wantStatus int
	}{
		{name: "Logo", kind: "logo", fileName: "Logo.PNG", content: png, wantStatus: http.StatusOK},
		{name: "DefaultKind", fileName: "cover.png", content: png, wantStatus: http.StatusOK},
		{name: "ClientExtensionIgnored", kind: "blog", fileName: "evil.html", content: png, wantStatus: http.StatusOK},
		{name: "NotAnImage", kind: "room", fileName: "notes.txt", content: []byte("plain text"), wantStatus: http.StatusBadRequest},
		{name: "UnknownKind", kind: "avatar", fileName: "a.png", content: png, wantStatus: http.StatusBadRequest},
		{name: "NoFile", kind: "logo", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _ := newTestServer(t, nil)

			body, contentType := multipartBody(t, tt.kind, tt.fileName, tt.content)
			req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
			req.Header.Set(echo.HeaderContentType, contentType)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			require.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
			if tt.wantStatus != http.StatusOK {
				assert.NotEmpty(t, decode[ErrorResponse](t, rec).Error)
				return
			}

			res := decode[UploadResponse](t, rec)
			assert.True(t, res.Success)
			assert.Equal(t, "image/png", res.Type)
			assert.Equal(t, int64(len(png)), res.Size)
			assert.Equal(t, "local", res.Storage)
			assert.True(t, strings.HasPrefix(res.URL, "/uploads/"), res.URL)
			assert.True(t, strings.HasSuffix(res.FileName, ".png"), res.FileName)
		})
	}
}

func TestHandler_Health(t *testing.T) {
	t.Run("Healthy", func(t *testing.T) {
		e, _ := newTestServer(t, pingerFunc(func(context.Context) error { return nil }))

		rec := do(e, http.MethodGet, "/health", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	})

	t.Run("DatabaseDown", func(t *testing.T) {
		e, _ := newTestServer(t, pingerFunc(func(context.Context) error { return errors.New("dial tcp: refused") }))

		rec := do(e, http.MethodGet, "/health", "")
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.JSONEq(t, `{"status":"unavailable"}`, rec.Body.String())
	})
}
