package rest

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

const (
	// API paths
	apiPrefix   = "/api"
	adminPrefix = apiPrefix + "/admin"

	blogPath         = "/blog"
	blogByIDPath     = blogPath + "/:id"
	roomsPath        = "/rooms"
	roomByIDPath     = roomsPath + "/:id"
	settingsPath     = "/settings"
	translationsPath = "/translations"
	translationPath  = translationsPath + "/:id"
	importPath       = translationsPath + "/import/:locale"

	uploadPath    = apiPrefix + "/upload"
	blogSlugsPath = apiPrefix + "/blog/slugs"

	// Health check paths
	healthPath = "/health"
)

// RegisterRoutes registers all routes for the handler
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.Use(h.loggingMiddleware)

	h.registerAdminRoutes(e.Group(adminPrefix))

	e.POST(uploadPath, h.Upload)
	e.GET(blogSlugsPath, h.BlogSlugs)

	h.registerHealthCheck(e)
}

func (h *Handler) registerAdminRoutes(g *echo.Group) {
	g.GET(blogPath, h.BlogPosts)
	g.POST(blogPath, h.CreateBlogPost)
	g.GET(blogByIDPath, h.BlogPostByID)
	g.PUT(blogByIDPath, h.UpdateBlogPost)
	g.DELETE(blogByIDPath, h.DeleteBlogPost)

	g.GET(roomsPath, h.Rooms)
	g.POST(roomsPath, h.CreateRoom)
	g.GET(roomByIDPath, h.RoomByID)
	g.PUT(roomByIDPath, h.UpdateRoom)
	g.DELETE(roomByIDPath, h.DeleteRoom)

	g.GET(settingsPath, h.Settings)
	g.POST(settingsPath, h.SaveSettings)

	g.GET(translationsPath, h.Translations)
	g.POST(translationsPath, h.CreateTranslation)
	g.POST(importPath, h.ImportTranslations)
	g.GET(translationPath, h.TranslationByID)
	g.PUT(translationPath, h.UpdateTranslation)
	g.DELETE(translationPath, h.DeleteTranslation)
}

func (h *Handler) registerHealthCheck(e *echo.Echo) {
	e.GET(healthPath, h.handleHealth)
}

func (h *Handler) handleHealth(c echo.Context) error {
	if h.db != nil {
		if err := h.db.Ping(c.Request().Context()); err != nil {
			h.log.Error("health check failed", "error", err)
			return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		}
	}

	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) loggingMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		if err := next(c); err != nil {
			c.Error(err)
		}

		h.log.Info("HTTP request",
			"method", c.Request().Method,
			"path", c.Request().URL.Path,
			"status", c.Response().Status,
			"duration_ms", time.Since(start).Milliseconds(),
			"remote_addr", c.RealIP(),
		)

		return nil
	}
}
