package rest

import (
	"net/http"
	"strings"

	"github.com/daniilsolovey/hotel-portal/internal/portal"
	"github.com/labstack/echo/v4"
)

// BlogPosts handles GET /api/admin/blog
// @Summary List blog posts
// @Description Returns every blog post, inactive ones included, sorted by publishedAt DESC
// @Tags blog
// @Produce json
// @Success 200 {array} rest.BlogPost
// @Failure 500 {object} rest.ErrorResponse
// @Router /api/admin/blog [get]
func (h *Handler) BlogPosts(c echo.Context) error {
	posts, err := h.manager.BlogPosts(c.Request().Context(), true)
	if err != nil {
		return h.respondError(c, err)
	}

	return c.JSON(http.StatusOK, Map(posts, NewBlogPost))
}

// BlogPostByID handles GET /api/admin/blog/:id
// @Summary Get blog post
// @Tags blog
// @Produce json
// @Param id path string true "Post ID"
// @Success 200 {object} rest.BlogPost
// @Failure 404,500 {object} rest.ErrorResponse
// @Router /api/admin/blog/{id} [get]
func (h *Handler) BlogPostByID(c echo.Context) error {
	post, err := h.manager.BlogPostByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.respondError(c, err)
	}

	return c.JSON(http.StatusOK, NewBlogPost(*post))
}

// CreateBlogPost handles POST /api/admin/blog
// @Summary Create blog post
// @Description Normalizes images, tags and read time, applies defaults and rejects slugs already in use
// @Tags blog
// @Accept json
// @Produce json
// @Param post body portal.BlogPostInput true "Post"
// @Success 201 {object} rest.BlogPost
// @Failure 400,500 {object} rest.ErrorResponse
// @Router /api/admin/blog [post]
func (h *Handler) CreateBlogPost(c echo.Context) error {
	var in portal.BlogPostInput
	if err := c.Bind(&in); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request body")
	}

	post, err := h.manager.CreateBlogPost(c.Request().Context(), in)
	if err != nil {
		return h.respondError(c, err)
	}

	return c.JSON(http.StatusCreated, NewBlogPost(*post))
}

// UpdateBlogPost handles PUT /api/admin/blog/:id
// @Summary Update blog post
// @Description Localized fields merge per locale. A stale version yields 409
// @Tags blog
// @Accept json
// @Produce json
// @Param id path string true "Post ID"
// @Param post body portal.BlogPostInput true "Partial post"
// @Success 200 {object} rest.BlogPost
// @Failure 400,404,409,500 {object} rest.ErrorResponse
// @Router /api/admin/blog/{id} [put]
func (h *Handler) UpdateBlogPost(c echo.Context) error {
	var in portal.BlogPostInput
	if err := c.Bind(&in); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request body")
	}

	post, err := h.manager.UpdateBlogPost(c.Request().Context(), c.Param("id"), in)
	if err != nil {
		return h.respondError(c, err)
	}

	return c.JSON(http.StatusOK, NewBlogPost(*post))
}

// DeleteBlogPost handles DELETE /api/admin/blog/:id
// @Summary Delete blog post
// @Tags blog
// @Produce json
// @Param id path string true "Post ID"
// @Success 200 {object} rest.MessageResponse
// @Failure 404,500 {object} rest.ErrorResponse
// @Router /api/admin/blog/{id} [delete]
func (h *Handler) DeleteBlogPost(c echo.Context) error {
	if err := h.manager.DeleteBlogPost(c.Request().Context(), c.Param("id")); err != nil {
		return h.respondError(c, err)
	}

	return c.JSON(http.StatusOK, MessageResponse{Message: "blog post deleted"})
}

// BlogSlugs handles GET /api/blog/slugs
// @Summary Slugs of a post in every locale
// @Description Used by the language switcher to find the same post in another locale
// @Tags blog
// @Produce json
// @Param slug query string true "Slug in any locale"
// @Success 200 {object} rest.BlogSlugs
// @Failure 400,404,500 {object} rest.ErrorResponse
// @Router /api/blog/slugs [get]
func (h *Handler) BlogSlugs(c echo.Context) error {
	slug := strings.TrimSpace(c.QueryParam("slug"))
	if slug == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing slug", Field: "slug"})
	}

	slugs, err := h.manager.BlogSlugs(c.Request().Context(), slug)
	if err != nil {
		return h.respondError(c, err)
	}

	return c.JSON(http.StatusOK, BlogSlugs{Slugs: slugs})
}
