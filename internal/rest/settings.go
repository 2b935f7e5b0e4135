package rest

import (
	"encoding/json"
	"net/http"

	"github.com/daniilsolovey/hotel-portal/internal/storage"
	"github.com/labstack/echo/v4"
)

// Settings handles GET /api/admin/settings
// @Summary Get site settings
// @Description Returns the raw key/value settings store
// @Tags settings
// @Produce json
// @Success 200 {object} map[string]any
// @Failure 500 {object} rest.ErrorResponse
// @Router /api/admin/settings [get]
func (h *Handler) Settings(c echo.Context) error {
	settings, err := h.manager.Settings(c.Request().Context())
	if err != nil {
		return h.respondError(c, err)
	}

	return c.JSON(http.StatusOK, settings)
}

// SaveSettings handles POST /api/admin/settings
// @Summary Save site settings
// @Description Upserts every key of the body in one transaction
// @Tags settings
// @Accept json
// @Produce json
// @Param settings body map[string]any true "Settings"
// @Success 200 {object} rest.MessageResponse
// @Failure 400,500 {object} rest.ErrorResponse
// @Router /api/admin/settings [post]
func (h *Handler) SaveSettings(c echo.Context) error {
	var values map[string]json.RawMessage
	if err := json.NewDecoder(c.Request().Body).Decode(&values); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request body")
	}

	if err := h.manager.SaveSettings(c.Request().Context(), values); err != nil {
		return h.respondError(c, err)
	}

	return c.JSON(http.StatusOK, MessageResponse{Message: "settings updated"})
}

// Upload handles POST /api/upload
// @Summary Upload an image
// @Description Stores an image for a logo, banner, blog post or room. Type and size limits depend on kind
// @Tags upload
// @Accept mpfd
// @Produce json
// @Param file formData file true "Image"
// @Param kind formData string false "logo, banner, blog (default) or room"
// @Success 200 {object} rest.UploadResponse
// @Failure 400,500 {object} rest.ErrorResponse
// @Router /api/upload [post]
func (h *Handler) Upload(c echo.Context) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "no file uploaded")
	}

	f, err := fh.Open()
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "no file uploaded")
	}
	defer f.Close()

	res, err := h.uploader.Upload(c.Request().Context(), storage.UploadRequest{
		Kind:        c.FormValue("kind"),
		ContentType: fh.Header.Get(echo.HeaderContentType),
		Size:        fh.Size,
		Body:        f,
	})
	if err != nil {
		return h.respondError(c, err)
	}

	return c.JSON(http.StatusOK, NewUploadResponse(res))
}
