package rest

import (
	"encoding/json"
	"net/http"

	"github.com/daniilsolovey/hotel-portal/internal/portal"
	"github.com/go-pg/urlstruct"
	"github.com/labstack/echo/v4"
)

// Translations handles GET /api/admin/translations
// @Summary List translations
// @Description Ordered by category and key
// @Tags translations
// @Produce json
// @Param locale query string false "Locale filter"
// @Param category query string false "Category filter"
// @Param key query string false "Key prefix filter"
// @Success 200 {array} rest.Translation
// @Failure 400,500 {object} rest.ErrorResponse
// @Router /api/admin/translations [get]
func (h *Handler) Translations(c echo.Context) error {
	var search TranslationSearch
	if err := urlstruct.Unmarshal(c.Request().Context(), c.QueryParams(), &search); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request parameters")
	}

	list, err := h.manager.Translations(c.Request().Context(), search.ToModel())
	if err != nil {
		return h.respondError(c, err)
	}

	return c.JSON(http.StatusOK, Map(list, NewTranslation))
}

// TranslationByID handles GET /api/admin/translations/:id
// @Summary Get translation
// @Tags translations
// @Produce json
// @Param id path string true "Translation ID"
// @Success 200 {object} rest.Translation
// @Failure 404,500 {object} rest.ErrorResponse
// @Router /api/admin/translations/{id} [get]
func (h *Handler) TranslationByID(c echo.Context) error {
	tr, err := h.manager.TranslationByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.respondError(c, err)
	}

	return c.JSON(http.StatusOK, NewTranslation(*tr))
}

// CreateTranslation handles POST /api/admin/translations
// @Summary Create translation
// @Description Category is derived from the first key segment when omitted
// @Tags translations
// @Accept json
// @Produce json
// @Param translation body portal.TranslationInput true "Translation"
// @Success 201 {object} rest.Translation
// @Failure 400,500 {object} rest.ErrorResponse
// @Router /api/admin/translations [post]
func (h *Handler) CreateTranslation(c echo.Context) error {
	var in portal.TranslationInput
	if err := c.Bind(&in); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request body")
	}

	tr, err := h.manager.CreateTranslation(c.Request().Context(), in)
	if err != nil {
		return h.respondError(c, err)
	}

	return c.JSON(http.StatusCreated, NewTranslation(*tr))
}

// UpdateTranslation handles PUT /api/admin/translations/:id
// @Summary Update translation
// @Tags translations
// @Accept json
// @Produce json
// @Param id path string true "Translation ID"
// @Param translation body portal.TranslationInput true "Partial translation"
// @Success 200 {object} rest.Translation
// @Failure 400,404,500 {object} rest.ErrorResponse
// @Router /api/admin/translations/{id} [put]
func (h *Handler) UpdateTranslation(c echo.Context) error {
	var in portal.TranslationInput
	if err := c.Bind(&in); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request body")
	}

	tr, err := h.manager.UpdateTranslation(c.Request().Context(), c.Param("id"), in)
	if err != nil {
		return h.respondError(c, err)
	}

	return c.JSON(http.StatusOK, NewTranslation(*tr))
}

// DeleteTranslation handles DELETE /api/admin/translations/:id
// @Summary Delete translation
// @Tags translations
// @Produce json
// @Param id path string true "Translation ID"
// @Success 200 {object} rest.MessageResponse
// @Failure 404,500 {object} rest.ErrorResponse
// @Router /api/admin/translations/{id} [delete]
func (h *Handler) DeleteTranslation(c echo.Context) error {
	if err := h.manager.DeleteTranslation(c.Request().Context(), c.Param("id")); err != nil {
		return h.respondError(c, err)
	}

	return c.JSON(http.StatusOK, MessageResponse{Message: "translation deleted"})
}

// ImportTranslations handles POST /api/admin/translations/import/:locale
// @Summary Import a message catalog
// @Description Flattens nested keys into dotted ones and stores them for locale
// @Tags translations
// @Accept json
// @Produce json
// @Param locale path string true "Locale"
// @Param messages body map[string]any true "Nested messages"
// @Success 200 {object} portal.ImportResult
// @Failure 400,500 {object} rest.ErrorResponse
// @Router /api/admin/translations/import/{locale} [post]
func (h *Handler) ImportTranslations(c echo.Context) error {
	var messages map[string]any
	if err := json.NewDecoder(c.Request().Body).Decode(&messages); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request body")
	}

	res, err := h.manager.ImportMessages(c.Request().Context(), c.Param("locale"), messages)
	if err != nil {
		return h.respondError(c, err)
	}

	return c.JSON(http.StatusOK, res)
}
