package rest

import (
	"net/http"

	"github.com/daniilsolovey/hotel-portal/internal/portal"
	"github.com/labstack/echo/v4"
)

// Rooms handles GET /api/admin/rooms
// @Summary List rooms
// @Description Returns every room, inactive ones included, ordered by display order
// @Tags rooms
// @Produce json
// @Success 200 {array} rest.Room
// @Failure 500 {object} rest.ErrorResponse
// @Router /api/admin/rooms [get]
func (h *Handler) Rooms(c echo.Context) error {
	rooms, err := h.manager.Rooms(c.Request().Context(), true)
	if err != nil {
		return h.respondError(c, err)
	}

	return c.JSON(http.StatusOK, Map(rooms, NewRoom))
}

// RoomByID handles GET /api/admin/rooms/:id
// @Summary Get room
// @Tags rooms
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} rest.Room
// @Failure 404,500 {object} rest.ErrorResponse
// @Router /api/admin/rooms/{id} [get]
func (h *Handler) RoomByID(c echo.Context) error {
	room, err := h.manager.RoomByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.respondError(c, err)
	}

	return c.JSON(http.StatusOK, NewRoom(*room))
}

// CreateRoom handles POST /api/admin/rooms
// @Summary Create room
// @Tags rooms
// @Accept json
// @Produce json
// @Param room body portal.RoomInput true "Room"
// @Success 201 {object} rest.Room
// @Failure 400,500 {object} rest.ErrorResponse
// @Router /api/admin/rooms [post]
func (h *Handler) CreateRoom(c echo.Context) error {
	var in portal.RoomInput
	if err := c.Bind(&in); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request body")
	}

	room, err := h.manager.CreateRoom(c.Request().Context(), in)
	if err != nil {
		return h.respondError(c, err)
	}

	return c.JSON(http.StatusCreated, NewRoom(*room))
}

// UpdateRoom handles PUT /api/admin/rooms/:id
// @Summary Update room
// @Tags rooms
// @Accept json
// @Produce json
// @Param id path string true "Room ID"
// @Param room body portal.RoomInput true "Partial room"
// @Success 200 {object} rest.Room
// @Failure 400,404,409,500 {object} rest.ErrorResponse
// @Router /api/admin/rooms/{id} [put]
func (h *Handler) UpdateRoom(c echo.Context) error {
	var in portal.RoomInput
	if err := c.Bind(&in); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request body")
	}

	room, err := h.manager.UpdateRoom(c.Request().Context(), c.Param("id"), in)
	if err != nil {
		return h.respondError(c, err)
	}

	return c.JSON(http.StatusOK, NewRoom(*room))
}

// DeleteRoom handles DELETE /api/admin/rooms/:id
// @Summary Delete room
// @Tags rooms
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} rest.MessageResponse
// @Failure 404,500 {object} rest.ErrorResponse
// @Router /api/admin/rooms/{id} [delete]
func (h *Handler) DeleteRoom(c echo.Context) error {
	if err := h.manager.DeleteRoom(c.Request().Context(), c.Param("id")); err != nil {
		return h.respondError(c, err)
	}

	return c.JSON(http.StatusOK, MessageResponse{Message: "room deleted"})
}
