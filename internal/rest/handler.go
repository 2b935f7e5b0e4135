package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/daniilsolovey/hotel-portal/internal/portal"
	"github.com/daniilsolovey/hotel-portal/internal/storage"

	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/labstack/echo/v4"
)

// Pinger reports whether the database is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	manager  *portal.Manager
	uploader *storage.Uploader
	db       Pinger
	log      *slog.Logger
}

func NewHandler(manager *portal.Manager, uploader *storage.Uploader, db Pinger, log *slog.Logger) *Handler {
	return &Handler{
		manager:  manager,
		uploader: uploader,
		db:       db,
		log:      log,
	}
}

func (h *Handler) handleError(c echo.Context, err error, statusCode int, message string) error {
	h.log.Error("handleError", "error", err, "statusCode", statusCode, "message", message)
	if statusCode >= http.StatusInternalServerError {
		if hub := sentryecho.GetHubFromContext(c); hub != nil && err != nil {
			hub.CaptureException(err)
		}
	}

	return c.JSON(statusCode, ErrorResponse{Error: message})
}

// respondError maps domain errors to HTTP statuses.
func (h *Handler) respondError(c echo.Context, err error) error {
	var verr *portal.ValidationError
	switch {
	case errors.As(err, &verr):
		h.log.Debug("validation failed", "field", verr.Field, "message", verr.Message)
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: verr.Message, Field: verr.Field})
	case errors.Is(err, storage.ErrRejected):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, portal.ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
	case errors.Is(err, portal.ErrConflict):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	default:
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}
}
