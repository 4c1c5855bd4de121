package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/fx_wallet/internal/apperrors"
	"github.com/gin-gonic/gin"
)

// ErrorResponse is a generic error response structure for handlers.
type ErrorResponse struct {
	Error string `json:"error"`
}

// statusForError maps service errors onto HTTP status codes.
func statusForError(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrValidation),
		errors.Is(err, apperrors.ErrUnknownCurrency),
		errors.Is(err, apperrors.ErrUnknownAccount):
		return http.StatusBadRequest
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, apperrors.ErrInsufficientFunds),
		errors.Is(err, apperrors.ErrStaleQuote):
		return http.StatusUnprocessableEntity
	case errors.Is(err, apperrors.ErrInvalidState),
		errors.Is(err, apperrors.ErrDuplicate):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

// respondWithError writes err using statusForError. Internal errors are
// logged and replaced by fallback so no detail leaks to the client.
func respondWithError(c *gin.Context, logger *slog.Logger, err error, fallback string) {
	status := statusForError(err)
	if status == http.StatusInternalServerError {
		logger.Error(fallback, slog.String("error", err.Error()))
		c.JSON(status, gin.H{"error": fallback})
		return
	}
	logger.Warn("Request rejected", slog.Int("status", status), slog.String("error", err.Error()))
	c.JSON(status, gin.H{"error": err.Error()})
}
