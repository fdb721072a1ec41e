package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/IoneseiGabriel/DavaQuiz/internal/apperr"

	"github.com/gin-gonic/gin"
)

type ErrorResponse struct {
	Error string `json:"error" example:"something went wrong"`
}

type MessageResponse struct {
	Message string `json:"message" example:"operation successful"`
}

// respondError translates a service error into an HTTP status. Unclassified
// errors become a generic 500 so internals never leak to clients.
func respondError(c *gin.Context, err error) {
	var appErr *apperr.Error
	if !errors.As(err, &appErr) {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "an internal error occurred"})
		return
	}

	switch appErr.Kind {
	case apperr.KindValidation, apperr.KindConflict:
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: appErr.Message})
	case apperr.KindNotFound:
		c.JSON(http.StatusNotFound, ErrorResponse{Error: appErr.Message})
	case apperr.KindForbidden:
		c.JSON(http.StatusForbidden, ErrorResponse{Error: appErr.Message})
	case apperr.KindUnauthorized:
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: appErr.Message})
	case apperr.KindRateLimited:
		c.Header("Retry-After", strconv.FormatInt(int64(appErr.RetryAfter.Seconds()), 10))
		c.JSON(http.StatusTooManyRequests, ErrorResponse{Error: appErr.Message})
	default:
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "an internal error occurred"})
	}
}
