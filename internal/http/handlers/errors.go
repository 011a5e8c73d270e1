package handlers

import (
	"net/http"

	"guesthouse/internal/domain"
	"guesthouse/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

func respondError(c *gin.Context, status int, code, message string) {
	if code == "" {
		code = http.StatusText(status)
	}
	payload := gin.H{
		"error": message,
		"code":  code,
	}
	if reqID := middleware.GetRequestID(c); reqID != "" {
		payload["request_id"] = reqID
	}
	c.JSON(status, payload)
}

// RespondDomainError maps core error kinds to HTTP statuses in one place.
// Storage failures surface as 500 and are never dressed up as business
// errors.
func RespondDomainError(c *gin.Context, err error) {
	switch {
	case domain.IsValidation(err):
		respondError(c, http.StatusBadRequest, "validation_error", err.Error())
	case domain.IsNotFound(err):
		respondError(c, http.StatusNotFound, "not_found", err.Error())
	case domain.IsDuplicateKey(err):
		respondError(c, http.StatusConflict, "duplicate_key", err.Error())
	case domain.IsUnavailable(err):
		respondError(c, http.StatusConflict, "room_unavailable", err.Error())
	case domain.IsAlreadyClosed(err):
		respondError(c, http.StatusConflict, "already_closed", err.Error())
	default:
		respondError(c, http.StatusInternalServerError, "internal_error", "something went wrong")
	}
}
