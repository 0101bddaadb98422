package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"trekhub/internal/domain"
)

// ErrorResponse is the JSON error body written by middleware and handlers.
type ErrorResponse struct {
	Error     string `json:"error"`
	Code      string `json:"code,omitempty"`
	Redirect  string `json:"redirect,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

// AbortWithError writes an error body and stops the handler chain.
func AbortWithError(c *gin.Context, status int, code, message, redirect string) {
	if code == "" {
		code = http.StatusText(status)
	}
	c.AbortWithStatusJSON(status, ErrorResponse{
		Error:     message,
		Code:      code,
		Redirect:  redirect,
		RequestID: GetRequestID(c),
	})
}

// AbortWithDomainError maps domain errors to HTTP statuses.
func AbortWithDomainError(c *gin.Context, err error) {
	var (
		unauthorized domain.UnauthorizedError
		forbidden    domain.ForbiddenError
	)
	switch {
	case domain.IsValidation(err):
		AbortWithError(c, http.StatusBadRequest, "validation_error", err.Error(), "")
	case domain.IsNotFound(err):
		AbortWithError(c, http.StatusNotFound, "not_found", err.Error(), "")
	case errors.As(err, &unauthorized):
		AbortWithError(c, http.StatusUnauthorized, "unauthorized", err.Error(), unauthorized.Redirect)
	case errors.As(err, &forbidden):
		AbortWithError(c, http.StatusForbidden, "forbidden", err.Error(), forbidden.Redirect)
	default:
		AbortWithError(c, http.StatusInternalServerError, "internal_error", err.Error(), "")
	}
}
