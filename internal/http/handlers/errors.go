package handlers

import (
	"trekhub/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

func respondError(c *gin.Context, status int, code, message string) {
	middleware.AbortWithError(c, status, code, message, "")
}

// RespondDomainError maps domain errors to HTTP responses.
func RespondDomainError(c *gin.Context, err error) {
	middleware.AbortWithDomainError(c, err)
}
