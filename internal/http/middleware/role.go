package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"trekhub/internal/domain"
)

const homeRedirect = "/"

// RequireRoles lets the request through only when the role set by
// AuthRequired is one of allowedRoles (case-insensitive).
//
//	admin.GET("/bookings/export", RequireRoles("admin", "owner"), handler)
func RequireRoles(allowedRoles ...string) gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		if r = strings.ToLower(strings.TrimSpace(r)); r != "" {
			allowed[r] = struct{}{}
		}
	}

	return func(c *gin.Context) {
		if GetUserID(c) == "" {
			abortUnauthorized(c, "authentication required")
			return
		}

		role := strings.ToLower(strings.TrimSpace(GetUserRole(c)))
		if _, ok := allowed[role]; !ok {
			AbortWithDomainError(c, domain.ForbiddenError{Msg: "admin access required", Redirect: homeRedirect})
			return
		}

		c.Next()
	}
}
