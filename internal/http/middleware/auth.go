package middleware

import (
	"log"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"trekhub/internal/domain"
)

const (
	userIDKey     = "userID"
	userRoleKey   = "userRole"
	loginRedirect = "/login"
)

// Claims are the session token fields the service relies on. Tokens
// issued without user_id fall back to the standard subject.
type Claims struct {
	UserID string `json:"user_id,omitempty"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// AuthRequired verifies an HS256 bearer token and stores the caller's id
// and role on the context for RequireRoles and the handlers.
func AuthRequired(secret string) gin.HandlerFunc {
	key := []byte(secret)
	if len(key) == 0 {
		log.Println("warning: JWT_SECRET is empty, every authenticated request will be rejected")
	}
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)

	return func(c *gin.Context) {
		raw, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			abortUnauthorized(c, "missing bearer token")
			return
		}
		if len(key) == 0 {
			abortUnauthorized(c, "authentication is not configured")
			return
		}

		claims := &Claims{}
		if _, err := parser.ParseWithClaims(raw, claims, func(*jwt.Token) (any, error) { return key, nil }); err != nil {
			abortUnauthorized(c, "invalid or expired session")
			return
		}

		userID := strings.TrimSpace(claims.UserID)
		if userID == "" {
			userID = strings.TrimSpace(claims.Subject)
		}
		if userID == "" {
			abortUnauthorized(c, "session has no user")
			return
		}

		c.Set(userIDKey, userID)
		c.Set(userRoleKey, strings.TrimSpace(claims.Role))
		c.Next()
	}
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func abortUnauthorized(c *gin.Context, msg string) {
	AbortWithDomainError(c, domain.UnauthorizedError{Msg: msg, Redirect: loginRedirect})
}

// GetUserID returns the authenticated user id, or "" before AuthRequired ran.
func GetUserID(c *gin.Context) string {
	return c.GetString(userIDKey)
}

// GetUserRole returns the authenticated role, or "".
func GetUserRole(c *gin.Context) string {
	return c.GetString(userRoleKey)
}

// CurrentUser returns the caller set by AuthRequired.
func CurrentUser(c *gin.Context) domain.RequestContext {
	return domain.RequestContext{UserID: GetUserID(c), Role: GetUserRole(c)}
}
