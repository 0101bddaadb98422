package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trekhub/internal/domain"
)

const testSecret = "test-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

func signToken(t *testing.T, secret string, claims jwt.Claims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return s
}

func adminClaims(role string, ttl time.Duration) Claims {
	return Claims{
		UserID: "u-1",
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	}
}

func protectedEngine() *gin.Engine {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/admin", AuthRequired(testSecret), RequireRoles("admin", "Owner"), func(c *gin.Context) {
		u := CurrentUser(c)
		c.JSON(http.StatusOK, gin.H{"user": u.UserID, "role": u.Role})
	})
	return r
}

func do(r http.Handler, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestAuthRequiredAcceptsAdmin(t *testing.T) {
	w := do(protectedEngine(), signToken(t, testSecret, adminClaims("admin", time.Hour)))
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, "u-1", body["user"])
	assert.Equal(t, "admin", body["role"])
}

func TestRequireRolesIsCaseInsensitive(t *testing.T) {
	w := do(protectedEngine(), signToken(t, testSecret, adminClaims("OWNER", time.Hour)))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthRequiredRejects(t *testing.T) {
	cases := []struct {
		name  string
		token string
	}{
		{"missing token", ""},
		{"garbage", "not-a-jwt"},
		{"wrong secret", signToken(t, "other-secret", adminClaims("admin", time.Hour))},
		{"expired", signToken(t, testSecret, adminClaims("admin", -time.Minute))},
		{"no expiry", signToken(t, testSecret, Claims{UserID: "u-1", Role: "admin"})},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := do(protectedEngine(), tc.token)
			require.Equal(t, http.StatusUnauthorized, w.Code)
			body := decode(t, w)
			assert.Equal(t, loginRedirect, body["redirect"])
			assert.Equal(t, "unauthorized", body["code"])
			assert.NotEmpty(t, body["request_id"])
		})
	}
}

func TestAuthRequiredFallsBackToSubject(t *testing.T) {
	claims := Claims{
		Role: "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "sub-7",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	w := do(protectedEngine(), signToken(t, testSecret, claims))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "sub-7", decode(t, w)["user"])
}

func TestAuthRequiredWithoutSecret(t *testing.T) {
	r := gin.New()
	r.GET("/admin", AuthRequired(""), func(c *gin.Context) { c.Status(http.StatusOK) })
	w := do(r, signToken(t, "anything", adminClaims("admin", time.Hour)))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireRolesForbidsNonAdmin(t *testing.T) {
	w := do(protectedEngine(), signToken(t, testSecret, adminClaims("customer", time.Hour)))
	require.Equal(t, http.StatusForbidden, w.Code)
	body := decode(t, w)
	assert.Equal(t, "forbidden", body["code"])
	assert.Equal(t, homeRedirect, body["redirect"])
}

func TestRequireRolesWithoutAuth(t *testing.T) {
	r := gin.New()
	r.GET("/admin", RequireRoles("admin"), func(c *gin.Context) { c.Status(http.StatusOK) })
	w := do(r, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestBearerToken(t *testing.T) {
	tok, ok := bearerToken("Bearer abc")
	assert.True(t, ok)
	assert.Equal(t, "abc", tok)

	tok, ok = bearerToken("bearer   xyz ")
	assert.True(t, ok)
	assert.Equal(t, "xyz", tok)

	for _, h := range []string{"", "Bearer", "Bearer ", "Basic abc", "abc"} {
		_, ok := bearerToken(h)
		assert.False(t, ok, h)
	}
}

func TestRequestIDGeneratedAndEchoed(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, GetRequestID(c)) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	generated := w.Header().Get("X-Request-ID")
	assert.Len(t, generated, 36)
	assert.Equal(t, generated, w.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "client-abc")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "client-abc", w.Header().Get("X-Request-ID"))
	assert.Equal(t, "client-abc", w.Body.String())
}

func TestCORS(t *testing.T) {
	r := gin.New()
	r.Use(CORS([]string{"http://dash.example.com", "not-an-origin"}))
	r.GET("/api/health", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/api/health", nil)
	req.Header.Set("Origin", "http://dash.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://dash.example.com", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))

	req = httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set("Origin", "http://evil.example.com")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestLoggerPassesThrough(t *testing.T) {
	r := gin.New()
	r.Use(RequestID(), Logger())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusTeapot, "ok") })
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusTeapot, w.Code)
}

func TestAbortWithDomainError(t *testing.T) {
	cases := []struct {
		err      error
		status   int
		code     string
		redirect string
	}{
		{domain.ValidationError{Field: "format", Msg: "bad"}, http.StatusBadRequest, "validation_error", ""},
		{domain.NotFoundError{Resource: "bookings"}, http.StatusNotFound, "not_found", ""},
		{domain.UnauthorizedError{Msg: "no session", Redirect: loginRedirect}, http.StatusUnauthorized, "unauthorized", loginRedirect},
		{domain.ForbiddenError{Msg: "admins only", Redirect: homeRedirect}, http.StatusForbidden, "forbidden", homeRedirect},
		{domain.InternalError{Msg: "failed to fetch bookings"}, http.StatusInternalServerError, "internal_error", ""},
	}
	for _, tc := range cases {
		t.Run(tc.code, func(t *testing.T) {
			r := gin.New()
			r.Use(RequestID())
			r.GET("/admin", func(c *gin.Context) { AbortWithDomainError(c, tc.err) })
			w := do(r, "")
			require.Equal(t, tc.status, w.Code)

			var body ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tc.code, body.Code)
			assert.Equal(t, tc.err.Error(), body.Error)
			assert.Equal(t, tc.redirect, body.Redirect)
			assert.NotEmpty(t, body.RequestID)
		})
	}
}
