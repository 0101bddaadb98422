package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	intconfig "trekhub/internal/config"
	"trekhub/internal/http/middleware"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testEnv() intconfig.Env {
	return intconfig.Env{
		JWTSecret:   "router-secret",
		AdminRoles:  []string{"admin", "owner"},
		CORSOrigins: []string{"http://localhost:3000"},
	}
}

func bearer(t *testing.T, role string) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, middleware.Claims{
		UserID: "u-1",
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString([]byte("router-secret"))
	require.NoError(t, err)
	return "Bearer " + token
}

func serve(r http.Handler, path, auth string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRouterPublicEndpoints(t *testing.T) {
	r := NewRouter(testEnv())
	assert.Equal(t, http.StatusOK, serve(r, "/api/health", "").Code)

	w := serve(r, "/api/routes", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/api/admin/bookings/:id/trek-sheet")
}

func TestRouterAdminRequiresSession(t *testing.T) {
	r := NewRouter(testEnv())

	w := serve(r, "/api/admin/bookings/export?format=csv", "")
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), `"redirect":"/login"`)

	w = serve(r, "/api/admin/bookings/bk-1/trek-sheet", bearer(t, "customer"))
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRouterValidatesBeforeDataAccess(t *testing.T) {
	r := NewRouter(testEnv())
	w := serve(r, "/api/admin/bookings/export?format=docx", bearer(t, "admin"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRouterNoRoute(t *testing.T) {
	w := serve(NewRouter(testEnv()), "/api/nope", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "route not found")
}
