package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/serenetouch/booking-api/internal/config"
)

const testSecret = "test-jwt-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

func newProtectedRouter(cfg *config.Config) *gin.Engine {
	r := gin.New()
	r.GET("/api/admin/ping", AdminAuth(cfg), func(c *gin.Context) {
		id, _ := c.Get(ContextAdminID)
		email, _ := c.Get(ContextAdminEmail)
		c.JSON(http.StatusOK, gin.H{
			"admin_id": id.(uuid.UUID).String(),
			"email":    email,
		})
	})
	return r
}

func signToken(t *testing.T, secret string, sub string) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   sub,
		"email": "admin@example.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
		"iat":   time.Now().Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestAdminAuthAcceptsBearerToken(t *testing.T) {
	cfg := &config.Config{JWTSecret: testSecret}
	r := newProtectedRouter(cfg)
	adminID := uuid.New()

	req := httptest.NewRequest(http.MethodGet, "/api/admin/ping", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, testSecret, adminID.String()))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), adminID.String())
}

func TestAdminAuthAcceptsSessionCookie(t *testing.T) {
	cfg := &config.Config{JWTSecret: testSecret}
	r := newProtectedRouter(cfg)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/ping", nil)
	req.AddCookie(&http.Cookie{
		Name:  AdminCookie,
		Value: signToken(t, testSecret, uuid.NewString()),
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAdminAuthRejectsMissingToken(t *testing.T) {
	cfg := &config.Config{JWTSecret: testSecret}
	r := newProtectedRouter(cfg)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/ping", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminAuthRejectsWrongSecret(t *testing.T) {
	cfg := &config.Config{JWTSecret: testSecret}
	r := newProtectedRouter(cfg)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/ping", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "other-secret", uuid.NewString()))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminAuthRejectsMalformedSubject(t *testing.T) {
	cfg := &config.Config{JWTSecret: testSecret}
	r := newProtectedRouter(cfg)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/ping", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, testSecret, "not-a-uuid"))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminAuthRejectsExpiredToken(t *testing.T) {
	cfg := &config.Config{JWTSecret: testSecret}
	r := newProtectedRouter(cfg)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": uuid.NewString(),
		"exp": time.Now().Add(-time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/ping", nil)
	req.Header.Set("Authorization", "Bearer "+signed)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
