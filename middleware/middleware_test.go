package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tourism-backend/utils"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newProtectedRouter(tokens *utils.TokenManager) *gin.Engine {
	r := gin.New()
	r.Use(RequestID(), Logger(), Metrics())
	r.GET("/me", AuthRequired(tokens), func(c *gin.Context) {
		id, _ := CurrentUserID(c)
		c.JSON(http.StatusOK, gin.H{"id": id})
	})
	r.POST("/admin", AuthRequired(tokens), AdminOnly(), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return r
}

func do(r http.Handler, method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthRequired(t *testing.T) {
	tokens := utils.NewTokenManager("middleware-secret", time.Hour)
	r := newProtectedRouter(tokens)

	w := do(r, http.MethodGet, "/me", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = do(r, http.MethodGet, "/me", "not-a-jwt")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Token abc")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	token, err := tokens.Generate(7, "u@example.com", false)
	require.NoError(t, err)
	w = do(r, http.MethodGet, "/me", token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":7}`, w.Body.String())
}

func TestAdminOnly(t *testing.T) {
	tokens := utils.NewTokenManager("middleware-secret", time.Hour)
	r := newProtectedRouter(tokens)

	w := do(r, http.MethodPost, "/admin", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	user, err := tokens.Generate(1, "u@example.com", false)
	require.NoError(t, err)
	w = do(r, http.MethodPost, "/admin", user)
	assert.Equal(t, http.StatusForbidden, w.Code)

	admin, err := tokens.Generate(2, "a@example.com", true)
	require.NoError(t, err)
	w = do(r, http.MethodPost, "/admin", admin)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, GetRequestID(c))
	})

	w := do(r, http.MethodGet, "/", "")
	generated := w.Header().Get(RequestIDHeader)
	assert.NotEmpty(t, generated)
	assert.Equal(t, generated, w.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "upstream-id")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "upstream-id", w.Header().Get(RequestIDHeader))
	assert.Equal(t, "upstream-id", w.Body.String())
}

func TestRateLimiter(t *testing.T) {
	rl := NewRateLimiter(2)
	defer rl.Stop()

	r := gin.New()
	r.POST("/login", rl.Middleware(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	assert.Equal(t, http.StatusOK, do(r, http.MethodPost, "/login", "").Code)
	assert.Equal(t, http.StatusOK, do(r, http.MethodPost, "/login", "").Code)
	w := do(r, http.MethodPost, "/login", "")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "60", w.Header().Get("Retry-After"))

	assert.True(t, rl.Allow("203.0.113.9"))
}

func TestRateLimiterCleanup(t *testing.T) {
	rl := NewRateLimiter(5)
	defer rl.Stop()

	rl.Allow("198.51.100.1")
	rl.cleanup(time.Now())
	assert.Len(t, rl.limiters, 1)

	rl.cleanup(time.Now().Add(2 * time.Hour))
	assert.Empty(t, rl.limiters)

	rl.Stop()
}
