package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/A-Basit02/Disaster-Management-App/internal/domain/models"
	"github.com/A-Basit02/Disaster-Management-App/internal/domain/services"
	"github.com/A-Basit02/Disaster-Management-App/internal/error/code"
	"github.com/A-Basit02/Disaster-Management-App/internal/infrastructure/cache"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubAuth struct {
	users map[string]*models.User
}

func (s *stubAuth) Register(context.Context, services.RegisterInput) (*services.AuthResult, error) {
	return nil, code.New(code.ErrUnknown)
}

func (s *stubAuth) Login(context.Context, string, string) (*services.AuthResult, error) {
	return nil, code.New(code.ErrUnknown)
}

func (s *stubAuth) Authenticate(_ context.Context, token string) (*models.User, error) {
	if u, ok := s.users[token]; ok {
		return u, nil
	}
	return nil, code.New(code.ErrTokenInvalid)
}

func (s *stubAuth) GetProfile(context.Context, uint) (*models.UserProfile, error) {
	return nil, code.New(code.ErrUnknown)
}

func serve(r *gin.Engine, method, path string, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestExtractToken(t *testing.T) {
	cases := map[string]string{
		"Bearer abc":   "abc",
		"bearer  abc ": "abc",
	}
	for header, want := range cases {
		got, ok := extractToken(header)
		assert.True(t, ok, header)
		assert.Equal(t, want, got)
	}
	for _, header := range []string{"", "abc", "Basic abc", "Bearer ", "Bearer"} {
		_, ok := extractToken(header)
		assert.False(t, ok, header)
	}
}

func TestAuthGates(t *testing.T) {
	worker := &models.User{ID: 7, Roles: []models.Role{{Name: models.RoleRescueWorker}}}
	auth := NewAuth(&stubAuth{users: map[string]*models.User{"worker-token": worker}})

	r := gin.New()
	r.GET("/tasks", auth.Authenticate(), auth.Require(models.CapViewTasks), func(c *gin.Context) {
		c.String(http.StatusOK, "%d", CurrentUserID(c))
	})
	r.GET("/analytics", auth.Authenticate(), auth.Require(models.CapViewAnalytics), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := serve(r, http.MethodGet, "/tasks", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Access token required")

	w = serve(r, http.MethodGet, "/tasks", http.Header{"Authorization": {"Bearer forged"}})
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid or expired token")

	w = serve(r, http.MethodGet, "/tasks", http.Header{"Authorization": {"Bearer worker-token"}})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "7", w.Body.String())

	w = serve(r, http.MethodGet, "/analytics", http.Header{"Authorization": {"Bearer worker-token"}})
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "Access denied")
}

func TestRateLimiter(t *testing.T) {
	rl := NewRateLimiter(1, 2)
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }

	r := gin.New()
	r.GET("/", rl.Handler(), func(c *gin.Context) { c.Status(http.StatusOK) })

	assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/", nil).Code)
	assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/", nil).Code)
	w := serve(r, http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), "Too many requests")

	now = now.Add(time.Second)
	assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/", nil).Code)
}

func TestRateLimiterForgetsIdleClients(t *testing.T) {
	rl := NewRateLimiter(1, 1)
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }

	rl.getLimiter("a")
	now = now.Add(limiterIdle + time.Minute)
	rl.getLimiter("b")
	assert.Len(t, rl.visitors, 1)
	assert.Contains(t, rl.visitors, "b")
}

func TestCacheAndInvalidate(t *testing.T) {
	store := cache.NewMemoryStore()
	hits := 0

	r := gin.New()
	r.GET("/stats", Cache(store, CacheConfig{Expiration: time.Minute}), func(c *gin.Context) {
		hits++
		c.JSON(http.StatusOK, gin.H{"hits": hits})
	})
	r.GET("/broken", Cache(store), func(c *gin.Context) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "x"})
	})
	r.POST("/write", InvalidateCache(store), func(c *gin.Context) { c.Status(http.StatusCreated) })

	first := serve(r, http.MethodGet, "/stats", nil)
	assert.Equal(t, "MISS", first.Header().Get("X-Cache"))
	second := serve(r, http.MethodGet, "/stats", nil)
	assert.Equal(t, "HIT", second.Header().Get("X-Cache"))
	assert.JSONEq(t, first.Body.String(), second.Body.String())
	assert.Equal(t, 1, hits)

	// query parameters are part of the key
	serve(r, http.MethodGet, "/stats?b=2&a=1", nil)
	assert.Equal(t, 2, hits)
	assert.Equal(t, "HIT", serve(r, http.MethodGet, "/stats?a=1&b=2", nil).Header().Get("X-Cache"))

	serve(r, http.MethodGet, "/broken", nil)
	assert.Equal(t, "MISS", serve(r, http.MethodGet, "/broken", nil).Header().Get("X-Cache"), "errors are not cached")

	require.Equal(t, http.StatusCreated, serve(r, http.MethodPost, "/write", nil).Code)
	assert.Zero(t, store.Len())
	assert.Equal(t, "MISS", serve(r, http.MethodGet, "/stats", nil).Header().Get("X-Cache"))
	assert.Equal(t, 3, hits)
}

func TestRequestIDAndCORS(t *testing.T) {
	r := gin.New()
	r.Use(RequestID(), CORS("https://relief.example.org"))
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, c.GetString(RequestIDHeader)) })

	w := serve(r, http.MethodGet, "/", nil)
	generated := w.Header().Get(RequestIDHeader)
	assert.Len(t, generated, 36)
	assert.Equal(t, generated, w.Body.String())
	assert.Equal(t, "https://relief.example.org", w.Header().Get("Access-Control-Allow-Origin"))

	w = serve(r, http.MethodGet, "/", http.Header{RequestIDHeader: {"req-1"}})
	assert.Equal(t, "req-1", w.Header().Get(RequestIDHeader))

	w = serve(r, http.MethodOptions, "/", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
}
