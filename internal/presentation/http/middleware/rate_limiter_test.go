package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sangkips/tradenet-api/internal/domain/entity"
	"github.com/sangkips/tradenet-api/internal/presentation/http/handler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRateLimiter_ThrottlesPerUser(t *testing.T) {
	gin.SetMode(gin.TestMode)

	rl := NewUserRateLimiter(RateLimiterConfig{
		RequestsPerSecond: 0.001,
		BurstSize:         2,
		CleanupInterval:   time.Minute,
		EntryTTL:          time.Minute,
	})

	alice := &entity.User{ID: uuid.New()}
	bob := &entity.User{ID: uuid.New()}
	current := alice

	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set(handler.UserKey, current)
		c.Next()
	})
	router.Use(rl.Middleware())
	router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	call := func() *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
		return w
	}

	assert.Equal(t, http.StatusOK, call().Code)
	assert.Equal(t, http.StatusOK, call().Code)

	w := call()
	require.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "1", w.Header().Get("Retry-After"))
	assert.Contains(t, w.Body.String(), "throttled")

	current = bob
	assert.Equal(t, http.StatusOK, call().Code)
	assert.Equal(t, 2, rl.Size())
}

func TestUserRateLimiter_CleanupDropsIdleKeys(t *testing.T) {
	rl := NewUserRateLimiter(DefaultRateLimiterConfig())
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }

	rl.getLimiter("user:a")
	now = now.Add(5 * time.Minute)
	rl.getLimiter("user:b")

	now = now.Add(6 * time.Minute)
	rl.cleanup()

	assert.Equal(t, 1, rl.Size())
	_, kept := rl.limiters["user:b"]
	assert.True(t, kept)
}
