package middleware

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/comitanigiacomo/kanso-planner/internal/config"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	return mr, rdb
}

func newLimitedRouter(rdb *redis.Client, limit int, window time.Duration) *gin.Engine {
	router := gin.New()
	router.Use(RateLimiterMiddleware(rdb, "kanso:", config.RateLimitConfig{Limit: limit, Window: window}, "/open"))
	router.GET("/test", func(c *gin.Context) {
		c.String(http.StatusOK, "passed")
	})
	router.GET("/open", func(c *gin.Context) {
		c.String(http.StatusOK, "open")
	})
	return router
}

func hit(router *gin.Engine, ip string) *httptest.ResponseRecorder {
	return hitPath(router, "/test", ip)
}

func hitPath(router *gin.Engine, path, ip string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.RemoteAddr = ip + ":1234"
	router.ServeHTTP(w, req)
	return w
}

func TestRateLimiterMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("Allow Requests under limit", func(t *testing.T) {
		_, rdb := setupTestRedis(t)
		limit := 5
		router := newLimitedRouter(rdb, limit, time.Minute)

		for i := 1; i <= limit; i++ {
			w := hit(router, "192.168.1.100")

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, fmt.Sprintf("%d", limit), w.Header().Get("X-RateLimit-Limit"))
			assert.Equal(t, fmt.Sprintf("%d", limit-i), w.Header().Get("X-RateLimit-Remaining"))
		}
	})

	t.Run("Block Requests over limit", func(t *testing.T) {
		_, rdb := setupTestRedis(t)
		router := newLimitedRouter(rdb, 2, time.Minute)
		ip := "192.168.1.101"

		assert.Equal(t, http.StatusOK, hit(router, ip).Code, "Request 1 should pass")
		assert.Equal(t, http.StatusOK, hit(router, ip).Code, "Request 2 should pass")

		w3 := hit(router, ip)
		assert.Equal(t, http.StatusTooManyRequests, w3.Code, "Request 3 should be blocked")
		assert.Contains(t, w3.Body.String(), "Too many requests")
		assert.Equal(t, "60", w3.Header().Get("Retry-After"))

		assert.Equal(t, http.StatusOK, hit(router, "192.168.1.102").Code, "Other clients are unaffected")
	})

	t.Run("Window expiry resets the counter", func(t *testing.T) {
		mr, rdb := setupTestRedis(t)
		router := newLimitedRouter(rdb, 1, time.Minute)
		ip := "192.168.1.103"

		assert.Equal(t, http.StatusOK, hit(router, ip).Code)
		assert.Equal(t, http.StatusTooManyRequests, hit(router, ip).Code)

		mr.FastForward(61 * time.Second)

		assert.Equal(t, http.StatusOK, hit(router, ip).Code)
	})

	t.Run("Keys carry the prefix", func(t *testing.T) {
		mr, rdb := setupTestRedis(t)
		router := newLimitedRouter(rdb, 3, time.Minute)

		hit(router, "10.0.0.1")

		val, err := mr.Get("kanso:rate_limit:10.0.0.1")
		require.NoError(t, err)
		assert.Equal(t, "1", val)
	})

	t.Run("Exempt paths are not counted", func(t *testing.T) {
		mr, rdb := setupTestRedis(t)
		router := newLimitedRouter(rdb, 1, time.Minute)

		for i := 0; i < 3; i++ {
			assert.Equal(t, http.StatusOK, hitPath(router, "/open", "10.0.0.2").Code)
		}
		assert.False(t, mr.Exists("kanso:rate_limit:10.0.0.2"))
	})

	t.Run("Fail Open (Redis Down)", func(t *testing.T) {
		mr, rdb := setupTestRedis(t)
		mr.Close()

		router := newLimitedRouter(rdb, 5, time.Minute)
		w := hit(router, "192.168.1.104")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "passed", w.Body.String())
	})
}

func TestRateLimiter_Allow(t *testing.T) {
	ctx := context.Background()

	t.Run("Window is fixed from the first request", func(t *testing.T) {
		mr, rdb := setupTestRedis(t)
		limiter := NewRateLimiter(rdb, "", config.RateLimitConfig{Limit: 3, Window: 10 * time.Second})

		d, err := limiter.Allow(ctx, "c1")
		require.NoError(t, err)
		assert.True(t, d.Allowed)
		assert.Equal(t, 2, d.Remaining)
		assert.Equal(t, 10*time.Second, d.ResetIn)

		mr.FastForward(4 * time.Second)

		d, err = limiter.Allow(ctx, "c1")
		require.NoError(t, err)
		assert.Equal(t, 1, d.Remaining)
		assert.Equal(t, 6*time.Second, mr.TTL("rate_limit:c1"))
	})

	t.Run("Zero window falls back to a minute", func(t *testing.T) {
		mr, rdb := setupTestRedis(t)
		limiter := NewRateLimiter(rdb, "", config.RateLimitConfig{Limit: 1})

		_, err := limiter.Allow(ctx, "c2")
		require.NoError(t, err)
		assert.Equal(t, time.Minute, mr.TTL("rate_limit:c2"))
	})
}
