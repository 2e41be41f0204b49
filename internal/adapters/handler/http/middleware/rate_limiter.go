package middleware

import (
	"context"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/comitanigiacomo/kanso-planner/internal/config"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// Decision is the outcome of one counted request.
type Decision struct {
	Allowed   bool
	Remaining int
	ResetIn   time.Duration
}

// RateLimiter counts requests per client in fixed Redis windows.
type RateLimiter struct {
	rdb    *redis.Client
	prefix string
	limit  int
	window time.Duration
	exempt map[string]bool
}

func NewRateLimiter(rdb *redis.Client, prefix string, cfg config.RateLimitConfig, exemptPaths ...string) *RateLimiter {
	window := cfg.Window
	if window <= 0 {
		window = time.Minute
	}

	exempt := make(map[string]bool, len(exemptPaths))
	for _, p := range exemptPaths {
		exempt[p] = true
	}

	return &RateLimiter{rdb: rdb, prefix: prefix, limit: cfg.Limit, window: window, exempt: exempt}
}

func (l *RateLimiter) key(client string) string {
	return l.prefix + "rate_limit:" + client
}

// Allow counts one request for client. The window starts with the first
// request and is never extended by later ones.
func (l *RateLimiter) Allow(ctx context.Context, client string) (Decision, error) {
	key := l.key(client)

	var incr *redis.IntCmd
	var pttl *redis.DurationCmd
	_, err := l.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, key)
		pttl = pipe.PTTL(ctx, key)
		return nil
	})
	if err != nil {
		return Decision{Allowed: true}, err
	}

	resetIn := pttl.Val()
	if resetIn < 0 {
		if err := l.rdb.Expire(ctx, key, l.window).Err(); err != nil {
			l.rdb.Del(ctx, key)
			return Decision{Allowed: true}, err
		}
		resetIn = l.window
	}

	count := int(incr.Val())
	return Decision{
		Allowed:   count <= l.limit,
		Remaining: max(0, l.limit-count),
		ResetIn:   resetIn,
	}, nil
}

func (l *RateLimiter) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if l.exempt[c.FullPath()] {
			c.Next()
			return
		}

		d, err := l.Allow(c.Request.Context(), c.ClientIP())
		if err != nil {
			log.Printf("[RATE] Redis error (limiter skipped): %v", err)
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(l.limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(d.Remaining))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(time.Now().Add(d.ResetIn).Unix(), 10))

		if !d.Allowed {
			retry := int(d.ResetIn.Round(time.Second).Seconds())
			c.Header("Retry-After", strconv.Itoa(retry))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"status":         "error",
				"message":        "Too many requests. Slow down!",
				"retryInSeconds": retry,
			})
			return
		}

		c.Next()
	}
}

// RateLimiterMiddleware is a shorthand for NewRateLimiter(...).Handler().
func RateLimiterMiddleware(rdb *redis.Client, prefix string, cfg config.RateLimitConfig, exemptPaths ...string) gin.HandlerFunc {
	return NewRateLimiter(rdb, prefix, cfg, exemptPaths...).Handler()
}
