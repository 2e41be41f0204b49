package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/comitanigiacomo/kanso-planner/docs"
	"github.com/comitanigiacomo/kanso-planner/internal/adapters/handler/http/middleware"
	"github.com/comitanigiacomo/kanso-planner/internal/config"
	"github.com/comitanigiacomo/kanso-planner/internal/core/services"
)

// Pinger is the health probe of the key-value backend.
type Pinger interface {
	Ping(ctx context.Context) error
}

type RouterDependencies struct {
	Planner   *services.Planner
	Store     Pinger
	Redis     *redis.Client
	KeyPrefix string
	RateLimit config.RateLimitConfig
	StartTime time.Time
}

func NewRouter(deps RouterDependencies) *gin.Engine {
	router := gin.Default()

	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PUT, PATCH, DELETE")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	if deps.Redis != nil && deps.RateLimit.Limit > 0 {
		router.Use(middleware.RateLimiterMiddleware(deps.Redis, deps.KeyPrefix, deps.RateLimit, "/health", "/swagger/*any"))
	}

	router.GET("/health", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		storeStatus := "connected"
		if deps.Store == nil || deps.Store.Ping(ctx) != nil {
			storeStatus = "unreachable"
		}

		redisStatus := "disabled"
		if deps.Redis != nil {
			redisStatus = "connected"
			if deps.Redis.Ping(ctx).Err() != nil {
				redisStatus = "unreachable"
			}
		}

		status, statusCode := "ok", http.StatusOK
		if storeStatus == "unreachable" || redisStatus == "unreachable" {
			status, statusCode = "degraded", http.StatusServiceUnavailable
		}

		c.JSON(statusCode, gin.H{
			"status": status,
			"store":  storeStatus,
			"redis":  redisStatus,
			"uptime": time.Since(deps.StartTime).String(),
		})
	})

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	apiV1 := router.Group("/api/v1")
	{
		NewDashboardHandler(deps.Planner).RegisterRoutes(apiV1)
		NewHabitHandler(deps.Planner.Habits).RegisterRoutes(apiV1)
		NewTodoHandler(deps.Planner.Todos).RegisterRoutes(apiV1)
		NewCalendarHandler(deps.Planner.Calendar).RegisterRoutes(apiV1)
		NewStatsHandler(deps.Planner.Stats).RegisterRoutes(apiV1)
	}

	return router
}
