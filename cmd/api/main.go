package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/comitanigiacomo/kanso-planner/internal/adapters/cache"
	adapterHTTP "github.com/comitanigiacomo/kanso-planner/internal/adapters/handler/http"
	"github.com/comitanigiacomo/kanso-planner/internal/adapters/repository"
	"github.com/comitanigiacomo/kanso-planner/internal/config"
	"github.com/comitanigiacomo/kanso-planner/internal/core/domain"
	"github.com/comitanigiacomo/kanso-planner/internal/core/services"
)

// @title       Kanso Planner API
// @version     1.0
// @description Habits, a sticker calendar and a to-do list.
// @host        localhost:8080
// @BasePath    /api/v1
func main() {
	startTime := time.Now()
	cfg := config.Load()

	var rdb *redis.Client
	if cfg.Redis.Enabled(cfg.Store.Driver) {
		log.Println("Connecting to redis...")
		client, err := cache.NewRedisClient(context.Background(), cfg.Redis)
		if err != nil {
			if cfg.Store.Driver == config.StoreRedis {
				log.Fatalf("Critical: %v", err)
			}
			log.Printf("Warning: redis unavailable, cache and rate limiter disabled: %v", err)
		} else {
			rdb = client
			defer rdb.Close()
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	store, err := repository.OpenStore(ctx, cfg, rdb)
	cancel()
	if err != nil {
		log.Fatalf("Critical: Failed to open store: %v", err)
	}
	defer store.Close()

	planner, err := newPlanner(cfg, store)
	if err != nil {
		log.Fatalf("Critical: %v", err)
	}

	ctx, cancel = context.WithTimeout(context.Background(), 10*time.Second)
	err = planner.Load(ctx)
	cancel()
	if errors.Is(err, domain.ErrPersistence) {
		log.Printf("Warning: planner loaded but the initial save failed: %v", err)
	} else if err != nil {
		log.Fatalf("Critical: Failed to load planner: %v", err)
	}

	router := adapterHTTP.NewRouter(adapterHTTP.RouterDependencies{
		Planner:   planner,
		Store:     store,
		Redis:     rdb,
		KeyPrefix: cfg.Redis.Prefix,
		RateLimit: cfg.RateLimit,
		StartTime: startTime,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		log.Printf("Kanso Planner running on http://localhost:%s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Critical server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Stop signal received. Shutting down...")

	ctx, cancel = context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Forced shutdown error:", err)
	}

	log.Println("Server stopped gracefully.")
}

func newPlanner(cfg *config.Config, store domain.KeyValueStore) (*services.Planner, error) {
	loc, err := cfg.Planner.Location()
	if err != nil {
		return nil, err
	}

	opts := []services.PlannerOption{
		services.WithClock(func() time.Time { return time.Now().In(loc) }),
	}

	switch {
	case !cfg.Planner.Seed:
		opts = append(opts, services.WithSeed(nil))
	case cfg.Planner.SeedFile != "":
		seed, err := services.LoadSeedFile(cfg.Planner.SeedFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load seed file: %w", err)
		}
		opts = append(opts, services.WithSeed(seed))
	}

	return services.NewPlanner(repository.NewCollectionRepository(store), opts...), nil
}
