package repository

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/comitanigiacomo/kanso-planner/internal/config"
	"github.com/redis/go-redis/v9"
)

var ErrRedisRequired = errors.New("redis store requires a redis client")

// OpenStore builds the backend selected by cfg.Store.Driver. rdb may be nil
// unless the driver is redis or the cache is enabled.
func OpenStore(ctx context.Context, cfg *config.Config, rdb *redis.Client) (Store, error) {
	var (
		store Store
		err   error
	)

	switch cfg.Store.Driver {
	case config.StoreMemory:
		store = NewMemoryStore()
	case config.StoreSQLite:
		store, err = NewSQLiteStore(cfg.Store.SQLitePath, cfg.Store.Table)
	case config.StorePostgres:
		db, connErr := ConnectPostgres(ctx, cfg.Store.Postgres.DSN())
		if connErr != nil {
			return nil, connErr
		}
		store, err = NewPostgresStore(ctx, db, cfg.Store.Table)
		if err != nil {
			db.Close()
		}
	case config.StoreRedis:
		if rdb == nil {
			return nil, ErrRedisRequired
		}
		store = NewRedisStore(rdb, cfg.Redis.Prefix)
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
	if err != nil {
		return nil, err
	}

	log.Printf("[STORE] Using %s store", cfg.Store.Driver)

	if cfg.Redis.Cache && rdb != nil && cfg.Store.Driver != config.StoreRedis {
		log.Printf("[STORE] Redis read-through cache enabled (ttl %s)", cfg.Redis.CacheTTL)
		store = NewCachedStore(store, rdb, cfg.Redis.Prefix, cfg.Redis.CacheTTL)
	}

	return store, nil
}
