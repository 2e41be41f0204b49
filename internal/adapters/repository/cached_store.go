package repository

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

var _ Store = (*CachedStore)(nil)

// CachedStore is a read-through Redis cache in front of another Store.
// Cache failures are logged and never surface to the caller.
type CachedStore struct {
	next   Store
	cache  *redis.Client
	prefix string
	ttl    time.Duration
}

func NewCachedStore(next Store, cache *redis.Client, prefix string, ttl time.Duration) *CachedStore {
	return &CachedStore{
		next:   next,
		cache:  cache,
		prefix: prefix,
		ttl:    ttl,
	}
}

func (s *CachedStore) cacheKey(key string) string {
	return s.prefix + "cache:" + key
}

func (s *CachedStore) invalidate(ctx context.Context, key string) {
	if err := s.cache.Del(ctx, s.cacheKey(key)).Err(); err != nil {
		log.Printf("[CACHE] Failed to invalidate %s: %v", key, err)
	}
}

func (s *CachedStore) Get(ctx context.Context, key string) (string, error) {
	ck := s.cacheKey(key)

	val, err := s.cache.Get(ctx, ck).Result()
	if err == nil {
		return val, nil
	}
	if !errors.Is(err, redis.Nil) {
		log.Printf("[CACHE] Redis read error: %v", err)
	}

	val, err = s.next.Get(ctx, key)
	if err != nil {
		return "", err
	}

	if setErr := s.cache.Set(ctx, ck, val, s.ttl).Err(); setErr != nil {
		log.Printf("[CACHE] Redis set error: %v", setErr)
	}

	return val, nil
}

func (s *CachedStore) Set(ctx context.Context, key, value string) error {
	if err := s.next.Set(ctx, key, value); err != nil {
		return err
	}
	s.invalidate(ctx, key)
	return nil
}

func (s *CachedStore) Ping(ctx context.Context) error {
	if err := s.cache.Ping(ctx).Err(); err != nil {
		log.Printf("[CACHE] Redis ping failed: %v", err)
	}
	return s.next.Ping(ctx)
}

func (s *CachedStore) Close() error {
	return s.next.Close()
}
