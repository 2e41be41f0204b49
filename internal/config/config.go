// Package config loads application settings from the environment, with an
// optional .env file for local runs.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Store drivers.
const (
	StoreMemory   = "memory"
	StoreSQLite   = "sqlite"
	StorePostgres = "postgres"
	StoreRedis    = "redis"
)

type Config struct {
	Server    ServerConfig
	Store     StoreConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig
	Planner   PlannerConfig
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type StoreConfig struct {
	Driver     string
	SQLitePath string
	Table      string
	Postgres   PostgresConfig
}

type PostgresConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

// DSN builds the pgx connection string.
func (p PostgresConfig) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		p.User, p.Password, p.Host, p.Port, p.Name, p.SSLMode)
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
	Prefix   string

	// Cache puts a read-through Redis cache in front of a non-redis store.
	Cache    bool
	CacheTTL time.Duration
}

// Enabled reports whether any component needs a Redis connection.
func (r RedisConfig) Enabled(storeDriver string) bool {
	return r.Host != "" && (r.Cache || storeDriver == StoreRedis)
}

type RateLimitConfig struct {
	Limit  int
	Window time.Duration
}

type PlannerConfig struct {
	Seed     bool
	SeedFile string
	Timezone string
}

// Location resolves the configured timezone; empty means the host's local zone.
func (p PlannerConfig) Location() (*time.Location, error) {
	if p.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(p.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid KANSO_TIMEZONE %q: %w", p.Timezone, err)
	}
	return loc, nil
}

// Load reads .env (if present) and the process environment.
func Load() *Config {
	_ = godotenv.Load()
	return FromEnv()
}

func FromEnv() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         getEnv("PORT", "8080"),
			ReadTimeout:  getEnvAsDuration("SERVER_READ_TIMEOUT", 10*time.Second),
			WriteTimeout: getEnvAsDuration("SERVER_WRITE_TIMEOUT", 10*time.Second),
			IdleTimeout:  getEnvAsDuration("SERVER_IDLE_TIMEOUT", 120*time.Second),
		},
		Store: StoreConfig{
			Driver:     strings.ToLower(getEnv("KANSO_STORE", StoreSQLite)),
			SQLitePath: getEnv("KANSO_SQLITE_PATH", "kanso.db"),
			Table:      getEnv("KANSO_KV_TABLE", "kv_entries"),
			Postgres: PostgresConfig{
				Host:     getEnv("DB_HOST", "localhost"),
				Port:     getEnv("DB_PORT", "5432"),
				User:     getEnv("DB_USER", "kanso_user"),
				Password: getEnv("DB_PASSWORD", "secret"),
				Name:     getEnv("DB_NAME", "kanso_db"),
				SSLMode:  getEnv("DB_SSLMODE", "disable"),
			},
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", ""),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
			Prefix:   getEnv("REDIS_PREFIX", "kanso:"),
			Cache:    getEnvAsBool("REDIS_CACHE", false),
			CacheTTL: getEnvAsDuration("REDIS_CACHE_TTL", 30*time.Minute),
		},
		RateLimit: RateLimitConfig{
			Limit:  getEnvAsInt("RATE_LIMIT", 100),
			Window: getEnvAsDuration("RATE_LIMIT_WINDOW", time.Minute),
		},
		Planner: PlannerConfig{
			Seed:     getEnvAsBool("KANSO_SEED", true),
			SeedFile: getEnv("KANSO_SEED_FILE", ""),
			Timezone: getEnv("KANSO_TIMEZONE", ""),
		},
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
