package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/comitanigiacomo/kanso-planner/internal/core/domain"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	_ "github.com/jackc/pgx/v5/stdlib"
)

var _ Store = (*PostgresStore)(nil)

type PostgresStore struct {
	db    *sqlx.DB
	table string
}

// NewPostgresStore wraps an open connection and creates the key-value table
// when it does not exist yet.
func NewPostgresStore(ctx context.Context, db *sqlx.DB, table string) (*PostgresStore, error) {
	s := &PostgresStore{db: db, table: pq.QuoteIdentifier(table)}

	query := fmt.Sprintf(`
        CREATE TABLE IF NOT EXISTS %s (
            entry_key  TEXT PRIMARY KEY,
            value      TEXT NOT NULL,
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`, s.table)

	if _, err := db.ExecContext(ctx, query); err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", table, err)
	}
	return s, nil
}

func ConnectPostgres(ctx context.Context, dsn string) (*sqlx.DB, error) {
	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}
	return db, nil
}

func (s *PostgresStore) Get(ctx context.Context, key string) (string, error) {
	query := fmt.Sprintf(`SELECT value FROM %s WHERE entry_key = $1`, s.table)

	var value string
	if err := s.db.GetContext(ctx, &value, query, key); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", domain.ErrKeyNotFound
		}
		return "", fmt.Errorf("postgres get %s: %w", key, err)
	}
	return value, nil
}

func (s *PostgresStore) Set(ctx context.Context, key, value string) error {
	query := fmt.Sprintf(`
        INSERT INTO %s (entry_key, value, updated_at)
        VALUES ($1, $2, NOW())
        ON CONFLICT (entry_key) DO UPDATE
        SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`, s.table)

	if _, err := s.db.ExecContext(ctx, query, key, value); err != nil {
		return fmt.Errorf("postgres set %s: %w", key, err)
	}
	return nil
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *PostgresStore) Close() error {
	return s.db.Close()
}
