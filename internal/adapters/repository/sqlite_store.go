package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/comitanigiacomo/kanso-planner/internal/core/domain"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

var _ Store = (*SQLiteStore)(nil)

type kvEntry struct {
	EntryKey  string `gorm:"primaryKey;column:entry_key"`
	Value     string `gorm:"column:value;not null"`
	UpdatedAt time.Time
}

type SQLiteStore struct {
	db    *gorm.DB
	table string
}

// NewSQLiteStore opens (or creates) the database at path and migrates the
// key-value table. Use ":memory:" for a throwaway database.
func NewSQLiteStore(path, table string) (*SQLiteStore, error) {
	dbSQL, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite at %s: %w", path, err)
	}

	// A single connection keeps ":memory:" databases shared and serializes writers.
	dbSQL.SetMaxOpenConns(1)

	db, err := gorm.Open(sqlite.Dialector{Conn: dbSQL}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		dbSQL.Close()
		return nil, fmt.Errorf("failed to initialize gorm: %w", err)
	}

	if err := db.Table(table).AutoMigrate(&kvEntry{}); err != nil {
		dbSQL.Close()
		return nil, fmt.Errorf("failed to migrate %s: %w", table, err)
	}

	return &SQLiteStore{db: db, table: table}, nil
}

func (s *SQLiteStore) Get(ctx context.Context, key string) (string, error) {
	var e kvEntry
	err := s.db.WithContext(ctx).Table(s.table).Where("entry_key = ?", key).Take(&e).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", domain.ErrKeyNotFound
		}
		return "", fmt.Errorf("sqlite get %s: %w", key, err)
	}
	return e.Value, nil
}

func (s *SQLiteStore) Set(ctx context.Context, key, value string) error {
	e := kvEntry{EntryKey: key, Value: value, UpdatedAt: time.Now().UTC()}

	err := s.db.WithContext(ctx).Table(s.table).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "entry_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&e).Error
	if err != nil {
		return fmt.Errorf("sqlite set %s: %w", key, err)
	}
	return nil
}

func (s *SQLiteStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (s *SQLiteStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB for closing: %w", err)
	}
	return sqlDB.Close()
}
