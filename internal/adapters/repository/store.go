package repository

import (
	"context"

	"github.com/comitanigiacomo/kanso-planner/internal/core/domain"
)

// Store is a KeyValueStore backend with a lifecycle.
type Store interface {
	domain.KeyValueStore
	Ping(ctx context.Context) error
	Close() error
}
