package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/comitanigiacomo/kanso-planner/internal/core/domain"
)

var _ domain.CollectionRepository = (*CollectionRepository)(nil)

// CollectionRepository serializes the three planner collections as JSON
// documents under fixed keys of a KeyValueStore.
type CollectionRepository struct {
	store domain.KeyValueStore
}

func NewCollectionRepository(store domain.KeyValueStore) *CollectionRepository {
	return &CollectionRepository{store: store}
}

func (r *CollectionRepository) load(ctx context.Context, key string, dest any) (bool, error) {
	raw, err := r.store.Get(ctx, key)
	if errors.Is(err, domain.ErrKeyNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("load %s: %w", key, err)
	}

	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		return false, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

func (r *CollectionRepository) save(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}

	if err := r.store.Set(ctx, key, string(data)); err != nil {
		return fmt.Errorf("store %s: %w", key, err)
	}
	return nil
}

func (r *CollectionRepository) LoadHabits(ctx context.Context) ([]*domain.Habit, error) {
	var habits []*domain.Habit
	if _, err := r.load(ctx, domain.HabitsKey, &habits); err != nil {
		return nil, err
	}

	out := make([]*domain.Habit, 0, len(habits))
	for _, h := range habits {
		if h == nil {
			continue
		}
		if h.CompletedDates == nil {
			h.CompletedDates = []string{}
		}
		out = append(out, h)
	}
	return out, nil
}

func (r *CollectionRepository) SaveHabits(ctx context.Context, habits []*domain.Habit) error {
	if habits == nil {
		habits = []*domain.Habit{}
	}
	return r.save(ctx, domain.HabitsKey, habits)
}

func (r *CollectionRepository) LoadTodos(ctx context.Context) ([]*domain.Todo, error) {
	var todos []*domain.Todo
	if _, err := r.load(ctx, domain.TodosKey, &todos); err != nil {
		return nil, err
	}

	out := make([]*domain.Todo, 0, len(todos))
	for _, t := range todos {
		if t != nil {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *CollectionRepository) SaveTodos(ctx context.Context, todos []*domain.Todo) error {
	if todos == nil {
		todos = []*domain.Todo{}
	}
	return r.save(ctx, domain.TodosKey, todos)
}

func (r *CollectionRepository) LoadCalendar(ctx context.Context) (domain.CalendarData, error) {
	data := domain.CalendarData{}
	if _, err := r.load(ctx, domain.CalendarDataKey, &data); err != nil {
		return nil, err
	}

	for key, entry := range data {
		if entry == nil {
			delete(data, key)
			continue
		}
		if entry.Stickers == nil {
			entry.Stickers = []string{}
		}
	}
	return data, nil
}

func (r *CollectionRepository) SaveCalendar(ctx context.Context, data domain.CalendarData) error {
	if data == nil {
		data = domain.CalendarData{}
	}
	return r.save(ctx, domain.CalendarDataKey, data)
}
