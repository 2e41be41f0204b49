package domain

import (
	"context"
	"errors"
)

var (
	ErrHabitNotFound = errors.New("habit not found")
	ErrTodoNotFound  = errors.New("todo not found")
	ErrKeyNotFound   = errors.New("key not found")
	ErrPersistence   = errors.New("persistence failure")
)

// Collection keys used by every store.
const (
	HabitsKey       = "habits"
	TodosKey        = "todos"
	CalendarDataKey = "calendarData"
)

// KeyValueStore is the raw string store collections are serialized into.
type KeyValueStore interface {
	// Get returns ErrKeyNotFound when the key was never written.
	Get(ctx context.Context, key string) (string, error)

	Set(ctx context.Context, key, value string) error
}

type HabitRepository interface {
	// LoadHabits returns an empty slice when nothing was saved yet.
	LoadHabits(ctx context.Context) ([]*Habit, error)

	// SaveHabits replaces the whole stored collection.
	SaveHabits(ctx context.Context, habits []*Habit) error
}

type TodoRepository interface {
	LoadTodos(ctx context.Context) ([]*Todo, error)
	SaveTodos(ctx context.Context, todos []*Todo) error
}

type CalendarRepository interface {
	LoadCalendar(ctx context.Context) (CalendarData, error)
	SaveCalendar(ctx context.Context, data CalendarData) error
}

type CollectionRepository interface {
	HabitRepository
	TodoRepository
	CalendarRepository
}
