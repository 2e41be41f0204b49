package services_test

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/comitanigiacomo/kanso-planner/internal/core/domain"
)

var errStoreDown = errors.New("quota exceeded")

// FakeRepo keeps the last saved copy of each collection and can be told to
// fail saves.
type FakeRepo struct {
	mu sync.Mutex

	habits   []*domain.Habit
	todos    []*domain.Todo
	calendar domain.CalendarData

	saves         int
	simulateError error
}

func NewFakeRepo() *FakeRepo {
	return &FakeRepo{}
}

func (r *FakeRepo) LoadHabits(ctx context.Context) ([]*domain.Habit, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []*domain.Habit{}
	for _, h := range r.habits {
		out = append(out, h.Clone())
	}
	return out, nil
}

func (r *FakeRepo) SaveHabits(ctx context.Context, habits []*domain.Habit) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.simulateError != nil {
		return r.simulateError
	}
	r.saves++
	r.habits = habits
	return nil
}

func (r *FakeRepo) LoadTodos(ctx context.Context) ([]*domain.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []*domain.Todo{}
	for _, t := range r.todos {
		out = append(out, t.Clone())
	}
	return out, nil
}

func (r *FakeRepo) SaveTodos(ctx context.Context, todos []*domain.Todo) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.simulateError != nil {
		return r.simulateError
	}
	r.saves++
	r.todos = todos
	return nil
}

func (r *FakeRepo) LoadCalendar(ctx context.Context) (domain.CalendarData, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.calendar == nil {
		return domain.CalendarData{}, nil
	}
	return r.calendar.Clone(), nil
}

func (r *FakeRepo) SaveCalendar(ctx context.Context, data domain.CalendarData) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.simulateError != nil {
		return r.simulateError
	}
	r.saves++
	r.calendar = data
	return nil
}

func (r *FakeRepo) Saves() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.saves
}

// testClock is a settable clock pinned to a calendar day.
type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func newTestClock(key string) *testClock {
	t, err := domain.ParseDateKey(key)
	if err != nil {
		panic(err)
	}
	return &testClock{now: t.Add(10 * time.Hour)}
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Set(key string) {
	t, err := domain.ParseDateKey(key)
	if err != nil {
		panic(err)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t.Add(10 * time.Hour)
}
