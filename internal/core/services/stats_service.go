package services

import (
	"context"

	"github.com/comitanigiacomo/kanso-planner/internal/core/domain"
)

type HabitSource interface {
	Snapshot() []*domain.Habit
}

type TodoSource interface {
	Snapshot() []*domain.Todo
}

// StatsService derives the dashboard counters. It only reads snapshots and
// recomputes on every call.
type StatsService struct {
	habits HabitSource
	todos  TodoSource
	clock  domain.Clock
}

func NewStatsService(habits HabitSource, todos TodoSource, clock domain.Clock) *StatsService {
	return &StatsService{
		habits: habits,
		todos:  todos,
		clock:  clock,
	}
}

func (s *StatsService) TotalHabits(ctx context.Context) int {
	return len(s.habits.Snapshot())
}

func (s *StatsService) LongestStreak(ctx context.Context) int {
	return domain.LongestStreak(s.habits.Snapshot())
}

func (s *StatsService) TodayCompletedCount(ctx context.Context, asOf string) int {
	return domain.CompletedOnCount(s.habits.Snapshot(), asOf)
}

func (s *StatsService) OpenTodoCount(ctx context.Context) int {
	return domain.OpenTodoCount(s.todos.Snapshot())
}

func (s *StatsService) Summary(ctx context.Context) domain.Summary {
	return domain.Summarize(s.habits.Snapshot(), s.todos.Snapshot(), domain.DateKey(s.clock()))
}
