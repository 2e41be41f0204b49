package services

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/comitanigiacomo/kanso-planner/internal/core/domain"
)

type HabitService struct {
	repo  domain.HabitRepository
	ids   domain.IDGenerator
	clock domain.Clock

	mu      sync.Mutex
	habits  []*domain.Habit
	unsaved bool // last save failed
}

func NewHabitService(repo domain.HabitRepository, ids domain.IDGenerator, clock domain.Clock) *HabitService {
	return &HabitService{
		repo:   repo,
		ids:    ids,
		clock:  clock,
		habits: []*domain.Habit{},
	}
}

type CreateHabitInput struct {
	Name     string
	Category string
}

func (s *HabitService) today() string {
	return domain.DateKey(s.clock())
}

// Load replaces the in-memory collection with the stored one.
func (s *HabitService) Load(ctx context.Context) error {
	habits, err := s.repo.LoadHabits(ctx)
	if err != nil {
		return err
	}
	s.Replace(habits)
	return nil
}

func (s *HabitService) Replace(habits []*domain.Habit) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.habits = make([]*domain.Habit, 0, len(habits))
	for _, h := range habits {
		s.habits = append(s.habits, h.Clone())
	}
}

// save writes the whole collection. The in-memory state is kept even when the
// store fails; the next successful save carries the change.
func (s *HabitService) save(ctx context.Context) error {
	if err := s.repo.SaveHabits(ctx, s.snapshotLocked()); err != nil {
		s.unsaved = true
		return fmt.Errorf("%w: save habits: %w", domain.ErrPersistence, err)
	}
	s.unsaved = false
	return nil
}

// Persist saves the current collection as is.
func (s *HabitService) Persist(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(ctx)
}

func (s *HabitService) Add(ctx context.Context, input CreateHabitInput) (*domain.Habit, error) {
	habit, err := domain.NewHabit(s.ids.NewID(), input.Name, input.Category)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.habits = append(s.habits, habit)

	return habit.Clone(), s.save(ctx)
}

// ToggleToday records today for the habit. The bool reports whether anything
// changed; a habit already done today is left alone and is only saved again
// when an earlier save failed.
func (s *HabitService) ToggleToday(ctx context.Context, id string) (*domain.Habit, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	habit := s.findLocked(id)
	if habit == nil {
		return nil, false, domain.ErrHabitNotFound
	}

	if !habit.CompleteOn(s.today()) {
		if s.unsaved {
			return habit.Clone(), false, s.save(ctx)
		}
		return habit.Clone(), false, nil
	}

	return habit.Clone(), true, s.save(ctx)
}

func (s *HabitService) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := slices.IndexFunc(s.habits, func(h *domain.Habit) bool { return h.ID == id })
	if idx < 0 {
		return domain.ErrHabitNotFound
	}

	s.habits = slices.Delete(s.habits, idx, idx+1)

	return s.save(ctx)
}

func (s *HabitService) Get(ctx context.Context, id string) (*domain.Habit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	habit := s.findLocked(id)
	if habit == nil {
		return nil, domain.ErrHabitNotFound
	}
	return habit.Clone(), nil
}

// List returns display rows in insertion order.
func (s *HabitService) List(ctx context.Context) []HabitView {
	s.mu.Lock()
	defer s.mu.Unlock()

	today := s.today()
	views := make([]HabitView, 0, len(s.habits))
	for _, h := range s.habits {
		views = append(views, HabitView{
			Habit:            *h.Clone(),
			WeeklyCompletion: h.WeeklyCompletion(today),
			CompletedToday:   h.IsCompletedOn(today),
			TotalDays:        h.TotalDays(),
		})
	}
	return views
}

// Snapshot returns a deep copy of the collection.
func (s *HabitService) Snapshot() []*domain.Habit {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *HabitService) snapshotLocked() []*domain.Habit {
	out := make([]*domain.Habit, 0, len(s.habits))
	for _, h := range s.habits {
		out = append(out, h.Clone())
	}
	return out
}

func (s *HabitService) findLocked(id string) *domain.Habit {
	for _, h := range s.habits {
		if h.ID == id {
			return h
		}
	}
	return nil
}
