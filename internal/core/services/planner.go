package services

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/comitanigiacomo/kanso-planner/internal/core/domain"
)

// Planner is the application state: one tracker per collection plus the stats
// derived from them, all sharing the same store, id source and clock.
type Planner struct {
	Habits   *HabitService
	Todos    *TodoService
	Calendar *CalendarService
	Stats    *StatsService

	seed  *Seed
	ids   domain.IDGenerator
	clock domain.Clock
}

type PlannerOption func(*Planner)

func WithClock(clock domain.Clock) PlannerOption {
	return func(p *Planner) { p.clock = clock }
}

func WithIDGenerator(ids domain.IDGenerator) PlannerOption {
	return func(p *Planner) { p.ids = ids }
}

// WithSeed replaces the sample data installed into empty collections on Load.
// A nil seed disables seeding.
func WithSeed(seed *Seed) PlannerOption {
	return func(p *Planner) { p.seed = seed }
}

func NewPlanner(repo domain.CollectionRepository, opts ...PlannerOption) *Planner {
	p := &Planner{
		seed:  DefaultSeed(),
		ids:   domain.UUIDGenerator{},
		clock: time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}

	p.Habits = NewHabitService(repo, p.ids, p.clock)
	p.Todos = NewTodoService(repo, p.ids, p.clock)
	p.Calendar = NewCalendarService(repo, p.clock)
	p.Stats = NewStatsService(p.Habits, p.Todos, p.clock)

	return p
}

// Load reads all three collections. Empty habit or todo collections receive
// the sample data when seeding is on; a failed save of the seed is returned
// but the seeded state stays in memory.
func (p *Planner) Load(ctx context.Context) error {
	if err := p.Habits.Load(ctx); err != nil {
		return err
	}
	if err := p.Todos.Load(ctx); err != nil {
		return err
	}
	if err := p.Calendar.Load(ctx); err != nil {
		return err
	}

	if p.seed == nil {
		return nil
	}

	var errs []error

	if len(p.Habits.Snapshot()) == 0 && len(p.seed.Habits) > 0 {
		habits, err := p.seed.habits(p.ids, p.clock())
		if err != nil {
			return err
		}
		p.Habits.Replace(habits)
		errs = append(errs, p.Habits.Persist(ctx))
		log.Printf("[PLANNER] Seeded %d sample habits", len(habits))
	}

	if len(p.Todos.Snapshot()) == 0 && len(p.seed.Todos) > 0 {
		todos, err := p.seed.todos(p.ids)
		if err != nil {
			return err
		}
		p.Todos.Replace(todos)
		errs = append(errs, p.Todos.Persist(ctx))
		log.Printf("[PLANNER] Seeded %d sample todos", len(todos))
	}

	if len(p.Calendar.Snapshot()) == 0 && len(p.seed.Stickers) > 0 {
		data, err := p.seed.calendar()
		if err != nil {
			return err
		}
		p.Calendar.Replace(data)
		errs = append(errs, p.Calendar.Persist(ctx))
	}

	return errors.Join(errs...)
}

func (p *Planner) Today() string {
	return domain.DateKey(p.clock())
}

// Dashboard gathers every read model a front end renders.
func (p *Planner) Dashboard(ctx context.Context) Dashboard {
	return Dashboard{
		Stats:    p.Stats.Summary(ctx),
		Habits:   p.Habits.List(ctx),
		Todos:    p.Todos.SortedView(ctx),
		Calendar: p.Calendar.Grid(ctx),
	}
}
