package services

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/comitanigiacomo/kanso-planner/internal/core/domain"
)

// Seed is the sample data installed into an empty planner.
type Seed struct {
	Habits   []SeedHabit         `yaml:"habits"`
	Todos    []SeedTodo          `yaml:"todos"`
	Stickers map[string][]string `yaml:"stickers"`
}

type SeedHabit struct {
	Name     string `yaml:"name"`
	Category string `yaml:"category"`
	Streak   int    `yaml:"streak"`
	// RecentDays marks that many days, ending today, as completed.
	RecentDays int `yaml:"recent_days"`
}

type SeedTodo struct {
	Title     string `yaml:"title"`
	Subject   string `yaml:"subject"`
	DueDate   string `yaml:"due_date"`
	Priority  string `yaml:"priority"`
	Completed bool   `yaml:"completed"`
}

func DefaultSeed() *Seed {
	return &Seed{
		Habits: []SeedHabit{
			{Name: "Morning Exercise", Category: "fitness", Streak: 12, RecentDays: 12},
			{Name: "Read 30 Minutes", Category: "learning", Streak: 8, RecentDays: 8},
			{Name: "Drink 8 Glasses Water", Category: "health", Streak: 15, RecentDays: 15},
		},
		Todos: []SeedTodo{
			{Title: "Review Calculus Chapter 5", Subject: "Mathematics", DueDate: "2024-12-25", Priority: "high"},
			{Title: "Complete Physics Lab Report", Subject: "Physics", DueDate: "2024-12-20", Priority: "medium"},
			{Title: "Study for Chemistry Quiz", Subject: "Chemistry", DueDate: "2024-12-18", Priority: "high", Completed: true},
		},
	}
}

func ParseSeed(data []byte) (*Seed, error) {
	var seed Seed
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("invalid seed file: %w", err)
	}
	return &seed, nil
}

func LoadSeedFile(path string) (*Seed, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file %s: %w", path, err)
	}
	return ParseSeed(data)
}

func (s *Seed) habits(ids domain.IDGenerator, now time.Time) ([]*domain.Habit, error) {
	habits := make([]*domain.Habit, 0, len(s.Habits))
	for _, sh := range s.Habits {
		h, err := domain.NewHabit(ids.NewID(), sh.Name, sh.Category)
		if err != nil {
			return nil, fmt.Errorf("seed habit %q: %w", sh.Name, err)
		}

		// Oldest first so LastCompleted ends on today.
		for i := sh.RecentDays - 1; i >= 0; i-- {
			h.CompleteOn(domain.DateKey(now.AddDate(0, 0, -i)))
		}
		if sh.Streak > 0 {
			h.Streak = sh.Streak
		}

		habits = append(habits, h)
	}
	return habits, nil
}

func (s *Seed) todos(ids domain.IDGenerator) ([]*domain.Todo, error) {
	todos := make([]*domain.Todo, 0, len(s.Todos))
	for _, st := range s.Todos {
		t, err := domain.NewTodo(ids.NewID(), st.Title, st.Subject, st.DueDate, st.Priority)
		if err != nil {
			return nil, fmt.Errorf("seed todo %q: %w", st.Title, err)
		}
		t.Completed = st.Completed
		todos = append(todos, t)
	}
	return todos, nil
}

func (s *Seed) calendar() (domain.CalendarData, error) {
	data := domain.CalendarData{}
	for key, stickers := range s.Stickers {
		for _, sticker := range stickers {
			if _, err := data.Assign(key, sticker); err != nil {
				return nil, fmt.Errorf("seed stickers for %s: %w", key, err)
			}
		}
	}
	return data, nil
}
