package domain

import (
	"errors"
	"slices"
	"strings"

	"github.com/shopspring/decimal"
)

var ErrHabitNameEmpty = errors.New("habit name cannot be empty")

const WeekDays = 7

type Habit struct {
	ID             string   `json:"id" yaml:"id"`
	Name           string   `json:"name" yaml:"name"`
	Category       string   `json:"category" yaml:"category"`
	Streak         int      `json:"streak" yaml:"streak"`
	CompletedDates []string `json:"completedDates" yaml:"completed_dates"`
	LastCompleted  *string  `json:"lastCompleted" yaml:"last_completed,omitempty"`
}

func validateName(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", ErrHabitNameEmpty
	}
	return trimmed, nil
}

func NewHabit(id, name, category string) (*Habit, error) {
	cleanName, err := validateName(name)
	if err != nil {
		return nil, err
	}

	return &Habit{
		ID:             id,
		Name:           cleanName,
		Category:       strings.TrimSpace(category),
		Streak:         0,
		CompletedDates: []string{},
	}, nil
}

func (h *Habit) IsCompletedOn(dateKey string) bool {
	return slices.Contains(h.CompletedDates, dateKey)
}

// CompleteOn marks dateKey as done. It reports false and leaves the habit
// untouched when the day is already recorded. There is no backfill and no
// reset: every newly recorded day adds exactly one to the streak.
func (h *Habit) CompleteOn(dateKey string) bool {
	if h.IsCompletedOn(dateKey) {
		return false
	}

	h.CompletedDates = append(h.CompletedDates, dateKey)
	h.Streak++
	last := dateKey
	h.LastCompleted = &last
	return true
}

// WeeklyCompletion is the share of the 7 days ending on asOf (inclusive) that
// were completed, as a whole percentage rounded half up.
func (h *Habit) WeeklyCompletion(asOf string) int {
	done := 0
	for i := 0; i < WeekDays; i++ {
		key, err := AddDays(asOf, -i)
		if err != nil {
			return 0
		}
		if h.IsCompletedOn(key) {
			done++
		}
	}

	pct := decimal.NewFromInt(int64(done)).
		Mul(decimal.NewFromInt(100)).
		Div(decimal.NewFromInt(WeekDays)).
		Round(0)

	return int(pct.IntPart())
}

func (h *Habit) TotalDays() int {
	return len(h.CompletedDates)
}

// Clone returns a deep copy so callers can't mutate a tracker's collection.
func (h *Habit) Clone() *Habit {
	c := *h
	c.CompletedDates = slices.Clone(h.CompletedDates)
	if c.CompletedDates == nil {
		c.CompletedDates = []string{}
	}
	if h.LastCompleted != nil {
		last := *h.LastCompleted
		c.LastCompleted = &last
	}
	return &c
}
