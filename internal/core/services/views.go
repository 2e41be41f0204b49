package services

import "github.com/comitanigiacomo/kanso-planner/internal/core/domain"

// HabitView is a habit row with its derived numbers already computed.
type HabitView struct {
	domain.Habit
	WeeklyCompletion int  `json:"weeklyCompletion"`
	CompletedToday   bool `json:"completedToday"`
	TotalDays        int  `json:"totalDays"`
}

type TodoView struct {
	domain.Todo
	Overdue bool `json:"overdue"`
}

type MonthView struct {
	Cursor       domain.MonthCursor `json:"cursor"`
	Title        string             `json:"title"`
	Today        string             `json:"today"`
	SelectedDate string             `json:"selectedDate,omitempty"`
	Cells        []domain.DayCell   `json:"cells"`
}

type Dashboard struct {
	Stats    domain.Summary `json:"stats"`
	Habits   []HabitView    `json:"habits"`
	Todos    []TodoView     `json:"todos"`
	Calendar MonthView      `json:"calendar"`
}
