package domain

import (
	"errors"
	"sort"
	"strings"
)

var (
	ErrTodoTitleEmpty  = errors.New("todo title cannot be empty")
	ErrInvalidPriority = errors.New("invalid priority (must be low, medium, or high)")
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

func ParsePriority(s string) (Priority, error) {
	switch p := Priority(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return PriorityMedium, nil
	case PriorityLow, PriorityMedium, PriorityHigh:
		return p, nil
	default:
		return "", ErrInvalidPriority
	}
}

type Todo struct {
	ID        string   `json:"id" yaml:"id"`
	Title     string   `json:"title" yaml:"title"`
	Subject   string   `json:"subject" yaml:"subject"`
	DueDate   string   `json:"dueDate" yaml:"due_date"`
	Priority  Priority `json:"priority" yaml:"priority"`
	Completed bool     `json:"completed" yaml:"completed"`
}

func NewTodo(id, title, subject, dueDate, priority string) (*Todo, error) {
	cleanTitle := strings.TrimSpace(title)
	if cleanTitle == "" {
		return nil, ErrTodoTitleEmpty
	}

	if err := ValidateDateKey(dueDate); err != nil {
		return nil, err
	}

	p, err := ParsePriority(priority)
	if err != nil {
		return nil, err
	}

	return &Todo{
		ID:        id,
		Title:     cleanTitle,
		Subject:   strings.TrimSpace(subject),
		DueDate:   dueDate,
		Priority:  p,
		Completed: false,
	}, nil
}

func (t *Todo) Toggle() {
	t.Completed = !t.Completed
}

// IsOverdue compares date-keys lexically, which matches chronological order
// for the zero-padded YYYY-MM-DD format.
func (t *Todo) IsOverdue(asOf string) bool {
	return !t.Completed && t.DueDate < asOf
}

func (t *Todo) Clone() *Todo {
	c := *t
	return &c
}

// SortTodos orders incomplete todos before completed ones and by ascending due
// date inside each group. Equal keys keep their insertion order.
func SortTodos(todos []*Todo) []*Todo {
	sorted := make([]*Todo, len(todos))
	copy(sorted, todos)

	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.Completed != b.Completed {
			return !a.Completed
		}
		return a.DueDate < b.DueDate
	})

	return sorted
}
