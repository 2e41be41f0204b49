package domain_test

import (
	"strings"
	"testing"

	"github.com/comitanigiacomo/kanso-planner/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHabit(t *testing.T) {
	t.Run("Success: Creates habit with zero streak and empty dates", func(t *testing.T) {
		h, err := domain.NewHabit("h1", "  Drink Water ", "health")

		require.NoError(t, err)
		assert.Equal(t, "h1", h.ID)
		assert.Equal(t, "Drink Water", h.Name)
		assert.Equal(t, "health", h.Category)
		assert.Equal(t, 0, h.Streak)
		assert.NotNil(t, h.CompletedDates)
		assert.Empty(t, h.CompletedDates)
		assert.Nil(t, h.LastCompleted)
	})

	t.Run("Error: Empty name", func(t *testing.T) {
		_, err := domain.NewHabit("h1", "   ", "health")
		assert.ErrorIs(t, err, domain.ErrHabitNameEmpty)
	})

	t.Run("Success: Long and multi-byte names are accepted", func(t *testing.T) {
		long := strings.Repeat("a", 101)
		h, err := domain.NewHabit("h1", long, "")
		require.NoError(t, err)
		assert.Equal(t, long, h.Name)

		runner := strings.Repeat("🏃", 30)
		h, err = domain.NewHabit("h2", runner, "")
		require.NoError(t, err)
		assert.Equal(t, runner, h.Name)
	})
}

func TestHabit_CompleteOn(t *testing.T) {
	t.Run("Second completion on the same day is a no-op", func(t *testing.T) {
		h, _ := domain.NewHabit("h1", "Read", "learning")

		assert.True(t, h.CompleteOn("2024-12-26"))
		assert.False(t, h.CompleteOn("2024-12-26"))

		assert.Equal(t, 1, h.Streak)
		assert.Equal(t, []string{"2024-12-26"}, h.CompletedDates)
		require.NotNil(t, h.LastCompleted)
		assert.Equal(t, "2024-12-26", *h.LastCompleted)
	})

	t.Run("Streak counts days and never resets after a gap", func(t *testing.T) {
		h, _ := domain.NewHabit("h1", "Read", "learning")

		h.CompleteOn("2024-12-01")
		h.CompleteOn("2024-12-10")
		h.CompleteOn("2024-12-11")

		assert.Equal(t, 3, h.Streak)
		assert.Equal(t, "2024-12-11", *h.LastCompleted)
	})
}

func TestHabit_WeeklyCompletion(t *testing.T) {
	tests := []struct {
		name  string
		dates []string
		asOf  string
		want  int
	}{
		{name: "No completions", dates: nil, asOf: "2024-12-26", want: 0},
		{name: "One day rounds down", dates: []string{"2024-12-26"}, asOf: "2024-12-26", want: 14},
		{name: "Four days rounds down", dates: []string{"2024-12-20", "2024-12-22", "2024-12-24", "2024-12-26"}, asOf: "2024-12-26", want: 57},
		{name: "Three days rounds up", dates: []string{"2024-12-22", "2024-12-24", "2024-12-26"}, asOf: "2024-12-26", want: 43},
		{
			name:  "Full week",
			dates: []string{"2024-12-20", "2024-12-21", "2024-12-22", "2024-12-23", "2024-12-24", "2024-12-25", "2024-12-26"},
			asOf:  "2024-12-26",
			want:  100,
		},
		{name: "Day before window is ignored", dates: []string{"2024-12-19"}, asOf: "2024-12-26", want: 0},
		{name: "Future days are ignored", dates: []string{"2024-12-27"}, asOf: "2024-12-26", want: 0},
		{name: "Window crosses a year boundary", dates: []string{"2024-12-31", "2025-01-02"}, asOf: "2025-01-03", want: 29},
		{name: "Invalid reference date", dates: []string{"2024-12-26"}, asOf: "yesterday", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &domain.Habit{CompletedDates: tt.dates}

			got := h.WeeklyCompletion(tt.asOf)

			assert.Equal(t, tt.want, got)
			assert.GreaterOrEqual(t, got, 0)
			assert.LessOrEqual(t, got, 100)
		})
	}
}

func TestHabit_Clone(t *testing.T) {
	h, _ := domain.NewHabit("h1", "Read", "")
	h.CompleteOn("2024-12-26")

	c := h.Clone()
	c.CompletedDates[0] = "2000-01-01"
	*c.LastCompleted = "2000-01-01"

	assert.Equal(t, "2024-12-26", h.CompletedDates[0])
	assert.Equal(t, "2024-12-26", *h.LastCompleted)
}
