package domain

type Summary struct {
	Date                string `json:"date"`
	TotalHabits         int    `json:"totalHabits"`
	LongestStreak       int    `json:"longestStreak"`
	TodayCompletedCount int    `json:"todayCompleted"`
	OpenTodoCount       int    `json:"openTodos"`
}

// LongestStreak is 0 for an empty collection.
func LongestStreak(habits []*Habit) int {
	longest := 0
	for _, h := range habits {
		if h.Streak > longest {
			longest = h.Streak
		}
	}
	return longest
}

func CompletedOnCount(habits []*Habit, dateKey string) int {
	n := 0
	for _, h := range habits {
		if h.IsCompletedOn(dateKey) {
			n++
		}
	}
	return n
}

func OpenTodoCount(todos []*Todo) int {
	n := 0
	for _, t := range todos {
		if !t.Completed {
			n++
		}
	}
	return n
}

func Summarize(habits []*Habit, todos []*Todo, asOf string) Summary {
	return Summary{
		Date:                asOf,
		TotalHabits:         len(habits),
		LongestStreak:       LongestStreak(habits),
		TodayCompletedCount: CompletedOnCount(habits, asOf),
		OpenTodoCount:       OpenTodoCount(todos),
	}
}
