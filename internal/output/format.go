// Package output renders planner views for the terminal.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/comitanigiacomo/kanso-planner/internal/core/domain"
	"github.com/comitanigiacomo/kanso-planner/internal/core/services"
)

const (
	// Separator frames section headers.
	Separator = "------------"

	weekHeader = " Su   Mo   Tu   We   Th   Fr   Sa"
)

// FormatHeader prints a framed section title.
func FormatHeader(w io.Writer, title string) {
	fmt.Fprintln(w, Separator)
	fmt.Fprintln(w, title)
	fmt.Fprintln(w, Separator)
}

// FormatHabits prints one line per habit.
// Format: "{N:>4}  [x] {NAME} ({CATEGORY})  streak {S}  week {P}%"
func FormatHabits(w io.Writer, habits []services.HabitView) {
	if len(habits) == 0 {
		fmt.Fprintln(w, "no habits yet")
		return
	}
	for i, h := range habits {
		fmt.Fprintf(w, "%4d  %s %s%s  streak %d  week %d%%\n",
			i+1, checkbox(h.CompletedToday), normalize(h.Name), category(h.Category), h.Streak, h.WeeklyCompletion)
	}
}

// FormatTodos prints todos in the order given.
// Format: "{N:>4}  [x] {DUE}  {TITLE} ({SUBJECT})  {PRIORITY}[  overdue]"
func FormatTodos(w io.Writer, todos []services.TodoView) {
	if len(todos) == 0 {
		fmt.Fprintln(w, "nothing to do")
		return
	}
	for i, t := range todos {
		line := fmt.Sprintf("%4d  %s %s  %s%s  %s",
			i+1, checkbox(t.Completed), t.DueDate, normalize(t.Title), category(t.Subject), t.Priority)
		if t.Overdue {
			line += "  overdue"
		}
		fmt.Fprintln(w, line)
	}
}

// FormatMonth prints a Sunday-first grid. Today is shown as [d], the
// selected day as <d>, days outside the month as (d). Stickered days are
// listed under the grid.
func FormatMonth(w io.Writer, view services.MonthView) {
	FormatHeader(w, view.Title)
	fmt.Fprintln(w, weekHeader)

	row := make([]string, 0, domain.GridColumns)
	for _, c := range view.Cells {
		row = append(row, cell(c))
		if len(row) == domain.GridColumns {
			fmt.Fprintln(w, strings.Join(row, " "))
			row = row[:0]
		}
	}
	if len(row) > 0 {
		fmt.Fprintln(w, strings.Join(row, " "))
	}

	for _, c := range view.Cells {
		if len(c.Stickers) > 0 {
			fmt.Fprintf(w, "%s  %s\n", c.DateKey, strings.Join(c.Stickers, " "))
		}
	}
}

// FormatStickers prints the stickers placed on a single day.
func FormatStickers(w io.Writer, dateKey string, stickers []string) {
	if len(stickers) == 0 {
		fmt.Fprintf(w, "%s  (no stickers)\n", dateKey)
		return
	}
	fmt.Fprintf(w, "%s  %s\n", dateKey, strings.Join(stickers, " "))
}

// FormatSummary prints the stats block.
func FormatSummary(w io.Writer, s domain.Summary) {
	fmt.Fprintf(w, "Date:            %s\n", s.Date)
	fmt.Fprintf(w, "Habits:          %d\n", s.TotalHabits)
	fmt.Fprintf(w, "Longest streak:  %d\n", s.LongestStreak)
	fmt.Fprintf(w, "Done today:      %d/%d\n", s.TodayCompletedCount, s.TotalHabits)
	fmt.Fprintf(w, "Open todos:      %d\n", s.OpenTodoCount)
}

func cell(c domain.DayCell) string {
	open, closing := " ", " "
	switch {
	case c.IsSelected:
		open, closing = "<", ">"
	case c.IsToday:
		open, closing = "[", "]"
	case !c.InCurrentMonth:
		open, closing = "(", ")"
	}
	return fmt.Sprintf("%s%2d%s", open, c.Day, closing)
}

func checkbox(done bool) string {
	if done {
		return "[x]"
	}
	return "[ ]"
}

func category(c string) string {
	if strings.TrimSpace(c) == "" {
		return ""
	}
	return " (" + c + ")"
}

// normalize keeps every entry on one line.
func normalize(s string) string {
	s = strings.ReplaceAll(s, "\r", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	if strings.TrimSpace(s) == "" {
		return "(untitled)"
	}
	return s
}
