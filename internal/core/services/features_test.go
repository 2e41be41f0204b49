package services_test

import (
	"context"
	"fmt"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/cucumber/godog"
	"github.com/cucumber/godog/colors"

	"github.com/comitanigiacomo/kanso-planner/internal/core/domain"
	"github.com/comitanigiacomo/kanso-planner/internal/core/services"
)

// plannerWorld is the per-scenario state shared by the step definitions.
type plannerWorld struct {
	clock   *testClock
	planner *services.Planner
	habits  map[string]string
	todos   map[string]string
}

func (w *plannerWorld) reset(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
	w.clock = newTestClock("2024-01-01")
	w.planner = services.NewPlanner(NewFakeRepo(),
		services.WithClock(w.clock.Now),
		services.WithIDGenerator(domain.NewSequenceGenerator(0)),
	)
	w.habits = map[string]string{}
	w.todos = map[string]string{}
	return ctx, nil
}

func (w *plannerWorld) todayIs(key string) error {
	if err := domain.ValidateDateKey(key); err != nil {
		return err
	}
	w.clock.Set(key)
	return nil
}

func (w *plannerWorld) addHabit(name, category string) error {
	h, err := w.planner.Habits.Add(context.Background(), services.CreateHabitInput{Name: name, Category: category})
	if err != nil {
		return err
	}
	w.habits[name] = h.ID
	return nil
}

func (w *plannerWorld) completeHabit(name string) error {
	_, _, err := w.planner.Habits.ToggleToday(context.Background(), w.habits[name])
	return err
}

func (w *plannerWorld) deleteHabit(name string) error {
	return w.planner.Habits.Delete(context.Background(), w.habits[name])
}

func (w *plannerWorld) habitStreak(name string, want int) error {
	h, err := w.planner.Habits.Get(context.Background(), w.habits[name])
	if err != nil {
		return err
	}
	if h.Streak != want {
		return fmt.Errorf("expected streak %d, got %d", want, h.Streak)
	}
	return nil
}

func (w *plannerWorld) weeklyCompletion(name string, want int) error {
	h, err := w.planner.Habits.Get(context.Background(), w.habits[name])
	if err != nil {
		return err
	}
	if got := h.WeeklyCompletion(w.planner.Today()); got != want {
		return fmt.Errorf("expected %d%%, got %d%%", want, got)
	}
	return nil
}

func (w *plannerWorld) doneToday(want int) error {
	if got := w.planner.Stats.TodayCompletedCount(context.Background(), w.planner.Today()); got != want {
		return fmt.Errorf("expected %d habits done today, got %d", want, got)
	}
	return nil
}

func (w *plannerWorld) longestStreak(want int) error {
	if got := w.planner.Stats.LongestStreak(context.Background()); got != want {
		return fmt.Errorf("expected longest streak %d, got %d", want, got)
	}
	return nil
}

func (w *plannerWorld) addTodo(title, due string) error {
	t, err := w.planner.Todos.Add(context.Background(), services.CreateTodoInput{Title: title, DueDate: due})
	if err != nil {
		return err
	}
	w.todos[title] = t.ID
	return nil
}

func (w *plannerWorld) completeTodo(title string) error {
	_, err := w.planner.Todos.Toggle(context.Background(), w.todos[title])
	return err
}

func (w *plannerWorld) todoOrder(list string) error {
	var got []string
	for _, row := range w.planner.Todos.SortedView(context.Background()) {
		got = append(got, row.Title)
	}
	if strings.Join(got, ", ") != list {
		return fmt.Errorf("expected order %q, got %q", list, strings.Join(got, ", "))
	}
	return nil
}

func (w *plannerWorld) openTodos(want int) error {
	if got := w.planner.Stats.OpenTodoCount(context.Background()); got != want {
		return fmt.Errorf("expected %d open todos, got %d", want, got)
	}
	return nil
}

func (w *plannerWorld) overdue(title string, not string) error {
	t, err := w.planner.Todos.Get(context.Background(), w.todos[title])
	if err != nil {
		return err
	}
	want := not == ""
	if got := t.IsOverdue(w.planner.Today()); got != want {
		return fmt.Errorf("expected overdue=%v for %q, got %v", want, title, got)
	}
	return nil
}

func (w *plannerWorld) stick(sticker, key string) error {
	_, err := w.planner.Calendar.AssignSticker(context.Background(), key, sticker)
	return err
}

func (w *plannerWorld) carries(key, stickers string) error {
	got := strings.Join(w.planner.Calendar.StickersOn(key), " ")
	if got != stickers {
		return fmt.Errorf("expected stickers %q on %s, got %q", stickers, key, got)
	}
	return nil
}

func (w *plannerWorld) gridCells(year, month, want int, first string) error {
	view, err := w.planner.Calendar.GridFor(context.Background(), year, time.Month(month))
	if err != nil {
		return err
	}
	if len(view.Cells) != want {
		return fmt.Errorf("expected %d cells, got %d", want, len(view.Cells))
	}
	if view.Cells[0].DateKey != first {
		return fmt.Errorf("expected first cell %s, got %s", first, view.Cells[0].DateKey)
	}
	return nil
}

func initializePlannerScenario(sc *godog.ScenarioContext) {
	w := &plannerWorld{}

	sc.Before(w.reset)

	sc.Step(`^today is "([^"]*)"$`, w.todayIs)
	sc.Step(`^I add a habit "([^"]*)" in "([^"]*)"$`, w.addHabit)
	sc.Step(`^I mark "([^"]*)" complete today$`, w.completeHabit)
	sc.Step(`^I delete the habit "([^"]*)"$`, w.deleteHabit)
	sc.Step(`^the habit "([^"]*)" has a streak of (\d+)$`, w.habitStreak)
	sc.Step(`^the weekly completion of "([^"]*)" is (\d+)%$`, w.weeklyCompletion)
	sc.Step(`^(\d+) habits? (?:is|are) done today$`, w.doneToday)
	sc.Step(`^the longest streak is (\d+)$`, w.longestStreak)
	sc.Step(`^I add a todo "([^"]*)" due "([^"]*)"$`, w.addTodo)
	sc.Step(`^I complete the todo "([^"]*)"$`, w.completeTodo)
	sc.Step(`^the todo list order is "([^"]*)"$`, w.todoOrder)
	sc.Step(`^(\d+) todos? (?:is|are) open$`, w.openTodos)
	sc.Step(`^the todo "([^"]*)" is (not )?overdue$`, w.overdue)
	sc.Step(`^I stick "([^"]*)" on "([^"]*)"$`, w.stick)
	sc.Step(`^"([^"]*)" carries the stickers "([^"]*)"$`, w.carries)
	sc.Step(`^the grid for (\d{4})-(\d{2}) has (\d+) cells starting on "([^"]*)"$`, w.gridCells)
}

func TestFeatures(t *testing.T) {
	opts := godog.Options{
		Format:    "pretty",
		Paths:     []string{"features"},
		Output:    colors.Colored(os.Stdout),
		Randomize: 0,
		Strict:    true,
		TestingT:  t,
	}

	if tags := os.Getenv("GODOG_TAGS"); tags != "" {
		opts.Tags = tags
	}

	suite := godog.TestSuite{
		Name:                "kanso-planner",
		ScenarioInitializer: initializePlannerScenario,
		Options:             &opts,
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
