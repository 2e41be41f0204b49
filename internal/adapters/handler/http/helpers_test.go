package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	adapterHTTP "github.com/comitanigiacomo/kanso-planner/internal/adapters/handler/http"
	"github.com/comitanigiacomo/kanso-planner/internal/core/domain"
	"github.com/comitanigiacomo/kanso-planner/internal/core/services"
)

var errStoreDown = errors.New("store down")

type MockRepo struct {
	mu        sync.Mutex
	habits    []*domain.Habit
	todos     []*domain.Todo
	calendar  domain.CalendarData
	failSaves bool
}

func (m *MockRepo) FailSaves(fail bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failSaves = fail
}

func (m *MockRepo) LoadHabits(ctx context.Context) ([]*domain.Habit, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.habits, nil
}

func (m *MockRepo) SaveHabits(ctx context.Context, habits []*domain.Habit) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failSaves {
		return errStoreDown
	}
	m.habits = habits
	return nil
}

func (m *MockRepo) LoadTodos(ctx context.Context) ([]*domain.Todo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.todos, nil
}

func (m *MockRepo) SaveTodos(ctx context.Context, todos []*domain.Todo) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failSaves {
		return errStoreDown
	}
	m.todos = todos
	return nil
}

func (m *MockRepo) LoadCalendar(ctx context.Context) (domain.CalendarData, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.calendar == nil {
		return domain.CalendarData{}, nil
	}
	return m.calendar, nil
}

func (m *MockRepo) SaveCalendar(ctx context.Context, data domain.CalendarData) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failSaves {
		return errStoreDown
	}
	m.calendar = data
	return nil
}

func fixedClock() time.Time {
	return time.Date(2024, time.December, 19, 10, 0, 0, 0, time.UTC)
}

func newTestPlanner(t *testing.T) (*services.Planner, *MockRepo) {
	repo := &MockRepo{}
	planner := services.NewPlanner(repo,
		services.WithClock(fixedClock),
		services.WithIDGenerator(domain.NewSequenceGenerator(0)),
		services.WithSeed(nil),
	)
	require.NoError(t, planner.Load(context.Background()))
	return planner, repo
}

// setupRouter mounts only the API group, without health, swagger or limiter.
func setupRouter(t *testing.T) (*gin.Engine, *services.Planner, *MockRepo) {
	gin.SetMode(gin.TestMode)

	planner, repo := newTestPlanner(t)

	r := gin.New()
	api := r.Group("/api/v1")
	adapterHTTP.NewDashboardHandler(planner).RegisterRoutes(api)
	adapterHTTP.NewHabitHandler(planner.Habits).RegisterRoutes(api)
	adapterHTTP.NewTodoHandler(planner.Todos).RegisterRoutes(api)
	adapterHTTP.NewCalendarHandler(planner.Calendar).RegisterRoutes(api)
	adapterHTTP.NewStatsHandler(planner.Stats).RegisterRoutes(api)

	return r, planner, repo
}

func doRequest(router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}
