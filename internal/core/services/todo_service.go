package services

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/comitanigiacomo/kanso-planner/internal/core/domain"
)

type TodoService struct {
	repo  domain.TodoRepository
	ids   domain.IDGenerator
	clock domain.Clock

	mu    sync.Mutex
	todos []*domain.Todo
}

func NewTodoService(repo domain.TodoRepository, ids domain.IDGenerator, clock domain.Clock) *TodoService {
	return &TodoService{
		repo:  repo,
		ids:   ids,
		clock: clock,
		todos: []*domain.Todo{},
	}
}

type CreateTodoInput struct {
	Title    string
	Subject  string
	DueDate  string
	Priority string
}

func (s *TodoService) Load(ctx context.Context) error {
	todos, err := s.repo.LoadTodos(ctx)
	if err != nil {
		return err
	}
	s.Replace(todos)
	return nil
}

func (s *TodoService) Replace(todos []*domain.Todo) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.todos = make([]*domain.Todo, 0, len(todos))
	for _, t := range todos {
		s.todos = append(s.todos, t.Clone())
	}
}

func (s *TodoService) save(ctx context.Context) error {
	if err := s.repo.SaveTodos(ctx, s.snapshotLocked()); err != nil {
		return fmt.Errorf("%w: save todos: %w", domain.ErrPersistence, err)
	}
	return nil
}

func (s *TodoService) Persist(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(ctx)
}

func (s *TodoService) Add(ctx context.Context, input CreateTodoInput) (*domain.Todo, error) {
	todo, err := domain.NewTodo(s.ids.NewID(), input.Title, input.Subject, input.DueDate, input.Priority)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.todos = append(s.todos, todo)

	return todo.Clone(), s.save(ctx)
}

func (s *TodoService) Toggle(ctx context.Context, id string) (*domain.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexLocked(id)
	if idx < 0 {
		return nil, domain.ErrTodoNotFound
	}

	todo := s.todos[idx]
	todo.Toggle()

	return todo.Clone(), s.save(ctx)
}

func (s *TodoService) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexLocked(id)
	if idx < 0 {
		return domain.ErrTodoNotFound
	}

	s.todos = slices.Delete(s.todos, idx, idx+1)

	return s.save(ctx)
}

func (s *TodoService) Get(ctx context.Context, id string) (*domain.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexLocked(id)
	if idx < 0 {
		return nil, domain.ErrTodoNotFound
	}
	return s.todos[idx].Clone(), nil
}

// SortedView lists open todos first, each group by ascending due date, with
// overdue flags computed for today.
func (s *TodoService) SortedView(ctx context.Context) []TodoView {
	s.mu.Lock()
	defer s.mu.Unlock()

	today := domain.DateKey(s.clock())
	sorted := domain.SortTodos(s.todos)

	views := make([]TodoView, 0, len(sorted))
	for _, t := range sorted {
		views = append(views, TodoView{
			Todo:    *t,
			Overdue: t.IsOverdue(today),
		})
	}
	return views
}

func (s *TodoService) Snapshot() []*domain.Todo {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *TodoService) snapshotLocked() []*domain.Todo {
	out := make([]*domain.Todo, 0, len(s.todos))
	for _, t := range s.todos {
		out = append(out, t.Clone())
	}
	return out
}

func (s *TodoService) indexLocked(id string) int {
	return slices.IndexFunc(s.todos, func(t *domain.Todo) bool { return t.ID == id })
}
