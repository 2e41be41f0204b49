package services

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/comitanigiacomo/kanso-planner/internal/core/domain"
)

// CalendarService owns the sticker entries and the ephemeral view state of the
// calendar: displayed month, selected date and last picked sticker. Only the
// entries are persisted.
type CalendarService struct {
	repo  domain.CalendarRepository
	clock domain.Clock

	mu              sync.Mutex
	data            domain.CalendarData
	cursor          domain.MonthCursor
	selectedDate    string
	selectedSticker string
	unsaved         bool
}

func NewCalendarService(repo domain.CalendarRepository, clock domain.Clock) *CalendarService {
	return &CalendarService{
		repo:   repo,
		clock:  clock,
		data:   domain.CalendarData{},
		cursor: domain.CursorFor(clock()),
	}
}

func (s *CalendarService) Load(ctx context.Context) error {
	data, err := s.repo.LoadCalendar(ctx)
	if err != nil {
		return err
	}
	s.Replace(data)
	return nil
}

func (s *CalendarService) Replace(data domain.CalendarData) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if data == nil {
		data = domain.CalendarData{}
	}
	s.data = data.Clone()
}

func (s *CalendarService) save(ctx context.Context) error {
	if err := s.repo.SaveCalendar(ctx, s.data.Clone()); err != nil {
		s.unsaved = true
		return fmt.Errorf("%w: save calendar: %w", domain.ErrPersistence, err)
	}
	s.unsaved = false
	return nil
}

func (s *CalendarService) Persist(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(ctx)
}

// SelectDate makes dateKey the single selected day.
func (s *CalendarService) SelectDate(dateKey string) error {
	if err := domain.ValidateDateKey(dateKey); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.selectedDate = dateKey
	return nil
}

func (s *CalendarService) ClearSelection() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectedDate = ""
}

func (s *CalendarService) SelectedDate() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selectedDate
}

func (s *CalendarService) SelectedSticker() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selectedSticker
}

// AssignSticker places sticker on dateKey. Saving only happens when the day
// did not already carry it or an earlier save failed.
func (s *CalendarService) AssignSticker(ctx context.Context, dateKey, sticker string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.assignLocked(ctx, dateKey, sticker)
}

// ApplySticker remembers sticker as the picked one and places it on the
// selected date, if any.
func (s *CalendarService) ApplySticker(ctx context.Context, sticker string) (bool, error) {
	sticker = strings.TrimSpace(sticker)
	if sticker == "" {
		return false, domain.ErrStickerEmpty
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.selectedSticker = sticker
	if s.selectedDate == "" {
		return false, nil
	}

	return s.assignLocked(ctx, s.selectedDate, sticker)
}

func (s *CalendarService) assignLocked(ctx context.Context, dateKey, sticker string) (bool, error) {
	added, err := s.data.Assign(dateKey, sticker)
	if err != nil {
		return false, err
	}
	if !added {
		if s.unsaved {
			return false, s.save(ctx)
		}
		return false, nil
	}
	return true, s.save(ctx)
}

func (s *CalendarService) StickersOn(dateKey string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.StickersOn(dateKey)
}

// NavigateMonth moves the displayed month by delta.
func (s *CalendarService) NavigateMonth(delta int) domain.MonthCursor {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cursor = s.cursor.Shift(delta)
	return s.cursor
}

func (s *CalendarService) Cursor() domain.MonthCursor {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cursor
}

// Grid renders the displayed month.
func (s *CalendarService) Grid(ctx context.Context) MonthView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.monthLocked(s.cursor)
}

// GridFor renders an arbitrary month without moving the cursor.
func (s *CalendarService) GridFor(ctx context.Context, year int, month time.Month) (MonthView, error) {
	cursor, err := domain.NewMonthCursor(year, month)
	if err != nil {
		return MonthView{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.monthLocked(cursor), nil
}

func (s *CalendarService) monthLocked(cursor domain.MonthCursor) MonthView {
	today := domain.DateKey(s.clock())
	return MonthView{
		Cursor:       cursor,
		Title:        cursor.Title(),
		Today:        today,
		SelectedDate: s.selectedDate,
		Cells:        domain.ComputeMonthGrid(cursor.Year, cursor.Month, today, s.selectedDate, s.data),
	}
}

func (s *CalendarService) Snapshot() domain.CalendarData {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.Clone()
}
