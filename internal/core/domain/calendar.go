package domain

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"
)

var ErrStickerEmpty = errors.New("sticker cannot be empty")

const (
	GridColumns = 7
	GridCells   = 42
)

type CalendarEntry struct {
	Stickers []string `json:"stickers" yaml:"stickers"`
}

// AddSticker appends sticker unless the day already carries it.
func (e *CalendarEntry) AddSticker(sticker string) bool {
	if slices.Contains(e.Stickers, sticker) {
		return false
	}
	e.Stickers = append(e.Stickers, sticker)
	return true
}

// CalendarData maps a date-key to the stickers placed on that day.
type CalendarData map[string]*CalendarEntry

func (d CalendarData) StickersOn(dateKey string) []string {
	entry, ok := d[dateKey]
	if !ok || entry == nil {
		return []string{}
	}
	return slices.Clone(entry.Stickers)
}

// Assign adds sticker to dateKey, creating the day entry on first use.
func (d CalendarData) Assign(dateKey, sticker string) (bool, error) {
	if err := ValidateDateKey(dateKey); err != nil {
		return false, err
	}
	sticker = strings.TrimSpace(sticker)
	if sticker == "" {
		return false, ErrStickerEmpty
	}

	entry, ok := d[dateKey]
	if !ok || entry == nil {
		entry = &CalendarEntry{Stickers: []string{}}
		d[dateKey] = entry
	}
	return entry.AddSticker(sticker), nil
}

func (d CalendarData) Clone() CalendarData {
	c := make(CalendarData, len(d))
	for k, v := range d {
		if v == nil {
			continue
		}
		c[k] = &CalendarEntry{Stickers: slices.Clone(v.Stickers)}
	}
	return c
}

type DayCell struct {
	DateKey        string   `json:"date"`
	Day            int      `json:"day"`
	InCurrentMonth bool     `json:"inCurrentMonth"`
	IsToday        bool     `json:"isToday"`
	IsSelected     bool     `json:"isSelected"`
	Stickers       []string `json:"stickers"`
}

// MonthCursor is the month currently displayed by the calendar.
type MonthCursor struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
}

func NewMonthCursor(year int, month time.Month) (MonthCursor, error) {
	if month < time.January || month > time.December {
		return MonthCursor{}, ErrInvalidMonth
	}
	return MonthCursor{Year: year, Month: month}, nil
}

func CursorFor(t time.Time) MonthCursor {
	return MonthCursor{Year: t.Year(), Month: t.Month()}
}

// Shift moves the cursor by delta months, rolling over year boundaries.
func (c MonthCursor) Shift(delta int) MonthCursor {
	t := time.Date(c.Year, c.Month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, delta, 0)
	return CursorFor(t)
}

func (c MonthCursor) Title() string {
	return fmt.Sprintf("%s %d", c.Month, c.Year)
}

// ComputeMonthGrid lays out a Sunday-first month view.
//
// Leading days of the previous month are always emitted. Trailing days of the
// next month are only emitted when fewer than 7 cells would remain to reach 42,
// and then exactly enough to fill the sixth row. Every other month ends on its
// last day.
func ComputeMonthGrid(year int, month time.Month, todayKey, selectedKey string, entries CalendarData) []DayCell {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	leading := int(first.Weekday())
	days := daysIn(year, month)

	cells := make([]DayCell, 0, GridCells)

	cell := func(t time.Time, inMonth bool) DayCell {
		key := DateKey(t)
		return DayCell{
			DateKey:        key,
			Day:            t.Day(),
			InCurrentMonth: inMonth,
			IsToday:        key == todayKey,
			IsSelected:     selectedKey != "" && key == selectedKey,
			Stickers:       entries.StickersOn(key),
		}
	}

	for i := leading; i > 0; i-- {
		cells = append(cells, cell(first.AddDate(0, 0, -i), false))
	}

	for d := 0; d < days; d++ {
		cells = append(cells, cell(first.AddDate(0, 0, d), true))
	}

	remaining := GridCells - (leading + days)
	if remaining < GridColumns {
		next := first.AddDate(0, 1, 0)
		for d := 0; d < remaining; d++ {
			cells = append(cells, cell(next.AddDate(0, 0, d), false))
		}
	}

	return cells
}
