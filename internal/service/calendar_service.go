package service

import (
	"context"
	"fmt"
	"time"

	"github.com/dreamydrift/journal-api/internal/domain"
	"github.com/dreamydrift/journal-api/internal/store"
)

// CalendarService builds the month heatmap grid from stored records.
type CalendarService interface {
	// MonthGrid returns the day slots for a month, weekday-aligned.
	MonthGrid(ctx context.Context, year int, month time.Month) (*domain.CalendarResponse, error)
}

type calendarService struct {
	store store.Store
}

// NewCalendarService creates a new CalendarService.
func NewCalendarService(st store.Store) CalendarService {
	return &calendarService{store: st}
}

func (s *calendarService) MonthGrid(ctx context.Context, year int, month time.Month) (*domain.CalendarResponse, error) {
	data, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	return &domain.CalendarResponse{
		Year:  year,
		Month: int(month),
		Slots: BuildMonthGrid(year, month, data.SleepRecords),
	}, nil
}

// BuildMonthGrid produces the slots for one month: firstWeekdayOffset empty
// placeholders so day 1 sits under its weekday column (Sunday = column 0),
// then one slot per day. Each day's bucket comes from an exact date match
// against the record collection; a day without a record has no bucket. Pure:
// navigation recomputes the grid from the in-memory records with no I/O.
func BuildMonthGrid(year int, month time.Month, records []domain.SleepRecord) []domain.DaySlot {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	offset := int(first.Weekday())
	daysInMonth := first.AddDate(0, 1, -1).Day()

	byDate := make(map[string]domain.SleepRecord, len(records))
	for _, r := range records {
		byDate[r.Date] = r
	}

	slots := make([]domain.DaySlot, 0, offset+daysInMonth)
	for i := 0; i < offset; i++ {
		slots = append(slots, domain.DaySlot{Empty: true})
	}
	for day := 1; day <= daysInMonth; day++ {
		slot := domain.DaySlot{
			Date: fmt.Sprintf("%04d-%02d-%02d", year, int(month), day),
			Day:  day,
		}
		if rec, ok := byDate[slot.Date]; ok {
			if q, err := domain.Classify(rec.SleepTime, rec.WakeTime); err == nil {
				slot.Bucket = q.Bucket
			}
		}
		slots = append(slots, slot)
	}
	return slots
}

// PrevMonth and NextMonth are pure year/month transforms for grid
// navigation; they trigger no I/O.
func PrevMonth(year int, month time.Month) (int, time.Month) {
	t := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, -1, 0)
	return t.Year(), t.Month()
}

func NextMonth(year int, month time.Month) (int, time.Month) {
	t := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 0)
	return t.Year(), t.Month()
}
