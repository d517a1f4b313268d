package service

import (
	"context"
	"testing"
	"time"

	"github.com/dreamydrift/journal-api/internal/domain"
)

func TestBuildMonthGrid_Alignment(t *testing.T) {
	// January 2026 starts on a Thursday: four placeholders, then 31 days.
	slots := BuildMonthGrid(2026, time.January, nil)
	if len(slots) != 4+31 {
		t.Fatalf("len(slots) = %d, want 35", len(slots))
	}
	for i := 0; i < 4; i++ {
		if !slots[i].Empty {
			t.Errorf("slots[%d] should be an empty placeholder", i)
		}
	}
	if slots[4].Empty || slots[4].Day != 1 || slots[4].Date != "2026-01-01" {
		t.Errorf("first day slot wrong: %+v", slots[4])
	}
	if last := slots[len(slots)-1]; last.Day != 31 || last.Date != "2026-01-31" {
		t.Errorf("last day slot wrong: %+v", last)
	}

	// February 2026 starts on a Sunday: no placeholders at all.
	slots = BuildMonthGrid(2026, time.February, nil)
	if len(slots) != 28 {
		t.Fatalf("Feb 2026: len(slots) = %d, want 28", len(slots))
	}
	if slots[0].Empty {
		t.Error("Feb 2026 should start directly with day 1")
	}
}

func TestBuildMonthGrid_Buckets(t *testing.T) {
	records := []domain.SleepRecord{
		{Date: "2026-01-10", SleepTime: "22:00", WakeTime: "06:00"}, // PERFECT
		{Date: "2026-01-11", SleepTime: "02:00", WakeTime: "06:00"}, // BAD
	}

	slots := BuildMonthGrid(2026, time.January, records)

	byDate := map[string]domain.DaySlot{}
	for _, s := range slots {
		if !s.Empty {
			byDate[s.Date] = s
		}
	}

	if byDate["2026-01-10"].Bucket != domain.BucketPerfect {
		t.Errorf("Jan 10 bucket = %q, want PERFECT", byDate["2026-01-10"].Bucket)
	}
	if byDate["2026-01-11"].Bucket != domain.BucketBad {
		t.Errorf("Jan 11 bucket = %q, want BAD", byDate["2026-01-11"].Bucket)
	}
	// A day with no record has no bucket; that is an absent value, not an
	// error.
	if byDate["2026-01-12"].Bucket != "" {
		t.Errorf("Jan 12 bucket = %q, want none", byDate["2026-01-12"].Bucket)
	}
}

func TestMonthNavigation(t *testing.T) {
	tests := []struct {
		name      string
		year      int
		month     time.Month
		next      bool
		wantYear  int
		wantMonth time.Month
	}{
		{name: "next within year", year: 2026, month: time.March, next: true, wantYear: 2026, wantMonth: time.April},
		{name: "next across year", year: 2026, month: time.December, next: true, wantYear: 2027, wantMonth: time.January},
		{name: "prev within year", year: 2026, month: time.March, next: false, wantYear: 2026, wantMonth: time.February},
		{name: "prev across year", year: 2026, month: time.January, next: false, wantYear: 2025, wantMonth: time.December},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var y int
			var m time.Month
			if tt.next {
				y, m = NextMonth(tt.year, tt.month)
			} else {
				y, m = PrevMonth(tt.year, tt.month)
			}
			if y != tt.wantYear || m != tt.wantMonth {
				t.Errorf("got %d-%s, want %d-%s", y, m, tt.wantYear, tt.wantMonth)
			}
		})
	}
}

func TestCalendarService_MonthGrid(t *testing.T) {
	st := NewMockStore()
	st.data.SleepRecords = []domain.SleepRecord{
		{Date: "2026-01-05", SleepTime: "23:00", WakeTime: "07:00"},
	}

	svc := NewCalendarService(st)
	resp, err := svc.MonthGrid(context.Background(), 2026, time.January)
	if err != nil {
		t.Fatalf("MonthGrid: %v", err)
	}
	if resp.Year != 2026 || resp.Month != 1 || len(resp.Slots) != 35 {
		t.Errorf("unexpected response: year=%d month=%d slots=%d", resp.Year, resp.Month, len(resp.Slots))
	}
}
