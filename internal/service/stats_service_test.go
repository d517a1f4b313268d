package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/dreamydrift/journal-api/internal/domain"
)

func record(date, sleep, wake string, reasons ...string) domain.SleepRecord {
	return domain.SleepRecord{Date: date, SleepTime: sleep, WakeTime: wake, Reasons: reasons}
}

func TestComputeStats_Counts(t *testing.T) {
	records := []domain.SleepRecord{
		record("2026-01-15", "01:00", "09:00", "beh_phone", "psy_stress"), // late, 8h
		record("2026-01-14", "03:00", "07:00", "beh_phone"),               // late, 4h
		record("2026-01-13", "22:00", "06:00"),                            // on time, 8h
		record("2026-01-12", "23:00", "05:00"),                            // on time, 6h
	}

	stats := ComputeStats(records, 7, domain.LateReasons)

	if stats.TotalTracked != 4 {
		t.Errorf("TotalTracked = %d, want 4", stats.TotalTracked)
	}
	if stats.LateCount != 2 {
		t.Errorf("LateCount = %d, want 2", stats.LateCount)
	}
	if stats.InsufficientCount != 2 {
		t.Errorf("InsufficientCount = %d, want 2", stats.InsufficientCount)
	}

	if len(stats.TopReasons) != 2 {
		t.Fatalf("TopReasons = %+v, want 2 entries", stats.TopReasons)
	}
	if stats.TopReasons[0].ID != "beh_phone" || stats.TopReasons[0].Count != 2 {
		t.Errorf("top reason = %+v, want beh_phone x2", stats.TopReasons[0])
	}
	if stats.TopReasons[0].Label != "Scrolling on the phone" || stats.TopReasons[0].Category != domain.CategoryBehavioral {
		t.Errorf("top reason not resolved from catalog: %+v", stats.TopReasons[0])
	}

	// behavioral 2, psychological 1; physiological and external are omitted
	// entirely rather than zeroed.
	want := []domain.CategoryCount{
		{Category: domain.CategoryPsychological, Count: 1},
		{Category: domain.CategoryBehavioral, Count: 2},
	}
	if len(stats.CategoryDistribution) != len(want) {
		t.Fatalf("CategoryDistribution = %+v, want %+v", stats.CategoryDistribution, want)
	}
	for i := range want {
		if stats.CategoryDistribution[i] != want[i] {
			t.Errorf("CategoryDistribution[%d] = %+v, want %+v", i, stats.CategoryDistribution[i], want[i])
		}
	}
}

func TestComputeStats_WindowBound(t *testing.T) {
	var records []domain.SleepRecord
	for i := 1; i <= 12; i++ {
		records = append(records, record(fmt.Sprintf("2026-01-%02d", i), "23:00", "07:00"))
	}

	for _, windowSize := range []int{7, 30} {
		stats := ComputeStats(records, windowSize, domain.LateReasons)
		wantTracked := len(records)
		if windowSize < wantTracked {
			wantTracked = windowSize
		}
		if stats.TotalTracked != wantTracked {
			t.Errorf("window %d: TotalTracked = %d, want %d", windowSize, stats.TotalTracked, wantTracked)
		}
	}

	// Fewer records than the window is never an error.
	stats := ComputeStats(records[:3], 30, domain.LateReasons)
	if stats.TotalTracked != 3 {
		t.Errorf("short history: TotalTracked = %d, want 3", stats.TotalTracked)
	}
}

func TestComputeStats_WindowPicksMostRecent(t *testing.T) {
	// Only the most recent two nights fall in the window; the late night on
	// the 10th must be ignored even though the input is unsorted.
	records := []domain.SleepRecord{
		record("2026-01-10", "02:00", "06:00"),
		record("2026-01-20", "22:00", "06:00"),
		record("2026-01-19", "23:00", "07:00"),
	}

	stats := ComputeStats(records, 2, domain.LateReasons)
	if stats.LateCount != 0 {
		t.Errorf("LateCount = %d, want 0 (old late night outside window)", stats.LateCount)
	}
	if stats.TotalTracked != 2 {
		t.Errorf("TotalTracked = %d, want 2", stats.TotalTracked)
	}
}

func TestComputeStats_TopReasonLimitAndTieBreak(t *testing.T) {
	// Seven distinct reasons, one hit each: ties resolve by first
	// appearance, and the list truncates at five for a weekly window.
	ids := []string{"psy_revenge", "psy_mood", "psy_escape", "beh_phone", "beh_binge", "beh_game", "ext_social"}
	var records []domain.SleepRecord
	for i, id := range ids {
		records = append(records, record(fmt.Sprintf("2026-01-%02d", 20-i), "01:00", "08:00", id))
	}

	stats := ComputeStats(records, 7, domain.LateReasons)
	if len(stats.TopReasons) != 5 {
		t.Fatalf("weekly window: len(TopReasons) = %d, want 5", len(stats.TopReasons))
	}
	for i, want := range ids[:5] {
		if stats.TopReasons[i].ID != want {
			t.Errorf("TopReasons[%d] = %q, want %q (insertion-order tie-break)", i, stats.TopReasons[i].ID, want)
		}
	}

	stats = ComputeStats(records, 30, domain.LateReasons)
	if len(stats.TopReasons) != 7 {
		t.Errorf("monthly window keeps up to 10: got %d", len(stats.TopReasons))
	}
}

func TestComputeStats_UnknownReason(t *testing.T) {
	records := []domain.SleepRecord{
		record("2026-01-15", "01:00", "08:00", "mystery"),
	}

	stats := ComputeStats(records, 7, domain.LateReasons)
	if len(stats.TopReasons) != 1 || stats.TopReasons[0].Label != "mystery" {
		t.Errorf("unknown reason should rank under its raw id: %+v", stats.TopReasons)
	}
	if len(stats.CategoryDistribution) != 0 {
		t.Errorf("unknown reason must not count toward any category: %+v", stats.CategoryDistribution)
	}
}

func TestComputeStats_Empty(t *testing.T) {
	stats := ComputeStats(nil, 7, domain.LateReasons)
	if stats.TotalTracked != 0 || stats.LateCount != 0 || stats.InsufficientCount != 0 {
		t.Errorf("empty input should yield zero stats: %+v", stats)
	}
	if stats.TopReasons == nil || stats.CategoryDistribution == nil {
		t.Errorf("slices should be empty, not nil, for JSON encoding")
	}
}

func TestStatsService_Compute(t *testing.T) {
	st := NewMockStore()
	st.data.SleepRecords = []domain.SleepRecord{
		record("2026-01-15", "01:30", "08:00", "beh_phone"),
		record("2026-01-14", "22:30", "06:30"),
	}

	svc := NewStatsService(st)
	stats, err := svc.Compute(context.Background(), 0) // zero falls back to the default window
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if stats.TotalTracked != 2 || stats.LateCount != 1 {
		t.Errorf("unexpected stats: %+v", stats)
	}
}
