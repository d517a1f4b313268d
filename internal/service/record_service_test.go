package service

import (
	"context"
	"errors"
	"testing"

	"github.com/dreamydrift/journal-api/internal/domain"
)

func TestRecordService_UpsertClassifies(t *testing.T) {
	st := NewMockStore()
	svc := NewRecordService(st)

	resp, err := svc.Upsert(context.Background(), &domain.UpsertSleepRecordRequest{
		Date:      "2026-01-15",
		SleepTime: "01:30",
		WakeTime:  "09:00",
		Reasons:   []string{"beh_phone"},
	})
	if err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	if !resp.IsLate || resp.DurationMinutes != 450 || resp.Bucket != domain.BucketLateButRested {
		t.Errorf("unexpected classification: %+v", resp)
	}
	if len(resp.Reasons) != 1 || resp.Reasons[0] != "beh_phone" {
		t.Errorf("late night should keep its reasons: %v", resp.Reasons)
	}
}

func TestRecordService_UpsertStripsReasonsWhenOnTime(t *testing.T) {
	st := NewMockStore()
	svc := NewRecordService(st)

	resp, err := svc.Upsert(context.Background(), &domain.UpsertSleepRecordRequest{
		Date:      "2026-01-15",
		SleepTime: "22:30",
		WakeTime:  "06:30",
		Reasons:   []string{"beh_phone", "psy_anxiety"},
	})
	if err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	if resp.IsLate {
		t.Fatalf("22:30 is not a late bedtime")
	}
	if len(resp.Reasons) != 0 {
		t.Errorf("reasons should be dropped for on-time nights: %v", resp.Reasons)
	}
	if len(st.data.SleepRecords) != 1 || st.data.SleepRecords[0].Reasons != nil {
		t.Errorf("stored record kept reasons: %+v", st.data.SleepRecords)
	}
}

func TestRecordService_UpsertRejectsMalformedTime(t *testing.T) {
	svc := NewRecordService(NewMockStore())

	_, err := svc.Upsert(context.Background(), &domain.UpsertSleepRecordRequest{
		Date:      "2026-01-15",
		SleepTime: "25:00",
		WakeTime:  "07:00",
	})
	if !errors.Is(err, domain.ErrInvalidTime) {
		t.Errorf("err = %v, want ErrInvalidTime", err)
	}
}

func TestRecordService_UpsertReplacesSameDate(t *testing.T) {
	st := NewMockStore()
	svc := NewRecordService(st)

	for _, times := range [][2]string{{"02:00", "06:00"}, {"23:00", "07:00"}} {
		if _, err := svc.Upsert(context.Background(), &domain.UpsertSleepRecordRequest{
			Date:      "2026-01-15",
			SleepTime: times[0],
			WakeTime:  times[1],
		}); err != nil {
			t.Fatalf("Upsert: %v", err)
		}
	}

	if len(st.data.SleepRecords) != 1 {
		t.Fatalf("want one record per date, got %d", len(st.data.SleepRecords))
	}
	if st.data.SleepRecords[0].SleepTime != "23:00" {
		t.Errorf("second write should win: %+v", st.data.SleepRecords[0])
	}
}

func TestRecordService_ListNewestFirst(t *testing.T) {
	st := NewMockStore()
	st.data.SleepRecords = []domain.SleepRecord{
		{Date: "2026-01-15", SleepTime: "23:00", WakeTime: "07:00"},
		{Date: "2026-01-14", SleepTime: "02:00", WakeTime: "06:00"},
	}

	resp, err := NewRecordService(st).List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(resp.Data) != 2 {
		t.Fatalf("len = %d", len(resp.Data))
	}
	if resp.Data[0].Date != "2026-01-15" || resp.Data[0].Bucket != domain.BucketPerfect {
		t.Errorf("first row = %+v", resp.Data[0])
	}
	if resp.Data[1].Bucket != domain.BucketBad {
		t.Errorf("second row = %+v", resp.Data[1])
	}
}

func TestChecklistService_Toggle(t *testing.T) {
	st := NewMockStore()
	svc := NewChecklistService(st)

	day, err := svc.Toggle(context.Background(), "2026-01-15", "no_caffeine")
	if err != nil {
		t.Fatalf("Toggle: %v", err)
	}
	if len(day.Completed) != 1 || day.Completed[0] != "no_caffeine" {
		t.Fatalf("completed = %v", day.Completed)
	}

	day, err = svc.Toggle(context.Background(), "2026-01-15", "no_caffeine")
	if err != nil {
		t.Fatalf("Toggle back: %v", err)
	}
	if len(day.Completed) != 0 {
		t.Errorf("toggle should be its own inverse: %v", day.Completed)
	}
}

func TestChecklistService_ToggleUnknownItem(t *testing.T) {
	svc := NewChecklistService(NewMockStore())

	_, err := svc.Toggle(context.Background(), "2026-01-15", "meditate")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}
