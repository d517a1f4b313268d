package service

import (
	"context"

	"github.com/dreamydrift/journal-api/internal/domain"
	"github.com/dreamydrift/journal-api/internal/store"
)

// RecordService creates, replaces and lists nightly sleep records.
type RecordService interface {
	// Upsert saves the record for its date, replacing any existing one.
	Upsert(ctx context.Context, req *domain.UpsertSleepRecordRequest) (*domain.SleepRecordResponse, error)
	// List returns every record, newest date first.
	List(ctx context.Context) (*domain.SleepRecordListResponse, error)
}

type recordService struct {
	store store.Store
}

// NewRecordService creates a new RecordService.
func NewRecordService(st store.Store) RecordService {
	return &recordService{store: st}
}

func (s *recordService) Upsert(ctx context.Context, req *domain.UpsertSleepRecordRequest) (*domain.SleepRecordResponse, error) {
	q, err := domain.Classify(req.SleepTime, req.WakeTime)
	if err != nil {
		return nil, err
	}

	record := domain.SleepRecord{
		Date:      req.Date,
		SleepTime: req.SleepTime,
		WakeTime:  req.WakeTime,
		Reasons:   req.Reasons,
	}
	// Reasons only describe late nights; an on-time night stores none.
	if !q.IsLate {
		record.Reasons = nil
	}

	if _, err := s.store.UpsertSleepRecord(ctx, record); err != nil {
		return nil, err
	}

	resp := record.ToResponse()
	return &resp, nil
}

func (s *recordService) List(ctx context.Context) (*domain.SleepRecordListResponse, error) {
	data, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	resp := &domain.SleepRecordListResponse{
		Data: make([]domain.SleepRecordResponse, len(data.SleepRecords)),
	}
	for i := range data.SleepRecords {
		resp.Data[i] = data.SleepRecords[i].ToResponse()
	}
	return resp, nil
}
