package handler

import (
	"context"
	"time"

	"github.com/dreamydrift/journal-api/internal/domain"
	"github.com/dreamydrift/journal-api/internal/service"
)

// MockRecordService is a mock implementation of RecordService
type MockRecordService struct {
	upsertFunc func(ctx context.Context, req *domain.UpsertSleepRecordRequest) (*domain.SleepRecordResponse, error)
	listFunc   func(ctx context.Context) (*domain.SleepRecordListResponse, error)
}

func (m *MockRecordService) Upsert(ctx context.Context, req *domain.UpsertSleepRecordRequest) (*domain.SleepRecordResponse, error) {
	if m.upsertFunc != nil {
		return m.upsertFunc(ctx, req)
	}
	return &domain.SleepRecordResponse{
		Date:            req.Date,
		SleepTime:       req.SleepTime,
		WakeTime:        req.WakeTime,
		Reasons:         req.Reasons,
		DurationMinutes: 480,
		Bucket:          domain.BucketPerfect,
	}, nil
}

func (m *MockRecordService) List(ctx context.Context) (*domain.SleepRecordListResponse, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return &domain.SleepRecordListResponse{Data: []domain.SleepRecordResponse{}}, nil
}

// MockChecklistService is a mock implementation of ChecklistService
type MockChecklistService struct {
	dayFunc    func(ctx context.Context, date string) (*domain.ChecklistDayResponse, error)
	toggleFunc func(ctx context.Context, date, itemID string) (*domain.ChecklistDayResponse, error)
}

func (m *MockChecklistService) Day(ctx context.Context, date string) (*domain.ChecklistDayResponse, error) {
	if m.dayFunc != nil {
		return m.dayFunc(ctx, date)
	}
	return &domain.ChecklistDayResponse{Date: date, Completed: []string{}}, nil
}

func (m *MockChecklistService) Toggle(ctx context.Context, date, itemID string) (*domain.ChecklistDayResponse, error) {
	if m.toggleFunc != nil {
		return m.toggleFunc(ctx, date, itemID)
	}
	return &domain.ChecklistDayResponse{Date: date, Completed: []string{itemID}}, nil
}

// MockStatsService is a mock implementation of StatsService
type MockStatsService struct {
	computeFunc func(ctx context.Context, windowSize int) (*domain.Stats, error)
}

func (m *MockStatsService) Compute(ctx context.Context, windowSize int) (*domain.Stats, error) {
	if m.computeFunc != nil {
		return m.computeFunc(ctx, windowSize)
	}
	return &domain.Stats{
		TopReasons:           []domain.ReasonCount{},
		CategoryDistribution: []domain.CategoryCount{},
	}, nil
}

// MockCalendarService is a mock implementation of CalendarService
type MockCalendarService struct {
	monthGridFunc func(ctx context.Context, year int, month time.Month) (*domain.CalendarResponse, error)
}

func (m *MockCalendarService) MonthGrid(ctx context.Context, year int, month time.Month) (*domain.CalendarResponse, error) {
	if m.monthGridFunc != nil {
		return m.monthGridFunc(ctx, year, month)
	}
	return &domain.CalendarResponse{Year: year, Month: int(month), Slots: []domain.DaySlot{}}, nil
}

// MockDumpService is a mock implementation of DumpService
type MockDumpService struct {
	listFunc   func(ctx context.Context, filter service.DumpFilter) (*domain.DumpEntryListResponse, error)
	createFunc func(ctx context.Context, req *domain.CreateDumpEntryRequest) (*domain.DumpEntryResponse, error)
	clearFunc  func(ctx context.Context) error
}

func (m *MockDumpService) List(ctx context.Context, filter service.DumpFilter) (*domain.DumpEntryListResponse, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, filter)
	}
	return &domain.DumpEntryListResponse{
		Data:       []domain.DumpEntryResponse{},
		Pagination: domain.PaginationResponse{HasMore: false},
	}, nil
}

func (m *MockDumpService) Create(ctx context.Context, req *domain.CreateDumpEntryRequest) (*domain.DumpEntryResponse, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, req)
	}
	return &domain.DumpEntryResponse{
		ID:         "entry-1",
		Text:       req.Text,
		Timestamp:  time.Date(2026, 1, 15, 22, 0, 0, 0, time.UTC),
		AIResponse: "mock comfort",
	}, nil
}

func (m *MockDumpService) Clear(ctx context.Context) error {
	if m.clearFunc != nil {
		return m.clearFunc(ctx)
	}
	return nil
}

// MockInsightsService is a mock implementation of InsightsService
type MockInsightsService struct {
	generateFunc func(ctx context.Context, windowSize int) (*domain.AnalysisResponse, error)
}

func (m *MockInsightsService) Generate(ctx context.Context, windowSize int) (*domain.AnalysisResponse, error) {
	if m.generateFunc != nil {
		return m.generateFunc(ctx, windowSize)
	}
	return &domain.AnalysisResponse{
		Text:        "mock analysis",
		GeneratedAt: time.Date(2026, 1, 15, 22, 0, 0, 0, time.UTC),
	}, nil
}

// MockSettingsService is a mock implementation of SettingsService
type MockSettingsService struct {
	getFunc       func(ctx context.Context) (*domain.SettingsResponse, error)
	setAPIKeyFunc func(ctx context.Context, key string) (*domain.SettingsResponse, error)
}

func (m *MockSettingsService) Get(ctx context.Context) (*domain.SettingsResponse, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx)
	}
	return &domain.SettingsResponse{}, nil
}

func (m *MockSettingsService) SetAPIKey(ctx context.Context, key string) (*domain.SettingsResponse, error) {
	if m.setAPIKeyFunc != nil {
		return m.setAPIKeyFunc(ctx, key)
	}
	return &domain.SettingsResponse{HasAPIKey: key != ""}, nil
}
