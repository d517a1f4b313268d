package service

import (
	"context"
	"sort"
	"time"

	"github.com/dreamydrift/journal-api/internal/domain"
)

// MockStore is an in-memory implementation of store.Store for service tests.
type MockStore struct {
	data   *domain.AppData
	apiKey string
	now    func() time.Time
	err    error
}

func NewMockStore() *MockStore {
	return &MockStore{
		data: &domain.AppData{
			SleepRecords:  []domain.SleepRecord{},
			ChecklistLogs: domain.ChecklistLogs{},
			DumpEntries:   []domain.DumpEntry{},
			LastDumpDate:  "2026-01-15",
		},
		now: func() time.Time { return time.Date(2026, 1, 15, 22, 0, 0, 0, time.UTC) },
	}
}

func (m *MockStore) Load(ctx context.Context) (*domain.AppData, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.data, nil
}

func (m *MockStore) UpsertSleepRecord(ctx context.Context, record domain.SleepRecord) (*domain.AppData, error) {
	if m.err != nil {
		return nil, m.err
	}
	filtered := m.data.SleepRecords[:0]
	for _, r := range m.data.SleepRecords {
		if r.Date != record.Date {
			filtered = append(filtered, r)
		}
	}
	m.data.SleepRecords = append(filtered, record)
	sort.Slice(m.data.SleepRecords, func(i, j int) bool {
		return m.data.SleepRecords[i].Date > m.data.SleepRecords[j].Date
	})
	return m.data, nil
}

func (m *MockStore) ToggleChecklistItem(ctx context.Context, date, itemID string) (*domain.AppData, error) {
	if m.err != nil {
		return nil, m.err
	}
	current := m.data.ChecklistLogs[date]
	next := []string{}
	removed := false
	for _, id := range current {
		if id == itemID {
			removed = true
			continue
		}
		next = append(next, id)
	}
	if !removed {
		next = append(next, itemID)
	}
	m.data.ChecklistLogs[date] = next
	return m.data, nil
}

func (m *MockStore) AppendDumpEntry(ctx context.Context, entry domain.DumpEntry) (*domain.AppData, error) {
	if m.err != nil {
		return nil, m.err
	}
	today := m.now().Format("2006-01-02")
	current := m.data.DumpEntries
	if m.data.LastDumpDate != today {
		current = []domain.DumpEntry{}
	}
	m.data.DumpEntries = append([]domain.DumpEntry{entry}, current...)
	m.data.LastDumpDate = today
	return m.data, nil
}

func (m *MockStore) SetDumpResponse(ctx context.Context, entryID, reply string) (*domain.AppData, error) {
	if m.err != nil {
		return nil, m.err
	}
	for i := range m.data.DumpEntries {
		if m.data.DumpEntries[i].ID == entryID {
			m.data.DumpEntries[i].AIResponse = reply
			return m.data, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *MockStore) ClearDumpEntries(ctx context.Context) (*domain.AppData, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.data.DumpEntries = []domain.DumpEntry{}
	m.data.LastDumpDate = m.now().Format("2006-01-02")
	return m.data, nil
}

func (m *MockStore) CacheAnalysis(ctx context.Context, text string) (*domain.AppData, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.data.LatestAnalysis = &domain.AnalysisCache{Text: text, Timestamp: m.now()}
	return m.data, nil
}

func (m *MockStore) APIKey(ctx context.Context) (string, error) {
	return m.apiKey, nil
}

func (m *MockStore) SetAPIKey(ctx context.Context, key string) error {
	m.apiKey = key
	return nil
}

// MockCoach is a mock implementation of llm.SleepCoachLLM.
type MockCoach struct {
	analysisFunc func(ctx context.Context, stats *domain.Stats, labels []string, windowDays int, apiKey string) (string, error)
	comfortFunc  func(ctx context.Context, text, apiKey string) (string, error)
}

func (m *MockCoach) GenerateAnalysis(ctx context.Context, stats *domain.Stats, labels []string, windowDays int, apiKey string) (string, error) {
	if m.analysisFunc != nil {
		return m.analysisFunc(ctx, stats, labels, windowDays, apiKey)
	}
	return "mock analysis", nil
}

func (m *MockCoach) GenerateComfort(ctx context.Context, text, apiKey string) (string, error) {
	if m.comfortFunc != nil {
		return m.comfortFunc(ctx, text, apiKey)
	}
	return "mock comfort", nil
}
