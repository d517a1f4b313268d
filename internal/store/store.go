// Package store owns the single journal document. Every mutation is a full
// read-modify-write of the document through the whitelisted operations below;
// no other component may persist state. The store assumes one logical writer
// at a time — concurrent writers from separate processes follow
// last-writer-wins, which is accepted for a single-user local tool.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/dreamydrift/journal-api/internal/domain"
	"github.com/dreamydrift/journal-api/internal/repository"
)

const (
	// DataKey is the storage key of the journal document.
	DataKey = "dreamy_drift_data_v1"
	// apiKeyKey holds the user-supplied LLM credential. The store never
	// reads or validates the value; only the LLM boundary consumes it.
	apiKeyKey = "dreamy_drift_api_key_v1"

	dateLayout = "2006-01-02"
)

// Store exposes the sanctioned mutations of the journal document.
type Store interface {
	// Load returns the current document, defaulting every missing or
	// unparseable field to its empty form.
	Load(ctx context.Context) (*domain.AppData, error)
	// UpsertSleepRecord replaces any record with the same date and keeps
	// the collection sorted by date descending.
	UpsertSleepRecord(ctx context.Context, record domain.SleepRecord) (*domain.AppData, error)
	// ToggleChecklistItem flips membership of itemID in the set for date.
	ToggleChecklistItem(ctx context.Context, date, itemID string) (*domain.AppData, error)
	// AppendDumpEntry prepends an entry, clearing the collection first when
	// the stored last-dump date is not today.
	AppendDumpEntry(ctx context.Context, entry domain.DumpEntry) (*domain.AppData, error)
	// SetDumpResponse attaches a comfort reply to an existing entry.
	SetDumpResponse(ctx context.Context, entryID, reply string) (*domain.AppData, error)
	// ClearDumpEntries empties the dump collection unconditionally and
	// stamps today as the last dump date.
	ClearDumpEntries(ctx context.Context) (*domain.AppData, error)
	// CacheAnalysis stores the narrative with the current timestamp.
	CacheAnalysis(ctx context.Context, text string) (*domain.AppData, error)

	// APIKey returns the stored LLM credential, or "" when unset.
	APIKey(ctx context.Context) (string, error)
	// SetAPIKey stores the LLM credential.
	SetAPIKey(ctx context.Context, key string) error
}

type documentStore struct {
	repo repository.DocumentRepository
	mu   sync.Mutex
	now  func() time.Time
}

// Option configures a Store.
type Option func(*documentStore)

// WithClock overrides the time source, used by tests to pin rollover and
// cache-expiry behavior.
func WithClock(now func() time.Time) Option {
	return func(s *documentStore) { s.now = now }
}

func New(repo repository.DocumentRepository, opts ...Option) Store {
	s := &documentStore{
		repo: repo,
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *documentStore) today() string {
	return s.now().Format(dateLayout)
}

// load reads the document without locking. A missing row and a corrupted
// blob are treated identically: the caller gets a fresh default document and
// the prior value is discarded on the next write.
func (s *documentStore) load(ctx context.Context) *domain.AppData {
	data := &domain.AppData{}
	if raw, err := s.repo.Get(ctx, DataKey); err == nil {
		if err := json.Unmarshal(raw, data); err != nil {
			data = &domain.AppData{}
		}
	}
	if data.SleepRecords == nil {
		data.SleepRecords = []domain.SleepRecord{}
	}
	if data.ChecklistLogs == nil {
		data.ChecklistLogs = domain.ChecklistLogs{}
	}
	if data.DumpEntries == nil {
		data.DumpEntries = []domain.DumpEntry{}
	}
	if data.LastDumpDate == "" {
		data.LastDumpDate = s.today()
	}
	return data
}

func (s *documentStore) save(ctx context.Context, data *domain.AppData) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return s.repo.Put(ctx, DataKey, raw)
}

func (s *documentStore) Load(ctx context.Context) (*domain.AppData, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx), nil
}

func (s *documentStore) UpsertSleepRecord(ctx context.Context, record domain.SleepRecord) (*domain.AppData, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data := s.load(ctx)

	filtered := data.SleepRecords[:0]
	for _, r := range data.SleepRecords {
		if r.Date != record.Date {
			filtered = append(filtered, r)
		}
	}
	data.SleepRecords = append(filtered, record)

	// ISO dates order lexicographically, so string comparison gives the
	// same descending order as comparing parsed dates.
	sort.Slice(data.SleepRecords, func(i, j int) bool {
		return data.SleepRecords[i].Date > data.SleepRecords[j].Date
	})

	if err := s.save(ctx, data); err != nil {
		return nil, err
	}
	return data, nil
}

func (s *documentStore) ToggleChecklistItem(ctx context.Context, date, itemID string) (*domain.AppData, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data := s.load(ctx)

	current := data.ChecklistLogs[date]
	next := make([]string, 0, len(current)+1)
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
	data.ChecklistLogs[date] = next

	if err := s.save(ctx, data); err != nil {
		return nil, err
	}
	return data, nil
}

func (s *documentStore) AppendDumpEntry(ctx context.Context, entry domain.DumpEntry) (*domain.AppData, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data := s.load(ctx)

	today := s.today()
	current := data.DumpEntries
	if data.LastDumpDate != today {
		// Daily rollover: yesterday's vents do not carry over.
		current = []domain.DumpEntry{}
	}

	data.DumpEntries = append([]domain.DumpEntry{entry}, current...)
	data.LastDumpDate = today

	if err := s.save(ctx, data); err != nil {
		return nil, err
	}
	return data, nil
}

func (s *documentStore) SetDumpResponse(ctx context.Context, entryID, reply string) (*domain.AppData, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data := s.load(ctx)

	found := false
	for i := range data.DumpEntries {
		if data.DumpEntries[i].ID == entryID {
			data.DumpEntries[i].AIResponse = reply
			found = true
			break
		}
	}
	if !found {
		return nil, domain.ErrNotFound
	}

	if err := s.save(ctx, data); err != nil {
		return nil, err
	}
	return data, nil
}

func (s *documentStore) ClearDumpEntries(ctx context.Context) (*domain.AppData, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data := s.load(ctx)
	data.DumpEntries = []domain.DumpEntry{}
	data.LastDumpDate = s.today()

	if err := s.save(ctx, data); err != nil {
		return nil, err
	}
	return data, nil
}

func (s *documentStore) CacheAnalysis(ctx context.Context, text string) (*domain.AppData, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data := s.load(ctx)
	data.LatestAnalysis = &domain.AnalysisCache{
		Text:      text,
		Timestamp: s.now(),
	}

	if err := s.save(ctx, data); err != nil {
		return nil, err
	}
	return data, nil
}

func (s *documentStore) APIKey(ctx context.Context) (string, error) {
	raw, err := s.repo.Get(ctx, apiKeyKey)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", nil
		}
		return "", err
	}
	return string(raw), nil
}

func (s *documentStore) SetAPIKey(ctx context.Context, key string) error {
	return s.repo.Put(ctx, apiKeyKey, []byte(key))
}
