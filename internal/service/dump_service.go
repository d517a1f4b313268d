package service

import (
	"context"
	"log"
	"time"

	"github.com/dreamydrift/journal-api/internal/domain"
	"github.com/dreamydrift/journal-api/internal/llm"
	"github.com/dreamydrift/journal-api/internal/store"
	"github.com/dreamydrift/journal-api/pkg/pagination"
	"github.com/google/uuid"
)

// DumpFilter contains paging parameters for listing dump entries.
type DumpFilter struct {
	Limit  int
	Cursor string
}

// DumpService manages the daily free-text dump box.
type DumpService interface {
	// List returns today's entries newest-first, applying the daily
	// rollover before serving anything stale.
	List(ctx context.Context, filter DumpFilter) (*domain.DumpEntryListResponse, error)
	// Create appends an entry and attaches a comfort reply.
	Create(ctx context.Context, req *domain.CreateDumpEntryRequest) (*domain.DumpEntryResponse, error)
	// Clear empties the dump box.
	Clear(ctx context.Context) error
}

type dumpService struct {
	store   store.Store
	comfort llm.SleepCoachLLM
	now     func() time.Time
}

// NewDumpService creates a new DumpService.
func NewDumpService(st store.Store, comfort llm.SleepCoachLLM) DumpService {
	return &dumpService{
		store:   st,
		comfort: comfort,
		now:     time.Now,
	}
}

func (s *dumpService) List(ctx context.Context, filter DumpFilter) (*domain.DumpEntryListResponse, error) {
	data, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	today := s.now().Format("2006-01-02")
	if domain.NeedsRollover(data.LastDumpDate, today) {
		// First read after day rollover purges yesterday's vents.
		data, err = s.store.ClearDumpEntries(ctx)
		if err != nil {
			return nil, err
		}
	}

	entries := data.DumpEntries

	// The collection is already newest-first; a cursor skips everything at
	// or before the marked entry.
	if filter.Cursor != "" {
		if cursor, err := pagination.DecodeCursor(filter.Cursor); err == nil && cursor != nil {
			for i, e := range entries {
				if e.ID == cursor.ID {
					entries = entries[i+1:]
					break
				}
			}
		}
	}

	limit := pagination.NormalizeLimit(filter.Limit)
	hasMore := len(entries) > limit
	if hasMore {
		entries = entries[:limit]
	}

	resp := &domain.DumpEntryListResponse{
		Data:       make([]domain.DumpEntryResponse, len(entries)),
		Pagination: domain.PaginationResponse{HasMore: hasMore},
	}
	for i := range entries {
		resp.Data[i] = entries[i].ToResponse()
	}

	if hasMore && len(entries) > 0 {
		last := entries[len(entries)-1]
		cursor := &pagination.Cursor{ID: last.ID, Timestamp: last.Timestamp}
		resp.Pagination.NextCursor = cursor.Encode()
	}

	return resp, nil
}

func (s *dumpService) Create(ctx context.Context, req *domain.CreateDumpEntryRequest) (*domain.DumpEntryResponse, error) {
	entry := domain.DumpEntry{
		ID:        uuid.NewString(),
		Text:      req.Text,
		Timestamp: s.now(),
	}

	// Persist before calling out: a generation failure must never lose the
	// note itself.
	if _, err := s.store.AppendDumpEntry(ctx, entry); err != nil {
		return nil, err
	}

	apiKey, err := s.store.APIKey(ctx)
	if err != nil {
		apiKey = ""
	}

	reply, err := s.comfort.GenerateComfort(ctx, req.Text, apiKey)
	if err != nil {
		log.Printf("comfort generation failed, using fallback: %v", err)
		reply = llm.ComfortFallback
	}

	data, err := s.store.SetDumpResponse(ctx, entry.ID, reply)
	if err != nil {
		return nil, err
	}

	for i := range data.DumpEntries {
		if data.DumpEntries[i].ID == entry.ID {
			resp := data.DumpEntries[i].ToResponse()
			return &resp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *dumpService) Clear(ctx context.Context) error {
	_, err := s.store.ClearDumpEntries(ctx)
	return err
}
