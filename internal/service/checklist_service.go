package service

import (
	"context"

	"github.com/dreamydrift/journal-api/internal/domain"
	"github.com/dreamydrift/journal-api/internal/store"
)

// ChecklistService reads and toggles the daily pre-sleep checklist.
type ChecklistService interface {
	// Day returns the completed item IDs for a date.
	Day(ctx context.Context, date string) (*domain.ChecklistDayResponse, error)
	// Toggle flips one item's completion for a date. Toggling twice
	// restores the original state.
	Toggle(ctx context.Context, date, itemID string) (*domain.ChecklistDayResponse, error)
}

type checklistService struct {
	store store.Store
}

// NewChecklistService creates a new ChecklistService.
func NewChecklistService(st store.Store) ChecklistService {
	return &checklistService{store: st}
}

func (s *checklistService) Day(ctx context.Context, date string) (*domain.ChecklistDayResponse, error) {
	data, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	return dayResponse(data, date), nil
}

func (s *checklistService) Toggle(ctx context.Context, date, itemID string) (*domain.ChecklistDayResponse, error) {
	known := false
	for _, item := range domain.ChecklistItems {
		if item.ID == itemID {
			known = true
			break
		}
	}
	if !known {
		return nil, domain.ErrNotFound
	}

	data, err := s.store.ToggleChecklistItem(ctx, date, itemID)
	if err != nil {
		return nil, err
	}
	return dayResponse(data, date), nil
}

func dayResponse(data *domain.AppData, date string) *domain.ChecklistDayResponse {
	completed := data.ChecklistLogs[date]
	if completed == nil {
		completed = []string{}
	}
	return &domain.ChecklistDayResponse{Date: date, Completed: completed}
}
