package service

import (
	"context"

	"github.com/dreamydrift/journal-api/internal/domain"
	"github.com/dreamydrift/journal-api/internal/store"
)

// SettingsService manages the stored personal LLM credential.
type SettingsService interface {
	// Get reports whether a personal key is stored.
	Get(ctx context.Context) (*domain.SettingsResponse, error)
	// SetAPIKey stores a personal key, or clears it when empty.
	SetAPIKey(ctx context.Context, key string) (*domain.SettingsResponse, error)
}

type settingsService struct {
	store store.Store
}

// NewSettingsService creates a new SettingsService.
func NewSettingsService(st store.Store) SettingsService {
	return &settingsService{store: st}
}

func (s *settingsService) Get(ctx context.Context) (*domain.SettingsResponse, error) {
	key, err := s.store.APIKey(ctx)
	if err != nil {
		return nil, err
	}
	return &domain.SettingsResponse{HasAPIKey: key != ""}, nil
}

func (s *settingsService) SetAPIKey(ctx context.Context, key string) (*domain.SettingsResponse, error) {
	if err := s.store.SetAPIKey(ctx, key); err != nil {
		return nil, err
	}
	return &domain.SettingsResponse{HasAPIKey: key != ""}, nil
}
