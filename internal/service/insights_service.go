package service

import (
	"context"
	"log"
	"time"

	"github.com/dreamydrift/journal-api/internal/domain"
	"github.com/dreamydrift/journal-api/internal/llm"
	"github.com/dreamydrift/journal-api/internal/store"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// InsightsService produces the coaching narrative over recent nights.
type InsightsService interface {
	// Generate returns an unexpired cached narrative when one exists,
	// otherwise generates a fresh one and caches it.
	Generate(ctx context.Context, windowSize int) (*domain.AnalysisResponse, error)
}

type insightsService struct {
	store store.Store
	coach llm.SleepCoachLLM
	now   func() time.Time
}

// NewInsightsService creates a new InsightsService.
func NewInsightsService(st store.Store, coach llm.SleepCoachLLM) InsightsService {
	return &insightsService{
		store: st,
		coach: coach,
		now:   time.Now,
	}
}

func (s *insightsService) Generate(ctx context.Context, windowSize int) (*domain.AnalysisResponse, error) {
	tracer := otel.Tracer("journal-api/insights")
	ctx, span := tracer.Start(ctx, "InsightsService.Generate",
		trace.WithAttributes(attribute.Int("window.days", windowSize)),
	)
	defer span.End()

	if windowSize <= 0 {
		windowSize = DefaultStatsWindowDays
	}

	data, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	// Expiry is evaluated here, at read time; the stale value stays in the
	// document until a new narrative overwrites it.
	if !data.LatestAnalysis.Expired(now) {
		span.SetAttributes(attribute.Bool("analysis.cached", true))
		return &domain.AnalysisResponse{
			Text:        data.LatestAnalysis.Text,
			GeneratedAt: data.LatestAnalysis.Timestamp,
			Cached:      true,
		}, nil
	}

	stats := ComputeStats(data.SleepRecords, windowSize, domain.LateReasons)
	labels := make([]string, len(stats.TopReasons))
	for i, r := range stats.TopReasons {
		labels[i] = r.Label
	}

	apiKey, err := s.store.APIKey(ctx)
	if err != nil {
		apiKey = ""
	}

	text, err := s.coach.GenerateAnalysis(ctx, &stats, labels, windowSize, apiKey)
	if err != nil {
		// Boundary recovery: the fallback string is cached and served like
		// any generated narrative.
		log.Printf("analysis generation failed, using fallback: %v", err)
		text = llm.AnalysisFallback
	}

	if _, err := s.store.CacheAnalysis(ctx, text); err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Bool("analysis.cached", false))
	return &domain.AnalysisResponse{
		Text:        text,
		GeneratedAt: now,
		Cached:      false,
	}, nil
}
