package service

import (
	"context"
	"encoding/json"
	"sort"

	"github.com/dreamydrift/journal-api/internal/domain"
	"github.com/dreamydrift/journal-api/internal/store"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const (
	// DefaultStatsWindowDays is the default trailing window for statistics.
	DefaultStatsWindowDays = 7

	// MonthlyStatsWindowDays widens the window for the monthly review.
	MonthlyStatsWindowDays = 30

	// topReasonLimitMonthly and topReasonLimitDefault cap the ranked reason
	// list. The cap is a presentation policy tied to the window size, not a
	// separate knob.
	topReasonLimitMonthly = 10
	topReasonLimitDefault = 5
)

// StatsService computes windowed statistics over the stored records.
type StatsService interface {
	// Compute aggregates the most recent windowSize nights.
	Compute(ctx context.Context, windowSize int) (*domain.Stats, error)
}

type statsService struct {
	store store.Store
}

// NewStatsService creates a new StatsService.
func NewStatsService(st store.Store) StatsService {
	return &statsService{store: st}
}

func (s *statsService) Compute(ctx context.Context, windowSize int) (*domain.Stats, error) {
	tracer := otel.Tracer("journal-api/stats")
	ctx, span := tracer.Start(ctx, "StatsService.Compute",
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

	result := ComputeStats(data.SleepRecords, windowSize, domain.LateReasons)

	// Attach output payload for Langfuse
	if outputJSON, err := json.Marshal(result); err == nil {
		span.SetAttributes(attribute.String("langfuse.observation.output", string(outputJSON)))
	}

	return &result, nil
}

// ComputeStats aggregates the most recent windowSize records. It is pure and
// deterministic: identical records, window and catalog always produce the
// same output. The catalog supplies the reason labels and the fixed
// reason-to-category mapping.
func ComputeStats(records []domain.SleepRecord, windowSize int, catalog []domain.LateReason) domain.Stats {
	sorted := make([]domain.SleepRecord, len(records))
	copy(sorted, records)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Date > sorted[j].Date
	})
	if len(sorted) > windowSize {
		sorted = sorted[:windowSize]
	}

	byID := make(map[string]domain.LateReason, len(catalog))
	for _, r := range catalog {
		byID[r.ID] = r
	}

	stats := domain.Stats{
		TopReasons:           []domain.ReasonCount{},
		CategoryDistribution: []domain.CategoryCount{},
		TotalTracked:         len(sorted),
	}

	reasonCounts := make(map[string]int)
	categoryCounts := make(map[domain.ReasonCategory]int)
	var reasonOrder []string // first-appearance order, the tie-break for equal counts

	for _, rec := range sorted {
		q, err := domain.Classify(rec.SleepTime, rec.WakeTime)
		if err != nil {
			// Stored records passed API validation; anything unparseable
			// contributes nothing beyond its tracked slot.
			continue
		}
		if q.IsLate {
			stats.LateCount++
		}
		if q.DurationMinutes < domain.GoodDurationMinutes {
			stats.InsufficientCount++
		}

		for _, id := range rec.Reasons {
			if _, seen := reasonCounts[id]; !seen {
				reasonOrder = append(reasonOrder, id)
			}
			reasonCounts[id]++
			if def, ok := byID[id]; ok {
				categoryCounts[def.Category]++
			}
		}
	}

	// Rank reasons by descending frequency; the stable sort preserves
	// first-appearance order between equal counts.
	ranked := make([]string, len(reasonOrder))
	copy(ranked, reasonOrder)
	sort.SliceStable(ranked, func(i, j int) bool {
		return reasonCounts[ranked[i]] > reasonCounts[ranked[j]]
	})

	limit := topReasonLimitDefault
	if windowSize == MonthlyStatsWindowDays {
		limit = topReasonLimitMonthly
	}
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	for _, id := range ranked {
		entry := domain.ReasonCount{ID: id, Label: id, Count: reasonCounts[id]}
		if def, ok := byID[id]; ok {
			entry.Label = def.Label
			entry.Category = def.Category
		}
		stats.TopReasons = append(stats.TopReasons, entry)
	}

	for _, category := range domain.ReasonCategories {
		if count := categoryCounts[category]; count > 0 {
			stats.CategoryDistribution = append(stats.CategoryDistribution, domain.CategoryCount{
				Category: category,
				Count:    count,
			})
		}
	}

	return stats
}
