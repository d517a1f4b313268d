package seed

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/dreamydrift/journal-api/internal/domain"
	"github.com/dreamydrift/journal-api/internal/store"
)

const seededDays = 40

// Run fills the journal with sample nights and checklist completions. Safe
// to call multiple times: records upsert by date.
func Run(ctx context.Context, st store.Store) error {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	now := time.Now().UTC()

	for i := 1; i <= seededDays; i++ {
		date := now.AddDate(0, 0, -i).Format("2006-01-02")

		record := domain.SleepRecord{Date: date}
		if rng.Float32() < 0.4 {
			// A late night: asleep after midnight, sometimes short.
			record.SleepTime = fmt.Sprintf("%02d:%02d", rng.Intn(3), rng.Intn(60))
			record.WakeTime = fmt.Sprintf("%02d:%02d", 6+rng.Intn(4), rng.Intn(60))
			record.Reasons = sampleReasons(rng)
		} else {
			record.SleepTime = fmt.Sprintf("%02d:%02d", 22+rng.Intn(2), rng.Intn(60))
			record.WakeTime = fmt.Sprintf("%02d:%02d", 6+rng.Intn(3), rng.Intn(60))
		}

		if _, err := st.UpsertSleepRecord(ctx, record); err != nil {
			return fmt.Errorf("failed to seed record for %s: %w", date, err)
		}

		for _, item := range domain.ChecklistItems {
			if rng.Float32() < 0.5 {
				if _, err := st.ToggleChecklistItem(ctx, date, item.ID); err != nil {
					return fmt.Errorf("failed to seed checklist for %s: %w", date, err)
				}
			}
		}
	}

	log.Println("Seed completed")
	return nil
}

func sampleReasons(rng *rand.Rand) []string {
	count := 1 + rng.Intn(3)
	picked := make([]string, 0, count)
	for _, idx := range rng.Perm(len(domain.LateReasons))[:count] {
		picked = append(picked, domain.LateReasons[idx].ID)
	}
	return picked
}
