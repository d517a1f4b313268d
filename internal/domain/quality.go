package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// QualityBucket classifies a night by lateness and duration.
// @Description Night quality: PERFECT, OK, LATE_BUT_RESTED or BAD.
type QualityBucket string

const (
	// BucketPerfect means asleep before midnight with at least 7h of sleep
	BucketPerfect QualityBucket = "PERFECT"
	// BucketOK means asleep before midnight but under 7h of sleep
	BucketOK QualityBucket = "OK"
	// BucketLateButRested means asleep after midnight but at least 7h of sleep
	BucketLateButRested QualityBucket = "LATE_BUT_RESTED"
	// BucketBad means asleep after midnight and under 7h of sleep
	BucketBad QualityBucket = "BAD"
)

const (
	minutesPerDay = 24 * 60

	// GoodDurationMinutes is the sleep-debt threshold (7 hours).
	GoodDurationMinutes = 7 * 60

	// lateHourEnd bounds the "late night" window: a sleep hour in
	// [0, lateHourEnd) counts as late. Falling asleep between noon and
	// 23:59 counts as on time. This is the sole lateness signal; it is a
	// coarse heuristic carried over from the product and ignores wake time.
	lateHourEnd = 12
)

// Quality is the classification derived from a sleep/wake pair.
type Quality struct {
	IsLate          bool          `json:"is_late"`
	DurationMinutes int           `json:"duration_minutes"`
	Bucket          QualityBucket `json:"bucket"`
}

// ToMinutes parses a 24-hour "HH:MM" clock string into minutes since
// midnight. Input is assumed to come from constrained widgets; a malformed
// string is a precondition violation and returns an error.
func ToMinutes(hhmm string) (int, error) {
	hs, ms, ok := strings.Cut(hhmm, ":")
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTime, hhmm)
	}
	hour, err := strconv.Atoi(hs)
	if err != nil || hour < 0 || hour > 23 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTime, hhmm)
	}
	minute, err := strconv.Atoi(ms)
	if err != nil || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTime, hhmm)
	}
	return hour*60 + minute, nil
}

// DurationMinutes computes elapsed sleep time between two minute offsets.
// sleep > wake means the night crossed midnight. Equal offsets yield zero,
// never 24 hours.
func DurationMinutes(sleepMinutes, wakeMinutes int) int {
	if sleepMinutes > wakeMinutes {
		return (minutesPerDay - sleepMinutes) + wakeMinutes
	}
	return wakeMinutes - sleepMinutes
}

// Classify derives the lateness flag, duration and quality bucket for a
// sleep/wake pair. The two axes are independent: the bucket table is
// exhaustive for all valid inputs.
func Classify(sleepTime, wakeTime string) (Quality, error) {
	sleepMin, err := ToMinutes(sleepTime)
	if err != nil {
		return Quality{}, err
	}
	wakeMin, err := ToMinutes(wakeTime)
	if err != nil {
		return Quality{}, err
	}

	q := Quality{
		IsLate:          sleepMin/60 < lateHourEnd,
		DurationMinutes: DurationMinutes(sleepMin, wakeMin),
	}
	good := q.DurationMinutes >= GoodDurationMinutes

	switch {
	case !q.IsLate && good:
		q.Bucket = BucketPerfect
	case !q.IsLate && !good:
		q.Bucket = BucketOK
	case q.IsLate && good:
		q.Bucket = BucketLateButRested
	default:
		q.Bucket = BucketBad
	}
	return q, nil
}
