package domain

import "time"

// AnalysisTTL is how long a cached trend narrative stays usable. Expiry is
// evaluated at read time; the document keeps the stale value until it is
// overwritten.
const AnalysisTTL = 24 * time.Hour

// AnalysisCache holds the most recently generated trend narrative.
type AnalysisCache struct {
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// Expired reports whether the cached narrative must be treated as absent.
func (c *AnalysisCache) Expired(now time.Time) bool {
	if c == nil {
		return true
	}
	return now.Sub(c.Timestamp) > AnalysisTTL
}

// AppData is the aggregate root persisted as one document. Every mutation
// reads the whole document, applies one change and writes it back; there is
// no field-level update.
type AppData struct {
	SleepRecords   []SleepRecord  `json:"sleepRecords"`
	ChecklistLogs  ChecklistLogs  `json:"checklistLogs"`
	DumpEntries    []DumpEntry    `json:"dumpEntries"`
	LastDumpDate   string         `json:"lastDumpDate"`
	LatestAnalysis *AnalysisCache `json:"latestAnalysis,omitempty"`
}

// NeedsRollover reports whether the dump collection is stale: the stored
// last-dump date no longer matches today. Evaluated lazily by readers and
// writers; there is no scheduled job.
func NeedsRollover(lastDumpDate, today string) bool {
	return lastDumpDate != today
}

// RecordByDate returns the record for an exact date, or false if the date
// has no record. An absent date is not an error.
func (d *AppData) RecordByDate(date string) (SleepRecord, bool) {
	for _, r := range d.SleepRecords {
		if r.Date == date {
			return r, true
		}
	}
	return SleepRecord{}, false
}
