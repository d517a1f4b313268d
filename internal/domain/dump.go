package domain

import "time"

// DumpEntry is a free-text pre-sleep vent. The collection is kept
// newest-first and is purged on the first read or write after the stored
// last-dump date stops matching today.
type DumpEntry struct {
	ID         string    `json:"id"`
	Text       string    `json:"text"`
	Timestamp  time.Time `json:"timestamp"`
	AIResponse string    `json:"aiResponse,omitempty"`
}

// CreateDumpEntryRequest is the request body for venting a note.
// @Description Free-text note to drop into the dump box.
type CreateDumpEntryRequest struct {
	Text string `json:"text" validate:"required,max=2000" example:"Can't stop thinking about tomorrow's meeting"`
}

// DumpEntryResponse is the response body for a single dump entry.
// @Description Stored note with its optional comfort reply.
type DumpEntryResponse struct {
	ID         string    `json:"id" example:"8f14e45f-ceea-4e07-8c65-1b9f0534a129"`
	Text       string    `json:"text"`
	Timestamp  time.Time `json:"timestamp" example:"2026-01-15T23:41:02Z"`
	AIResponse string    `json:"ai_response,omitempty"`
}

func (e *DumpEntry) ToResponse() DumpEntryResponse {
	return DumpEntryResponse{
		ID:         e.ID,
		Text:       e.Text,
		Timestamp:  e.Timestamp,
		AIResponse: e.AIResponse,
	}
}

// DumpEntryListResponse is the response body for listing dump entries.
// @Description Paginated notes, newest first.
type DumpEntryListResponse struct {
	Data       []DumpEntryResponse `json:"data"`
	Pagination PaginationResponse  `json:"pagination"`
}

// PaginationResponse contains pagination metadata.
// @Description Cursor-based pagination info.
type PaginationResponse struct {
	// Cursor for fetching the next page (empty if no more pages)
	NextCursor string `json:"next_cursor,omitempty"`
	// True if more results are available
	HasMore bool `json:"has_more" example:"false"`
}
