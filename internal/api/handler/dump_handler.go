package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/dreamydrift/journal-api/internal/api/validation"
	"github.com/dreamydrift/journal-api/internal/domain"
	"github.com/dreamydrift/journal-api/internal/service"
	"github.com/dreamydrift/journal-api/pkg/pagination"
	"github.com/dreamydrift/journal-api/pkg/problem"
)

type DumpHandler struct {
	service service.DumpService
}

func NewDumpHandler(service service.DumpService) *DumpHandler {
	return &DumpHandler{service: service}
}

// List handles GET /v1/dump-entries
// @Summary List today's dump entries
// @Description Fetch today's free-text entries newest-first with cursor pagination. Entries from previous days are purged on the first read of a new day.
// @Tags dump
// @Produce json
// @Param limit query integer false "Results per page (1-100)" default(20)
// @Param cursor query string false "Cursor from previous response's next_cursor"
// @Success 200 {object} domain.DumpEntryListResponse "Entries with pagination"
// @Failure 400 {object} problem.Problem "Invalid query parameters"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /dump-entries [get]
func (h *DumpHandler) List(w http.ResponseWriter, r *http.Request) {
	var filter service.DumpFilter

	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			problem.BadRequest("Limit must be a positive integer").Write(w)
			return
		}
		filter.Limit = parsed
	}

	if raw := r.URL.Query().Get("cursor"); raw != "" {
		if _, err := pagination.DecodeCursor(raw); err != nil {
			problem.BadRequest("Invalid cursor").Write(w)
			return
		}
		filter.Cursor = raw
	}

	response, err := h.service.List(r.Context(), filter)
	if err != nil {
		problem.InternalError("Failed to list dump entries").Write(w)
		return
	}

	writeJSON(w, http.StatusOK, response)
}

// Create handles POST /v1/dump-entries
// @Summary Drop a worry in the dump box
// @Description Append a free-text entry. The entry is persisted first, then a short comforting reply is generated and attached; a generation failure attaches a canned reply instead of losing the note.
// @Tags dump
// @Accept json
// @Produce json
// @Param request body domain.CreateDumpEntryRequest true "Entry text"
// @Success 201 {object} domain.DumpEntryResponse "Stored entry with its reply"
// @Failure 400 {object} problem.Problem "Invalid request body"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /dump-entries [post]
func (h *DumpHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateDumpEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	entry, err := h.service.Create(r.Context(), &req)
	if err != nil {
		problem.InternalError("Failed to save dump entry").Write(w)
		return
	}

	writeJSON(w, http.StatusCreated, entry)
}

// Clear handles DELETE /v1/dump-entries
// @Summary Clear the dump box
// @Description Remove every entry immediately instead of waiting for the daily rollover.
// @Tags dump
// @Success 204 "Dump box emptied"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /dump-entries [delete]
func (h *DumpHandler) Clear(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Clear(r.Context()); err != nil {
		problem.InternalError("Failed to clear dump entries").Write(w)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
