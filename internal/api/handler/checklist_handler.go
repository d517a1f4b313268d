package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dreamydrift/journal-api/internal/domain"
	"github.com/dreamydrift/journal-api/internal/service"
	"github.com/dreamydrift/journal-api/pkg/problem"
)

type ChecklistHandler struct {
	service service.ChecklistService
}

func NewChecklistHandler(service service.ChecklistService) *ChecklistHandler {
	return &ChecklistHandler{service: service}
}

// Items handles GET /v1/checklist/items
// @Summary List the pre-sleep checklist catalog
// @Description Fixed catalog of pre-sleep habits shown on the daily checklist.
// @Tags checklist
// @Produce json
// @Success 200 {array} domain.ChecklistItem "Checklist catalog"
// @Router /checklist/items [get]
func (h *ChecklistHandler) Items(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, domain.ChecklistItems)
}

// Day handles GET /v1/checklist/{date}
// @Summary Get a day's checklist state
// @Description Completed item IDs for one date. A date with no completions returns an empty list, not an error.
// @Tags checklist
// @Produce json
// @Param date path string true "Date (YYYY-MM-DD)" example(2026-01-15)
// @Success 200 {object} domain.ChecklistDayResponse "Day state"
// @Failure 400 {object} problem.Problem "Invalid date"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /checklist/{date} [get]
func (h *ChecklistHandler) Day(w http.ResponseWriter, r *http.Request) {
	date, ok := parseDateParam(w, r)
	if !ok {
		return
	}

	day, err := h.service.Day(r.Context(), date)
	if err != nil {
		problem.InternalError("Failed to load checklist").Write(w)
		return
	}

	writeJSON(w, http.StatusOK, day)
}

// Toggle handles POST /v1/checklist/{date}/items/{itemId}/toggle
// @Summary Toggle a checklist item
// @Description Flip one item's completion state for a date. Toggling twice restores the original state.
// @Tags checklist
// @Produce json
// @Param date path string true "Date (YYYY-MM-DD)" example(2026-01-15)
// @Param itemId path string true "Checklist item ID" example(no_caffeine)
// @Success 200 {object} domain.ChecklistDayResponse "Day state after the toggle"
// @Failure 400 {object} problem.Problem "Invalid date"
// @Failure 404 {object} problem.Problem "Unknown checklist item"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /checklist/{date}/items/{itemId}/toggle [post]
func (h *ChecklistHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	date, ok := parseDateParam(w, r)
	if !ok {
		return
	}

	day, err := h.service.Toggle(r.Context(), date, chi.URLParam(r, "itemId"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("Unknown checklist item").Write(w)
			return
		}
		problem.InternalError("Failed to toggle checklist item").Write(w)
		return
	}

	writeJSON(w, http.StatusOK, day)
}

func parseDateParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	date := chi.URLParam(r, "date")
	if _, err := time.Parse("2006-01-02", date); err != nil {
		problem.BadRequest("Date must be YYYY-MM-DD").Write(w)
		return "", false
	}
	return date, true
}
