package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dreamydrift/journal-api/internal/api/validation"
	"github.com/dreamydrift/journal-api/internal/domain"
	"github.com/dreamydrift/journal-api/internal/service"
	"github.com/dreamydrift/journal-api/pkg/problem"
)

type RecordHandler struct {
	service service.RecordService
}

func NewRecordHandler(service service.RecordService) *RecordHandler {
	return &RecordHandler{service: service}
}

// Upsert handles POST /v1/sleep-records
// @Summary Record a night
// @Description Save the sleep record for one date, replacing any existing record for that date. Reasons are dropped when the bedtime is not late.
// @Tags sleep-records
// @Accept json
// @Produce json
// @Param request body domain.UpsertSleepRecordRequest true "Night data"
// @Success 200 {object} domain.SleepRecordResponse "Saved record with derived quality"
// @Failure 400 {object} problem.Problem "Invalid request body"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /sleep-records [post]
func (h *RecordHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	var req domain.UpsertSleepRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	record, err := h.service.Upsert(r.Context(), &req)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidTime) {
			problem.BadRequest("Sleep and wake times must be HH:MM").Write(w)
			return
		}
		problem.InternalError("Failed to save sleep record").Write(w)
		return
	}

	writeJSON(w, http.StatusOK, record)
}

// List handles GET /v1/sleep-records
// @Summary List sleep records
// @Description Fetch every recorded night, newest date first, each with its derived quality fields.
// @Tags sleep-records
// @Produce json
// @Success 200 {object} domain.SleepRecordListResponse "All records"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /sleep-records [get]
func (h *RecordHandler) List(w http.ResponseWriter, r *http.Request) {
	response, err := h.service.List(r.Context())
	if err != nil {
		problem.InternalError("Failed to list sleep records").Write(w)
		return
	}

	writeJSON(w, http.StatusOK, response)
}

// Reasons handles GET /v1/reasons
// @Summary List the late-night reason catalog
// @Description Fixed catalog of selectable reasons for staying up late, each tagged with its category.
// @Tags catalogs
// @Produce json
// @Success 200 {array} domain.LateReason "Reason catalog"
// @Router /reasons [get]
func (h *RecordHandler) Reasons(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, domain.LateReasons)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
