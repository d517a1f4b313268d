package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/dreamydrift/journal-api/internal/service"
	"github.com/dreamydrift/journal-api/pkg/problem"
)

type StatsHandler struct {
	stats    service.StatsService
	calendar service.CalendarService
}

func NewStatsHandler(stats service.StatsService, calendar service.CalendarService) *StatsHandler {
	return &StatsHandler{stats: stats, calendar: calendar}
}

// Stats handles GET /v1/stats
// @Summary Windowed sleep statistics
// @Description Late and short-sleep counts, ranked reasons and category distribution over the most recent nights. The 30-day window ranks up to 10 reasons, every other window up to 5.
// @Tags stats
// @Produce json
// @Param window query integer false "Trailing window in nights" default(7) example(30)
// @Success 200 {object} domain.Stats "Aggregated statistics"
// @Failure 400 {object} problem.Problem "Invalid window"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /stats [get]
func (h *StatsHandler) Stats(w http.ResponseWriter, r *http.Request) {
	window := service.DefaultStatsWindowDays
	if raw := r.URL.Query().Get("window"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			problem.BadRequest("Window must be a positive integer").Write(w)
			return
		}
		window = parsed
	}

	stats, err := h.stats.Compute(r.Context(), window)
	if err != nil {
		problem.InternalError("Failed to compute statistics").Write(w)
		return
	}

	writeJSON(w, http.StatusOK, stats)
}

// Calendar handles GET /v1/calendar
// @Summary Month grid
// @Description Calendar slots for one month, Sunday-aligned with leading placeholders, each recorded night carrying its quality bucket.
// @Tags stats
// @Produce json
// @Param year query integer true "Year" example(2026)
// @Param month query integer true "Month (1-12)" example(1)
// @Success 200 {object} domain.CalendarResponse "Month grid"
// @Failure 400 {object} problem.Problem "Invalid year or month"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /calendar [get]
func (h *StatsHandler) Calendar(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil || year < 1 {
		problem.BadRequest("Year must be a positive integer").Write(w)
		return
	}

	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil || month < 1 || month > 12 {
		problem.BadRequest("Month must be between 1 and 12").Write(w)
		return
	}

	grid, err := h.calendar.MonthGrid(r.Context(), year, time.Month(month))
	if err != nil {
		problem.InternalError("Failed to build calendar").Write(w)
		return
	}

	writeJSON(w, http.StatusOK, grid)
}
