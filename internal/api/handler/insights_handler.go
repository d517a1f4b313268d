package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/dreamydrift/journal-api/internal/api/validation"
	"github.com/dreamydrift/journal-api/internal/domain"
	"github.com/dreamydrift/journal-api/internal/service"
	"github.com/dreamydrift/journal-api/pkg/problem"
)

type InsightsHandler struct {
	insights service.InsightsService
	settings service.SettingsService
}

func NewInsightsHandler(insights service.InsightsService, settings service.SettingsService) *InsightsHandler {
	return &InsightsHandler{insights: insights, settings: settings}
}

// Generate handles POST /v1/insights
// @Summary Generate a coaching narrative
// @Description Return the cached narrative while it is under 24h old, otherwise generate a fresh one over the requested window and cache it. A generation failure returns a canned narrative rather than an error.
// @Tags insights
// @Produce json
// @Param window query integer false "Trailing window in nights" default(7) example(30)
// @Success 200 {object} domain.AnalysisResponse "Narrative, fresh or cached"
// @Failure 400 {object} problem.Problem "Invalid window"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /insights [post]
func (h *InsightsHandler) Generate(w http.ResponseWriter, r *http.Request) {
	window := service.DefaultStatsWindowDays
	if raw := r.URL.Query().Get("window"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			problem.BadRequest("Window must be a positive integer").Write(w)
			return
		}
		window = parsed
	}

	analysis, err := h.insights.Generate(r.Context(), window)
	if err != nil {
		problem.InternalError("Failed to generate insights").Write(w)
		return
	}

	writeJSON(w, http.StatusOK, analysis)
}

// GetSettings handles GET /v1/settings/api-key
// @Summary Check the stored LLM credential
// @Description Report whether a personal API key is stored. The key itself is never returned.
// @Tags settings
// @Produce json
// @Success 200 {object} domain.SettingsResponse "Credential state"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /settings/api-key [get]
func (h *InsightsHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.settings.Get(r.Context())
	if err != nil {
		problem.InternalError("Failed to load settings").Write(w)
		return
	}

	writeJSON(w, http.StatusOK, settings)
}

// UpdateAPIKey handles PUT /v1/settings/api-key
// @Summary Store a personal LLM credential
// @Description Store an API key that overrides the server's configured one for generation calls. An empty key clears the stored credential.
// @Tags settings
// @Accept json
// @Produce json
// @Param request body domain.UpdateAPIKeyRequest true "Key to store, or empty to clear"
// @Success 200 {object} domain.SettingsResponse "Credential state after the update"
// @Failure 400 {object} problem.Problem "Invalid request body"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /settings/api-key [put]
func (h *InsightsHandler) UpdateAPIKey(w http.ResponseWriter, r *http.Request) {
	var req domain.UpdateAPIKeyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	settings, err := h.settings.SetAPIKey(r.Context(), req.APIKey)
	if err != nil {
		problem.InternalError("Failed to store API key").Write(w)
		return
	}

	writeJSON(w, http.StatusOK, settings)
}
