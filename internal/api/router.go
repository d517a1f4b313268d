package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/dreamydrift/journal-api/docs"
	"github.com/dreamydrift/journal-api/internal/api/handler"
	"github.com/dreamydrift/journal-api/internal/api/middleware"
)

type Router struct {
	recordHandler    *handler.RecordHandler
	checklistHandler *handler.ChecklistHandler
	statsHandler     *handler.StatsHandler
	dumpHandler      *handler.DumpHandler
	insightsHandler  *handler.InsightsHandler
}

func NewRouter(
	recordHandler *handler.RecordHandler,
	checklistHandler *handler.ChecklistHandler,
	statsHandler *handler.StatsHandler,
	dumpHandler *handler.DumpHandler,
	insightsHandler *handler.InsightsHandler,
) *Router {
	return &Router{
		recordHandler:    recordHandler,
		checklistHandler: checklistHandler,
		statsHandler:     statsHandler,
		dumpHandler:      dumpHandler,
		insightsHandler:  insightsHandler,
	}
}

func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Recovery)
	r.Use(middleware.Logger)
	r.Use(middleware.Tracing)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	// API v1 routes
	r.Route("/v1", func(r chi.Router) {
		r.Route("/sleep-records", func(r chi.Router) {
			r.Post("/", rt.recordHandler.Upsert)
			r.Get("/", rt.recordHandler.List)
		})

		r.Get("/reasons", rt.recordHandler.Reasons)

		r.Route("/checklist", func(r chi.Router) {
			r.Get("/items", rt.checklistHandler.Items)
			r.Get("/{date}", rt.checklistHandler.Day)
			r.Post("/{date}/items/{itemId}/toggle", rt.checklistHandler.Toggle)
		})

		r.Get("/stats", rt.statsHandler.Stats)
		r.Get("/calendar", rt.statsHandler.Calendar)

		r.Route("/dump-entries", func(r chi.Router) {
			r.Get("/", rt.dumpHandler.List)
			r.Post("/", rt.dumpHandler.Create)
			r.Delete("/", rt.dumpHandler.Clear)
		})

		r.Post("/insights", rt.insightsHandler.Generate)

		r.Route("/settings", func(r chi.Router) {
			r.Get("/api-key", rt.insightsHandler.GetSettings)
			r.Put("/api-key", rt.insightsHandler.UpdateAPIKey)
		})
	})

	return r
}
