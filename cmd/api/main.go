// DreamyDrift Journal API
//
// REST API for a personal sleep-habit journal.
//
//	@title			DreamyDrift Journal API
//	@version		1.0
//	@description	Nightly sleep records with quality classification, a pre-sleep checklist, a daily worry dump box and LLM coaching insights.
//
//	@BasePath	/v1
//
//	@tag.name			sleep-records
//	@tag.description	Nightly sleep record endpoints
//
//	@tag.name			checklist
//	@tag.description	Pre-sleep checklist endpoints
//
//	@tag.name			stats
//	@tag.description	Aggregation and calendar endpoints
//
//	@tag.name			dump
//	@tag.description	Daily worry dump box endpoints
//
//	@tag.name			insights
//	@tag.description	Coaching narrative endpoints
//
//	@tag.name			settings
//	@tag.description	Stored credential endpoints
package main

import (
	"context"
	"log"
	"net/http"

	"github.com/dreamydrift/journal-api/internal/api"
	"github.com/dreamydrift/journal-api/internal/api/handler"
	"github.com/dreamydrift/journal-api/internal/config"
	"github.com/dreamydrift/journal-api/internal/langfuse"
	"github.com/dreamydrift/journal-api/internal/llm"
	"github.com/dreamydrift/journal-api/internal/repository"
	"github.com/dreamydrift/journal-api/internal/seed"
	"github.com/dreamydrift/journal-api/internal/service"
	"github.com/dreamydrift/journal-api/internal/store"
	"github.com/dreamydrift/journal-api/internal/telemetry"
)

func main() {
	ctx := context.Background()

	// Load configuration
	cfg := config.Load()

	// Initialize tracing (no-op when Langfuse is not configured)
	shutdownTracer, err := telemetry.InitTracer(ctx, cfg, "journal-api")
	if err != nil {
		log.Fatalf("Failed to initialize tracing: %v", err)
	}
	defer func() {
		if err := shutdownTracer(context.Background()); err != nil {
			log.Printf("Tracer shutdown failed: %v", err)
		}
	}()

	// Connect to database
	db, err := config.NewDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Auto-migrate database schema
	if err := db.AutoMigrate(&repository.StoredDocument{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed")

	// Initialize the document store
	documentRepo := repository.NewDocumentRepository(db)
	documentStore := store.New(documentRepo)

	if cfg.Seed {
		log.Println("Seeding journal with sample data (SEED=true)...")
		if err := seed.Run(ctx, documentStore); err != nil {
			log.Fatalf("Failed to seed journal: %v", err)
		}
	}

	// Resolve coaching prompts, preferring Langfuse-managed versions
	promptCfg := langfuse.PromptLoaderConfig{
		BaseURL:     cfg.LangfuseBaseURL,
		PublicKey:   cfg.LangfusePublicKey,
		SecretKey:   cfg.LangfuseSecretKey,
		PromptLabel: cfg.LangfuseEnv,
	}
	coachPrompt := langfuse.LoadPrompt(ctx, promptCfg, "sleep-coach", llm.DefaultCoachPrompt)
	comfortPrompt := langfuse.LoadPrompt(ctx, promptCfg, "dump-comfort", llm.DefaultComfortPrompt)

	// Initialize the OpenAI-backed coach
	coach := llm.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAISleepCoachModel, coachPrompt, comfortPrompt)
	if cfg.OpenAIAPIKey == "" {
		log.Println("Warning: OpenAI API key not configured, generation uses a stored personal key or canned replies")
	}

	// Initialize services
	recordService := service.NewRecordService(documentStore)
	checklistService := service.NewChecklistService(documentStore)
	statsService := service.NewStatsService(documentStore)
	calendarService := service.NewCalendarService(documentStore)
	dumpService := service.NewDumpService(documentStore, coach)
	insightsService := service.NewInsightsService(documentStore, coach)
	settingsService := service.NewSettingsService(documentStore)

	// Initialize handlers
	recordHandler := handler.NewRecordHandler(recordService)
	checklistHandler := handler.NewChecklistHandler(checklistService)
	statsHandler := handler.NewStatsHandler(statsService, calendarService)
	dumpHandler := handler.NewDumpHandler(dumpService)
	insightsHandler := handler.NewInsightsHandler(insightsService, settingsService)

	// Setup router
	router := api.NewRouter(recordHandler, checklistHandler, statsHandler, dumpHandler, insightsHandler)
	routerHandler := router.Setup()

	// Start server
	addr := ":" + cfg.Port
	log.Printf("Starting server on %s", addr)
	if err := http.ListenAndServe(addr, routerHandler); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
