package main

import (
	"context"
	"log"

	"github.com/dreamydrift/journal-api/internal/config"
	"github.com/dreamydrift/journal-api/internal/repository"
	"github.com/dreamydrift/journal-api/internal/seed"
	"github.com/dreamydrift/journal-api/internal/store"
)

func main() {
	cfg := config.Load()

	db, err := config.NewDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(&repository.StoredDocument{}); err != nil {
		log.Fatalf("Failed to migrate: %v", err)
	}

	documentRepo := repository.NewDocumentRepository(db)
	documentStore := store.New(documentRepo)

	if err := seed.Run(context.Background(), documentStore); err != nil {
		log.Fatalf("Failed to seed: %v", err)
	}

	log.Printf("Seeded journal at %s", cfg.DatabasePath)
}
