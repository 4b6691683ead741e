package main

import (
	"context"
	"log"

	"github.com/fitsphere/backend/config"
	"github.com/fitsphere/backend/internal/database"
	"github.com/fitsphere/backend/internal/service"
)

// Imports the built-in food and exercise catalogs. Run once at deployment;
// reruns are no-ops because the seeder upserts by name.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.NewGorm(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	if err := service.NewSeedService(db).SeedAll(context.Background()); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Println("Catalog seeding completed")
}
