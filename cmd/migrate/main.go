// Command main applies the database schema for the Showcase API. The
// server only automigrates outside production, so deployments run this
// explicitly.
package main

import (
	"log"

	"showcase/internal/config"
	"showcase/internal/database"
	"showcase/internal/models"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(&models.User{}, &models.Post{}); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	log.Println("Schema applied")
}
