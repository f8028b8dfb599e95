// cmd/sync/main.go
//
// One-shot FAA data sync: download the registry archive, detect
// per-file changes and import what changed. Invoked with no arguments
// (systemd timer or cron); exits 0 on success, including the nothing-
// changed case, and 1 on any unrecoverable failure.
package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/airpuff/tailnumber/config"
	"github.com/airpuff/tailnumber/database"
	"github.com/airpuff/tailnumber/services"
)

func main() {
	log.Println("Starting FAA Aircraft Data Sync...")

	// .env is optional; it carries local overrides like FAA_DB_PATH.
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded environment overrides from .env")
	}

	configPath := "config/config.yaml"
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		configPath = ""
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Printf("ERROR: Failed to load configuration: %v", err)
		os.Exit(1)
	}

	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Printf("ERROR: Failed to open database: %v", err)
		os.Exit(1)
	}
	defer db.Close()

	updated, err := services.NewSyncService(db, cfg).Run()
	if err != nil {
		log.Printf("ERROR: Sync failed: %v", err)
		os.Exit(1)
	}

	if updated {
		log.Println("Sync complete: changes applied.")
	} else {
		log.Println("Sync complete: no changes.")
	}
}
