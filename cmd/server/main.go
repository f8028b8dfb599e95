// cmd/server/main.go
//
// Tail-number lookup API server. Read-only consumer of the store the
// sync job maintains; may run concurrently with a sync.
package main

import (
	"log"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"github.com/airpuff/tailnumber/config"
	"github.com/airpuff/tailnumber/database"
	"github.com/airpuff/tailnumber/handlers"
)

func main() {
	log.Println("Starting Tail Number Lookup API...")

	if err := godotenv.Load(); err == nil {
		log.Println("Loaded environment overrides from .env")
	}

	configPath := "config/config.yaml"
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		configPath = ""
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	// The server may start before the first sync has run; make sure
	// the tables exist so lookups return empty instead of erroring.
	if err := database.InitSchema(db); err != nil {
		log.Fatalf("Failed to initialize schema: %v", err)
	}

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	handlers.NewAircraftHandler(db).RegisterRoutes(r)

	addr := ":" + cfg.Server.Port
	log.Printf("Server starting on http://localhost%s\n", addr)
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatalf("Error starting server: %v", err)
	}
}
