package main

import (
	"log"
	"os"

	"github.com/catalys/platform/internal/config"
	"github.com/catalys/platform/internal/database"
	"github.com/catalys/platform/internal/routes"
)

func main() {
	log.Println("Starting application...")

	// Load configuration
	cfg := config.Load()
	log.Printf("Config loaded. Database Type: %s", cfg.DatabaseType)

	// Initialize database
	log.Println("Initializing database connection...")
	if err := database.Initialize(cfg); err != nil {
		log.Printf("CRITICAL: Failed to initialize database: %v", err)
		log.Println("Server will start but will likely fail requests depending on DB.")
	} else {
		log.Println("Database initialized successfully.")
	}

	// Create upload directory for generated documents
	if err := os.MkdirAll(cfg.UploadDir, 0755); err != nil {
		log.Printf("Warning: failed to create upload directory: %v", err)
	}

	// Setup router
	log.Println("Setting up router...")
	router := routes.SetupRouter(cfg)

	// Start server
	addr := cfg.ServerHost + ":" + cfg.ServerPort
	log.Printf("Server starting on %s", addr)
	log.Printf("API: http://localhost:%s/api", cfg.ServerPort)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
