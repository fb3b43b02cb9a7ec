package main

import (
	"log"                         // log package is needed for logging
	"todo_system/internal/api"    // Custom package for API handlers and routing
	"todo_system/internal/config" // Custom package for configuration
	"todo_system/internal/store"  // Custom package for the in-memory store

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logrus for structured logging
)

// Main function to set up and run the server
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Setup logger
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	// All state lives in this store for the lifetime of the process
	st := store.New(cfg.FreeTodoLimit)

	// Setup Gin
	r := api.NewRouter(st) // Gin router instance with all routes bound

	// Set trusted proxies for Gin
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}

	log.Println("Server running on " + cfg.AppPort) // Log server start
	r.Run(":" + cfg.AppPort)                        // Start the server on port cfg.AppPort
}
