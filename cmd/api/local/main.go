//go:build !lambda
// +build !lambda

package main

import (
	"log"
	"os"

	"github.com/attendly/attendly-api/internal/logger"
	"github.com/attendly/attendly-api/internal/server"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		// Missing .env is fine in deployed environments where variables are
		// set directly.
		log.Printf("Warning: Error loading .env file: %v", err)
	}

	logger.InitLogger(os.Getenv("STAGE"))

	r := gin.Default()
	server.InitializeHandlers()
	server.InitializeRoutes(r)

	log.Printf("Server starting on :8000")
	if err := r.Run(":8000"); err != nil {
		log.Fatalf("Error starting server: %v", err)
	}
}
