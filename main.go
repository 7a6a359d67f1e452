// @title Literacy Assessment API
// @version 1.0
// @description Backend for Grade 7-8 Ontario literacy assessments: reading comprehension scoring and AI-assisted writing evaluation.

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /api

package main

import (
	"literacy_edu_backend/internal/app"
	"literacy_edu_backend/internal/config"
	"literacy_edu_backend/pkg/logger"
	"log"

	"github.com/joho/godotenv"
)

func main() {
	// Optional .env for local development; real deployments use the
	// environment directly.
	_ = godotenv.Load()

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	application.Run()
}
