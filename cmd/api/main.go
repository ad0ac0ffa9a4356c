package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/yraj/offerdesk/internal/pkg/logger"
	"github.com/yraj/offerdesk/internal/server"
)

// @title OfferDesk API
// @version 1.0
// @description API for managing international admissions, course fee templates and offer letter generation
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email support@offerdesk.edu

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT token for authorization

func main() {
	// Local development loads secrets from .env; missing file is fine
	_ = godotenv.Load()

	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	// Blocks until shutdown signal
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
	os.Exit(0)
}
