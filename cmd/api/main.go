package main

import (
	"os"

	_ "rentpulse/docs"
	"rentpulse/internal/adapter/http/routes"
	"rentpulse/internal/config"
	"rentpulse/internal/logger"

	_ "github.com/joho/godotenv/autoload"
)

// @title           RentPulse API
// @version         1.0
// @description     Maintenance pricing, revenue forecasts and AI pricing advisor backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	if err := logger.Init(os.Getenv("LOG_LEVEL"), os.Getenv("LOG_FILE")); err != nil {
		logger.Log.Fatalf("Failed to initialize logger: %v", err)
	}

	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		logger.Log.Fatalf("Failed to load configuration: %v", err)
	}

	routes.Run(cfg)
}
