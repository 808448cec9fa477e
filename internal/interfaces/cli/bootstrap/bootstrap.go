// Package bootstrap loads configuration, logging and the database for the
// command line entry points.
package bootstrap

import (
	"fmt"
	"io"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/infrastructure/config"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/infrastructure/database"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/shared/constants"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/shared/logger"
)

// ResolveEnv lets the ENV variable override the --env flag.
func ResolveEnv(flagValue string) string {
	if envVar := os.Getenv("ENV"); envVar != "" {
		return envVar
	}
	return flagValue
}

// Init loads config for env and initializes the process logger and gin mode.
func Init(env string) (*config.Config, logger.Interface, error) {
	cfg, err := config.Load(env)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	cfg.Server.Mode = MapEnvToGinMode(env)

	if err := logger.Init(&cfg.Logger, cfg.Server.Mode); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	gin.SetMode(cfg.Server.Mode)
	gin.DefaultWriter = io.Discard
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, nuHandlers int) {}

	return cfg, logger.NewLogger(), nil
}

// InitDatabase opens the connection pool; callers defer database.Close.
func InitDatabase(cfg *config.Config) error {
	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	return nil
}

func MapEnvToGinMode(environment string) string {
	switch environment {
	case constants.EnvProduction, "prod", gin.ReleaseMode:
		return gin.ReleaseMode
	case constants.EnvTest, "testing":
		return gin.TestMode
	default:
		return gin.DebugMode
	}
}
