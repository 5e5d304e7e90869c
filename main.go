package main

import (
	"context"
	"fmt"

	"toolhub/config"
	"toolhub/di"
	"toolhub/driver/tool_db"
	"toolhub/job"
	"toolhub/rest"
	"toolhub/utils/logger"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
)

func main() {
	// .env is optional outside local development; load it before the
	// configuration so local overrides are visible to config.Load.
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load configuration: %v", err))
	}

	log := logger.InitLogger(cfg.Logging.Level, cfg.Logging.Format)
	log.Info("Starting server")
	if envErr != nil {
		log.Info("No .env file loaded", "reason", envErr)
	}

	ctx := context.Background()

	pool, err := tool_db.InitDBConnectionPool(ctx, cfg.Database)
	if err != nil {
		logger.Logger.Error("Failed to connect to database", "error", err)
		panic(err)
	}
	defer pool.Close()

	container := di.NewApplicationComponents(pool, cfg)

	job.VocabularyRefreshRunner(ctx, container.VocabularyGateway, cfg.Cache.VocabularyExpiry)

	e := echo.New()
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout
	e.Server.IdleTimeout = cfg.Server.IdleTimeout

	rest.RegisterRoutes(e, container, cfg)

	err = e.Start(fmt.Sprintf(":%d", cfg.Server.Port))
	if err != nil {
		logger.Logger.Error("Error starting server", "error", err)
		panic(err)
	}
}
