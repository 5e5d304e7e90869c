package tool_db

import (
	"context"
	"os"

	"toolhub/config"
	"toolhub/utils/logger"

	"github.com/jackc/pgx/v5/pgxpool"
)

// InitDBConnectionPool opens a pgx pool against the configured database.
// Credentials come from the environment; pool sizing and the connect
// timeout come from the loaded database configuration.
func InitDBConnectionPool(ctx context.Context, dbCfg config.DatabaseConfig) (*pgxpool.Pool, error) {
	cfg := NewDatabaseConfigFromEnv()

	pool, err := pgxpool.New(ctx, cfg.BuildConnectionString(dbCfg))
	if err != nil {
		logger.Logger.Error("Failed to create database pool", "error", err)
		return nil, err
	}

	if err := pool.Ping(ctx); err != nil {
		logger.Logger.Error("Failed to ping database", "error", err)
		pool.Close()
		return nil, err
	}

	logger.Logger.Info("Connected to database", "database", os.Getenv("DB_NAME"))

	return pool, nil
}
