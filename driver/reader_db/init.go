package reader_db

import (
	"context"

	"reader/utils/logger"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

// InitDBConnection opens the connection pool using environment-driven
// configuration. A .env file is honored when present.
func InitDBConnection(ctx context.Context) (*pgxpool.Pool, error) {
	if err := godotenv.Load(); err != nil {
		logger.SafeInfo("No .env file loaded, using process environment")
	}

	cfg := NewDatabaseConfigFromEnv()

	pool, err := pgxpool.New(ctx, cfg.BuildConnectionString())
	if err != nil {
		logger.SafeError("Failed to create connection pool", "error", err)
		return nil, err
	}

	if err := pool.Ping(ctx); err != nil {
		logger.SafeError("Failed to ping database", "error", err)
		pool.Close()
		return nil, err
	}

	logger.SafeInfo("Connected to database", "database", cfg.DBName, "host", cfg.Host)

	return pool, nil
}
