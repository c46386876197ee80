package db

import (
	"context"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"

	"github.com/tomo-auth/backend/internal/common/constants"
	"github.com/tomo-auth/backend/internal/common/logger"
)

func NewPool(log *logger.Logger, databaseURL string) *pgxpool.Pool {
	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		log.Fatalf("failed to parse database url: %v", err)
	}

	cfg.MaxConns = constants.DBMaxConns
	cfg.MinConns = constants.DBMinConns
	cfg.MaxConnLifetime = constants.DBConnMaxLifetime
	cfg.MaxConnIdleTime = constants.DBConnMaxIdleTime
	cfg.HealthCheckPeriod = constants.DBHealthCheckPeriod
	cfg.ConnConfig.ConnectTimeout = constants.DBConnectTimeout
	cfg.ConnConfig.RuntimeParams = map[string]string{
		"application_name": "tomo-auth",
	}

	const maxAttempts = 10
	const delay = time.Second

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		pool, err := pgxpool.ConnectConfig(context.Background(), cfg)
		if err == nil {
			log.Infof("database connection pool initialized: max=%d, min=%d", cfg.MaxConns, cfg.MinConns)
			StartPoolMetrics(pool, constants.DBPoolMetricsPeriod)
			return pool
		}

		log.Warnf("failed to connect to database (attempt %d/%d): %v", attempt, maxAttempts, err)

		if attempt == maxAttempts {
			log.Fatalf("failed to connect to database after %d attempts: %v", maxAttempts, err)
			return nil
		}

		time.Sleep(delay)
	}

	log.Fatalf("failed to connect to database after %d attempts", maxAttempts)
	return nil
}
