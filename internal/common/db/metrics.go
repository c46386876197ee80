package db

import (
	"time"

	"github.com/jackc/pgx/v4/pgxpool"

	"github.com/tomo-auth/backend/internal/observability/metrics"
)

// StartPoolMetrics periodically exports pool stats. The goroutine lives for
// the lifetime of the process, same as the pool.
func StartPoolMetrics(pool *pgxpool.Pool, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for range ticker.C {
			stat := pool.Stat()
			metrics.DBPoolAcquiredConnections.Set(float64(stat.AcquiredConns()))
			metrics.DBPoolIdleConnections.Set(float64(stat.IdleConns()))
			metrics.DBPoolMaxConnections.Set(float64(stat.MaxConns()))
		}
	}()
}
