package constants

import "time"

const (
	PasswordMinLength = 8
	PasswordMaxLength = 72

	EmailMaxLength = 254

	JWTSecretMinLength = 32

	DefaultBcryptCost = 12

	DefaultMaxRequestSize = 1 << 20

	ServerReadHeaderTimeout = 5 * time.Second
	ServerReadTimeout       = 10 * time.Second
	ServerWriteTimeout      = 30 * time.Second
	ServerIdleTimeout       = 120 * time.Second

	DBMaxConns          = 25
	DBMinConns          = 5
	DBConnectTimeout    = 5 * time.Second
	DBHealthCheckPeriod = time.Minute
	DBConnMaxLifetime   = time.Hour
	DBConnMaxIdleTime   = 30 * time.Minute
	DBPoolMetricsPeriod = 30 * time.Second
)

type ContextKey string

const TraceIDKey ContextKey = "trace_id"
