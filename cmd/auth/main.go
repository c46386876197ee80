package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	authhttp "github.com/tomo-auth/backend/internal/auth/http"
	"github.com/tomo-auth/backend/internal/auth/service"
	"github.com/tomo-auth/backend/internal/common/clock"
	"github.com/tomo-auth/backend/internal/common/config"
	commoncrypto "github.com/tomo-auth/backend/internal/common/crypto"
	"github.com/tomo-auth/backend/internal/common/db"
	commonhttp "github.com/tomo-auth/backend/internal/common/http"
	"github.com/tomo-auth/backend/internal/common/logger"
	srv "github.com/tomo-auth/backend/internal/common/server"
	userrepo "github.com/tomo-auth/backend/internal/user/repository"
)

func main() {
	log, err := logger.New(os.Getenv("LOG_DIR"), "auth", os.Getenv("LOG_LEVEL"))
	if err != nil {
		os.Stderr.WriteString(fmt.Sprintf("failed to initialize logger: %v\n", err))
		os.Exit(1)
	}

	cfg, err := config.LoadAuthConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	if err := db.RunMigrations(context.Background(), cfg.DatabaseURL); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	pool := db.NewPool(log, cfg.DatabaseURL)
	defer pool.Close()

	realClock := clock.NewRealClock()
	authService := service.NewAuthService(service.AuthServiceDeps{
		Repo:        userrepo.NewPgRepository(pool),
		Hasher:      commoncrypto.NewBcryptHasher(cfg.BcryptCost),
		IDGenerator: commoncrypto.NewUUIDGenerator(),
		Clock:       realClock,
		Tokens:      service.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL, realClock),
		Policy:      service.PasswordPolicyFromConfig(cfg.PasswordPolicy),
		Log:         log,
	})

	handler := authhttp.NewHandler(authService, cfg, log)

	mux := http.NewServeMux()
	mux.Handle("/", handler)
	mux.Handle("/metrics", promhttp.Handler())

	finalHandler := commonhttp.BuildBaseHandler("auth", log, mux)

	serverConfig := srv.DefaultServerConfig(cfg.HTTPPort)
	server := srv.NewServer(serverConfig, finalHandler)

	srv.StartWithGracefulShutdown(server, log, "auth")
}
