package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"shortlink/internal/auth"
	"shortlink/internal/config"
	"shortlink/internal/http/server"
	"shortlink/internal/logger"
	"shortlink/internal/repository"
	"shortlink/internal/repository/inmemory"
	"shortlink/internal/repository/postgres"
	"shortlink/internal/services/links"
	"shortlink/internal/services/slug"
	"shortlink/internal/services/suggest"
)

const shutdownTimeout = 10 * time.Second

func main() {
	log := logger.NewLogger()
	cfg := config.NewConfig()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var (
		storage repository.Storage
		err     error
	)
	switch cfg.StorageBackend {
	case config.BackendPostgres:
		storage, err = postgres.NewStorage(ctx, cfg.DatabaseDSN)
		if err != nil {
			log.Error().Err(err).Msg("Could not connect to Postgres")
			os.Exit(1)
		}
	case config.BackendMemory:
		storage = inmemory.NewStorage()
	default:
		log.Error().Str("backend", cfg.StorageBackend).Msg("Unknown storage backend")
		os.Exit(1)
	}
	defer storage.Close()

	verifier, err := auth.NewJWTVerifier(cfg.JWTSecretKey)
	if err != nil {
		log.Error().Err(err).Msg("Could not initialize token verifier")
		os.Exit(1)
	}

	generator := slug.NewGenerator(storage)
	suggester := suggest.NewService(cfg.SuggestAPIURL, cfg.SuggestAPIKey, log)
	linkService := links.NewService(storage, generator, links.Config{
		OpenPublicWrites: cfg.OpenPublicWrites,
		ShortlinkHosts:   cfg.ShortlinkHosts,
	}, log)

	srv, err := server.NewServer(log, *cfg, linkService, suggester, verifier)
	if err != nil {
		log.Error().Err(err).Msg("Could not initialize server")
		os.Exit(1)
	}

	serverErr := make(chan error, 1)
	go func() { serverErr <- srv.Start(ctx) }()

	log.Info().Str("backend", cfg.StorageBackend).Msg("Service is up and running")

	select {
	case <-ctx.Done():
		log.Info().Msg("Shutdown signal received")
	case err := <-serverErr:
		if err != nil {
			log.Error().Err(err).Msg("Server stopped with error")
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Graceful shutdown failed")
	}
}
