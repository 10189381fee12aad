package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/battlesim/internal/bootstrap"
	"github.com/osse101/battlesim/internal/config"
	"github.com/osse101/battlesim/internal/database"
	"github.com/osse101/battlesim/internal/handler"
	"github.com/osse101/battlesim/internal/logger"
	"github.com/osse101/battlesim/internal/server"
)

const shutdownTimeout = 15 * time.Second

//	@title			Battlesim API
//	@version		1.0
//	@description	Turn-based creature battles between team Red and team Blue.
//	@BasePath		/

//	@securityDefinitions.apikey	ApiKeyAuth
//	@in							header
//	@name						X-API-Key

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "battlesim: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		return err
	}
	defer logFile.Close()

	for _, w := range config.EnvWarnings() {
		logger.Warn(w)
	}

	ctx := context.Background()

	var pool *pgxpool.Pool
	if cfg.UsesDatabase() {
		pool, err = database.Connect(ctx, cfg)
		if err != nil {
			return err
		}
		defer pool.Close()

		if _, err := database.Migrate(ctx, pool); err != nil {
			return err
		}
	}

	repos := bootstrap.InitializeRepositories(pool)

	bus, publisher, err := bootstrap.InitializeEventSystem(cfg)
	if err != nil {
		return err
	}

	services, err := bootstrap.InitializeServices(cfg, repos, publisher)
	if err != nil {
		return err
	}

	if err := bootstrap.RegisterEventHandlers(bootstrap.EventHandlerDependencies{
		EventBus:     bus,
		StatsService: services.Stats,
	}); err != nil {
		return err
	}

	maintenance := bootstrap.StartMaintenance(ctx, services)

	// a nil *pgxpool.Pool must not reach the readiness probe as a non-nil interface
	var db handler.Pinger
	if pool != nil {
		db = pool
	}

	srv := server.NewServer(server.Config{
		Port:           cfg.Port,
		APIKey:         cfg.APIKey,
		TrustedProxies: cfg.TrustedProxies,
		Version:        cfg.Version,
	}, server.Services{
		Matches: services.Matches,
		Secrets: services.Discovery,
		Stats:   services.Stats,
		Dex:     services.Provider,
		DB:      db,
	})

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("Starting server", "port", cfg.Port)
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stop:
		logger.Info("Received shutdown signal", "signal", sig.String())
	case err := <-serverErr:
		if err != nil {
			logger.Error("Server failed", "error", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()
	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:             srv,
		ResilientPublisher: publisher,
		Maintenance:        maintenance,
	})
	return nil
}
