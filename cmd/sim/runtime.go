package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/battlesim/internal/bootstrap"
	"github.com/osse101/battlesim/internal/config"
	"github.com/osse101/battlesim/internal/database"
	"github.com/osse101/battlesim/internal/event"
	"github.com/osse101/battlesim/internal/logger"
)

// cliLogLevel applies unless LOG_LEVEL is set explicitly
const cliLogLevel = "warn"

// runtime is the wired application a command runs against. Without DB_HOST
// discoveries and stats live only for the duration of the command.
type runtime struct {
	cfg      *config.Config
	pool     *pgxpool.Pool
	services *bootstrap.Services
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadLocal()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	initLogger(cfg)
	return cfg, nil
}

// initLogger logs to stderr so narration on stdout stays readable
func initLogger(cfg *config.Config) {
	level := cfg.LogLevel
	if _, ok := os.LookupEnv("LOG_LEVEL"); !ok {
		level = cliLogLevel
	}
	addSource := cfg.Environment == "dev" || cfg.Environment == "development"
	logCfg := logger.NewConfig(level, cfg.LogFormat, cfg.ServiceName, cfg.Version, cfg.Environment, addSource)
	logger.InitLoggerWithWriter(logCfg, os.Stderr)
}

func openPool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	if !cfg.UsesDatabase() {
		return nil, fmt.Errorf("DB_HOST is not set")
	}
	return database.Connect(ctx, cfg)
}

func openRuntime(ctx context.Context) (*runtime, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	rt := &runtime{cfg: cfg}
	if cfg.UsesDatabase() {
		if rt.pool, err = openPool(ctx, cfg); err != nil {
			return nil, err
		}
		if _, err := database.Migrate(ctx, rt.pool); err != nil {
			rt.Close()
			return nil, err
		}
	}

	bus := event.NewMemoryBus()
	services, err := bootstrap.InitializeServices(cfg, bootstrap.InitializeRepositories(rt.pool), bus)
	if err != nil {
		rt.Close()
		return nil, err
	}
	if err := bootstrap.RegisterEventHandlers(bootstrap.EventHandlerDependencies{
		EventBus:     bus,
		StatsService: services.Stats,
	}); err != nil {
		rt.Close()
		return nil, err
	}
	rt.services = services
	return rt, nil
}

func (rt *runtime) Close() {
	if rt.pool != nil {
		rt.pool.Close()
	}
}
