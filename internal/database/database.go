package database

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/battlesim/internal/config"
	"github.com/osse101/battlesim/internal/logger"
)

// PoolOptions tunes the pgx pool and the initial connection check
type PoolOptions struct {
	MaxConns        int
	MaxConnIdleTime time.Duration
	MaxConnLifetime time.Duration

	// ConnectAttempts is how many pings are tried before giving up.
	// Databases started alongside the service often need a few seconds.
	ConnectAttempts int
	RetryDelay      time.Duration
}

// OptionsFromConfig maps the DB_* settings onto PoolOptions
func OptionsFromConfig(cfg *config.Config) PoolOptions {
	return PoolOptions{
		MaxConns:        cfg.DBMaxConns,
		MaxConnIdleTime: cfg.DBMaxConnIdleTime,
		MaxConnLifetime: cfg.DBMaxConnLifetime,
	}
}

// Connect opens the pool described by cfg
func Connect(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	return NewPool(ctx, cfg.GetDBConnString(), OptionsFromConfig(cfg))
}

// NewPool creates a pool and pings it, retrying with a doubling delay
func NewPool(ctx context.Context, connString string, opts PoolOptions) (*pgxpool.Pool, error) {
	pcfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToParseConnString, err)
	}

	if opts.MaxConns > 0 {
		pcfg.MaxConns = int32(min(opts.MaxConns, math.MaxInt32))
	}
	pcfg.MinConns = min(DefaultMinConnections, pcfg.MaxConns)
	if opts.MaxConnIdleTime > 0 {
		pcfg.MaxConnIdleTime = opts.MaxConnIdleTime
	}
	if opts.MaxConnLifetime > 0 {
		pcfg.MaxConnLifetime = opts.MaxConnLifetime
	}

	pool, err := pgxpool.NewWithConfig(ctx, pcfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToCreatePool, err)
	}

	if err := pingWithRetry(ctx, pool, opts); err != nil {
		pool.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToPingDatabase, err)
	}

	logger.FromContext(ctx).Info(LogMsgSuccessfullyConnectedToDatabase,
		"host", pcfg.ConnConfig.Host,
		"database", pcfg.ConnConfig.Database,
		"max_conns", pcfg.MaxConns)
	return pool, nil
}

func pingWithRetry(ctx context.Context, pool *pgxpool.Pool, opts PoolOptions) error {
	attempts := opts.ConnectAttempts
	if attempts <= 0 {
		attempts = DefaultConnectAttempts
	}
	delay := opts.RetryDelay
	if delay <= 0 {
		delay = DefaultConnectRetryDelay
	}

	var err error
	for attempt := 1; ; attempt++ {
		if err = pool.Ping(ctx); err == nil || attempt >= attempts {
			return err
		}
		logger.FromContext(ctx).Warn(LogMsgDatabaseNotReady, "attempt", attempt, "retry_in", delay, "error", err)

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
		delay *= 2
	}
}
