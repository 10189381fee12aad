package database

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/osse101/battlesim/internal/config"
	"github.com/osse101/battlesim/internal/testing/leaktest"
)

var testDBConnString string

func TestMain(m *testing.M) {
	flag.Parse()

	terminate := func() {}
	if !testing.Short() {
		testDBConnString, terminate = startPostgres(context.Background())
	}

	code := m.Run()
	terminate()
	os.Exit(code)
}

// startPostgres returns an empty DSN when no container runtime is available
func startPostgres(ctx context.Context) (dsn string, terminate func()) {
	terminate = func() {}
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("postgres container unavailable: %v\n", r)
		}
	}()

	c, err := postgres.Run(ctx, "postgres:15-alpine",
		postgres.WithDatabase("battlesim"),
		postgres.WithUsername("battlesim"),
		postgres.WithPassword("battlesim"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		fmt.Printf("postgres container unavailable: %v\n", err)
		return "", terminate
	}
	terminate = func() { _ = c.Terminate(ctx) }

	dsn, err = c.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		fmt.Printf("postgres connection string: %v\n", err)
		terminate()
		return "", func() {}
	}
	return dsn, terminate
}

func newIntegrationPool(t *testing.T, maxConns int) *pgxpool.Pool {
	t.Helper()
	if testing.Short() || testDBConnString == "" {
		t.Skip("Skipping integration test: database not available")
	}
	pool, err := NewPool(context.Background(), testDBConnString, PoolOptions{MaxConns: maxConns})
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	return pool
}

func TestNewPool_BadConnString(t *testing.T) {
	_, err := NewPool(context.Background(), "://not-a-dsn", PoolOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgFailedToParseConnString)
}

func TestNewPool_GivesUpAfterAttempts(t *testing.T) {
	start := time.Now()
	_, err := NewPool(context.Background(), "postgres://u:p@127.0.0.1:1/none?connect_timeout=1",
		PoolOptions{ConnectAttempts: 2, RetryDelay: 20 * time.Millisecond})
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgFailedToPingDatabase)
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
}

func TestNewPool_RetryHonorsContext(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := NewPool(ctx, "postgres://u:p@127.0.0.1:1/none?connect_timeout=1",
		PoolOptions{ConnectAttempts: 100, RetryDelay: time.Second})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestOptionsFromConfig(t *testing.T) {
	opts := OptionsFromConfig(&config.Config{DBMaxConns: 7, DBMaxConnIdleTime: time.Minute, DBMaxConnLifetime: time.Hour})
	assert.Equal(t, PoolOptions{MaxConns: 7, MaxConnIdleTime: time.Minute, MaxConnLifetime: time.Hour}, opts)
}

func TestPool_ReleasesConnections(t *testing.T) {
	pool := newIntegrationPool(t, 5)
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		var got int
		require.NoError(t, pool.QueryRow(ctx, "SELECT $1::int", i).Scan(&got))
		assert.Equal(t, i, got)
	}
	assert.Zero(t, pool.Stat().AcquiredConns())
}

func TestPool_MaxConnsEnforced(t *testing.T) {
	const maxConns = 3
	pool := newIntegrationPool(t, maxConns)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	held := make([]*pgxpool.Conn, 0, maxConns)
	for i := 0; i < maxConns; i++ {
		conn, err := pool.Acquire(ctx)
		require.NoError(t, err)
		held = append(held, conn)
	}
	assert.Equal(t, int32(maxConns), pool.Stat().AcquiredConns())

	short, shortCancel := context.WithTimeout(ctx, 100*time.Millisecond)
	_, err := pool.Acquire(short)
	shortCancel()
	assert.Error(t, err, "pool is exhausted")

	held[0].Release()
	conn, err := pool.Acquire(ctx)
	require.NoError(t, err)
	conn.Release()
	for _, c := range held[1:] {
		c.Release()
	}
}

func TestPool_ConcurrentAccess(t *testing.T) {
	pool := newIntegrationPool(t, 10)
	checker := leaktest.NewGoroutineChecker(t)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			var got int
			if err := pool.QueryRow(context.Background(), "SELECT $1::int", id).Scan(&got); err != nil {
				t.Errorf("query %d: %v", id, err)
			}
		}(i)
	}
	wg.Wait()

	assert.Zero(t, pool.Stat().AcquiredConns())
	checker.Check(2)
}

func TestMigrate_Idempotent(t *testing.T) {
	pool := newIntegrationPool(t, 5)
	ctx := context.Background()

	first, err := Migrate(ctx, pool)
	require.NoError(t, err)
	assert.Positive(t, first)

	second, err := Migrate(ctx, pool)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	states, err := Status(ctx, pool)
	require.NoError(t, err)
	require.NotEmpty(t, states)
	for _, st := range states {
		assert.True(t, st.Applied, "migration %d not applied", st.Version)
	}

	var tables int
	require.NoError(t, pool.QueryRow(ctx,
		`SELECT count(*) FROM information_schema.tables WHERE table_name IN ('secret_discoveries', 'battle_results', 'creature_records')`,
	).Scan(&tables))
	assert.Equal(t, 3, tables)
}
