package bootstrap

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/battlesim/internal/battle"
	"github.com/osse101/battlesim/internal/database/postgres"
	"github.com/osse101/battlesim/internal/logger"
	"github.com/osse101/battlesim/internal/repository"
	"github.com/osse101/battlesim/internal/stats"
)

// Repositories holds all repository implementations used by the application.
type Repositories struct {
	Discovery repository.Discovery
	Stats     repository.Stats
}

// InitializeRepositories returns PostgreSQL repositories, or in-memory ones
// when dbPool is nil.
func InitializeRepositories(dbPool *pgxpool.Pool) *Repositories {
	if dbPool == nil {
		logger.Info(LogMsgUsingMemoryStorage)
		return &Repositories{
			Discovery: battle.NewMemoryDiscovery(),
			Stats:     stats.NewMemoryRepository(),
		}
	}

	logger.Info(LogMsgUsingPostgresStorage)
	return &Repositories{
		Discovery: postgres.NewDiscoveryRepository(dbPool),
		Stats:     postgres.NewStatsRepository(dbPool),
	}
}
