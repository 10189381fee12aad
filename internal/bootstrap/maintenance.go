package bootstrap

import (
	"context"

	"github.com/osse101/battlesim/internal/logger"
	"github.com/osse101/battlesim/internal/metrics"
	"github.com/osse101/battlesim/internal/scheduler"
	"github.com/osse101/battlesim/internal/worker"
)

// Maintenance runs periodic housekeeping jobs on a small worker pool
type Maintenance struct {
	scheduler *scheduler.Scheduler
	pool      *worker.Pool
	cancel    context.CancelFunc
}

// GaugeJob refreshes gauges that are cheaper to sample than to track
func GaugeJob(services *Services) worker.JobFunc {
	return func(ctx context.Context) error {
		list, data := services.Provider.CacheEntries()
		metrics.PokeAPICacheSize.WithLabelValues(CacheLabelList).Set(float64(list))
		metrics.PokeAPICacheSize.WithLabelValues(CacheLabelData).Set(float64(data))
		metrics.ActiveMatches.Set(float64(services.Matches.Unfinished()))
		return nil
	}
}

// StatsHeartbeatJob logs the running battle totals
func StatsHeartbeatJob(services *Services) worker.JobFunc {
	return func(ctx context.Context) error {
		s, err := services.Stats.GetMatchStats(ctx)
		if err != nil {
			return err
		}
		logger.FromContext(ctx).Info(LogMsgStatsHeartbeat,
			"battles", s.Battles,
			"red_wins", s.RedWins,
			"blue_wins", s.BlueWins,
			"draws", s.Draws,
			"avg_turns", s.AverageTurns(),
			"stored_matches", services.Matches.Active(),
			"active_matches", services.Matches.Unfinished())
		return nil
	}
}

// StartMaintenance schedules the housekeeping jobs. Call Stop during shutdown.
func StartMaintenance(ctx context.Context, services *Services) *Maintenance {
	ctx, cancel := context.WithCancel(ctx)
	pool := worker.NewPool(MaintenanceWorkers, 0)
	pool.Start(ctx)

	sched := scheduler.New(pool)
	sched.Schedule(ctx, JobNameGauges, GaugeInterval, GaugeJob(services))
	sched.Schedule(ctx, JobNameStatsHeartbeat, StatsHeartbeatInterval, StatsHeartbeatJob(services))

	return &Maintenance{scheduler: sched, pool: pool, cancel: cancel}
}

// Stop halts the schedules, then the pool
func (m *Maintenance) Stop() {
	m.scheduler.Stop()
	m.pool.Stop()
	m.cancel()
}
