// Package scheduler runs jobs at fixed intervals on a worker pool.
package scheduler

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/osse101/battlesim/internal/logger"
	"github.com/osse101/battlesim/internal/worker"
)

const (
	LogMsgJobScheduled  = "Job scheduled"
	LogMsgTickSkipped   = "Scheduled job skipped, worker pool busy"
	LogMsgSchedulerStop = "Scheduler stopped"
)

// Scheduler manages scheduled jobs
type Scheduler struct {
	workerPool *worker.Pool
	quit       chan struct{}
	stopOnce   sync.Once
	wg         sync.WaitGroup
}

// New creates a new scheduler over a started pool
func New(pool *worker.Pool) *Scheduler {
	return &Scheduler{
		workerPool: pool,
		quit:       make(chan struct{}),
	}
}

// Schedule runs job every interval until Stop or ctx is done. A tick that
// finds the pool's queue full is skipped rather than piling up.
func (s *Scheduler) Schedule(ctx context.Context, name string, interval time.Duration, job worker.Job) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgJobScheduled, "job", name, "interval", interval)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				tickCtx, cancel := context.WithTimeout(ctx, interval)
				err := s.workerPool.Enqueue(tickCtx, job)
				cancel()
				switch {
				case err == nil:
				case errors.Is(err, worker.ErrPoolStopped):
					return
				default:
					log.Warn(LogMsgTickSkipped, "job", name, "error", err)
				}
			case <-s.quit:
				return
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Stop stops all scheduled jobs. The pool is left running.
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() { close(s.quit) })
	s.wg.Wait()
	logger.Debug(LogMsgSchedulerStop)
}
