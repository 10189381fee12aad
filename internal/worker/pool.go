package worker

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/osse101/battlesim/internal/logger"
)

// ErrPoolStopped is returned by Enqueue once Stop has been called
var ErrPoolStopped = errors.New("worker pool stopped")

// Job represents a task to be executed by a worker
type Job interface {
	Process(ctx context.Context) error
}

// JobFunc adapts a function to Job
type JobFunc func(ctx context.Context) error

func (f JobFunc) Process(ctx context.Context) error { return f(ctx) }

// Pool runs jobs on a fixed number of goroutines
type Pool struct {
	workers  int
	jobQueue chan Job
	wg       sync.WaitGroup
	quit     chan struct{}
	stopOnce sync.Once

	// OnError, if set, receives every failed job's error
	OnError func(err error)
}

// NewPool creates a new worker pool. A non-positive queueSize picks a size
// proportional to the worker count.
func NewPool(workers int, queueSize int) *Pool {
	if workers < 1 {
		workers = 1
	}
	if queueSize <= 0 {
		queueSize = workers * DefaultQueueFactor
	}
	return &Pool{
		workers:  workers,
		jobQueue: make(chan Job, queueSize),
		quit:     make(chan struct{}),
	}
}

// Workers returns the number of goroutines the pool runs
func (p *Pool) Workers() int { return p.workers }

// Start starts the workers. ctx is handed to every job and carries the logger.
func (p *Pool) Start(ctx context.Context) {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker(ctx)
	}
	logger.FromContext(ctx).Debug(LogMsgPoolStarted, "workers", p.workers)
}

func (p *Pool) worker(ctx context.Context) {
	defer p.wg.Done()
	for {
		select {
		case job := <-p.jobQueue:
			if err := p.run(ctx, job); err != nil {
				logger.FromContext(ctx).Error(LogMsgWorkerJobFailed, "error", err)
				if p.OnError != nil {
					p.OnError(err)
				}
			}
		case <-p.quit:
			return
		case <-ctx.Done():
			return
		}
	}
}

// run keeps a panicking job from taking its worker down
func (p *Pool) run(ctx context.Context, job Job) (err error) {
	defer func() {
		if r := recover(); r != nil {
			logger.FromContext(ctx).Error(LogMsgWorkerPanic, "panic", r)
			err = fmt.Errorf(ErrMsgJobPanicFmt, r)
		}
	}()
	return job.Process(ctx)
}

// Enqueue blocks until the job is queued, ctx is cancelled or the pool stops
func (p *Pool) Enqueue(ctx context.Context, job Job) error {
	select {
	case <-p.quit:
		return ErrPoolStopped
	default:
	}

	select {
	case p.jobQueue <- job:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-p.quit:
		return ErrPoolStopped
	}
}

// Stop stops the workers and waits for in-flight jobs. Queued jobs are dropped.
func (p *Pool) Stop() {
	p.stopOnce.Do(func() { close(p.quit) })
	p.wg.Wait()
}
