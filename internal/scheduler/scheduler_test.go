package scheduler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/battlesim/internal/testing/leaktest"
	"github.com/osse101/battlesim/internal/worker"
)

// MockJob is a simple job for testing
type MockJob struct {
	RunCount atomic.Int32
	Done     chan struct{}
}

func (m *MockJob) Process(ctx context.Context) error {
	m.RunCount.Add(1)
	select {
	case m.Done <- struct{}{}:
	default:
	}
	return nil
}

func TestScheduler(t *testing.T) {
	pool := worker.NewPool(1, 10)
	pool.Start(context.Background())
	defer pool.Stop()

	sched := New(pool)
	defer sched.Stop()

	job := &MockJob{Done: make(chan struct{}, 10)}
	sched.Schedule(context.Background(), "mock", 10*time.Millisecond, job)

	timeout := time.After(time.Second)
	runCount := 0
	for runCount < 2 {
		select {
		case <-job.Done:
			runCount++
		case <-timeout:
			t.Fatal("Timeout waiting for job execution")
		}
	}

	assert.GreaterOrEqual(t, int(job.RunCount.Load()), 2)
}

func TestScheduler_StopIsIdempotentAndLeakFree(t *testing.T) {
	checker := leaktest.NewGoroutineChecker(t)

	pool := worker.NewPool(1, 1)
	pool.Start(context.Background())

	sched := New(pool)
	sched.Schedule(context.Background(), "a", 5*time.Millisecond, &MockJob{Done: make(chan struct{}, 1)})
	sched.Schedule(context.Background(), "b", 5*time.Millisecond, &MockJob{Done: make(chan struct{}, 1)})
	time.Sleep(20 * time.Millisecond)

	sched.Stop()
	sched.Stop()
	pool.Stop()

	checker.Check(0)
}

func TestScheduler_ContextCancelStopsTicking(t *testing.T) {
	pool := worker.NewPool(1, 10)
	pool.Start(context.Background())
	defer pool.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	sched := New(pool)
	job := &MockJob{Done: make(chan struct{}, 100)}
	sched.Schedule(ctx, "mock", 5*time.Millisecond, job)

	<-job.Done
	cancel()
	sched.Stop()
	// let already-queued runs drain
	time.Sleep(10 * time.Millisecond)

	settled := job.RunCount.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, settled, job.RunCount.Load())
}
