package event

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/battlesim/internal/domain"
)

var errStatsDown = errors.New("stats store unavailable")

// flakyBus records every delivery attempt and fails while failFn says so
type flakyBus struct {
	mu       sync.Mutex
	attempts []time.Time
	events   []Event
	failFn   func(attempt int) bool
	delay    time.Duration
}

func (b *flakyBus) Publish(_ context.Context, evt Event) error {
	b.mu.Lock()
	b.attempts = append(b.attempts, time.Now())
	b.events = append(b.events, evt)
	n := len(b.attempts)
	b.mu.Unlock()

	if b.delay > 0 {
		time.Sleep(b.delay)
	}
	if b.failFn != nil && b.failFn(n) {
		return errStatsDown
	}
	return nil
}

func (b *flakyBus) Subscribe(Type, Handler) {}

func (b *flakyBus) count() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.attempts)
}

func (b *flakyBus) times() []time.Time {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]time.Time(nil), b.attempts...)
}

func completed(matchID string) Event {
	return NewBattleCompletedEvent(domain.BattleSummary{MatchID: matchID, Winner: domain.SideRed, Turns: 7})
}

func newPublisher(t *testing.T, bus Bus, maxRetries int, delay time.Duration) (*ResilientPublisher, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "deadletter.jsonl")
	rp, err := NewResilientPublisher(bus, maxRetries, delay, path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = rp.Shutdown(context.Background()) })
	return rp, path
}

func TestResilientPublisher_DeliversOnce(t *testing.T) {
	bus := &flakyBus{}
	rp, path := newPublisher(t, bus, 3, 50*time.Millisecond)

	require.NoError(t, rp.Publish(context.Background(), completed("m-1")))
	time.Sleep(30 * time.Millisecond)

	assert.Equal(t, 1, bus.count())
	assert.Equal(t, BattleCompleted, bus.events[0].Type)

	entries, err := ReadDeadLetters(path)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestResilientPublisher_RetriesUntilDelivered(t *testing.T) {
	bus := &flakyBus{failFn: func(n int) bool { return n == 1 }}
	rp, path := newPublisher(t, bus, 3, 50*time.Millisecond)

	rp.PublishWithRetry(context.Background(), completed("m-2"))

	assert.Eventually(t, func() bool { return bus.count() == 2 }, time.Second, 10*time.Millisecond)
	entries, err := ReadDeadLetters(path)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestResilientPublisher_DeadLettersAfterRetries(t *testing.T) {
	bus := &flakyBus{failFn: func(int) bool { return true }}
	rp, path := newPublisher(t, bus, 3, 20*time.Millisecond)

	rp.PublishWithRetry(context.Background(), completed("m-3"))

	var entries []DeadLetterEntry
	require.Eventually(t, func() bool {
		var err error
		entries, err = ReadDeadLetters(path)
		return err == nil && len(entries) == 1
	}, 2*time.Second, 20*time.Millisecond)

	// one direct attempt plus three retries
	assert.Equal(t, 4, bus.count())
	assert.Equal(t, BattleCompleted, entries[0].Event.Type)
	assert.Equal(t, 3, entries[0].Attempts)
	assert.Equal(t, errStatsDown.Error(), entries[0].LastError)
	assert.Equal(t, DeadLetterSchemaVersion, entries[0].SchemaVersion)
}

func TestResilientPublisher_FullQueueDeadLetters(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deadletter.jsonl")
	dl, err := NewDeadLetterWriter(path)
	require.NoError(t, err)

	// no worker runs, so the queue fills and stays full
	rp := &ResilientPublisher{
		bus:        &flakyBus{failFn: func(int) bool { return true }},
		retryQueue: make(chan retryEntry, 2),
		maxRetries: 3,
		retryDelay: time.Hour,
		deadLetter: dl,
		shutdown:   make(chan struct{}),
	}

	for i := 0; i < 5; i++ {
		rp.PublishWithRetry(context.Background(), completed("m-overflow"))
	}
	require.NoError(t, dl.Close())

	entries, err := ReadDeadLetters(path)
	require.NoError(t, err)
	assert.Len(t, entries, 3)
	assert.Len(t, rp.retryQueue, 2)
}

func TestResilientPublisher_ShutdownDrainsQueue(t *testing.T) {
	bus := &flakyBus{failFn: func(n int) bool { return n <= 3 }}
	path := filepath.Join(t.TempDir(), "deadletter.jsonl")
	rp, err := NewResilientPublisher(bus, 5, time.Hour, path)
	require.NoError(t, err)

	for _, id := range []string{"a", "b", "c"} {
		rp.PublishWithRetry(context.Background(), completed(id))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, rp.Shutdown(ctx))

	// the hour-long backoff is cut short and every queued event gets a final try
	assert.Equal(t, 6, bus.count())
	entries, err := ReadDeadLetters(path)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestResilientPublisher_BackoffDoubles(t *testing.T) {
	base := 60 * time.Millisecond
	bus := &flakyBus{failFn: func(n int) bool { return n < 3 }}
	rp, _ := newPublisher(t, bus, 5, base)

	rp.PublishWithRetry(context.Background(), completed("m-backoff"))
	require.Eventually(t, func() bool { return bus.count() == 3 }, 2*time.Second, 10*time.Millisecond)

	at := bus.times()
	assert.InDelta(t, base.Milliseconds(), at[1].Sub(at[0]).Milliseconds(), 40)
	assert.InDelta(t, (2 * base).Milliseconds(), at[2].Sub(at[1]).Milliseconds(), 40)
}

func TestResilientPublisher_ConcurrentPublishes(t *testing.T) {
	bus := &flakyBus{}
	rp, _ := newPublisher(t, bus, 3, 20*time.Millisecond)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 5; j++ {
				rp.PublishWithRetry(context.Background(), completed("m-concurrent"))
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 40, bus.count())
}

func TestCalculateRetryDelay(t *testing.T) {
	assert.Equal(t, 2*time.Second, CalculateRetryDelay(2*time.Second, 1))
	assert.Equal(t, 8*time.Second, CalculateRetryDelay(2*time.Second, 3))
}
