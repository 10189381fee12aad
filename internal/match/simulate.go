package match

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/battlesim/internal/battle"
	"github.com/osse101/battlesim/internal/domain"
	"github.com/osse101/battlesim/internal/event"
	"github.com/osse101/battlesim/internal/logger"
	"github.com/osse101/battlesim/internal/worker"
)

// SimulateOptions tunes a single auto-played battle
type SimulateOptions struct {
	Seed *uint64
	// Delay paces turns for live viewing; zero plays at full speed
	Delay time.Duration
	// Narrate fills SimulationResult.Log with rendered lines
	Narrate bool
	// KeepEvents fills SimulationResult.Events
	KeepEvents bool
	// OnTurn, if set, sees each turn's events as they happen
	OnTurn func(turn int, events []domain.BattleEvent)
}

// Simulate assembles both teams and plays the battle to completion without
// storing it. The MaxTurns backstop marks a stuck battle truncated.
func (s *Service) Simulate(ctx context.Context, red, blue TeamSpec, opts SimulateOptions) (*domain.SimulationResult, error) {
	rng := s.rngFor(opts.Seed)
	teams, err := loadTeams(ctx, s.source, rng, red, blue)
	if err != nil {
		return nil, err
	}
	return s.play(ctx, teams, rng, opts)
}

func (s *Service) play(ctx context.Context, teams [2][]*domain.CombatantTemplate, rng battle.Rand, opts SimulateOptions) (*domain.SimulationResult, error) {
	session, err := battle.Start(ctx, teams[0], teams[1], battle.Options{
		Config:    s.cfg.Battle,
		Rand:      rng,
		Discovery: s.discovery,
	})
	if err != nil {
		return nil, err
	}

	id := uuid.NewString()
	ctx = logger.WithMatchID(ctx, id)
	s.publish(ctx, event.NewBattleStartedEvent(id, teamNames(teams[0]), teamNames(teams[1])))

	result := &domain.SimulationResult{}
	record := func(turn int, events []domain.BattleEvent) {
		if opts.KeepEvents {
			result.Events = append(result.Events, events...)
		}
		if opts.Narrate {
			result.Log = append(result.Log, battle.Narrate(events)...)
		}
		if opts.OnTurn != nil {
			opts.OnTurn(turn, events)
		}
	}
	record(0, []domain.BattleEvent{session.IntroEvent()})

	truncated := false
	for !session.IsOver() {
		if session.Turn() >= s.cfg.MaxTurns {
			truncated = true
			logger.FromContext(ctx).Warn(LogMsgMatchTruncated, "turns", session.Turn())
			break
		}
		if err := pace(ctx, opts.Delay); err != nil {
			return nil, err
		}
		events, err := session.AdvanceTurn(ctx)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrContextAdvance, err)
		}
		s.publishDiscoveries(ctx, id, events)
		record(session.Turn(), events)
	}

	result.Summary = summarize(session, id, truncated)
	s.finish(ctx, result.Summary)
	return result, nil
}

// pace waits d between turns, returning early when ctx is cancelled
func pace(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// SimulateBatch plays n independent battles of the same matchup on the worker
// pool and reports win rates. Teams are assembled once; each run gets its own
// random source (seed+i when a seed is given). Failed runs are counted, not fatal.
func (s *Service) SimulateBatch(ctx context.Context, red, blue TeamSpec, n int, seed *uint64) (*domain.BatchResult, error) {
	if n < 1 || n > DefaultBatchLimit {
		return nil, fmt.Errorf("%w: "+ErrMsgBatchSize, domain.ErrInvalidInput, DefaultBatchLimit)
	}

	base := uint64(time.Now().UnixNano())
	if seed != nil {
		base = *seed
	}
	teams, err := loadTeams(ctx, s.source, battle.NewRand(base), red, blue)
	if err != nil {
		return nil, err
	}

	// workers keep draining after cancellation so every queued run reports back
	pool := worker.NewPool(min(s.cfg.Workers, n), n)
	pool.Start(context.WithoutCancel(ctx))
	defer pool.Stop()

	var (
		mu     sync.Mutex
		wg     sync.WaitGroup
		result domain.BatchResult
	)
	for i := 0; i < n; i++ {
		runSeed := base + uint64(i) + 1
		wg.Add(1)
		err := pool.Enqueue(ctx, worker.JobFunc(func(jctx context.Context) error {
			defer wg.Done()
			if err := ctx.Err(); err != nil {
				mu.Lock()
				result.Failed++
				mu.Unlock()
				return nil
			}
			res, err := s.play(jctx, teams, battle.NewRand(runSeed), SimulateOptions{})
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				result.Failed++
				return err
			}
			result.Add(res.Summary)
			return nil
		}))
		if err != nil {
			wg.Done()
			mu.Lock()
			result.Failed += n - i
			mu.Unlock()
			break
		}
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextBatch, err)
	}

	result.Finalize()
	logger.FromContext(ctx).Info(LogMsgBatchCompleted,
		"battles", result.Battles,
		"red_wins", result.RedWins,
		"blue_wins", result.BlueWins,
		"draws", result.Draws,
		"failed", result.Failed)
	return &result, nil
}
