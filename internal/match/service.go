// Package match drives battle sessions: it assembles teams, keeps live
// matches addressable by id, runs whole simulations and publishes outcomes.
package match

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/battlesim/internal/battle"
	"github.com/osse101/battlesim/internal/domain"
	"github.com/osse101/battlesim/internal/event"
	"github.com/osse101/battlesim/internal/logger"
)

// Config tunes the match service
type Config struct {
	// MaxTurns stops a battle that never resolves; it is marked truncated
	MaxTurns int
	TTL      time.Duration
	Capacity int
	Workers  int
	Battle   *battle.Config
}

func (c Config) withDefaults() Config {
	if c.MaxTurns <= 0 {
		c.MaxTurns = DefaultMaxTurns
	}
	if c.TTL <= 0 {
		c.TTL = DefaultTTL
	}
	if c.Capacity <= 0 {
		c.Capacity = DefaultCapacity
	}
	if c.Workers <= 0 {
		c.Workers = DefaultWorkers
	}
	if c.Battle == nil {
		c.Battle = battle.DefaultConfig()
	}
	return c
}

// liveMatch is a stored session. mu serializes every touch of session.
type liveMatch struct {
	mu        sync.Mutex
	id        string
	session   *battle.Session
	truncated bool
	completed bool
	createdAt time.Time
	updatedAt time.Time
}

func (m *liveMatch) over() bool {
	return m.session.IsOver() || m.truncated
}

// Service manages live matches and simulations
type Service struct {
	source    TemplateSource
	discovery battle.DiscoveryRepository
	bus       event.Bus
	cfg       Config
	matches   *expirable.LRU[string, *liveMatch]
}

// NewService creates a match service. bus may be nil to skip publishing.
func NewService(source TemplateSource, discovery battle.DiscoveryRepository, bus event.Bus, cfg Config) *Service {
	cfg = cfg.withDefaults()
	s := &Service{
		source:    source,
		discovery: discovery,
		bus:       bus,
		cfg:       cfg,
	}
	s.matches = expirable.NewLRU[string, *liveMatch](cfg.Capacity, s.onEvict, cfg.TTL)
	return s
}

func (s *Service) onEvict(id string, m *liveMatch) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.completed {
		logger.Debug(LogMsgMatchEvicted, "match_id", id, "turn", m.session.Turn())
		m.completed = true
	}
}

// Active returns the number of stored matches, finished ones included
func (s *Service) Active() int {
	return s.matches.Len()
}

// Unfinished returns the number of stored matches still waiting for turns
func (s *Service) Unfinished() int {
	n := 0
	for _, m := range s.matches.Values() {
		m.mu.Lock()
		if !m.over() {
			n++
		}
		m.mu.Unlock()
	}
	return n
}

func (s *Service) rngFor(seed *uint64) battle.Rand {
	if seed != nil {
		return battle.NewRand(*seed)
	}
	return battle.NewTimeSeededRand()
}

// Start assembles both teams and stores a new match. seed, when set, makes
// random team picks and every battle roll reproducible.
func (s *Service) Start(ctx context.Context, red, blue TeamSpec, seed *uint64) (*domain.MatchState, error) {
	rng := s.rngFor(seed)
	teams, err := loadTeams(ctx, s.source, rng, red, blue)
	if err != nil {
		return nil, err
	}

	session, err := battle.Start(ctx, teams[0], teams[1], battle.Options{
		Config:    s.cfg.Battle,
		Rand:      rng,
		Discovery: s.discovery,
	})
	if err != nil {
		return nil, err
	}

	now := time.Now()
	m := &liveMatch{id: uuid.NewString(), session: session, createdAt: now, updatedAt: now}
	s.matches.Add(m.id, m)

	ctx = logger.WithMatchID(ctx, m.id)
	s.publish(ctx, event.NewBattleStartedEvent(m.id, teamNames(teams[0]), teamNames(teams[1])))
	logger.FromContext(ctx).Info(LogMsgMatchStarted)

	m.mu.Lock()
	defer m.mu.Unlock()
	state := snapshot(m)
	state.Events = []domain.BattleEvent{session.IntroEvent()}
	return state, nil
}

// Get returns the current state of a stored match
func (s *Service) Get(_ context.Context, id string) (*domain.MatchState, error) {
	m, err := s.lookup(id)
	if err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return snapshot(m), nil
}

// Advance plays one turn of a stored match. A finished match returns
// domain.ErrBattleOver.
func (s *Service) Advance(ctx context.Context, id string) (*domain.MatchState, error) {
	m, err := s.lookup(id)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	ctx = logger.WithMatchID(ctx, m.id)
	if m.over() {
		return nil, fmt.Errorf("%s: %w", ErrContextAdvance, domain.ErrBattleOver)
	}

	events, err := m.session.AdvanceTurn(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextAdvance, err)
	}
	m.updatedAt = time.Now()
	s.publishDiscoveries(ctx, m.id, events)

	if !m.session.IsOver() && m.session.Turn() >= s.cfg.MaxTurns {
		m.truncated = true
		logger.FromContext(ctx).Warn(LogMsgMatchTruncated, "turns", m.session.Turn())
	}
	if m.over() {
		s.complete(ctx, m)
	}

	state := snapshot(m)
	state.Events = events
	return state, nil
}

func (s *Service) lookup(id string) (*liveMatch, error) {
	m, ok := s.matches.Get(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrMatchNotFound, id)
	}
	return m, nil
}

// complete publishes the outcome once. Caller holds m.mu.
func (s *Service) complete(ctx context.Context, m *liveMatch) {
	if m.completed {
		return
	}
	m.completed = true
	s.finish(ctx, summarize(m.session, m.id, m.truncated))
}

func (s *Service) finish(ctx context.Context, summary domain.BattleSummary) {
	s.publish(ctx, event.NewBattleCompletedEvent(summary))
	logger.FromContext(ctx).Info(LogMsgMatchFinished,
		"winner", summary.Winner,
		"draw", summary.Draw,
		"truncated", summary.Truncated,
		"turns", summary.Turns)
}

func (s *Service) publishDiscoveries(ctx context.Context, matchID string, events []domain.BattleEvent) {
	for _, ev := range events {
		if ev.Kind == domain.BattleEventDiscovered {
			s.publish(ctx, event.NewSecretDiscoveredEvent(matchID, ev))
		}
	}
}

func (s *Service) publish(ctx context.Context, evt event.Event) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "event_type", evt.Type, "error", err)
	}
}

func summarize(session *battle.Session, id string, truncated bool) domain.BattleSummary {
	summary := session.Summary(id)
	summary.Truncated = truncated
	return summary
}

func snapshot(m *liveMatch) *domain.MatchState {
	state := &domain.MatchState{
		ID:        m.id,
		Turn:      m.session.Turn(),
		Over:      m.over(),
		Draw:      m.session.IsDraw(),
		Truncated: m.truncated,
		Red:       teamView(m.session, domain.SideRed),
		Blue:      teamView(m.session, domain.SideBlue),
		CreatedAt: m.createdAt,
		UpdatedAt: m.updatedAt,
	}
	if w, ok := m.session.Winner(); ok {
		state.Winner = w
	}
	return state
}

func teamView(session *battle.Session, side domain.Side) []domain.CombatantView {
	team := session.Team(side)
	active := session.ActiveIndex(side)
	views := make([]domain.CombatantView, len(team))
	for i, c := range team {
		views[i] = domain.CombatantView{
			Name:    c.Template.Name,
			Display: c.Name(),
			Level:   c.Template.Level,
			Types:   append([]string(nil), c.Template.Types...),
			HP:      c.CurrentHP,
			MaxHP:   c.MaxHP(),
			Fainted: c.Fainted,
			Active:  i == active,
			Sprite:  c.Template.Sprite,
		}
	}
	return views
}
