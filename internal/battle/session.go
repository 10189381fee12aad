package battle

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/osse101/battlesim/internal/domain"
	"github.com/osse101/battlesim/internal/logger"
)

// Options configures a new session. Zero values fall back to defaults:
// DefaultConfig, a time-seeded source and an in-memory discovery set.
type Options struct {
	Config    *Config
	Rand      Rand
	Discovery DiscoveryRepository
	// SwitchBias shifts each side's switch probability, indexed by Side.Index.
	SwitchBias [2]float64
}

func (o Options) withDefaults() Options {
	if o.Config == nil {
		o.Config = DefaultConfig()
	}
	if o.Rand == nil {
		o.Rand = NewTimeSeededRand()
	}
	if o.Discovery == nil {
		o.Discovery = NewMemoryDiscovery()
	}
	return o
}

// Session is one battle between red and blue. It is not safe for concurrent use;
// a driver must serialize calls to AdvanceTurn.
type Session struct {
	teams     [2]Team
	active    [2]int
	turn      int
	over      bool
	draw      bool
	winner    domain.Side
	cfg       *Config
	rng       Rand
	discovery DiscoveryRepository
	bias      [2]float64

	events []domain.BattleEvent
}

// Start clones both rosters into a fresh session and rolls secret traits,
// red team first. Templates without derived stats get them from their base stats.
func Start(ctx context.Context, red, blue []*domain.CombatantTemplate, opts Options) (*Session, error) {
	var teams [2]Team
	for i, templates := range [2][]*domain.CombatantTemplate{red, blue} {
		if err := validateTeamSize(len(templates)); err != nil {
			return nil, fmt.Errorf("%s: %s team: %w", ErrContextStartBattle, domain.Sides[i], err)
		}
		prepared, err := prepareTemplates(templates)
		if err != nil {
			return nil, fmt.Errorf("%s: %s team: %w", ErrContextStartBattle, domain.Sides[i], err)
		}
		teams[i] = NewTeam(prepared)
	}

	opts = opts.withDefaults()
	assignTraits(opts.Rand, opts.Config.Traits, teams[0], teams[1])

	s := newSession(teams, opts)
	log := logger.FromContext(ctx)
	for i, team := range teams {
		for _, c := range team {
			if c.Trait != nil {
				log.Debug(LogMsgTraitAssigned, "side", domain.Sides[i], "combatant", c.Name(), "trait", c.Trait.Key)
			}
		}
	}
	log.Info(LogMsgBattleStarted, "red_size", len(red), "blue_size", len(blue))
	return s, nil
}

// NewSession wraps prebuilt combatants without rolling traits
func NewSession(red, blue Team, opts Options) (*Session, error) {
	for i, team := range [2]Team{red, blue} {
		if err := validateTeamSize(len(team)); err != nil {
			return nil, fmt.Errorf("%s: %s team: %w", ErrContextStartBattle, domain.Sides[i], err)
		}
	}
	return newSession([2]Team{red, blue}, opts.withDefaults()), nil
}

func newSession(teams [2]Team, opts Options) *Session {
	return &Session{
		teams:     teams,
		cfg:       opts.Config,
		rng:       opts.Rand,
		discovery: opts.Discovery,
		bias:      opts.SwitchBias,
	}
}

func prepareTemplates(templates []*domain.CombatantTemplate) ([]*domain.CombatantTemplate, error) {
	out := make([]*domain.CombatantTemplate, len(templates))
	for i, t := range templates {
		level := t.Level
		if level == 0 {
			level = DefaultLevel
		}
		if t.Stats != (domain.Stats{}) {
			if t.Level == 0 {
				leveled := *t
				leveled.Level = level
				t = &leveled
			}
			out[i] = t
			continue
		}
		stats, err := DeriveStats(t.Base, level)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", t.Label(), err)
		}
		derived := *t
		derived.Level = level
		derived.Stats = stats
		out[i] = &derived
	}
	return out, nil
}

// IntroEvent is the opening narration of the battle
func (s *Session) IntroEvent() domain.BattleEvent {
	return domain.BattleEvent{Kind: domain.BattleEventStart}
}

// Turn returns the number of AdvanceTurn calls so far
func (s *Session) Turn() int { return s.turn }

// IsOver reports whether the battle reached a terminal state
func (s *Session) IsOver() bool { return s.over }

// IsDraw reports whether both sides were unable to continue on the same turn
func (s *Session) IsDraw() bool { return s.over && s.draw }

// Winner returns the winning side once the battle is over and not a draw
func (s *Session) Winner() (domain.Side, bool) {
	if !s.over || s.draw {
		return "", false
	}
	return s.winner, true
}

// Team returns a side's roster
func (s *Session) Team(side domain.Side) Team {
	return s.teams[side.Index()]
}

// ActiveIndex returns the roster index of a side's active combatant
func (s *Session) ActiveIndex(side domain.Side) int {
	return s.active[side.Index()]
}

// Active returns a side's active combatant
func (s *Session) Active(side domain.Side) *Combatant {
	i := side.Index()
	return s.teams[i][s.active[i]]
}

// Config returns the tuning the session runs with
func (s *Session) Config() *Config { return s.cfg }

// Summary tallies the battle so far
func (s *Session) Summary(matchID string) domain.BattleSummary {
	sum := domain.BattleSummary{
		MatchID: matchID,
		Turns:   s.turn,
		Draw:    s.IsDraw(),
	}
	if w, ok := s.Winner(); ok {
		sum.Winner = w
	}
	for i, team := range s.teams {
		for _, c := range team {
			sum.Combatants = append(sum.Combatants, domain.CombatantScore{
				Side:        domain.Sides[i],
				Name:        c.Name(),
				DamageDealt: c.DamageDealt,
				Knockouts:   c.Knockouts,
				Fainted:     c.Fainted,
			})
		}
	}
	return sum
}

func (s *Session) emit(ev domain.BattleEvent) {
	ev.Turn = s.turn
	s.events = append(s.events, ev)
}

func (s *Session) finish(ctx context.Context, winner domain.Side, draw bool) {
	s.over = true
	s.draw = draw
	s.winner = winner
	ev := domain.BattleEvent{Kind: domain.BattleEventMatchEnd}
	if !draw {
		ev.Winner = winner
		ev.Side = winner
	}
	s.emit(ev)
	logger.FromContext(ctx).Info(LogMsgBattleFinished,
		slog.String("winner", string(winner)),
		slog.Bool("draw", draw),
		slog.Int("turns", s.turn))
}
