package match

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/osse101/battlesim/internal/battle"
	"github.com/osse101/battlesim/internal/domain"
	"github.com/osse101/battlesim/internal/logger"
	"github.com/osse101/battlesim/internal/pokeapi"
)

// TemplateSource loads creatures by name or numeric id
type TemplateSource interface {
	FetchCombatantTemplate(ctx context.Context, identifier string, level int) (*domain.CombatantTemplate, error)
}

// TeamSpec describes a roster to assemble: named creatures first, then Random
// uniformly chosen ones. Level 0 uses the source's default level.
type TeamSpec struct {
	Creatures []string `json:"creatures,omitempty"`
	Random    int      `json:"random,omitempty"`
	Level     int      `json:"level,omitempty"`
}

// Size is the number of roster slots the TeamSpec fills
func (t TeamSpec) Size() int {
	return len(t.Creatures) + t.Random
}

func (t TeamSpec) validate() error {
	if t.Random < 0 {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgNegativeRandoms)
	}
	switch n := t.Size(); {
	case n == 0:
		return fmt.Errorf("%w: %s", domain.ErrTeamSize, ErrMsgEmptyTeam)
	case n > domain.MaxTeamSize:
		return fmt.Errorf("%w: "+ErrMsgTeamTooLarge, domain.ErrTeamSize, n)
	}
	if t.Level != 0 && (t.Level < battle.MinLevel || t.Level > battle.MaxLevel) {
		return fmt.Errorf("%w: got %d", domain.ErrInvalidLevel, t.Level)
	}
	return nil
}

// identifiers resolves random slots into concrete ids. It draws from rng in
// slot order so a seeded match picks the same creatures every time.
func (t TeamSpec) identifiers(rng battle.Rand) []string {
	ids := make([]string, 0, t.Size())
	ids = append(ids, t.Creatures...)
	for i := 0; i < t.Random; i++ {
		ids = append(ids, pokeapi.RandomIdentifier(rng))
	}
	return ids
}

// loadTeams validates both specs, resolves random slots red first, then fetches
// every creature concurrently. Roster order follows the TeamSpec order.
func loadTeams(ctx context.Context, src TemplateSource, rng battle.Rand, red, blue TeamSpec) ([2][]*domain.CombatantTemplate, error) {
	var out [2][]*domain.CombatantTemplate
	specs := [2]TeamSpec{red, blue}
	var ids [2][]string
	for i, spec := range specs {
		if err := spec.validate(); err != nil {
			return out, fmt.Errorf("%s: %s team: %w", ErrContextLoadTeam, domain.Sides[i], err)
		}
		ids[i] = spec.identifiers(rng)
		out[i] = make([]*domain.CombatantTemplate, len(ids[i]))
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(fetchConcurrency)
	for i := range specs {
		for j, id := range ids[i] {
			g.Go(func() error {
				tmpl, err := src.FetchCombatantTemplate(gctx, id, specs[i].Level)
				if err != nil {
					return fmt.Errorf("%s: %s team: %q: %w", ErrContextLoadTeam, domain.Sides[i], id, err)
				}
				out[i][j] = tmpl
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return out, err
	}

	log := logger.FromContext(ctx)
	for i := range out {
		log.Debug(LogMsgTeamLoaded, "side", domain.Sides[i], "size", len(out[i]))
	}
	return out, nil
}

func teamNames(templates []*domain.CombatantTemplate) []string {
	names := make([]string, len(templates))
	for i, t := range templates {
		names[i] = t.Label()
	}
	return names
}
