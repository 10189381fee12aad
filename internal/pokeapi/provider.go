package pokeapi

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/osse101/battlesim/internal/battle"
	"github.com/osse101/battlesim/internal/domain"
	"github.com/osse101/battlesim/internal/logger"
)

// Provider assembles combatant templates from creature data
type Provider struct {
	client       *Client
	defaultLevel int
}

// NewProvider creates a provider. defaultLevel applies when callers pass level 0.
func NewProvider(client *Client, defaultLevel int) *Provider {
	if defaultLevel == 0 {
		defaultLevel = battle.DefaultLevel
	}
	return &Provider{client: client, defaultLevel: defaultLevel}
}

// CacheEntries reports the size of the underlying response caches
func (p *Provider) CacheEntries() (list, data int) {
	return p.client.CacheEntries()
}

// FetchCombatantTemplate loads a creature by name or numeric id and derives its
// stats and move set at the given level.
func (p *Provider) FetchCombatantTemplate(ctx context.Context, identifier string, level int) (*domain.CombatantTemplate, error) {
	name := NormalizeName(identifier)
	if name == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrContextEmptyName)
	}
	if level == 0 {
		level = p.defaultLevel
	}
	if level < battle.MinLevel || level > battle.MaxLevel {
		return nil, fmt.Errorf("%w: got %d", domain.ErrInvalidLevel, level)
	}

	raw, err := p.client.getCreature(ctx, name)
	if err != nil {
		return nil, err
	}

	base := baseStats(raw.Stats)
	stats, err := battle.DeriveStats(base, level)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextDeriveStats, err)
	}

	moves, err := p.client.loadMoves(ctx, raw.Moves)
	if err != nil {
		return nil, err
	}

	tmpl := &domain.CombatantTemplate{
		ID:          raw.ID,
		Name:        raw.Name,
		DisplayName: DisplayName(raw.Name),
		Level:       level,
		Types:       orderedTypes(raw.Types),
		Base:        base,
		Stats:       stats,
		Moves:       moves,
		Sprite:      spriteURL(raw.Sprites),
	}

	logger.FromContext(ctx).Debug(LogMsgTemplateLoaded, "creature", tmpl.Name, "level", level, "types", tmpl.Types)
	return tmpl, nil
}

// RandomIdentifier draws a uniformly chosen creature id in [MinRandomID, MaxRandomID]
func RandomIdentifier(rng battle.Rand) string {
	return strconv.Itoa(MinRandomID + rng.IntN(MaxRandomID-MinRandomID+1))
}

// RandomTemplate loads the creature picked by RandomIdentifier
func (p *Provider) RandomTemplate(ctx context.Context, rng battle.Rand, level int) (*domain.CombatantTemplate, error) {
	return p.FetchCombatantTemplate(ctx, RandomIdentifier(rng), level)
}

// RandomTeam loads size random creatures. The first failure aborts the team.
func (p *Provider) RandomTeam(ctx context.Context, rng battle.Rand, size, level int) ([]*domain.CombatantTemplate, error) {
	if size < 1 || size > domain.MaxTeamSize {
		return nil, fmt.Errorf("%w: got %d", domain.ErrTeamSize, size)
	}
	team := make([]*domain.CombatantTemplate, 0, size)
	for i := 0; i < size; i++ {
		tmpl, err := p.RandomTemplate(ctx, rng, level)
		if err != nil {
			return nil, err
		}
		team = append(team, tmpl)
	}
	return team, nil
}

// ListCreatures returns one page of the dex. limit defaults to DefaultPageLimit
// and is capped at MaxPageLimit.
func (p *Provider) ListCreatures(ctx context.Context, limit, offset int) (*domain.CreaturePage, error) {
	if offset < 0 {
		return nil, fmt.Errorf("%w: offset must not be negative", domain.ErrInvalidInput)
	}
	if limit <= 0 {
		limit = DefaultPageLimit
	}
	if limit > MaxPageLimit {
		limit = MaxPageLimit
	}

	raw, err := p.client.getList(ctx, limit, offset)
	if err != nil {
		return nil, err
	}

	page := &domain.CreaturePage{
		Count:   raw.Count,
		Offset:  offset,
		Limit:   limit,
		Results: make([]domain.CreatureSummary, 0, len(raw.Results)),
	}
	for _, r := range raw.Results {
		page.Results = append(page.Results, domain.CreatureSummary{
			ID:   idFromURL(r.URL),
			Name: r.Name,
			URL:  r.URL,
		})
	}
	return page, nil
}

func baseStats(stats []apiStat) domain.BaseStats {
	base := make(domain.BaseStats, len(stats))
	for _, s := range stats {
		base[s.Stat.Name] = s.BaseStat
	}
	return base
}

func orderedTypes(slots []apiTypeSlot) []string {
	sorted := make([]apiTypeSlot, len(slots))
	copy(sorted, slots)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Slot < sorted[j].Slot })

	types := make([]string, 0, len(sorted))
	for _, s := range sorted {
		types = append(types, s.Type.Name)
	}
	return types
}

func spriteURL(s apiSprites) string {
	if art, ok := s.Other[officialArtworkKey]; ok && art.FrontDefault != nil && *art.FrontDefault != "" {
		return *art.FrontDefault
	}
	if s.FrontDefault != nil {
		return *s.FrontDefault
	}
	return ""
}

// idFromURL reads the trailing numeric segment of a resource URL, or 0.
func idFromURL(url string) int {
	parts := strings.Split(strings.TrimRight(url, "/"), "/")
	id, err := strconv.Atoi(parts[len(parts)-1])
	if err != nil {
		return 0
	}
	return id
}
