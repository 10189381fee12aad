package stats

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/osse101/battlesim/internal/domain"
)

// MemoryRepository keeps battle stats in process memory.
// It is used when no database is configured and by the sim CLI.
type MemoryRepository struct {
	mu        sync.RWMutex
	recorded  map[string]bool
	totals    domain.MatchStats
	creatures map[string]*domain.CreatureRecord
}

// NewMemoryRepository creates an empty in-memory stats store
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		recorded:  make(map[string]bool),
		creatures: make(map[string]*domain.CreatureRecord),
	}
}

func (r *MemoryRepository) RecordBattle(_ context.Context, summary domain.BattleSummary) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.recorded[summary.MatchID] {
		return nil
	}
	r.recorded[summary.MatchID] = true

	r.totals.Battles++
	r.totals.Turns += summary.Turns
	switch {
	case summary.Truncated:
		r.totals.Truncated++
	case summary.Draw:
		r.totals.Draws++
	case summary.Won(domain.SideRed):
		r.totals.RedWins++
	case summary.Won(domain.SideBlue):
		r.totals.BlueWins++
	}
	r.totals.UpdatedAt = time.Now()

	for _, c := range summary.Combatants {
		rec, ok := r.creatures[c.Name]
		if !ok {
			rec = &domain.CreatureRecord{Name: c.Name}
			r.creatures[c.Name] = rec
		}
		rec.Battles++
		rec.Knockouts += c.Knockouts
		rec.DamageDealt += c.DamageDealt
		if summary.Won(c.Side) {
			rec.Wins++
		}
		if c.Fainted {
			rec.Faints++
		}
	}
	return nil
}

func (r *MemoryRepository) GetMatchStats(_ context.Context) (*domain.MatchStats, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	totals := r.totals
	return &totals, nil
}

func (r *MemoryRepository) GetTopCreatures(_ context.Context, limit int) ([]domain.CreatureRecord, error) {
	r.mu.RLock()
	records := make([]domain.CreatureRecord, 0, len(r.creatures))
	for _, rec := range r.creatures {
		records = append(records, *rec)
	}
	r.mu.RUnlock()

	sort.Slice(records, func(i, j int) bool {
		a, b := records[i], records[j]
		if a.Knockouts != b.Knockouts {
			return a.Knockouts > b.Knockouts
		}
		if a.Wins != b.Wins {
			return a.Wins > b.Wins
		}
		if a.DamageDealt != b.DamageDealt {
			return a.DamageDealt > b.DamageDealt
		}
		return a.Name < b.Name
	})

	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}
	return records, nil
}
