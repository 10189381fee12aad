package battle

import (
	"github.com/osse101/battlesim/internal/domain"
)

// scriptedRand replays fixed draws, then repeats its fallbacks
type scriptedRand struct {
	floats        []float64
	ints          []int
	fallbackFloat float64
	fallbackInt   int
}

func (r *scriptedRand) Float64() float64 {
	if len(r.floats) == 0 {
		return r.fallbackFloat
	}
	v := r.floats[0]
	r.floats = r.floats[1:]
	return v
}

func (r *scriptedRand) IntN(n int) int {
	v := r.fallbackInt
	if len(r.ints) > 0 {
		v = r.ints[0]
		r.ints = r.ints[1:]
	}
	return min(v, n-1)
}

var (
	testTackle = domain.Move{Name: "tackle", DisplayName: "Tackle", Type: "normal", Power: 40, Accuracy: 100, Category: domain.CategoryPhysical}
	testSlam   = domain.Move{Name: "slam", DisplayName: "Slam", Type: "normal", Power: 100, Accuracy: 100, Category: domain.CategoryPhysical}
	testEmber  = domain.Move{Name: "ember", DisplayName: "Ember", Type: "fire", Power: 100, Accuracy: 100, Category: domain.CategorySpecial}
	testSurf   = domain.Move{Name: "surf", DisplayName: "Surf", Type: "water", Power: 90, Accuracy: 100, Category: domain.CategorySpecial}
)

func flatStats(v int) domain.Stats {
	return domain.Stats{HP: v, Atk: v, Def: v, SpAtk: v, SpDef: v, Speed: v}
}

func newTemplate(name string, types []string, stats domain.Stats, moves ...domain.Move) *domain.CombatantTemplate {
	return &domain.CombatantTemplate{
		Name:        name,
		DisplayName: name,
		Level:       50,
		Types:       types,
		Stats:       stats,
		Moves:       moves,
	}
}

func newTestCombatant(name string, types []string, stats domain.Stats, moves ...domain.Move) *Combatant {
	return NewCombatant(newTemplate(name, types, stats, moves...))
}

func eventsOfKind(events []domain.BattleEvent, kind domain.BattleEventKind) []domain.BattleEvent {
	var out []domain.BattleEvent
	for _, ev := range events {
		if ev.Kind == kind {
			out = append(out, ev)
		}
	}
	return out
}
