package battle

import (
	"math"

	"github.com/osse101/battlesim/internal/domain"
	"github.com/osse101/battlesim/internal/typechart"
)

// ActionKind is what a side chose to do this turn
type ActionKind string

const (
	ActionMove         ActionKind = "move"
	ActionSwitch       ActionKind = "switch"
	ActionForcedSwitch ActionKind = "forced_switch"
	ActionStruggle     ActionKind = "struggle"
)

// Action is an AI decision. SwitchTo is a team index and only meaningful for switches.
type Action struct {
	Kind     ActionKind
	Move     domain.Move
	SwitchTo int
}

// IsSwitch reports whether the action changes the active combatant
func (a Action) IsSwitch() bool {
	return a.Kind == ActionSwitch || a.Kind == ActionForcedSwitch
}

// ExpectedDamage estimates average damage without randomness: the unfloored base
// times effectiveness, STAB, hit chance and the mean roll and crit multipliers.
func ExpectedDamage(attacker, defender *Combatant, move domain.Move, cfg *Config) float64 {
	base := rawBaseDamage(attacker, defender, move) + damageFlat
	eff := typechart.Effectiveness(move.Type, defender.Template.Types...)
	stab := stabMultiplier(attacker, move, cfg.Damage.STABMultiplier)
	acc := float64(move.Accuracy) / 100
	return base * eff * stab * acc * cfg.AI.RollExpectation * cfg.AI.CritExpectation
}

// bestMove picks the move with the highest jittered expected damage and
// returns it with its unjittered estimate.
func bestMove(rng Rand, attacker, defender *Combatant, cfg *Config) (domain.Move, float64) {
	moves := attacker.Moves()
	if len(moves) == 0 {
		return domain.TackleMove, ExpectedDamage(attacker, defender, domain.TackleMove, cfg)
	}

	best := moves[0]
	bestExpected := 0.0
	bestScore := math.Inf(-1)
	for _, mv := range moves {
		expected := ExpectedDamage(attacker, defender, mv, cfg)
		score := expected + rng.Float64()*cfg.AI.Jitter
		if score > bestScore {
			best, bestExpected, bestScore = mv, expected, score
		}
	}
	return best, bestExpected
}

// matchupScore rates candidate against enemy: its own best output, weighted by
// who moves first, minus the enemy's best output against it.
func matchupScore(rng Rand, candidate, enemy *Combatant, cfg *Config) float64 {
	_, out := bestMove(rng, candidate, enemy, cfg)
	_, incoming := bestMove(rng, enemy, candidate, cfg)

	speed := cfg.AI.SlowerFactor
	if candidate.Template.Stats.Speed >= enemy.Template.Stats.Speed {
		speed = cfg.AI.FasterFactor
	}
	return out*speed - incoming*cfg.AI.IncomingWeight
}

// chooseBestSwitch returns the bench member with the best danger-discounted matchup
func chooseBestSwitch(rng Rand, team Team, activeIdx int, enemy *Combatant, cfg *Config) (int, bool) {
	bestIdx := -1
	best := math.Inf(-1)
	for i, cand := range team {
		if i == activeIdx || cand.Fainted {
			continue
		}
		score := matchupScore(rng, cand, enemy, cfg)
		_, danger := bestMove(rng, enemy, cand, cfg)
		final := score - danger*cfg.AI.DangerWeight
		if final > best {
			best, bestIdx = final, i
		}
	}
	return bestIdx, bestIdx >= 0
}

// DecideAction is the AI policy for one side. bias shifts both switch
// probabilities before they are clamped.
func DecideAction(rng Rand, team Team, activeIdx int, enemy *Combatant, cfg *Config, bias float64) Action {
	active := team[activeIdx]
	if active.Fainted {
		if idx, ok := chooseBestSwitch(rng, team, activeIdx, enemy, cfg); ok {
			return Action{Kind: ActionForcedSwitch, SwitchTo: idx}
		}
		return Action{Kind: ActionStruggle}
	}

	if idx, ok := chooseBestSwitch(rng, team, activeIdx, enemy, cfg); ok {
		scoreNow := matchupScore(rng, active, enemy, cfg)
		swScore := matchupScore(rng, team[idx], enemy, cfg)

		p := cfg.AI.BaselineSwitch
		if switchPreferred(active.HPFraction(), scoreNow, swScore, cfg.AI) {
			p = cfg.AI.PreferredSwitch
		}
		p = min(max(p+bias, cfg.AI.MinSwitch), cfg.AI.MaxSwitch)
		if chance(rng, p) {
			return Action{Kind: ActionSwitch, SwitchTo: idx}
		}
	}

	mv, _ := bestMove(rng, active, enemy, cfg)
	return Action{Kind: ActionMove, Move: mv}
}

func switchPreferred(hp, scoreNow, swScore float64, ai AISettings) bool {
	switch {
	case scoreNow < ai.LosingScore && swScore > scoreNow+ai.LosingMargin:
		return true
	case hp <= ai.LowHP && swScore > scoreNow+ai.LowHPMargin:
		return true
	case hp <= ai.CriticalHP && swScore > scoreNow+ai.CriticalHPMargin:
		return true
	}
	return false
}
