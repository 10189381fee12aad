package battle

import (
	"math"

	"github.com/osse101/battlesim/internal/domain"
	"github.com/osse101/battlesim/internal/typechart"
)

// DamageResult is the outcome of one damage resolution
type DamageResult struct {
	Damage        int
	Effectiveness float64
	Critical      bool
}

// ResolveDamage rolls damage for move from attacker to defender.
// Accuracy is the caller's concern. The crit roll is drawn before the variance roll.
// Immune targets take 0; every other hit deals at least 1.
func ResolveDamage(rng Rand, attacker, defender *Combatant, move domain.Move, cfg DamageSettings) DamageResult {
	eff := typechart.Effectiveness(move.Type, defender.Template.Types...)
	if eff == typechart.Immune {
		return DamageResult{Damage: 0, Effectiveness: eff}
	}

	base := math.Floor(rawBaseDamage(attacker, defender, move)) + damageFlat
	stab := stabMultiplier(attacker, move, cfg.STABMultiplier)

	critical := chance(rng, cfg.CritChance)
	critMult := 1.0
	if critical {
		critMult = cfg.CritMultiplier
	}
	roll := float64(intBetween(rng, cfg.RollMin, cfg.RollMax)) / 100

	dmg := int(math.Floor(base * eff * stab * critMult * roll))
	return DamageResult{
		Damage:        max(1, dmg),
		Effectiveness: eff,
		Critical:      critical,
	}
}

// rawBaseDamage is ((2L/5+2) * P * A/D) / 50 before flooring and the flat bonus
func rawBaseDamage(attacker, defender *Combatant, move domain.Move) float64 {
	atk, def := offenseDefense(attacker, defender, move)
	level := float64(attacker.Template.Level)
	return ((2*level/5 + 2) * float64(move.Power) * float64(atk) / float64(max(1, def))) / damageDivisor
}

// offenseDefense picks Attack/Defense for physical moves and the special pair otherwise
func offenseDefense(attacker, defender *Combatant, move domain.Move) (int, int) {
	if move.Category == domain.CategorySpecial {
		return attacker.Template.Stats.SpAtk, defender.Template.Stats.SpDef
	}
	return attacker.Template.Stats.Atk, defender.Template.Stats.Def
}

func stabMultiplier(attacker *Combatant, move domain.Move, bonus float64) float64 {
	if attacker.Template.HasType(move.Type) {
		return bonus
	}
	return 1
}
