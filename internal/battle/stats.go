package battle

import (
	"fmt"

	"github.com/osse101/battlesim/internal/domain"
)

// DeriveStats computes combat stats from base stats using maximal IVs, zero EVs
// and a neutral nature. Missing base stats default to DefaultBaseStat.
func DeriveStats(base domain.BaseStats, level int) (domain.Stats, error) {
	if level < MinLevel || level > MaxLevel {
		return domain.Stats{}, fmt.Errorf("%w: got %d", domain.ErrInvalidLevel, level)
	}

	return domain.Stats{
		HP:    scaledBase(base, domain.StatHP, level) + level + 10,
		Atk:   otherStat(base, domain.StatAttack, level),
		Def:   otherStat(base, domain.StatDefense, level),
		SpAtk: otherStat(base, domain.StatSpecialAttack, level),
		SpDef: otherStat(base, domain.StatSpecialDefense, level),
		Speed: otherStat(base, domain.StatSpeed, level),
	}, nil
}

func otherStat(base domain.BaseStats, name string, level int) int {
	return scaledBase(base, name, level) + 5
}

// scaledBase is floor((2*base+31)*level/100); integer division floors for non-negative operands
func scaledBase(base domain.BaseStats, name string, level int) int {
	b, ok := base[name]
	if !ok {
		b = DefaultBaseStat
	}
	return (2*b + perfectIV) * level / 100
}
