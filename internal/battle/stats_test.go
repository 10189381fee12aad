package battle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/battlesim/internal/domain"
)

func TestDeriveStats(t *testing.T) {
	all := func(v int) domain.BaseStats {
		return domain.BaseStats{
			domain.StatHP: v, domain.StatAttack: v, domain.StatDefense: v,
			domain.StatSpecialAttack: v, domain.StatSpecialDefense: v, domain.StatSpeed: v,
		}
	}

	tests := []struct {
		name  string
		base  domain.BaseStats
		level int
		want  domain.Stats
	}{
		{
			name:  "base 100 at level 50",
			base:  all(100),
			level: 50,
			// floor(231*50/100) = 115
			want: domain.Stats{HP: 175, Atk: 120, Def: 120, SpAtk: 120, SpDef: 120, Speed: 120},
		},
		{
			name:  "base 100 at level 100",
			base:  all(100),
			level: 100,
			want:  domain.Stats{HP: 341, Atk: 236, Def: 236, SpAtk: 236, SpDef: 236, Speed: 236},
		},
		{
			name:  "level 1 floors small values",
			base:  all(50),
			level: 1,
			want:  domain.Stats{HP: 12, Atk: 6, Def: 6, SpAtk: 6, SpDef: 6, Speed: 6},
		},
		{
			name:  "mixed base stats",
			base:  domain.BaseStats{domain.StatHP: 35, domain.StatAttack: 55, domain.StatDefense: 40, domain.StatSpecialAttack: 50, domain.StatSpecialDefense: 50, domain.StatSpeed: 90},
			level: 50,
			want:  domain.Stats{HP: 110, Atk: 75, Def: 60, SpAtk: 70, SpDef: 70, Speed: 110},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DeriveStats(tt.base, tt.level)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDeriveStats_MissingBaseDefaults(t *testing.T) {
	defaults, err := DeriveStats(domain.BaseStats{
		domain.StatHP: DefaultBaseStat, domain.StatAttack: DefaultBaseStat, domain.StatDefense: DefaultBaseStat,
		domain.StatSpecialAttack: DefaultBaseStat, domain.StatSpecialDefense: DefaultBaseStat, domain.StatSpeed: DefaultBaseStat,
	}, 50)
	require.NoError(t, err)

	empty, err := DeriveStats(nil, 50)
	require.NoError(t, err)
	assert.Equal(t, defaults, empty)

	partial, err := DeriveStats(domain.BaseStats{domain.StatSpeed: 150}, 50)
	require.NoError(t, err)
	assert.Equal(t, defaults.HP, partial.HP)
	assert.Equal(t, 170, partial.Speed)
}

func TestDeriveStats_InvalidLevel(t *testing.T) {
	for _, level := range []int{-1, 0, 101} {
		_, err := DeriveStats(domain.BaseStats{}, level)
		assert.ErrorIs(t, err, domain.ErrInvalidLevel, "level %d", level)
	}
}
