package battle

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/battlesim/internal/domain"
	"github.com/osse101/battlesim/internal/typechart"
)

func TestResolveDamage_Formula(t *testing.T) {
	cfg := DefaultConfig().Damage

	tests := []struct {
		name         string
		attackTypes  []string
		defendTypes  []string
		move         domain.Move
		rng          *scriptedRand
		wantDamage   int
		wantEff      float64
		wantCritical bool
	}{
		{
			// base = floor(22*100*100/100/50)+2 = 46
			name:        "neutral max roll",
			attackTypes: []string{"fire"},
			defendTypes: []string{"psychic"},
			move:        testSlam,
			rng:         &scriptedRand{floats: []float64{0.5}, ints: []int{15}},
			wantDamage:  46,
			wantEff:     1,
		},
		{
			name:        "stab",
			attackTypes: []string{"normal"},
			defendTypes: []string{"psychic"},
			move:        testSlam,
			rng:         &scriptedRand{floats: []float64{0.5}, ints: []int{15}},
			wantDamage:  69,
			wantEff:     1,
		},
		{
			// 46 * 1.5 * 0.85 = 58.65
			name:         "critical min roll",
			attackTypes:  []string{"fire"},
			defendTypes:  []string{"psychic"},
			move:         testSlam,
			rng:          &scriptedRand{floats: []float64{0.01}, ints: []int{0}},
			wantDamage:   58,
			wantEff:      1,
			wantCritical: true,
		},
		{
			// 46 * 4 * 1.5 stab
			name:        "double super effective special",
			attackTypes: []string{"fire"},
			defendTypes: []string{"grass", "bug"},
			move:        testEmber,
			rng:         &scriptedRand{floats: []float64{0.5}, ints: []int{15}},
			wantDamage:  276,
			wantEff:     4,
		},
		{
			name:        "resisted",
			attackTypes: []string{"psychic"},
			defendTypes: []string{"rock"},
			move:        testSlam,
			rng:         &scriptedRand{floats: []float64{0.5}, ints: []int{15}},
			wantDamage:  23,
			wantEff:     0.5,
		},
		{
			name:        "immune deals nothing",
			attackTypes: []string{"normal"},
			defendTypes: []string{"ghost"},
			move:        testSlam,
			rng:         &scriptedRand{floats: []float64{0.01}, ints: []int{15}},
			wantDamage:  0,
			wantEff:     0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			atk := newTestCombatant("attacker", tt.attackTypes, flatStats(100))
			def := newTestCombatant("defender", tt.defendTypes, flatStats(100))

			got := ResolveDamage(tt.rng, atk, def, tt.move, cfg)
			assert.Equal(t, tt.wantDamage, got.Damage)
			assert.Equal(t, tt.wantEff, got.Effectiveness)
			assert.Equal(t, tt.wantCritical, got.Critical)
		})
	}
}

func TestResolveDamage_FloorsAtOne(t *testing.T) {
	atk := newTestCombatant("weak", []string{"bug"}, domain.Stats{HP: 10, Atk: 1, Def: 1, SpAtk: 1, SpDef: 1, Speed: 1})
	def := newTestCombatant("wall", []string{"steel"}, domain.Stats{HP: 500, Atk: 1, Def: 999, SpAtk: 1, SpDef: 999, Speed: 1})
	weakMove := domain.Move{Name: "peck", Type: "flying", Power: 1, Accuracy: 100, Category: domain.CategoryPhysical}

	got := ResolveDamage(&scriptedRand{fallbackFloat: 0.99}, atk, def, weakMove, DefaultConfig().Damage)
	assert.Equal(t, 1, got.Damage)
	assert.Equal(t, typechart.Resisted, got.Effectiveness)
}

func TestResolveDamage_ZeroOnlyWhenImmune(t *testing.T) {
	rng := NewRand(42)
	types := typechart.Types()
	cfg := DefaultConfig().Damage

	for i := 0; i < 2000; i++ {
		atkType := types[rng.IntN(len(types))]
		defTypes := []string{types[rng.IntN(len(types))]}
		if rng.IntN(2) == 0 {
			defTypes = append(defTypes, types[rng.IntN(len(types))])
		}
		move := domain.Move{Name: "probe", Type: atkType, Power: 10 + rng.IntN(140), Accuracy: 100, Category: domain.CategoryPhysical}
		atk := newTestCombatant("a", []string{atkType}, flatStats(5+rng.IntN(300)))
		def := newTestCombatant("d", defTypes, flatStats(5+rng.IntN(300)))

		got := ResolveDamage(rng, atk, def, move, cfg)
		assert.GreaterOrEqual(t, got.Damage, 0)
		if got.Effectiveness == 0 {
			assert.Zero(t, got.Damage, "%s vs %v", atkType, defTypes)
		} else {
			assert.GreaterOrEqual(t, got.Damage, 1, "%s vs %v", atkType, defTypes)
		}
	}
}

func TestResolveDamage_CategorySelectsStats(t *testing.T) {
	atk := newTestCombatant("mixed", []string{"psychic"}, domain.Stats{HP: 100, Atk: 200, Def: 100, SpAtk: 50, SpDef: 100, Speed: 100})
	def := newTestCombatant("target", []string{"normal"}, domain.Stats{HP: 100, Atk: 100, Def: 100, SpAtk: 100, SpDef: 100, Speed: 100})

	physical := domain.Move{Name: "strike", Type: "fighting", Power: 80, Accuracy: 100, Category: domain.CategoryPhysical}
	special := physical
	special.Category = domain.CategorySpecial

	cfg := DefaultConfig().Damage
	hit := ResolveDamage(&scriptedRand{floats: []float64{0.5}, ints: []int{15}}, atk, def, physical, cfg)
	spec := ResolveDamage(&scriptedRand{floats: []float64{0.5}, ints: []int{15}}, atk, def, special, cfg)
	assert.Greater(t, hit.Damage, spec.Damage)
}
