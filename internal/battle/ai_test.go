package battle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/battlesim/internal/domain"
)

func TestExpectedDamage(t *testing.T) {
	cfg := DefaultConfig()
	atk := newTestCombatant("atk", []string{"fire"}, flatStats(100))
	def := newTestCombatant("def", []string{"psychic"}, flatStats(100))

	// (44 + 2) * 0.925 * 1.03125
	assert.InDelta(t, 43.8796875, ExpectedDamage(atk, def, testSlam, cfg), 1e-9)

	halfAcc := testSlam
	halfAcc.Accuracy = 50
	assert.InDelta(t, 43.8796875/2, ExpectedDamage(atk, def, halfAcc, cfg), 1e-9)

	ghost := newTestCombatant("ghost", []string{"ghost"}, flatStats(100))
	assert.Zero(t, ExpectedDamage(atk, ghost, testSlam, cfg))
}

func TestBestMove_PrefersEffectiveMove(t *testing.T) {
	cfg := DefaultConfig()
	atk := newTestCombatant("atk", []string{"water"}, flatStats(100), testTackle, testSurf)
	def := newTestCombatant("def", []string{"fire"}, flatStats(100))

	rng := NewRand(7)
	for i := 0; i < 50; i++ {
		mv, expected := bestMove(rng, atk, def, cfg)
		assert.Equal(t, testSurf.Name, mv.Name)
		assert.InDelta(t, ExpectedDamage(atk, def, testSurf, cfg), expected, 1e-9)
	}
}

func TestDecideAction_FaintedActive(t *testing.T) {
	cfg := DefaultConfig()
	enemy := newTestCombatant("enemy", []string{"normal"}, flatStats(100), testSlam)

	t.Run("no bench struggles", func(t *testing.T) {
		lone := newTestCombatant("lone", []string{"normal"}, flatStats(100), testSlam)
		lone.setHP(0)
		got := DecideAction(NewRand(1), Team{lone}, 0, enemy, cfg, 0)
		assert.Equal(t, ActionStruggle, got.Kind)
	})

	t.Run("all bench fainted struggles", func(t *testing.T) {
		team := Team{
			newTestCombatant("a", []string{"normal"}, flatStats(100), testSlam),
			newTestCombatant("b", []string{"normal"}, flatStats(100), testSlam),
		}
		team[0].setHP(0)
		team[1].setHP(0)
		got := DecideAction(NewRand(1), team, 0, enemy, cfg, 0)
		assert.Equal(t, ActionStruggle, got.Kind)
	})

	t.Run("eligible bench always switches", func(t *testing.T) {
		for seed := uint64(0); seed < 100; seed++ {
			team := Team{
				newTestCombatant("a", []string{"normal"}, flatStats(100), testSlam),
				newTestCombatant("b", []string{"fire"}, flatStats(100), testEmber),
				newTestCombatant("c", []string{"water"}, flatStats(100), testSurf),
			}
			team[0].setHP(0)
			team[1].setHP(0)
			got := DecideAction(NewRand(seed), team, 0, enemy, cfg, 0)
			require.Equal(t, ActionForcedSwitch, got.Kind)
			assert.Equal(t, 2, got.SwitchTo)
		}
	})
}

func TestDecideAction_NoBenchAlwaysMoves(t *testing.T) {
	cfg := DefaultConfig()
	enemy := newTestCombatant("enemy", []string{"normal"}, flatStats(100), testSlam)
	active := newTestCombatant("active", []string{"water"}, flatStats(100), testSurf)
	active.setHP(1)

	for seed := uint64(0); seed < 50; seed++ {
		got := DecideAction(NewRand(seed), Team{active}, 0, enemy, cfg, 0)
		assert.Equal(t, ActionMove, got.Kind)
		assert.Equal(t, testSurf.Name, got.Move.Name)
	}
}

func TestDecideAction_SwitchProbabilityClamped(t *testing.T) {
	cfg := DefaultConfig()
	enemy := newTestCombatant("enemy", []string{"normal"}, flatStats(100), testSlam)
	team := func() Team {
		return Team{
			newTestCombatant("a", []string{"normal"}, flatStats(100), testSlam),
			newTestCombatant("b", []string{"normal"}, flatStats(100), testSlam),
		}
	}

	// A huge positive bias still caps at 0.95, so a 0.96 draw stays in.
	got := DecideAction(&scriptedRand{fallbackFloat: 0.96}, team(), 0, enemy, cfg, 10)
	assert.Equal(t, ActionMove, got.Kind)

	// A huge negative bias still floors at 0.02, so a 0.01 draw switches.
	got = DecideAction(&scriptedRand{fallbackFloat: 0.01}, team(), 0, enemy, cfg, -10)
	assert.Equal(t, ActionSwitch, got.Kind)
	assert.Equal(t, 1, got.SwitchTo)
}

func TestDecideAction_PrefersSwitchWhenLosing(t *testing.T) {
	cfg := DefaultConfig()
	enemy := newTestCombatant("enemy", []string{"water"}, flatStats(150), testSurf)
	team := Team{
		newTestCombatant("burning", []string{"fire"}, flatStats(60), testEmber),
		newTestCombatant("grassy", []string{"grass"}, flatStats(150), domain.Move{Name: "leaf", Type: "grass", Power: 90, Accuracy: 100, Category: domain.CategorySpecial}),
	}

	// 0.5 sits between the 0.10 baseline and the 0.85 preferred probability.
	got := DecideAction(&scriptedRand{fallbackFloat: 0.5}, team, 0, enemy, cfg, 0)
	assert.Equal(t, ActionSwitch, got.Kind)
	assert.Equal(t, 1, got.SwitchTo)
}

func TestSwitchPreferred(t *testing.T) {
	ai := DefaultConfig().AI
	tests := []struct {
		name     string
		hp       float64
		scoreNow float64
		swScore  float64
		want     bool
	}{
		{name: "healthy and even", hp: 1, scoreNow: 10, swScore: 12, want: false},
		{name: "losing badly with a better option", hp: 1, scoreNow: -20, swScore: -13, want: true},
		{name: "losing badly without a better option", hp: 1, scoreNow: -20, swScore: -15, want: false},
		{name: "low hp with a clearly better option", hp: 0.3, scoreNow: 5, swScore: 9.5, want: true},
		{name: "low hp with a marginal option", hp: 0.3, scoreNow: 5, swScore: 8, want: false},
		{name: "critical hp with a roughly equal option", hp: 0.2, scoreNow: 5, swScore: 4.5, want: true},
		{name: "critical hp with a worse option", hp: 0.2, scoreNow: 5, swScore: 3, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, switchPreferred(tt.hp, tt.scoreNow, tt.swScore, ai))
		})
	}
}
