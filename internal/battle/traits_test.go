package battle

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/battlesim/internal/domain"
)

func traitCtx(atk, def *Combatant, rng Rand) TraitContext {
	return TraitContext{Attacker: atk, Defender: def, Rand: rng, Config: DefaultConfig().Traits}
}

func TestLastStand(t *testing.T) {
	atk := newTestCombatant("atk", []string{"normal"}, flatStats(100))
	def := newTestCombatant("def", []string{"normal"}, flatStats(100))
	def.Trait = lastStand

	// threshold is floor(100*0.12) = 12
	def.setHP(13)
	_, fired := tryFire(def, RoleDefender, traitCtx(atk, def, &scriptedRand{}))
	assert.False(t, fired)
	assert.False(t, def.TraitUsed)

	def.setHP(12)
	msg, fired := tryFire(def, RoleDefender, traitCtx(atk, def, &scriptedRand{}))
	require.True(t, fired)
	assert.Contains(t, msg, "softened")
	assert.Equal(t, 0.5, def.Mods.Shield)
	assert.True(t, def.TraitUsed)

	def.Mods.Shield = neutralShield
	_, fired = tryFire(def, RoleDefender, traitCtx(atk, def, &scriptedRand{}))
	assert.False(t, fired, "trait must not retrigger")
	assert.Equal(t, neutralShield, def.Mods.Shield)
}

func TestMomentum(t *testing.T) {
	atk := newTestCombatant("atk", []string{"normal"}, flatStats(100))
	def := newTestCombatant("def", []string{"normal"}, flatStats(100))
	atk.Trait = momentum

	atk.HitsInRow = 1
	_, fired := tryFire(atk, RoleAttacker, traitCtx(atk, def, &scriptedRand{}))
	assert.False(t, fired)

	atk.HitsInRow = 2
	_, fired = tryFire(atk, RoleAttacker, traitCtx(atk, def, &scriptedRand{}))
	require.True(t, fired)
	assert.Equal(t, 1.25, atk.Mods.PowerBoost)

	atk.HitsInRow = 5
	_, fired = tryFire(atk, RoleAttacker, traitCtx(atk, def, &scriptedRand{}))
	assert.False(t, fired)
}

func TestWildLuck(t *testing.T) {
	atk := newTestCombatant("atk", []string{"normal"}, flatStats(100))
	def := newTestCombatant("def", []string{"normal"}, flatStats(100))
	atk.Trait = wildLuck

	_, fired := tryFire(atk, RoleAttacker, traitCtx(atk, def, &scriptedRand{floats: []float64{0.5}}))
	assert.False(t, fired)
	assert.False(t, atk.TraitUsed)

	_, fired = tryFire(atk, RoleAttacker, traitCtx(atk, def, &scriptedRand{floats: []float64{0.01}}))
	require.True(t, fired)
	assert.True(t, atk.Mods.GuaranteedCrit)
}

func TestTraitRoleMismatch(t *testing.T) {
	atk := newTestCombatant("atk", []string{"normal"}, flatStats(100))
	def := newTestCombatant("def", []string{"normal"}, flatStats(100))
	def.Trait = momentum
	def.HitsInRow = 3

	_, fired := tryFire(def, RoleDefender, traitCtx(atk, def, &scriptedRand{}))
	assert.False(t, fired, "attacker traits are not checked while defending")
}

func TestAssignTraits(t *testing.T) {
	cfg := DefaultConfig().Traits
	team := Team{
		newTestCombatant("a", []string{"normal"}, flatStats(50)),
		newTestCombatant("b", []string{"normal"}, flatStats(50)),
		newTestCombatant("c", []string{"normal"}, flatStats(50)),
	}

	assignTraits(&scriptedRand{fallbackFloat: 0.5}, cfg, team)
	for _, c := range team {
		assert.Nil(t, c.Trait)
	}

	assignTraits(&scriptedRand{fallbackFloat: 0.1, ints: []int{0, 1, 2}}, cfg, team)
	assert.Equal(t, TraitLastStand, team[0].Trait.Key)
	assert.Equal(t, TraitMomentum, team[1].Trait.Key)
	assert.Equal(t, TraitWildLuck, team[2].Trait.Key)
}

func TestTraitPool(t *testing.T) {
	pool := Traits()
	require.Len(t, pool, 3)

	for _, tr := range pool {
		got, ok := TraitByKey(tr.Key)
		require.True(t, ok)
		assert.Same(t, tr, got)
		assert.NotEmpty(t, tr.Hint)
	}
	_, ok := TraitByKey("telepathy")
	assert.False(t, ok)
}

func TestTraitsNeverRetriggerInBattle(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Traits.AssignChance = 1
	cfg.Traits.WildLuckChance = 0.5

	for seed := uint64(1); seed <= 40; seed++ {
		red := []*domain.CombatantTemplate{
			newTemplate("r1", []string{"fire"}, flatStats(120), testEmber, testTackle),
			newTemplate("r2", []string{"water"}, flatStats(110), testSurf, testTackle),
			newTemplate("r3", []string{"normal"}, flatStats(100), testSlam),
		}
		blue := []*domain.CombatantTemplate{
			newTemplate("b1", []string{"grass"}, flatStats(115), testSlam),
			newTemplate("b2", []string{"fire"}, flatStats(105), testEmber),
			newTemplate("b3", []string{"water"}, flatStats(125), testSurf),
		}

		s, err := Start(context.Background(), red, blue, Options{Config: cfg, Rand: NewRand(seed)})
		require.NoError(t, err)

		fired := map[string]int{}
		for turns := 0; !s.IsOver() && turns < 500; turns++ {
			events, err := s.AdvanceTurn(context.Background())
			require.NoError(t, err)
			for _, ev := range eventsOfKind(events, domain.BattleEventTrait) {
				fired[string(ev.Side)+"/"+ev.Actor]++
			}
		}
		for who, n := range fired {
			assert.Equal(t, 1, n, "seed %d: %s fired %d times", seed, who, n)
		}
	}
}
