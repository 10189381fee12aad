package battle

import (
	"math"
)

// TraitContext is what a trait sees when an attack lands
type TraitContext struct {
	Attacker *Combatant
	Defender *Combatant
	Rand     Rand
	Config   TraitSettings
}

// Trait is a hidden once-per-battle ability. Role says which end of an attack
// the owner must be on for the trait to be checked at all.
type Trait struct {
	Key     string
	Name    string
	Hint    string
	Role    string
	Trigger func(ctx TraitContext) bool
	Apply   func(ctx TraitContext) string
}

var lastStand = &Trait{
	Key:  TraitLastStand,
	Name: "Last Stand",
	Hint: "Triggers when a Pokémon drops very low and refuses to fall.",
	Role: RoleDefender,
	Trigger: func(ctx TraitContext) bool {
		d := ctx.Defender
		return d.CurrentHP <= int(math.Floor(float64(d.MaxHP())*ctx.Config.LastStandThreshold))
	},
	Apply: func(ctx TraitContext) string {
		ctx.Defender.Mods.Shield = ctx.Config.LastStandShield
		return "A strange courage flares up… damage is softened once!"
	},
}

var momentum = &Trait{
	Key:  TraitMomentum,
	Name: "Momentum",
	Hint: "Triggers after landing hits back-to-back.",
	Role: RoleAttacker,
	Trigger: func(ctx TraitContext) bool {
		return ctx.Attacker.HitsInRow >= ctx.Config.MomentumHits
	},
	Apply: func(ctx TraitContext) string {
		ctx.Attacker.Mods.PowerBoost = ctx.Config.MomentumBoost
		return "It rides the momentum! One attack gets stronger!"
	},
}

var wildLuck = &Trait{
	Key:  TraitWildLuck,
	Name: "Wild Luck",
	Hint: "Sometimes luck just… happens.",
	Role: RoleAttacker,
	Trigger: func(ctx TraitContext) bool {
		return chance(ctx.Rand, ctx.Config.WildLuckChance)
	},
	Apply: func(ctx TraitContext) string {
		ctx.Attacker.Mods.GuaranteedCrit = true
		return "Luck crackles in the air… a critical strike is guaranteed once!"
	},
}

var traitPool = []*Trait{lastStand, momentum, wildLuck}

// Traits returns the fixed trait pool in assignment order
func Traits() []*Trait {
	return append([]*Trait(nil), traitPool...)
}

// TraitByKey looks up a pool trait
func TraitByKey(key string) (*Trait, bool) {
	for _, t := range traitPool {
		if t.Key == key {
			return t, true
		}
	}
	return nil, false
}

// tryFire runs owner's trait if it matches role, is unused and its trigger holds.
// The trait is marked used before its effect applies so it can never fire twice.
func tryFire(owner *Combatant, role string, ctx TraitContext) (string, bool) {
	t := owner.Trait
	if t == nil || owner.TraitUsed || t.Role != role {
		return "", false
	}
	if !t.Trigger(ctx) {
		return "", false
	}
	owner.TraitUsed = true
	return t.Apply(ctx), true
}

// assignTraits gives each combatant an independent chance at one uniformly chosen trait
func assignTraits(rng Rand, cfg TraitSettings, teams ...Team) {
	for _, team := range teams {
		for _, c := range team {
			if !chance(rng, cfg.AssignChance) {
				continue
			}
			c.Trait = traitPool[rng.IntN(len(traitPool))]
		}
	}
}
