package battle

import (
	"fmt"

	"github.com/osse101/battlesim/internal/domain"
)

// OneShotModifiers are transient effects that apply to exactly one future hit
type OneShotModifiers struct {
	Shield         float64 // multiplier on the next incoming hit
	PowerBoost     float64 // multiplier on the next outgoing move's power
	GuaranteedCrit bool
}

func neutralModifiers() OneShotModifiers {
	return OneShotModifiers{Shield: neutralShield, PowerBoost: neutralBoost}
}

// Combatant is the mutable in-battle state of one creature.
// Fainted always equals CurrentHP <= 0 after any mutation made through its methods.
type Combatant struct {
	Template    *domain.CombatantTemplate
	CurrentHP   int
	Fainted     bool
	Trait       *Trait
	TraitUsed   bool
	HitsInRow   int
	Mods        OneShotModifiers
	DamageDealt int
	Knockouts   int
}

// NewCombatant clones a template into fresh battle state at full HP with no trait
// and neutral modifiers. A template without moves gets the fallback move.
func NewCombatant(t *domain.CombatantTemplate) *Combatant {
	tmpl := *t
	tmpl.Types = append([]string(nil), t.Types...)
	if len(t.Moves) == 0 {
		tmpl.Moves = []domain.Move{domain.TackleMove}
	} else {
		tmpl.Moves = append([]domain.Move(nil), t.Moves...)
	}

	c := &Combatant{
		Template: &tmpl,
		Mods:     neutralModifiers(),
	}
	c.setHP(tmpl.Stats.HP)
	return c
}

// Name returns the display name
func (c *Combatant) Name() string {
	return c.Template.Label()
}

// MaxHP returns the derived maximum HP
func (c *Combatant) MaxHP() int {
	return c.Template.Stats.HP
}

// HPFraction is CurrentHP over MaxHP, guarding a zero max
func (c *Combatant) HPFraction() float64 {
	return float64(c.CurrentHP) / float64(max(1, c.MaxHP()))
}

// Moves returns the combatant's move set
func (c *Combatant) Moves() []domain.Move {
	return c.Template.Moves
}

// applyDamage subtracts dmg from HP, flooring at zero, and returns the HP actually removed
func (c *Combatant) applyDamage(dmg int) int {
	mustInvariant(dmg >= 0, "negative damage")
	before := c.CurrentHP
	c.setHP(c.CurrentHP - dmg)
	return before - c.CurrentHP
}

// setHP clamps hp into [0, MaxHP] and keeps Fainted in sync
func (c *Combatant) setHP(hp int) {
	c.CurrentHP = min(max(0, hp), max(0, c.MaxHP()))
	c.Fainted = c.CurrentHP <= 0
}

// Team is an ordered roster. Order never changes during a battle.
type Team []*Combatant

// NewTeam clones every template into fresh combatants
func NewTeam(templates []*domain.CombatantTemplate) Team {
	team := make(Team, len(templates))
	for i, t := range templates {
		team[i] = NewCombatant(t)
	}
	return team
}

// nextAlive finds the first non-fainted member scanning from start and wrapping around.
// Returns -1 when the whole team has fainted.
func (t Team) nextAlive(start int) int {
	n := len(t)
	for i := 0; i < n; i++ {
		idx := (start + i) % n
		if !t[idx].Fainted {
			return idx
		}
	}
	return -1
}

// Defeated reports whether every member has fainted
func (t Team) Defeated() bool {
	return t.nextAlive(0) < 0
}

// Alive counts non-fainted members
func (t Team) Alive() int {
	n := 0
	for _, c := range t {
		if !c.Fainted {
			n++
		}
	}
	return n
}

func validateTeamSize(n int) error {
	if n < 1 || n > domain.MaxTeamSize {
		return fmt.Errorf("%w: got %d", domain.ErrTeamSize, n)
	}
	return nil
}

// mustInvariant panics on a violated engine invariant; these are programmer errors
func mustInvariant(ok bool, msg string) {
	if !ok {
		panic("battle: invariant violated: " + msg)
	}
}
