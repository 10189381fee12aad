package domain

import "strings"

// Side identifies one of the two teams in a battle
type Side string

const (
	SideRed  Side = "red"
	SideBlue Side = "blue"
)

// Sides lists both sides in resolution order
var Sides = [2]Side{SideRed, SideBlue}

// Index returns 0 for red and 1 for blue
func (s Side) Index() int {
	if s == SideBlue {
		return 1
	}
	return 0
}

// Opponent returns the other side
func (s Side) Opponent() Side {
	if s == SideBlue {
		return SideRed
	}
	return SideBlue
}

// Label is the upper-case form used in narration
func (s Side) Label() string {
	return strings.ToUpper(string(s))
}

// Valid reports whether s names a known side
func (s Side) Valid() bool {
	return s == SideRed || s == SideBlue
}

// BattleEventKind classifies a narrated battle event
type BattleEventKind string

const (
	BattleEventStart      BattleEventKind = "battle_start"
	BattleEventSwitch     BattleEventKind = "switch"
	BattleEventSendOut    BattleEventKind = "send_out"
	BattleEventMiss       BattleEventKind = "miss"
	BattleEventTrait      BattleEventKind = "trait"
	BattleEventDiscovered BattleEventKind = "secret_discovered"
	BattleEventAttack     BattleEventKind = "attack"
	BattleEventFaint      BattleEventKind = "faint"
	BattleEventMatchEnd   BattleEventKind = "match_end"
)

// BattleEvent is a structured description of something that happened during a turn.
// It carries enough detail for a renderer to build text without re-deriving battle logic.
type BattleEvent struct {
	Kind          BattleEventKind `json:"kind"`
	Turn          int             `json:"turn"`
	Side          Side            `json:"side,omitempty"`
	Actor         string          `json:"actor,omitempty"`
	Target        string          `json:"target,omitempty"`
	Move          string          `json:"move,omitempty"`
	Damage        int             `json:"damage,omitempty"`
	Effectiveness float64         `json:"effectiveness,omitempty"`
	Critical      bool            `json:"critical,omitempty"`
	TargetHP      int             `json:"target_hp,omitempty"`
	TargetMaxHP   int             `json:"target_max_hp,omitempty"`
	TraitKey      string          `json:"trait_key,omitempty"`
	TraitName     string          `json:"trait_name,omitempty"` // "???" until discovered
	TraitHint     string          `json:"trait_hint,omitempty"`
	TraitOwner    string          `json:"trait_owner,omitempty"` // "attacker" or "defender"
	Message       string          `json:"message,omitempty"`
	Winner        Side            `json:"winner,omitempty"`
}

// BattleSummary is the final outcome of a completed battle
type BattleSummary struct {
	MatchID    string           `json:"match_id"`
	Winner     Side             `json:"winner,omitempty"`
	Draw       bool             `json:"draw,omitempty"`
	Turns      int              `json:"turns"`
	Truncated  bool             `json:"truncated,omitempty"` // stopped by the driver's turn backstop
	Combatants []CombatantScore `json:"combatants"`
}

// CombatantScore is a per-creature tally taken from a finished battle
type CombatantScore struct {
	Side        Side   `json:"side"`
	Name        string `json:"name"`
	DamageDealt int    `json:"damage_dealt"`
	Knockouts   int    `json:"knockouts"`
	Fainted     bool   `json:"fainted"`
}

// Decided reports whether the battle ended with a winner
func (s BattleSummary) Decided() bool {
	return !s.Draw && !s.Truncated && s.Winner.Valid()
}

// Won reports whether side won the battle
func (s BattleSummary) Won(side Side) bool {
	return s.Decided() && s.Winner == side
}
