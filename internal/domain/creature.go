package domain

// MoveCategory selects which offensive and defensive stats a move uses
type MoveCategory string

const (
	CategoryPhysical MoveCategory = "physical"
	CategorySpecial  MoveCategory = "special"
)

// IsDamaging reports whether the category deals damage (status moves are filtered out at load)
func (c MoveCategory) IsDamaging() bool {
	return c == CategoryPhysical || c == CategorySpecial
}

// Base stat names as reported by the creature data provider
const (
	StatHP             = "hp"
	StatAttack         = "attack"
	StatDefense        = "defense"
	StatSpecialAttack  = "special-attack"
	StatSpecialDefense = "special-defense"
	StatSpeed          = "speed"
)

// MovesPerCombatant is the fixed size of every move set
const MovesPerCombatant = 4

// MaxTeamSize is the largest team allowed in a battle
const MaxTeamSize = 6

// Move is a single attack. Immutable once loaded.
type Move struct {
	Name        string       `json:"name"`
	DisplayName string       `json:"display_name,omitempty"`
	Type        string       `json:"type"`
	Power       int          `json:"power"`
	Accuracy    int          `json:"accuracy"` // 0-100
	Category    MoveCategory `json:"category"`
}

// Label returns the display name, falling back to the raw name
func (m Move) Label() string {
	if m.DisplayName != "" {
		return m.DisplayName
	}
	return m.Name
}

// TackleMove is the fallback used when a creature has no usable damaging move
var TackleMove = Move{
	Name:        "tackle",
	DisplayName: "Tackle",
	Type:        "normal",
	Power:       40,
	Accuracy:    100,
	Category:    CategoryPhysical,
}

// BaseStats maps provider stat names to base values. Missing entries default at derivation time.
type BaseStats map[string]int

// Stats holds derived combat stats
type Stats struct {
	HP    int `json:"hp"`
	Atk   int `json:"atk"`
	Def   int `json:"def"`
	SpAtk int `json:"sp_atk"`
	SpDef int `json:"sp_def"`
	Speed int `json:"speed"`
}

// CombatantTemplate is a fully loaded creature ready to be cloned into a battle.
// Created when a team is assembled; immutable thereafter.
type CombatantTemplate struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	DisplayName string    `json:"display_name"`
	Level       int       `json:"level"`
	Types       []string  `json:"types"`
	Base        BaseStats `json:"base_stats"`
	Stats       Stats     `json:"stats"`
	Moves       []Move    `json:"moves"`
	Sprite      string    `json:"sprite,omitempty"`
}

// Label returns the display name, falling back to the raw name
func (t *CombatantTemplate) Label() string {
	if t.DisplayName != "" {
		return t.DisplayName
	}
	return t.Name
}

// HasType reports whether the template carries the given elemental type
func (t *CombatantTemplate) HasType(typ string) bool {
	for _, own := range t.Types {
		if own == typ {
			return true
		}
	}
	return false
}

// CreatureSummary is a lightweight dex listing entry
type CreatureSummary struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url,omitempty"`
}

// CreaturePage is one page of the dex listing
type CreaturePage struct {
	Count   int               `json:"count"`
	Offset  int               `json:"offset"`
	Limit   int               `json:"limit"`
	Results []CreatureSummary `json:"results"`
}
