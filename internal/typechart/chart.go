// Package typechart holds the static attack-type by defense-type multiplier table.
package typechart

// Multipliers a single attack/defense pair can take
const (
	Immune      = 0.0
	Resisted    = 0.5
	Neutral     = 1.0
	SuperEffect = 2.0
)

// chart lists only non-neutral pairs; anything missing is Neutral.
var chart = map[string]map[string]float64{
	"normal":   {"rock": Resisted, "steel": Resisted, "ghost": Immune},
	"fire":     {"grass": SuperEffect, "ice": SuperEffect, "bug": SuperEffect, "steel": SuperEffect, "fire": Resisted, "water": Resisted, "rock": Resisted, "dragon": Resisted},
	"water":    {"fire": SuperEffect, "ground": SuperEffect, "rock": SuperEffect, "water": Resisted, "grass": Resisted, "dragon": Resisted},
	"electric": {"water": SuperEffect, "flying": SuperEffect, "electric": Resisted, "grass": Resisted, "dragon": Resisted, "ground": Immune},
	"grass":    {"water": SuperEffect, "ground": SuperEffect, "rock": SuperEffect, "fire": Resisted, "grass": Resisted, "poison": Resisted, "flying": Resisted, "bug": Resisted, "dragon": Resisted, "steel": Resisted},
	"ice":      {"grass": SuperEffect, "ground": SuperEffect, "flying": SuperEffect, "dragon": SuperEffect, "fire": Resisted, "water": Resisted, "ice": Resisted, "steel": Resisted},
	"fighting": {"normal": SuperEffect, "ice": SuperEffect, "rock": SuperEffect, "dark": SuperEffect, "steel": SuperEffect, "poison": Resisted, "flying": Resisted, "psychic": Resisted, "bug": Resisted, "fairy": Resisted, "ghost": Immune},
	"poison":   {"grass": SuperEffect, "fairy": SuperEffect, "poison": Resisted, "ground": Resisted, "rock": Resisted, "ghost": Resisted, "steel": Immune},
	"ground":   {"fire": SuperEffect, "electric": SuperEffect, "poison": SuperEffect, "rock": SuperEffect, "steel": SuperEffect, "grass": Resisted, "bug": Resisted, "flying": Immune},
	"flying":   {"grass": SuperEffect, "fighting": SuperEffect, "bug": SuperEffect, "electric": Resisted, "rock": Resisted, "steel": Resisted},
	"psychic":  {"fighting": SuperEffect, "poison": SuperEffect, "psychic": Resisted, "steel": Resisted, "dark": Immune},
	"bug":      {"grass": SuperEffect, "psychic": SuperEffect, "dark": SuperEffect, "fire": Resisted, "fighting": Resisted, "poison": Resisted, "flying": Resisted, "ghost": Resisted, "steel": Resisted, "fairy": Resisted},
	"rock":     {"fire": SuperEffect, "ice": SuperEffect, "flying": SuperEffect, "bug": SuperEffect, "fighting": Resisted, "ground": Resisted, "steel": Resisted},
	"ghost":    {"psychic": SuperEffect, "ghost": SuperEffect, "dark": Resisted, "normal": Immune},
	"dragon":   {"dragon": SuperEffect, "steel": Resisted, "fairy": Immune},
	"dark":     {"psychic": SuperEffect, "ghost": SuperEffect, "fighting": Resisted, "dark": Resisted, "fairy": Resisted},
	"steel":    {"ice": SuperEffect, "rock": SuperEffect, "fairy": SuperEffect, "fire": Resisted, "water": Resisted, "electric": Resisted, "steel": Resisted},
	"fairy":    {"fighting": SuperEffect, "dragon": SuperEffect, "dark": SuperEffect, "fire": Resisted, "poison": Resisted, "steel": Resisted},
}

// types keeps the canonical listing order
var types = []string{
	"normal", "fire", "water", "electric", "grass", "ice", "fighting", "poison", "ground",
	"flying", "psychic", "bug", "rock", "ghost", "dragon", "dark", "steel", "fairy",
}

// Types returns every known elemental type in canonical order
func Types() []string {
	out := make([]string, len(types))
	copy(out, types)
	return out
}

// Known reports whether typ is in the table
func Known(typ string) bool {
	_, ok := chart[typ]
	return ok
}

// Pair returns the multiplier for a single attack/defense pair. Unknown pairs are neutral.
func Pair(attack, defense string) float64 {
	if m, ok := chart[attack][defense]; ok {
		return m
	}
	return Neutral
}

// Effectiveness multiplies the pairwise lookups of attack against every defender type.
func Effectiveness(attack string, defenders ...string) float64 {
	mult := Neutral
	for _, d := range defenders {
		mult *= Pair(attack, d)
	}
	return mult
}
