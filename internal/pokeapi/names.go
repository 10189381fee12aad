package pokeapi

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NormalizeName turns user input into a provider identifier:
// trimmed, lower-cased, with internal whitespace runs replaced by "-".
func NormalizeName(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), "-")
}

// DisplayName renders a provider identifier for people ("mr-mime" -> "Mr Mime").
func DisplayName(s string) string {
	// Casers carry state, so each call gets its own.
	return cases.Title(language.English).String(strings.ReplaceAll(s, "-", " "))
}
