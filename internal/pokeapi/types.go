package pokeapi

// Wire shapes for the subset of the provider's JSON this package reads.

type namedResource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type apiCreature struct {
	ID      int            `json:"id"`
	Name    string         `json:"name"`
	Types   []apiTypeSlot  `json:"types"`
	Stats   []apiStat      `json:"stats"`
	Moves   []apiMoveEntry `json:"moves"`
	Sprites apiSprites     `json:"sprites"`
}

type apiTypeSlot struct {
	Slot int           `json:"slot"`
	Type namedResource `json:"type"`
}

type apiStat struct {
	BaseStat int           `json:"base_stat"`
	Stat     namedResource `json:"stat"`
}

type apiMoveEntry struct {
	Move namedResource `json:"move"`
}

type apiSprites struct {
	FrontDefault *string                     `json:"front_default"`
	Other        map[string]apiSpriteVariant `json:"other"`
}

type apiSpriteVariant struct {
	FrontDefault *string `json:"front_default"`
}

// apiMove is a move detail record. Power and Accuracy are null for status moves.
type apiMove struct {
	Name        string        `json:"name"`
	Power       *int          `json:"power"`
	Accuracy    *int          `json:"accuracy"`
	Type        namedResource `json:"type"`
	DamageClass namedResource `json:"damage_class"`
}

type apiList struct {
	Count   int             `json:"count"`
	Next    *string         `json:"next"`
	Results []namedResource `json:"results"`
}
