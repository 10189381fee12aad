package domain

import "time"

// CombatantView is the public snapshot of one roster member during a match
type CombatantView struct {
	Name    string   `json:"name"`
	Display string   `json:"display_name"`
	Level   int      `json:"level"`
	Types   []string `json:"types"`
	HP      int      `json:"hp"`
	MaxHP   int      `json:"max_hp"`
	Fainted bool     `json:"fainted"`
	Active  bool     `json:"active"`
	Sprite  string   `json:"sprite,omitempty"`
}

// MatchState is the public snapshot of a live or finished match
type MatchState struct {
	ID        string          `json:"id"`
	Turn      int             `json:"turn"`
	Over      bool            `json:"over"`
	Winner    Side            `json:"winner,omitempty"`
	Draw      bool            `json:"draw,omitempty"`
	Truncated bool            `json:"truncated,omitempty"`
	Red       []CombatantView `json:"red"`
	Blue      []CombatantView `json:"blue"`
	Events    []BattleEvent   `json:"events,omitempty"` // events of the most recent call
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// SimulationResult is the outcome of a battle played to completion
type SimulationResult struct {
	Summary BattleSummary `json:"summary"`
	Log     []string      `json:"log,omitempty"`
	Events  []BattleEvent `json:"events,omitempty"`
}

// BatchResult aggregates many independent simulations of the same matchup
type BatchResult struct {
	Battles     int     `json:"battles"`
	RedWins     int     `json:"red_wins"`
	BlueWins    int     `json:"blue_wins"`
	Draws       int     `json:"draws"`
	Truncated   int     `json:"truncated"`
	Failed      int     `json:"failed"`
	RedWinRate  float64 `json:"red_win_rate"`
	BlueWinRate float64 `json:"blue_win_rate"`
	AvgTurns    float64 `json:"avg_turns"`
}

// Add folds one finished battle into the batch
func (b *BatchResult) Add(s BattleSummary) {
	b.Battles++
	b.AvgTurns += float64(s.Turns)
	switch {
	case s.Truncated:
		b.Truncated++
	case s.Draw:
		b.Draws++
	case s.Won(SideRed):
		b.RedWins++
	case s.Won(SideBlue):
		b.BlueWins++
	}
}

// Finalize turns the running totals into rates
func (b *BatchResult) Finalize() {
	if b.Battles == 0 {
		return
	}
	n := float64(b.Battles)
	b.AvgTurns /= n
	b.RedWinRate = float64(b.RedWins) / n
	b.BlueWinRate = float64(b.BlueWins) / n
}
