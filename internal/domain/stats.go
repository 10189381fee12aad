package domain

import "time"

// MatchStats aggregates outcomes across every recorded battle
type MatchStats struct {
	Battles   int       `json:"battles"`
	RedWins   int       `json:"red_wins"`
	BlueWins  int       `json:"blue_wins"`
	Draws     int       `json:"draws"`
	Truncated int       `json:"truncated"`
	Turns     int       `json:"turns"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AverageTurns returns the mean battle length, or 0 before any battle
func (s MatchStats) AverageTurns() float64 {
	if s.Battles == 0 {
		return 0
	}
	return float64(s.Turns) / float64(s.Battles)
}

// CreatureRecord is the running tally for one creature across battles
type CreatureRecord struct {
	Name        string `json:"name"`
	Battles     int    `json:"battles"`
	Wins        int    `json:"wins"`
	Knockouts   int    `json:"knockouts"`
	DamageDealt int    `json:"damage_dealt"`
	Faints      int    `json:"faints"`
}

// LeaderboardEntry is one ranked row of the creature leaderboard
type LeaderboardEntry struct {
	Rank int `json:"rank"`
	CreatureRecord
}

// SecretInfo describes a secret trait as visible to players
type SecretInfo struct {
	Key        string `json:"key"`
	Name       string `json:"name"` // "???" until discovered
	Hint       string `json:"hint,omitempty"`
	Discovered bool   `json:"discovered"`
}
