package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchStats_AverageTurns(t *testing.T) {
	assert.Zero(t, MatchStats{}.AverageTurns())
	assert.Equal(t, 12.5, MatchStats{Battles: 4, Turns: 50}.AverageTurns())
}

func TestLeaderboardEntry_FlattensRecord(t *testing.T) {
	data, err := json.Marshal(LeaderboardEntry{
		Rank:           1,
		CreatureRecord: CreatureRecord{Name: "Gengar", Battles: 3, Wins: 2, Knockouts: 5},
	})
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, "Gengar", got["name"])
	assert.EqualValues(t, 1, got["rank"])
	assert.EqualValues(t, 5, got["knockouts"])
}

func TestSecretInfo_HidesEmptyHint(t *testing.T) {
	data, err := json.Marshal(SecretInfo{Key: "momentum", Name: "???"})
	require.NoError(t, err)
	assert.NotContains(t, string(data), "hint")
}
