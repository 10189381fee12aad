package discord

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/battlesim/internal/domain"
	"github.com/osse101/battlesim/internal/handler"
)

func TestFormatBattleLog(t *testing.T) {
	t.Run("fits", func(t *testing.T) {
		assert.Equal(t, "a\nb", formatBattleLog([]string{"a", "b"}, 10))
	})

	t.Run("keeps the end", func(t *testing.T) {
		lines := make([]string, 0, 100)
		for i := 0; i < 100; i++ {
			lines = append(lines, fmt.Sprintf("turn %03d", i))
		}

		out := formatBattleLog(lines, 100)
		assert.LessOrEqual(t, len(out), 100)
		assert.True(t, strings.HasPrefix(out, logElision))
		assert.True(t, strings.HasSuffix(out, "turn 099"))
		assert.NotContains(t, out, "turn 000")
	})
}

func TestFormatFriendlyError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "not found keeps detail",
			err:      &APIError{StatusCode: http.StatusNotFound, Message: "Creature not found"},
			expected: MsgNotFound + "\nCreature not found",
		},
		{
			name:     "bad team",
			err:      &APIError{StatusCode: http.StatusBadRequest, Message: "Each team needs between 1 and 6 creatures"},
			expected: MsgBadTeam + "\nEach team needs between 1 and 6 creatures",
		},
		{
			name:     "rate limited",
			err:      &APIError{StatusCode: http.StatusTooManyRequests},
			expected: MsgRateLimited,
		},
		{
			name:     "upstream busy after retries",
			err:      fmt.Errorf("max retries exceeded: %w", &APIError{StatusCode: http.StatusServiceUnavailable}),
			expected: MsgUpstreamBusy,
		},
		{
			name:     "server error",
			err:      &APIError{StatusCode: http.StatusInternalServerError, Message: "Something went wrong"},
			expected: MsgGenericError,
		},
		{
			name:     "timeout",
			err:      context.DeadlineExceeded,
			expected: MsgTimeout,
		},
		{
			name:     "transport failure",
			err:      fmt.Errorf("max retries exceeded: connection refused"),
			expected: MsgServerUnreachable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatFriendlyError(tt.err))
		})
	}
}

func TestBattleEmbeds(t *testing.T) {
	res := &domain.SimulationResult{
		Summary: domain.BattleSummary{
			Winner: domain.SideBlue,
			Turns:  8,
			Combatants: []domain.CombatantScore{
				{Side: domain.SideRed, Name: "Pikachu", DamageDealt: 40, Fainted: true},
				{Side: domain.SideBlue, Name: "Onix", DamageDealt: 90, Knockouts: 1},
			},
		},
		Log: []string{"⚔️ Battle start!", "🏁 BLUE wins!"},
	}

	embeds := battleEmbeds(res)
	require.Len(t, embeds, 2)
	assert.Equal(t, "⚔️ Battle start!\n🏁 BLUE wins!", embeds[0].Description)

	outcome := embeds[1]
	assert.Equal(t, "🏁 BLUE wins!", outcome.Title)
	assert.Equal(t, ColorBlue, outcome.Color)
	require.Len(t, outcome.Fields, 2)
	assert.Contains(t, outcome.Fields[0].Value, "💀 Pikachu")
	assert.Contains(t, outcome.Fields[1].Value, "✅ Onix (90 dmg, 1 KO)")

	res.Log = nil
	assert.Len(t, battleEmbeds(res), 1)
}

func TestBatchEmbed(t *testing.T) {
	e := batchEmbed(&domain.BatchResult{Battles: 10, RedWins: 7, BlueWins: 3, RedWinRate: 0.7, BlueWinRate: 0.3, AvgTurns: 12})
	assert.Equal(t, ColorRed, e.Color)
	assert.Contains(t, e.Title, "10 battles")
	assert.Contains(t, e.Description, "(70.0%)")
	assert.NotContains(t, e.Description, "Failed")
}

func TestFormatLeaderboard(t *testing.T) {
	assert.Equal(t, "No battles recorded yet.", formatLeaderboard(nil))

	out := formatLeaderboard([]domain.LeaderboardEntry{
		{Rank: 1, CreatureRecord: domain.CreatureRecord{Name: "Mew", Wins: 5, Battles: 6, Knockouts: 9}},
		{Rank: 4, CreatureRecord: domain.CreatureRecord{Name: "Onix", Wins: 1, Battles: 6}},
	})
	assert.Equal(t, "🥇 **Mew** - 5 wins in 6 battles, 9 KOs\n4. **Onix** - 1 wins in 6 battles, 0 KOs", out)
}

func TestFormatSecrets(t *testing.T) {
	out := formatSecrets(&handler.SecretsResponse{
		Secrets: []domain.SecretInfo{
			{Key: "momentum", Name: "Momentum", Hint: "Hits harder after back-to-back hits.", Discovered: true},
			{Key: "last_stand", Name: "???"},
		},
		Discovered: 1,
		Total:      2,
	})
	assert.Contains(t, out, "✨ **Momentum** - Hits harder")
	assert.Contains(t, out, "🔒 ???")
	assert.Contains(t, out, "1 of 2 discovered")
}

func TestFormatMatchStats(t *testing.T) {
	assert.Equal(t, "No battles recorded yet.", formatMatchStats(&handler.MatchStatsResponse{}))

	out := formatMatchStats(&handler.MatchStatsResponse{
		MatchStats:   domain.MatchStats{Battles: 4, RedWins: 3, BlueWins: 1},
		AverageTurns: 10.25,
	})
	assert.Contains(t, out, "Battles: **4**")
	assert.Contains(t, out, "10.2")
}

func stringOpt(name, v string) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{Name: name, Type: discordgo.ApplicationCommandOptionString, Value: v}
}

func intOpt(name string, v int) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{Name: name, Type: discordgo.ApplicationCommandOptionInteger, Value: float64(v)}
}

func TestBuildSimulateRequest(t *testing.T) {
	t.Run("defaults to random narrated battle", func(t *testing.T) {
		req := buildSimulateRequest(map[string]*discordgo.ApplicationCommandInteractionDataOption{})
		assert.Equal(t, domain.MaxTeamSize, req.Red.Random)
		assert.Equal(t, domain.MaxTeamSize, req.Blue.Random)
		assert.True(t, req.Narrate)
		assert.Nil(t, req.Seed)
		assert.Zero(t, req.Runs)
	})

	t.Run("named teams with level and seed", func(t *testing.T) {
		req := buildSimulateRequest(map[string]*discordgo.ApplicationCommandInteractionDataOption{
			"red":   stringOpt("red", "pikachu, charizard"),
			"blue":  stringOpt("blue", " 95 ,"),
			"level": intOpt("level", 30),
			"seed":  intOpt("seed", 42),
		})
		assert.Equal(t, []string{"pikachu", "charizard"}, req.Red.Creatures)
		assert.Zero(t, req.Red.Random)
		assert.Equal(t, []string{"95"}, req.Blue.Creatures)
		assert.Equal(t, 30, req.Blue.Level)
		require.NotNil(t, req.Seed)
		assert.Equal(t, uint64(42), *req.Seed)
	})

	t.Run("runs switch to a silent batch", func(t *testing.T) {
		req := buildSimulateRequest(map[string]*discordgo.ApplicationCommandInteractionDataOption{
			"runs": intOpt("runs", 50),
		})
		assert.Equal(t, 50, req.Runs)
		assert.False(t, req.Narrate)
	})
}

func TestFormatPing(t *testing.T) {
	up := formatPing(42*time.Millisecond, 7*time.Millisecond, true)
	assert.Equal(t, "Pong! 🏓\nGateway: 42ms\nBattle server: 7ms", up)

	down := formatPing(42*time.Millisecond, 0, false)
	assert.True(t, strings.HasSuffix(down, MsgServerUnreachable))
	assert.NotContains(t, down, "Battle server:")
}
