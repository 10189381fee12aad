package discord

import (
	"context"

	"github.com/bwmarrin/discordgo"
)

const defaultLeaderboardLimit = 10

var minLimit = 1.0

// LeaderboardCommand returns the leaderboard command definition and handler
func LeaderboardCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "leaderboard",
		Description: "Top creatures by wins",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "limit",
				Description: "Number of creatures to show (default: 10)",
				MinValue:    &minLimit,
				MaxValue:    25,
			},
		},
	}

	handler := func(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		if !deferResponse(s, i) {
			return
		}

		limit := defaultLeaderboardLimit
		if opt, ok := optionMap(i)["limit"]; ok {
			limit = int(opt.IntValue())
		}

		entries, err := client.GetLeaderboard(ctx, limit)
		if err != nil {
			respondFriendlyError(s, i, err)
			return
		}
		sendEmbed(s, i, createEmbed("🏆 Leaderboard", formatLeaderboard(entries), ColorTeal))
	}

	return cmd, handler
}

// StatsCommand returns the stats command definition and handler
func StatsCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "stats",
		Description: "Battle totals across every recorded match",
	}

	handler := func(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		if !deferResponse(s, i) {
			return
		}

		st, err := client.GetMatchStats(ctx)
		if err != nil {
			respondFriendlyError(s, i, err)
			return
		}
		sendEmbed(s, i, createEmbed("📊 Battle Stats", formatMatchStats(st), ColorGold))
	}

	return cmd, handler
}

// SecretsCommand returns the secrets command definition and handler
func SecretsCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "secrets",
		Description: "Secret traits discovered so far",
	}

	handler := func(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		if !deferResponse(s, i) {
			return
		}

		resp, err := client.GetSecrets(ctx)
		if err != nil {
			respondFriendlyError(s, i, err)
			return
		}
		sendEmbed(s, i, createEmbed("🔮 Secret Traits", formatSecrets(resp), ColorMagic))
	}

	return cmd, handler
}
