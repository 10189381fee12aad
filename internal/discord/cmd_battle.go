package discord

import (
	"context"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/battlesim/internal/domain"
	"github.com/osse101/battlesim/internal/handler"
)

const maxBatchRuns = 1000

var (
	minLevel = 1.0
	minRuns  = 1.0
)

// BattleCommand returns the battle command definition and handler
func BattleCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "battle",
		Description: "Pit team Red against team Blue",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "red",
				Description: "Red's creatures, comma separated (default: random team)",
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "blue",
				Description: "Blue's creatures, comma separated (default: random team)",
			},
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "level",
				Description: "Level for every creature (default: 50)",
				MinValue:    &minLevel,
				MaxValue:    100,
			},
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "runs",
				Description: "Simulate many battles and show win rates",
				MinValue:    &minRuns,
				MaxValue:    maxBatchRuns,
			},
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "seed",
				Description: "Seed for a reproducible battle",
			},
		},
	}

	handler := func(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		if !deferResponse(s, i) {
			return
		}

		resp, err := client.Simulate(ctx, buildSimulateRequest(optionMap(i)))
		if err != nil {
			respondFriendlyError(s, i, err)
			return
		}

		switch {
		case resp.Batch != nil:
			sendEmbed(s, i, batchEmbed(resp.Batch))
		case resp.Result != nil:
			sendEmbed(s, i, battleEmbeds(resp.Result)...)
		default:
			respondError(s, i, MsgGenericError)
		}
	}

	return cmd, handler
}

func buildSimulateRequest(opts map[string]*discordgo.ApplicationCommandInteractionDataOption) handler.SimulateRequest {
	var level int
	if opt, ok := opts["level"]; ok {
		level = int(opt.IntValue())
	}

	req := handler.SimulateRequest{
		Red:     teamRequest(opts["red"], level),
		Blue:    teamRequest(opts["blue"], level),
		Narrate: true,
	}
	if opt, ok := opts["runs"]; ok && opt.IntValue() > 1 {
		req.Runs = int(opt.IntValue())
		req.Narrate = false
	}
	if opt, ok := opts["seed"]; ok {
		seed := uint64(opt.IntValue())
		req.Seed = &seed
	}
	return req
}

// teamRequest reads a comma-separated roster; an empty one becomes a full random team
func teamRequest(opt *discordgo.ApplicationCommandInteractionDataOption, level int) handler.TeamRequest {
	team := handler.TeamRequest{Level: level}
	if opt != nil {
		for _, part := range strings.Split(opt.StringValue(), ",") {
			if name := strings.TrimSpace(part); name != "" {
				team.Creatures = append(team.Creatures, name)
			}
		}
	}
	if len(team.Creatures) == 0 {
		team.Random = domain.MaxTeamSize
	}
	return team
}
