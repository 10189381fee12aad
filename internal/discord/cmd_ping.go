package discord

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/bwmarrin/discordgo"
)

// Discord drops interactions that are not answered within three seconds.
const pingTimeout = 2 * time.Second

// PingCommand reports gateway latency and how long the battle server took to
// answer its liveness probe.
func PingCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "ping",
		Description: "Check if the bot and the battle server are alive",
	}

	handler := func(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		hctx, cancel := context.WithTimeout(ctx, pingTimeout)
		defer cancel()

		start := time.Now()
		ok := client.Healthy(hctx)

		err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseChannelMessageWithSource,
			Data: &discordgo.InteractionResponseData{
				Content: formatPing(s.HeartbeatLatency(), time.Since(start), ok),
				Flags:   discordgo.MessageFlagsEphemeral,
			},
		})
		if err != nil {
			slog.Error("Failed to respond to ping", "error", err)
		}
	}

	return cmd, handler
}

func formatPing(gateway, api time.Duration, apiOK bool) string {
	msg := fmt.Sprintf("Pong! 🏓\nGateway: %dms", gateway.Milliseconds())
	if !apiOK {
		return msg + "\n" + MsgServerUnreachable
	}
	return fmt.Sprintf("%s\nBattle server: %dms", msg, api.Milliseconds())
}
