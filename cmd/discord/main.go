package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/battlesim/internal/config"
	"github.com/osse101/battlesim/internal/discord"
	"github.com/osse101/battlesim/internal/logger"
)

// DefaultHealthPort serves the bot's /healthz and /metrics
const DefaultHealthPort = "8082"

// CommandFactory creates a Discord command and its handler.
type CommandFactory func() (*discordgo.ApplicationCommand, discord.CommandHandler)

func main() {
	if err := run(); err != nil {
		slog.Error("Discord bot failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadLocal()
	if err != nil {
		return fmt.Errorf("configuration failed: %w", err)
	}
	logger.InitLogger(logger.NewConfig(cfg.LogLevel, cfg.LogFormat, "battlesim-discord", cfg.Version, cfg.Environment, false))

	warnings, err := config.ValidateEnvWithWarnings(config.RequiredDiscordEnv...)
	if err != nil {
		return fmt.Errorf("environment validation failed: %w", err)
	}
	for _, w := range warnings {
		slog.Warn(w)
	}
	slog.Info("Configured API URL", "url", cfg.APIURL)

	bot, err := discord.New(discord.Config{
		Token:   cfg.DiscordToken,
		AppID:   cfg.DiscordAppID,
		GuildID: cfg.DiscordGuildID,
		APIURL:  cfg.APIURL,
		APIKey:  cfg.APIKey,
	})
	if err != nil {
		return fmt.Errorf("failed to create bot: %w", err)
	}

	healthPort := os.Getenv("DISCORD_HEALTH_PORT")
	if healthPort == "" {
		healthPort = DefaultHealthPort
	}
	httpServer := discord.NewHTTPServer(healthPort, bot)
	httpServer.Start()
	defer httpServer.Stop()

	registerCommands(bot, getCommandFactories())

	forceUpdate := os.Getenv("DISCORD_FORCE_COMMAND_UPDATE") == "true"
	if err := bot.RegisterCommands(bot.Registry, forceUpdate); err != nil {
		// already-registered commands keep working
		slog.Error("Failed to register commands", "error", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	return bot.Run(ctx)
}

// getCommandFactories returns every slash command the bot serves
func getCommandFactories() []CommandFactory {
	return []CommandFactory{
		discord.PingCommand,
		discord.BattleCommand,
		discord.SecretsCommand,
		discord.LeaderboardCommand,
		discord.StatsCommand,
	}
}

func registerCommands(bot *discord.Bot, factories []CommandFactory) {
	for _, factory := range factories {
		cmd, handler := factory()
		bot.Registry.Register(cmd, handler)
	}
}
