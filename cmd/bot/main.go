package main

import (
	"log/slog"
	"os"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/LootBot_Go/internal/config"
	"github.com/osse101/LootBot_Go/internal/discord"
	"github.com/osse101/LootBot_Go/internal/logger"
	"github.com/osse101/LootBot_Go/internal/loot"
)

// version is set at build time via -ldflags
var version = "dev"

// CommandFactory produces a command definition and its handler.
type CommandFactory func() (*discordgo.ApplicationCommand, discord.CommandHandler)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger.InitLogger(logger.NewConfig(
		cfg.LogLevel, cfg.LogFormat, "loot-bot", version, cfg.Environment,
		cfg.Environment == "dev",
	))

	svc := loot.NewService(loot.NewLoader(cfg.BasePath, cfg.LootPath))
	if _, err := svc.Reload(); err != nil {
		// Keep running: the bot can report the problem in chat and an
		// admin can fix the files and run /loot_reload.
		slog.Error("Initial catalog load failed", "error", err)
	}

	bot, err := discord.New(discord.Config{Token: cfg.Token, AppID: cfg.AppID}, svc)
	if err != nil {
		slog.Error("Failed to create bot", "error", err)
		os.Exit(1)
	}

	registerCommands(bot)

	forceUpdate := os.Getenv("DISCORD_FORCE_COMMAND_UPDATE") == "true"
	if err := bot.RegisterCommands(bot.Registry, forceUpdate); err != nil {
		slog.Error("Failed to register commands", "error", err)
	}

	ops := discord.NewHTTPServer(cfg.HealthPort, bot)
	ops.Start()
	defer func() {
		if err := ops.Stop(); err != nil {
			slog.Error("Failed to stop ops server", "error", err)
		}
	}()

	if err := bot.Run(); err != nil {
		slog.Error("Bot exited with error", "error", err)
		os.Exit(1)
	}
}

func registerCommands(bot *discord.Bot) {
	factories := []CommandFactory{
		discord.LootCommand,
		discord.LootReloadCommand,
		discord.PingCommand,
	}
	for _, factory := range factories {
		cmd, handler := factory()
		bot.Registry.Register(cmd, handler)
	}
}
