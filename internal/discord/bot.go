package discord

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/LootBot_Go/internal/loot"
)

// Bot wraps the Discord session together with the loot service the command
// handlers operate on.
type Bot struct {
	Session  *discordgo.Session
	Loot     *loot.Service
	AppID    string
	Registry *CommandRegistry
}

// Config holds the Discord connection settings.
type Config struct {
	Token string
	AppID string
}

// New creates a bot with a fresh session. The gateway is not opened until
// Start is called.
func New(cfg Config, svc *loot.Service) (*Bot, error) {
	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("creating Discord session: %w", err)
	}

	return &Bot{
		Session:  session,
		Loot:     svc,
		AppID:    cfg.AppID,
		Registry: NewCommandRegistry(),
	}, nil
}

// Start registers the gateway handlers and opens the connection.
func (b *Bot) Start() error {
	b.Session.AddHandler(b.ready)
	b.Session.AddHandler(b.interactionCreate)

	if err := b.Session.Open(); err != nil {
		return fmt.Errorf("opening Discord gateway: %w", err)
	}

	slog.Info("Discord bot is now running. Press CTRL-C to exit.")
	return nil
}

// Stop closes the gateway connection.
func (b *Bot) Stop() error {
	return b.Session.Close()
}

// Run starts the bot and blocks until an interrupt or termination signal
// arrives.
func (b *Bot) Run() error {
	if err := b.Start(); err != nil {
		return err
	}
	defer b.Stop()

	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	slog.Info("Shutting down")
	return nil
}

func (b *Bot) ready(s *discordgo.Session, r *discordgo.Ready) {
	slog.Info("Bot is ready", "user", r.User.Username)
}

func (b *Bot) interactionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}
	b.Registry.Handle(s, i, b.Loot)
}
