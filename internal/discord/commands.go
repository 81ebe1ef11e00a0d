package discord

import (
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/LootBot_Go/internal/logger"
	"github.com/osse101/LootBot_Go/internal/loot"
	"github.com/osse101/LootBot_Go/internal/metrics"
)

// CommandHandler processes a single slash command interaction.
type CommandHandler func(s *discordgo.Session, i *discordgo.InteractionCreate, svc *loot.Service)

// CommandRegistry maps command names to their definitions and handlers.
type CommandRegistry struct {
	Commands map[string]*discordgo.ApplicationCommand
	Handlers map[string]CommandHandler
}

// NewCommandRegistry creates an empty registry.
func NewCommandRegistry() *CommandRegistry {
	return &CommandRegistry{
		Commands: make(map[string]*discordgo.ApplicationCommand),
		Handlers: make(map[string]CommandHandler),
	}
}

// Register adds a command definition and its handler to the registry.
func (r *CommandRegistry) Register(cmd *discordgo.ApplicationCommand, handler CommandHandler) {
	r.Commands[cmd.Name] = cmd
	r.Handlers[cmd.Name] = handler
}

// Handle dispatches an interaction to the registered handler, if any.
func (r *CommandRegistry) Handle(s *discordgo.Session, i *discordgo.InteractionCreate, svc *loot.Service) {
	name := i.ApplicationCommandData().Name
	h, ok := r.Handlers[name]
	if !ok {
		return
	}

	RecordCommand()
	metrics.CommandsTotal.WithLabelValues(name).Inc()

	log := slog.Default().With("command", name, "command_id", logger.GenerateCommandID())
	log.Info("Handling command")

	h(s, i, svc)
}

// RegisterCommands syncs the registry's command definitions with Discord.
// When the definitions already match what Discord has, the bulk overwrite is
// skipped to avoid the propagation delay it causes.
func (b *Bot) RegisterCommands(registry *CommandRegistry, forceUpdate bool) error {
	existing, err := b.Session.ApplicationCommands(b.AppID, "")
	if err != nil {
		return fmt.Errorf("fetching registered commands: %w", err)
	}

	desired := make([]*discordgo.ApplicationCommand, 0, len(registry.Commands))
	for _, cmd := range registry.Commands {
		desired = append(desired, cmd)
	}

	if !forceUpdate && commandsEqual(existing, desired) {
		slog.Info("Commands unchanged, skipping registration", "count", len(desired))
		return nil
	}

	if _, err := b.Session.ApplicationCommandBulkOverwrite(b.AppID, "", desired); err != nil {
		return fmt.Errorf("registering commands: %w", err)
	}

	slog.Info("Commands registered", "count", len(desired))
	return nil
}

func commandsEqual(existing, desired []*discordgo.ApplicationCommand) bool {
	if len(existing) != len(desired) {
		return false
	}

	byName := make(map[string]*discordgo.ApplicationCommand, len(existing))
	for _, cmd := range existing {
		byName[cmd.Name] = cmd
	}

	for _, want := range desired {
		got, ok := byName[want.Name]
		if !ok || !commandEqual(got, want) {
			return false
		}
	}
	return true
}

func commandEqual(a, b *discordgo.ApplicationCommand) bool {
	if a.Name != b.Name || a.Description != b.Description {
		return false
	}

	aPerms := a.DefaultMemberPermissions
	bPerms := b.DefaultMemberPermissions
	if (aPerms == nil) != (bPerms == nil) {
		return false
	}
	if aPerms != nil && *aPerms != *bPerms {
		return false
	}

	if len(a.Options) != len(b.Options) {
		return false
	}
	for i := range a.Options {
		if !optionEqual(a.Options[i], b.Options[i]) {
			return false
		}
	}
	return true
}

func optionEqual(a, b *discordgo.ApplicationCommandOption) bool {
	if a.Type != b.Type || a.Name != b.Name || a.Description != b.Description || a.Required != b.Required {
		return false
	}
	if len(a.Choices) != len(b.Choices) {
		return false
	}
	for i := range a.Choices {
		if a.Choices[i].Name != b.Choices[i].Name || a.Choices[i].Value != b.Choices[i].Value {
			return false
		}
	}
	return true
}

// deferResponse acknowledges the interaction so the handler has time to do
// real work. Returns false when the acknowledgement itself failed.
func deferResponse(s *discordgo.Session, i *discordgo.InteractionCreate) bool {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	})
	if err != nil {
		slog.Error("Failed to defer interaction response", "error", err)
		return false
	}
	return true
}

// respondError edits the deferred response with a plain error message.
func respondError(s *discordgo.Session, i *discordgo.InteractionCreate, msg string) {
	_, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Content: &msg,
	})
	if err != nil {
		slog.Error("Failed to send error response", "error", err)
	}
}

func getOptions(i *discordgo.InteractionCreate) []*discordgo.ApplicationCommandInteractionDataOption {
	return i.ApplicationCommandData().Options
}

// createEmbed builds a standard embed. An empty footer falls back to the
// default bot footer.
func createEmbed(title, description string, color int, footerText string) *discordgo.MessageEmbed {
	if footerText == "" {
		footerText = FooterLootBot
	}
	return &discordgo.MessageEmbed{
		Title:       title,
		Description: description,
		Color:       color,
		Footer: &discordgo.MessageEmbedFooter{
			Text: footerText,
		},
	}
}

// sendEmbed edits the deferred response with the given embed.
func sendEmbed(s *discordgo.Session, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed) {
	_, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Embeds: &[]*discordgo.MessageEmbed{embed},
	})
	if err != nil {
		slog.Error("Failed to send embed response", "error", err)
	}
}
