package discord

import (
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/LootBot_Go/internal/loot"
)

// LootReloadCommand returns the admin-only /loot_reload command definition
// and handler.
func LootReloadCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	adminPerm := int64(discordgo.PermissionAdministrator)

	cmd := &discordgo.ApplicationCommand{
		Name:                     "loot_reload",
		Description:              "[ADMIN] Reload loot data from the CSV files",
		DefaultMemberPermissions: &adminPerm,
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, svc *loot.Service) {
		if !deferResponse(s, i) {
			return
		}

		catalog, err := svc.Reload()
		if err != nil {
			slog.Error("Loot reload failed", "error", err)
			description := formatFriendlyError(err) + "\n\nThe previous catalog is still live."
			sendEmbed(s, i, createEmbed("⚙️ Loot Reload", description, ColorError, FooterLootBotAdmin))
			return
		}

		description := fmt.Sprintf("♻️ Reloaded **%d** item(s).", catalog.Len())
		if catalog.Dropped > 0 {
			description += fmt.Sprintf("\n⚠️ %d loot row(s) had no matching base row and were skipped.", catalog.Dropped)
		}
		sendEmbed(s, i, createEmbed("⚙️ Loot Reload", description, ColorSuccess, FooterLootBotAdmin))
	}

	return cmd, handler
}
