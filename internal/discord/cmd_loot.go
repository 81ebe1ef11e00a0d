package discord

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/bwmarrin/discordgo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/osse101/LootBot_Go/internal/domain"
	"github.com/osse101/LootBot_Go/internal/loot"
)

var titleCaser = cases.Title(language.English)

// LootCommand returns the /loot command definition and handler.
func LootCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	rarityChoices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(domain.Rarities()))
	for _, r := range domain.Rarities() {
		rarityChoices = append(rarityChoices, &discordgo.ApplicationCommandOptionChoice{
			Name:  string(r),
			Value: string(r),
		})
	}

	cmd := &discordgo.ApplicationCommand{
		Name:        "loot",
		Description: "Find loot items with optional filters",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "rarity",
				Description: "Common, Uncommon, Rare, Very Rare, Legendary",
				Choices:     rarityChoices,
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "category",
				Description: "Armor, Weapon, Wondrous Item, etc.",
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "subtype",
				Description: "Partial subtype match",
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "tag",
				Description: "Comma-separated tags; any match counts",
			},
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "limit",
				Description: fmt.Sprintf("Max results to show (default %d, max %d)", loot.DefaultLimit, loot.MaxLimit),
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, svc *loot.Service) {
		if !deferResponse(s, i) {
			return
		}

		query := parseLootOptions(getOptions(i))

		result, err := svc.Query(query)
		if err != nil {
			slog.Error("Loot query failed", "error", err)
			respondError(s, i, formatFriendlyError(err))
			return
		}

		if result.Total == 0 {
			respondError(s, i, MsgNoMatches)
			return
		}

		embed := createEmbed("🗡️ Loot Search", renderResult(result, query, svc.Current()), ColorLoot, "")
		sendEmbed(s, i, embed)
	}

	return cmd, handler
}

// parseLootOptions maps interaction options onto a query. An absent limit
// option means the default; an explicit limit is passed through for clamping,
// so `limit: 0` clamps to the minimum rather than the default.
func parseLootOptions(options []*discordgo.ApplicationCommandInteractionDataOption) loot.Query {
	query := loot.Query{Limit: loot.DefaultLimit}
	for _, opt := range options {
		switch opt.Name {
		case "rarity":
			query.Rarity = opt.StringValue()
		case "category":
			query.Category = opt.StringValue()
		case "subtype":
			query.Subtype = opt.StringValue()
		case "tag":
			query.Tags = opt.StringValue()
		case "limit":
			query.Limit = int(opt.IntValue())
		}
	}
	return query
}

func renderResult(result *loot.Result, query loot.Query, catalog *loot.Catalog) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Found %d item(s). Showing %d:\n", result.Total, len(result.Items))

	for _, item := range result.Items {
		b.WriteString(formatItem(item))
		b.WriteString("\n")
	}

	if filters := describeFilters(query); filters != "" {
		b.WriteString("\nFilters: " + filters)
	}

	if query.Tags != "" && catalog != nil && !catalog.HasTags {
		b.WriteString("\n_(tag filter ignored: the data has no tags column)_")
	}

	return b.String()
}

func formatItem(item domain.Item) string {
	kind := item.Category
	if item.Subtype != "" {
		kind += " — " + item.Subtype
	}
	line := fmt.Sprintf("• **%s** (%s) — %s", item.Name, kind, item.Rarity)
	if len(item.Tags) > 0 {
		line += fmt.Sprintf(" `%s`", strings.Join(item.Tags, ", "))
	}
	return line
}

func describeFilters(q loot.Query) string {
	var parts []string
	if q.Rarity != "" {
		parts = append(parts, "rarity="+titleCaser.String(strings.ToLower(q.Rarity)))
	}
	if q.Category != "" {
		parts = append(parts, "category="+titleCaser.String(strings.ToLower(q.Category)))
	}
	if q.Subtype != "" {
		parts = append(parts, "subtype="+strings.ToLower(q.Subtype))
	}
	if q.Tags != "" {
		parts = append(parts, "tag="+strings.Join(loot.SplitTags(q.Tags), ","))
	}
	return strings.Join(parts, " ")
}
