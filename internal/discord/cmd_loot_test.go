package discord

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/LootBot_Go/internal/domain"
	"github.com/osse101/LootBot_Go/internal/loot"
)

const testBaseCSV = "item_id,name,category,subtype\n1,Sword,Weapon,Longsword\n2,Cloak,Armor,Cloak\n"

const testLootCSV = "item_id,rarity,tags\n1,Rare,\n2,Common,stealth\n"

func TestLootCommand_RarityFilter(t *testing.T) {
	ctx := SetupTestContext(t)
	svc := newTestLootService(t, testBaseCSV, testLootCSV)
	_, handler := LootCommand()

	handler(ctx.Session, newCommandInteraction("loot", stringOption("rarity", "Rare")), svc)

	embed := ctx.LastEmbed(t)
	assert.Contains(t, embed.Description, "Found 1 item(s). Showing 1:")
	assert.Contains(t, embed.Description, "Sword")
	assert.NotContains(t, embed.Description, "Cloak")
	require.NotNil(t, embed.Footer)
	assert.Equal(t, FooterLootBot, embed.Footer.Text)
}

func TestLootCommand_TagFilter(t *testing.T) {
	ctx := SetupTestContext(t)
	svc := newTestLootService(t, testBaseCSV, testLootCSV)
	_, handler := LootCommand()

	handler(ctx.Session, newCommandInteraction("loot", stringOption("tag", "stealth")), svc)

	embed := ctx.LastEmbed(t)
	assert.Contains(t, embed.Description, "Cloak")
	assert.NotContains(t, embed.Description, "Sword")
}

func TestLootCommand_LimitTruncatesButReportsTotal(t *testing.T) {
	ctx := SetupTestContext(t)
	svc := newTestLootService(t, testBaseCSV, testLootCSV)
	_, handler := LootCommand()

	handler(ctx.Session, newCommandInteraction("loot", intOption("limit", 1)), svc)

	embed := ctx.LastEmbed(t)
	assert.Contains(t, embed.Description, "Found 2 item(s). Showing 1:")
	assert.Contains(t, embed.Description, "Sword")
	assert.NotContains(t, embed.Description, "Cloak")
}

func TestLootCommand_ExplicitZeroLimitClampsToOne(t *testing.T) {
	ctx := SetupTestContext(t)
	svc := newTestLootService(t, testBaseCSV, testLootCSV)
	_, handler := LootCommand()

	handler(ctx.Session, newCommandInteraction("loot", intOption("limit", 0)), svc)

	embed := ctx.LastEmbed(t)
	assert.Contains(t, embed.Description, "Found 2 item(s). Showing 1:")
}

func TestLootCommand_NoMatches(t *testing.T) {
	ctx := SetupTestContext(t)
	svc := newTestLootService(t, testBaseCSV, testLootCSV)
	_, handler := LootCommand()

	handler(ctx.Session, newCommandInteraction("loot", stringOption("category", "Potion")), svc)

	assert.Equal(t, MsgNoMatches, ctx.LastContent(t))
}

func TestLootCommand_InvalidRarity(t *testing.T) {
	ctx := SetupTestContext(t)
	svc := newTestLootService(t, testBaseCSV, testLootCSV)
	_, handler := LootCommand()

	handler(ctx.Session, newCommandInteraction("loot", stringOption("rarity", "mythic")), svc)

	content := ctx.LastContent(t)
	assert.Contains(t, content, "Invalid rarity")
	assert.Contains(t, content, "Legendary")
}

func TestLootCommand_TagFilterOnTaglessData(t *testing.T) {
	ctx := SetupTestContext(t)
	svc := newTestLootService(t, testBaseCSV, "item_id,rarity\n1,Rare\n2,Common\n")
	_, handler := LootCommand()

	handler(ctx.Session, newCommandInteraction("loot", stringOption("tag", "stealth")), svc)

	embed := ctx.LastEmbed(t)
	assert.Contains(t, embed.Description, "Found 2 item(s)")
	assert.Contains(t, embed.Description, "tag filter ignored")
}

func TestLootCommand_DataUnavailable(t *testing.T) {
	t.Run("before any load attempt", func(t *testing.T) {
		ctx := SetupTestContext(t)
		svc := loot.NewService(loot.NewLoader("missing_base.csv", "missing_loot.csv"))
		_, handler := LootCommand()

		handler(ctx.Session, newCommandInteraction("loot"), svc)

		assert.Contains(t, ctx.LastContent(t), "Loot data is unavailable")
	})

	t.Run("after a failed load the stored error is rendered", func(t *testing.T) {
		ctx := SetupTestContext(t)
		svc := loot.NewService(loot.NewLoader("missing_base.csv", "missing_loot.csv"))
		_, err := svc.Reload()
		require.Error(t, err)
		_, handler := LootCommand()

		handler(ctx.Session, newCommandInteraction("loot"), svc)

		content := ctx.LastContent(t)
		assert.Contains(t, content, "Data file missing")
		assert.Contains(t, content, "missing_base.csv")
	})
}

func TestFormatItem(t *testing.T) {
	tests := []struct {
		name string
		item domain.Item
		want string
	}{
		{
			name: "with subtype and tags",
			item: domain.Item{Name: "Cloak", Category: "Armor", Subtype: "Cloak", Rarity: domain.RarityCommon, Tags: []string{"stealth"}},
			want: "• **Cloak** (Armor — Cloak) — Common `stealth`",
		},
		{
			name: "without subtype or tags",
			item: domain.Item{Name: "Orb", Category: "Wondrous Item", Rarity: domain.RarityLegendary},
			want: "• **Orb** (Wondrous Item) — Legendary",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatItem(tt.item))
		})
	}
}

func TestParseLootOptions(t *testing.T) {
	options := []*discordgo.ApplicationCommandInteractionDataOption{
		stringOption("rarity", "Rare"),
		stringOption("category", "Weapon"),
		stringOption("subtype", "sword"),
		stringOption("tag", "fire,ice"),
		intOption("limit", 25),
	}

	query := parseLootOptions(options)
	assert.Equal(t, loot.Query{
		Rarity:   "Rare",
		Category: "Weapon",
		Subtype:  "sword",
		Tags:     "fire,ice",
		Limit:    25,
	}, query)
}

func TestParseLootOptions_LimitDefaulting(t *testing.T) {
	t.Run("absent limit means the default", func(t *testing.T) {
		query := parseLootOptions(nil)
		assert.Equal(t, loot.DefaultLimit, query.Limit)
	})

	t.Run("explicit zero is passed through for clamping", func(t *testing.T) {
		query := parseLootOptions([]*discordgo.ApplicationCommandInteractionDataOption{
			intOption("limit", 0),
		})
		assert.Zero(t, query.Limit)
	})
}

func TestDescribeFilters(t *testing.T) {
	got := describeFilters(loot.Query{Rarity: "rare", Category: "armor", Tags: "stealth, Fire"})
	assert.Contains(t, got, "rarity=Rare")
	assert.Contains(t, got, "category=Armor")
	assert.Contains(t, got, "tag=stealth,fire")
}
