package discord

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/LootBot_Go/internal/loot"
)

func TestLootReloadCommand_Success(t *testing.T) {
	ctx := SetupTestContext(t)
	svc := newTestLootService(t, testBaseCSV, testLootCSV)
	_, handler := LootReloadCommand()

	handler(ctx.Session, newCommandInteraction("loot_reload"), svc)

	embed := ctx.LastEmbed(t)
	assert.Contains(t, embed.Description, "Reloaded **2** item(s)")
	assert.Equal(t, ColorSuccess, embed.Color)
	require.NotNil(t, embed.Footer)
	assert.Equal(t, FooterLootBotAdmin, embed.Footer.Text)
}

func TestLootReloadCommand_ReportsDroppedRows(t *testing.T) {
	ctx := SetupTestContext(t)
	lootCSV := "item_id,rarity\n1,Rare\n2,Common\n99,Legendary\n"
	svc := newTestLootService(t, testBaseCSV, lootCSV)
	_, handler := LootReloadCommand()

	handler(ctx.Session, newCommandInteraction("loot_reload"), svc)

	embed := ctx.LastEmbed(t)
	assert.Contains(t, embed.Description, "1 loot row(s) had no matching base row")
}

func TestLootReloadCommand_FailureKeepsCatalog(t *testing.T) {
	ctx := SetupTestContext(t)

	dir := t.TempDir()
	basePath := filepath.Join(dir, "items_base.csv")
	lootPath := filepath.Join(dir, "items_loot.csv")
	require.NoError(t, os.WriteFile(basePath, []byte(testBaseCSV), 0o644))
	require.NoError(t, os.WriteFile(lootPath, []byte(testLootCSV), 0o644))

	svc := loot.NewService(loot.NewLoader(basePath, lootPath))
	_, err := svc.Reload()
	require.NoError(t, err)

	broken := "item_id,name,subtype\n1,Sword,Longsword\n"
	require.NoError(t, os.WriteFile(basePath, []byte(broken), 0o644))

	_, handler := LootReloadCommand()
	handler(ctx.Session, newCommandInteraction("loot_reload"), svc)

	embed := ctx.LastEmbed(t)
	assert.Equal(t, ColorError, embed.Color)
	assert.Contains(t, embed.Description, "category")
	assert.Contains(t, embed.Description, "previous catalog is still live")

	result, err := svc.Query(loot.Query{})
	require.NoError(t, err)
	assert.Equal(t, 2, result.Total)
}
