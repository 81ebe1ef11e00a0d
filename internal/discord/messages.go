package discord

import (
	"errors"
	"fmt"
	"strings"

	"github.com/osse101/LootBot_Go/internal/domain"
)

// Friendly message constants for Discord responses
const (
	MsgNoMatches       = "🔍 **No items matched your filters.**"
	MsgDataUnavailable = "📦 **Loot data is unavailable.**\nAsk an admin to check the data files and run /loot_reload."
	MsgGenericError    = "❌ Something went wrong."
)

// Footer constants for standardized embed footers
const (
	FooterLootBot      = "LootBot"
	FooterLootBotAdmin = "LootBot Admin"
)

// Embed colors
const (
	ColorLoot    = 0x3498db // Blue
	ColorSuccess = 0x2ecc71 // Green
	ColorError   = 0xe74c3c // Red
)

// formatFriendlyError turns domain errors from load and filter operations
// into actionable chat messages. Anything unrecognized falls through with a
// generic prefix so the bot never swallows an error silently.
func formatFriendlyError(err error) string {
	var fileErr *domain.MissingFileError
	var colErr *domain.MissingColumnError
	var filterErr *domain.InvalidFilterError

	switch {
	case errors.As(err, &fileErr):
		return fmt.Sprintf("📄 **Data file missing**\nCould not read `%s`.", fileErr.Path)
	case errors.As(err, &colErr):
		return fmt.Sprintf("🧾 **Data file malformed**\n`%s` is missing required column(s): **%s**.",
			colErr.File, strings.Join(colErr.Columns, ", "))
	case errors.As(err, &filterErr):
		return fmt.Sprintf("⚠️ **Invalid %s**\n%q is not recognized. Allowed values: %s.",
			filterErr.Field, filterErr.Value, strings.Join(filterErr.Allowed, ", "))
	case errors.Is(err, domain.ErrEmptyFile):
		return "🧾 **Data file malformed**\nOne of the data files has no header row."
	case errors.Is(err, domain.ErrCatalogUnavailable):
		return MsgDataUnavailable
	default:
		return "❌ " + err.Error()
	}
}
