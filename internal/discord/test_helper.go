package discord

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/LootBot_Go/internal/loot"
)

// MockRoundTripper intercepts the session's HTTP requests so handlers can be
// exercised without talking to Discord.
type MockRoundTripper struct {
	RoundTripFunc func(req *http.Request) (*http.Response, error)
}

func (m *MockRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	return m.RoundTripFunc(req)
}

// TestContext bundles a mocked session with the responses the handlers sent
// through it.
type TestContext struct {
	Session       *discordgo.Session
	DiscordMocks  *MockRoundTripper
	CapturedEdits []*discordgo.WebhookEdit
}

// SetupTestContext creates a session whose transport records interaction
// response edits instead of hitting the Discord API.
func SetupTestContext(t *testing.T) *TestContext {
	t.Helper()

	session, err := discordgo.New("Bot test-token")
	if err != nil {
		t.Fatalf("creating test session: %v", err)
	}

	ctx := &TestContext{Session: session}
	ctx.DiscordMocks = &MockRoundTripper{
		RoundTripFunc: func(req *http.Request) (*http.Response, error) {
			if req.Method == http.MethodPatch && req.Body != nil {
				body, _ := io.ReadAll(req.Body)
				var edit discordgo.WebhookEdit
				if err := json.Unmarshal(body, &edit); err == nil {
					ctx.CapturedEdits = append(ctx.CapturedEdits, &edit)
				}
			}
			return &http.Response{
				StatusCode: http.StatusOK,
				Body:       io.NopCloser(bytes.NewBufferString(`{}`)),
				Header:     http.Header{"Content-Type": []string{"application/json"}},
			}, nil
		},
	}
	session.Client = &http.Client{Transport: ctx.DiscordMocks}

	return ctx
}

// LastEdit returns the most recent captured response edit.
func (c *TestContext) LastEdit(t *testing.T) *discordgo.WebhookEdit {
	t.Helper()
	if len(c.CapturedEdits) == 0 {
		t.Fatal("no interaction response edits captured")
	}
	return c.CapturedEdits[len(c.CapturedEdits)-1]
}

// LastEmbed returns the first embed of the most recent response edit.
func (c *TestContext) LastEmbed(t *testing.T) *discordgo.MessageEmbed {
	t.Helper()
	edit := c.LastEdit(t)
	if edit.Embeds == nil || len(*edit.Embeds) == 0 {
		t.Fatal("last response edit carries no embeds")
	}
	return (*edit.Embeds)[0]
}

// LastContent returns the content of the most recent response edit.
func (c *TestContext) LastContent(t *testing.T) string {
	t.Helper()
	edit := c.LastEdit(t)
	if edit.Content == nil {
		t.Fatal("last response edit carries no content")
	}
	return *edit.Content
}

// newTestLootService writes the given CSVs to a temp dir and returns a
// loaded service.
func newTestLootService(t *testing.T, base, lootCSV string) *loot.Service {
	t.Helper()

	dir := t.TempDir()
	basePath := filepath.Join(dir, "items_base.csv")
	lootPath := filepath.Join(dir, "items_loot.csv")
	if err := os.WriteFile(basePath, []byte(base), 0o644); err != nil {
		t.Fatalf("writing base file: %v", err)
	}
	if err := os.WriteFile(lootPath, []byte(lootCSV), 0o644); err != nil {
		t.Fatalf("writing loot file: %v", err)
	}

	svc := loot.NewService(loot.NewLoader(basePath, lootPath))
	if _, err := svc.Reload(); err != nil {
		t.Fatalf("loading test data: %v", err)
	}
	return svc
}

// newCommandInteraction builds a slash command interaction as the gateway
// would deliver it.
func newCommandInteraction(name string, options ...*discordgo.ApplicationCommandInteractionDataOption) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			Type: discordgo.InteractionApplicationCommand,
			Data: discordgo.ApplicationCommandInteractionData{
				Name:    name,
				Options: options,
			},
			Member: &discordgo.Member{
				User: &discordgo.User{
					ID:       "test-user",
					Username: "Tester",
				},
			},
		},
	}
}

func stringOption(name, value string) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{
		Name:  name,
		Type:  discordgo.ApplicationCommandOptionString,
		Value: value,
	}
}

func intOption(name string, value int) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{
		Name: name,
		Type: discordgo.ApplicationCommandOptionInteger,
		// discordgo decodes JSON numbers as float64
		Value: float64(value),
	}
}
