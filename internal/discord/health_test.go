package discord

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/LootBot_Go/internal/loot"
)

func TestHandleHealth(t *testing.T) {
	ctx := SetupTestContext(t)
	svc := newTestLootService(t, testBaseCSV, testLootCSV)
	bot := &Bot{Session: ctx.Session, Loot: svc}
	srv := NewHTTPServer(0, bot)

	t.Run("degraded while gateway disconnected", func(t *testing.T) {
		rec := httptest.NewRecorder()
		srv.handleHealth(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

		var health HealthStatus
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &health))
		assert.Equal(t, "degraded", health.Status)
		assert.False(t, health.Connected)
		assert.Equal(t, 2, health.CatalogItems)
	})

	t.Run("healthy when connected", func(t *testing.T) {
		bot.Session.DataReady = true
		defer func() { bot.Session.DataReady = false }()

		rec := httptest.NewRecorder()
		srv.handleHealth(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

		assert.Equal(t, http.StatusOK, rec.Code)

		var health HealthStatus
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &health))
		assert.Equal(t, "healthy", health.Status)
		assert.True(t, health.Connected)
		assert.False(t, health.CatalogLoadedAt.IsZero())
	})

	t.Run("degraded without a catalog", func(t *testing.T) {
		empty := loot.NewService(loot.NewLoader("a", "b"))
		emptyBot := &Bot{Session: ctx.Session, Loot: empty}
		emptySrv := NewHTTPServer(0, emptyBot)

		rec := httptest.NewRecorder()
		emptySrv.handleHealth(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}

func TestRecordCommand(t *testing.T) {
	before := atomic.LoadInt64(&commandCounter)
	RecordCommand()
	RecordCommand()
	assert.Equal(t, before+2, atomic.LoadInt64(&commandCounter))
	assert.NotNil(t, lastCommandTime.Load())
}
