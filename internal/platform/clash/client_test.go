package clash

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SlpAus/royale-coach-backend/internal/platform/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatPlayerTag(t *testing.T) {
	assert.Equal(t, "#ABC123", FormatPlayerTag("#abc123"))
	assert.Equal(t, "#ABC123", FormatPlayerTag("abc123"))
	assert.Equal(t, "#2PP", FormatPlayerTag("2pp"))
}

func TestEncodePlayerTag(t *testing.T) {
	assert.Equal(t, "%23ABC123", EncodePlayerTag("#abc123"))
	assert.Equal(t, "%232PP", EncodePlayerTag("2pp"))
}

func TestGetPlayerNotConfigured(t *testing.T) {
	InitClient(config.ClashConfig{})
	_, err := GetPlayer(context.Background(), "#ABC")
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestGetPlayer(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/players/%232PP", r.URL.EscapedPath())
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"tag":"#2PP","name":"Tester","trophies":6200,"bestTrophies":6500,"wins":1200,"losses":1100}`))
	}))
	defer server.Close()

	InitClient(config.ClashConfig{APIToken: "test-token", BaseURL: server.URL})
	player, err := GetPlayer(context.Background(), "2pp")
	require.NoError(t, err)
	assert.Equal(t, "#2PP", player.Tag)
	assert.Equal(t, "Tester", player.Name)
	assert.Equal(t, 6200, player.Trophies)
	assert.Equal(t, 6500, player.BestTrophies)
}

func TestGetPlayerAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"reason":"notFound"}`, http.StatusNotFound)
	}))
	defer server.Close()

	InitClient(config.ClashConfig{APIToken: "test-token", BaseURL: server.URL})
	_, err := GetPlayer(context.Background(), "#MISSING")
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
}

func TestGetBattleLog(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/players/%232PP/battlelog", r.URL.EscapedPath())
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"type":"PvP"},{"type":"PvP"}]`))
	}))
	defer server.Close()

	InitClient(config.ClashConfig{APIToken: "test-token", BaseURL: server.URL})
	var battles []struct {
		Type string `json:"type"`
	}
	require.NoError(t, GetBattleLog(context.Background(), "#2PP", &battles))
	assert.Len(t, battles, 2)
	assert.Equal(t, "PvP", battles[0].Type)
}
