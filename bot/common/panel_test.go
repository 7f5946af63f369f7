package common

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// brokenCallbackServer refuses every interaction callback, as Discord does
// once an interaction has already been acknowledged, but accepts followups.
func brokenCallbackServer(t *testing.T) (*discordgo.Session, *[]string) {
	t.Helper()

	var mu sync.Mutex
	var followups []string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		if strings.HasPrefix(r.URL.Path, "/webhooks/") {
			mu.Lock()
			followups = append(followups, string(body))
			mu.Unlock()
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"id":"1"}`))
			return
		}
		http.Error(w, `{"message":"Interaction has already been acknowledged.","code":40060}`, http.StatusBadRequest)
	}))
	t.Cleanup(server.Close)

	origAPI := discordgo.EndpointAPI
	origWebhooks := discordgo.EndpointWebhooks
	discordgo.EndpointAPI = server.URL + "/"
	discordgo.EndpointWebhooks = server.URL + "/webhooks/"
	t.Cleanup(func() {
		discordgo.EndpointAPI = origAPI
		discordgo.EndpointWebhooks = origWebhooks
	})

	session, err := discordgo.New("Bot unit-test-token")
	require.NoError(t, err)
	session.Client = server.Client()

	return session, &followups
}

func TestReplaceAndConfirm_AcknowledgedInteractionStillGetsConfirmation(t *testing.T) {
	session, followups := brokenCallbackServer(t)

	i := &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			ID:    "interaction-id",
			AppID: "app-id",
			Token: "interaction-token",
			Type:  discordgo.InteractionMessageComponent,
		},
	}
	panel := &Panel{
		Embed: &discordgo.MessageEmbed{Title: "Pengaturan"},
	}

	// Both the panel swap and the direct reply are rejected; the
	// confirmation must still arrive as a followup.
	ReplaceAndConfirm(session, i, panel, "✅ Tersimpan")

	require.Len(t, *followups, 1)
	assert.Contains(t, (*followups)[0], "Tersimpan")
}
