package bot

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/require"
)

// recordedRequest captures one REST call made by the session under test.
type recordedRequest struct {
	Method string
	Path   string
	Body   string
}

type requestRecorder struct {
	mu       sync.Mutex
	requests []recordedRequest
}

func (r *requestRecorder) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	body, _ := io.ReadAll(req.Body)

	r.mu.Lock()
	r.requests = append(r.requests, recordedRequest{
		Method: req.Method,
		Path:   req.URL.Path,
		Body:   string(body),
	})
	r.mu.Unlock()

	// Followup creation expects a message body back; interaction callbacks
	// are fine with no content.
	if strings.HasPrefix(req.URL.Path, "/webhooks/") {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"1"}`))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (r *requestRecorder) Requests() []recordedRequest {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]recordedRequest(nil), r.requests...)
}

// newTestSession returns a session whose REST calls hit a local test server
// instead of Discord. Tests using it must not run in parallel; the endpoint
// variables are package globals in discordgo.
func newTestSession(t *testing.T) (*discordgo.Session, *requestRecorder) {
	t.Helper()

	rec := &requestRecorder{}
	server := httptest.NewServer(rec)
	t.Cleanup(server.Close)

	// EndpointInteractionResponse is a closure over EndpointAPI, so swapping
	// the base redirects interaction callbacks; EndpointWebhooks is a plain
	// string computed at init and needs its own override.
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

	return session, rec
}

func commandInteraction(name, userID string) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			ID:      "interaction-id",
			AppID:   "app-id",
			Token:   "interaction-token",
			Type:    discordgo.InteractionApplicationCommand,
			GuildID: "424242424242424242",
			Member: &discordgo.Member{
				User: &discordgo.User{ID: userID},
			},
			Data: discordgo.ApplicationCommandInteractionData{
				Name: name,
			},
		},
	}
}

func componentInteraction(customID string, kind discordgo.ComponentType) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			ID:      "interaction-id",
			AppID:   "app-id",
			Token:   "interaction-token",
			Type:    discordgo.InteractionMessageComponent,
			GuildID: "424242424242424242",
			Member: &discordgo.Member{
				User: &discordgo.User{ID: "700000000000000001"},
			},
			Data: discordgo.MessageComponentInteractionData{
				CustomID:      customID,
				ComponentType: kind,
			},
		},
	}
}

// responseContent pulls the content field out of a recorded interaction
// callback body.
func responseContent(t *testing.T, body string) string {
	t.Helper()

	var payload struct {
		Data struct {
			Content string `json:"content"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &payload))
	return payload.Data.Content
}
