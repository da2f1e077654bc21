package slack_test

import (
	"context"
	"encoding/json"
	"exposure/pkg/notify/slack"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew_MissingWebhookURL(t *testing.T) {
	_, err := slack.New("")
	require.ErrorIs(t, err, slack.ErrMissingWebhookURL)
}

func TestClient_Send(t *testing.T) {
	var got slack.Message
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)

	c, err := slack.New(srv.URL, slack.WithHTTPClient(srv.Client()))
	require.NoError(t, err)

	msg := slack.Message{
		Text: "drift on example.com",
		Blocks: []slack.Block{
			{Type: "header", Text: &slack.TextObject{Type: "plain_text", Text: "Surface drift"}},
		},
	}
	require.NoError(t, c.Send(context.Background(), msg))
	require.Equal(t, msg, got)
}

func TestClient_Send_UnexpectedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "invalid_payload", http.StatusBadRequest)
	}))
	t.Cleanup(srv.Close)

	c, err := slack.New(srv.URL, slack.WithHTTPClient(nil))
	require.NoError(t, err)

	err = c.Send(context.Background(), slack.Message{Text: "x"})
	require.ErrorIs(t, err, slack.ErrUnexpectedStatus)
}

func TestClient_Send_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	addr := srv.URL
	srv.Close()

	c, err := slack.New(addr)
	require.NoError(t, err)
	require.ErrorIs(t, c.Send(context.Background(), slack.Message{Text: "x"}), slack.ErrNotificationFailed)
}
