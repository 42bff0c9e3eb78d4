package telegram

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendMessageBuildsBotRequest(t *testing.T) {
	var gotMethod, gotPath, gotChat, gotText string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotChat = r.URL.Query().Get("chat_id")
		gotText = r.URL.Query().Get("text")
		_, _ = w.Write([]byte(`{"ok":true,"result":{"message_id":7}}`))
	}))
	defer srv.Close()

	c := NewClient(Config{APIURL: srv.URL + "/", BotToken: "123:abc", ChannelID: "@contact"}, nil)
	text := `a new contact message from "a@b.com" with subject "Hi & bye" and message "100% sure?"`

	outcome, err := c.SendMessage(context.Background(), text)
	require.NoError(t, err)

	assert.True(t, outcome.OK)
	assert.JSONEq(t, `{"message_id":7}`, string(outcome.Result))
	assert.Equal(t, http.MethodGet, gotMethod)
	assert.Equal(t, "/bot123:abc/sendMessage", gotPath)
	assert.Equal(t, "@contact", gotChat)
	assert.Equal(t, text, gotText)
}

func TestSendMessageDecodesOutcome(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantOK  bool
		wantErr bool
	}{
		{"ok", http.StatusOK, `{"ok":true,"result":{}}`, true, false},
		{"not ok", http.StatusBadRequest, `{"ok":false,"description":"chat not found"}`, false, false},
		{"empty object", http.StatusOK, `{}`, false, false},
		{"null", http.StatusOK, `null`, false, false},
		{"not json", http.StatusBadGateway, `<html>bad gateway</html>`, false, true},
		{"empty body", http.StatusOK, ``, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			c := NewClient(Config{APIURL: srv.URL, BotToken: "t", ChannelID: "c"}, nil)
			outcome, err := c.SendMessage(context.Background(), "hello")

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, outcome)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantOK, outcome.OK)
		})
	}
}

func TestSendMessageErrorsNeverLeakToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	const token = "987654:SECRET-token"
	c := NewClient(Config{APIURL: srv.URL, BotToken: token, ChannelID: "c", Timeout: 20 * time.Millisecond}, nil)

	_, err := c.SendMessage(context.Background(), "hello")
	require.Error(t, err)
	assert.NotContains(t, err.Error(), token)
}

func TestSendMessageHonoursContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	c := NewClient(Config{APIURL: srv.URL, BotToken: "123:abc", ChannelID: "c"}, nil)
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := c.SendMessage(ctx, "hello")
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}
