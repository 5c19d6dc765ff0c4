package slack

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockSlackClient records messages instead of posting them
type MockSlackClient struct {
	shouldFail bool
	messages   []Message
}

func (m *MockSlackClient) SendMessage(ctx context.Context, msg Message) error {
	if m.shouldFail {
		return ErrSlackSendFailed
	}
	m.messages = append(m.messages, msg)
	return nil
}

func TestNotifyFollowUps(t *testing.T) {
	t.Run("Success - lists every follow-up", func(t *testing.T) {
		client := &MockSlackClient{}
		service := NewService(client)

		err := service.NotifyFollowUps(context.Background(), "Li Lei", "2024-03-15",
			[]string{"09:30 call Alice", "send quote to Bob"})

		require.NoError(t, err)
		require.Len(t, client.messages, 1)
		msg := client.messages[0].Text
		assert.Contains(t, msg, "Follow-ups for Li Lei")
		assert.Contains(t, msg, "2024-03-15")
		assert.Contains(t, msg, "• 09:30 call Alice")
		assert.Contains(t, msg, "• send quote to Bob")
	})

	t.Run("Nothing due - no message", func(t *testing.T) {
		client := &MockSlackClient{}
		service := NewService(client)

		require.NoError(t, service.NotifyFollowUps(context.Background(), "Li Lei", "2024-03-15", nil))
		assert.Empty(t, client.messages)
	})

	t.Run("Failure - Slack API error", func(t *testing.T) {
		service := NewService(&MockSlackClient{shouldFail: true})

		err := service.NotifyFollowUps(context.Background(), "Li Lei", "2024-03-15", []string{"x"})
		assert.ErrorIs(t, err, ErrSlackSendFailed)
	})
}

func TestNotifyNewUser(t *testing.T) {
	client := &MockSlackClient{}
	service := NewService(client)

	err := service.NotifyNewUser(context.Background(), "Test User", "user@example.com")

	require.NoError(t, err)
	require.Len(t, client.messages, 1)
	assert.Contains(t, client.messages[0].Text, "New User Registration")
	assert.Contains(t, client.messages[0].Text, "user@example.com")
}

func TestDisabledService(t *testing.T) {
	service := NewService(nil)

	assert.False(t, service.IsEnabled())
	assert.NoError(t, service.NotifyNewUser(context.Background(), "Test", "test@example.com"))
	assert.NoError(t, service.NotifyFollowUps(context.Background(), "Test", "2024-03-15", []string{"x"}))
}

func TestWebhookClient(t *testing.T) {
	t.Run("Success - posts JSON text", func(t *testing.T) {
		var got map[string]any
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := NewWebhookClient(server.URL)
		err := client.SendMessage(context.Background(), Message{Text: "hello"})

		require.NoError(t, err)
		assert.Equal(t, "hello", got["text"])
	})

	t.Run("Failure - non-200 response", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		err := NewWebhookClient(server.URL).SendMessage(context.Background(), Message{Text: "hello"})
		assert.ErrorIs(t, err, ErrSlackSendFailed)
	})

	t.Run("Failure - no URL", func(t *testing.T) {
		err := NewWebhookClient("").SendMessage(context.Background(), Message{Text: "hello"})
		assert.Error(t, err)
	})
}
