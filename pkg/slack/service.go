package slack

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/slack-go/slack"
)

var (
	// ErrSlackSendFailed is returned when Slack API fails
	ErrSlackSendFailed = errors.New("failed to send Slack notification")
)

// Message represents a Slack message
type Message struct {
	Text string `json:"text"`
}

// SlackClient is an interface for sending Slack notifications
type SlackClient interface {
	SendMessage(ctx context.Context, msg Message) error
}

// WebhookClient implements SlackClient using an incoming webhook
type WebhookClient struct {
	webhookURL string
	httpClient *http.Client
}

// NewWebhookClient creates a new Slack webhook client
func NewWebhookClient(webhookURL string) *WebhookClient {
	return &WebhookClient{
		webhookURL: webhookURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// SendMessage posts a message to the webhook
func (c *WebhookClient) SendMessage(ctx context.Context, msg Message) error {
	if c.webhookURL == "" {
		return fmt.Errorf("slack webhook URL not configured")
	}

	err := slack.PostWebhookCustomHTTPContext(ctx, c.webhookURL, c.httpClient, &slack.WebhookMessage{Text: msg.Text})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSlackSendFailed, err)
	}
	return nil
}

// Service handles Slack notifications
type Service struct {
	client SlackClient
}

// NewService creates a new Slack service. A nil client disables it.
func NewService(client SlackClient) *Service {
	return &Service{
		client: client,
	}
}

// IsEnabled returns true if Slack notifications are enabled
func (s *Service) IsEnabled() bool {
	return s != nil && s.client != nil
}

// NotifyFollowUps posts the follow-ups a user has due on date
func (s *Service) NotifyFollowUps(ctx context.Context, userName, date string, lines []string) error {
	if !s.IsEnabled() || len(lines) == 0 {
		return nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "📅 *Follow-ups for %s* (%s)", userName, date)
	for _, line := range lines {
		b.WriteString("\n• ")
		b.WriteString(line)
	}
	return s.client.SendMessage(ctx, Message{Text: b.String()})
}

// NotifyNewUser sends a notification when a new user registers
func (s *Service) NotifyNewUser(ctx context.Context, name, email string) error {
	if !s.IsEnabled() {
		return nil
	}

	text := fmt.Sprintf("👤 *New User Registration*\n"+
		"• Name: %s\n"+
		"• Email: %s",
		name, email)

	return s.client.SendMessage(ctx, Message{Text: text})
}
