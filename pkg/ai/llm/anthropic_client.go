package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/jordanlanch/repcoach/pkg/logger"
)

// AnthropicClient wraps the Anthropic Messages API
type AnthropicClient struct {
	client      anthropic.Client
	model       string
	temperature float32
	maxTokens   int
	log         logger.Logger
}

// NewAnthropicClient creates a new Anthropic client
func NewAnthropicClient(cfg Config, log logger.Logger) *AnthropicClient {
	if cfg.Model == "" {
		cfg.Model = "claude-sonnet-4-5"
	}
	if cfg.Temperature == 0 {
		cfg.Temperature = 0.4
	}
	if cfg.MaxTokens == 0 {
		cfg.MaxTokens = 2000
	}
	if log == nil {
		log = logger.Default()
	}

	return &AnthropicClient{
		client:      anthropic.NewClient(option.WithAPIKey(cfg.APIKey)),
		model:       cfg.Model,
		temperature: cfg.Temperature,
		maxTokens:   cfg.MaxTokens,
		log:         log.With("provider", ProviderAnthropic, "model", cfg.Model),
	}
}

// Chat sends a conversation to the Messages API. System messages are
// joined into the system prompt; Anthropic has no JSON response mode, so
// JSON requests add an instruction to reply with a bare object.
func (c *AnthropicClient) Chat(ctx context.Context, req ChatRequest) (*ChatResponse, error) {
	var system []string
	messages := make([]anthropic.MessageParam, 0, len(req.Messages))
	for _, msg := range req.Messages {
		switch msg.Role {
		case "system":
			system = append(system, msg.Content)
		case "assistant":
			messages = append(messages, anthropic.NewAssistantMessage(anthropic.NewTextBlock(msg.Content)))
		default:
			messages = append(messages, anthropic.NewUserMessage(anthropic.NewTextBlock(msg.Content)))
		}
	}
	if len(messages) == 0 {
		return nil, errors.New("anthropic chat requires at least one user message")
	}
	if req.JSON {
		system = append(system, "Respond with a single JSON object and nothing else.")
	}

	temperature := req.Temperature
	if temperature == 0 {
		temperature = c.temperature
	}
	maxTokens := req.MaxTokens
	if maxTokens == 0 {
		maxTokens = c.maxTokens
	}

	params := anthropic.MessageNewParams{
		Model:       anthropic.Model(c.model),
		MaxTokens:   int64(maxTokens),
		Messages:    messages,
		Temperature: anthropic.Float(float64(temperature)),
	}
	if len(system) > 0 {
		params.System = []anthropic.TextBlockParam{{Text: strings.Join(system, "\n\n")}}
	}

	start := time.Now()
	message, err := c.client.Messages.New(ctx, params)
	duration := time.Since(start)
	if err != nil {
		c.log.Error("chat failed", "duration_ms", duration.Milliseconds(), "error", err)
		return nil, fmt.Errorf("anthropic chat failed: %w", err)
	}

	tokens := int(message.Usage.InputTokens + message.Usage.OutputTokens)
	for _, block := range message.Content {
		if block.Type == "text" {
			c.log.Info("chat completed", "tokens", tokens, "duration_ms", duration.Milliseconds())
			return &ChatResponse{
				Message:      block.Text,
				TokensUsed:   tokens,
				FinishReason: string(message.StopReason),
			}, nil
		}
	}
	return nil, errors.New("no text content in anthropic response")
}

// Complete sends a simple completion request (helper for single prompts)
func (c *AnthropicClient) Complete(ctx context.Context, prompt string, systemPrompt ...string) (string, error) {
	resp, err := c.Chat(ctx, ChatRequest{Messages: completeMessages(prompt, systemPrompt)})
	if err != nil {
		return "", err
	}
	return resp.Message, nil
}
