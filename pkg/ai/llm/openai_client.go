package llm

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/sashabaranov/go-openai"

	"github.com/jordanlanch/repcoach/pkg/logger"
)

// OpenAIClient wraps the OpenAI API client. It also serves any
// OpenAI-compatible endpoint through Config.BaseURL.
type OpenAIClient struct {
	client          *openai.Client
	name            string
	model           string
	transcribeModel string
	temperature     float32
	maxTokens       int
	log             logger.Logger
}

// Config for OpenAI-style clients
type Config struct {
	APIKey          string
	Model           string  // default: gpt-4o-mini
	BaseURL         string  // optional, for compatible endpoints
	TranscribeModel string  // default: whisper-1
	Temperature     float32 // default: 0.4
	MaxTokens       int     // default: 2000
}

// NewOpenAIClient creates a new OpenAI client
func NewOpenAIClient(cfg Config, log logger.Logger) *OpenAIClient {
	if cfg.Model == "" {
		cfg.Model = "gpt-4o-mini"
	}
	if cfg.TranscribeModel == "" {
		cfg.TranscribeModel = openai.Whisper1
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

	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}

	return &OpenAIClient{
		client:          openai.NewClientWithConfig(clientCfg),
		name:            ProviderOpenAI,
		model:           cfg.Model,
		transcribeModel: cfg.TranscribeModel,
		temperature:     cfg.Temperature,
		maxTokens:       cfg.MaxTokens,
		log:             log.With("provider", ProviderOpenAI, "model", cfg.Model),
	}
}

// Chat sends a chat completion request
func (c *OpenAIClient) Chat(ctx context.Context, req ChatRequest) (*ChatResponse, error) {
	messages := make([]openai.ChatCompletionMessage, len(req.Messages))
	for i, msg := range req.Messages {
		messages[i] = openai.ChatCompletionMessage{
			Role:    msg.Role,
			Content: msg.Content,
		}
	}

	temperature := req.Temperature
	if temperature == 0 {
		temperature = c.temperature
	}
	maxTokens := req.MaxTokens
	if maxTokens == 0 {
		maxTokens = c.maxTokens
	}

	chatReq := openai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    messages,
		Temperature: temperature,
		MaxTokens:   maxTokens,
	}
	if req.JSON {
		chatReq.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		}
	}

	start := time.Now()
	resp, err := c.client.CreateChatCompletion(ctx, chatReq)
	duration := time.Since(start)

	if err != nil {
		c.log.Error("chat failed", "duration_ms", duration.Milliseconds(), "error", err)
		return nil, fmt.Errorf("%s chat failed: %w", c.name, err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no response from %s", c.name)
	}

	c.log.Info("chat completed", "tokens", resp.Usage.TotalTokens, "duration_ms", duration.Milliseconds())

	return &ChatResponse{
		Message:      resp.Choices[0].Message.Content,
		TokensUsed:   resp.Usage.TotalTokens,
		FinishReason: string(resp.Choices[0].FinishReason),
	}, nil
}

// Complete sends a simple completion request (helper for single prompts)
func (c *OpenAIClient) Complete(ctx context.Context, prompt string, systemPrompt ...string) (string, error) {
	resp, err := c.Chat(ctx, ChatRequest{Messages: completeMessages(prompt, systemPrompt)})
	if err != nil {
		return "", err
	}
	return resp.Message, nil
}

// Transcribe converts an audio clip to text with the transcription model.
// format is the container extension, e.g. "webm" or "m4a".
func (c *OpenAIClient) Transcribe(ctx context.Context, audio []byte, format string) (string, error) {
	if format == "" {
		format = "webm"
	}

	start := time.Now()
	resp, err := c.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    c.transcribeModel,
		FilePath: "recording." + format,
		Reader:   bytes.NewReader(audio),
	})
	if err != nil {
		c.log.Error("transcription failed", "bytes", len(audio), "error", err)
		return "", fmt.Errorf("%s transcription failed: %w", c.name, err)
	}

	c.log.Info("transcription completed", "bytes", len(audio), "duration_ms", time.Since(start).Milliseconds())
	return resp.Text, nil
}
