package llm

import (
	"context"
	"errors"
	"fmt"

	"github.com/jordanlanch/repcoach/pkg/logger"
)

// ErrAudioUnsupported is returned by providers that cannot transcribe audio
var ErrAudioUnsupported = errors.New("audio input is not supported by the configured AI provider")

// LLMClient is the interface for LLM clients (OpenAI, Anthropic, Ollama)
type LLMClient interface {
	Chat(ctx context.Context, req ChatRequest) (*ChatResponse, error)
	Complete(ctx context.Context, prompt string, systemPrompt ...string) (string, error)
}

// Transcriber turns recorded audio into text
type Transcriber interface {
	Transcribe(ctx context.Context, audio []byte, format string) (string, error)
}

// Ensure implementations satisfy the interfaces
var (
	_ LLMClient   = (*OpenAIClient)(nil)
	_ LLMClient   = (*AnthropicClient)(nil)
	_ Transcriber = (*OpenAIClient)(nil)
)

// ChatMessage represents a chat message
type ChatMessage struct {
	Role    string `json:"role"` // system, user, assistant
	Content string `json:"content"`
}

// ChatRequest represents a chat completion request
type ChatRequest struct {
	Messages    []ChatMessage `json:"messages"`
	Temperature float32       `json:"temperature,omitempty"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
	// JSON asks the provider for a single JSON object as the reply
	JSON bool `json:"json,omitempty"`
}

// ChatResponse represents a chat completion response
type ChatResponse struct {
	Message      string `json:"message"`
	TokensUsed   int    `json:"tokens_used"`
	FinishReason string `json:"finish_reason"`
}

// Providers
const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
	ProviderOllama    = "ollama"
)

// ProviderConfig selects and configures one provider
type ProviderConfig struct {
	Provider        string
	APIKey          string
	Model           string
	BaseURL         string
	TranscribeModel string
	Temperature     float32
	MaxTokens       int
}

// New builds the client for cfg.Provider. The returned Transcriber is nil
// when the provider cannot handle audio.
func New(cfg ProviderConfig, log logger.Logger) (LLMClient, Transcriber, error) {
	switch cfg.Provider {
	case ProviderOpenAI, "":
		if cfg.APIKey == "" {
			return nil, nil, errors.New("OPENAI_API_KEY is required for the openai provider")
		}
		c := NewOpenAIClient(Config{
			APIKey:          cfg.APIKey,
			Model:           cfg.Model,
			BaseURL:         cfg.BaseURL,
			TranscribeModel: cfg.TranscribeModel,
			Temperature:     cfg.Temperature,
			MaxTokens:       cfg.MaxTokens,
		}, log)
		return c, c, nil
	case ProviderAnthropic:
		if cfg.APIKey == "" {
			return nil, nil, errors.New("ANTHROPIC_API_KEY is required for the anthropic provider")
		}
		return NewAnthropicClient(Config{
			APIKey:      cfg.APIKey,
			Model:       cfg.Model,
			Temperature: cfg.Temperature,
			MaxTokens:   cfg.MaxTokens,
		}, log), nil, nil
	case ProviderOllama:
		return NewOllamaClient(OllamaConfig{
			BaseURL:     cfg.BaseURL,
			Model:       cfg.Model,
			Temperature: cfg.Temperature,
			MaxTokens:   cfg.MaxTokens,
		}, log), nil, nil
	}
	return nil, nil, fmt.Errorf("unknown AI provider %q", cfg.Provider)
}

func completeMessages(prompt string, systemPrompt []string) []ChatMessage {
	messages := []ChatMessage{}
	if len(systemPrompt) > 0 && systemPrompt[0] != "" {
		messages = append(messages, ChatMessage{Role: "system", Content: systemPrompt[0]})
	}
	return append(messages, ChatMessage{Role: "user", Content: prompt})
}
