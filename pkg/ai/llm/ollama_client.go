package llm

import (
	"github.com/sashabaranov/go-openai"

	"github.com/jordanlanch/repcoach/pkg/logger"
)

// OllamaConfig for Ollama client
type OllamaConfig struct {
	BaseURL     string  // default: http://localhost:11434/v1
	Model       string  // default: llama3.1:8b
	Temperature float32 // default: 0.4
	MaxTokens   int     // default: 2000
}

// NewOllamaClient creates a client for a local Ollama server through its
// OpenAI-compatible API. Ollama has no transcription endpoint.
func NewOllamaClient(cfg OllamaConfig, log logger.Logger) *OpenAIClient {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:11434/v1"
	}
	if cfg.Model == "" {
		cfg.Model = "llama3.1:8b"
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

	// API key not needed for Ollama
	clientCfg := openai.DefaultConfig("ollama")
	clientCfg.BaseURL = cfg.BaseURL

	return &OpenAIClient{
		client:      openai.NewClientWithConfig(clientCfg),
		name:        ProviderOllama,
		model:       cfg.Model,
		temperature: cfg.Temperature,
		maxTokens:   cfg.MaxTokens,
		log:         log.With("provider", ProviderOllama, "model", cfg.Model, "url", cfg.BaseURL),
	}
}
