package utils

import (
	"context"
	"fmt"
	"strings"
)

// CompletionRequest is one chat-completion call: a system instruction, a
// user instruction, and the sampling knobs each generator tunes.
type CompletionRequest struct {
	System      string
	User        string
	Temperature float32
	MaxTokens   int
}

type CompletionClientInterface interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}

// NewCompletionClient is the factory for the configured provider.
// Groq speaks the OpenAI wire format; Gemini goes through the genai SDK.
func NewCompletionClient(provider, apiKey, model string) (CompletionClientInterface, error) {
	switch strings.ToLower(provider) {
	case "groq":
		return NewGroqCompletionClient(apiKey, model), nil
	case "gemini":
		return NewGeminiCompletionClient(apiKey, model)
	default:
		return nil, fmt.Errorf("unsupported completion provider: %s. Use 'groq' or 'gemini'", provider)
	}
}
