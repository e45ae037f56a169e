package llm

import (
	"context"
	"errors"
)

// Generator completes a text prompt.
type Generator interface {
	Complete(ctx context.Context, prompt string, cfg GenerationConfig) (string, error)
}

// GenerationConfig is passed through to the provider unmodified.
type GenerationConfig struct {
	Model            string
	MaxTokens        int64
	Temperature      float64
	TopP             float64
	FrequencyPenalty float64
	PresencePenalty  float64
}

// DefaultGenerationConfig mirrors the service defaults.
func DefaultGenerationConfig() GenerationConfig {
	return GenerationConfig{
		Model:       "gpt-3.5-turbo-instruct",
		MaxTokens:   150,
		Temperature: 0.7,
		TopP:        1.0,
	}
}

// ErrNotConfigured is returned by the placeholder generator.
var ErrNotConfigured = errors.New("text generation not configured")

// PlaceholderGenerator stands in when no provider credentials are set.
type PlaceholderGenerator struct{}

// Complete returns ErrNotConfigured.
func (PlaceholderGenerator) Complete(ctx context.Context, prompt string, cfg GenerationConfig) (string, error) {
	_ = ctx
	_ = prompt
	_ = cfg
	return "", ErrNotConfigured
}
