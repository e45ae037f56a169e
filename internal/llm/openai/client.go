package openai

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	sdk "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"tone-backend/internal/llm"
	"tone-backend/internal/shared/telemetry"
)

// Client implements llm.Generator using the OpenAI Completions API.
type Client struct {
	api sdk.Client
}

// Options configures NewClient.
type Options struct {
	APIKey     string
	BaseURL    string
	Timeout    time.Duration
	MaxRetries int
}

// NewClient constructs a new OpenAI client.
func NewClient(opts Options) (*Client, error) {
	if strings.TrimSpace(opts.APIKey) == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY is required")
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 60 * time.Second
	}
	reqOpts := []option.RequestOption{
		option.WithAPIKey(opts.APIKey),
		option.WithRequestTimeout(opts.Timeout),
		option.WithMaxRetries(opts.MaxRetries),
	}
	if base := strings.TrimSpace(opts.BaseURL); base != "" {
		reqOpts = append(reqOpts, option.WithBaseURL(base))
	}
	return &Client{api: sdk.NewClient(reqOpts...)}, nil
}

// Complete sends prompt as a single completion request.
func (c *Client) Complete(ctx context.Context, prompt string, cfg llm.GenerationConfig) (string, error) {
	if strings.TrimSpace(cfg.Model) == "" {
		return "", fmt.Errorf("LLM_MODEL is required for OpenAI")
	}
	params := sdk.CompletionNewParams{
		Prompt:           sdk.CompletionNewParamsPromptUnion{OfString: sdk.String(prompt)},
		Model:            sdk.CompletionNewParamsModel(cfg.Model),
		MaxTokens:        sdk.Int(cfg.MaxTokens),
		Temperature:      sdk.Float(cfg.Temperature),
		TopP:             sdk.Float(cfg.TopP),
		FrequencyPenalty: sdk.Float(cfg.FrequencyPenalty),
		PresencePenalty:  sdk.Float(cfg.PresencePenalty),
	}

	resp, err := c.api.Completions.New(ctx, params)
	if err != nil {
		var apiErr *sdk.Error
		if errors.As(err, &apiErr) {
			return "", fmt.Errorf("openai error: status %d: %w", apiErr.StatusCode, err)
		}
		if errors.Is(err, context.DeadlineExceeded) {
			return "", fmt.Errorf("openai request timeout: %w", err)
		}
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai response missing choices")
	}
	text := strings.TrimSpace(resp.Choices[0].Text)
	if text == "" {
		return "", fmt.Errorf("openai response empty content")
	}
	telemetry.Info("llm.completion", map[string]any{
		"model":             cfg.Model,
		"prompt_tokens":     resp.Usage.PromptTokens,
		"completion_tokens": resp.Usage.CompletionTokens,
	})
	return text, nil
}

var _ llm.Generator = (*Client)(nil)
