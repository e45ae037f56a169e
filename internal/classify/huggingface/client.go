// Package huggingface classifies text through the Hugging Face inference API.
package huggingface

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"tone-backend/internal/classify"
	"tone-backend/internal/shared/metrics"
)

// DefaultBaseURL is the hosted inference router.
const DefaultBaseURL = "https://router.huggingface.co/hf-inference"

// Client implements classify.Classifier for one hosted model.
type Client struct {
	baseURL    string
	token      string
	model      string
	httpClient *http.Client
}

// NewClient constructs a client for model. An empty baseURL selects DefaultBaseURL.
func NewClient(baseURL, token, model string, timeout time.Duration) (*Client, error) {
	if strings.TrimSpace(model) == "" {
		return nil, fmt.Errorf("huggingface model is required")
	}
	if strings.TrimSpace(token) == "" {
		return nil, fmt.Errorf("HF_API_TOKEN is required")
	}
	if strings.TrimSpace(baseURL) == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		model:   model,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

// Model returns the model identifier the client targets.
func (c *Client) Model() string { return c.model }

type inferenceRequest struct {
	Inputs  string         `json:"inputs"`
	Options map[string]any `json:"options,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Classify sends text to the model and returns its labels ordered as received.
func (c *Client) Classify(ctx context.Context, text string) ([]classify.Label, error) {
	labels, err := c.classify(ctx, text)
	if err != nil {
		metrics.IncClassifierCall(c.model, "error")
		return nil, &classify.Error{Model: c.model, Err: err}
	}
	metrics.IncClassifierCall(c.model, "ok")
	return labels, nil
}

func (c *Client) classify(ctx context.Context, text string) ([]classify.Label, error) {
	payload, err := json.Marshal(inferenceRequest{
		Inputs:  text,
		Options: map[string]any{"wait_for_model": true},
	})
	if err != nil {
		return nil, err
	}

	url := c.baseURL + "/models/" + c.model
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || strings.Contains(err.Error(), "Client.Timeout") {
			return nil, fmt.Errorf("huggingface request timeout: %w", err)
		}
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= http.StatusBadRequest {
		var apiErr errorResponse
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Error != "" {
			return nil, fmt.Errorf("huggingface status %d: %s", resp.StatusCode, apiErr.Error)
		}
		return nil, fmt.Errorf("huggingface status %d", resp.StatusCode)
	}
	return parseLabels(body)
}

// parseLabels accepts both the batched [[...]] and flat [...] response shapes.
func parseLabels(body []byte) ([]classify.Label, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("huggingface response empty")
	}
	if trimmed[0] == '{' {
		var apiErr errorResponse
		if err := json.Unmarshal(trimmed, &apiErr); err != nil {
			return nil, fmt.Errorf("huggingface response parse: %w", err)
		}
		if apiErr.Error != "" {
			return nil, fmt.Errorf("huggingface error: %s", apiErr.Error)
		}
		return nil, fmt.Errorf("huggingface response not a label list")
	}

	var nested [][]classify.Label
	if err := json.Unmarshal(trimmed, &nested); err == nil {
		if len(nested) == 0 {
			return nil, fmt.Errorf("huggingface response missing labels")
		}
		return normalize(nested[0]), nil
	}
	var flat []classify.Label
	if err := json.Unmarshal(trimmed, &flat); err != nil {
		return nil, fmt.Errorf("huggingface response parse: %w", err)
	}
	return normalize(flat), nil
}

func normalize(labels []classify.Label) []classify.Label {
	out := make([]classify.Label, 0, len(labels))
	for _, l := range labels {
		out = append(out, classify.Label{Label: classify.NormalizeLabel(l.Label), Score: l.Score})
	}
	return out
}

var _ classify.Classifier = (*Client)(nil)
