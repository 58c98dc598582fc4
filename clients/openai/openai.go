// Package openai is a minimal client for OpenAI-compatible chat completion
// endpoints, used by the optional LLM-backed classifier adapter.
package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/FrenchMajesty/aspect-classifier/internal/retry"
)

const defaultBaseURL = "https://api.openai.com/v1"

// Client sends chat completion requests with retry on transient failures
type Client struct {
	APIKey      string
	BaseURL     string
	HTTPClient  *http.Client
	RetryConfig retry.Config
}

// NewClient creates a new Client. baseURL may be empty to use the OpenAI API.
func NewClient(apiKey, baseURL string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &Client{
		APIKey:      apiKey,
		BaseURL:     baseURL,
		HTTPClient:  http.DefaultClient,
		RetryConfig: retry.DefaultConfig(),
	}
}

// isRetryable treats network errors, rate limits and server errors as
// transient
func isRetryable(err error) bool {
	var ce *ChatCompletionError
	if errors.As(err, &ce) {
		return ce.StatusCode == http.StatusTooManyRequests || ce.StatusCode >= 500
	}
	// Transport-level errors have no status code
	return true
}

// ChatCompletion sends a chat completion request with retry logic
func (c *Client) ChatCompletion(ctx context.Context, req ChatCompletionRequest) (*ChatCompletionResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode chat request: %w", err)
	}

	var chatResp ChatCompletionResponse
	err = retry.Do(ctx, c.RetryConfig, isRetryable, func() error {
		return c.doOnce(ctx, body, &chatResp)
	})
	if err != nil {
		return nil, err
	}

	return &chatResp, nil
}

func (c *Client) doOnce(ctx context.Context, body []byte, out *ChatCompletionResponse) error {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build chat request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.APIKey)

	resp, err := c.HTTPClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("chat request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read chat response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return &ChatCompletionError{
			Message:    fmt.Sprintf("chat completion returned status %d", resp.StatusCode),
			StatusCode: resp.StatusCode,
			RawBody:    json.RawMessage(respBody),
		}
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return &ChatCompletionError{
			Message: fmt.Sprintf("failed to parse chat completion response: %v", err),
			RawBody: json.RawMessage(respBody),
		}
	}

	return nil
}
