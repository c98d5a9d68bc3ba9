package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/schedforge/schedgen"
)

// Interface compliance check.
var _ schedgen.Provider = (*Client)(nil)

// Client implements [schedgen.Provider] for the OpenAI Chat Completions API.
type Client struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
}

// Option configures a [Client].
type Option func(*Client)

// WithBaseURL sets the API base URL. Useful for testing with httptest.
func WithBaseURL(url string) Option {
	return func(c *Client) { c.baseURL = url }
}

// WithModel sets the default model ID. Default is gpt-4o.
func WithModel(model string) Option {
	return func(c *Client) { c.model = model }
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// New creates a new OpenAI [Client] with the given API key and options.
func New(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:     apiKey,
		baseURL:    defaultBaseURL,
		model:      defaultModel,
		httpClient: http.DefaultClient,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Stream sends a streaming completion request and returns a
// [schedgen.Stream] that emits one fragment per content delta.
func (c *Client) Stream(ctx context.Context, req schedgen.Request) (schedgen.Stream, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("openai: %w", err)
	}

	model := req.Model
	if model == "" {
		model = c.model
	}

	body, err := json.Marshal(apiRequest{
		Model:    model,
		Messages: []apiMessage{{Role: "user", Content: req.Prompt}},
		Stream:   true,
	})
	if err != nil {
		return nil, fmt.Errorf("openai: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+completionsPath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("openai: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("openai: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		defer resp.Body.Close()
		return nil, parseHTTPError(resp)
	}

	return newStream(resp.Body), nil
}

func parseHTTPError(resp *http.Response) error {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("openai: HTTP %d (failed to read body: %w)", resp.StatusCode, err)
	}
	var apiErr apiErrorResponse
	if err := json.Unmarshal(body, &apiErr); err != nil || apiErr.Error.Message == "" {
		return fmt.Errorf("openai: HTTP %d: %s", resp.StatusCode, string(body))
	}
	return fmt.Errorf("openai: %s: %s", apiErr.Error.Type, apiErr.Error.Message)
}
