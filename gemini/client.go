package gemini

import (
	"context"
	"fmt"

	"github.com/schedforge/schedgen"
	"google.golang.org/genai"
)

// Interface compliance check.
var _ schedgen.Provider = (*Client)(nil)

// Client implements [schedgen.Provider] for the Google Gemini API.
type Client struct {
	client *genai.Client
	model  string
}

// Option configures a [Client].
type Option func(*Client)

// WithModel sets the default model ID. Default is gemini-2.5-pro.
func WithModel(model string) Option {
	return func(c *Client) { c.model = model }
}

// New creates a new Gemini [Client] with the given API key and options.
func New(ctx context.Context, apiKey string, opts ...Option) (*Client, error) {
	gc, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini: %w", err)
	}
	c := &Client{
		client: gc,
		model:  defaultModel,
	}
	for _, o := range opts {
		o(c)
	}
	return c, nil
}

// Stream sends a streaming completion request to the Gemini API and returns
// a [schedgen.Stream] that emits one fragment per text chunk.
func (c *Client) Stream(ctx context.Context, req schedgen.Request) (schedgen.Stream, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("gemini: %w", err)
	}

	model := req.Model
	if model == "" {
		model = c.model
	}

	contents := genai.Text(req.Prompt)
	iter := c.client.Models.GenerateContentStream(ctx, model, contents, nil)
	return newStream(iter), nil
}
