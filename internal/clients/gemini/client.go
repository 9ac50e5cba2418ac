// Package gemini provides the Google Gemini backend for summary generation.
package gemini

import (
	"context"
	"fmt"
	"sync"

	"google.golang.org/genai"

	"github.com/PuneetFusion/portfolioanalyzer/internal/common"
	"github.com/PuneetFusion/portfolioanalyzer/internal/interfaces"
)

const DefaultModel = "gemini-2.0-flash"

// Client implements the GenerativeClient interface.
type Client struct {
	client *genai.Client
	model  string
	logger *common.Logger
}

// ClientOption configures the client
type ClientOption func(*Client)

// WithModel sets the model to use
func WithModel(model string) ClientOption {
	return func(c *Client) {
		if model != "" {
			c.model = model
		}
	}
}

// WithLogger sets the logger
func WithLogger(logger *common.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient creates a new Gemini client
func NewClient(ctx context.Context, apiKey string, opts ...ClientOption) (*Client, error) {
	genaiClient, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	c := &Client{
		client: genaiClient,
		model:  DefaultModel,
		logger: common.NewSilentLogger(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

var (
	sharedOnce   sync.Once
	sharedClient *Client
	sharedErr    error
)

// Shared returns the process-wide client, constructing it on first call.
// Construction builds the underlying genai transport, which is expensive, so
// the handle is memoized for the life of the process.
func Shared(ctx context.Context, apiKey string, opts ...ClientOption) (*Client, error) {
	sharedOnce.Do(func() {
		sharedClient, sharedErr = NewClient(ctx, apiKey, opts...)
	})
	return sharedClient, sharedErr
}

// Summarize generates text from a prompt with a bounded output length.
// minTokens has no direct control on the Gemini API; it is enforced through
// the prompt instructions instead.
func (c *Client) Summarize(ctx context.Context, prompt string, minTokens, maxTokens int) (string, error) {
	c.logger.Debug().Str("model", c.model).Int("max_tokens", maxTokens).Msg("Generating summary")

	contents := genai.Text(prompt)
	config := &genai.GenerateContentConfig{
		MaxOutputTokens: int32(maxTokens),
	}

	result, err := c.client.Models.GenerateContent(ctx, c.model, contents, config)
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	return extractTextFromResponse(result)
}

// extractTextFromResponse extracts text from a generate content response
func extractTextFromResponse(result *genai.GenerateContentResponse) (string, error) {
	if len(result.Candidates) == 0 || result.Candidates[0].Content == nil || len(result.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no content generated")
	}

	text := ""
	for _, part := range result.Candidates[0].Content.Parts {
		if part.Text != "" {
			text += part.Text
		}
	}

	return text, nil
}

// LazyClient defers construction of the shared client until the first
// summary request, so startup never pays the transport cost when the
// generative path is unused.
type LazyClient struct {
	apiKey string
	opts   []ClientOption
}

// NewLazyClient creates a lazily-initializing handle on the shared client.
func NewLazyClient(apiKey string, opts ...ClientOption) *LazyClient {
	return &LazyClient{apiKey: apiKey, opts: opts}
}

// Summarize obtains the shared client and delegates to it.
func (l *LazyClient) Summarize(ctx context.Context, prompt string, minTokens, maxTokens int) (string, error) {
	c, err := Shared(ctx, l.apiKey, l.opts...)
	if err != nil {
		return "", err
	}
	return c.Summarize(ctx, prompt, minTokens, maxTokens)
}

// Ensure both implement GenerativeClient
var (
	_ interfaces.GenerativeClient = (*Client)(nil)
	_ interfaces.GenerativeClient = (*LazyClient)(nil)
)
