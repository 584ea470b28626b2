package gemini

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	defaultModel   = "gemini-2.5-flash"
	defaultTimeout = 30 * time.Second

	// Fixed sampling parameters; static configuration, not computed.
	temperature     = 0.7
	topK            = 40
	topP            = 0.95
	maxOutputTokens = 1024
)

// Client calls the Gemini REST API. The API key travels as a query
// parameter, per the provider's wire contract.
type Client struct {
	http  *resty.Client
	model string
	key   string
}

// NewClient builds a client against baseURL with a fixed 30s timeout.
func NewClient(baseURL, apiKey, model string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("api key required")
	}
	if model == "" {
		model = defaultModel
	}
	hc := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(defaultTimeout)
	return &Client{
		http:  hc,
		model: model,
		key:   apiKey,
	}, nil
}

// Model returns the configured model name.
func (c *Client) Model() string {
	return c.model
}

// Generate sends one prompt and returns the parsed response unmodified.
// Single attempt, no retry. Transport failures and non-2xx statuses come
// back as wrapped errors, with the raw response body when available.
func (c *Client) Generate(ctx context.Context, prompt string) (*GenerateResponse, error) {
	if c == nil || c.http == nil {
		return nil, fmt.Errorf("nil gemini client")
	}
	body := GenerateRequest{
		Contents: []Content{
			{Parts: []Part{{Text: prompt}}},
		},
		GenerationConfig: &GenerationConfig{
			Temperature:     temperature,
			TopK:            topK,
			TopP:            topP,
			MaxOutputTokens: maxOutputTokens,
		},
	}

	var out GenerateResponse
	res, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetQueryParam("key", c.key).
		SetBody(body).
		SetResult(&out).
		Post(fmt.Sprintf("/models/%s:generateContent", c.model))
	if err != nil {
		return nil, fmt.Errorf("gemini request failed: %w", err)
	}
	if res.IsError() {
		return nil, fmt.Errorf("gemini returned status %d: %s", res.StatusCode(), strings.TrimSpace(string(res.Body())))
	}
	return &out, nil
}
