package completion

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"golang.org/x/time/rate"
)

const (
	dependency = "deepseek"

	// SystemPrompt is fixed system instruction sent with every prompt.
	SystemPrompt = "You are an expert automotive parts copywriter specializing in SEO-optimized product " +
		"descriptions for auto parts e-commerce. Write compelling, technical, and search-friendly content."
)

var (
	// ErrMalformedResponse is returned when completion response has no content.
	ErrMalformedResponse = errors.New("malformed completion response")
	// ErrNotConfigured is returned when api key is missing.
	ErrNotConfigured = errors.New("completion api key not configured")
)

// Fetcher sends http requests.
type Fetcher interface {
	Do(ctx context.Context, dependency string, limiter *rate.Limiter, req *http.Request) ([]byte, error)
}

// Config holds completion API configuration.
type Config struct {
	BaseURL     string
	APIKey      string
	Model       string
	Temperature float64
}

// Client calls chat completions endpoint.
type Client struct {
	cfg     Config
	fetcher Fetcher
	limiter *rate.Limiter
}

// NewClient returns new Client.
func NewClient(fetcher Fetcher, limiter *rate.Limiter, cfg Config) *Client {
	return &Client{
		cfg:     cfg,
		fetcher: fetcher,
		limiter: limiter,
	}
}

// Model returns model name used for completions.
func (c *Client) Model() string {
	return c.cfg.Model
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string    `json:"model"`
	Messages    []message `json:"messages"`
	Temperature float64   `json:"temperature"`
	MaxTokens   int       `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message message `json:"message"`
	} `json:"choices"`
}

// Complete sends prompt with system instruction and returns trimmed completion.
func (c *Client) Complete(ctx context.Context, prompt string, maxTokens int) (string, error) {
	if c.cfg.APIKey == "" {
		return "", ErrNotConfigured
	}

	payload, err := json.Marshal(chatRequest{
		Model: c.cfg.Model,
		Messages: []message{
			{Role: "system", Content: SystemPrompt},
			{Role: "user", Content: prompt},
		},
		Temperature: c.cfg.Temperature,
		MaxTokens:   maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("can't encode completion request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		strings.TrimSuffix(c.cfg.BaseURL, "/")+"/chat/completions", bytes.NewReader(payload),
	)
	if err != nil {
		return "", fmt.Errorf("can't create completion request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	body, err := c.fetcher.Do(ctx, dependency, c.limiter, req)
	if err != nil {
		return "", fmt.Errorf("completion api error: %w", err)
	}

	var resp chatResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("%w: %s", ErrMalformedResponse, err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: no choices", ErrMalformedResponse)
	}

	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if content == "" {
		return "", fmt.Errorf("%w: empty content", ErrMalformedResponse)
	}

	return content, nil
}
