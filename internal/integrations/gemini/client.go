package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

const DefaultModel = "gemini-2.5-flash"

// StatusError carries the upstream HTTP status of a failed Gemini call.
type StatusError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("gemini: status %d: %s", e.StatusCode, e.Message)
}

func (e *StatusError) Unwrap() error { return e.Err }

func (e *StatusError) HTTPStatusCode() int { return e.StatusCode }

// Client wraps the Gemini API backend of the genai SDK.
type Client struct {
	client      *genai.Client
	model       string
	temperature *float32
}

type config struct {
	baseURL     string
	temperature *float32
}

type Option func(*config)

// WithBaseURL points the SDK at a different endpoint (tests, proxies).
func WithBaseURL(baseURL string) Option {
	return func(c *config) {
		c.baseURL = strings.TrimSpace(baseURL)
	}
}

// WithTemperature sets the sampling temperature sent with every request.
func WithTemperature(t float32) Option {
	return func(c *config) {
		c.temperature = &t
	}
}

func NewClient(ctx context.Context, apiKey, model string, opts ...Option) (*Client, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("gemini: api key must not be empty")
	}
	model = strings.TrimSpace(model)
	if model == "" {
		model = DefaultModel
	}

	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	cc := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.baseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.baseURL}
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("gemini: create client: %w", err)
	}
	return &Client{client: client, model: model, temperature: cfg.temperature}, nil
}

func (c *Client) Model() string { return c.model }

// Complete sends a single-turn prompt with a system instruction and returns
// the concatenated text parts. An empty string means the model produced no text.
func (c *Client) Complete(ctx context.Context, systemPrompt, prompt string) (string, error) {
	cfg := &genai.GenerateContentConfig{Temperature: c.temperature}
	if s := strings.TrimSpace(systemPrompt); s != "" {
		cfg.SystemInstruction = genai.NewContentFromText(s, genai.RoleUser)
	}

	res, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), cfg)
	if err != nil {
		var apiErr genai.APIError
		if errors.As(err, &apiErr) {
			err = &StatusError{StatusCode: apiErr.Code, Message: apiErr.Message, Err: err}
		}
		return "", fmt.Errorf("gemini: generate content: %w", err)
	}
	return res.Text(), nil
}
