package insight

import (
	"context"
	"fmt"
	"strings"

	"esg-sunshine/internal/integrations/gemini"
	"esg-sunshine/internal/integrations/openai"
)

const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

// BackendConfig selects and configures a provider. A nil Temperature
// leaves sampling to the provider default.
type BackendConfig struct {
	Provider    string
	APIKey      string
	Model       string
	BaseURL     string
	Temperature *float64
}

// NewBackend builds the configured provider client. An empty key yields
// ErrConfigurationMissing so callers can fall back to placeholder text.
func NewBackend(ctx context.Context, cfg BackendConfig) (Backend, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, ErrConfigurationMissing
	}
	switch strings.ToLower(strings.TrimSpace(cfg.Provider)) {
	case ProviderGemini, "":
		var opts []gemini.Option
		if cfg.BaseURL != "" {
			opts = append(opts, gemini.WithBaseURL(cfg.BaseURL))
		}
		if cfg.Temperature != nil {
			opts = append(opts, gemini.WithTemperature(float32(*cfg.Temperature)))
		}
		c, err := gemini.NewClient(ctx, cfg.APIKey, cfg.Model, opts...)
		if err != nil {
			return nil, fmt.Errorf("insight: gemini backend: %w", err)
		}
		return c, nil
	case ProviderOpenAI:
		opts := []openai.Option{openai.WithBaseURL(cfg.BaseURL)}
		if cfg.Temperature != nil {
			opts = append(opts, openai.WithTemperature(*cfg.Temperature))
		}
		c, err := openai.NewClient(cfg.APIKey, cfg.Model, opts...)
		if err != nil {
			return nil, fmt.Errorf("insight: openai backend: %w", err)
		}
		return c, nil
	default:
		return nil, fmt.Errorf("insight: unknown provider %q", cfg.Provider)
	}
}
