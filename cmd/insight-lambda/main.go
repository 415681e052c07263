package main

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awsssm "github.com/aws/aws-sdk-go-v2/service/ssm"

	"esg-sunshine/handler"
	"esg-sunshine/internal/config"
	"esg-sunshine/internal/insight"
	"esg-sunshine/internal/integrations/paramstore"
	"esg-sunshine/internal/observability"
)

func main() {
	ctx := context.Background()

	// ---- Configuration (read only here) ----
	cfg, err := config.Load("")
	if err != nil {
		slog.Error("invalid configuration", "err", err)
		os.Exit(1)
	}
	logger := observability.Setup(cfg.LogLevel)

	// ---- Credential ----
	var getter paramstore.Getter
	if cfg.APIKey == "" && cfg.APIKeyParam() != "" {
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
		if err != nil {
			logger.Error("failed to load AWS config", "err", err)
			os.Exit(1)
		}
		ssmClient, err := paramstore.New(awsssm.NewFromConfig(awsCfg))
		if err != nil {
			logger.Error("failed to create SSM client", "err", err)
			os.Exit(1)
		}
		getter = ssmClient
	}
	apiKey, err := insight.ResolveAPIKey(ctx, cfg.APIKey, getter, cfg.APIKeyParam())
	if err != nil && !errors.Is(err, insight.ErrConfigurationMissing) {
		logger.Error("failed to resolve API key", "err", err)
		os.Exit(1)
	}

	// ---- Generator ----
	backend, err := insight.NewBackend(ctx, insight.BackendConfig{
		Provider:    cfg.Provider,
		APIKey:      apiKey,
		Model:       cfg.Model,
		BaseURL:     cfg.OpenAIBaseURL,
		Temperature: cfg.Temperature,
	})
	switch {
	case errors.Is(err, insight.ErrConfigurationMissing):
		logger.Warn("no API key configured, serving placeholder responses")
	case err != nil:
		logger.Error("failed to create generator backend", "err", err)
		os.Exit(1)
	}

	// ---- Handler ----
	h, err := handler.NewHandler(insight.NewGenerator(backend, logger))
	if err != nil {
		logger.Error("failed to create handler", "err", err)
		os.Exit(1)
	}

	lambda.Start(h.Handle)
}
