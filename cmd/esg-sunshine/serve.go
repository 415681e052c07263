package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awsdynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	awsssm "github.com/aws/aws-sdk-go-v2/service/ssm"
	"golang.org/x/sync/errgroup"

	"esg-sunshine/internal/api"
	"esg-sunshine/internal/app"
	"esg-sunshine/internal/config"
	"esg-sunshine/internal/conversation"
	"esg-sunshine/internal/events"
	"esg-sunshine/internal/insight"
	"esg-sunshine/internal/integrations/paramstore"
	"esg-sunshine/internal/observability"
	"esg-sunshine/internal/preference"
	"esg-sunshine/internal/repository"
)

const shutdownTimeout = 10 * time.Second

func run(ctx context.Context, cfg config.Config) error {
	logger := observability.Setup(cfg.LogLevel)
	logger.Info("esg-sunshine starting", "port", cfg.Port, "preference_backend", cfg.PreferenceBackend, "provider", cfg.Provider)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	var awsCfg aws.Config
	if cfg.NeedsAWS() {
		var err error
		awsCfg, err = awsconfig.LoadDefaultConfig(ctx)
		if err != nil {
			return fmt.Errorf("load AWS config: %w", err)
		}
	}

	// Preference storage
	kv, closeKV, err := openPreferenceStore(ctx, cfg, awsCfg)
	if err != nil {
		return err
	}
	defer closeKV()

	prefs, err := preference.New(kv, logger)
	if err != nil {
		return err
	}
	lang, err := prefs.Load(ctx)
	if err != nil {
		logger.Warn("failed to load language preference, using default", "err", err)
	}
	logger.Info("language preference loaded", "language", lang.String())

	// Generator
	backend, err := newBackend(ctx, cfg, awsCfg)
	switch {
	case errors.Is(err, insight.ErrConfigurationMissing):
		logger.Warn("no API key configured, assistant serves placeholder responses")
	case err != nil:
		return err
	}
	gen := insight.NewGenerator(backend, logger)

	// Diagnostic events (optional)
	var pub events.Publisher
	if cfg.NatsURL != "" {
		client, err := events.NewClient(ctx, cfg.NatsURL, cfg.NatsToken, logger)
		if err != nil {
			return err
		}
		defer client.Close()
		pub = client
		logger.Info("NATS connected", "url", cfg.NatsURL, "subject", cfg.EventSubject)
	} else {
		logger.Info("NATS not configured, diagnostic events disabled")
	}
	emitter := events.NewEmitter(pub, cfg.EventSubject, logger)

	a, err := app.New(prefs, gen, app.Config{
		RequireLogin: cfg.RequireLogin,
		SessionOptions: []conversation.Option{
			conversation.WithThinkingDelay(cfg.ThinkingDelay),
			conversation.WithRequestTimeout(cfg.RequestTimeout),
			conversation.WithLogger(logger),
			conversation.WithObserver(emitter),
		},
		Listener: emitter,
		Logger:   logger,
	})
	if err != nil {
		return err
	}
	defer a.Close()

	srv, err := api.NewServer(a)
	if err != nil {
		return err
	}
	httpSrv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("API server starting", "addr", httpSrv.Addr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return httpSrv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("server stopped with error", "err", err)
		return err
	}
	logger.Info("esg-sunshine stopped")
	return nil
}

func openPreferenceStore(ctx context.Context, cfg config.Config, awsCfg aws.Config) (repository.KV, func(), error) {
	noop := func() {}
	switch cfg.PreferenceBackend {
	case config.BackendMemory:
		return repository.NewMemoryStore(), noop, nil
	case config.BackendBolt:
		store, err := repository.OpenBoltStore(cfg.BoltPath, cfg.PreferenceOwner)
		if err != nil {
			return nil, noop, err
		}
		return store, func() {
			if err := store.Close(); err != nil {
				slog.Warn("close bolt store", "err", err)
			}
		}, nil
	case config.BackendDynamoDB:
		store, err := repository.NewDynamoStore(awsdynamodb.NewFromConfig(awsCfg), cfg.StateTable, cfg.PreferenceOwner)
		if err != nil {
			return nil, noop, err
		}
		return store, noop, nil
	case config.BackendPostgres:
		store, err := repository.NewPostgresStore(ctx, cfg.DatabaseURL, cfg.PreferenceOwner)
		if err != nil {
			return nil, noop, err
		}
		return store, store.Close, nil
	default:
		return nil, noop, fmt.Errorf("unknown preference backend %q", cfg.PreferenceBackend)
	}
}

func newBackend(ctx context.Context, cfg config.Config, awsCfg aws.Config) (insight.Backend, error) {
	var getter paramstore.Getter
	if cfg.APIKey == "" && cfg.APIKeyParam() != "" {
		ssmClient, err := paramstore.New(awsssm.NewFromConfig(awsCfg))
		if err != nil {
			return nil, err
		}
		getter = ssmClient
	}
	apiKey, err := insight.ResolveAPIKey(ctx, cfg.APIKey, getter, cfg.APIKeyParam())
	if err != nil {
		return nil, err
	}
	return insight.NewBackend(ctx, insight.BackendConfig{
		Provider:    cfg.Provider,
		APIKey:      apiKey,
		Model:       cfg.Model,
		BaseURL:     cfg.OpenAIBaseURL,
		Temperature: cfg.Temperature,
	})
}
