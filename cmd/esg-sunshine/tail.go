package main

import (
	"context"
	"errors"
	"io"
	"os"
	"os/signal"
	"syscall"

	"esg-sunshine/internal/config"
	"esg-sunshine/internal/events"
	"esg-sunshine/internal/observability"
)

// runTail streams diagnostic events to w until ctx is done.
func runTail(ctx context.Context, cfg config.Config, w io.Writer) error {
	if cfg.NatsURL == "" {
		return errors.New("tail: NATS_URL is not set")
	}
	// stdout carries the events; logs go to stderr.
	logger := observability.NewLogger(os.Stderr, cfg.LogLevel)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, err := events.NewClient(ctx, cfg.NatsURL, cfg.NatsToken, logger)
	if err != nil {
		return err
	}
	defer client.Close()

	if err := events.Tail(client, cfg.EventSubject, w); err != nil {
		return err
	}
	if err := client.Flush(); err != nil {
		return err
	}
	logger.Info("tailing events", "subject", events.Wildcard(cfg.EventSubject))
	<-ctx.Done()
	return nil
}
