// Package repository provides the durable key-value backends behind user preferences.
package repository

import (
	"context"
	"errors"
	"strings"
)

// DefaultOwner is used when no preference owner is configured.
const DefaultOwner = "default"

// KV is a small durable key-value store.
type KV interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Put(ctx context.Context, key, value string) error
}

func validateKey(key string) error {
	if strings.TrimSpace(key) == "" {
		return errors.New("repository: key must not be empty")
	}
	return nil
}
