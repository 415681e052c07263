package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const createPreferencesTable = `
CREATE TABLE IF NOT EXISTS preferences (
	owner      TEXT        NOT NULL,
	key        TEXT        NOT NULL,
	value      TEXT        NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	PRIMARY KEY (owner, key)
)`

// PostgresStore keeps preferences in a Postgres table.
type PostgresStore struct {
	pool  *pgxpool.Pool
	owner string
}

// NewPostgresStore connects, pings and makes sure the preferences table exists.
func NewPostgresStore(ctx context.Context, databaseURL, owner string) (*PostgresStore, error) {
	if strings.TrimSpace(databaseURL) == "" {
		return nil, errors.New("repository: database url must not be empty")
	}
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("repository: connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("repository: ping database: %w", err)
	}
	if _, err := pool.Exec(ctx, createPreferencesTable); err != nil {
		pool.Close()
		return nil, fmt.Errorf("repository: create preferences table: %w", err)
	}
	owner = strings.TrimSpace(owner)
	if owner == "" {
		owner = DefaultOwner
	}
	return &PostgresStore{pool: pool, owner: owner}, nil
}

func (p *PostgresStore) Get(ctx context.Context, key string) (string, bool, error) {
	if err := validateKey(key); err != nil {
		return "", false, err
	}
	var value string
	err := p.pool.QueryRow(ctx,
		`SELECT value FROM preferences WHERE owner = $1 AND key = $2`,
		p.owner, key,
	).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("repository: select preference %q: %w", key, err)
	}
	return value, true, nil
}

func (p *PostgresStore) Put(ctx context.Context, key, value string) error {
	if err := validateKey(key); err != nil {
		return err
	}
	_, err := p.pool.Exec(ctx, `
		INSERT INTO preferences (owner, key, value, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (owner, key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()`,
		p.owner, key, value,
	)
	if err != nil {
		return fmt.Errorf("repository: upsert preference %q: %w", key, err)
	}
	return nil
}

func (p *PostgresStore) Close() {
	p.pool.Close()
}
