package repository

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	bolt "go.etcd.io/bbolt"
)

var preferencesBucket = []byte("preferences")

// BoltStore keeps preferences in a local BoltDB file. All owners share the
// preferences bucket; keys are stored as "owner/key".
type BoltStore struct {
	db    *bolt.DB
	owner string
}

// OpenBoltStore opens (creating if needed) the BoltDB file at path.
func OpenBoltStore(path, owner string) (*BoltStore, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.New("repository: bolt path must not be empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("repository: create bolt dir: %w", err)
	}
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("repository: open bolt: %w", err)
	}
	owner = strings.TrimSpace(owner)
	if owner == "" {
		owner = DefaultOwner
	}
	return &BoltStore{db: db, owner: owner}, nil
}

func (b *BoltStore) itemKey(key string) []byte {
	return []byte(b.owner + "/" + key)
}

func (b *BoltStore) Get(_ context.Context, key string) (string, bool, error) {
	if err := validateKey(key); err != nil {
		return "", false, err
	}
	var (
		value string
		found bool
	)
	err := b.db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(preferencesBucket)
		if bucket == nil {
			return nil
		}
		if v := bucket.Get(b.itemKey(key)); v != nil {
			value, found = string(v), true
		}
		return nil
	})
	if err != nil {
		return "", false, fmt.Errorf("repository: bolt get %q: %w", key, err)
	}
	return value, found, nil
}

func (b *BoltStore) Put(_ context.Context, key, value string) error {
	if err := validateKey(key); err != nil {
		return err
	}
	err := b.db.Update(func(tx *bolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists(preferencesBucket)
		if err != nil {
			return err
		}
		return bucket.Put(b.itemKey(key), []byte(value))
	})
	if err != nil {
		return fmt.Errorf("repository: bolt put %q: %w", key, err)
	}
	return nil
}

func (b *BoltStore) Close() error {
	return b.db.Close()
}
