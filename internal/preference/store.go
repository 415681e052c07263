// Package preference holds the process-wide display-language selection.
package preference

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"esg-sunshine/internal/domain"
	"esg-sunshine/internal/repository"
)

// LanguageKey is the durable key holding the language tag.
const LanguageKey = "app_language"

// Store caches the active language and writes every change through to a durable KV.
type Store struct {
	kv     repository.KV
	logger *slog.Logger

	mu      sync.RWMutex
	current domain.Language
}

func New(kv repository.KV, logger *slog.Logger) (*Store, error) {
	if kv == nil {
		return nil, errors.New("preference: kv must not be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{kv: kv, logger: logger, current: domain.DefaultLanguage}, nil
}

// Load reads the persisted language. A missing or unreadable value yields the default.
func (s *Store) Load(ctx context.Context) (domain.Language, error) {
	raw, found, err := s.kv.Get(ctx, LanguageKey)
	if err != nil {
		return domain.DefaultLanguage, fmt.Errorf("preference: load language: %w", err)
	}
	lang := domain.DefaultLanguage
	if found {
		parsed, perr := domain.ParseLanguage(raw)
		if perr != nil {
			s.logger.Warn("ignoring persisted language", "value", raw, "err", perr)
		} else {
			lang = parsed
		}
	}
	s.mu.Lock()
	s.current = lang
	s.mu.Unlock()
	return lang, nil
}

func (s *Store) Current() domain.Language {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Toggle flips the language and persists it before returning.
func (s *Store) Toggle(ctx context.Context) (domain.Language, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := s.current.Toggle()
	if err := s.kv.Put(ctx, LanguageKey, next.String()); err != nil {
		return s.current, fmt.Errorf("preference: persist language: %w", err)
	}
	s.current = next
	return next, nil
}

// Set selects lang explicitly and persists it.
func (s *Store) Set(ctx context.Context, lang domain.Language) error {
	if !lang.Valid() {
		return fmt.Errorf("preference: unsupported language %q", lang)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.kv.Put(ctx, LanguageKey, lang.String()); err != nil {
		return fmt.Errorf("preference: persist language: %w", err)
	}
	s.current = lang
	return nil
}
