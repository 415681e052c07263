// Package app holds the explicit application state shared by every screen:
// the language preference, the active view, the login gate and the
// assistant panel.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"esg-sunshine/internal/conversation"
	"esg-sunshine/internal/domain"
	"esg-sunshine/internal/preference"
)

var ErrLoginRequired = errors.New("app: login required")

// LanguageListener is told about every language change.
type LanguageListener interface {
	LanguageToggled(lang domain.Language)
}

type Config struct {
	RequireLogin   bool
	SessionOptions []conversation.Option
	Listener       LanguageListener
	Logger         *slog.Logger
}

type App struct {
	prefs       *preference.Store
	router      *Router
	gate        *Gate
	gen         conversation.Generator
	sessionOpts []conversation.Option
	listener    LanguageListener
	logger      *slog.Logger

	mu        sync.Mutex
	session   *conversation.Session
	panelOpen bool
}

// State is the JSON-friendly summary of the application.
type State struct {
	View          domain.View     `json:"view"`
	Language      domain.Language `json:"language"`
	Authenticated bool            `json:"authenticated"`
	LoginRequired bool            `json:"loginRequired"`
	PanelOpen     bool            `json:"panelOpen"`
}

// New builds the application around an already loaded preference store.
func New(prefs *preference.Store, gen conversation.Generator, cfg Config) (*App, error) {
	if prefs == nil {
		return nil, errors.New("app: preference store must not be nil")
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	a := &App{
		prefs:       prefs,
		router:      NewRouter(),
		gate:        NewGate(cfg.RequireLogin),
		gen:         gen,
		sessionOpts: cfg.SessionOptions,
		listener:    cfg.Listener,
		logger:      cfg.Logger,
	}
	s, err := a.newSession()
	if err != nil {
		return nil, err
	}
	a.session = s
	return a, nil
}

func (a *App) newSession() (*conversation.Session, error) {
	s, err := conversation.NewSession(a.gen, a.prefs.Current(), a.sessionOpts...)
	if err != nil {
		return nil, fmt.Errorf("app: new assistant session: %w", err)
	}
	return s, nil
}

func (a *App) Router() *Router { return a.router }

func (a *App) Gate() *Gate { return a.gate }

func (a *App) Language() domain.Language { return a.prefs.Current() }

func (a *App) State() State {
	a.mu.Lock()
	open := a.panelOpen
	a.mu.Unlock()
	return State{
		View:          a.router.Current(),
		Language:      a.prefs.Current(),
		Authenticated: a.gate.Authenticated(),
		LoginRequired: a.gate.Required(),
		PanelOpen:     open,
	}
}

// ToggleLanguage flips and persists the language, then forwards it to
// the assistant.
func (a *App) ToggleLanguage(ctx context.Context) (domain.Language, error) {
	lang, err := a.prefs.Toggle(ctx)
	if err != nil {
		return lang, err
	}
	a.languageChanged(lang)
	return lang, nil
}

func (a *App) SetLanguage(ctx context.Context, lang domain.Language) error {
	prev := a.prefs.Current()
	if err := a.prefs.Set(ctx, lang); err != nil {
		return err
	}
	if prev != lang {
		a.languageChanged(lang)
	}
	return nil
}

func (a *App) languageChanged(lang domain.Language) {
	a.Assistant().SetLanguage(lang)
	a.logger.Info("language changed", "language", lang.String())
	if a.listener != nil {
		a.listener.LanguageToggled(lang)
	}
}

// Assistant returns the live assistant session.
func (a *App) Assistant() *conversation.Session {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.session
}

// ResetAssistant discards the current conversation and starts a new one
// greeted in the active language.
func (a *App) ResetAssistant() (*conversation.Session, error) {
	next, err := a.newSession()
	if err != nil {
		return nil, err
	}
	a.mu.Lock()
	prev := a.session
	a.session = next
	a.mu.Unlock()
	prev.Close()
	return next, nil
}

func (a *App) OpenPanel() {
	a.mu.Lock()
	a.panelOpen = true
	a.mu.Unlock()
}

func (a *App) ClosePanel() {
	a.mu.Lock()
	a.panelOpen = false
	a.mu.Unlock()
}

func (a *App) PanelOpen() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.panelOpen
}

func (a *App) Close() {
	a.mu.Lock()
	s := a.session
	a.mu.Unlock()
	s.Close()
}
