package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"esg-sunshine/internal/conversation"
	"esg-sunshine/internal/domain"
	"esg-sunshine/internal/i18n"
	"esg-sunshine/internal/preference"
	"esg-sunshine/internal/repository"
)

type echoGenerator struct{}

func (echoGenerator) Generate(_ context.Context, prompt string, _ domain.Language) (string, error) {
	return prompt, nil
}

type failingKV struct{ repository.KV }

func (failingKV) Put(context.Context, string, string) error { return errors.New("disk full") }

type recordingListener struct{ langs []domain.Language }

func (r *recordingListener) LanguageToggled(lang domain.Language) { r.langs = append(r.langs, lang) }

func newPrefs(t *testing.T, kv repository.KV) *preference.Store {
	t.Helper()
	p, err := preference.New(kv, nil)
	require.NoError(t, err)
	_, err = p.Load(context.Background())
	require.NoError(t, err)
	return p
}

func newTestApp(t *testing.T, cfg Config) *App {
	t.Helper()
	cfg.SessionOptions = append(cfg.SessionOptions, conversation.WithThinkingDelay(time.Millisecond))
	a, err := New(newPrefs(t, repository.NewMemoryStore()), echoGenerator{}, cfg)
	require.NoError(t, err)
	t.Cleanup(a.Close)
	return a
}

func waitIdle(t *testing.T, s *conversation.Session) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, s.WaitIdle(ctx))
}

func TestNew_InitialState(t *testing.T) {
	a := newTestApp(t, Config{})
	st := a.State()
	require.Equal(t, domain.ViewDashboard, st.View)
	require.Equal(t, domain.LanguageZhTW, st.Language)
	require.True(t, st.Authenticated)
	require.False(t, st.LoginRequired)
	require.False(t, st.PanelOpen)

	msgs := a.Assistant().Snapshot().Messages
	require.Len(t, msgs, 1)
	require.Equal(t, i18n.For(domain.LanguageZhTW).Assistant.Greeting, msgs[0].Text)
}

func TestNew_RequiresPrefs(t *testing.T) {
	_, err := New(nil, echoGenerator{}, Config{})
	require.Error(t, err)
}

func TestToggleLanguage_ForwardsToAssistant(t *testing.T) {
	l := &recordingListener{}
	a := newTestApp(t, Config{Listener: l})
	greeting := a.Assistant().Snapshot().Messages[0].Text

	lang, err := a.ToggleLanguage(context.Background())
	require.NoError(t, err)
	require.Equal(t, domain.LanguageEnUS, lang)
	require.Equal(t, domain.LanguageEnUS, a.Assistant().Language())
	require.Equal(t, greeting, a.Assistant().Snapshot().Messages[0].Text)
	require.Equal(t, []domain.Language{domain.LanguageEnUS}, l.langs)
}

func TestToggleLanguage_PersistFailureKeepsLanguage(t *testing.T) {
	prefs := newPrefs(t, failingKV{repository.NewMemoryStore()})
	a, err := New(prefs, echoGenerator{}, Config{})
	require.NoError(t, err)
	defer a.Close()

	_, err = a.ToggleLanguage(context.Background())
	require.Error(t, err)
	require.Equal(t, domain.LanguageZhTW, a.Language())
	require.Equal(t, domain.LanguageZhTW, a.Assistant().Language())
}

func TestSetLanguage(t *testing.T) {
	l := &recordingListener{}
	a := newTestApp(t, Config{Listener: l})

	require.NoError(t, a.SetLanguage(context.Background(), domain.LanguageZhTW))
	require.Empty(t, l.langs)

	require.NoError(t, a.SetLanguage(context.Background(), domain.LanguageEnUS))
	require.Equal(t, domain.LanguageEnUS, a.Assistant().Language())
	require.Equal(t, []domain.Language{domain.LanguageEnUS}, l.langs)

	require.Error(t, a.SetLanguage(context.Background(), domain.Language("ja-JP")))
}

func TestResetAssistant_UsesActiveLanguage(t *testing.T) {
	a := newTestApp(t, Config{})
	old := a.Assistant()

	_, err := old.Submit("hello")
	require.NoError(t, err)
	waitIdle(t, old)

	_, err = a.ToggleLanguage(context.Background())
	require.NoError(t, err)

	fresh, err := a.ResetAssistant()
	require.NoError(t, err)
	require.NotEqual(t, old.ID(), fresh.ID())
	require.Same(t, fresh, a.Assistant())

	msgs := fresh.Snapshot().Messages
	require.Len(t, msgs, 1)
	require.Equal(t, i18n.For(domain.LanguageEnUS).Assistant.Greeting, msgs[0].Text)

	_, err = old.Submit("late")
	require.ErrorIs(t, err, conversation.ErrClosed)
}

func TestPanel_KeepsConversation(t *testing.T) {
	a := newTestApp(t, Config{})
	a.OpenPanel()
	require.True(t, a.PanelOpen())

	s := a.Assistant()
	_, err := s.Submit("keep me")
	require.NoError(t, err)
	waitIdle(t, s)

	a.ClosePanel()
	require.False(t, a.State().PanelOpen)
	a.OpenPanel()
	require.Len(t, a.Assistant().Snapshot().Messages, 3)
}

func TestRouter(t *testing.T) {
	r := NewRouter()
	require.Equal(t, domain.ViewDashboard, r.Current())
	for _, v := range domain.Views {
		require.NoError(t, r.Navigate(v))
		require.Equal(t, v, r.Current())
	}
	require.Error(t, r.Navigate(domain.View("ADMIN")))
	require.Equal(t, domain.ViewSettings, r.Current())
}

func TestGate(t *testing.T) {
	open := NewGate(false)
	require.True(t, open.Authenticated())

	g := NewGate(true)
	require.False(t, g.Authenticated())
	g.Login()
	require.True(t, g.Authenticated())
	g.Login()
	require.True(t, g.Authenticated())
}

func TestScreen_LoginGate(t *testing.T) {
	a := newTestApp(t, Config{RequireLogin: true})
	_, err := a.Screen(domain.ViewDashboard)
	require.ErrorIs(t, err, ErrLoginRequired)

	a.Gate().Login()
	s, err := a.Screen(domain.ViewDashboard)
	require.NoError(t, err)
	require.NotNil(t, s.Dashboard)
}

func TestScreen_AllViews(t *testing.T) {
	a := newTestApp(t, Config{})
	for _, v := range domain.Views {
		s, err := a.Screen(v)
		require.NoError(t, err, v)
		require.Equal(t, v, s.View)
		require.Equal(t, i18n.For(domain.LanguageZhTW).Nav, s.Nav)
	}
	_, err := a.Screen(domain.View("NOPE"))
	require.Error(t, err)
}

func TestBuildScreen_DashboardCards(t *testing.T) {
	s, err := BuildScreen(domain.ViewDashboard, domain.LanguageEnUS)
	require.NoError(t, err)
	require.Len(t, s.Dashboard.Cards, 4)
	require.Equal(t, "Carbon Reduction", s.Dashboard.Cards[0].Label)
	require.Equal(t, "wind", s.Dashboard.Cards[0].Icon)
	require.Equal(t, 0.5, s.Dashboard.Cards[3].Trend.Value)
	require.Equal(t, i18n.For(domain.LanguageEnUS).Dashboard, s.Dashboard.Strings)
	require.Nil(t, s.Research)
}

func TestBuildScreen_Settings(t *testing.T) {
	s, err := BuildScreen(domain.ViewSettings, domain.LanguageEnUS)
	require.NoError(t, err)
	require.Equal(t, domain.LanguageEnUS, s.Settings.Language)
	require.Equal(t, domain.SupportedLanguages, s.Settings.Languages)
}
