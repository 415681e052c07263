package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"esg-sunshine/internal/app"
	"esg-sunshine/internal/conversation"
	"esg-sunshine/internal/domain"
	"esg-sunshine/internal/i18n"
	"esg-sunshine/internal/preference"
	"esg-sunshine/internal/repository"
)

type echoGenerator struct{}

func (echoGenerator) Generate(_ context.Context, prompt string, _ domain.Language) (string, error) {
	return prompt + "\nsecond line", nil
}

// gatedGenerator blocks until release is closed.
type gatedGenerator struct{ release chan struct{} }

func (g gatedGenerator) Generate(ctx context.Context, prompt string, _ domain.Language) (string, error) {
	select {
	case <-g.release:
		return prompt, nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

func newTestServer(t *testing.T, gen conversation.Generator, requireLogin bool) (*Server, *app.App) {
	t.Helper()
	prefs, err := preference.New(repository.NewMemoryStore(), nil)
	require.NoError(t, err)
	_, err = prefs.Load(context.Background())
	require.NoError(t, err)

	a, err := app.New(prefs, gen, app.Config{
		RequireLogin:   requireLogin,
		SessionOptions: []conversation.Option{conversation.WithThinkingDelay(time.Millisecond)},
	})
	require.NoError(t, err)
	t.Cleanup(a.Close)

	srv, err := NewServer(a)
	require.NoError(t, err)
	return srv, a
}

func do(t *testing.T, srv *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(w.Body).Decode(&out))
	return out
}

func waitIdle(t *testing.T, a *app.App) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, a.Assistant().WaitIdle(ctx))
}

func TestNewServer_RequiresApp(t *testing.T) {
	_, err := NewServer(nil)
	require.Error(t, err)
}

func TestHealthEndpoint(t *testing.T) {
	srv, _ := newTestServer(t, echoGenerator{}, false)
	w := do(t, srv, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.NotEmpty(t, w.Header().Get("X-Request-Id"))
	require.Equal(t, "ok", decode[map[string]string](t, w)["status"])
}

func TestNotFoundEndpoint(t *testing.T) {
	srv, _ := newTestServer(t, echoGenerator{}, false)
	w := do(t, srv, http.MethodGet, "/nonexistent", "")
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestState(t *testing.T) {
	srv, _ := newTestServer(t, echoGenerator{}, true)
	st := decode[app.State](t, do(t, srv, http.MethodGet, "/api/v1/state", ""))
	require.Equal(t, domain.ViewDashboard, st.View)
	require.Equal(t, domain.LanguageZhTW, st.Language)
	require.False(t, st.Authenticated)
	require.True(t, st.LoginRequired)
}

func TestLoginGate(t *testing.T) {
	srv, _ := newTestServer(t, echoGenerator{}, true)

	w := do(t, srv, http.MethodGet, "/api/v1/screens/dashboard", "")
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Equal(t, "LOGIN_REQUIRED", decode[errorResponse](t, w).Error)

	w = do(t, srv, http.MethodGet, "/api/v1/assistant", "")
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w = do(t, srv, http.MethodPost, "/api/v1/login", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.True(t, decode[app.State](t, w).Authenticated)

	w = do(t, srv, http.MethodGet, "/api/v1/screens/dashboard", "")
	require.Equal(t, http.StatusOK, w.Code)
	sc := decode[app.Screen](t, w)
	require.Len(t, sc.Dashboard.Cards, 4)
}

func TestLanguageEndpoints(t *testing.T) {
	srv, a := newTestServer(t, echoGenerator{}, false)

	got := decode[languageResponse](t, do(t, srv, http.MethodGet, "/api/v1/preferences/language", ""))
	require.Equal(t, domain.LanguageZhTW, got.Language)
	require.Equal(t, domain.SupportedLanguages, got.Supported)

	w := do(t, srv, http.MethodPost, "/api/v1/preferences/language/toggle", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, domain.LanguageEnUS, decode[languageResponse](t, w).Language)
	require.Equal(t, domain.LanguageEnUS, a.Assistant().Language())

	w = do(t, srv, http.MethodPut, "/api/v1/preferences/language", `{"language":"zh_tw"}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, domain.LanguageZhTW, decode[languageResponse](t, w).Language)

	w = do(t, srv, http.MethodPut, "/api/v1/preferences/language", `{"language":"fr-FR"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "UNSUPPORTED_LANGUAGE", decode[errorResponse](t, w).Error)

	w = do(t, srv, http.MethodPut, "/api/v1/preferences/language", `{`)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestViewEndpoints(t *testing.T) {
	srv, _ := newTestServer(t, echoGenerator{}, false)

	w := do(t, srv, http.MethodPut, "/api/v1/view", `{"view":"academy"}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, domain.ViewAcademy, decode[viewResponse](t, w).View)

	got := decode[viewResponse](t, do(t, srv, http.MethodGet, "/api/v1/view", ""))
	require.Equal(t, domain.ViewAcademy, got.View)

	w = do(t, srv, http.MethodPut, "/api/v1/view", `{"view":"ADMIN"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "UNKNOWN_VIEW", decode[errorResponse](t, w).Error)
}

func TestScreens(t *testing.T) {
	srv, _ := newTestServer(t, echoGenerator{}, false)
	for _, v := range domain.Views {
		w := do(t, srv, http.MethodGet, "/api/v1/screens/"+strings.ToLower(string(v)), "")
		require.Equal(t, http.StatusOK, w.Code, v)
		require.Equal(t, v, decode[app.Screen](t, w).View)
	}
	w := do(t, srv, http.MethodGet, "/api/v1/screens/admin", "")
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestRenderCell(t *testing.T) {
	srv, _ := newTestServer(t, echoGenerator{}, false)

	w := do(t, srv, http.MethodPost, "/api/v1/cells/render", `{"mode":"badge","confidence":"low","traits":["bridging"]}`)
	require.Equal(t, http.StatusOK, w.Code)
	var v struct {
		Badge struct {
			Width string `json:"width"`
		} `json:"badge"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&v))
	require.Equal(t, "w-1/3", v.Badge.Width)

	w = do(t, srv, http.MethodPost, "/api/v1/cells/render", `{"mode":"hologram"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "INVALID_CELL", decode[errorResponse](t, w).Error)
}

func TestAssistant_RoundTrip(t *testing.T) {
	srv, a := newTestServer(t, echoGenerator{}, false)

	w := do(t, srv, http.MethodPost, "/api/v1/assistant/open", "")
	require.Equal(t, http.StatusOK, w.Code)
	got := decode[assistantResponse](t, w)
	require.True(t, got.Open)
	require.Len(t, got.Messages, 1)
	require.Equal(t, i18n.For(domain.LanguageZhTW).Assistant.Greeting, got.Messages[0].Text)
	require.Equal(t, i18n.For(domain.LanguageZhTW).Assistant.Title, got.Title)

	w = do(t, srv, http.MethodPost, "/api/v1/assistant/messages", `{"text":"What is Scope 3?"}`)
	require.Equal(t, http.StatusAccepted, w.Code)
	sub := decode[submitResponse](t, w)
	require.True(t, sub.Accepted)
	require.Len(t, sub.Assistant.Messages, 2)
	require.Equal(t, domain.RoleUser, sub.Assistant.Messages[1].Role)

	waitIdle(t, a)
	got = decode[assistantResponse](t, do(t, srv, http.MethodGet, "/api/v1/assistant", ""))
	require.Equal(t, conversation.StateIdle, got.State)
	require.Len(t, got.Messages, 3)
	require.Equal(t, "What is Scope 3?\nsecond line", got.Messages[2].Text)
	require.Contains(t, got.Messages[2].HTML, "<br>")

	w = do(t, srv, http.MethodPost, "/api/v1/assistant/close", "")
	require.False(t, decode[assistantResponse](t, w).Open)
}

func TestAssistant_InvalidAndBusy(t *testing.T) {
	gen := gatedGenerator{release: make(chan struct{})}
	srv, a := newTestServer(t, gen, false)

	w := do(t, srv, http.MethodPost, "/api/v1/assistant/messages", `{"text":"   "}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "INVALID_SUBMISSION", decode[errorResponse](t, w).Error)

	w = do(t, srv, http.MethodPost, "/api/v1/assistant/messages", `{"text":"first"}`)
	require.Equal(t, http.StatusAccepted, w.Code)

	w = do(t, srv, http.MethodPost, "/api/v1/assistant/messages", `{"text":"second"}`)
	require.Equal(t, http.StatusOK, w.Code)
	sub := decode[submitResponse](t, w)
	require.False(t, sub.Accepted)
	require.Equal(t, conversation.StateAwaitingResponse, sub.Assistant.State)
	require.Len(t, sub.Assistant.Messages, 2)

	close(gen.release)
	waitIdle(t, a)
	require.Len(t, a.Assistant().Snapshot().Messages, 3)
}

func TestAssistant_InputAndSend(t *testing.T) {
	srv, a := newTestServer(t, echoGenerator{}, false)

	w := do(t, srv, http.MethodPut, "/api/v1/assistant/input", `{"text":"Explain GRI"}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "Explain GRI", decode[assistantResponse](t, w).Input)

	w = do(t, srv, http.MethodPost, "/api/v1/assistant/send", "")
	require.Equal(t, http.StatusAccepted, w.Code)
	require.Empty(t, decode[submitResponse](t, w).Assistant.Input)
	waitIdle(t, a)
}

func TestAssistant_Reset(t *testing.T) {
	srv, a := newTestServer(t, echoGenerator{}, false)

	do(t, srv, http.MethodPost, "/api/v1/preferences/language/toggle", "")
	do(t, srv, http.MethodPost, "/api/v1/assistant/messages", `{"text":"hello"}`)
	waitIdle(t, a)

	w := do(t, srv, http.MethodPost, "/api/v1/assistant/reset", "")
	require.Equal(t, http.StatusOK, w.Code)
	got := decode[assistantResponse](t, w)
	require.Len(t, got.Messages, 1)
	require.Equal(t, i18n.For(domain.LanguageEnUS).Assistant.Greeting, got.Messages[0].Text)
}
