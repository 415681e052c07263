package insight

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"esg-sunshine/internal/domain"
	"esg-sunshine/internal/integrations/gemini"
	"esg-sunshine/internal/integrations/openai"
)

func TestNewBackend_MissingKey(t *testing.T) {
	b, err := NewBackend(context.Background(), BackendConfig{Provider: ProviderGemini})
	require.ErrorIs(t, err, ErrConfigurationMissing)
	require.Nil(t, b)
}

func TestNewBackend_Providers(t *testing.T) {
	b, err := NewBackend(context.Background(), BackendConfig{Provider: "GEMINI", APIKey: "k", BaseURL: "http://127.0.0.1:1"})
	require.NoError(t, err)
	require.IsType(t, &gemini.Client{}, b)

	b, err = NewBackend(context.Background(), BackendConfig{Provider: ProviderOpenAI, APIKey: "k", Model: "gpt-4o-mini"})
	require.NoError(t, err)
	require.IsType(t, &openai.Client{}, b)

	_, err = NewBackend(context.Background(), BackendConfig{Provider: "bard", APIKey: "k"})
	require.Error(t, err)
}

func TestGenerator_OpenAIBackendEndToEnd(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"TCFD has four pillars."}}]}`))
	}))
	defer srv.Close()

	b, err := NewBackend(context.Background(), BackendConfig{Provider: ProviderOpenAI, APIKey: "k", Model: "m", BaseURL: srv.URL})
	require.NoError(t, err)

	out, err := NewGenerator(b, nil).Generate(context.Background(), "What is TCFD?", domain.LanguageEnUS)
	require.NoError(t, err)
	require.Equal(t, "TCFD has four pillars.", out)
}

func TestGenerator_OpenAIRateLimit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	b, err := NewBackend(context.Background(), BackendConfig{Provider: ProviderOpenAI, APIKey: "k", Model: "m", BaseURL: srv.URL})
	require.NoError(t, err)

	_, err = NewGenerator(b, nil).Generate(context.Background(), "hi", domain.LanguageEnUS)
	require.Equal(t, ErrorRateLimited, CodeOf(err))
}

func TestNewBackend_ForwardsTemperature(t *testing.T) {
	var got struct {
		Temperature *float64 `json:"temperature"`
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&got)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"ok"}}]}`))
	}))
	defer srv.Close()

	temp := 0.2
	b, err := NewBackend(context.Background(), BackendConfig{Provider: ProviderOpenAI, APIKey: "k", Model: "m", BaseURL: srv.URL, Temperature: &temp})
	require.NoError(t, err)

	_, err = b.Complete(context.Background(), "", "hi")
	require.NoError(t, err)
	require.NotNil(t, got.Temperature)
	require.InDelta(t, 0.2, *got.Temperature, 1e-9)
}
