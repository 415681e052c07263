package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := FromViper(New())
	require.NoError(t, err)
	require.Equal(t, 8080, cfg.Port)
	require.Equal(t, "info", cfg.LogLevel)
	require.False(t, cfg.RequireLogin)
	require.Equal(t, BackendBolt, cfg.PreferenceBackend)
	require.Equal(t, "data/preferences.bolt", cfg.BoltPath)
	require.Equal(t, "default", cfg.PreferenceOwner)
	require.Equal(t, ProviderGemini, cfg.Provider)
	require.Equal(t, DefaultGeminiModel, cfg.Model)
	require.Equal(t, 800*time.Millisecond, cfg.ThinkingDelay)
	require.Equal(t, 30*time.Second, cfg.RequestTimeout)
	require.Equal(t, "esg.assistant", cfg.EventSubject)
	require.Empty(t, cfg.NatsURL)
	require.Empty(t, cfg.APIKeyParam())
	require.False(t, cfg.NeedsAWS())
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("ESG_PORT", "9090")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("ESG_REQUIRE_LOGIN", "true")
	t.Setenv("ESG_PREFERENCE_BACKEND", "dynamodb")
	t.Setenv("ESG_STATE_TABLE", "esg-state")
	t.Setenv("ESG_PROVIDER", "openai")
	t.Setenv("ESG_PARAM_PREFIX", "/esg/prod/")
	t.Setenv("ESG_THINKING_DELAY", "250ms")
	t.Setenv("ESG_REQUEST_TIMEOUT", "5s")
	t.Setenv("NATS_URL", "nats://localhost:4222")

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, 9090, cfg.Port)
	require.Equal(t, "debug", cfg.LogLevel)
	require.True(t, cfg.RequireLogin)
	require.Equal(t, BackendDynamoDB, cfg.PreferenceBackend)
	require.Equal(t, "esg-state", cfg.StateTable)
	require.Equal(t, ProviderOpenAI, cfg.Provider)
	require.Equal(t, DefaultOpenAIModel, cfg.Model)
	require.Equal(t, "/esg/prod/api-key", cfg.APIKeyParam())
	require.Equal(t, 250*time.Millisecond, cfg.ThinkingDelay)
	require.Equal(t, 5*time.Second, cfg.RequestTimeout)
	require.Equal(t, "nats://localhost:4222", cfg.NatsURL)
	require.True(t, cfg.NeedsAWS())
}

func TestLoad_Validation(t *testing.T) {
	cases := map[string]map[string]string{
		"dynamodb without table":   {"ESG_PREFERENCE_BACKEND": "dynamodb"},
		"postgres without url":     {"ESG_PREFERENCE_BACKEND": "postgres"},
		"unknown backend":          {"ESG_PREFERENCE_BACKEND": "redis"},
		"unknown provider":         {"ESG_PROVIDER": "bard"},
		"bad port":                 {"ESG_PORT": "0"},
		"negative thinking delay":  {"ESG_THINKING_DELAY": "-1s"},
		"temperature not a number": {"ESG_TEMPERATURE": "warm"},
		"temperature out of range": {"ESG_TEMPERATURE": "3"},
	}
	for name, env := range cases {
		t.Run(name, func(t *testing.T) {
			for k, v := range env {
				t.Setenv(k, v)
			}
			_, err := Load("")
			require.Error(t, err)
		})
	}
}

func TestLoad_DotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("ESG_MODEL=gemini-test\nESG_PREFERENCE_OWNER=alice\n"), 0o600))
	t.Setenv("ESG_PREFERENCE_OWNER", "bob")
	t.Cleanup(func() { _ = os.Unsetenv("ESG_MODEL") })

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "gemini-test", cfg.Model)
	require.Equal(t, "bob", cfg.PreferenceOwner)
}

func TestLoadDotEnv_MissingFileIsIgnored(t *testing.T) {
	require.NoError(t, LoadDotEnv(filepath.Join(t.TempDir(), "absent.env")))
	require.NoError(t, LoadDotEnv(""))
}

func TestLoad_Temperature(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	require.Nil(t, cfg.Temperature)

	t.Setenv("ESG_TEMPERATURE", "0.3")
	cfg, err = Load("")
	require.NoError(t, err)
	require.NotNil(t, cfg.Temperature)
	require.InDelta(t, 0.3, *cfg.Temperature, 1e-9)
}
