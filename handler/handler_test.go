package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/stretchr/testify/require"

	"esg-sunshine/internal/domain"
	"esg-sunshine/internal/insight"
)

type stubGenerator struct {
	out    string
	err    error
	prompt string
	lang   domain.Language
}

func (s *stubGenerator) Generate(_ context.Context, prompt string, lang domain.Language) (string, error) {
	s.prompt = prompt
	s.lang = lang
	return s.out, s.err
}

func makeEvent(body string) events.APIGatewayProxyRequest {
	return events.APIGatewayProxyRequest{
		HTTPMethod: http.MethodPost,
		Path:       "/insight",
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       body,
	}
}

func parseBody[T any](t *testing.T, body string) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal([]byte(body), &v))
	return v
}

func TestNewHandler_ValidatesDependency(t *testing.T) {
	_, err := NewHandler(nil)
	require.Error(t, err)
}

func TestHandle_HappyPath(t *testing.T) {
	gen := &stubGenerator{out: "Scope 3 covers indirect emissions."}
	h, err := NewHandler(gen)
	require.NoError(t, err)

	resp, err := h.Handle(context.Background(), makeEvent(`{"prompt":"What is Scope 3?","language":"en-US"}`))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "What is Scope 3?", gen.prompt)
	require.Equal(t, domain.LanguageEnUS, gen.lang)

	out := parseBody[insightResponse](t, resp.Body)
	require.Equal(t, "Scope 3 covers indirect emissions.", out.Text)
	require.Equal(t, domain.LanguageEnUS, out.Language)
	require.NotEmpty(t, resp.Headers["X-Correlation-Id"])
}

func TestHandle_LanguageFromAcceptLanguage(t *testing.T) {
	gen := &stubGenerator{out: "ok"}
	h, err := NewHandler(gen)
	require.NoError(t, err)

	event := makeEvent(`{"prompt":"hi"}`)
	event.Headers["accept-language"] = "en-GB,en;q=0.8"
	_, err = h.Handle(context.Background(), event)
	require.NoError(t, err)
	require.Equal(t, domain.LanguageEnUS, gen.lang)

	_, err = h.Handle(context.Background(), makeEvent(`{"prompt":"hi"}`))
	require.NoError(t, err)
	require.Equal(t, domain.DefaultLanguage, gen.lang)
}

func TestHandle_Base64Body(t *testing.T) {
	gen := &stubGenerator{out: "ok"}
	h, err := NewHandler(gen)
	require.NoError(t, err)

	event := makeEvent(base64.StdEncoding.EncodeToString([]byte(`{"prompt":"encoded","language":"zh-TW"}`)))
	event.IsBase64Encoded = true
	resp, err := h.Handle(context.Background(), event)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "encoded", gen.prompt)
	require.Equal(t, domain.LanguageZhTW, gen.lang)
}

func TestHandle_InvalidBody(t *testing.T) {
	h, err := NewHandler(&stubGenerator{})
	require.NoError(t, err)

	resp, err := h.Handle(context.Background(), makeEvent(`not-json`))
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	out := parseBody[errorResponse](t, resp.Body)
	require.Equal(t, string(insight.ErrorInvalidSubmission), out.Error)
}

func TestHandle_UnsupportedLanguage(t *testing.T) {
	gen := &stubGenerator{}
	h, err := NewHandler(gen)
	require.NoError(t, err)

	resp, err := h.Handle(context.Background(), makeEvent(`{"prompt":"hi","language":"de-DE"}`))
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.Empty(t, gen.prompt)
}

func TestHandle_MapsGeneratorErrors(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{name: "invalid submission", err: &insight.Error{Code: insight.ErrorInvalidSubmission, Reason: "empty_prompt"}, status: http.StatusBadRequest, code: string(insight.ErrorInvalidSubmission)},
		{name: "rate limited", err: &insight.Error{Code: insight.ErrorRateLimited, Reason: "backend_rate_limited"}, status: http.StatusTooManyRequests, code: string(insight.ErrorRateLimited)},
		{name: "generation failed", err: &insight.Error{Code: insight.ErrorGenerationFailed, Reason: "backend_error"}, status: http.StatusBadGateway, code: string(insight.ErrorGenerationFailed)},
		{name: "internal", err: &insight.Error{Code: insight.ErrorInternal, Reason: "bug"}, status: http.StatusInternalServerError, code: string(insight.ErrorInternal)},
		{name: "unexpected", err: errors.New("boom"), status: http.StatusInternalServerError, code: string(insight.ErrorInternal)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h, err := NewHandler(&stubGenerator{err: tc.err})
			require.NoError(t, err)

			resp, err := h.Handle(context.Background(), makeEvent(`{"prompt":"What is CSRD?"}`))
			require.NoError(t, err)
			require.Equal(t, tc.status, resp.StatusCode)

			out := parseBody[errorResponse](t, resp.Body)
			require.Equal(t, tc.code, out.Error)
		})
	}
}

func TestHandle_UsesProvidedCorrelationID_CaseInsensitive(t *testing.T) {
	h, err := NewHandler(&stubGenerator{out: "ok"})
	require.NoError(t, err)

	event := makeEvent(`{"prompt":"hi"}`)
	event.Headers["x-correlation-id"] = "corr-123"
	resp, err := h.Handle(context.Background(), event)
	require.NoError(t, err)
	require.Equal(t, "corr-123", resp.Headers["X-Correlation-Id"])
}

func TestHandle_WithRealGeneratorPlaceholder(t *testing.T) {
	h, err := NewHandler(insight.NewGenerator(nil, nil))
	require.NoError(t, err)

	resp, err := h.Handle(context.Background(), makeEvent(`{"prompt":"hi","language":"en-US"}`))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, insight.PlaceholderText(domain.LanguageEnUS), parseBody[insightResponse](t, resp.Body).Text)
}
