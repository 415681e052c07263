package insight

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"esg-sunshine/internal/domain"
)

// Backend is a text-generation provider.
type Backend interface {
	Complete(ctx context.Context, systemPrompt, prompt string) (string, error)
}

type httpStatusCoder interface {
	HTTPStatusCode() int
}

// Generator turns a free-text prompt into assistant text. A nil backend
// means no credential is configured.
type Generator struct {
	backend Backend
	logger  *slog.Logger
}

func NewGenerator(backend Backend, logger *slog.Logger) *Generator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Generator{backend: backend, logger: logger}
}

// Configured reports whether a backend is wired.
func (g *Generator) Configured() bool {
	return g != nil && g.backend != nil
}

func (g *Generator) Generate(ctx context.Context, prompt string, lang domain.Language) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", newError(ErrorInvalidSubmission, "empty_prompt", nil)
	}
	if !lang.Valid() {
		lang = domain.DefaultLanguage
	}
	if !g.Configured() {
		return PlaceholderText(lang), nil
	}

	text, err := g.backend.Complete(ctx, SystemPrompt(lang), prompt)
	if err != nil {
		if status, ok := upstreamStatusCode(err); ok && status == http.StatusTooManyRequests {
			return "", newError(ErrorRateLimited, "backend_rate_limited", err)
		}
		return "", newError(ErrorGenerationFailed, "backend_error", err)
	}
	if strings.TrimSpace(text) == "" {
		g.logger.WarnContext(ctx, "backend returned empty text", "language", lang.String())
		return EmptyResultText(lang), nil
	}
	return text, nil
}

func upstreamStatusCode(err error) (int, bool) {
	var statusErr httpStatusCoder
	if !errors.As(err, &statusErr) {
		return 0, false
	}
	return statusErr.HTTPStatusCode(), true
}
