package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/aws/aws-lambda-go/events"
	"github.com/google/uuid"

	"esg-sunshine/internal/domain"
	"esg-sunshine/internal/i18n"
	"esg-sunshine/internal/insight"
	"esg-sunshine/internal/observability"
)

const correlationHeader = "X-Correlation-Id"

type InsightGenerator interface {
	Generate(ctx context.Context, prompt string, lang domain.Language) (string, error)
}

// Handler serves the insight generator behind API Gateway.
type Handler struct {
	gen InsightGenerator
}

type insightRequest struct {
	Prompt   string `json:"prompt"`
	Language string `json:"language"`
}

type insightResponse struct {
	Text     string          `json:"text"`
	Language domain.Language `json:"language"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

func NewHandler(gen InsightGenerator) (*Handler, error) {
	if gen == nil {
		return nil, errors.New("handler: insight generator must not be nil")
	}
	return &Handler{gen: gen}, nil
}

func (h *Handler) Handle(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	corrID := header(req.Headers, correlationHeader)
	if corrID == "" {
		corrID = uuid.NewString()
	}
	ctx = observability.WithRequestID(ctx, corrID)
	log := observability.LoggerFromContext(ctx)

	body := req.Body
	if req.IsBase64Encoded {
		raw, err := base64.StdEncoding.DecodeString(body)
		if err != nil {
			return respond(http.StatusBadRequest, corrID, errorResponse{Error: string(insight.ErrorInvalidSubmission), Message: "body is not valid base64"}), nil
		}
		body = string(raw)
	}

	var in insightRequest
	if err := json.Unmarshal([]byte(body), &in); err != nil {
		return respond(http.StatusBadRequest, corrID, errorResponse{Error: string(insight.ErrorInvalidSubmission), Message: "malformed JSON body"}), nil
	}

	lang := i18n.Match(header(req.Headers, "Accept-Language"))
	if strings.TrimSpace(in.Language) != "" {
		parsed, err := domain.ParseLanguage(in.Language)
		if err != nil {
			return respond(http.StatusBadRequest, corrID, errorResponse{Error: string(insight.ErrorInvalidSubmission), Message: "unsupported language"}), nil
		}
		lang = parsed
	}

	text, err := h.gen.Generate(ctx, in.Prompt, lang)
	if err != nil {
		code := insight.CodeOf(err)
		status := statusFor(code)
		if status >= http.StatusInternalServerError {
			log.Error("insight generation failed", "code", code, "err", err)
		} else {
			log.Warn("insight request rejected", "code", code, "err", err)
		}
		return respond(status, corrID, errorResponse{Error: string(code)}), nil
	}

	log.Info("insight generated", "language", lang.String(), "chars", len(text))
	return respond(http.StatusOK, corrID, insightResponse{Text: text, Language: lang}), nil
}

func statusFor(code insight.ErrorCode) int {
	switch code {
	case insight.ErrorInvalidSubmission:
		return http.StatusBadRequest
	case insight.ErrorRateLimited:
		return http.StatusTooManyRequests
	case insight.ErrorGenerationFailed:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// header looks up name case-insensitively.
func header(headers map[string]string, name string) string {
	if v, ok := headers[name]; ok {
		return strings.TrimSpace(v)
	}
	for k, v := range headers {
		if strings.EqualFold(k, name) {
			return strings.TrimSpace(v)
		}
	}
	return ""
}

func respond(status int, corrID string, body any) events.APIGatewayProxyResponse {
	payload, err := json.Marshal(body)
	if err != nil {
		status = http.StatusInternalServerError
		payload = []byte(`{"error":"INTERNAL_ERROR"}`)
	}
	return events.APIGatewayProxyResponse{
		StatusCode: status,
		Headers: map[string]string{
			"Content-Type":    "application/json",
			correlationHeader: corrID,
		},
		Body: string(payload),
	}
}
