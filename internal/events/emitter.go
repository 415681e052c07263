package events

import (
	"log/slog"
	"strings"
	"time"

	"esg-sunshine/internal/domain"
	"esg-sunshine/internal/insight"
)

const DefaultSubjectPrefix = "esg.assistant"

const (
	suffixMessageAppended  = ".message.appended"
	suffixGenerationFailed = ".generation.failed"
	suffixLanguageToggled  = ".language.toggled"
)

type Publisher interface {
	Publish(subject string, data any) error
}

type MessageAppended struct {
	SessionID string             `json:"session_id"`
	Message   domain.ChatMessage `json:"message"`
}

type GenerationFailed struct {
	SessionID string    `json:"session_id"`
	Code      string    `json:"code"`
	Error     string    `json:"error"`
	At        time.Time `json:"at"`
}

type LanguageToggled struct {
	Language domain.Language `json:"language"`
	At       time.Time       `json:"at"`
}

// Emitter publishes assistant activity as diagnostic events. Publish
// errors are logged and never returned to the caller.
type Emitter struct {
	pub    Publisher
	prefix string
	logger *slog.Logger
	now    func() time.Time
}

// NewEmitter returns an emitter that drops everything when pub is nil.
func NewEmitter(pub Publisher, prefix string, logger *slog.Logger) *Emitter {
	prefix = normalizePrefix(prefix)
	if logger == nil {
		logger = slog.Default()
	}
	return &Emitter{pub: pub, prefix: prefix, logger: logger, now: time.Now}
}

func (e *Emitter) MessageAppended(sessionID string, msg domain.ChatMessage) {
	e.publish(suffixMessageAppended, MessageAppended{SessionID: sessionID, Message: msg})
}

func (e *Emitter) GenerationFailed(sessionID string, err error) {
	ev := GenerationFailed{
		SessionID: sessionID,
		Code:      string(insight.CodeOf(err)),
		At:        e.now(),
	}
	if err != nil {
		ev.Error = err.Error()
	}
	e.publish(suffixGenerationFailed, ev)
}

func (e *Emitter) LanguageToggled(lang domain.Language) {
	e.publish(suffixLanguageToggled, LanguageToggled{Language: lang, At: e.now()})
}

func (e *Emitter) publish(suffix string, data any) {
	if e == nil || e.pub == nil {
		return
	}
	subject := e.prefix + suffix
	if err := e.pub.Publish(subject, data); err != nil {
		e.logger.Warn("publish event failed", "subject", subject, "err", err)
	}
}

func normalizePrefix(prefix string) string {
	prefix = strings.TrimRight(strings.TrimSpace(prefix), ".")
	if prefix == "" {
		return DefaultSubjectPrefix
	}
	return prefix
}
