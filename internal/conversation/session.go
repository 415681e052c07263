package conversation

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"esg-sunshine/internal/domain"
	"esg-sunshine/internal/i18n"
)

var (
	ErrInvalidSubmission = errors.New("conversation: submission is empty")
	ErrClosed            = errors.New("conversation: session is closed")
)

// Generator produces the assistant reply for a prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string, lang domain.Language) (string, error)
}

// Session owns one chat log and allows at most one generation in flight.
type Session struct {
	id       string
	gen      Generator
	delay    time.Duration
	timeout  time.Duration
	logger   *slog.Logger
	observer Observer
	now      func() time.Time

	ctx    context.Context
	cancel context.CancelFunc

	mu       sync.Mutex
	messages []domain.ChatMessage
	state    State
	lang     domain.Language
	input    string
	closed   bool
	timer    *time.Timer
	inflight context.CancelFunc
	idle     chan struct{}
}

// Snapshot is a point-in-time copy of a session.
type Snapshot struct {
	ID            string               `json:"id"`
	State         State                `json:"state"`
	Language      domain.Language      `json:"language"`
	Messages      []domain.ChatMessage `json:"messages"`
	Input         string               `json:"input"`
	Placeholder   string               `json:"placeholder"`
	ThinkingLabel string               `json:"thinkingLabel"`
}

func NewSession(gen Generator, lang domain.Language, opts ...Option) (*Session, error) {
	if gen == nil {
		return nil, errors.New("conversation: generator must not be nil")
	}
	if !lang.Valid() {
		lang = domain.DefaultLanguage
	}
	s := &Session{
		id:       uuid.NewString(),
		gen:      gen,
		delay:    DefaultThinkingDelay,
		timeout:  DefaultRequestTimeout,
		logger:   slog.Default(),
		observer: nopObserver{},
		now:      time.Now,
		lang:     lang,
		idle:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With("session_id", s.id)
	s.ctx, s.cancel = context.WithCancel(context.Background())
	close(s.idle)

	s.messages = []domain.ChatMessage{s.newMessage(domain.RoleAssistant, i18n.For(lang).Assistant.Greeting)}
	return s, nil
}

func (s *Session) ID() string { return s.id }

// Submit appends text as a user message and schedules the reply. It
// returns false without error when a reply is already pending.
func (s *Session) Submit(text string) (bool, error) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return false, ErrClosed
	}
	if strings.TrimSpace(text) == "" {
		s.mu.Unlock()
		return false, ErrInvalidSubmission
	}
	if s.state == StateAwaitingResponse {
		s.mu.Unlock()
		s.logger.Debug("submission dropped while awaiting response")
		return false, nil
	}

	msg := s.newMessage(domain.RoleUser, text)
	s.messages = append(s.messages, msg)
	s.state = StateAwaitingResponse
	s.idle = make(chan struct{})
	s.input = ""
	lang := s.lang
	// The reply is not dispatched before observers have seen the user
	// message, so event consumers always get the pair in log order.
	notified := make(chan struct{})
	s.timer = time.AfterFunc(s.delay, func() {
		<-notified
		s.dispatch(text, lang)
	})
	observer := s.observer
	s.mu.Unlock()

	observer.MessageAppended(s.id, msg)
	close(notified)
	return true, nil
}

// SetInput replaces the input buffer.
func (s *Session) SetInput(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.closed {
		s.input = text
	}
}

func (s *Session) Input() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.input
}

// Send submits the current input buffer.
func (s *Session) Send() (bool, error) {
	return s.Submit(s.Input())
}

// SetLanguage changes the language used for later prompts and labels.
// Messages already in the log keep their text.
func (s *Session) SetLanguage(lang domain.Language) {
	if !lang.Valid() {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lang = lang
}

func (s *Session) Language() domain.Language {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lang
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	strs := i18n.For(s.lang).Assistant
	return Snapshot{
		ID:            s.id,
		State:         s.state,
		Language:      s.lang,
		Messages:      append([]domain.ChatMessage(nil), s.messages...),
		Input:         s.input,
		Placeholder:   strs.Placeholder,
		ThinkingLabel: strs.Thinking,
	}
}

// WaitIdle blocks until no reply is pending or ctx is done.
func (s *Session) WaitIdle(ctx context.Context) error {
	s.mu.Lock()
	idle := s.idle
	s.mu.Unlock()

	select {
	case <-idle:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close stops any pending work and discards the log.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	if s.inflight != nil {
		s.inflight()
		s.inflight = nil
	}
	s.cancel()
	s.messages = nil
	s.input = ""
	if s.state == StateAwaitingResponse {
		s.state = StateIdle
		close(s.idle)
	}
}

func (s *Session) dispatch(prompt string, lang domain.Language) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.timer = nil
	var (
		ctx    context.Context
		cancel context.CancelFunc
	)
	if s.timeout > 0 {
		ctx, cancel = context.WithTimeout(s.ctx, s.timeout)
	} else {
		ctx, cancel = context.WithCancel(s.ctx)
	}
	s.inflight = cancel
	s.mu.Unlock()

	text, err := s.gen.Generate(ctx, prompt, lang)
	cancel()
	s.settle(text, err)
}

func (s *Session) settle(text string, err error) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.inflight = nil
	var msg domain.ChatMessage
	if err == nil {
		msg = s.newMessage(domain.RoleAssistant, text)
		s.messages = append(s.messages, msg)
	}
	s.state = StateIdle
	idle := s.idle
	observer := s.observer
	s.mu.Unlock()

	// Waiters are released only after observers have run.
	defer close(idle)
	if err != nil {
		s.logger.Error("generation failed", "err", err)
		observer.GenerationFailed(s.id, err)
		return
	}
	observer.MessageAppended(s.id, msg)
}

func (s *Session) newMessage(role domain.Role, text string) domain.ChatMessage {
	return domain.ChatMessage{
		ID:        uuid.NewString(),
		Role:      role,
		Text:      text,
		CreatedAt: s.now(),
	}
}
