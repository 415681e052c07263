package conversation

import (
	"log/slog"
	"time"
)

const (
	DefaultThinkingDelay  = 800 * time.Millisecond
	DefaultRequestTimeout = 30 * time.Second
)

type Option func(*Session)

// WithThinkingDelay sets the pause between accepting a submission and
// calling the generator. Negative values are treated as zero.
func WithThinkingDelay(d time.Duration) Option {
	return func(s *Session) {
		if d < 0 {
			d = 0
		}
		s.delay = d
	}
}

// WithRequestTimeout bounds each generator call. Zero disables the bound.
func WithRequestTimeout(d time.Duration) Option {
	return func(s *Session) {
		if d < 0 {
			d = 0
		}
		s.timeout = d
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func WithObserver(o Observer) Option {
	return func(s *Session) {
		if o != nil {
			s.observer = o
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Session) {
		if now != nil {
			s.now = now
		}
	}
}
