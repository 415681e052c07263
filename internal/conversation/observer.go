package conversation

import "esg-sunshine/internal/domain"

// Observer receives session activity. Calls are made without the session
// lock held and may arrive from the generator goroutine.
type Observer interface {
	MessageAppended(sessionID string, msg domain.ChatMessage)
	GenerationFailed(sessionID string, err error)
}

type nopObserver struct{}

func (nopObserver) MessageAppended(string, domain.ChatMessage) {}
func (nopObserver) GenerationFailed(string, error)             {}
