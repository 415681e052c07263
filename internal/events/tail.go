package events

import (
	"encoding/json"
	"io"
	"sync"
)

// Subscriber delivers raw messages published on a subject pattern.
type Subscriber interface {
	Subscribe(subject string, handler func(subject string, data []byte)) error
}

// TailLine is one event as written by Tail.
type TailLine struct {
	Subject string          `json:"subject"`
	Event   json.RawMessage `json:"event"`
}

// Wildcard is the subject pattern matching every event under prefix.
func Wildcard(prefix string) string {
	return normalizePrefix(prefix) + ".>"
}

// Tail subscribes to every event under prefix and writes each one to w as a
// JSON line. Payloads that are not valid JSON are written as strings.
func Tail(sub Subscriber, prefix string, w io.Writer) error {
	var mu sync.Mutex
	enc := json.NewEncoder(w)
	return sub.Subscribe(Wildcard(prefix), func(subject string, data []byte) {
		line := TailLine{Subject: subject, Event: data}
		if !json.Valid(data) {
			quoted, _ := json.Marshal(string(data))
			line.Event = quoted
		}
		mu.Lock()
		defer mu.Unlock()
		_ = enc.Encode(line)
	})
}
