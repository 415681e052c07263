package api

import (
	"errors"
	"net/http"

	"esg-sunshine/internal/conversation"
	"esg-sunshine/internal/domain"
	"esg-sunshine/internal/i18n"
	"esg-sunshine/internal/observability"
	"esg-sunshine/internal/render"
)

type messageView struct {
	domain.ChatMessage
	HTML string `json:"html"`
}

type assistantResponse struct {
	ID            string             `json:"id"`
	State         conversation.State `json:"state"`
	Language      domain.Language    `json:"language"`
	Open          bool               `json:"open"`
	Title         string             `json:"title"`
	Footer        string             `json:"footer"`
	Placeholder   string             `json:"placeholder"`
	ThinkingLabel string             `json:"thinkingLabel"`
	Input         string             `json:"input"`
	Messages      []messageView      `json:"messages"`
}

type submitRequest struct {
	Text string `json:"text"`
}

type submitResponse struct {
	Accepted  bool              `json:"accepted"`
	Assistant assistantResponse `json:"assistant"`
}

func (s *Server) assistantBody(r *http.Request) assistantResponse {
	snap := s.app.Assistant().Snapshot()
	strs := i18n.For(snap.Language).Assistant
	out := assistantResponse{
		ID:            snap.ID,
		State:         snap.State,
		Language:      snap.Language,
		Open:          s.app.PanelOpen(),
		Title:         strs.Title,
		Footer:        strs.Footer,
		Placeholder:   snap.Placeholder,
		ThinkingLabel: snap.ThinkingLabel,
		Input:         snap.Input,
		Messages:      make([]messageView, 0, len(snap.Messages)),
	}
	for _, m := range snap.Messages {
		html, err := render.MessageHTML(m)
		if err != nil {
			observability.LoggerFromContext(r.Context()).Warn("render message failed", "message_id", m.ID, "err", err)
		}
		out.Messages = append(out.Messages, messageView{ChatMessage: m, HTML: html})
	}
	return out
}

func (s *Server) getAssistant(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.assistantBody(r))
}

func (s *Server) openAssistant(w http.ResponseWriter, r *http.Request) {
	s.app.OpenPanel()
	writeJSON(w, http.StatusOK, s.assistantBody(r))
}

func (s *Server) closeAssistant(w http.ResponseWriter, r *http.Request) {
	s.app.ClosePanel()
	writeJSON(w, http.StatusOK, s.assistantBody(r))
}

func (s *Server) resetAssistant(w http.ResponseWriter, r *http.Request) {
	if _, err := s.app.ResetAssistant(); err != nil {
		writeError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "failed to reset assistant")
		return
	}
	writeJSON(w, http.StatusOK, s.assistantBody(r))
}

func (s *Server) putInput(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "INVALID_INPUT", "malformed JSON body")
		return
	}
	s.app.Assistant().SetInput(req.Text)
	writeJSON(w, http.StatusOK, s.assistantBody(r))
}

func (s *Server) send(w http.ResponseWriter, r *http.Request) {
	accepted, err := s.app.Assistant().Send()
	s.writeSubmit(w, r, accepted, err)
}

func (s *Server) postMessage(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "INVALID_INPUT", "malformed JSON body")
		return
	}
	accepted, err := s.app.Assistant().Submit(req.Text)
	s.writeSubmit(w, r, accepted, err)
}

// writeSubmit answers 202 when a reply was scheduled and 200 when the
// submission was dropped because one is already pending.
func (s *Server) writeSubmit(w http.ResponseWriter, r *http.Request, accepted bool, err error) {
	switch {
	case errors.Is(err, conversation.ErrInvalidSubmission):
		writeError(w, r, http.StatusBadRequest, "INVALID_SUBMISSION", "message text must not be empty")
		return
	case errors.Is(err, conversation.ErrClosed):
		writeError(w, r, http.StatusConflict, "SESSION_CLOSED", "assistant session was reset, retry")
		return
	case err != nil:
		writeError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "failed to submit message")
		return
	}
	status := http.StatusOK
	if accepted {
		status = http.StatusAccepted
	}
	writeJSON(w, status, submitResponse{Accepted: accepted, Assistant: s.assistantBody(r)})
}
