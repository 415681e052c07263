package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"esg-sunshine/internal/app"
	"esg-sunshine/internal/observability"
)

type Server struct {
	router *chi.Mux
	app    *app.App
}

func NewServer(a *app.App) (*Server, error) {
	if a == nil {
		return nil, errors.New("api: app must not be nil")
	}
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(requestLogger)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	s := &Server{router: router, app: a}

	router.Get("/health", s.health)
	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/state", s.state)
		r.Post("/login", s.login)

		r.Get("/preferences/language", s.getLanguage)
		r.Put("/preferences/language", s.putLanguage)
		r.Post("/preferences/language/toggle", s.toggleLanguage)

		r.Get("/view", s.getView)
		r.Put("/view", s.putView)
		r.Post("/cells/render", s.renderCell)

		r.Group(func(r chi.Router) {
			r.Use(s.requireLogin)
			r.Get("/screens/{view}", s.screen)

			r.Get("/assistant", s.getAssistant)
			r.Post("/assistant/open", s.openAssistant)
			r.Post("/assistant/close", s.closeAssistant)
			r.Post("/assistant/reset", s.resetAssistant)
			r.Put("/assistant/input", s.putInput)
			r.Post("/assistant/send", s.send)
			r.Post("/assistant/messages", s.postMessage)
		})
	})
	return s, nil
}

func (s *Server) Handler() http.Handler { return s.router }

// requestLogger copies chi's request id into the context used by
// observability.LoggerFromContext and echoes it to the client.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := middleware.GetReqID(r.Context())
		if id != "" {
			w.Header().Set(middleware.RequestIDHeader, id)
			r = r.WithContext(observability.WithRequestID(r.Context(), id))
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) requireLogin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !s.app.Gate().Authenticated() {
			writeError(w, r, http.StatusUnauthorized, "LOGIN_REQUIRED", "login required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Warn("encode response failed", "err", err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, code, msg string) {
	if status >= http.StatusInternalServerError {
		observability.LoggerFromContext(r.Context()).Error("request failed", "path", r.URL.Path, "code", code, "message", msg)
	}
	writeJSON(w, status, errorResponse{Error: code, Message: msg})
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20))
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
