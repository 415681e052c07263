package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"esg-sunshine/internal/app"
	"esg-sunshine/internal/domain"
	"esg-sunshine/internal/render"
)

type languageRequest struct {
	Language string `json:"language"`
}

type languageResponse struct {
	Language  domain.Language   `json:"language"`
	Supported []domain.Language `json:"supported"`
}

type viewRequest struct {
	View string `json:"view"`
}

type viewResponse struct {
	View domain.View `json:"view"`
}

func (s *Server) state(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.app.State())
}

func (s *Server) login(w http.ResponseWriter, _ *http.Request) {
	s.app.Gate().Login()
	writeJSON(w, http.StatusOK, s.app.State())
}

func (s *Server) languageBody() languageResponse {
	return languageResponse{Language: s.app.Language(), Supported: domain.SupportedLanguages}
}

func (s *Server) getLanguage(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.languageBody())
}

func (s *Server) putLanguage(w http.ResponseWriter, r *http.Request) {
	var req languageRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "INVALID_INPUT", "malformed JSON body")
		return
	}
	lang, err := domain.ParseLanguage(req.Language)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "UNSUPPORTED_LANGUAGE", err.Error())
		return
	}
	if err := s.app.SetLanguage(r.Context(), lang); err != nil {
		writeError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "failed to persist language")
		return
	}
	writeJSON(w, http.StatusOK, s.languageBody())
}

func (s *Server) toggleLanguage(w http.ResponseWriter, r *http.Request) {
	if _, err := s.app.ToggleLanguage(r.Context()); err != nil {
		writeError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "failed to persist language")
		return
	}
	writeJSON(w, http.StatusOK, s.languageBody())
}

func (s *Server) getView(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, viewResponse{View: s.app.Router().Current()})
}

func (s *Server) putView(w http.ResponseWriter, r *http.Request) {
	var req viewRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "INVALID_INPUT", "malformed JSON body")
		return
	}
	v, err := domain.ParseView(req.View)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "UNKNOWN_VIEW", err.Error())
		return
	}
	if err := s.app.Router().Navigate(v); err != nil {
		writeError(w, r, http.StatusBadRequest, "UNKNOWN_VIEW", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, viewResponse{View: v})
}

func (s *Server) screen(w http.ResponseWriter, r *http.Request) {
	v, err := domain.ParseView(chi.URLParam(r, "view"))
	if err != nil {
		writeError(w, r, http.StatusNotFound, "UNKNOWN_VIEW", err.Error())
		return
	}
	sc, err := s.app.Screen(v)
	switch {
	case errors.Is(err, app.ErrLoginRequired):
		writeError(w, r, http.StatusUnauthorized, "LOGIN_REQUIRED", "login required")
		return
	case err != nil:
		writeError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "failed to build screen")
		return
	}
	writeJSON(w, http.StatusOK, sc)
}

func (s *Server) renderCell(w http.ResponseWriter, r *http.Request) {
	var c render.Cell
	if err := decodeJSON(w, r, &c); err != nil {
		writeError(w, r, http.StatusBadRequest, "INVALID_INPUT", "malformed JSON body")
		return
	}
	v, err := render.Render(c)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "INVALID_CELL", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, v)
}
