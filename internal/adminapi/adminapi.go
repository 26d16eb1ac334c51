// Package adminapi is the small HTTP admin surface for managing the
// personal dictionary and the enabled flag, kept close in shape to the
// teacher's cmd/main.go/cmd/server/main.go routes (bare net/http.ServeMux,
// the same JSON envelope) but re-pointed at this service's engine and
// dictionary loader instead of a text-correction endpoint.
package adminapi

import (
	"encoding/json"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/anselmlong/autocorrect/internal/dictionary"
)

// EngineControl is the subset of *engine.Engine the admin API needs, kept
// as a small interface so this package doesn't import the engine package
// just to call two methods.
type EngineControl interface {
	Toggle() bool
	Enabled() bool
}

// Server wires the HTTP handlers to the loader and engine.
type Server struct {
	mux          *http.ServeMux
	loader       *dictionary.Loader
	engine       EngineControl
	personalPath string
	log          *zap.SugaredLogger
}

// New builds a Server. Call Handler to get the http.Handler to serve.
func New(loader *dictionary.Loader, engine EngineControl, personalPath string, log *zap.SugaredLogger) *Server {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	s := &Server{
		mux:          http.NewServeMux(),
		loader:       loader,
		engine:       engine,
		personalPath: personalPath,
		log:          log,
	}
	s.routes()
	return s
}

func (s *Server) Handler() http.Handler { return s.mux }

func (s *Server) routes() {
	s.mux.HandleFunc("/api/v1/custom-word", s.handleAddWord)
	s.mux.HandleFunc("/api/v1/custom-word/", s.handleRemoveWord)
	s.mux.HandleFunc("/api/v1/enabled", s.handleEnabled)
}

func (s *Server) handleAddWord(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req struct {
		Word string `json:"word"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.Word) == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request"})
		return
	}
	if err := s.loader.AddPersonalWord(r.Context(), s.personalPath, req.Word); err != nil {
		s.log.Warnw("failed to add personal word", "word", req.Word, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"status": "ok"})
}

func (s *Server) handleRemoveWord(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		http.NotFound(w, r)
		return
	}
	word := strings.TrimPrefix(r.URL.Path, "/api/v1/custom-word/")
	if word == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "word is required"})
		return
	}
	if err := s.loader.RemoveCustomWord(r.Context(), word); err != nil {
		s.log.Warnw("failed to remove personal word", "word", word, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleEnabled(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, map[string]bool{"enabled": s.engine.Enabled()})
	case http.MethodPost:
		enabled := s.engine.Toggle()
		writeJSON(w, http.StatusOK, map[string]bool{"enabled": enabled})
	default:
		http.NotFound(w, r)
	}
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
