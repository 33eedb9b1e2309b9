package session

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	exportService "github.com/LavanyaChowdam23/Text-Summarization-and-Paraphrasing/internal/service/export"
	sessionService "github.com/LavanyaChowdam23/Text-Summarization-and-Paraphrasing/internal/service/session"
)

// Handler serves the session lifecycle endpoints.
type Handler struct {
	sessions *sessionService.Service
	exporter *exportService.Service
}

// New creates a session handler.
func New(sessions *sessionService.Service, exporter *exportService.Service) *Handler {
	return &Handler{
		sessions: sessions,
		exporter: exporter,
	}
}

// RegisterRoutes mounts the session routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/session", h.handleCreateSession)
	r.Get("/session/{sessionID}", h.handleGetSession)
	r.Post("/session/{sessionID}/clear", h.handleClearSession)
	r.Post("/session/{sessionID}/save", h.handleSaveOutput)
}

// handleCreateSession provisions a fresh session for a browser tab.
func (h *Handler) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	sess, err := h.sessions.CreateSession(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondJSON(w, http.StatusCreated, sess)
}

// handleGetSession returns the current view-model for a session.
func (h *Handler) handleGetSession(w http.ResponseWriter, r *http.Request) {
	sess, err := h.sessions.GetSession(r.Context(), chi.URLParam(r, "sessionID"))
	if err != nil {
		respondError(w, http.StatusNotFound, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, sess)
}

// handleClearSession resets input, output, and mode in one step.
func (h *Handler) handleClearSession(w http.ResponseWriter, r *http.Request) {
	sess, err := h.sessions.Clear(r.Context(), chi.URLParam(r, "sessionID"))
	if err != nil {
		respondError(w, http.StatusNotFound, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, sess)
}

// handleSaveOutput writes the session's current output into the export
// directory. Sessions without output are rejected before any file I/O.
func (h *Handler) handleSaveOutput(w http.ResponseWriter, r *http.Request) {
	sess, err := h.sessions.GetSession(r.Context(), chi.URLParam(r, "sessionID"))
	if err != nil {
		respondError(w, http.StatusNotFound, err.Error())
		return
	}

	if sess.OutputText == "" {
		respondError(w, http.StatusBadRequest, "no output to save")
		return
	}

	path, err := h.exporter.Write(sess.Mode, sess.OutputText)
	if err != nil {
		if errors.Is(err, exportService.ErrNoOutput) {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"path": path})
}

// respondJSON writes a JSON response.
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

// respondError writes a JSON error envelope.
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
