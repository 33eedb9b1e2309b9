package task

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/LavanyaChowdam23/Text-Summarization-and-Paraphrasing/internal/model/task"
)

// Handler serves the task catalog the frontend builds its pickers from.
type Handler struct {
	tasks task.Store
}

// New creates a task handler.
func New(tasks task.Store) *Handler {
	return &Handler{
		tasks: tasks,
	}
}

// RegisterRoutes mounts the task routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/tasks", h.handleListTasks)
	r.Get("/tasks/{taskID}", h.handleGetTask)
}

// handleListTasks lists every pipeline profile.
func (h *Handler) handleListTasks(w http.ResponseWriter, r *http.Request) {
	profiles := h.tasks.List()
	h.respondJSON(w, http.StatusOK, profiles)
}

// handleGetTask returns a single pipeline profile.
func (h *Handler) handleGetTask(w http.ResponseWriter, r *http.Request) {
	op, err := task.ParseOperation(chi.URLParam(r, "taskID"))
	if err != nil {
		h.respondJSON(w, http.StatusNotFound, map[string]string{"error": "task not found"})
		return
	}

	profile, ok := h.tasks.FindByID(op)
	if !ok {
		h.respondJSON(w, http.StatusNotFound, map[string]string{"error": "task not found"})
		return
	}

	h.respondJSON(w, http.StatusOK, profile)
}

// respondJSON writes a JSON response.
func (h *Handler) respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
