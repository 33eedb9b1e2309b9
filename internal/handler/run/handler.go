package run

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/LavanyaChowdam23/Text-Summarization-and-Paraphrasing/internal/model/pipeline"
	"github.com/LavanyaChowdam23/Text-Summarization-and-Paraphrasing/internal/model/task"
	aiService "github.com/LavanyaChowdam23/Text-Summarization-and-Paraphrasing/internal/service/ai"
	sessionService "github.com/LavanyaChowdam23/Text-Summarization-and-Paraphrasing/internal/service/session"
	"github.com/LavanyaChowdam23/Text-Summarization-and-Paraphrasing/pkg/utils"
)

// Handler executes one-shot pipeline runs.
type Handler struct {
	ai       *aiService.Service
	sessions *sessionService.Service
}

// New creates a run handler.
func New(ai *aiService.Service, sessions *sessionService.Service) *Handler {
	return &Handler{
		ai:       ai,
		sessions: sessions,
	}
}

// RegisterRoutes mounts the run route.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/run", h.handleRun)
}

// handleRun validates the request, executes exactly one inference call, and
// stores the result. A failed run leaves the session state untouched.
func (h *Handler) handleRun(w http.ResponseWriter, r *http.Request) {
	var req pipeline.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resolved, err := pipeline.Resolve(req)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if _, err := h.sessions.GetSession(r.Context(), resolved.SessionID); err != nil {
		utils.RespondError(w, http.StatusNotFound, err.Error())
		return
	}

	output, err := h.dispatch(r.Context(), resolved)
	if err != nil {
		log.Printf("[run] %s failed for session=%s: %v", resolved.Op, resolved.SessionID, err)
		utils.RespondError(w, http.StatusBadGateway, err.Error())
		return
	}

	sess, err := h.sessions.SetResult(r.Context(), resolved.SessionID, resolved.Text, output, resolved.Mode)
	if err != nil {
		utils.RespondError(w, http.StatusNotFound, err.Error())
		return
	}

	utils.RespondJSON(w, http.StatusOK, pipeline.Result{
		SessionID: sess.ID,
		Mode:      sess.Mode,
		Output:    output,
		Stats:     pipeline.BuildStats(resolved.Text, output),
	})
}

func (h *Handler) dispatch(ctx context.Context, run pipeline.Run) (string, error) {
	if run.Op == task.OperationParaphrase {
		return h.ai.Paraphrase(ctx, run.Text)
	}
	return h.ai.Summarize(ctx, run.Text, run.Method, run.Length)
}
