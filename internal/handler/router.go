package handler

import (
	"log"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	runHandler "github.com/LavanyaChowdam23/Text-Summarization-and-Paraphrasing/internal/handler/run"
	sessionHandler "github.com/LavanyaChowdam23/Text-Summarization-and-Paraphrasing/internal/handler/session"
	streamHandler "github.com/LavanyaChowdam23/Text-Summarization-and-Paraphrasing/internal/handler/stream"
	taskHandler "github.com/LavanyaChowdam23/Text-Summarization-and-Paraphrasing/internal/handler/task"
	middlewarePkg "github.com/LavanyaChowdam23/Text-Summarization-and-Paraphrasing/internal/middleware"
	"github.com/LavanyaChowdam23/Text-Summarization-and-Paraphrasing/internal/model/pipeline"
	taskModel "github.com/LavanyaChowdam23/Text-Summarization-and-Paraphrasing/internal/model/task"
	aiService "github.com/LavanyaChowdam23/Text-Summarization-and-Paraphrasing/internal/service/ai"
	exportService "github.com/LavanyaChowdam23/Text-Summarization-and-Paraphrasing/internal/service/export"
	sessionService "github.com/LavanyaChowdam23/Text-Summarization-and-Paraphrasing/internal/service/session"
	"github.com/LavanyaChowdam23/Text-Summarization-and-Paraphrasing/pkg/utils"
	"github.com/LavanyaChowdam23/Text-Summarization-and-Paraphrasing/web"
)

// NewRouter wires HTTP routes to core services.
func NewRouter(tasks taskModel.Store, sessions *sessionService.Service, aiSvc *aiService.Service, exporter *exportService.Service) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewarePkg.CORS)

	taskH := taskHandler.New(tasks)
	sessionH := sessionHandler.New(sessions, exporter)
	runH := runHandler.New(aiSvc, sessions)

	// The SSE route only exists when the configuration allows streaming.
	var streamH *streamHandler.Handler
	if aiSvc != nil && aiSvc.StreamingEnabled() {
		streamH = streamHandler.New(aiSvc, sessions)
	}

	r.Route("/api", func(api chi.Router) {
		taskH.RegisterRoutes(api)
		sessionH.RegisterRoutes(api)
		runH.RegisterRoutes(api)

		api.Get("/stream/{sessionID}", func(w http.ResponseWriter, r *http.Request) {
			if streamH == nil {
				utils.RespondError(w, http.StatusServiceUnavailable, "streaming unavailable")
				return
			}

			query := r.URL.Query()
			req := pipeline.Request{
				SessionID: chi.URLParam(r, "sessionID"),
				Task:      query.Get("task"),
				Method:    query.Get("method"),
				Length:    query.Get("length"),
				Text:      query.Get("text"),
			}
			if strings.TrimSpace(req.Text) == "" {
				utils.RespondError(w, http.StatusBadRequest, "text query parameter is required")
				return
			}

			if err := streamH.HandleStreamRequest(r.Context(), w, req); err != nil {
				log.Printf("[stream] error handling request: %v", err)
				utils.RespondError(w, http.StatusInternalServerError, "streaming failed")
			}
		})
	})

	r.Handle("/static/*", web.Static())
	r.Get("/", web.Index)

	return r
}
