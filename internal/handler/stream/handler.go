package stream

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/cloudwego/eino/schema"

	"github.com/LavanyaChowdam23/Text-Summarization-and-Paraphrasing/internal/model/pipeline"
	"github.com/LavanyaChowdam23/Text-Summarization-and-Paraphrasing/internal/model/task"
	aiService "github.com/LavanyaChowdam23/Text-Summarization-and-Paraphrasing/internal/service/ai"
	sessionService "github.com/LavanyaChowdam23/Text-Summarization-and-Paraphrasing/internal/service/session"
	"github.com/LavanyaChowdam23/Text-Summarization-and-Paraphrasing/pkg/utils"
)

// Handler streams pipeline output via Server-Sent Events.
type Handler struct {
	ai       *aiService.Service
	sessions *sessionService.Service
}

// New creates a stream handler.
func New(ai *aiService.Service, sessions *sessionService.Service) *Handler {
	return &Handler{
		ai:       ai,
		sessions: sessions,
	}
}

// StreamResponse represents one streamed SSE frame.
type StreamResponse struct {
	Event     string `json:"event"`
	Content   string `json:"content,omitempty"`
	SessionID string `json:"sessionId,omitempty"`
	Finished  bool   `json:"finished,omitempty"`
	Error     string `json:"error,omitempty"`
}

// HandleStreamRequest runs one pipeline over SSE: a start frame, delta
// frames while the model produces output, then message, stats, and end
// frames. Failures surface as an error frame and leave the session as it was.
func (h *Handler) HandleStreamRequest(ctx context.Context, w http.ResponseWriter, req pipeline.Request) error {
	flusher, ok := w.(http.Flusher)
	if !ok {
		return fmt.Errorf("streaming unsupported")
	}

	utils.SetupSSEHeaders(w)

	resolved, err := pipeline.Resolve(req)
	if err != nil {
		h.sendSSEError(w, flusher, err.Error())
		return err
	}

	if _, err := h.sessions.GetSession(ctx, resolved.SessionID); err != nil {
		h.sendSSEError(w, flusher, err.Error())
		return err
	}

	h.sendSSE(w, flusher, StreamResponse{
		Event:     "start",
		SessionID: resolved.SessionID,
	})

	response, err := h.dispatchPipeline(ctx, w, flusher, resolved)
	if err != nil {
		h.sendSSEError(w, flusher, err.Error())
		return err
	}

	output := strings.TrimSpace(response.Content)
	if output == "" {
		h.sendSSEError(w, flusher, aiService.ErrEmptyCompletion.Error())
		return aiService.ErrEmptyCompletion
	}

	if _, err := h.sessions.SetResult(ctx, resolved.SessionID, resolved.Text, output, resolved.Mode); err != nil {
		h.sendSSEError(w, flusher, err.Error())
		return err
	}

	h.sendSSE(w, flusher, StreamResponse{
		Event:     "message",
		SessionID: resolved.SessionID,
		Content:   output,
	})

	if statsPayload, err := json.Marshal(pipeline.BuildStats(resolved.Text, output)); err == nil {
		h.sendSSE(w, flusher, StreamResponse{
			Event:     "stats",
			SessionID: resolved.SessionID,
			Content:   string(statsPayload),
		})
	}

	h.sendSSE(w, flusher, StreamResponse{
		Event:     "end",
		SessionID: resolved.SessionID,
		Finished:  true,
	})

	log.Printf("[stream] completed %s for session=%s", resolved.Op, resolved.SessionID)
	return nil
}

// dispatchPipeline streams chunks when streaming is enabled and falls back
// to a single blocking call otherwise.
func (h *Handler) dispatchPipeline(ctx context.Context, w http.ResponseWriter, flusher http.Flusher, run pipeline.Run) (*schema.Message, error) {
	if h.ai.StreamingEnabled() {
		return h.streamPipeline(ctx, w, flusher, run)
	}

	output, err := h.runOnce(ctx, run)
	if err != nil {
		return nil, err
	}

	return schema.AssistantMessage(output, nil), nil
}

func (h *Handler) runOnce(ctx context.Context, run pipeline.Run) (string, error) {
	if run.Op == task.OperationParaphrase {
		return h.ai.Paraphrase(ctx, run.Text)
	}
	return h.ai.Summarize(ctx, run.Text, run.Method, run.Length)
}

func (h *Handler) openStream(ctx context.Context, run pipeline.Run) (*schema.StreamReader[*schema.Message], error) {
	if run.Op == task.OperationParaphrase {
		return h.ai.StreamParaphrase(ctx, run.Text)
	}
	return h.ai.StreamSummarize(ctx, run.Text, run.Method, run.Length)
}

func (h *Handler) streamPipeline(ctx context.Context, w http.ResponseWriter, flusher http.Flusher, run pipeline.Run) (*schema.Message, error) {
	stream, err := h.openStream(ctx, run)
	if err != nil {
		return nil, err
	}
	defer stream.Close()

	chunks := make([]*schema.Message, 0, 8)

	for {
		chunk, recvErr := stream.Recv()
		if errors.Is(recvErr, io.EOF) {
			break
		}
		if recvErr != nil {
			return nil, recvErr
		}
		if chunk == nil {
			continue
		}

		chunks = append(chunks, chunk)
		if chunk.Content != "" {
			h.sendSSE(w, flusher, StreamResponse{
				Event:     "delta",
				SessionID: run.SessionID,
				Content:   chunk.Content,
			})
		}
	}

	return schema.ConcatMessages(chunks)
}

// sendSSE writes one event frame.
func (h *Handler) sendSSE(w http.ResponseWriter, flusher http.Flusher, response StreamResponse) {
	utils.SendSSEChunk(w, flusher, response)
}

// sendSSEError reports a failure in-band on the event stream.
func (h *Handler) sendSSEError(w http.ResponseWriter, flusher http.Flusher, errorMsg string) {
	h.sendSSE(w, flusher, StreamResponse{
		Event: "error",
		Error: errorMsg,
	})
}
