package pipeline

import (
	"errors"
	"fmt"
	"strings"

	"github.com/LavanyaChowdam23/Text-Summarization-and-Paraphrasing/internal/analysis/textstat"
	"github.com/LavanyaChowdam23/Text-Summarization-and-Paraphrasing/internal/model/session"
	"github.com/LavanyaChowdam23/Text-Summarization-and-Paraphrasing/internal/model/task"
)

var (
	// ErrEmptyText rejects runs whose text is blank after trimming.
	ErrEmptyText = errors.New("text is required")
	// ErrParaphraseOptions rejects paraphrase runs that carry summarize-only options.
	ErrParaphraseOptions = errors.New("method and length apply to summarize only")
)

// Request is the JSON body of a run call.
type Request struct {
	SessionID string `json:"sessionId"`
	Task      string `json:"task"`
	Method    string `json:"method,omitempty"`
	Length    string `json:"length,omitempty"`
	Text      string `json:"text"`
}

// Run is a validated Request ready for the orchestrator.
type Run struct {
	SessionID string
	Op        task.Operation
	Method    task.Method
	Length    task.Length
	Text      string
	Mode      session.Mode
}

// Resolve validates a raw Request, fills in the picker defaults for
// summarize, and rejects summarize-only options on paraphrase.
func Resolve(req Request) (Run, error) {
	text := strings.TrimSpace(req.Text)
	if text == "" {
		return Run{}, ErrEmptyText
	}
	op, err := task.ParseOperation(req.Task)
	if err != nil {
		return Run{}, err
	}
	run := Run{SessionID: req.SessionID, Op: op, Text: text}
	switch op {
	case task.OperationSummarize:
		method, err := task.ParseMethod(req.Method)
		if err != nil {
			return Run{}, err
		}
		length, err := task.ParseLength(req.Length)
		if err != nil {
			return Run{}, err
		}
		run.Method = method
		run.Length = length
		run.Mode = session.ModeSummary
	case task.OperationParaphrase:
		if strings.TrimSpace(req.Method) != "" || strings.TrimSpace(req.Length) != "" {
			return Run{}, ErrParaphraseOptions
		}
		run.Mode = session.ModeParaphrase
	default:
		return Run{}, fmt.Errorf("unknown task %q", req.Task)
	}
	return run, nil
}

// Stats annotates a result with local reading measures.
type Stats struct {
	InputWords      int     `json:"inputWords"`
	InputSentences  int     `json:"inputSentences"`
	OutputWords     int     `json:"outputWords"`
	OutputSentences int     `json:"outputSentences"`
	CompressionPct  float64 `json:"compressionPct"`
}

// Result returns a finished run to the frontend.
type Result struct {
	SessionID string       `json:"sessionId"`
	Mode      session.Mode `json:"mode"`
	Output    string       `json:"output"`
	Stats     Stats        `json:"stats"`
}

// BuildStats derives the reading measures for a finished run.
func BuildStats(input, output string) Stats {
	in := textstat.Measure(input)
	out := textstat.Measure(output)
	return Stats{
		InputWords:      in.Words,
		InputSentences:  in.Sentences,
		OutputWords:     out.Words,
		OutputSentences: out.Sentences,
		CompressionPct:  textstat.CompressionPct(in, out),
	}
}
