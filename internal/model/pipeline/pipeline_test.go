package pipeline

import (
	"errors"
	"testing"

	"github.com/LavanyaChowdam23/Text-Summarization-and-Paraphrasing/internal/model/session"
	"github.com/LavanyaChowdam23/Text-Summarization-and-Paraphrasing/internal/model/task"
)

func TestResolveSummarizeDefaults(t *testing.T) {
	run, err := Resolve(Request{SessionID: "s1", Task: "summarize", Text: "  some text  "})
	if err != nil {
		t.Fatalf("Resolve err: %v", err)
	}
	if run.Method != task.MethodAbstractive || run.Length != task.LengthMedium {
		t.Fatalf("expected abstractive/medium defaults, got %s/%s", run.Method, run.Length)
	}
	if run.Mode != session.ModeSummary {
		t.Fatalf("expected summary mode, got %s", run.Mode)
	}
	if run.Text != "some text" {
		t.Fatalf("expected trimmed text, got %q", run.Text)
	}
}

func TestResolveNormalizesCase(t *testing.T) {
	run, err := Resolve(Request{Task: " Summarize ", Method: "EXTRACTIVE", Length: "Long", Text: "t"})
	if err != nil {
		t.Fatalf("Resolve err: %v", err)
	}
	if run.Op != task.OperationSummarize || run.Method != task.MethodExtractive || run.Length != task.LengthLong {
		t.Fatalf("case not normalized: %+v", run)
	}
}

func TestResolveParaphrase(t *testing.T) {
	run, err := Resolve(Request{Task: "paraphrase", Text: "t"})
	if err != nil {
		t.Fatalf("Resolve err: %v", err)
	}
	if run.Mode != session.ModeParaphrase {
		t.Fatalf("expected paraphrase mode, got %s", run.Mode)
	}
}

func TestResolveParaphraseRejectsOptions(t *testing.T) {
	if _, err := Resolve(Request{Task: "paraphrase", Method: "abstractive", Text: "t"}); !errors.Is(err, ErrParaphraseOptions) {
		t.Fatalf("expected ErrParaphraseOptions, got %v", err)
	}
	if _, err := Resolve(Request{Task: "paraphrase", Length: "short", Text: "t"}); !errors.Is(err, ErrParaphraseOptions) {
		t.Fatalf("expected ErrParaphraseOptions, got %v", err)
	}
}

func TestResolveEmptyText(t *testing.T) {
	if _, err := Resolve(Request{Task: "summarize", Text: "   "}); !errors.Is(err, ErrEmptyText) {
		t.Fatalf("expected ErrEmptyText, got %v", err)
	}
}

func TestResolveUnknownInputs(t *testing.T) {
	if _, err := Resolve(Request{Task: "translate", Text: "t"}); err == nil {
		t.Fatal("expected error for unknown task")
	}
	if _, err := Resolve(Request{Task: "summarize", Method: "magic", Text: "t"}); err == nil {
		t.Fatal("expected error for unknown method")
	}
	if _, err := Resolve(Request{Task: "summarize", Length: "huge", Text: "t"}); err == nil {
		t.Fatal("expected error for unknown length")
	}
}

func TestBuildStatsCompression(t *testing.T) {
	stats := BuildStats("one two three four five six seven eight. nine ten.", "one two three four.")
	if stats.InputWords != 10 || stats.InputSentences != 2 {
		t.Fatalf("unexpected input stats: %+v", stats)
	}
	if stats.OutputWords != 4 || stats.OutputSentences != 1 {
		t.Fatalf("unexpected output stats: %+v", stats)
	}
	if stats.CompressionPct != 60.0 {
		t.Fatalf("expected 60%% compression, got %v", stats.CompressionPct)
	}
}
