package export_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	model "github.com/LavanyaChowdam23/Text-Summarization-and-Paraphrasing/internal/model/session"
	export "github.com/LavanyaChowdam23/Text-Summarization-and-Paraphrasing/internal/service/export"
)

func TestWriteSummaryFile(t *testing.T) {
	dir := t.TempDir()
	svc := export.NewService(dir)

	path, err := svc.Write(model.ModeSummary, "the summary body")
	if err != nil {
		t.Fatalf("Write err: %v", err)
	}
	if filepath.Base(path) != "AI_output.txt" {
		t.Fatalf("unexpected file name: %s", path)
	}
	if !filepath.IsAbs(path) {
		t.Fatalf("expected absolute path, got %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile err: %v", err)
	}
	if string(data) != "the summary body" {
		t.Fatalf("file contents differ: %q", data)
	}
}

func TestWriteParaphraseFile(t *testing.T) {
	dir := t.TempDir()
	svc := export.NewService(dir)

	path, err := svc.Write(model.ModeParaphrase, "the rewritten body")
	if err != nil {
		t.Fatalf("Write err: %v", err)
	}
	if filepath.Base(path) != "AI_paraphrase.txt" {
		t.Fatalf("unexpected file name: %s", path)
	}
}

func TestWriteRejectsEmptyContent(t *testing.T) {
	dir := t.TempDir()
	svc := export.NewService(dir)

	if _, err := svc.Write(model.ModeSummary, ""); !errors.Is(err, export.ErrNoOutput) {
		t.Fatalf("expected ErrNoOutput, got %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir err: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected no files written, found %d", len(entries))
	}
}

func TestWriteRejectsMissingDirectory(t *testing.T) {
	svc := export.NewService("")

	if _, err := svc.Write(model.ModeSummary, "content"); !errors.Is(err, export.ErrNoDirectory) {
		t.Fatalf("expected ErrNoDirectory, got %v", err)
	}
}

func TestWriteSurfacesFilesystemErrors(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "does", "not", "exist")
	svc := export.NewService(dir)

	if _, err := svc.Write(model.ModeSummary, "content"); err == nil {
		t.Fatal("expected error for missing directory")
	}
}

func TestWriteOverwritesPreviousSave(t *testing.T) {
	dir := t.TempDir()
	svc := export.NewService(dir)

	if _, err := svc.Write(model.ModeSummary, "first version"); err != nil {
		t.Fatalf("Write err: %v", err)
	}
	path, err := svc.Write(model.ModeSummary, "second version")
	if err != nil {
		t.Fatalf("Write err: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile err: %v", err)
	}
	if string(data) != "second version" {
		t.Fatalf("expected overwrite, got %q", data)
	}
}
