package export

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/LavanyaChowdam23/Text-Summarization-and-Paraphrasing/internal/model/session"
)

var (
	// ErrNoOutput rejects saves before any pipeline has produced output.
	ErrNoOutput = errors.New("no output to save")
	// ErrNoDirectory rejects writes when no export directory is configured.
	ErrNoDirectory = errors.New("export directory is not configured")
)

// File names are fixed per mode so repeated saves overwrite in place.
var fileNames = map[session.Mode]string{
	session.ModeSummary:    "AI_output.txt",
	session.ModeParaphrase: "AI_paraphrase.txt",
}

// Service writes pipeline outputs into the export directory.
type Service struct {
	dir string
}

// NewService returns a Service targeting dir. An empty dir leaves the
// service constructed but rejecting every write.
func NewService(dir string) *Service {
	return &Service{dir: dir}
}

// Dir returns the configured export directory.
func (s *Service) Dir() string {
	return s.dir
}

// Write stores content under the fixed file name for mode and returns the
// absolute path of the written file.
func (s *Service) Write(mode session.Mode, content string) (string, error) {
	if content == "" {
		return "", ErrNoOutput
	}
	if s.dir == "" {
		return "", ErrNoDirectory
	}

	name, ok := fileNames[mode]
	if !ok {
		return "", fmt.Errorf("no export file for mode %q", mode)
	}

	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", name, err)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}

	log.Printf("[export] wrote %d bytes to %s", len(content), abs)
	return abs, nil
}
