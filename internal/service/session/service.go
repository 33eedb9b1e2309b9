package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/LavanyaChowdam23/Text-Summarization-and-Paraphrasing/internal/model/session"
	"github.com/google/uuid"
)

var ErrSessionNotFound = errors.New("session not found")

// Service owns the transient per-session editor state.
type Service struct {
	mu       sync.RWMutex
	sessions map[string]session.Session
}

// NewService bootstraps the in-memory session store.
func NewService() *Service {
	return &Service{sessions: make(map[string]session.Session)}
}

// CreateSession provisions an empty session for a new browser tab.
func (s *Service) CreateSession(_ context.Context) (session.Session, error) {
	now := time.Now().UTC()
	sess := session.Session{
		ID:        uuid.NewString(),
		Mode:      session.ModeNone,
		CreatedAt: now,
		UpdatedAt: now,
	}

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()

	return sess, nil
}

// GetSession retrieves a session by identifier.
func (s *Service) GetSession(_ context.Context, sessionID string) (session.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[sessionID]
	if !ok {
		return session.Session{}, ErrSessionNotFound
	}
	return sess, nil
}

// SetResult stores the input that produced a finished run together with its
// output and mode tag. Callers invoke it only after a successful run, so a
// failed run never touches the stored state.
func (s *Service) SetResult(_ context.Context, sessionID, input, output string, mode session.Mode) (session.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		return session.Session{}, ErrSessionNotFound
	}

	sess.InputText = input
	sess.OutputText = output
	sess.Mode = mode
	sess.UpdatedAt = time.Now().UTC()
	s.sessions[sessionID] = sess
	return sess, nil
}

// Clear resets input, output, and mode while keeping the session alive.
func (s *Service) Clear(_ context.Context, sessionID string) (session.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		return session.Session{}, ErrSessionNotFound
	}

	sess.InputText = ""
	sess.OutputText = ""
	sess.Mode = session.ModeNone
	sess.UpdatedAt = time.Now().UTC()
	s.sessions[sessionID] = sess
	return sess, nil
}

// PruneIdle drops sessions whose last update is older than maxIdle and
// reports how many were removed.
func (s *Service) PruneIdle(maxIdle time.Duration) int {
	cutoff := time.Now().UTC().Add(-maxIdle)

	s.mu.Lock()
	defer s.mu.Unlock()

	pruned := 0
	for id, sess := range s.sessions {
		if sess.UpdatedAt.Before(cutoff) {
			delete(s.sessions, id)
			pruned++
		}
	}
	return pruned
}
