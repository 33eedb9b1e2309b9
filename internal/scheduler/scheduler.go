package scheduler

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"

	session "github.com/LavanyaChowdam23/Text-Summarization-and-Paraphrasing/internal/service/session"
)

// HourlyPruneSpec fires at the top of every hour.
const HourlyPruneSpec = "0 * * * *"

// Scheduler prunes idle sessions on a fixed cron cadence.
type Scheduler struct {
	cron     *cron.Cron
	sessions *session.Service
	maxIdle  time.Duration
}

// New wires a cron instance around the session store janitor.
func New(sessions *session.Service, maxIdle time.Duration) *Scheduler {
	return &Scheduler{
		cron:     cron.New(cron.WithLocation(time.UTC)),
		sessions: sessions,
		maxIdle:  maxIdle,
	}
}

// Start registers the hourly prune job and launches the cron loop.
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(HourlyPruneSpec, s.pruneIdleSessions); err != nil {
		return err
	}

	s.cron.Start()
	return nil
}

// Stop halts the cron loop. A prune already in flight finishes on its own.
func (s *Scheduler) Stop() {
	s.cron.Stop()
}

func (s *Scheduler) pruneIdleSessions() {
	if pruned := s.sessions.PruneIdle(s.maxIdle); pruned > 0 {
		log.Printf("[scheduler] pruned %d idle sessions (max idle %s)", pruned, s.maxIdle)
	}
}
