package sync

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/retailpoint/possync/internal/backoff"
)

//go:generate moq -out sweeper_mock.go . Sweeper

// Sweeper runs one queue sweep. Implemented by Queue.
type Sweeper interface {
	Process(ctx context.Context) (*Report, error)
}

// Scheduler periodically drains the queue. Unproductive sweeps stretch
// the interval exponentially up to the backoff cap; a fully clean sweep
// snaps it back to the base. While paused the timer keeps running but
// sweeps are skipped, so a resume never waits for a fresh interval.
type Scheduler struct {
	sweeper Sweeper
	logger  *slog.Logger
	base    time.Duration
	limit   time.Duration

	paused atomic.Bool
	kick   chan struct{}

	// streak counts consecutive unproductive sweeps, touched only by Run
	streak int
}

// NewScheduler creates a scheduler over the given sweeper
func NewScheduler(sweeper Sweeper, cfg Config, logger *slog.Logger) *Scheduler {
	cfg = cfg.withDefaults()
	return &Scheduler{
		sweeper: sweeper,
		logger:  logger,
		base:    cfg.SweepInterval,
		limit:   cfg.BackoffCap,
		kick:    make(chan struct{}, 1),
	}
}

// Pause suspends sweeping, e.g. while the platform is unreachable
func (s *Scheduler) Pause() {
	if s.paused.CompareAndSwap(false, true) {
		s.logger.Info("background sync paused")
	}
}

// Resume re-enables sweeping and triggers an immediate sweep
func (s *Scheduler) Resume() {
	if s.paused.CompareAndSwap(true, false) {
		s.logger.Info("background sync resumed")
	}
	s.Kick()
}

// Kick requests an immediate sweep without waiting for the interval
func (s *Scheduler) Kick() {
	select {
	case s.kick <- struct{}{}:
	default:
	}
}

// Run sweeps until ctx is cancelled. It blocks; run it on its own
// goroutine.
func (s *Scheduler) Run(ctx context.Context) {
	timer := time.NewTimer(s.interval())
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-s.kick:
			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			s.sweep(ctx)
		case <-timer.C:
			s.sweep(ctx)
		}
		timer.Reset(s.interval())
	}
}

// interval is the current sweep period after decay
func (s *Scheduler) interval() time.Duration {
	return backoff.Delay(s.base, s.limit, s.streak)
}

// sweep runs one Process pass and updates the decay streak
func (s *Scheduler) sweep(ctx context.Context) {
	if s.paused.Load() {
		return
	}

	report, err := s.sweeper.Process(ctx)
	switch {
	case errors.Is(err, ErrSweepInProgress):
		// someone else is draining the queue, leave the streak alone
	case err != nil:
		s.streak++
		s.logger.Error("queue sweep failed",
			"error", err, "next_interval", s.interval())
	case report.Attempted == 0:
		// empty queue, nothing to drain, slow down
		s.streak++
	case report.Failed == 0 && report.Rescheduled == 0:
		s.streak = 0
	default:
		s.streak++
		s.logger.Warn("queue sweep left work behind",
			"rescheduled", report.Rescheduled, "failed", report.Failed,
			"next_interval", s.interval())
	}
}
