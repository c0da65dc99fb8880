package services

import (
	"context"
	"errors"
	"log/slog"
	"time"
)

// Scheduler runs the sync routine once an hour, at minute 0, for the
// lifetime of the process. Failures are logged and left for the next tick;
// there is no catch-up for missed runs.
type Scheduler struct {
	syncer *Syncer
	logger *slog.Logger
}

func NewScheduler(syncer *Syncer, logger *slog.Logger) *Scheduler {
	return &Scheduler{syncer: syncer, logger: logger}
}

// Start launches the hourly loop in its own goroutine. It stops when ctx
// is cancelled.
func (s *Scheduler) Start(ctx context.Context) {
	go s.run(ctx)
}

func (s *Scheduler) run(ctx context.Context) {
	// Wait out the partial hour so ticks land on minute 0.
	first := time.NewTimer(untilNextHour(time.Now()))
	defer first.Stop()

	select {
	case <-ctx.Done():
		return
	case <-first.C:
	}
	s.tick(ctx)

	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	count, err := s.syncer.Sync(ctx)
	switch {
	case errors.Is(err, ErrNoNews):
		s.logger.Info("scheduled sync: no news found")
	case err != nil:
		s.logger.Error("scheduled sync failed", "error", err)
	default:
		s.logger.Info("scheduled sync complete", "count", count)
	}
}

func untilNextHour(now time.Time) time.Duration {
	return now.Truncate(time.Hour).Add(time.Hour).Sub(now)
}
