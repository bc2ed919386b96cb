// Package scheduler drives the day-change engine on a clock.
// Dev stage ticks on a fixed interval so a local session sees days pass;
// prod stage fires once at local midnight in the configured timezone.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/example/poochyard/internal/config"
	"github.com/example/poochyard/internal/ports/primary"
)

// Scheduler runs day changes until its context is cancelled.
type Scheduler struct {
	lifecycle primary.LifecycleService
	stage     string
	interval  time.Duration
	location  *time.Location
	logger    *slog.Logger
}

// New creates a Scheduler from the loaded configuration.
func New(lifecycle primary.LifecycleService, cfg *config.Config, logger *slog.Logger) (*Scheduler, error) {
	location, err := cfg.Location()
	if err != nil {
		return nil, err
	}
	interval, err := cfg.TickInterval()
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Scheduler{
		lifecycle: lifecycle,
		stage:     cfg.Stage,
		interval:  interval,
		location:  location,
		logger:    logger,
	}, nil
}

// Run blocks, firing day changes until ctx is cancelled. A failed run is
// logged and the loop keeps going; the next day retries against the same
// state because pregnancies and vitals only move on success.
func (s *Scheduler) Run(ctx context.Context) error {
	for {
		now := time.Now().In(s.location)
		timer := time.NewTimer(s.waitFor(now))

		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case fired := <-timer.C:
			seed := DaySeed(fired.In(s.location))
			if _, err := s.lifecycle.RunDayChange(ctx, seed); err != nil {
				s.logger.Error("day change failed", "error", err)
			}
		}
	}
}

func (s *Scheduler) waitFor(now time.Time) time.Duration {
	if s.stage == config.StageProd {
		return NextMidnight(now).Sub(now)
	}
	return s.interval
}

// NextMidnight returns the first midnight strictly after t, in t's
// location. time.Date normalizes day+1 across month and year ends.
func NextMidnight(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day+1, 0, 0, 0, 0, t.Location())
}

// DaySeed derives the engine seed from the calendar day, so re-running a
// day that crashed midway rolls the same outcomes.
func DaySeed(t time.Time) int64 {
	year, month, day := t.Date()
	return int64(year)*10000 + int64(month)*100 + int64(day)
}
