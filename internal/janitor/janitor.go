// Package janitor periodically drops in-memory state of devices that went quiet.
package janitor

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Evictor drops state untouched for longer than maxIdle and reports how many entries went
type Evictor interface {
	EvictIdle(maxIdle time.Duration) int
}

// Target is an Evictor with a name for logging
type Target struct {
	Name    string
	Evictor Evictor
}

// Janitor runs a sweep over its targets on a cron schedule
type Janitor struct {
	cron    *cron.Cron
	targets []Target
	maxIdle time.Duration
	logger  *zap.Logger
}

// New creates a janitor. "schedule" is a standard cron expression or a descriptor such as "@every 10m".
func New(schedule string, maxIdle time.Duration, logger *zap.Logger, targets ...Target) (*Janitor, error) {
	if _, err := cron.ParseStandard(schedule); err != nil {
		return nil, fmt.Errorf("invalid janitor schedule: %w", err)
	}

	j := &Janitor{
		cron:    cron.New(),
		targets: targets,
		maxIdle: maxIdle,
		logger:  logger,
	}
	if _, err := j.cron.AddFunc(schedule, func() { j.Sweep() }); err != nil {
		return nil, fmt.Errorf("failed to schedule janitor: %w", err)
	}

	return j, nil
}

// Start runs the schedule in the background
func (j *Janitor) Start() {
	j.cron.Start()
}

// Stop halts the schedule and waits for a running sweep until ctx is done
func (j *Janitor) Stop(ctx context.Context) {
	select {
	case <-j.cron.Stop().Done():
	case <-ctx.Done():
		j.logger.Warn("janitor sweep still running at shutdown")
	}
}

// Sweep evicts idle state from every target and returns the total evicted
func (j *Janitor) Sweep() int {
	total := 0
	for _, target := range j.targets {
		evicted := target.Evictor.EvictIdle(j.maxIdle)
		if evicted > 0 {
			j.logger.Info("evicted idle devices", zap.String("target", target.Name), zap.Int("count", evicted))
		}
		total += evicted
	}
	return total
}
