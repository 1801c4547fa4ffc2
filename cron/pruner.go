package cron

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const pruneTimeout = 2 * time.Minute

// AlterationPruner is the part of the venue service the nightly job needs.
type AlterationPruner interface {
	PrunePastAlterations(ctx context.Context, at time.Time) (int, error)
}

// StartAlterationPruner schedules pruning of past alterations on the given
// cron expression and starts the scheduler. Stop the returned cron on shutdown.
func StartAlterationPruner(schedule string, pruner AlterationPruner, logger *zap.Logger) (*cron.Cron, error) {
	c := cron.New()
	if _, err := c.AddFunc(schedule, func() {
		runPrune(context.Background(), pruner, logger, time.Now())
	}); err != nil {
		return nil, fmt.Errorf("invalid prune schedule %q: %w", schedule, err)
	}
	c.Start()
	logger.Info("Alteration pruner scheduled", zap.String("schedule", schedule))
	return c, nil
}

func runPrune(ctx context.Context, pruner AlterationPruner, logger *zap.Logger, at time.Time) {
	ctx, cancel := context.WithTimeout(ctx, pruneTimeout)
	defer cancel()

	changed, err := pruner.PrunePastAlterations(ctx, at)
	if err != nil {
		logger.Error("Alteration pruning failed", zap.Int("venuesPruned", changed), zap.Error(err))
		return
	}
	logger.Info("Alteration pruning finished", zap.Int("venuesPruned", changed))
}
