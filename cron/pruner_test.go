package cron

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type fakePruner struct {
	calls   int
	at      time.Time
	changed int
	err     error
}

func (f *fakePruner) PrunePastAlterations(ctx context.Context, at time.Time) (int, error) {
	f.calls++
	f.at = at
	if _, ok := ctx.Deadline(); !ok {
		return 0, errors.New("expected a deadline")
	}
	return f.changed, f.err
}

func TestRunPrune(t *testing.T) {
	at := time.Date(2016, 7, 25, 3, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		pruner  *fakePruner
		message string
	}{
		{"success", &fakePruner{changed: 4}, "Alteration pruning finished"},
		{"failure", &fakePruner{err: errors.New("mongo down")}, "Alteration pruning failed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zap.InfoLevel)
			runPrune(context.Background(), tt.pruner, zap.New(core), at)

			if tt.pruner.calls != 1 || !tt.pruner.at.Equal(at) {
				t.Fatalf("expected one call at %v, got %d at %v", at, tt.pruner.calls, tt.pruner.at)
			}
			if logs.FilterMessage(tt.message).Len() != 1 {
				t.Fatalf("expected log %q, got %v", tt.message, logs.All())
			}
		})
	}
}

func TestStartAlterationPruner(t *testing.T) {
	c, err := StartAlterationPruner("0 3 * * *", &fakePruner{}, zap.NewNop())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	defer c.Stop()
	if len(c.Entries()) != 1 {
		t.Fatalf("expected one scheduled entry, got %d", len(c.Entries()))
	}

	if _, err := StartAlterationPruner("every now and then", &fakePruner{}, zap.NewNop()); err == nil {
		t.Fatalf("expected an error for an invalid schedule")
	}
}
