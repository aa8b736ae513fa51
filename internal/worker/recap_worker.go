// Package worker runs the periodic weekly recap job.
package worker

import (
	"context"
	"fmt"
	"time"

	"noumi/internal/datasource"
	"noumi/internal/log"
	"noumi/internal/recap"
)

// Builder builds a recap for the week containing now.
type Builder interface {
	Build(ctx context.Context, now time.Time) (*recap.WeeklyRecap, error)
}

// Publisher announces a built recap.
type Publisher interface {
	PublishRecap(ctx context.Context, r *recap.WeeklyRecap) error
}

// Invalidator drops cached records so a run sees fresh data.
type Invalidator interface {
	Invalidate(resource string)
}

// RecapWorker builds the weekly recap and publishes it. Without a
// publisher the recap is only logged.
type RecapWorker struct {
	builder     Builder
	publisher   Publisher
	invalidator Invalidator
	now         func() time.Time
	logger      *log.Logger
}

func NewRecapWorker(builder Builder, publisher Publisher, logger *log.Logger) *RecapWorker {
	if logger == nil {
		logger = log.Discard()
	}
	return &RecapWorker{
		builder:   builder,
		publisher: publisher,
		now:       time.Now,
		logger:    logger.WithComponent(log.ComponentWorker),
	}
}

// WithInvalidator makes every run start from uncached records.
func (w *RecapWorker) WithInvalidator(inv Invalidator) *RecapWorker {
	w.invalidator = inv
	return w
}

// RunOnce builds and publishes one recap.
func (w *RecapWorker) RunOnce(ctx context.Context) (*recap.WeeklyRecap, error) {
	if w.invalidator != nil {
		for _, resource := range datasource.Resources {
			w.invalidator.Invalidate(resource)
		}
	}

	r, err := w.builder.Build(ctx, w.now())
	if err != nil {
		return nil, fmt.Errorf("build recap: %w", err)
	}
	for _, warning := range r.Warnings {
		w.logger.WarnContext(ctx, "Recap section skipped", log.FieldRecapID, r.ID, "warning", warning)
	}

	if w.publisher == nil {
		w.logger.InfoContext(ctx, "AMQP not configured, recap not published",
			log.FieldRecapID, r.ID,
			log.FieldWeek, r.WeekLabel)
		return r, nil
	}
	if err := w.publisher.PublishRecap(ctx, r); err != nil {
		return r, fmt.Errorf("publish recap %s: %w", r.ID, err)
	}
	return r, nil
}

// Run executes a recap at startup and then on every interval until ctx is
// done. Failed runs are logged and retried on the next tick.
func (w *RecapWorker) Run(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		return fmt.Errorf("invalid recap interval %v", interval)
	}

	w.logger.InfoContext(ctx, "Recap worker started", "interval", interval)
	w.runLogged(ctx)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.InfoContext(ctx, "Recap worker stopping", "reason", ctx.Err())
			return ctx.Err()
		case <-ticker.C:
			w.runLogged(ctx)
		}
	}
}

func (w *RecapWorker) runLogged(ctx context.Context) {
	start := time.Now()
	if _, err := w.RunOnce(ctx); err != nil {
		w.logger.ErrorContext(ctx, "Recap run failed", log.FieldError, err)
		return
	}
	w.logger.DebugContext(ctx, "Recap run finished", log.FieldDuration, time.Since(start).Milliseconds())
}
