package jobs

import (
	"context"
	"log/slog"

	"fulfillment/internal/core/application/eventhandlers"
	"fulfillment/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// DefaultBatchSize is the number of outbox rows read per dispatch cycle.
const DefaultBatchSize = 50

// OutboxDispatcherJob polls the outbox every two seconds and routes
// unprocessed events to their registered reactions.
//
// Delivery is at-least-once: the attempts counter is persisted before the
// dispatch itself, so a crash mid-dispatch leaves a trace and the row is
// retried on the next cycle. A failed row stays unprocessed and does not
// block the rest of its batch.
type OutboxDispatcherJob struct {
	outbox    ports.OutboxRepository
	registry  *eventhandlers.Registry
	batchSize int
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewOutboxDispatcherJob creates the dispatcher job.
// A non-positive batchSize falls back to DefaultBatchSize.
func NewOutboxDispatcherJob(
	outbox ports.OutboxRepository,
	registry *eventhandlers.Registry,
	batchSize int,
	logger *slog.Logger,
) *OutboxDispatcherJob {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}

	return &OutboxDispatcherJob{
		outbox:    outbox,
		registry:  registry,
		batchSize: batchSize,
		cron: cron.New(
			cron.WithSeconds(),
			cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
		),
		logger: logger.With("component", "outbox_dispatcher_job"),
	}
}

// Start begins the dispatch loop, running a cycle every two seconds.
// The cadence is schedule-based, not delay-based: ticks fire on wall-clock
// two-second boundaries, so the idle gap after a slow cycle can be shorter
// than two seconds. SkipIfStillRunning guarantees at most one active cycle:
// a slow batch makes the next tick a no-op instead of a concurrent reader.
func (j *OutboxDispatcherJob) Start() error {
	_, err := j.cron.AddFunc("*/2 * * * * *", func() {
		ctx := context.Background()

		if err := j.RunOnce(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Outbox dispatch cycle failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Outbox dispatcher job started (running every 2 seconds)")
	return nil
}

// Stop stops scheduling new cycles. A cycle already in flight finishes its
// current batch; its rows are never abandoned half-dispatched.
func (j *OutboxDispatcherJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Outbox dispatcher job stopped")
}

// RunOnce executes a single dispatch cycle: read one batch of unprocessed
// rows oldest-first, then per row record the attempt, dispatch, and mark
// processed on success. Failures are logged and the loop moves on, so the
// affected row is simply retried on a later cycle.
func (j *OutboxDispatcherJob) RunOnce(ctx context.Context) error {
	events, err := j.outbox.GetUnprocessed(ctx, j.batchSize)
	if err != nil {
		return err
	}

	for _, ev := range events {
		if err = j.outbox.IncrementAttempts(ctx, ev.ID()); err != nil {
			j.logger.ErrorContext(ctx, "Failed to record dispatch attempt",
				"eventId", ev.ID().String(),
				"eventType", ev.Type(),
				"error", err)
			continue
		}

		if err = j.registry.Dispatch(ctx, ev.Type(), []byte(ev.Payload())); err != nil {
			j.logger.ErrorContext(ctx, "Event dispatch failed",
				"eventId", ev.ID().String(),
				"eventType", ev.Type(),
				"attempts", ev.Attempts()+1,
				"error", err)
			continue
		}

		if err = j.outbox.MarkProcessed(ctx, ev.ID()); err != nil {
			j.logger.ErrorContext(ctx, "Failed to mark event processed",
				"eventId", ev.ID().String(),
				"eventType", ev.Type(),
				"error", err)
		}
	}

	return nil
}
