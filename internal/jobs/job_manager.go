package jobs

import (
	"fmt"
	"log/slog"

	"fulfillment/internal/core/application/eventhandlers"
	"fulfillment/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	outboxDispatcherJob *OutboxDispatcherJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	outbox ports.OutboxRepository,
	registry *eventhandlers.Registry,
	batchSize int,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		outboxDispatcherJob: NewOutboxDispatcherJob(outbox, registry, batchSize, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.outboxDispatcherJob.Start(); err != nil {
		return fmt.Errorf("failed to start outbox dispatcher job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.outboxDispatcherJob.Stop()
}
