// Package jobs provides scheduled background tasks for the fulfillment system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. OutboxDispatcherJob - Runs every two seconds to route unprocessed outbox
// events to their registered workflow reactions.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(outboxRepo, registry, jobs.DefaultBatchSize, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failing event is logged and left unprocessed; it is retried on later
// cycles without blocking other rows in its batch. A failing cycle is logged
// and the schedule simply fires again.
package jobs
