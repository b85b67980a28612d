package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/outbox"

	"github.com/google/uuid"
)

// OutboxRepository defines the persistence contract for the outbox log.
// Rows are append-only; the only permitted mutations are incrementing the
// attempts counter and setting the processed-at timestamp.
type OutboxRepository interface {
	// Add appends a new outbox row. When obtained through a unit of work it
	// participates in the same transaction as the aggregate writes, making
	// aggregate mutation and event append one atomic unit.
	Add(ctx context.Context, event *outbox.Event) error

	// GetUnprocessed returns up to limit rows with no processed-at timestamp,
	// ordered by occurred-at ascending (oldest first).
	GetUnprocessed(ctx context.Context, limit int) ([]*outbox.Event, error)

	// IncrementAttempts durably records a dispatch attempt for the row.
	// Called before the dispatch itself so a crash mid-dispatch still leaves
	// a trace that an attempt happened.
	IncrementAttempts(ctx context.Context, id uuid.UUID) error

	// MarkProcessed sets the row's processed-at timestamp to now.
	// A no-op if the timestamp is already set.
	MarkProcessed(ctx context.Context, id uuid.UUID) error
}
