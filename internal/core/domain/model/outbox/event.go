// Package outbox provides the durable event row persisted alongside
// aggregate mutations. A row is append-only: after insertion the only
// permitted mutations are incrementing its attempts counter and setting its
// processed-at timestamp, both performed through the outbox repository.
package outbox

import (
	"encoding/json"
	"time"

	"fulfillment/internal/core/domain/events"
	"fulfillment/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrEventIsNotConstructed is returned when an Event instance was not created
// through NewEvent, FromDomainEvent, or RestoreEvent.
var ErrEventIsNotConstructed = errs.NewValueIsRequiredError("outbox Event must be created via NewEvent, FromDomainEvent, or RestoreEvent")

// Event is a single outbox row: a serialized domain event waiting to be
// dispatched. The row shares the domain event's identity and occurrence
// timestamp; it carries no foreign key into the aggregate tables and
// outlives the aggregates it describes.
type Event struct {
	id          uuid.UUID
	occurredAt  time.Time
	eventType   string
	payload     string
	processedAt *time.Time
	attempts    int

	isConstructed bool
}

// NewEvent creates an unprocessed outbox row with zero attempts.
func NewEvent(id uuid.UUID, occurredAt time.Time, eventType, payload string) (*Event, error) {
	if id == uuid.Nil {
		return nil, errs.NewValueIsRequiredError("outbox event id")
	}
	if eventType == "" {
		return nil, errs.NewValueIsRequiredError("outbox event type")
	}
	if payload == "" {
		return nil, errs.NewValueIsRequiredError("outbox event payload")
	}

	return &Event{
		id:            id,
		occurredAt:    occurredAt,
		eventType:     eventType,
		payload:       payload,
		isConstructed: true,
	}, nil
}

// FromDomainEvent serializes a domain event into an outbox row carrying the
// event's own identity, occurrence timestamp, and type tag.
func FromDomainEvent(ev events.DomainEvent) (*Event, error) {
	payload, err := json.Marshal(ev)
	if err != nil {
		return nil, err
	}

	return NewEvent(ev.Identity(), ev.OccurredOn(), ev.EventType(), string(payload))
}

// RestoreEvent rehydrates an outbox row from persistence.
func RestoreEvent(
	id uuid.UUID,
	occurredAt time.Time,
	eventType, payload string,
	processedAt *time.Time,
	attempts int,
) (*Event, error) {
	ev, err := NewEvent(id, occurredAt, eventType, payload)
	if err != nil {
		return nil, err
	}

	ev.processedAt = processedAt
	ev.attempts = attempts
	return ev, nil
}

// Validate ensures the Event instance was properly constructed.
func (e *Event) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrEventIsNotConstructed
	}
	return nil
}

// ID returns the row identifier, shared with the domain event it carries.
func (e *Event) ID() uuid.UUID {
	return e.id
}

// OccurredAt returns the occurrence timestamp of the carried event.
// Unprocessed rows are dispatched in ascending OccurredAt order.
func (e *Event) OccurredAt() time.Time {
	return e.occurredAt
}

// Type returns the type tag used to resolve the reaction for this row.
func (e *Event) Type() string {
	return e.eventType
}

// Payload returns the serialized domain event.
func (e *Event) Payload() string {
	return e.payload
}

// ProcessedAt returns the processing timestamp, or nil while unprocessed.
func (e *Event) ProcessedAt() *time.Time {
	return e.processedAt
}

// Attempts returns how many dispatch attempts have been recorded for the row.
func (e *Event) Attempts() int {
	return e.attempts
}
