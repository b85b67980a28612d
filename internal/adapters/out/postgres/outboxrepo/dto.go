// Package outboxrepo provides GORM persistence for the outbox log.
package outboxrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/outbox"

	"github.com/google/uuid"
)

// EventDTO represents one outbox row. OccurredAt is indexed because the
// dispatcher always reads unprocessed rows in occurrence order.
type EventDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	OccurredAt  time.Time `gorm:"index"`
	EventType   string
	Payload     string     `gorm:"type:text"`
	ProcessedAt *time.Time `gorm:"index"`
	Attempts    int
}

// TableName overrides GORM's default naming convention.
func (EventDTO) TableName() string {
	return "outbox_events"
}

func fromDomain(event *outbox.Event) EventDTO {
	return EventDTO{
		ID:          event.ID(),
		OccurredAt:  event.OccurredAt(),
		EventType:   event.Type(),
		Payload:     event.Payload(),
		ProcessedAt: event.ProcessedAt(),
		Attempts:    event.Attempts(),
	}
}

func toDomain(dto EventDTO) (*outbox.Event, error) {
	return outbox.RestoreEvent(
		dto.ID,
		dto.OccurredAt,
		dto.EventType,
		dto.Payload,
		dto.ProcessedAt,
		dto.Attempts,
	)
}
