package outboxrepo

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/outbox"
	"fulfillment/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormOutboxRepository implements OutboxRepository using GORM.
type GormOutboxRepository struct {
	db *gorm.DB
}

// NewGormOutboxRepository creates a new GORM outbox repository.
func NewGormOutboxRepository(db *gorm.DB) *GormOutboxRepository {
	return &GormOutboxRepository{db: db}
}

// Add appends a new outbox row.
func (r *GormOutboxRepository) Add(ctx context.Context, event *outbox.Event) error {
	if err := event.Validate(); err != nil {
		return err
	}

	dto := fromDomain(event)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetUnprocessed returns up to limit unprocessed rows, oldest first.
func (r *GormOutboxRepository) GetUnprocessed(ctx context.Context, limit int) ([]*outbox.Event, error) {
	if limit <= 0 {
		return nil, errs.NewValueIsInvalidError("limit")
	}

	var dtos []EventDTO
	err := r.db.WithContext(ctx).
		Where("processed_at IS NULL").
		Order("occurred_at ASC").
		Limit(limit).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	events := make([]*outbox.Event, 0, len(dtos))
	for _, dto := range dtos {
		ev, restoreErr := toDomain(dto)
		if restoreErr != nil {
			return nil, restoreErr
		}
		events = append(events, ev)
	}

	return events, nil
}

// IncrementAttempts durably records a dispatch attempt for the row.
func (r *GormOutboxRepository) IncrementAttempts(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Model(&EventDTO{}).
		Where("id = ?", id).
		UpdateColumn("attempts", gorm.Expr("attempts + 1"))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("outbox event", id.String())
	}

	return nil
}

// MarkProcessed sets the row's processed-at timestamp to now.
// Rows already marked are left untouched, so redundant calls are harmless.
func (r *GormOutboxRepository) MarkProcessed(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&EventDTO{}).
		Where("id = ? AND processed_at IS NULL", id).
		UpdateColumn("processed_at", time.Now().UTC()).Error
}
