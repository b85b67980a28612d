package shipmentrepo

import (
	"context"

	"fulfillment/internal/core/domain/model/shipment"

	"gorm.io/gorm"
)

// GormShipmentRepository implements ShipmentRepository using GORM.
// Shipments are write-once; reads go through the query handlers.
type GormShipmentRepository struct {
	db *gorm.DB
}

// NewGormShipmentRepository creates a new GORM shipment repository.
func NewGormShipmentRepository(db *gorm.DB) *GormShipmentRepository {
	return &GormShipmentRepository{db: db}
}

// Add saves a new shipment record to the database.
func (r *GormShipmentRepository) Add(ctx context.Context, record *shipment.Shipment) error {
	if err := record.Validate(); err != nil {
		return err
	}

	dto := fromDomain(record)
	return r.db.WithContext(ctx).Create(&dto).Error
}
