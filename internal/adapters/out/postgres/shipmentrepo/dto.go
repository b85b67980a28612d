// Package shipmentrepo provides GORM persistence for shipment records.
package shipmentrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/shipment"

	"github.com/google/uuid"
)

// ShipmentDTO represents the database structure for persisting shipments.
// The unique index on OrderID mirrors the one-shipment-per-order rule.
type ShipmentDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID        uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	TrackingNumber string
	Carrier        string
	ShippedAt      time.Time
}

// TableName overrides GORM's default naming convention.
func (ShipmentDTO) TableName() string {
	return "shipments"
}

func fromDomain(record *shipment.Shipment) ShipmentDTO {
	return ShipmentDTO{
		ID:             record.ID().Bytes(),
		OrderID:        record.OrderID().Bytes(),
		TrackingNumber: record.TrackingNumber(),
		Carrier:        record.Carrier(),
		ShippedAt:      record.ShippedAt(),
	}
}

//nolint:unused // symmetry with the other repo packages, used by tests
func toDomain(dto ShipmentDTO) (*shipment.Shipment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	return shipment.RestoreShipment(id, orderID, dto.TrackingNumber, dto.Carrier, dto.ShippedAt)
}
