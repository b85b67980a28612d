package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/shipment"
)

// ShipmentRepository defines the persistence contract for shipment records.
// Shipments are created once and never mutated, so Add is the only write.
type ShipmentRepository interface {
	// Add persists a new shipment record to storage.
	Add(ctx context.Context, record *shipment.Shipment) error
}
