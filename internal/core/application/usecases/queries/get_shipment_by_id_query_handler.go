package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetShipmentByIDQueryHandler retrieves shipment read models from the database.
type GetShipmentByIDQueryHandler struct {
	db *gorm.DB
}

// NewGetShipmentByIDQueryHandler creates a handler for shipment lookups.
func NewGetShipmentByIDQueryHandler(db *gorm.DB) GetShipmentByIDQueryHandler {
	return GetShipmentByIDQueryHandler{db: db}
}

// Handle executes the shipment lookup.
func (h GetShipmentByIDQueryHandler) Handle(
	ctx context.Context,
	query GetShipmentByIDQuery,
) (ShipmentResponse, error) {
	if err := query.Validate(); err != nil {
		return ShipmentResponse{}, err
	}

	return readShipment(ctx, h.db, "id = ?", "shipmentId", query.ShipmentID())
}
