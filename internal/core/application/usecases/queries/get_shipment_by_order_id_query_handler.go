package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetShipmentByOrderIDQueryHandler resolves the shipment created for an order.
type GetShipmentByOrderIDQueryHandler struct {
	db *gorm.DB
}

// NewGetShipmentByOrderIDQueryHandler creates a handler for order-shipment lookups.
func NewGetShipmentByOrderIDQueryHandler(db *gorm.DB) GetShipmentByOrderIDQueryHandler {
	return GetShipmentByOrderIDQueryHandler{db: db}
}

// Handle executes the lookup. Returns an object-not-found error until the
// order has been shipped.
func (h GetShipmentByOrderIDQueryHandler) Handle(
	ctx context.Context,
	query GetShipmentByOrderIDQuery,
) (ShipmentResponse, error) {
	if err := query.Validate(); err != nil {
		return ShipmentResponse{}, err
	}

	return readShipment(ctx, h.db, "order_id = ?", "orderId", query.OrderID())
}
