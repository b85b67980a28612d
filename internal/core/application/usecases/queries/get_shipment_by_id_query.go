package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrGetShipmentByIDQueryIsNotConstructed = errors.New(
	"GetShipmentByIDQuery must be created via NewGetShipmentByIDQuery constructor",
)

// GetShipmentByIDQuery retrieves a single shipment record.
type GetShipmentByIDQuery struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetShipmentByIDQuery creates a query for a single shipment lookup.
func NewGetShipmentByIDQuery(shipmentID kernel.UUID) (GetShipmentByIDQuery, error) {
	q := GetShipmentByIDQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := q.setShipmentID(shipmentID); err != nil {
		return GetShipmentByIDQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetShipmentByIDQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentByIDQueryIsNotConstructed)
}

// ShipmentID returns the identifier of the shipment to fetch.
func (q GetShipmentByIDQuery) ShipmentID() kernel.UUID {
	return q.shipmentID
}

func (q *GetShipmentByIDQuery) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}

	q.shipmentID = shipmentID
	return nil
}
