package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrGetShipmentByOrderIDQueryIsNotConstructed = errors.New(
	"GetShipmentByOrderIDQuery must be created via NewGetShipmentByOrderIDQuery constructor",
)

// GetShipmentByOrderIDQuery retrieves the shipment created for a given order.
type GetShipmentByOrderIDQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetShipmentByOrderIDQuery creates a query for an order's shipment.
func NewGetShipmentByOrderIDQuery(orderID kernel.UUID) (GetShipmentByOrderIDQuery, error) {
	q := GetShipmentByOrderIDQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := q.setOrderID(orderID); err != nil {
		return GetShipmentByOrderIDQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetShipmentByOrderIDQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentByOrderIDQueryIsNotConstructed)
}

// OrderID returns the identifier of the shipped order.
func (q GetShipmentByOrderIDQuery) OrderID() kernel.UUID {
	return q.orderID
}

func (q *GetShipmentByOrderIDQuery) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	q.orderID = orderID
	return nil
}
