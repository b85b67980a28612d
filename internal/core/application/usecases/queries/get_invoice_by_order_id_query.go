package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrGetInvoiceByOrderIDQueryIsNotConstructed = errors.New(
	"GetInvoiceByOrderIDQuery must be created via NewGetInvoiceByOrderIDQuery constructor",
)

// GetInvoiceByOrderIDQuery retrieves the invoice billed for a given order.
// An order has at most one invoice.
type GetInvoiceByOrderIDQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetInvoiceByOrderIDQuery creates a query for an order's invoice.
func NewGetInvoiceByOrderIDQuery(orderID kernel.UUID) (GetInvoiceByOrderIDQuery, error) {
	q := GetInvoiceByOrderIDQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := q.setOrderID(orderID); err != nil {
		return GetInvoiceByOrderIDQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetInvoiceByOrderIDQuery) Validate() error {
	return q.guard.Validate(ErrGetInvoiceByOrderIDQueryIsNotConstructed)
}

// OrderID returns the identifier of the invoiced order.
func (q GetInvoiceByOrderIDQuery) OrderID() kernel.UUID {
	return q.orderID
}

func (q *GetInvoiceByOrderIDQuery) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	q.orderID = orderID
	return nil
}
