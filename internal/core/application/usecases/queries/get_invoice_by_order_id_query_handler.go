package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetInvoiceByOrderIDQueryHandler resolves the invoice billed for an order.
type GetInvoiceByOrderIDQueryHandler struct {
	db *gorm.DB
}

// NewGetInvoiceByOrderIDQueryHandler creates a handler for order-invoice lookups.
func NewGetInvoiceByOrderIDQueryHandler(db *gorm.DB) GetInvoiceByOrderIDQueryHandler {
	return GetInvoiceByOrderIDQueryHandler{db: db}
}

// Handle executes the lookup. Returns an object-not-found error when the
// order has no invoice yet, which is the case until the billing reaction has
// processed the placement event.
func (h GetInvoiceByOrderIDQueryHandler) Handle(
	ctx context.Context,
	query GetInvoiceByOrderIDQuery,
) (InvoiceResponse, error) {
	if err := query.Validate(); err != nil {
		return InvoiceResponse{}, err
	}

	return readInvoice(ctx, h.db, "order_id = ?", "orderId", query.OrderID())
}
