package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/invoice"
	"fulfillment/internal/core/domain/model/kernel"
)

// InvoiceRepository defines the persistence contract for invoice aggregates.
// At most one invoice exists per order; ExistsForOrder is the idempotency
// guard the billing reaction relies on.
type InvoiceRepository interface {
	// Add persists a new invoice aggregate to storage.
	Add(ctx context.Context, aggregate *invoice.Invoice) error

	// Update persists changes to an existing invoice aggregate,
	// replacing its line sequence wholesale.
	Update(ctx context.Context, aggregate *invoice.Invoice) error

	// GetByOrderID retrieves the invoice billing the given order.
	// Returns an errs.ObjectNotFoundError when no invoice exists.
	GetByOrderID(ctx context.Context, orderID kernel.UUID) (*invoice.Invoice, error)

	// ExistsForOrder reports whether an invoice already exists for the order.
	ExistsForOrder(ctx context.Context, orderID kernel.UUID) (bool, error)
}
