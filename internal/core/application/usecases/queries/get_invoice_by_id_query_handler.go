package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetInvoiceByIDQueryHandler retrieves invoice read models from the database.
type GetInvoiceByIDQueryHandler struct {
	db *gorm.DB
}

// NewGetInvoiceByIDQueryHandler creates a handler for invoice lookups.
func NewGetInvoiceByIDQueryHandler(db *gorm.DB) GetInvoiceByIDQueryHandler {
	return GetInvoiceByIDQueryHandler{db: db}
}

// Handle executes the invoice lookup.
// The amount is recomputed from the lines rather than stored.
func (h GetInvoiceByIDQueryHandler) Handle(
	ctx context.Context,
	query GetInvoiceByIDQuery,
) (InvoiceResponse, error) {
	if err := query.Validate(); err != nil {
		return InvoiceResponse{}, err
	}

	return readInvoice(ctx, h.db, "id = ?", "invoiceId", query.InvoiceID())
}
