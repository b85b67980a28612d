package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrGetInvoiceByIDQueryIsNotConstructed = errors.New(
	"GetInvoiceByIDQuery must be created via NewGetInvoiceByIDQuery constructor",
)

// GetInvoiceByIDQuery retrieves a single invoice with its lines.
type GetInvoiceByIDQuery struct { //nolint:recvcheck //using for validation
	invoiceID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetInvoiceByIDQuery creates a query for a single invoice lookup.
func NewGetInvoiceByIDQuery(invoiceID kernel.UUID) (GetInvoiceByIDQuery, error) {
	q := GetInvoiceByIDQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := q.setInvoiceID(invoiceID); err != nil {
		return GetInvoiceByIDQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetInvoiceByIDQuery) Validate() error {
	return q.guard.Validate(ErrGetInvoiceByIDQueryIsNotConstructed)
}

// InvoiceID returns the identifier of the invoice to fetch.
func (q GetInvoiceByIDQuery) InvoiceID() kernel.UUID {
	return q.invoiceID
}

func (q *GetInvoiceByIDQuery) setInvoiceID(invoiceID kernel.UUID) error {
	if err := invoiceID.Validate(); err != nil {
		return err
	}

	q.invoiceID = invoiceID
	return nil
}
