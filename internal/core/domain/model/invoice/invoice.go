package invoice

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// DefaultCurrency is the currency invoices are issued in.
const DefaultCurrency = "RON"

// ErrInvoiceIsNotConstructed is returned when an Invoice instance was not
// created through NewInvoice or RestoreInvoice.
var ErrInvoiceIsNotConstructed = errs.NewValueIsRequiredError("Invoice must be created via NewInvoice or RestoreInvoice")

// Line is a single billing line mirroring an order line.
type Line struct {
	ProductCode string
	Quantity    int
	UnitPrice   decimal.Decimal
}

// Total returns the line total: Quantity × UnitPrice.
func (l Line) Total() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Invoice is the aggregate root for billing a single order. Exactly one
// invoice ever exists per order; it is created by the billing reaction to
// OrderPlaced and its lines are resynchronized wholesale on order updates
// while the invoice is still in Created status.
//
// The invoice amount is always derived from the lines, the same way the
// order total is.
type Invoice struct {
	id           kernel.UUID
	number       string
	orderID      kernel.UUID
	billingEmail string
	currency     string
	createdAt    time.Time
	dueDate      time.Time
	status       Status
	lines        []Line

	isConstructed bool
}

// NewInvoice creates an invoice in Created status.
// Identity, number, and order reference are validated; the line sequence is
// taken as-is because it mirrors an already-validated order.
func NewInvoice(
	id kernel.UUID,
	number string,
	orderID kernel.UUID,
	billingEmail string,
	currency string,
	dueDate time.Time,
	lines []Line,
) (*Invoice, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if number == "" {
		return nil, errs.NewValueIsRequiredError("invoice number")
	}
	if err := orderID.Validate(); err != nil {
		return nil, err
	}
	if currency == "" {
		currency = DefaultCurrency
	}

	return &Invoice{
		id:            id,
		number:        number,
		orderID:       orderID,
		billingEmail:  billingEmail,
		currency:      currency,
		createdAt:     time.Now().UTC(),
		dueDate:       dueDate,
		status:        Created,
		lines:         append([]Line(nil), lines...),
		isConstructed: true,
	}, nil
}

// RestoreInvoice rehydrates an Invoice from persistence.
func RestoreInvoice(
	id kernel.UUID,
	number string,
	orderID kernel.UUID,
	billingEmail string,
	currency string,
	createdAt time.Time,
	dueDate time.Time,
	status Status,
	lines []Line,
) (*Invoice, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := orderID.Validate(); err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}

	return &Invoice{
		id:            id,
		number:        number,
		orderID:       orderID,
		billingEmail:  billingEmail,
		currency:      currency,
		createdAt:     createdAt,
		dueDate:       dueDate,
		status:        status,
		lines:         append([]Line(nil), lines...),
		isConstructed: true,
	}, nil
}

// Validate ensures the Invoice instance was properly constructed.
func (i *Invoice) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrInvoiceIsNotConstructed
	}
	return nil
}

// ID returns the invoice's unique identifier.
func (i *Invoice) ID() kernel.UUID {
	return i.id
}

// Number returns the human-readable invoice number.
func (i *Invoice) Number() string {
	return i.number
}

// OrderID returns the identifier of the order this invoice bills.
func (i *Invoice) OrderID() kernel.UUID {
	return i.orderID
}

// BillingEmail returns the email the invoice is addressed to.
func (i *Invoice) BillingEmail() string {
	return i.billingEmail
}

// Currency returns the invoice currency.
func (i *Invoice) Currency() string {
	return i.currency
}

// CreatedAt returns the invoice creation timestamp.
func (i *Invoice) CreatedAt() time.Time {
	return i.createdAt
}

// DueDate returns the payment due date.
func (i *Invoice) DueDate() time.Time {
	return i.dueDate
}

// Status returns the current status of the invoice.
func (i *Invoice) Status() Status {
	return i.status
}

// Lines returns a copy of the billing line sequence.
func (i *Invoice) Lines() []Line {
	return append([]Line(nil), i.lines...)
}

// Amount returns the invoice amount, derived as the sum of quantity × unit
// price over all lines.
func (i *Invoice) Amount() decimal.Decimal {
	amount := decimal.Zero
	for _, l := range i.lines {
		amount = amount.Add(l.Total())
	}
	return amount
}

// UpdateLines replaces the billing lines wholesale. Legal only while the
// invoice is in Created status; a cancelled invoice is never silently
// rewritten.
func (i *Invoice) UpdateLines(newLines []Line) error {
	if err := i.status.ValidateUpdateLines(); err != nil {
		return err
	}

	i.lines = append([]Line(nil), newLines...)
	return nil
}

// Cancel transitions the invoice to Cancelled.
// Returns a conflict error when already Cancelled.
func (i *Invoice) Cancel() error {
	newStatus, err := i.status.Cancel()
	if err != nil {
		return err
	}

	i.status = newStatus
	return nil
}
