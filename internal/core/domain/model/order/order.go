package order

import (
	"strings"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through Place or RestoreOrder. This ensures all orders are properly validated.
var ErrOrderIsNotConstructed = errs.NewValueIsRequiredError("Order must be created via Place or RestoreOrder")

// Order is the aggregate root for a customer order. It holds the customer
// email and the ordered line sequence, and gates every lifecycle transition
// through its methods.
//
// Order maintains these invariants:
//   - at least one line, every quantity > 0, every unit price >= 0
//   - the total is always derived from the lines, never stored
//   - status changes only through Update/MarkInvoiced/Ship/Cancel
//   - can only be created through Place (or rehydrated via RestoreOrder)
type Order struct {
	id            kernel.UUID
	customerEmail string
	lines         []Line
	status        Status
	createdAt     time.Time

	isConstructed bool
}

// Place creates a new Order with a fresh identity in Placed status.
//
// Fails with a validation error when the customer email is blank, the line
// list is empty, any quantity is not positive, or any unit price is negative.
// Leading and trailing whitespace on the email is trimmed.
func Place(customerEmail string, lines []Line) (*Order, error) {
	customerEmail = strings.TrimSpace(customerEmail)
	if customerEmail == "" {
		return nil, errs.NewValueIsRequiredError("customer email")
	}
	if err := validateLines(lines); err != nil {
		return nil, err
	}

	return &Order{
		id:            kernel.NewUUID(),
		customerEmail: customerEmail,
		lines:         append([]Line(nil), lines...),
		status:        Placed,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}, nil
}

// RestoreOrder rehydrates an Order from persistence without running the
// Place transition. The stored values are still validated.
func RestoreOrder(
	id kernel.UUID,
	customerEmail string,
	lines []Line,
	status Status,
	createdAt time.Time,
) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if err := validateLines(lines); err != nil {
		return nil, err
	}

	return &Order{
		id:            id,
		customerEmail: customerEmail,
		lines:         append([]Line(nil), lines...),
		status:        status,
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the Order instance was properly constructed.
// Returns ErrOrderIsNotConstructed for nil or zero-value instances.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerEmail returns the email the order was placed with.
func (o *Order) CustomerEmail() string {
	return o.customerEmail
}

// Lines returns a copy of the ordered line sequence.
func (o *Order) Lines() []Line {
	return append([]Line(nil), o.lines...)
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the order's creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Total returns the order total, derived as the sum of quantity × unit price
// over all lines.
func (o *Order) Total() decimal.Decimal {
	return linesTotal(o.lines)
}

// Update replaces the order lines wholesale, re-validating the same
// constraints as Place. The status is left unchanged.
//
// Returns a conflict error when the order is Cancelled or Shipped.
func (o *Order) Update(newLines []Line) error {
	if err := o.status.ValidateUpdate(); err != nil {
		return err
	}
	if err := validateLines(newLines); err != nil {
		return err
	}

	o.lines = append([]Line(nil), newLines...)
	return nil
}

// MarkInvoiced records that billing produced an invoice for the order.
// Legal only from Placed; returns a conflict error otherwise.
func (o *Order) MarkInvoiced() error {
	newStatus, err := o.status.MarkInvoiced()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Ship releases the order for shipping. Legal only from Invoiced;
// returns a conflict error otherwise.
func (o *Order) Ship() error {
	newStatus, err := o.status.Ship()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Cancel withdraws the order. Legal from Placed and Invoiced;
// returns a conflict error when already Cancelled or Shipped.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}
