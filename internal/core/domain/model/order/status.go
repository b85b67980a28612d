package order

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions so orders follow
// the correct fulfillment workflow.
//
// State transitions:
//
//	Placed ──> Invoiced ──> Shipped
//	   │           │
//	   └───────────┴──> Cancelled
//
// Update does not change status; it is allowed while the order is Placed or
// Invoiced. Cancelled and Shipped are terminal states.
//
// Draft (0) is the zero value and is never reachable through Place; it exists
// so an uninitialized Status is never mistaken for a live order state.
type Status int

const (
	// Draft is the zero value. No order constructed through Place ever
	// carries it; it only guards against uninitialized Status values.
	Draft Status = iota

	// Placed is the initial status of every order created via Place.
	Placed

	// Cancelled is a terminal status: the order was withdrawn before shipping.
	Cancelled

	// Invoiced means billing has produced an invoice for the order.
	Invoiced

	// Shipped is a terminal status: a shipment exists for the order.
	Shipped
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Draft:     "Draft",
		Placed:    "Placed",
		Cancelled: "Cancelled",
		Invoiced:  "Invoiced",
		Shipped:   "Shipped",
	}
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer; safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Validate checks that the Status value is one of the persistable states.
// Draft is accepted because restored rows predating Place validation could
// carry it; values outside the enum range are rejected.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// ValidateUpdate checks whether order lines may be replaced in the current
// status. Updates are rejected once the order is Cancelled or Shipped.
func (s Status) ValidateUpdate() error {
	if s == Cancelled {
		return errs.NewConflictError("cannot update a cancelled order")
	}
	if s == Shipped {
		return errs.NewConflictError("cannot update a shipped order")
	}
	return nil
}

// MarkInvoiced transitions the status to Invoiced.
// The only legal source state is Placed.
func (s Status) MarkInvoiced() (Status, error) {
	if s != Placed {
		return 0, errs.NewConflictError(fmt.Sprintf("cannot invoice order in status %s", s))
	}
	return Invoiced, nil
}

// Ship transitions the status to Shipped.
// The only legal source state is Invoiced; the error message distinguishes
// the already-shipped and cancelled cases from the not-yet-invoiced one.
func (s Status) Ship() (Status, error) {
	if s == Cancelled {
		return 0, errs.NewConflictError("cannot ship a cancelled order")
	}
	if s == Shipped {
		return 0, errs.NewConflictError("order already shipped")
	}
	if s != Invoiced {
		return 0, errs.NewConflictError("order must be invoiced before shipping")
	}
	return Shipped, nil
}

// Cancel transitions the status to Cancelled.
// Legal from Placed and Invoiced; Cancelled and Shipped are terminal.
func (s Status) Cancel() (Status, error) {
	if s == Cancelled {
		return 0, errs.NewConflictError("order already cancelled")
	}
	if s == Shipped {
		return 0, errs.NewConflictError("cannot cancel a shipped order")
	}
	return Cancelled, nil
}
