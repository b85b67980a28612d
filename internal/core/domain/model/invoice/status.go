package invoice

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Status represents the lifecycle state of an invoice.
// Invoices have a deliberately small state machine: they are Created by the
// billing reaction and can only transition to Cancelled, which is terminal.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Created is the initial status of every invoice. Line replacement is
	// only legal in this status.
	Created

	// Cancelled is a terminal status. A cancelled invoice is never rewritten.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Created:   "Created",
		Cancelled: "Cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Created:   "Created",
		Cancelled: "Cancelled",
	}
}

// String returns the human-readable name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// ValidateUpdateLines checks whether line replacement is legal in the
// current status. Only Created invoices may be rewritten.
func (s Status) ValidateUpdateLines() error {
	if s != Created {
		return errs.NewConflictError(fmt.Sprintf("cannot update invoice in status %s", s))
	}
	return nil
}

// Cancel transitions the status to Cancelled.
func (s Status) Cancel() (Status, error) {
	if s == Cancelled {
		return 0, errs.NewConflictError("invoice already cancelled")
	}
	return Cancelled, nil
}
