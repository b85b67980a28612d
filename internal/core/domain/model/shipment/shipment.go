// Package shipment provides the Shipment record created when an order is
// released for delivery. Shipments carry no state machine: one is created
// per order by the Ship command and never mutated afterwards.
package shipment

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// ErrShipmentIsNotConstructed is returned when a Shipment instance was not
// created through NewShipment or RestoreShipment.
var ErrShipmentIsNotConstructed = errs.NewValueIsRequiredError("Shipment must be created via NewShipment or RestoreShipment")

// Shipment records the release of a single order for delivery.
// Tracking number and carrier are optional; an empty string means the value
// was not supplied.
type Shipment struct {
	id             kernel.UUID
	orderID        kernel.UUID
	trackingNumber string
	carrier        string
	shippedAt      time.Time

	isConstructed bool
}

// NewShipment creates a shipment for an order with a fresh identity and the
// current timestamp.
func NewShipment(orderID kernel.UUID, trackingNumber, carrier string) (*Shipment, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	return &Shipment{
		id:             kernel.NewUUID(),
		orderID:        orderID,
		trackingNumber: trackingNumber,
		carrier:        carrier,
		shippedAt:      time.Now().UTC(),
		isConstructed:  true,
	}, nil
}

// RestoreShipment rehydrates a Shipment from persistence.
func RestoreShipment(
	id kernel.UUID,
	orderID kernel.UUID,
	trackingNumber, carrier string,
	shippedAt time.Time,
) (*Shipment, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	return &Shipment{
		id:             id,
		orderID:        orderID,
		trackingNumber: trackingNumber,
		carrier:        carrier,
		shippedAt:      shippedAt,
		isConstructed:  true,
	}, nil
}

// Validate ensures the Shipment instance was properly constructed.
func (s *Shipment) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrShipmentIsNotConstructed
	}
	return nil
}

// ID returns the shipment's unique identifier.
func (s *Shipment) ID() kernel.UUID {
	return s.id
}

// OrderID returns the identifier of the shipped order.
func (s *Shipment) OrderID() kernel.UUID {
	return s.orderID
}

// TrackingNumber returns the carrier tracking number, if supplied.
func (s *Shipment) TrackingNumber() string {
	return s.trackingNumber
}

// Carrier returns the carrier name, if supplied.
func (s *Shipment) Carrier() string {
	return s.carrier
}

// ShippedAt returns the timestamp the shipment was created.
func (s *Shipment) ShippedAt() time.Time {
	return s.shippedAt
}
