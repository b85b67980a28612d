package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrShipOrderCommandIsNotConstructed = errors.New(
	"ShipOrderCommand must be created via NewShipOrderCommand constructor",
)

// ShipOrderCommand represents a request to release an invoiced order for
// delivery. Tracking number and carrier are optional.
type ShipOrderCommand struct { //nolint:recvcheck //using for validation
	orderID        kernel.UUID
	trackingNumber string
	carrier        string

	guard guard.ConstructorGuard
}

// NewShipOrderCommand creates a command to ship an order.
func NewShipOrderCommand(orderID kernel.UUID, trackingNumber, carrier string) (ShipOrderCommand, error) {
	cmd := ShipOrderCommand{
		trackingNumber: trackingNumber,
		carrier:        carrier,
		guard:          guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return ShipOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ShipOrderCommand) Validate() error {
	return c.guard.Validate(ErrShipOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to ship.
func (c ShipOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// TrackingNumber returns the optional carrier tracking number.
func (c ShipOrderCommand) TrackingNumber() string {
	return c.trackingNumber
}

// Carrier returns the optional carrier name.
func (c ShipOrderCommand) Carrier() string {
	return c.carrier
}

func (c *ShipOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
