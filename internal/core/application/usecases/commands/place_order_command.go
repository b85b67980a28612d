package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrPlaceOrderCommandIsNotConstructed = errors.New(
	"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
)

// PlaceOrderCommand represents a request to place a new customer order.
//
// Example:
//
//	lines := []order.Line{{ProductCode: "PROD-001", Quantity: 2, UnitPrice: decimal.NewFromFloat(50)}}
//	cmd, err := NewPlaceOrderCommand("customer@example.com", lines)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewPlaceOrderCommandHandler(uowFactory)
//	resp, err := handler.Handle(ctx, cmd)
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	customerEmail string
	lines         []order.Line

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to place a new order.
// Rejects a blank customer email and an empty line list up front; the full
// line validation is the order aggregate's responsibility.
func NewPlaceOrderCommand(customerEmail string, lines []order.Line) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerEmail(customerEmail),
		cmd.setLines(lines),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// CustomerEmail returns the email the order is placed with.
func (c PlaceOrderCommand) CustomerEmail() string {
	return c.customerEmail
}

// Lines returns the requested order lines.
func (c PlaceOrderCommand) Lines() []order.Line {
	return c.lines
}

func (c *PlaceOrderCommand) setCustomerEmail(customerEmail string) error {
	if customerEmail == "" {
		return errs.NewValueIsRequiredError("customer email")
	}

	c.customerEmail = customerEmail
	return nil
}

func (c *PlaceOrderCommand) setLines(lines []order.Line) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("at least one order line is required")
	}

	c.lines = lines
	return nil
}
