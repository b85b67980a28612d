package commands

import (
	"context"

	"fulfillment/internal/core/domain/events"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/outbox"

	"github.com/shopspring/decimal"
)

// PlaceOrderResponse is the result of a successfully placed order.
type PlaceOrderResponse struct {
	OrderID kernel.UUID
	Total   decimal.Decimal
}

// PlaceOrderCommandHandler handles the business logic for order placement.
// Persists the new order and its OrderPlaced outbox row in one transaction,
// so the event exists if and only if the order does.
type PlaceOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewPlaceOrderCommandHandler creates a handler for order placement operations.
func NewPlaceOrderCommandHandler(uowFactory OrderUoWFactory) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order placement command.
// A validation failure in the aggregate is propagated untouched and nothing
// is persisted.
func (h *PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (PlaceOrderResponse, error) {
	if err := cmd.Validate(); err != nil {
		return PlaceOrderResponse{}, err
	}

	newOrder, err := order.Place(cmd.CustomerEmail(), cmd.Lines())
	if err != nil {
		return PlaceOrderResponse{}, err
	}

	ev := events.NewOrderPlaced(newOrder.ID().Bytes(), newOrder.CustomerEmail(), newOrder.Total())
	row, err := outbox.FromDomainEvent(ev)
	if err != nil {
		return PlaceOrderResponse{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return PlaceOrderResponse{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return PlaceOrderResponse{}, err
	}

	if err = uow.OutboxRepository().Add(ctx, row); err != nil {
		return PlaceOrderResponse{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return PlaceOrderResponse{}, err
	}

	return PlaceOrderResponse{
		OrderID: newOrder.ID(),
		Total:   newOrder.Total(),
	}, nil
}
