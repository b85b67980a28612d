package commands

import (
	"context"

	"fulfillment/internal/core/domain/events"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/outbox"

	"github.com/shopspring/decimal"
)

// UpdateOrderResponse reports the totals before and after a line replacement.
type UpdateOrderResponse struct {
	OrderID  kernel.UUID
	OldTotal decimal.Decimal
	NewTotal decimal.Decimal
}

// UpdateOrderCommandHandler handles wholesale line replacement on an order.
// The updated aggregate and its OrderUpdated outbox row are persisted in one
// transaction; a conflict or validation error from the aggregate is
// propagated untouched and nothing is written.
type UpdateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateOrderCommandHandler creates a handler for order update operations.
func NewUpdateOrderCommandHandler(uowFactory OrderUoWFactory) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order update command.
func (h *UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) (UpdateOrderResponse, error) {
	if err := cmd.Validate(); err != nil {
		return UpdateOrderResponse{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return UpdateOrderResponse{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	existing, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return UpdateOrderResponse{}, err
	}

	oldTotal := existing.Total()

	if err = existing.Update(cmd.Lines()); err != nil {
		return UpdateOrderResponse{}, err
	}

	newTotal := existing.Total()

	ev := events.NewOrderUpdated(existing.ID().Bytes(), existing.CustomerEmail(), oldTotal, newTotal)
	row, err := outbox.FromDomainEvent(ev)
	if err != nil {
		return UpdateOrderResponse{}, err
	}

	if err = orderRepo.Update(ctx, existing); err != nil {
		return UpdateOrderResponse{}, err
	}

	if err = uow.OutboxRepository().Add(ctx, row); err != nil {
		return UpdateOrderResponse{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return UpdateOrderResponse{}, err
	}

	return UpdateOrderResponse{
		OrderID:  existing.ID(),
		OldTotal: oldTotal,
		NewTotal: newTotal,
	}, nil
}
