package commands

import (
	"context"

	"fulfillment/internal/core/domain/events"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/outbox"
)

// CancelOrderResponse reports the order status after cancellation.
type CancelOrderResponse struct {
	OrderID kernel.UUID
	Status  order.Status
}

// CancelOrderCommandHandler handles order cancellation.
// The cancelled aggregate and its OrderCancelled outbox row are persisted in
// one transaction.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(uowFactory OrderUoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order cancellation command.
// A conflict error from the aggregate (already cancelled, already shipped)
// is propagated untouched and nothing is written.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) (CancelOrderResponse, error) {
	if err := cmd.Validate(); err != nil {
		return CancelOrderResponse{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return CancelOrderResponse{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	existing, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return CancelOrderResponse{}, err
	}

	if err = existing.Cancel(); err != nil {
		return CancelOrderResponse{}, err
	}

	ev := events.NewOrderCancelled(existing.ID().Bytes(), cmd.Reason())
	row, err := outbox.FromDomainEvent(ev)
	if err != nil {
		return CancelOrderResponse{}, err
	}

	if err = orderRepo.Update(ctx, existing); err != nil {
		return CancelOrderResponse{}, err
	}

	if err = uow.OutboxRepository().Add(ctx, row); err != nil {
		return CancelOrderResponse{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CancelOrderResponse{}, err
	}

	return CancelOrderResponse{
		OrderID: existing.ID(),
		Status:  existing.Status(),
	}, nil
}
