package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/events"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/outbox"
	"fulfillment/internal/core/domain/model/shipment"
)

// ShipOrderResponse reports the shipment created for the order.
type ShipOrderResponse struct {
	OrderID    kernel.UUID
	ShipmentID kernel.UUID
	Status     order.Status
	ShippedAt  time.Time
}

// ShipOrderCommandHandler handles the release of an invoiced order.
// The shipped aggregate, the new shipment record, and the OrderShipped
// outbox row are persisted in one transaction.
type ShipOrderCommandHandler struct {
	uowFactory ShipUoWFactory
}

// NewShipOrderCommandHandler creates a handler for ship operations.
func NewShipOrderCommandHandler(uowFactory ShipUoWFactory) ShipOrderCommandHandler {
	return ShipOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the ship command.
// A conflict error from the aggregate (not yet invoiced, already shipped,
// cancelled) is propagated untouched and nothing is written.
func (h *ShipOrderCommandHandler) Handle(ctx context.Context, cmd ShipOrderCommand) (ShipOrderResponse, error) {
	if err := cmd.Validate(); err != nil {
		return ShipOrderResponse{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ShipOrderResponse{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	existing, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return ShipOrderResponse{}, err
	}

	if err = existing.Ship(); err != nil {
		return ShipOrderResponse{}, err
	}

	record, err := shipment.NewShipment(existing.ID(), cmd.TrackingNumber(), cmd.Carrier())
	if err != nil {
		return ShipOrderResponse{}, err
	}

	ev := events.NewOrderShipped(existing.ID().Bytes(), record.ID().Bytes(), record.TrackingNumber())
	row, err := outbox.FromDomainEvent(ev)
	if err != nil {
		return ShipOrderResponse{}, err
	}

	if err = orderRepo.Update(ctx, existing); err != nil {
		return ShipOrderResponse{}, err
	}

	if err = uow.ShipmentRepository().Add(ctx, record); err != nil {
		return ShipOrderResponse{}, err
	}

	if err = uow.OutboxRepository().Add(ctx, row); err != nil {
		return ShipOrderResponse{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return ShipOrderResponse{}, err
	}

	return ShipOrderResponse{
		OrderID:    existing.ID(),
		ShipmentID: record.ID(),
		Status:     existing.Status(),
		ShippedAt:  record.ShippedAt(),
	}, nil
}
