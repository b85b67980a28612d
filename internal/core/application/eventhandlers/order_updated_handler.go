package eventhandlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"fulfillment/internal/core/domain/events"
	"fulfillment/internal/core/domain/model/invoice"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// OrderUpdatedHandler resynchronizes an invoice after its order's lines were
// replaced. The invoice lines are rewritten wholesale from the current order
// state, which also makes redelivery harmless.
//
// The reaction is skipped with a warning when the invoice does not exist yet
// or is no longer in Created status.
type OrderUpdatedHandler struct {
	uowFactory BillingUoWFactory
	logger     *slog.Logger
}

// NewOrderUpdatedHandler creates the invoice resync reaction handler.
func NewOrderUpdatedHandler(uowFactory BillingUoWFactory, logger *slog.Logger) *OrderUpdatedHandler {
	return &OrderUpdatedHandler{
		uowFactory: uowFactory,
		logger:     logger,
	}
}

// Handle rewrites the invoice lines from the order's current lines.
func (h *OrderUpdatedHandler) Handle(ctx context.Context, payload []byte) error {
	var ev events.OrderUpdated
	if err := json.Unmarshal(payload, &ev); err != nil {
		return fmt.Errorf("unmarshal %s payload: %w", events.TypeOrderUpdated, err)
	}

	orderID, err := kernel.UUIDFromBytes(ev.OrderID[:])
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	ord, err := orderRepo.Get(ctx, orderID)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			h.logger.WarnContext(ctx, "order not found, skipping invoice resync",
				"orderId", orderID.String())
			return nil
		}
		return err
	}

	invoiceRepo := uow.InvoiceRepository()
	inv, err := invoiceRepo.GetByOrderID(ctx, orderID)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			h.logger.WarnContext(ctx, "no invoice to resync yet",
				"orderId", orderID.String())
			return nil
		}
		return err
	}

	lines := make([]invoice.Line, 0, len(ord.Lines()))
	for _, l := range ord.Lines() {
		lines = append(lines, invoice.Line{
			ProductCode: l.ProductCode,
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice,
		})
	}

	if err = inv.UpdateLines(lines); err != nil {
		if errors.Is(err, errs.ErrConflict) {
			h.logger.WarnContext(ctx, "invoice no longer accepts line updates, skipping resync",
				"orderId", orderID.String(),
				"invoiceId", inv.ID().String(),
				"status", inv.Status().String())
			return nil
		}
		return err
	}

	if err = invoiceRepo.Update(ctx, inv); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.logger.InfoContext(ctx, "invoice lines resynced",
		"orderId", orderID.String(),
		"invoiceId", inv.ID().String(),
		"amount", inv.Amount().String())

	return nil
}
