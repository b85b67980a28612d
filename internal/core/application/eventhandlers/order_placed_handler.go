package eventhandlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"fulfillment/internal/core/domain/events"
	"fulfillment/internal/core/domain/model/invoice"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/outbox"
	"fulfillment/internal/pkg/errs"
)

// paymentTermDays is how long after issue an invoice is due.
const paymentTermDays = 14

// OrderPlacedHandler is the billing reaction: when an order is placed it
// creates the invoice, marks the order as invoiced, and records the
// InvoiceCreated event. All three writes share one transaction.
//
// Redelivery is harmless: the existence check on the order's invoice turns a
// duplicate delivery into a logged no-op.
type OrderPlacedHandler struct {
	uowFactory BillingUoWFactory
	logger     *slog.Logger
}

// NewOrderPlacedHandler creates the billing reaction handler.
func NewOrderPlacedHandler(uowFactory BillingUoWFactory, logger *slog.Logger) *OrderPlacedHandler {
	return &OrderPlacedHandler{
		uowFactory: uowFactory,
		logger:     logger,
	}
}

// Handle creates the invoice for a placed order.
func (h *OrderPlacedHandler) Handle(ctx context.Context, payload []byte) error {
	var ev events.OrderPlaced
	if err := json.Unmarshal(payload, &ev); err != nil {
		return fmt.Errorf("unmarshal %s payload: %w", events.TypeOrderPlaced, err)
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

	invoiceRepo := uow.InvoiceRepository()

	exists, err := invoiceRepo.ExistsForOrder(ctx, orderID)
	if err != nil {
		return err
	}
	if exists {
		h.logger.InfoContext(ctx, "invoice already exists, skipping duplicate delivery",
			"orderId", orderID.String())
		return nil
	}

	orderRepo := uow.OrderRepository()
	ord, err := orderRepo.Get(ctx, orderID)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			h.logger.WarnContext(ctx, "order not found, skipping invoice creation",
				"orderId", orderID.String())
			return nil
		}
		return err
	}

	if err = ord.MarkInvoiced(); err != nil {
		if errors.Is(err, errs.ErrConflict) {
			h.logger.WarnContext(ctx, "order can no longer be invoiced, skipping",
				"orderId", orderID.String(),
				"status", ord.Status().String(),
				"reason", err.Error())
			return nil
		}
		return err
	}

	invoiceID := kernel.NewUUID()

	lines := make([]invoice.Line, 0, len(ord.Lines()))
	for _, l := range ord.Lines() {
		lines = append(lines, invoice.Line{
			ProductCode: l.ProductCode,
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice,
		})
	}

	now := time.Now().UTC()
	inv, err := invoice.NewInvoice(
		invoiceID,
		invoiceNumber(invoiceID, now),
		orderID,
		ord.CustomerEmail(),
		invoice.DefaultCurrency,
		now.AddDate(0, 0, paymentTermDays),
		lines,
	)
	if err != nil {
		return err
	}

	followUp := events.NewInvoiceCreated(inv.ID().Bytes(), orderID.Bytes(), inv.Amount())
	row, err := outbox.FromDomainEvent(followUp)
	if err != nil {
		return err
	}

	if err = invoiceRepo.Add(ctx, inv); err != nil {
		return err
	}
	if err = orderRepo.Update(ctx, ord); err != nil {
		return err
	}
	if err = uow.OutboxRepository().Add(ctx, row); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.logger.InfoContext(ctx, "invoice created",
		"orderId", orderID.String(),
		"invoiceId", inv.ID().String(),
		"number", inv.Number(),
		"amount", inv.Amount().String())

	return nil
}

// invoiceNumber renders the human-readable number, e.g. INV-20260831-3F2504E0.
func invoiceNumber(id kernel.UUID, issuedAt time.Time) string {
	return fmt.Sprintf("INV-%s-%s",
		issuedAt.Format("20060102"),
		strings.ToUpper(id.String()[:8]))
}
