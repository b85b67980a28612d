package eventhandlers

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"fulfillment/internal/core/domain/events"
)

// InvoiceCreatedHandler acknowledges a new invoice. Shipping stays a manual
// step for now, so the reaction only records the fact.
//
// TODO: create the shipment here automatically once a carrier integration
// provides tracking numbers.
type InvoiceCreatedHandler struct {
	logger *slog.Logger
}

// NewInvoiceCreatedHandler creates the invoice acknowledgement handler.
func NewInvoiceCreatedHandler(logger *slog.Logger) *InvoiceCreatedHandler {
	return &InvoiceCreatedHandler{logger: logger}
}

// Handle logs the invoice so the workflow trail is complete.
func (h *InvoiceCreatedHandler) Handle(ctx context.Context, payload []byte) error {
	var ev events.InvoiceCreated
	if err := json.Unmarshal(payload, &ev); err != nil {
		return fmt.Errorf("unmarshal %s payload: %w", events.TypeInvoiceCreated, err)
	}

	h.logger.InfoContext(ctx, "invoice created, awaiting shipment release",
		"invoiceId", ev.InvoiceID.String(),
		"orderId", ev.OrderID.String(),
		"amount", ev.Amount.String())

	return nil
}
