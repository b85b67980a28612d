package eventhandlers

import (
	"context"
	"log/slog"
)

// AuditHandler records an event in the application log without taking any
// further action. Used for terminal workflow events (cancellation, shipping)
// that downstream systems consume but this service only audits.
type AuditHandler struct {
	eventType string
	logger    *slog.Logger
}

// NewAuditHandler creates a log-only handler for the given event type.
func NewAuditHandler(eventType string, logger *slog.Logger) *AuditHandler {
	return &AuditHandler{
		eventType: eventType,
		logger:    logger,
	}
}

// Handle logs the raw payload at info level.
func (h *AuditHandler) Handle(ctx context.Context, payload []byte) error {
	h.logger.InfoContext(ctx, "workflow event recorded",
		"eventType", h.eventType,
		"payload", string(payload))

	return nil
}
