package eventhandlers

import (
	"context"

	"fulfillment/internal/core/ports"
)

// Unit of Work interfaces for workflow reactions. Each reaction depends only
// on the repositories it actually touches.
type (
	// BillingUoW manages transactions for reactions that read an order and
	// write its invoice, the order status, and follow-up outbox rows.
	BillingUoW interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error

		OrderRepository() ports.OrderRepository
		InvoiceRepository() ports.InvoiceRepository
		OutboxRepository() ports.OutboxRepository
	}

	// BillingUoWFactory creates new billing unit of work instances.
	BillingUoWFactory interface {
		Create() BillingUoW
	}
)
