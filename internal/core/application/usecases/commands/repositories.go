// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. Every command that both changes an aggregate and must notify
// the rest of the system persists the aggregate mutation and the outbox row
// as one atomic unit: both happen durably or neither does.
package commands

import (
	"context"

	"fulfillment/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler depends only on the repositories it actually touches.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// ShipmentRepoFactory provides access to the shipment repository within a transaction.
	ShipmentRepoFactory interface {
		ShipmentRepository() ports.ShipmentRepository
	}

	// OutboxRepoFactory provides access to the outbox repository within a transaction.
	OutboxRepoFactory interface {
		OutboxRepository() ports.OutboxRepository
	}

	// OrderUoW manages transactions for commands that touch one order and
	// append one outbox row (Place, Update, Cancel).
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		OutboxRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// ShipUoW manages transactions for the Ship command, which additionally
	// creates a shipment record.
	ShipUoW interface {
		TxManager
		OrderRepoFactory
		ShipmentRepoFactory
		OutboxRepoFactory
	}

	// ShipUoWFactory creates new ship unit of work instances.
	ShipUoWFactory interface {
		Create() ShipUoW
	}
)
