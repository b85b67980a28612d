// Package events defines the domain events exchanged through the outbox.
// Each event carries its own identity and occurrence timestamp and is
// serialized to JSON for the outbox payload. The type tag of an event is its
// type name; tags are the keys of the dispatch registry.
package events

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Type tags persisted in the outbox `type` column.
const (
	TypeOrderPlaced    = "OrderPlaced"
	TypeInvoiceCreated = "InvoiceCreated"
	TypeOrderUpdated   = "OrderUpdated"
	TypeOrderCancelled = "OrderCancelled"
	TypeOrderShipped   = "OrderShipped"
)

// DomainEvent is implemented by every event in this package. The outbox uses
// it to build a row from an event without knowing its concrete type.
type DomainEvent interface {
	// EventType returns the type tag the event is dispatched under.
	EventType() string

	// Identity returns the unique identifier of this event occurrence.
	Identity() uuid.UUID

	// OccurredOn returns the timestamp the event occurred at.
	OccurredOn() time.Time
}

// OrderPlaced is emitted when a new order passes placement validation.
type OrderPlaced struct {
	EventID       uuid.UUID       `json:"eventId"`
	OccurredAt    time.Time       `json:"occurredAt"`
	OrderID       uuid.UUID       `json:"orderId"`
	CustomerEmail string          `json:"customerEmail"`
	Total         decimal.Decimal `json:"total"`
}

// NewOrderPlaced creates an OrderPlaced event with a fresh identity.
func NewOrderPlaced(orderID uuid.UUID, customerEmail string, total decimal.Decimal) OrderPlaced {
	return OrderPlaced{
		EventID:       uuid.New(),
		OccurredAt:    time.Now().UTC(),
		OrderID:       orderID,
		CustomerEmail: customerEmail,
		Total:         total,
	}
}

func (e OrderPlaced) EventType() string     { return TypeOrderPlaced }
func (e OrderPlaced) Identity() uuid.UUID   { return e.EventID }
func (e OrderPlaced) OccurredOn() time.Time { return e.OccurredAt }

// InvoiceCreated is emitted when billing produces an invoice for an order.
type InvoiceCreated struct {
	EventID    uuid.UUID       `json:"eventId"`
	OccurredAt time.Time       `json:"occurredAt"`
	InvoiceID  uuid.UUID       `json:"invoiceId"`
	OrderID    uuid.UUID       `json:"orderId"`
	Amount     decimal.Decimal `json:"amount"`
}

// NewInvoiceCreated creates an InvoiceCreated event with a fresh identity.
func NewInvoiceCreated(invoiceID, orderID uuid.UUID, amount decimal.Decimal) InvoiceCreated {
	return InvoiceCreated{
		EventID:    uuid.New(),
		OccurredAt: time.Now().UTC(),
		InvoiceID:  invoiceID,
		OrderID:    orderID,
		Amount:     amount,
	}
}

func (e InvoiceCreated) EventType() string     { return TypeInvoiceCreated }
func (e InvoiceCreated) Identity() uuid.UUID   { return e.EventID }
func (e InvoiceCreated) OccurredOn() time.Time { return e.OccurredAt }

// OrderUpdated is emitted when the lines of an order are replaced.
type OrderUpdated struct {
	EventID       uuid.UUID       `json:"eventId"`
	OccurredAt    time.Time       `json:"occurredAt"`
	OrderID       uuid.UUID       `json:"orderId"`
	CustomerEmail string          `json:"customerEmail"`
	OldTotal      decimal.Decimal `json:"oldTotal"`
	NewTotal      decimal.Decimal `json:"newTotal"`
}

// NewOrderUpdated creates an OrderUpdated event with a fresh identity.
func NewOrderUpdated(orderID uuid.UUID, customerEmail string, oldTotal, newTotal decimal.Decimal) OrderUpdated {
	return OrderUpdated{
		EventID:       uuid.New(),
		OccurredAt:    time.Now().UTC(),
		OrderID:       orderID,
		CustomerEmail: customerEmail,
		OldTotal:      oldTotal,
		NewTotal:      newTotal,
	}
}

func (e OrderUpdated) EventType() string     { return TypeOrderUpdated }
func (e OrderUpdated) Identity() uuid.UUID   { return e.EventID }
func (e OrderUpdated) OccurredOn() time.Time { return e.OccurredAt }

// OrderCancelled is emitted when an order is withdrawn.
type OrderCancelled struct {
	EventID    uuid.UUID `json:"eventId"`
	OccurredAt time.Time `json:"occurredAt"`
	OrderID    uuid.UUID `json:"orderId"`
	Reason     string    `json:"reason"`
}

// NewOrderCancelled creates an OrderCancelled event with a fresh identity.
func NewOrderCancelled(orderID uuid.UUID, reason string) OrderCancelled {
	return OrderCancelled{
		EventID:    uuid.New(),
		OccurredAt: time.Now().UTC(),
		OrderID:    orderID,
		Reason:     reason,
	}
}

func (e OrderCancelled) EventType() string     { return TypeOrderCancelled }
func (e OrderCancelled) Identity() uuid.UUID   { return e.EventID }
func (e OrderCancelled) OccurredOn() time.Time { return e.OccurredAt }

// OrderShipped is emitted when a shipment is created for an order.
type OrderShipped struct {
	EventID        uuid.UUID `json:"eventId"`
	OccurredAt     time.Time `json:"occurredAt"`
	OrderID        uuid.UUID `json:"orderId"`
	ShipmentID     uuid.UUID `json:"shipmentId"`
	TrackingNumber string    `json:"trackingNumber,omitempty"`
}

// NewOrderShipped creates an OrderShipped event with a fresh identity.
func NewOrderShipped(orderID, shipmentID uuid.UUID, trackingNumber string) OrderShipped {
	return OrderShipped{
		EventID:        uuid.New(),
		OccurredAt:     time.Now().UTC(),
		OrderID:        orderID,
		ShipmentID:     shipmentID,
		TrackingNumber: trackingNumber,
	}
}

func (e OrderShipped) EventType() string     { return TypeOrderShipped }
func (e OrderShipped) Identity() uuid.UUID   { return e.EventID }
func (e OrderShipped) OccurredOn() time.Time { return e.OccurredAt }
