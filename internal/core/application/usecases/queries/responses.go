package queries

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// LineResponse represents a single order or invoice line in a read model.
type LineResponse struct {
	ProductCode string
	Quantity    int
	UnitPrice   decimal.Decimal
	Total       decimal.Decimal
}

// InvoiceResponse represents invoice information for read queries.
// Shared by the by-ID and by-order lookups.
type InvoiceResponse struct {
	ID           kernel.UUID
	Number       string
	OrderID      kernel.UUID
	BillingEmail string
	Currency     string
	Status       string
	Amount       decimal.Decimal
	CreatedAt    time.Time
	DueDate      time.Time
	Lines        []LineResponse
}

// ShipmentResponse represents shipment information for read queries.
type ShipmentResponse struct {
	ID             kernel.UUID
	OrderID        kernel.UUID
	TrackingNumber string
	Carrier        string
	ShippedAt      time.Time
}
