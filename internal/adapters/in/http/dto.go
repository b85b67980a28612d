package http

import (
	"time"

	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// ErrorResponse is the uniform error body for all endpoints.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// LineRequest is one submitted order line.
type LineRequest struct {
	ProductCode string          `json:"productCode"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
}

// PlaceOrderRequest is the body of POST /orders.
type PlaceOrderRequest struct {
	CustomerEmail string        `json:"customerEmail"`
	Lines         []LineRequest `json:"lines"`
}

// UpdateOrderRequest is the body of PUT /orders/:orderId.
// The submitted lines replace the order's lines wholesale.
type UpdateOrderRequest struct {
	Lines []LineRequest `json:"lines"`
}

// CancelOrderRequest is the body of POST /orders/:orderId/cancel.
type CancelOrderRequest struct {
	Reason string `json:"reason"`
}

// ShipOrderRequest is the body of POST /orders/:orderId/ship.
type ShipOrderRequest struct {
	TrackingNumber string `json:"trackingNumber"`
	Carrier        string `json:"carrier"`
}

// PlaceOrderResponse is the body returned by POST /orders.
type PlaceOrderResponse struct {
	OrderID string          `json:"orderId"`
	Status  string          `json:"status"`
	Total   decimal.Decimal `json:"total"`
}

// UpdateOrderResponse is the body returned by PUT /orders/:orderId.
type UpdateOrderResponse struct {
	OrderID  string          `json:"orderId"`
	OldTotal decimal.Decimal `json:"oldTotal"`
	NewTotal decimal.Decimal `json:"newTotal"`
}

// CancelOrderResponse is the body returned by POST /orders/:orderId/cancel.
type CancelOrderResponse struct {
	OrderID string `json:"orderId"`
	Status  string `json:"status"`
}

// ShipOrderResponse is the body returned by POST /orders/:orderId/ship.
type ShipOrderResponse struct {
	OrderID    string    `json:"orderId"`
	ShipmentID string    `json:"shipmentId"`
	Status     string    `json:"status"`
	ShippedAt  time.Time `json:"shippedAt"`
}

// LineResponse is one order or invoice line in a read model body.
type LineResponse struct {
	ProductCode string          `json:"productCode"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Total       decimal.Decimal `json:"total"`
}

// OrderResponse is the body returned by GET /orders/:orderId.
type OrderResponse struct {
	ID            string          `json:"id"`
	CustomerEmail string          `json:"customerEmail"`
	Status        string          `json:"status"`
	Total         decimal.Decimal `json:"total"`
	CreatedAt     time.Time       `json:"createdAt"`
	Lines         []LineResponse  `json:"lines"`
}

// InvoiceResponse is the body returned by the invoice read endpoints.
type InvoiceResponse struct {
	ID           string          `json:"id"`
	Number       string          `json:"number"`
	OrderID      string          `json:"orderId"`
	BillingEmail string          `json:"billingEmail"`
	Currency     string          `json:"currency"`
	Status       string          `json:"status"`
	Amount       decimal.Decimal `json:"amount"`
	CreatedAt    time.Time       `json:"createdAt"`
	DueDate      time.Time       `json:"dueDate"`
	Lines        []LineResponse  `json:"lines"`
}

// ShipmentResponse is the body returned by the shipment read endpoints.
type ShipmentResponse struct {
	ID             string    `json:"id"`
	OrderID        string    `json:"orderId"`
	TrackingNumber string    `json:"trackingNumber,omitempty"`
	Carrier        string    `json:"carrier,omitempty"`
	ShippedAt      time.Time `json:"shippedAt"`
}

func toDomainLines(reqLines []LineRequest) []order.Line {
	lines := make([]order.Line, 0, len(reqLines))
	for _, l := range reqLines {
		lines = append(lines, order.Line{
			ProductCode: l.ProductCode,
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice,
		})
	}
	return lines
}

func toLineResponses(lines []queries.LineResponse) []LineResponse {
	out := make([]LineResponse, 0, len(lines))
	for _, l := range lines {
		out = append(out, LineResponse{
			ProductCode: l.ProductCode,
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice,
			Total:       l.Total,
		})
	}
	return out
}

func toInvoiceResponse(inv queries.InvoiceResponse) InvoiceResponse {
	return InvoiceResponse{
		ID:           inv.ID.String(),
		Number:       inv.Number,
		OrderID:      inv.OrderID.String(),
		BillingEmail: inv.BillingEmail,
		Currency:     inv.Currency,
		Status:       inv.Status,
		Amount:       inv.Amount,
		CreatedAt:    inv.CreatedAt,
		DueDate:      inv.DueDate,
		Lines:        toLineResponses(inv.Lines),
	}
}

func toShipmentResponse(sh queries.ShipmentResponse) ShipmentResponse {
	return ShipmentResponse{
		ID:             sh.ID.String(),
		OrderID:        sh.OrderID.String(),
		TrackingNumber: sh.TrackingNumber,
		Carrier:        sh.Carrier,
		ShippedAt:      sh.ShippedAt,
	}
}
