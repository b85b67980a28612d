// Package invoicerepo provides GORM persistence for invoice aggregates.
package invoicerepo

import (
	"time"

	"fulfillment/internal/core/domain/model/invoice"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InvoiceDTO represents the database structure for persisting invoice
// aggregates. The unique index on OrderID enforces the one-invoice-per-order
// rule at the storage level, backing the idempotency check of the billing
// reaction.
type InvoiceDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Number       string    `gorm:"uniqueIndex"`
	OrderID      uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	BillingEmail string
	Currency     string
	Status       int
	CreatedAt    time.Time
	DueDate      time.Time
	Lines        []LineDTO `gorm:"foreignKey:InvoiceID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default naming convention.
func (InvoiceDTO) TableName() string {
	return "invoices"
}

// LineDTO represents a single billing line row.
type LineDTO struct {
	InvoiceID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Position    int       `gorm:"primaryKey"`
	ProductCode string
	Quantity    int
	UnitPrice   decimal.Decimal `gorm:"type:numeric(14,2)"`
}

// TableName overrides GORM's default naming convention.
func (LineDTO) TableName() string {
	return "invoice_lines"
}

func fromDomain(aggregate *invoice.Invoice) InvoiceDTO {
	domainLines := aggregate.Lines()
	lines := make([]LineDTO, 0, len(domainLines))
	for i, l := range domainLines {
		lines = append(lines, LineDTO{
			InvoiceID:   aggregate.ID().Bytes(),
			Position:    i,
			ProductCode: l.ProductCode,
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice,
		})
	}

	return InvoiceDTO{
		ID:           aggregate.ID().Bytes(),
		Number:       aggregate.Number(),
		OrderID:      aggregate.OrderID().Bytes(),
		BillingEmail: aggregate.BillingEmail(),
		Currency:     aggregate.Currency(),
		Status:       int(aggregate.Status()),
		CreatedAt:    aggregate.CreatedAt(),
		DueDate:      aggregate.DueDate(),
		Lines:        lines,
	}
}

func toDomain(dto InvoiceDTO) (*invoice.Invoice, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	lines := make([]invoice.Line, 0, len(dto.Lines))
	for _, l := range dto.Lines {
		lines = append(lines, invoice.Line{
			ProductCode: l.ProductCode,
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice,
		})
	}

	return invoice.RestoreInvoice(
		id,
		dto.Number,
		orderID,
		dto.BillingEmail,
		dto.Currency,
		dto.CreatedAt,
		dto.DueDate,
		invoice.Status(dto.Status),
		lines,
	)
}
