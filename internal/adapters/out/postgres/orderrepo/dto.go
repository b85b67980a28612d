// Package orderrepo provides GORM persistence for order aggregates, handling
// the conversion between domain entities and database rows.
package orderrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Lines live in their own table; Position preserves the line sequence the
// customer submitted.
type OrderDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerEmail string
	Status        int `gorm:"index"`
	CreatedAt     time.Time
	Lines         []LineDTO `gorm:"foreignKey:OrderID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default naming convention.
func (OrderDTO) TableName() string {
	return "orders"
}

// LineDTO represents a single order line row.
type LineDTO struct {
	OrderID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	Position    int       `gorm:"primaryKey"`
	ProductCode string
	Quantity    int
	UnitPrice   decimal.Decimal `gorm:"type:numeric(14,2)"`
}

// TableName overrides GORM's default naming convention.
func (LineDTO) TableName() string {
	return "order_lines"
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	domainLines := aggregate.Lines()
	lines := make([]LineDTO, 0, len(domainLines))
	for i, l := range domainLines {
		lines = append(lines, LineDTO{
			OrderID:     aggregate.ID().Bytes(),
			Position:    i,
			ProductCode: l.ProductCode,
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice,
		})
	}

	return OrderDTO{
		ID:            aggregate.ID().Bytes(),
		CustomerEmail: aggregate.CustomerEmail(),
		Status:        int(aggregate.Status()),
		CreatedAt:     aggregate.CreatedAt(),
		Lines:         lines,
	}
}

// toDomain converts a database DTO back to an order aggregate via RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	lines := make([]order.Line, 0, len(dto.Lines))
	for _, l := range dto.Lines {
		lines = append(lines, order.Line{
			ProductCode: l.ProductCode,
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice,
		})
	}

	return order.RestoreOrder(id, dto.CustomerEmail, lines, order.Status(dto.Status), dto.CreatedAt)
}
