package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrderByIDQueryHandler retrieves order read models from the database.
// Uses direct SQL queries for read performance in the CQRS pattern.
type GetOrderByIDQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderByIDQueryHandler creates a handler for order lookups.
// Requires a GORM database connection for query execution.
func NewGetOrderByIDQueryHandler(db *gorm.DB) GetOrderByIDQueryHandler {
	return GetOrderByIDQueryHandler{db: db}
}

// Handle executes the order lookup.
// The total is recomputed from the lines rather than stored.
func (h GetOrderByIDQueryHandler) Handle(
	ctx context.Context,
	query GetOrderByIDQuery,
) (GetOrderByIDQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderByIDQueryResponse{}, err
	}

	var resp GetOrderByIDQueryResponse

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_email,
			status,
			created_at
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return GetOrderByIDQueryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return GetOrderByIDQueryResponse{}, err
		}
		return GetOrderByIDQueryResponse{}, errs.NewObjectNotFoundError("orderId", query.OrderID())
	}

	var id uuid.UUID
	var status int

	err = rows.Scan(
		&id,
		&resp.CustomerEmail,
		&status,
		&resp.CreatedAt,
	)
	if err != nil {
		return GetOrderByIDQueryResponse{}, err
	}

	orderID, idErr := kernel.UUIDFromBytes(id[:])
	if idErr != nil {
		return GetOrderByIDQueryResponse{}, idErr
	}
	resp.ID = orderID
	resp.Status = order.Status(status).String()

	resp.Lines, resp.Total, err = h.fetchLines(ctx, query.OrderID())
	if err != nil {
		return GetOrderByIDQueryResponse{}, err
	}

	return resp, nil
}

func (h GetOrderByIDQueryHandler) fetchLines(
	ctx context.Context,
	orderID kernel.UUID,
) ([]LineResponse, decimal.Decimal, error) {
	lines := make([]LineResponse, 0)
	total := decimal.Zero

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			product_code,
			quantity,
			unit_price
		FROM order_lines
		WHERE order_id = ?
		ORDER BY position
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, decimal.Zero, err
	}
	defer rows.Close()

	for rows.Next() {
		var line LineResponse

		err = rows.Scan(
			&line.ProductCode,
			&line.Quantity,
			&line.UnitPrice,
		)
		if err != nil {
			return nil, decimal.Zero, err
		}

		line.Total = line.UnitPrice.Mul(decimal.NewFromInt(int64(line.Quantity)))
		total = total.Add(line.Total)
		lines = append(lines, line)
	}

	if err = rows.Err(); err != nil {
		return nil, decimal.Zero, err
	}

	return lines, total, nil
}
