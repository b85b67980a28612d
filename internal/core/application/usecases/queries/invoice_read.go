package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/invoice"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// readInvoice fetches one invoice row matching the given WHERE clause and
// hydrates it with its lines. Returns an object-not-found error carrying
// paramName when no row matches.
func readInvoice(
	ctx context.Context,
	db *gorm.DB,
	where string,
	paramName string,
	param kernel.UUID,
) (InvoiceResponse, error) {
	var resp InvoiceResponse

	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			id,
			number,
			order_id,
			billing_email,
			currency,
			status,
			created_at,
			due_date
		FROM invoices
		WHERE `+where+`
	`, param.Bytes()).Rows()
	if err != nil {
		return InvoiceResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return InvoiceResponse{}, err
		}
		return InvoiceResponse{}, errs.NewObjectNotFoundError(paramName, param)
	}

	var id, orderID uuid.UUID
	var status int

	err = rows.Scan(
		&id,
		&resp.Number,
		&orderID,
		&resp.BillingEmail,
		&resp.Currency,
		&status,
		&resp.CreatedAt,
		&resp.DueDate,
	)
	if err != nil {
		return InvoiceResponse{}, err
	}

	invoiceID, idErr := kernel.UUIDFromBytes(id[:])
	if idErr != nil {
		return InvoiceResponse{}, idErr
	}
	resp.ID = invoiceID

	respOrderID, idErr := kernel.UUIDFromBytes(orderID[:])
	if idErr != nil {
		return InvoiceResponse{}, idErr
	}
	resp.OrderID = respOrderID
	resp.Status = invoice.Status(status).String()

	resp.Lines, resp.Amount, err = readInvoiceLines(ctx, db, resp.ID)
	if err != nil {
		return InvoiceResponse{}, err
	}

	return resp, nil
}

func readInvoiceLines(
	ctx context.Context,
	db *gorm.DB,
	invoiceID kernel.UUID,
) ([]LineResponse, decimal.Decimal, error) {
	lines := make([]LineResponse, 0)
	amount := decimal.Zero

	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			product_code,
			quantity,
			unit_price
		FROM invoice_lines
		WHERE invoice_id = ?
		ORDER BY position
	`, invoiceID.Bytes()).Rows()
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
		amount = amount.Add(line.Total)
		lines = append(lines, line)
	}

	if err = rows.Err(); err != nil {
		return nil, decimal.Zero, err
	}

	return lines, amount, nil
}
