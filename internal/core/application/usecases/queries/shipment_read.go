package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

func readShipment(
	ctx context.Context,
	db *gorm.DB,
	where string,
	paramName string,
	param kernel.UUID,
) (ShipmentResponse, error) {
	var resp ShipmentResponse

	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			tracking_number,
			carrier,
			shipped_at
		FROM shipments
		WHERE `+where+`
	`, param.Bytes()).Rows()
	if err != nil {
		return ShipmentResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return ShipmentResponse{}, err
		}
		return ShipmentResponse{}, errs.NewObjectNotFoundError(paramName, param)
	}

	var id, orderID uuid.UUID

	err = rows.Scan(
		&id,
		&orderID,
		&resp.TrackingNumber,
		&resp.Carrier,
		&resp.ShippedAt,
	)
	if err != nil {
		return ShipmentResponse{}, err
	}

	shipmentID, idErr := kernel.UUIDFromBytes(id[:])
	if idErr != nil {
		return ShipmentResponse{}, idErr
	}
	resp.ID = shipmentID

	respOrderID, idErr := kernel.UUIDFromBytes(orderID[:])
	if idErr != nil {
		return ShipmentResponse{}, idErr
	}
	resp.OrderID = respOrderID

	return resp, nil
}
