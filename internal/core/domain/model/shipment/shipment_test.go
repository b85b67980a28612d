package shipment_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/shipment"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewShipment_Success(t *testing.T) {
	orderID := kernel.NewUUID()

	s, err := shipment.NewShipment(orderID, "TRK-123", "dhl")
	require.NoError(t, err)

	assert.NoError(t, s.ID().Validate())
	assert.True(t, s.OrderID().IsEqual(orderID))
	assert.Equal(t, "TRK-123", s.TrackingNumber())
	assert.Equal(t, "dhl", s.Carrier())
	assert.False(t, s.ShippedAt().IsZero())
}

func TestNewShipment_TrackingAndCarrierAreOptional(t *testing.T) {
	s, err := shipment.NewShipment(kernel.NewUUID(), "", "")
	require.NoError(t, err)
	assert.Empty(t, s.TrackingNumber())
	assert.Empty(t, s.Carrier())
}

func TestNewShipment_RequiresOrderID(t *testing.T) {
	_, err := shipment.NewShipment(kernel.UUID{}, "TRK-123", "dhl")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestRestoreShipment_Success(t *testing.T) {
	id := kernel.NewUUID()
	orderID := kernel.NewUUID()
	shippedAt := time.Now().UTC().Add(-time.Hour)

	s, err := shipment.RestoreShipment(id, orderID, "TRK-123", "dhl", shippedAt)
	require.NoError(t, err)

	assert.True(t, s.ID().IsEqual(id))
	assert.Equal(t, shippedAt, s.ShippedAt())
}

func TestShipment_Validate_NotConstructed(t *testing.T) {
	var s *shipment.Shipment
	require.Error(t, s.Validate())
	require.Error(t, (&shipment.Shipment{}).Validate())
}
