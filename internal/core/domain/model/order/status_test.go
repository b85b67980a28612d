package order_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "Draft", order.Draft.String())
	assert.Equal(t, "Placed", order.Placed.String())
	assert.Equal(t, "Cancelled", order.Cancelled.String())
	assert.Equal(t, "Invoiced", order.Invoiced.String())
	assert.Equal(t, "Shipped", order.Shipped.String())
	assert.Equal(t, "Unknown", order.Status(42).String())
}

func TestStatus_Validate(t *testing.T) {
	for _, s := range []order.Status{order.Draft, order.Placed, order.Cancelled, order.Invoiced, order.Shipped} {
		require.NoError(t, s.Validate())
	}
	require.ErrorIs(t, order.Status(42).Validate(), errs.ErrValueIsInvalid)
}

func TestStatus_Ship_ErrorMessages(t *testing.T) {
	_, err := order.Cancelled.Ship()
	require.ErrorContains(t, err, "cannot ship a cancelled order")

	_, err = order.Shipped.Ship()
	require.ErrorContains(t, err, "order already shipped")

	_, err = order.Placed.Ship()
	require.ErrorContains(t, err, "order must be invoiced before shipping")
}

func TestStatus_Cancel_ErrorMessages(t *testing.T) {
	_, err := order.Cancelled.Cancel()
	require.ErrorContains(t, err, "order already cancelled")

	_, err = order.Shipped.Cancel()
	require.ErrorContains(t, err, "cannot cancel a shipped order")
}
