package order_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLines() []order.Line {
	return []order.Line{
		{ProductCode: "SKU-100", Quantity: 2, UnitPrice: decimal.NewFromFloat(50)},
		{ProductCode: "SKU-200", Quantity: 1, UnitPrice: decimal.NewFromFloat(25)},
	}
}

func TestPlace_Success(t *testing.T) {
	ord, err := order.Place("customer@example.com", testLines())
	require.NoError(t, err)

	assert.NoError(t, ord.ID().Validate())
	assert.Equal(t, "customer@example.com", ord.CustomerEmail())
	assert.Equal(t, order.Placed, ord.Status())
	assert.False(t, ord.CreatedAt().IsZero())
	assert.True(t, ord.Total().Equal(decimal.NewFromFloat(125)), "got %s", ord.Total())
}

func TestPlace_TrimsEmail(t *testing.T) {
	ord, err := order.Place("  customer@example.com  ", testLines())
	require.NoError(t, err)
	assert.Equal(t, "customer@example.com", ord.CustomerEmail())
}

func TestPlace_FreshIdentityPerOrder(t *testing.T) {
	first, err := order.Place("a@example.com", testLines())
	require.NoError(t, err)
	second, err := order.Place("a@example.com", testLines())
	require.NoError(t, err)

	assert.False(t, first.IsEqual(second))
}

func TestPlace_ValidationErrors(t *testing.T) {
	tests := []struct {
		name  string
		email string
		lines []order.Line
	}{
		{"blank email", "   ", testLines()},
		{"no lines", "customer@example.com", nil},
		{"zero quantity", "customer@example.com", []order.Line{
			{ProductCode: "SKU-100", Quantity: 0, UnitPrice: decimal.NewFromFloat(10)},
		}},
		{"negative quantity", "customer@example.com", []order.Line{
			{ProductCode: "SKU-100", Quantity: -1, UnitPrice: decimal.NewFromFloat(10)},
		}},
		{"negative unit price", "customer@example.com", []order.Line{
			{ProductCode: "SKU-100", Quantity: 1, UnitPrice: decimal.NewFromFloat(-0.01)},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := order.Place(tt.email, tt.lines)
			require.Error(t, err)
		})
	}
}

func TestPlace_ZeroUnitPriceIsAllowed(t *testing.T) {
	ord, err := order.Place("customer@example.com", []order.Line{
		{ProductCode: "FREEBIE", Quantity: 3, UnitPrice: decimal.Zero},
	})
	require.NoError(t, err)
	assert.True(t, ord.Total().IsZero())
}

func TestOrder_Total_ExactDecimalArithmetic(t *testing.T) {
	ord, err := order.Place("customer@example.com", []order.Line{
		{ProductCode: "SKU-A", Quantity: 2, UnitPrice: decimal.RequireFromString("99.99")},
		{ProductCode: "SKU-B", Quantity: 1, UnitPrice: decimal.RequireFromString("49.99")},
	})
	require.NoError(t, err)

	assert.Equal(t, "249.97", ord.Total().StringFixed(2))
}

func TestOrder_Update_ReplacesLinesWholesale(t *testing.T) {
	ord, err := order.Place("customer@example.com", testLines())
	require.NoError(t, err)

	newLines := []order.Line{
		{ProductCode: "SKU-300", Quantity: 4, UnitPrice: decimal.NewFromFloat(10)},
	}
	require.NoError(t, ord.Update(newLines))

	assert.Len(t, ord.Lines(), 1)
	assert.Equal(t, "SKU-300", ord.Lines()[0].ProductCode)
	assert.True(t, ord.Total().Equal(decimal.NewFromFloat(40)))
	assert.Equal(t, order.Placed, ord.Status(), "update must not change status")
}

func TestOrder_Update_InvalidLinesLeaveOrderUntouched(t *testing.T) {
	ord, err := order.Place("customer@example.com", testLines())
	require.NoError(t, err)

	err = ord.Update([]order.Line{{ProductCode: "SKU-X", Quantity: 0, UnitPrice: decimal.NewFromFloat(5)}})
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Len(t, ord.Lines(), 2)
}

func TestOrder_Update_TerminalStatusConflicts(t *testing.T) {
	for _, status := range []order.Status{order.Cancelled, order.Shipped} {
		t.Run(status.String(), func(t *testing.T) {
			ord := restoredWithStatus(t, status)
			err := ord.Update(testLines())
			require.ErrorIs(t, err, errs.ErrConflict)
		})
	}
}

func TestOrder_Lifecycle_PlaceInvoiceShip(t *testing.T) {
	ord, err := order.Place("customer@example.com", testLines())
	require.NoError(t, err)

	require.NoError(t, ord.MarkInvoiced())
	assert.Equal(t, order.Invoiced, ord.Status())

	require.NoError(t, ord.Ship())
	assert.Equal(t, order.Shipped, ord.Status())
}

func TestOrder_MarkInvoiced_OnlyFromPlaced(t *testing.T) {
	for _, status := range []order.Status{order.Invoiced, order.Cancelled, order.Shipped} {
		t.Run(status.String(), func(t *testing.T) {
			ord := restoredWithStatus(t, status)
			require.ErrorIs(t, ord.MarkInvoiced(), errs.ErrConflict)
		})
	}
}

func TestOrder_Ship_RequiresInvoiced(t *testing.T) {
	ord := restoredWithStatus(t, order.Placed)
	require.ErrorIs(t, ord.Ship(), errs.ErrConflict)
	assert.Equal(t, order.Placed, ord.Status())
}

func TestOrder_Cancel_FromPlacedAndInvoiced(t *testing.T) {
	for _, status := range []order.Status{order.Placed, order.Invoiced} {
		t.Run(status.String(), func(t *testing.T) {
			ord := restoredWithStatus(t, status)
			require.NoError(t, ord.Cancel())
			assert.Equal(t, order.Cancelled, ord.Status())
		})
	}
}

func TestOrder_Cancel_TerminalStatusConflicts(t *testing.T) {
	for _, status := range []order.Status{order.Cancelled, order.Shipped} {
		t.Run(status.String(), func(t *testing.T) {
			ord := restoredWithStatus(t, status)
			require.ErrorIs(t, ord.Cancel(), errs.ErrConflict)
		})
	}
}

func TestRestoreOrder_Success(t *testing.T) {
	id := kernel.NewUUID()
	createdAt := time.Now().UTC().Add(-time.Hour)

	ord, err := order.RestoreOrder(id, "customer@example.com", testLines(), order.Invoiced, createdAt)
	require.NoError(t, err)

	assert.True(t, ord.ID().IsEqual(id))
	assert.Equal(t, order.Invoiced, ord.Status())
	assert.Equal(t, createdAt, ord.CreatedAt())
}

func TestRestoreOrder_InvalidInput(t *testing.T) {
	_, err := order.RestoreOrder(kernel.UUID{}, "a@example.com", testLines(), order.Placed, time.Now())
	require.Error(t, err)

	_, err = order.RestoreOrder(kernel.NewUUID(), "a@example.com", nil, order.Placed, time.Now())
	require.Error(t, err)

	_, err = order.RestoreOrder(kernel.NewUUID(), "a@example.com", testLines(), order.Status(42), time.Now())
	require.Error(t, err)
}

func TestOrder_Validate_NotConstructed(t *testing.T) {
	var ord *order.Order
	require.Error(t, ord.Validate())
	require.Error(t, (&order.Order{}).Validate())
}

func TestOrder_Lines_ReturnsCopy(t *testing.T) {
	ord, err := order.Place("customer@example.com", testLines())
	require.NoError(t, err)

	lines := ord.Lines()
	lines[0].Quantity = 999

	assert.Equal(t, 2, ord.Lines()[0].Quantity)
}

func restoredWithStatus(t *testing.T, status order.Status) *order.Order {
	t.Helper()

	ord, err := order.RestoreOrder(
		kernel.NewUUID(),
		"customer@example.com",
		testLines(),
		status,
		time.Now().UTC(),
	)
	require.NoError(t, err)
	return ord
}
