package commands_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/require"
)

func TestNewUpdateOrderCommand_Success(t *testing.T) {
	id := kernel.NewUUID()
	cmd, err := commands.NewUpdateOrderCommand(id, testLines())
	require.NoError(t, err)
	require.True(t, cmd.OrderID().IsEqual(id))
	require.Len(t, cmd.Lines(), 2)
}

func TestNewUpdateOrderCommand_InvalidID(t *testing.T) {
	_, err := commands.NewUpdateOrderCommand(kernel.UUID{}, testLines())
	require.Error(t, err)
}

func TestNewUpdateOrderCommand_NoLines(t *testing.T) {
	_, err := commands.NewUpdateOrderCommand(kernel.NewUUID(), []order.Line{})
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}
