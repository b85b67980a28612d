package commands_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCancelOrderCommand_Success(t *testing.T) {
	id := kernel.NewUUID()
	cmd, err := commands.NewCancelOrderCommand(id, "changed my mind")
	require.NoError(t, err)
	assert.True(t, cmd.OrderID().IsEqual(id))
	assert.Equal(t, "changed my mind", cmd.Reason())
}

func TestNewCancelOrderCommand_BlankReasonGetsDefault(t *testing.T) {
	cmd, err := commands.NewCancelOrderCommand(kernel.NewUUID(), "   ")
	require.NoError(t, err)
	assert.Equal(t, "cancelled_by_customer", cmd.Reason())
}

func TestNewCancelOrderCommand_InvalidID(t *testing.T) {
	_, err := commands.NewCancelOrderCommand(kernel.UUID{}, "reason")
	require.Error(t, err)
}
