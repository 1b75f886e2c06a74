package commands_test

import (
	"testing"

	"orderdesk/internal/core/application/usecases/commands"
	"orderdesk/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOpenOrderCommand(t *testing.T) {
	t.Run("should create command with valid parameters", func(t *testing.T) {
		id := kernel.NewUUID()

		cmd, err := commands.NewOpenOrderCommand(id, "jdoe")

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.True(t, cmd.OrderID().IsEqual(id))
		assert.Equal(t, "jdoe", cmd.Actor())
	})

	t.Run("should fail with zero order ID", func(t *testing.T) {
		var zero kernel.UUID

		_, err := commands.NewOpenOrderCommand(zero, "jdoe")

		require.Error(t, err)
	})

	t.Run("should fail with empty actor", func(t *testing.T) {
		_, err := commands.NewOpenOrderCommand(kernel.NewUUID(), "")

		require.ErrorIs(t, err, commands.ErrActorIsRequired)
	})

	t.Run("struct literal fails validation", func(t *testing.T) {
		var cmd commands.OpenOrderCommand

		assert.Equal(t, commands.ErrOpenOrderCommandIsNotConstructed, cmd.Validate())
	})
}
