package commands_test

import (
	"testing"

	"orderdesk/internal/core/application/usecases/commands"
	"orderdesk/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCancelOrderCommand(t *testing.T) {
	policy := commands.DefaultReasonPolicy()

	t.Run("should create command with valid reason and confirmation", func(t *testing.T) {
		id := kernel.NewUUID()

		cmd, err := commands.NewCancelOrderCommand(id, "jdoe", "customer asked to cancel", true, policy)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.True(t, cmd.OrderID().IsEqual(id))
		assert.Equal(t, "customer asked to cancel", cmd.Reason())
	})

	t.Run("should fail with short reason", func(t *testing.T) {
		_, err := commands.NewCancelOrderCommand(kernel.NewUUID(), "jdoe", "too short", true, policy)

		require.ErrorIs(t, err, commands.ErrReasonTooShort)
	})

	t.Run("should fail without confirmation", func(t *testing.T) {
		_, err := commands.NewCancelOrderCommand(
			kernel.NewUUID(), "jdoe", "customer asked to cancel", false, policy)

		require.ErrorIs(t, err, commands.ErrConfirmationRequired)
	})

	t.Run("should report short reason and missing confirmation together", func(t *testing.T) {
		_, err := commands.NewCancelOrderCommand(kernel.NewUUID(), "jdoe", "nope", false, policy)

		require.ErrorIs(t, err, commands.ErrReasonTooShort)
		require.ErrorIs(t, err, commands.ErrConfirmationRequired)
	})

	t.Run("struct literal fails validation", func(t *testing.T) {
		var cmd commands.CancelOrderCommand

		assert.Equal(t, commands.ErrCancelOrderCommandIsNotConstructed, cmd.Validate())
	})
}

func TestNewRestoreOrderCommand(t *testing.T) {
	policy := commands.DefaultReasonPolicy()

	t.Run("should enforce the same reason rules as cancel", func(t *testing.T) {
		_, err := commands.NewRestoreOrderCommand(kernel.NewUUID(), "jdoe", "oops", false, policy)

		require.ErrorIs(t, err, commands.ErrReasonTooShort)
		require.ErrorIs(t, err, commands.ErrConfirmationRequired)
	})

	t.Run("should create command with valid reason and confirmation", func(t *testing.T) {
		cmd, err := commands.NewRestoreOrderCommand(
			kernel.NewUUID(), "jdoe", "cancelled by mistake, reopening", true, policy)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
	})
}
