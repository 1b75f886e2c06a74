package commands_test

import (
	"strings"
	"testing"

	"orderdesk/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReasonPolicy(t *testing.T) {
	t.Run("should create policy with positive minimum", func(t *testing.T) {
		policy, err := commands.NewReasonPolicy(5)

		require.NoError(t, err)
		assert.Equal(t, 5, policy.MinLength())
	})

	t.Run("should fail with non-positive minimum", func(t *testing.T) {
		_, err := commands.NewReasonPolicy(0)

		require.Error(t, err)
	})

	t.Run("default policy uses the standard minimum", func(t *testing.T) {
		assert.Equal(t, commands.DefaultMinReasonLength, commands.DefaultReasonPolicy().MinLength())
	})
}

func TestReasonPolicy_Check(t *testing.T) {
	policy := commands.DefaultReasonPolicy()

	t.Run("should accept reason at the boundary", func(t *testing.T) {
		assert.NoError(t, policy.Check(strings.Repeat("x", 10), true))
	})

	t.Run("should trim before measuring", func(t *testing.T) {
		err := policy.Check("   short   ", true)

		require.ErrorIs(t, err, commands.ErrReasonTooShort)
		var tooShort *commands.ReasonTooShortError
		require.ErrorAs(t, err, &tooShort)
		assert.Equal(t, 10, tooShort.MinLength)
	})

	t.Run("should require confirmation even with long reason", func(t *testing.T) {
		err := policy.Check("a perfectly acceptable reason", false)

		require.ErrorIs(t, err, commands.ErrConfirmationRequired)
		assert.NotErrorIs(t, err, commands.ErrReasonTooShort)
	})
}
