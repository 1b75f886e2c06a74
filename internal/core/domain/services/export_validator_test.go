package services_test

import (
	"testing"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeLine(t *testing.T, orderNumber string, lineNumber int, quantity, price string) *order.Line {
	t.Helper()

	line, err := order.NewLine(
		kernel.NewUUID(), orderNumber, lineNumber,
		"CUST-SKU-"+orderNumber, quantity, "EA", price)
	require.NoError(t, err)
	return line
}

func makeExportableOrder(t *testing.T) *order.Order {
	t.Helper()

	shipTo := order.ShipTo{
		Line1:      "100 Main St",
		City:       "Denver",
		State:      "CO",
		PostalCode: "80202",
	}
	lines := []*order.Line{
		makeLine(t, "PO-1001", 1, "5", "12.50"),
		makeLine(t, "PO-1001", 2, "3", "7.25"),
	}

	o, err := order.NewOrder(kernel.NewUUID(), "PO-1001", "ACME", shipTo, lines)
	require.NoError(t, err)
	require.NoError(t, o.SetCarrier("UPS"))
	return o
}

func TestExportValidator_Validate(t *testing.T) {
	validator := services.NewExportValidator()

	t.Run("should pass a complete order", func(t *testing.T) {
		o := makeExportableOrder(t)

		result, err := validator.Validate(o)

		require.NoError(t, err)
		assert.True(t, result.Passed())
		assert.Empty(t, result.Reasons())
		assert.NoError(t, result.AsError())
	})

	t.Run("should pass when only cancelled lines are excluded", func(t *testing.T) {
		o := makeExportableOrder(t)
		require.NoError(t, o.CancelLine(2))

		result, err := validator.Validate(o)

		require.NoError(t, err)
		assert.True(t, result.Passed())
	})

	t.Run("should collect every failing check, not just the first", func(t *testing.T) {
		shipTo := order.ShipTo{
			Line1: "100 Main St",
			State: "CO",
		}
		lines := []*order.Line{makeLine(t, "PO-1002", 1, "5", "12.50")}
		o, err := order.NewOrder(kernel.NewUUID(), "PO-1002", "ACME", shipTo, lines)
		require.NoError(t, err)

		result, err := validator.Validate(o)

		require.NoError(t, err)
		assert.False(t, result.Passed())
		assert.Equal(t, []string{
			"ship-to city is missing",
			"no carrier is selected",
		}, result.Reasons())
	})

	t.Run("should report whitespace-only fields as missing", func(t *testing.T) {
		shipTo := order.ShipTo{
			Line1: "  ",
			City:  "Denver",
			State: "CO",
		}
		o, err := order.NewOrder(kernel.NewUUID(), "PO-1003", "ACME", shipTo,
			[]*order.Line{makeLine(t, "PO-1003", 1, "5", "12.50")})
		require.NoError(t, err)
		require.NoError(t, o.SetCarrier("UPS"))

		result, err := validator.Validate(o)

		require.NoError(t, err)
		assert.Equal(t, []string{"ship-to address line 1 is missing"}, result.Reasons())
	})

	t.Run("should fail when no active lines remain", func(t *testing.T) {
		o := makeExportableOrder(t)
		require.NoError(t, o.CancelLine(1))
		require.NoError(t, o.CancelLine(2))

		result, err := validator.Validate(o)

		require.NoError(t, err)
		assert.Equal(t, []string{"order has no active lines"}, result.Reasons())
	})

	t.Run("should not mutate the order and repeat the same result", func(t *testing.T) {
		o := makeExportableOrder(t)
		statusBefore := o.Status()
		updatedBefore := o.UpdatedAt()

		first, err := validator.Validate(o)
		require.NoError(t, err)
		second, err := validator.Validate(o)
		require.NoError(t, err)

		assert.Equal(t, first, second)
		assert.Equal(t, statusBefore, o.Status())
		assert.Equal(t, updatedBefore, o.UpdatedAt())
	})

	t.Run("should fail for an unconstructed order", func(t *testing.T) {
		var o order.Order

		_, err := validator.Validate(&o)

		assert.Equal(t, order.ErrOrderIsNotConstructed, err)
	})
}

func TestValidationFailedError(t *testing.T) {
	result, err := services.NewExportValidator().Validate(mustOrderWithoutCarrier(t))
	require.NoError(t, err)

	failure := result.AsError()
	require.Error(t, failure)
	require.ErrorIs(t, failure, services.ErrValidationFailed)

	var validationErr *services.ValidationFailedError
	require.ErrorAs(t, failure, &validationErr)
	assert.Equal(t, []string{"no carrier is selected"}, validationErr.Reasons)
	assert.Contains(t, failure.Error(), "no carrier is selected")
}

func mustOrderWithoutCarrier(t *testing.T) *order.Order {
	t.Helper()

	shipTo := order.ShipTo{Line1: "100 Main St", City: "Denver", State: "CO"}
	o, err := order.NewOrder(kernel.NewUUID(), "PO-1004", "ACME", shipTo,
		[]*order.Line{makeLine(t, "PO-1004", 1, "5", "12.50")})
	require.NoError(t, err)
	return o
}
