package order_test

import (
	"testing"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLine(t *testing.T) {
	t.Run("should create active line with valid parameters", func(t *testing.T) {
		id := kernel.NewUUID()

		line, err := order.NewLine(id, "PO-1001", 1, "CUST-SKU-1", "5", "EA", "12.50")

		require.NoError(t, err)
		require.NoError(t, line.Validate())
		assert.True(t, line.ID().IsEqual(id))
		assert.Equal(t, "PO-1001", line.CustomerOrderNumber())
		assert.Equal(t, 1, line.LineNumber())
		assert.Equal(t, "CUST-SKU-1", line.CustomerSKU())
		assert.Equal(t, "5", line.Quantity())
		assert.Equal(t, "EA", line.UnitOfMeasure())
		assert.Equal(t, "12.50", line.CustomerPrice())
		assert.Equal(t, order.LineActive, line.Status())
		assert.Nil(t, line.MappedSKU())
		assert.Nil(t, line.MappedPrice())
	})

	t.Run("should accept empty quantity and price", func(t *testing.T) {
		// Document extraction may leave numeric fields blank; the export
		// builder is where numbers become mandatory.
		line, err := order.NewLine(kernel.NewUUID(), "PO-1001", 2, "CUST-SKU-2", "", "EA", "")

		require.NoError(t, err)
		assert.Empty(t, line.Quantity())
		assert.Empty(t, line.CustomerPrice())
	})

	t.Run("should fail with invalid line number", func(t *testing.T) {
		_, err := order.NewLine(kernel.NewUUID(), "PO-1001", 0, "CUST-SKU-1", "1", "EA", "1.00")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "line number")
	})

	t.Run("should fail with empty customer SKU", func(t *testing.T) {
		_, err := order.NewLine(kernel.NewUUID(), "PO-1001", 1, "", "1", "EA", "1.00")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "customer SKU")
	})

	t.Run("should fail with empty customer order number", func(t *testing.T) {
		_, err := order.NewLine(kernel.NewUUID(), "", 1, "CUST-SKU-1", "1", "EA", "1.00")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "customer order number")
	})
}

func TestRestoreLine(t *testing.T) {
	t.Run("should restore enrichment fields and status", func(t *testing.T) {
		mappedSKU := "ERP-SKU-1"
		mappedPrice := "11.99"

		line, err := order.RestoreLine(
			kernel.NewUUID(), "PO-1001", 3, "CUST-SKU-3",
			&mappedSKU, "2", "CS", "13.00", &mappedPrice, order.LineCancelled,
		)

		require.NoError(t, err)
		require.NotNil(t, line.MappedSKU())
		assert.Equal(t, "ERP-SKU-1", *line.MappedSKU())
		require.NotNil(t, line.MappedPrice())
		assert.Equal(t, "11.99", *line.MappedPrice())
		assert.Equal(t, order.LineCancelled, line.Status())
		assert.False(t, line.IsActive())
	})

	t.Run("should reject unknown line status", func(t *testing.T) {
		_, err := order.RestoreLine(
			kernel.NewUUID(), "PO-1001", 3, "CUST-SKU-3",
			nil, "2", "CS", "13.00", nil, order.LineStatus("archived"),
		)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "line status")
	})
}

func TestLine_CancelAndActivate(t *testing.T) {
	line, err := order.NewLine(kernel.NewUUID(), "PO-1001", 1, "CUST-SKU-1", "5", "EA", "12.50")
	require.NoError(t, err)

	line.Cancel()
	assert.Equal(t, order.LineCancelled, line.Status())
	assert.False(t, line.IsActive())

	line.Activate()
	assert.Equal(t, order.LineActive, line.Status())
	assert.True(t, line.IsActive())
}

func TestLine_Validate(t *testing.T) {
	t.Run("should fail for struct literal", func(t *testing.T) {
		var line order.Line

		assert.Equal(t, order.ErrLineIsNotConstructed, line.Validate())
	})

	t.Run("should fail for nil line", func(t *testing.T) {
		var line *order.Line

		assert.Equal(t, order.ErrLineIsNotConstructed, line.Validate())
	})
}

func TestParseLineStatus(t *testing.T) {
	t.Run("should parse persisted values", func(t *testing.T) {
		for _, s := range []string{"active", "cancelled"} {
			status, err := order.ParseLineStatus(s)
			require.NoError(t, err)
			assert.Equal(t, s, status.String())
		}
	})

	t.Run("should reject unknown values", func(t *testing.T) {
		_, err := order.ParseLineStatus("deleted")

		require.Error(t, err)
	})
}
