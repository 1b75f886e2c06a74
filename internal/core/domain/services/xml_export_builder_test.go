package services_test

import (
	"strings"
	"testing"
	"time"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeSequencedOrder(t *testing.T) *order.Order {
	t.Helper()

	o := makeExportableOrder(t)
	require.NoError(t, o.SetShipMethod("Ground"))
	require.NoError(t, o.BeginReview())
	require.NoError(t, o.AssignSequence(2000001))
	return o
}

func TestXMLExportBuilder_Build(t *testing.T) {
	builder := services.NewXMLExportBuilder()

	t.Run("should emit one line element per active line only", func(t *testing.T) {
		o := makeSequencedOrder(t)
		require.NoError(t, o.CancelLine(2))

		doc, err := builder.Build(o)

		require.NoError(t, err)
		assert.Equal(t, 1, strings.Count(doc, "<line>"))
		assert.Contains(t, doc, "<lineNumber>1</lineNumber>")
		assert.NotContains(t, doc, "<lineNumber>2</lineNumber>")
	})

	t.Run("should produce byte-identical output on repeated calls", func(t *testing.T) {
		o := makeSequencedOrder(t)

		first, err := builder.Build(o)
		require.NoError(t, err)
		second, err := builder.Build(o)
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("should serialize header fields and well-formed prolog", func(t *testing.T) {
		o := makeSequencedOrder(t)

		doc, err := builder.Build(o)

		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(doc, `<?xml version="1.0" encoding="UTF-8"?>`))
		assert.Contains(t, doc, "<sequenceNumber>2000001</sequenceNumber>")
		assert.Contains(t, doc, "<customerOrderNumber>PO-1001</customerOrderNumber>")
		assert.Contains(t, doc, "<customerId>ACME</customerId>")
		assert.Contains(t, doc, "<line1>100 Main St</line1>")
		assert.Contains(t, doc, "<city>Denver</city>")
		assert.Contains(t, doc, "<state>CO</state>")
		assert.Contains(t, doc, "<carrier>UPS</carrier>")
		assert.Contains(t, doc, "<shipMethod>Ground</shipMethod>")
	})

	t.Run("should prefer mapped SKU and mapped price over customer values", func(t *testing.T) {
		mappedSKU := "ERP-SKU-9"
		mappedPrice := "11.99"
		line, err := order.RestoreLine(
			kernel.NewUUID(), "PO-2001", 1, "CUST-SKU-9",
			&mappedSKU, "4", "CS", "13.00", &mappedPrice, order.LineActive)
		require.NoError(t, err)

		shipTo := order.ShipTo{Line1: "100 Main St", City: "Denver", State: "CO"}
		o, err := order.NewOrder(kernel.NewUUID(), "PO-2001", "ACME", shipTo, []*order.Line{line})
		require.NoError(t, err)
		require.NoError(t, o.SetCarrier("UPS"))

		doc, err := services.NewXMLExportBuilder().Build(o)

		require.NoError(t, err)
		assert.Contains(t, doc, "<sku>ERP-SKU-9</sku>")
		assert.Contains(t, doc, "<price>11.99</price>")
		assert.NotContains(t, doc, "CUST-SKU-9")
		assert.NotContains(t, doc, "13.00")
	})

	t.Run("should fail with malformed line when quantity is not numeric", func(t *testing.T) {
		shipTo := order.ShipTo{Line1: "100 Main St", City: "Denver", State: "CO"}
		lines := []*order.Line{
			makeLine(t, "PO-2002", 1, "5", "12.50"),
			makeLine(t, "PO-2002", 2, "", "7.25"),
		}
		o, err := order.NewOrder(kernel.NewUUID(), "PO-2002", "ACME", shipTo, lines)
		require.NoError(t, err)

		doc, err := services.NewXMLExportBuilder().Build(o)

		require.ErrorIs(t, err, services.ErrMalformedLine)
		var malformedErr *services.MalformedLineError
		require.ErrorAs(t, err, &malformedErr)
		assert.Equal(t, 2, malformedErr.LineNumber)
		assert.Equal(t, "quantity", malformedErr.Field)
		assert.Empty(t, doc)
	})

	t.Run("should fail with malformed line when price is not numeric", func(t *testing.T) {
		shipTo := order.ShipTo{Line1: "100 Main St", City: "Denver", State: "CO"}
		lines := []*order.Line{makeLine(t, "PO-2003", 1, "5", "call for pricing")}
		o, err := order.NewOrder(kernel.NewUUID(), "PO-2003", "ACME", shipTo, lines)
		require.NoError(t, err)

		doc, err := services.NewXMLExportBuilder().Build(o)

		require.ErrorIs(t, err, services.ErrMalformedLine)
		var malformedErr *services.MalformedLineError
		require.ErrorAs(t, err, &malformedErr)
		assert.Equal(t, 1, malformedErr.LineNumber)
		assert.Equal(t, "price", malformedErr.Field)
		assert.Empty(t, doc)
	})

	t.Run("should skip malformed cancelled lines", func(t *testing.T) {
		o := makeSequencedOrder(t)

		// A cancelled line with a bad quantity must not block the export.
		badLine := makeLine(t, "PO-1001", 3, "n/a", "1.00")
		lines := append(o.Lines(), badLine)
		restored, err := order.RestoreOrder(
			o.ID(), o.CustomerOrderNumber(), o.CustomerID(), o.SequenceNumber(),
			o.Status(), o.ShipTo(), o.Carrier(), o.ShipMethod(),
			o.Cancellation(), o.Export(), o.CreatedAt(), o.UpdatedAt(), lines)
		require.NoError(t, err)
		require.NoError(t, restored.CancelLine(3))

		doc, err := services.NewXMLExportBuilder().Build(restored)

		require.NoError(t, err)
		assert.Equal(t, 2, strings.Count(doc, "<line>"))
	})
}

func TestXMLExportBuilder_Filename(t *testing.T) {
	builder := services.NewXMLExportBuilder()
	o := makeSequencedOrder(t)
	generatedAt := time.Date(2025, 6, 1, 15, 4, 5, 0, time.UTC)

	assert.Equal(t, "PO_2000001_20250601T150405Z.xml", builder.Filename(o, generatedAt))
}
