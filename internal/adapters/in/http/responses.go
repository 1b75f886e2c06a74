package http

import (
	"strconv"
	"time"

	"orderdesk/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// OrderResponse is the full order view returned by GET /orders/:id.
type OrderResponse struct {
	ID                  string         `json:"id"`
	CustomerOrderNumber string         `json:"customerOrderNumber"`
	CustomerID          string         `json:"customerId"`
	SequenceNumber      *int64         `json:"sequenceNumber"`
	StatusCode          string         `json:"statusCode"`
	Carrier             *string        `json:"carrier"`
	ShipMethod          *string        `json:"shipMethod"`
	Lines               []LineResponse `json:"lines"`
}

// LineResponse is one order line inside OrderResponse.
type LineResponse struct {
	LineNumber    int     `json:"lineNumber"`
	CustomerSKU   string  `json:"customerSku"`
	MappedSKU     *string `json:"mappedSku"`
	Quantity      string  `json:"quantity"`
	UnitOfMeasure string  `json:"unitOfMeasure"`
	CustomerPrice string  `json:"customerPrice"`
	MappedPrice   *string `json:"mappedPrice"`
	Status        string  `json:"status"`
}

// HistoryEntryResponse is one lifecycle transition in the history view.
type HistoryEntryResponse struct {
	StatusCode string    `json:"statusCode"`
	Actor      string    `json:"actor"`
	Note       string    `json:"note"`
	RecordedAt time.Time `json:"recordedAt"`
}

// WorklistRowResponse is one row of the review worklist.
type WorklistRowResponse struct {
	ID                  string    `json:"id"`
	CustomerOrderNumber string    `json:"customerOrderNumber"`
	CustomerID          string    `json:"customerId"`
	SequenceNumber      *int64    `json:"sequenceNumber"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

func toOrderResponse(result queries.GetOrderQueryResponse) OrderResponse {
	lines := make([]LineResponse, len(result.Lines))
	for i, line := range result.Lines {
		lines[i] = LineResponse{
			LineNumber:    line.LineNumber,
			CustomerSKU:   line.CustomerSKU,
			MappedSKU:     line.MappedSKU,
			Quantity:      line.Quantity,
			UnitOfMeasure: line.UnitOfMeasure,
			CustomerPrice: line.CustomerPrice,
			MappedPrice:   line.MappedPrice,
			Status:        line.Status,
		}
	}

	return OrderResponse{
		ID:                  result.ID.String(),
		CustomerOrderNumber: result.CustomerOrderNumber,
		CustomerID:          result.CustomerID,
		SequenceNumber:      result.SequenceNumber,
		StatusCode:          result.StatusCode,
		Carrier:             result.Carrier,
		ShipMethod:          result.ShipMethod,
		Lines:               lines,
	}
}

func intParam(ctx echo.Context, name string) (int, error) {
	return strconv.Atoi(ctx.Param(name))
}
