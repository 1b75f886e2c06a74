// Package queries contains read-only operations against the order store.
// Query handlers bypass the aggregate and read rows directly; they never
// mutate anything, so they run outside any unit of work.
package queries

import (
	"errors"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves one order with its lines for display.
type GetOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for a single order.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the identifier of the requested order.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetOrderQueryResponse carries the order header and its lines. StatusCode
// is the persisted two-digit form; the UI maps it to a label itself.
type GetOrderQueryResponse struct {
	ID                  kernel.UUID
	CustomerOrderNumber string
	CustomerID          string
	SequenceNumber      *int64
	StatusCode          string
	Carrier             *string
	ShipMethod          *string
	Lines               []OrderLineResponse
}

// OrderLineResponse carries one line of the order. A nil MappedSKU is
// visibility-only information for the reviewer, not a blocker.
type OrderLineResponse struct {
	LineNumber    int
	CustomerSKU   string
	MappedSKU     *string
	Quantity      string
	UnitOfMeasure string
	CustomerPrice string
	MappedPrice   *string
	Status        string
}
