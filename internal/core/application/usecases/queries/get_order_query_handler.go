package queries

import (
	"context"
	"database/sql"
	"errors"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler reads one order and its lines straight from the
// database.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order queries.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query. Returns an ObjectNotFoundError when no order
// with the given ID exists.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	var response GetOrderQueryResponse

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_order_number,
			customer_id,
			sequence_number,
			status,
			carrier,
			ship_method
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Row()

	var id uuid.UUID
	err := row.Scan(
		&id,
		&response.CustomerOrderNumber,
		&response.CustomerID,
		&response.SequenceNumber,
		&response.StatusCode,
		&response.Carrier,
		&response.ShipMethod,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, gorm.ErrRecordNotFound) {
			return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
		}
		return GetOrderQueryResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	response.ID = orderID

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			line_number,
			customer_sku,
			mapped_sku,
			quantity,
			unit_of_measure,
			customer_price,
			mapped_price,
			status
		FROM order_lines
		WHERE order_id = ?
		ORDER BY line_number
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var line OrderLineResponse
		err = rows.Scan(
			&line.LineNumber,
			&line.CustomerSKU,
			&line.MappedSKU,
			&line.Quantity,
			&line.UnitOfMeasure,
			&line.CustomerPrice,
			&line.MappedPrice,
			&line.Status,
		)
		if err != nil {
			return GetOrderQueryResponse{}, err
		}
		response.Lines = append(response.Lines, line)
	}

	if err = rows.Err(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	return response, nil
}
