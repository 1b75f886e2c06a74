// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, handling conversion between domain entities and database rows.
package orderrepo

import (
	"time"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database row for an order aggregate. The status
// column stores the two-digit code ("01".."06"); the code is a persisted
// contract shared with the surrounding system and must never change meaning.
type OrderDTO struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerOrderNumber string    `gorm:"index"`
	CustomerID          string
	SequenceNumber      *int64 `gorm:"uniqueIndex"`
	Status              string `gorm:"type:varchar(2);index"`
	ShipToLine1         string
	ShipToLine2         string
	ShipToLine3         string
	ShipToLine4         string
	ShipToCity          string
	ShipToState         string
	ShipToPostalCode    string
	Carrier             *string
	ShipMethod          *string
	CancelledBy         *string
	CancelledAt         *time.Time
	CancelReason        *string
	ExportedBy          *string
	ExportedAt          *time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time

	Lines []OrderLineDTO `gorm:"foreignKey:OrderID;references:ID"`
}

// TableName overrides GORM's default naming to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderLineDTO represents the database row for one order line.
type OrderLineDTO struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID             uuid.UUID `gorm:"type:uuid;index"`
	CustomerOrderNumber string
	LineNumber          int
	CustomerSKU         string
	MappedSKU           *string
	Quantity            string
	UnitOfMeasure       string
	CustomerPrice       string
	MappedPrice         *string
	Status              string `gorm:"type:varchar(10)"`
}

// TableName overrides GORM's default naming to use "order_lines".
func (OrderLineDTO) TableName() string {
	return "order_lines"
}

// fromDomain converts an order aggregate to its database representation,
// lines included.
func fromDomain(aggregate *order.Order) OrderDTO {
	dto := OrderDTO{
		ID:                  aggregate.ID().Bytes(),
		CustomerOrderNumber: aggregate.CustomerOrderNumber(),
		CustomerID:          aggregate.CustomerID(),
		SequenceNumber:      aggregate.SequenceNumber(),
		Status:              aggregate.Status().Code(),
		ShipToLine1:         aggregate.ShipTo().Line1,
		ShipToLine2:         aggregate.ShipTo().Line2,
		ShipToLine3:         aggregate.ShipTo().Line3,
		ShipToLine4:         aggregate.ShipTo().Line4,
		ShipToCity:          aggregate.ShipTo().City,
		ShipToState:         aggregate.ShipTo().State,
		ShipToPostalCode:    aggregate.ShipTo().PostalCode,
		Carrier:             aggregate.Carrier(),
		ShipMethod:          aggregate.ShipMethod(),
		CreatedAt:           aggregate.CreatedAt(),
		UpdatedAt:           aggregate.UpdatedAt(),
	}

	if cancellation := aggregate.Cancellation(); cancellation != nil {
		dto.CancelledBy = &cancellation.Actor
		dto.CancelledAt = &cancellation.At
		dto.CancelReason = &cancellation.Reason
	}
	if export := aggregate.Export(); export != nil {
		dto.ExportedBy = &export.Actor
		dto.ExportedAt = &export.At
	}

	for _, line := range aggregate.Lines() {
		dto.Lines = append(dto.Lines, lineFromDomain(aggregate.ID(), line))
	}

	return dto
}

func lineFromDomain(orderID kernel.UUID, line *order.Line) OrderLineDTO {
	return OrderLineDTO{
		ID:                  line.ID().Bytes(),
		OrderID:             orderID.Bytes(),
		CustomerOrderNumber: line.CustomerOrderNumber(),
		LineNumber:          line.LineNumber(),
		CustomerSKU:         line.CustomerSKU(),
		MappedSKU:           line.MappedSKU(),
		Quantity:            line.Quantity(),
		UnitOfMeasure:       line.UnitOfMeasure(),
		CustomerPrice:       line.CustomerPrice(),
		MappedPrice:         line.MappedPrice(),
		Status:              line.Status().String(),
	}
}

// toDomain converts a database DTO back to an order aggregate using
// RestoreOrder so the stored status and metadata survive the round trip.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromCode(dto.Status)
	if err != nil {
		return nil, err
	}

	lines := make([]*order.Line, 0, len(dto.Lines))
	for _, lineDTO := range dto.Lines {
		line, lineErr := lineToDomain(lineDTO)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	var cancellation *order.Cancellation
	if dto.CancelledBy != nil && dto.CancelledAt != nil && dto.CancelReason != nil {
		cancellation = &order.Cancellation{
			Actor:  *dto.CancelledBy,
			At:     *dto.CancelledAt,
			Reason: *dto.CancelReason,
		}
	}

	var export *order.ExportRecord
	if dto.ExportedBy != nil && dto.ExportedAt != nil {
		export = &order.ExportRecord{
			Actor: *dto.ExportedBy,
			At:    *dto.ExportedAt,
		}
	}

	return order.RestoreOrder(
		id,
		dto.CustomerOrderNumber,
		dto.CustomerID,
		dto.SequenceNumber,
		status,
		order.ShipTo{
			Line1:      dto.ShipToLine1,
			Line2:      dto.ShipToLine2,
			Line3:      dto.ShipToLine3,
			Line4:      dto.ShipToLine4,
			City:       dto.ShipToCity,
			State:      dto.ShipToState,
			PostalCode: dto.ShipToPostalCode,
		},
		dto.Carrier,
		dto.ShipMethod,
		cancellation,
		export,
		dto.CreatedAt,
		dto.UpdatedAt,
		lines,
	)
}

func lineToDomain(dto OrderLineDTO) (*order.Line, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	status, err := order.ParseLineStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreLine(
		id,
		dto.CustomerOrderNumber,
		dto.LineNumber,
		dto.CustomerSKU,
		dto.MappedSKU,
		dto.Quantity,
		dto.UnitOfMeasure,
		dto.CustomerPrice,
		dto.MappedPrice,
		status,
	)
}
