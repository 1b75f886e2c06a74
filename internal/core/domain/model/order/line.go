package order

import (
	"errors"
	"fmt"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/pkg/errs"
)

var (
	// ErrLineIsNotConstructed is returned when a Line instance was not created
	// through NewLine or RestoreLine.
	ErrLineIsNotConstructed = errors.New("Line must be created via NewLine or RestoreLine")
)

// LineStatus represents the state of a single order line, independent of the
// parent order's status. Cancelled lines stay in the data model but are
// excluded from export documents.
type LineStatus string

const (
	// LineActive marks a line that participates in validation and export.
	LineActive LineStatus = "active"

	// LineCancelled marks a line excluded from export output.
	LineCancelled LineStatus = "cancelled"
)

// ParseLineStatus converts a persisted line-status string into a LineStatus.
func ParseLineStatus(s string) (LineStatus, error) {
	switch LineStatus(s) {
	case LineActive, LineCancelled:
		return LineStatus(s), nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause(
			"line status",
			fmt.Errorf("%q is not a known line status", s),
		)
	}
}

// String returns the persisted form of the line status.
func (s LineStatus) String() string {
	return string(s)
}

// Validate checks that the LineStatus is one of the known values.
func (s LineStatus) Validate() error {
	_, err := ParseLineStatus(string(s))
	return err
}

// Line is an order line as captured from the customer document and optionally
// enriched by the upstream product-mapping lookup. Quantity and prices are
// carried as strings because document extraction may yield values that are
// absent or not numeric; the export builder is the component that insists on
// numbers.
//
// Line numbers are stable identifiers used for ordering within the parent
// order; they are unique per order and never regenerated.
type Line struct {
	id                  kernel.UUID
	customerOrderNumber string
	lineNumber          int
	customerSKU         string
	mappedSKU           *string
	quantity            string
	unitOfMeasure       string
	customerPrice       string
	mappedPrice         *string
	status              LineStatus

	isConstructed bool
}

// NewLine creates an active order line from freshly ingested data.
// The mapped SKU and mapped price start empty; the upstream mapping lookup
// fills them before the order reaches review.
func NewLine(
	id kernel.UUID,
	customerOrderNumber string,
	lineNumber int,
	customerSKU string,
	quantity string,
	unitOfMeasure string,
	customerPrice string,
) (*Line, error) {
	line := &Line{
		status:        LineActive,
		isConstructed: true,
	}

	if err := errors.Join(
		line.setID(id),
		line.setCustomerOrderNumber(customerOrderNumber),
		line.setLineNumber(lineNumber),
		line.setCustomerSKU(customerSKU),
	); err != nil {
		return nil, err
	}

	line.quantity = quantity
	line.unitOfMeasure = unitOfMeasure
	line.customerPrice = customerPrice
	return line, nil
}

// RestoreLine reconstructs a line from persistence, including enrichment
// fields and the persisted line status.
func RestoreLine(
	id kernel.UUID,
	customerOrderNumber string,
	lineNumber int,
	customerSKU string,
	mappedSKU *string,
	quantity string,
	unitOfMeasure string,
	customerPrice string,
	mappedPrice *string,
	status LineStatus,
) (*Line, error) {
	line, err := NewLine(id, customerOrderNumber, lineNumber, customerSKU, quantity, unitOfMeasure, customerPrice)
	if err != nil {
		return nil, err
	}

	if err := status.Validate(); err != nil {
		return nil, err
	}

	line.mappedSKU = mappedSKU
	line.mappedPrice = mappedPrice
	line.status = status
	return line, nil
}

// Validate ensures the Line was created through NewLine or RestoreLine.
func (l *Line) Validate() error {
	if l == nil || !l.isConstructed {
		return ErrLineIsNotConstructed
	}
	return nil
}

// ID returns the line's unique identifier.
func (l *Line) ID() kernel.UUID {
	return l.id
}

// CustomerOrderNumber returns the customer order number linking the line to
// its parent order.
func (l *Line) CustomerOrderNumber() string {
	return l.customerOrderNumber
}

// LineNumber returns the stable ordering identifier within the parent order.
func (l *Line) LineNumber() int {
	return l.lineNumber
}

// CustomerSKU returns the product SKU as written on the customer document.
func (l *Line) CustomerSKU() string {
	return l.customerSKU
}

// MappedSKU returns the resolved product SKU, or nil when the upstream
// mapping lookup found no match. A missing mapped SKU never blocks export.
func (l *Line) MappedSKU() *string {
	return l.mappedSKU
}

// Quantity returns the raw quantity string captured from the document.
func (l *Line) Quantity() string {
	return l.quantity
}

// UnitOfMeasure returns the unit of measure for the quantity.
func (l *Line) UnitOfMeasure() string {
	return l.unitOfMeasure
}

// CustomerPrice returns the customer-quoted unit price string.
func (l *Line) CustomerPrice() string {
	return l.customerPrice
}

// MappedPrice returns the resolved unit price, or nil when not enriched.
func (l *Line) MappedPrice() *string {
	return l.mappedPrice
}

// Status returns the line's current status.
func (l *Line) Status() LineStatus {
	return l.status
}

// IsActive reports whether the line participates in validation and export.
func (l *Line) IsActive() bool {
	return l.status == LineActive
}

// Cancel marks the line as cancelled. Cancelled lines remain in the data
// model but are excluded from export output.
func (l *Line) Cancel() {
	l.status = LineCancelled
}

// Activate marks the line as active again.
func (l *Line) Activate() {
	l.status = LineActive
}

func (l *Line) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.id = id
	return nil
}

func (l *Line) setCustomerOrderNumber(customerOrderNumber string) error {
	if customerOrderNumber == "" {
		return errs.NewValueIsRequiredError("customer order number")
	}
	l.customerOrderNumber = customerOrderNumber
	return nil
}

func (l *Line) setLineNumber(lineNumber int) error {
	if lineNumber <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"line number",
			fmt.Errorf("%d is not greater than 0", lineNumber),
		)
	}
	l.lineNumber = lineNumber
	return nil
}

func (l *Line) setCustomerSKU(customerSKU string) error {
	if customerSKU == "" {
		return errs.NewValueIsRequiredError("customer SKU")
	}
	l.customerSKU = customerSKU
	return nil
}
