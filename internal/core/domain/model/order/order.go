package order

import (
	"errors"
	"fmt"
	"time"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrSequenceAlreadyAssigned is returned when a different sequence number
	// is assigned to an order that already carries one. The sequence number
	// is immutable once set and is never reused, even after cancellation.
	ErrSequenceAlreadyAssigned = errors.New("sequence number is already assigned and immutable")
)

// Order is the aggregate root for a sales order moving through review and
// export. It owns the lifecycle status, the assigned ERP sequence number,
// the ship-to block, cancellation/export metadata, and the order lines.
//
// Invariants:
//   - status changes only through the transition methods below
//   - the sequence number, once assigned, never changes and is never reused
//   - cancellation metadata is recorded and cleared all-or-nothing
//   - every line belongs to exactly this order, keyed by the customer order
//     number
type Order struct {
	id                  kernel.UUID
	customerOrderNumber string
	customerID          string
	sequenceNumber      *int64
	status              Status
	shipTo              ShipTo
	carrier             *string
	shipMethod          *string
	cancellation        *Cancellation
	export              *ExportRecord
	createdAt           time.Time
	updatedAt           time.Time
	lines               []*Line

	isConstructed bool
}

// NewOrder creates a freshly ingested order in Pending status with no
// sequence number assigned. Lines may be empty at this point; the export
// validator is what insists on at least one active line.
func NewOrder(
	id kernel.UUID,
	customerOrderNumber string,
	customerID string,
	shipTo ShipTo,
	lines []*Line,
) (*Order, error) {
	now := time.Now().UTC()
	o := &Order{
		status:        Pending,
		shipTo:        shipTo,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerOrderNumber(customerOrderNumber),
		o.setCustomerID(customerID),
		o.setLines(lines),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an order from persistence in its stored state.
// Unlike NewOrder it accepts any valid status, the assigned sequence number,
// and the cancellation/export metadata.
func RestoreOrder(
	id kernel.UUID,
	customerOrderNumber string,
	customerID string,
	sequenceNumber *int64,
	status Status,
	shipTo ShipTo,
	carrier *string,
	shipMethod *string,
	cancellation *Cancellation,
	export *ExportRecord,
	createdAt time.Time,
	updatedAt time.Time,
	lines []*Line,
) (*Order, error) {
	o, err := NewOrder(id, customerOrderNumber, customerID, shipTo, lines)
	if err != nil {
		return nil, err
	}

	if err := status.Validate(); err != nil {
		return nil, err
	}
	if sequenceNumber != nil && *sequenceNumber <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"sequence number",
			fmt.Errorf("%d is not greater than 0", *sequenceNumber),
		)
	}

	o.sequenceNumber = sequenceNumber
	o.status = status
	o.carrier = carrier
	o.shipMethod = shipMethod
	o.cancellation = cancellation
	o.export = export
	o.createdAt = createdAt
	o.updatedAt = updatedAt
	return o, nil
}

// Validate ensures the Order was created through NewOrder or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerOrderNumber returns the customer-supplied order number. It is not
// guaranteed unique across customers; lines link to their order through it.
func (o *Order) CustomerOrderNumber() string {
	return o.customerOrderNumber
}

// CustomerID returns the customer account reference.
func (o *Order) CustomerID() string {
	return o.customerID
}

// SequenceNumber returns the assigned ERP sequence number, or nil when no
// reviewer has opened the order yet.
func (o *Order) SequenceNumber() *int64 {
	return o.sequenceNumber
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// ShipTo returns the shipping address block.
func (o *Order) ShipTo() ShipTo {
	return o.shipTo
}

// Carrier returns the selected carrier, or nil when none is chosen yet.
func (o *Order) Carrier() *string {
	return o.carrier
}

// ShipMethod returns the selected ship method, or nil when none is chosen.
func (o *Order) ShipMethod() *string {
	return o.shipMethod
}

// Cancellation returns the cancellation metadata, or nil for orders that are
// not cancelled.
func (o *Order) Cancellation() *Cancellation {
	return o.cancellation
}

// Export returns the export metadata, or nil for orders never exported.
func (o *Order) Export() *ExportRecord {
	return o.export
}

// CreatedAt returns the ingestion timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the last mutation timestamp.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// Lines returns all lines of the order, active and cancelled, in line-number
// order as loaded.
func (o *Order) Lines() []*Line {
	return o.lines
}

// ActiveLines returns only the lines that participate in validation and
// export, preserving line-number order.
func (o *Order) ActiveLines() []*Line {
	active := make([]*Line, 0, len(o.lines))
	for _, line := range o.lines {
		if line.IsActive() {
			active = append(active, line)
		}
	}
	return active
}

// SetCarrier selects the carrier used for export.
func (o *Order) SetCarrier(carrier string) error {
	if carrier == "" {
		return errs.NewValueIsRequiredError("carrier")
	}
	o.carrier = &carrier
	o.touch()
	return nil
}

// SetShipMethod selects the ship method used for export.
func (o *Order) SetShipMethod(shipMethod string) error {
	if shipMethod == "" {
		return errs.NewValueIsRequiredError("ship method")
	}
	o.shipMethod = &shipMethod
	o.touch()
	return nil
}

// BeginReview moves a Pending order to UnderReview. Callers treat opening an
// already-reviewed order as a no-op; they only invoke this from Pending.
func (o *Order) BeginReview() error {
	newStatus, err := o.status.BeginReview()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.touch()
	return nil
}

// AssignSequence sets the ERP sequence number exactly once.
// Re-assigning the same number is a no-op so idempotent retries are safe;
// assigning a different number fails with ErrSequenceAlreadyAssigned.
func (o *Order) AssignSequence(n int64) error {
	if n <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"sequence number",
			fmt.Errorf("%d is not greater than 0", n),
		)
	}
	if o.sequenceNumber != nil {
		if *o.sequenceNumber == n {
			return nil
		}
		return ErrSequenceAlreadyAssigned
	}

	o.sequenceNumber = &n
	o.touch()
	return nil
}

// MarkValidated moves an UnderReview order to Validated. The caller must
// have run the export validator first; this method only guards the state
// machine.
func (o *Order) MarkValidated() error {
	newStatus, err := o.status.MarkValidated()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.touch()
	return nil
}

// MarkExported moves a Validated order to Exported and records who exported
// it and when.
func (o *Order) MarkExported(actor string, at time.Time) error {
	if actor == "" {
		return errs.NewValueIsRequiredError("export actor")
	}

	newStatus, err := o.status.MarkExported()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.export = &ExportRecord{Actor: actor, At: at}
	o.touch()
	return nil
}

// MarkErpProcessed moves an Exported order to ErpProcessed on ERP
// acknowledgment.
func (o *Order) MarkErpProcessed() error {
	newStatus, err := o.status.MarkErpProcessed()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.touch()
	return nil
}

// Cancel moves the order to Cancelled and records the cancellation metadata
// atomically with the transition. The minimum-reason-length policy is
// enforced by the command layer; here only presence is required.
func (o *Order) Cancel(actor string, at time.Time, reason string) error {
	if err := errors.Join(
		requireNonEmpty("cancellation actor", actor),
		requireNonEmpty("cancellation reason", reason),
	); err != nil {
		return err
	}

	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.cancellation = &Cancellation{Actor: actor, At: at, Reason: reason}
	o.touch()
	return nil
}

// Restore moves a Cancelled order back to UnderReview, clears the
// cancellation metadata, and forces every line back to active.
func (o *Order) Restore() error {
	newStatus, err := o.status.Restore()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.cancellation = nil
	for _, line := range o.lines {
		line.Activate()
	}
	o.touch()
	return nil
}

// CancelLine cancels a single line by its line number. Line mutations are
// forbidden once the order left the review flow.
func (o *Order) CancelLine(lineNumber int) error {
	line, err := o.lineByNumber(lineNumber)
	if err != nil {
		return err
	}
	if err := o.ensureLinesMutable(); err != nil {
		return err
	}

	line.Cancel()
	o.touch()
	return nil
}

// ActivateLine restores a single cancelled line by its line number.
func (o *Order) ActivateLine(lineNumber int) error {
	line, err := o.lineByNumber(lineNumber)
	if err != nil {
		return err
	}
	if err := o.ensureLinesMutable(); err != nil {
		return err
	}

	line.Activate()
	o.touch()
	return nil
}

func (o *Order) ensureLinesMutable() error {
	if o.status == Exported || o.status == ErpProcessed {
		return NewInvalidTransitionError(o.status, "update line status")
	}
	return nil
}

func (o *Order) lineByNumber(lineNumber int) (*Line, error) {
	for _, line := range o.lines {
		if line.LineNumber() == lineNumber {
			return line, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("line number", lineNumber)
}

func (o *Order) touch() {
	o.updatedAt = time.Now().UTC()
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerOrderNumber(customerOrderNumber string) error {
	if customerOrderNumber == "" {
		return errs.NewValueIsRequiredError("customer order number")
	}
	o.customerOrderNumber = customerOrderNumber
	return nil
}

func (o *Order) setCustomerID(customerID string) error {
	if customerID == "" {
		return errs.NewValueIsRequiredError("customer ID")
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setLines(lines []*Line) error {
	seen := make(map[int]bool, len(lines))
	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return err
		}
		if line.CustomerOrderNumber() != o.customerOrderNumber {
			return errs.NewValueIsInvalidErrorWithCause(
				"order lines",
				fmt.Errorf("line %d belongs to order %q", line.LineNumber(), line.CustomerOrderNumber()),
			)
		}
		if seen[line.LineNumber()] {
			return errs.NewValueIsInvalidErrorWithCause(
				"order lines",
				fmt.Errorf("duplicate line number %d", line.LineNumber()),
			)
		}
		seen[line.LineNumber()] = true
	}

	o.lines = lines
	return nil
}

func requireNonEmpty(param, value string) error {
	if value == "" {
		return errs.NewValueIsRequiredError(param)
	}
	return nil
}
