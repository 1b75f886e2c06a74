package trail

import (
	"errors"
	"fmt"
	"time"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/pkg/errs"
)

// ErrAuditLogEntryIsNotConstructed is returned when an entry was not created
// through NewAuditLogEntry.
var ErrAuditLogEntryIsNotConstructed = errors.New(
	"AuditLogEntry must be created via NewAuditLogEntry")

// ActionType classifies what kind of mutation an audit entry records.
// Audit coverage is broader than status history: sequence assignment and
// line-status changes are audited even though they are not lifecycle
// transitions.
type ActionType string

const (
	// ActionStatusChange records a lifecycle transition with old/new codes.
	ActionStatusChange ActionType = "status_change"

	// ActionSequenceAssigned records the one-time sequence number assignment.
	ActionSequenceAssigned ActionType = "sequence_assigned"

	// ActionLineStatusChange records a single line's cancel/restore.
	ActionLineStatusChange ActionType = "line_status_change"
)

// Validate checks that the ActionType is one of the known values.
func (a ActionType) Validate() error {
	switch a {
	case ActionStatusChange, ActionSequenceAssigned, ActionLineStatusChange:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause(
			"action type",
			fmt.Errorf("%q is not a known action type", string(a)),
		)
	}
}

// String returns the persisted form of the action type.
func (a ActionType) String() string {
	return string(a)
}

// AuditLogEntry records a tracked mutation on an order: who changed what,
// the old and new values, and an optional reason. Entries are write-once.
type AuditLogEntry struct {
	id         kernel.UUID
	orderID    kernel.UUID
	actor      string
	action     ActionType
	oldValue   string
	newValue   string
	reason     string
	recordedAt time.Time

	isConstructed bool
}

// NewAuditLogEntry creates an audit record. Old value and reason may be empty
// (sequence assignment has no old value; most changes carry no reason).
func NewAuditLogEntry(
	id kernel.UUID,
	orderID kernel.UUID,
	actor string,
	action ActionType,
	oldValue string,
	newValue string,
	reason string,
	recordedAt time.Time,
) (*AuditLogEntry, error) {
	entry := &AuditLogEntry{
		oldValue:      oldValue,
		newValue:      newValue,
		reason:        reason,
		recordedAt:    recordedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		entry.setID(id),
		entry.setOrderID(orderID),
		entry.setActor(actor),
		entry.setAction(action),
	); err != nil {
		return nil, err
	}

	return entry, nil
}

// Validate ensures the entry was created through NewAuditLogEntry.
func (e *AuditLogEntry) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrAuditLogEntryIsNotConstructed
	}
	return nil
}

// ID returns the entry's unique identifier.
func (e *AuditLogEntry) ID() kernel.UUID {
	return e.id
}

// OrderID returns the identifier of the order the entry belongs to.
func (e *AuditLogEntry) OrderID() kernel.UUID {
	return e.orderID
}

// Actor returns who performed the mutation.
func (e *AuditLogEntry) Actor() string {
	return e.actor
}

// Action returns the mutation classification.
func (e *AuditLogEntry) Action() ActionType {
	return e.action
}

// OldValue returns the value before the mutation, empty when not applicable.
func (e *AuditLogEntry) OldValue() string {
	return e.oldValue
}

// NewValue returns the value after the mutation.
func (e *AuditLogEntry) NewValue() string {
	return e.newValue
}

// Reason returns the free-text reason, empty when none was captured.
func (e *AuditLogEntry) Reason() string {
	return e.reason
}

// RecordedAt returns when the mutation happened.
func (e *AuditLogEntry) RecordedAt() time.Time {
	return e.recordedAt
}

func (e *AuditLogEntry) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	e.id = id
	return nil
}

func (e *AuditLogEntry) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	e.orderID = orderID
	return nil
}

func (e *AuditLogEntry) setActor(actor string) error {
	if actor == "" {
		return errs.NewValueIsRequiredError("actor")
	}
	e.actor = actor
	return nil
}

func (e *AuditLogEntry) setAction(action ActionType) error {
	if err := action.Validate(); err != nil {
		return err
	}
	e.action = action
	return nil
}
