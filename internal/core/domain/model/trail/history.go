// Package trail provides the append-only traceability records written next to
// every order mutation: status-history entries for lifecycle transitions and
// audit-log entries for all tracked field changes.
//
// Both record types are write-once. Nothing in this codebase exposes an
// update or delete operation on them; the invariant is enforced at the
// interface level, not by convention.
package trail

import (
	"errors"
	"time"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/pkg/errs"
)

// ErrStatusHistoryEntryIsNotConstructed is returned when an entry was not
// created through NewStatusHistoryEntry.
var ErrStatusHistoryEntryIsNotConstructed = errors.New(
	"StatusHistoryEntry must be created via NewStatusHistoryEntry")

// StatusHistoryEntry records a single lifecycle transition: which order
// entered which status, who triggered it, and when. One entry is written per
// transition, including the initial creation entry.
type StatusHistoryEntry struct {
	id         kernel.UUID
	orderID    kernel.UUID
	statusCode string
	actor      string
	note       string
	recordedAt time.Time

	isConstructed bool
}

// NewStatusHistoryEntry creates a status-history record. The status code is
// the persisted two-digit form ("01".."06"); the note is optional.
func NewStatusHistoryEntry(
	id kernel.UUID,
	orderID kernel.UUID,
	statusCode string,
	actor string,
	note string,
	recordedAt time.Time,
) (*StatusHistoryEntry, error) {
	entry := &StatusHistoryEntry{
		note:          note,
		recordedAt:    recordedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		entry.setID(id),
		entry.setOrderID(orderID),
		entry.setStatusCode(statusCode),
		entry.setActor(actor),
	); err != nil {
		return nil, err
	}

	return entry, nil
}

// Validate ensures the entry was created through NewStatusHistoryEntry.
func (e *StatusHistoryEntry) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrStatusHistoryEntryIsNotConstructed
	}
	return nil
}

// ID returns the entry's unique identifier.
func (e *StatusHistoryEntry) ID() kernel.UUID {
	return e.id
}

// OrderID returns the identifier of the order the entry belongs to.
func (e *StatusHistoryEntry) OrderID() kernel.UUID {
	return e.orderID
}

// StatusCode returns the two-digit status code the order entered.
func (e *StatusHistoryEntry) StatusCode() string {
	return e.statusCode
}

// Actor returns who triggered the transition.
func (e *StatusHistoryEntry) Actor() string {
	return e.actor
}

// Note returns the optional free-text note attached to the transition.
func (e *StatusHistoryEntry) Note() string {
	return e.note
}

// RecordedAt returns when the transition happened.
func (e *StatusHistoryEntry) RecordedAt() time.Time {
	return e.recordedAt
}

func (e *StatusHistoryEntry) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	e.id = id
	return nil
}

func (e *StatusHistoryEntry) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	e.orderID = orderID
	return nil
}

func (e *StatusHistoryEntry) setStatusCode(statusCode string) error {
	if statusCode == "" {
		return errs.NewValueIsRequiredError("status code")
	}
	e.statusCode = statusCode
	return nil
}

func (e *StatusHistoryEntry) setActor(actor string) error {
	if actor == "" {
		return errs.NewValueIsRequiredError("actor")
	}
	e.actor = actor
	return nil
}
