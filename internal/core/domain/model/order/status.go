package order

import (
	"errors"
	"fmt"

	"orderdesk/internal/pkg/errs"
)

// ErrInvalidTransition is the sentinel for illegal lifecycle transitions.
// Use errors.Is to classify; the concrete *InvalidTransitionError carries the
// current state and the requested trigger.
var ErrInvalidTransition = errors.New("invalid status transition")

// InvalidTransitionError reports a lifecycle trigger invoked from a state
// that does not allow it. The order is left unchanged when this is returned.
type InvalidTransitionError struct {
	From    Status
	Trigger string
}

// NewInvalidTransitionError creates an InvalidTransitionError for the given
// current state and requested trigger.
func NewInvalidTransitionError(from Status, trigger string) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, Trigger: trigger}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid status transition: cannot %q from %q", e.Trigger, e.From.String())
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions so orders follow
// the review-and-export workflow:
//
//	Pending ──> UnderReview ──> Validated ──> Exported ──> ErpProcessed
//	                 │  ▲           │             │
//	                 │  └───────────┼─────────────┤ (restore)
//	                 └──────────────┴──> Cancelled┘ (cancel)
//
// Status values are persisted as two-digit string codes ("01".."06"); that
// encoding is a stored contract shared with other readers of the same
// database and must never change.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of a freshly ingested order that no
	// reviewer has opened yet. Persisted code "01".
	Pending

	// UnderReview indicates a reviewer has opened the order; the sequence
	// number is assigned on entry to this state. Persisted code "02".
	UnderReview

	// Validated indicates the order passed all export-readiness checks.
	// Persisted code "03".
	Validated

	// Exported indicates the export document has been generated and handed
	// downstream. Persisted code "04".
	Exported

	// ErpProcessed indicates the downstream ERP acknowledged the order.
	// Not expected to be further mutated by this engine. Persisted code "05".
	ErpProcessed

	// Cancelled indicates a reviewer cancelled the order. The only legal
	// follow-up transition is an explicit restore. Persisted code "06".
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:      "Unknown",
		Pending:      "Pending",
		UnderReview:  "UnderReview",
		Validated:    "Validated",
		Exported:     "Exported",
		ErpProcessed: "ErpProcessed",
		Cancelled:    "Cancelled",
	}
}

func getStatusCodes() map[Status]string {
	//nolint:exhaustive // Unknown has no persisted code on purpose
	return map[Status]string{
		Pending:      "01",
		UnderReview:  "02",
		Validated:    "03",
		Exported:     "04",
		ErpProcessed: "05",
		Cancelled:    "06",
	}
}

// StatusFromCode converts a persisted two-digit code back into a Status.
// Returns an error for codes outside "01".."06".
func StatusFromCode(code string) (Status, error) {
	for status, c := range getStatusCodes() {
		if c == code {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status code",
		fmt.Errorf("%q is not a known status code", code),
	)
}

// Validate checks that the Status is one of the six lifecycle states.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getStatusCodes()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%d is not a valid status", s),
		)
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer; safe to call on any value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Code returns the persisted two-digit string code for the status.
// Returns an empty string for invalid statuses; persist only after Validate.
func (s Status) Code() string {
	return getStatusCodes()[s]
}

// BeginReview transitions the status to UnderReview.
//
// Valid transitions:
//   - Pending -> UnderReview (reviewer opened the order)
//
// Opening an order that is already past Pending is handled by the caller as
// an idempotent no-op; invoking this method from any state other than
// Pending returns an InvalidTransitionError.
func (s Status) BeginReview() (Status, error) {
	if s != Pending {
		return Unknown, NewInvalidTransitionError(s, "open")
	}
	return UnderReview, nil
}

// MarkValidated transitions the status to Validated.
//
// Valid transitions:
//   - UnderReview -> Validated (export-readiness checks passed)
func (s Status) MarkValidated() (Status, error) {
	if s != UnderReview {
		return Unknown, NewInvalidTransitionError(s, "validate")
	}
	return Validated, nil
}

// MarkExported transitions the status to Exported.
//
// Valid transitions:
//   - Validated -> Exported (export document generated)
func (s Status) MarkExported() (Status, error) {
	if s != Validated {
		return Unknown, NewInvalidTransitionError(s, "export")
	}
	return Exported, nil
}

// MarkErpProcessed transitions the status to ErpProcessed.
//
// Valid transitions:
//   - Exported -> ErpProcessed (downstream ERP acknowledged the order)
func (s Status) MarkErpProcessed() (Status, error) {
	if s != Exported {
		return Unknown, NewInvalidTransitionError(s, "confirm-erp")
	}
	return ErpProcessed, nil
}

// Cancel transitions the status to Cancelled.
//
// Valid transitions:
//   - UnderReview -> Cancelled
//   - Validated -> Cancelled
//   - Exported -> Cancelled
//
// Pending orders cannot be cancelled before a reviewer has opened them, and
// ErpProcessed orders are owned by the ERP from that point on.
func (s Status) Cancel() (Status, error) {
	if s != UnderReview && s != Validated && s != Exported {
		return Unknown, NewInvalidTransitionError(s, "cancel")
	}
	return Cancelled, nil
}

// Restore transitions the status back to UnderReview.
//
// Valid transitions:
//   - Cancelled -> UnderReview (reviewer restored a cancelled order)
func (s Status) Restore() (Status, error) {
	if s != Cancelled {
		return Unknown, NewInvalidTransitionError(s, "restore")
	}
	return UnderReview, nil
}
