package services

import (
	"errors"
	"fmt"
	"strings"

	"orderdesk/internal/core/domain/model/order"
)

// ErrValidationFailed is returned when the export validator reported one or
// more failing checks. Use errors.Is to detect it and errors.As with
// *ValidationFailedError to read the full reason list.
var ErrValidationFailed = errors.New("export validation failed")

// ValidationFailedError carries every reason the validator collected, in
// check order. Callers surface the whole list to the reviewer, not just the
// first failure.
type ValidationFailedError struct {
	Reasons []string
}

// NewValidationFailedError creates a ValidationFailedError from the
// validator's reason list.
func NewValidationFailedError(reasons []string) *ValidationFailedError {
	return &ValidationFailedError{Reasons: reasons}
}

// Error implements the error interface.
func (e *ValidationFailedError) Error() string {
	return fmt.Sprintf("%s: %s", ErrValidationFailed, strings.Join(e.Reasons, "; "))
}

// Unwrap allows errors.Is to match ErrValidationFailed.
func (e *ValidationFailedError) Unwrap() error {
	return ErrValidationFailed
}

// ValidationResult is the outcome of one validator run: pass/fail plus the
// ordered reasons for each failed check.
type ValidationResult struct {
	reasons []string
}

// Passed reports whether every check succeeded.
func (r ValidationResult) Passed() bool {
	return len(r.reasons) == 0
}

// Reasons returns the human-readable failure reasons in check order. Empty
// when the result passed.
func (r ValidationResult) Reasons() []string {
	return r.reasons
}

// AsError converts a failing result into a *ValidationFailedError, or nil
// when the result passed.
func (r ValidationResult) AsError() error {
	if r.Passed() {
		return nil
	}
	return NewValidationFailedError(r.reasons)
}

// ExportValidator decides whether an order is ready for export. It reads the
// order snapshot it is given and mutates nothing; running it twice on the
// same order yields the same result.
//
// Checks, all of which must pass:
//   - ship-to address has a non-empty line 1, city, and state
//   - a carrier is selected
//   - the order has at least one active line
//
// A missing mapped SKU on a line is deliberately not a blocking condition;
// it is visibility-only information for the reviewer.
type ExportValidator struct{}

// NewExportValidator creates a new ExportValidator instance.
func NewExportValidator() ExportValidator {
	return ExportValidator{}
}

// Validate runs every check against the order and returns the collected
// result. An error is returned only for an order that was not constructed
// through its factory.
func (v ExportValidator) Validate(o *order.Order) (ValidationResult, error) {
	if err := o.Validate(); err != nil {
		return ValidationResult{}, err
	}

	var reasons []string

	shipTo := o.ShipTo()
	if strings.TrimSpace(shipTo.Line1) == "" {
		reasons = append(reasons, "ship-to address line 1 is missing")
	}
	if strings.TrimSpace(shipTo.City) == "" {
		reasons = append(reasons, "ship-to city is missing")
	}
	if strings.TrimSpace(shipTo.State) == "" {
		reasons = append(reasons, "ship-to state is missing")
	}

	if o.Carrier() == nil || strings.TrimSpace(*o.Carrier()) == "" {
		reasons = append(reasons, "no carrier is selected")
	}

	if len(o.ActiveLines()) == 0 {
		reasons = append(reasons, "order has no active lines")
	}

	return ValidationResult{reasons: reasons}, nil
}
