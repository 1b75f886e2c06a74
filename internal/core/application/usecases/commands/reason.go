package commands

import (
	"errors"
	"fmt"
	"strings"

	"orderdesk/internal/pkg/errs"
)

// DefaultMinReasonLength is the minimum trimmed reason length required to
// cancel or restore an order.
const DefaultMinReasonLength = 10

var (
	// ErrReasonTooShort is returned when the trimmed reason does not reach
	// the policy's minimum length.
	ErrReasonTooShort = errors.New("reason is too short")

	// ErrConfirmationRequired is returned when the explicit confirmation
	// flag was not set alongside the reason.
	ErrConfirmationRequired = errors.New("explicit confirmation flag must be set")
)

// ReasonTooShortError reports the minimum length the reason failed to meet.
type ReasonTooShortError struct {
	MinLength int
}

// NewReasonTooShortError creates a ReasonTooShortError for the given
// minimum length.
func NewReasonTooShortError(minLength int) *ReasonTooShortError {
	return &ReasonTooShortError{MinLength: minLength}
}

// Error implements the error interface.
func (e *ReasonTooShortError) Error() string {
	return fmt.Sprintf("reason must be at least %d characters after trimming", e.MinLength)
}

// Unwrap allows errors.Is to match ErrReasonTooShort.
func (e *ReasonTooShortError) Unwrap() error {
	return ErrReasonTooShort
}

// ReasonPolicy enforces the reason-capture rules shared by cancel and
// restore: a trimmed free-text reason of at least the minimum length plus an
// explicit confirmation flag. One policy serves both directions; the
// symmetry is deliberate and must not drift into two independent rule sets.
type ReasonPolicy struct {
	minLength int
}

// NewReasonPolicy creates a policy with the given minimum trimmed reason
// length.
func NewReasonPolicy(minLength int) (ReasonPolicy, error) {
	if minLength <= 0 {
		return ReasonPolicy{}, errs.NewValueIsInvalidErrorWithCause(
			"minimum reason length",
			fmt.Errorf("%d is not greater than 0", minLength),
		)
	}
	return ReasonPolicy{minLength: minLength}, nil
}

// DefaultReasonPolicy returns the policy with the standard minimum length.
func DefaultReasonPolicy() ReasonPolicy {
	return ReasonPolicy{minLength: DefaultMinReasonLength}
}

// MinLength returns the policy's minimum trimmed reason length.
func (p ReasonPolicy) MinLength() int {
	return p.minLength
}

// Check validates the reason and confirmation flag together. Both failures
// are reported at once when both apply.
func (p ReasonPolicy) Check(reason string, confirmed bool) error {
	var reasonErr, confirmErr error
	if len(strings.TrimSpace(reason)) < p.minLength {
		reasonErr = NewReasonTooShortError(p.minLength)
	}
	if !confirmed {
		confirmErr = ErrConfirmationRequired
	}
	return errors.Join(reasonErr, confirmErr)
}
