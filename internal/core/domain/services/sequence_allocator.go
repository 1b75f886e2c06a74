package services

import (
	"context"
	"errors"
	"fmt"

	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/pkg/errs"
)

// ErrAllocationFailed is returned when the sequence counter increment could
// not be persisted. The whole AssignIfAbsent call is safe to retry.
var ErrAllocationFailed = errors.New("sequence allocation failed")

// AllocationFailedError wraps the store failure that prevented the counter
// increment. No sequence number is consumed when it is returned.
type AllocationFailedError struct {
	Cause error
}

// NewAllocationFailedError creates an AllocationFailedError with the
// underlying store failure.
func NewAllocationFailedError(cause error) *AllocationFailedError {
	return &AllocationFailedError{Cause: cause}
}

// Error implements the error interface.
func (e *AllocationFailedError) Error() string {
	return fmt.Sprintf("%s (cause: %s)", ErrAllocationFailed, e.Cause)
}

// Unwrap allows errors.Is to match ErrAllocationFailed.
func (e *AllocationFailedError) Unwrap() error {
	return ErrAllocationFailed
}

// SequenceCounter is the single store operation the allocator depends on:
// atomically increment the shared counter and return the new value. The
// increment must happen in one statement on the store side; a read-modify-
// write split across round trips would let two concurrent callers issue the
// same number.
type SequenceCounter interface {
	Next(ctx context.Context) (int64, error)
}

// SequenceAllocator assigns the ERP sequence number to an order exactly
// once. Numbers are issued in increasing order, are never reused, and
// survive cancellation.
type SequenceAllocator struct {
	counter SequenceCounter
}

// NewSequenceAllocator creates a SequenceAllocator backed by the given
// counter.
func NewSequenceAllocator(counter SequenceCounter) (SequenceAllocator, error) {
	if counter == nil {
		return SequenceAllocator{}, errs.NewValueIsRequiredError("counter")
	}
	return SequenceAllocator{counter: counter}, nil
}

// AllocateNext consumes the next number from the counter. The increment is
// one atomic statement on the store side, so concurrent callers never
// receive the same value. A counter failure surfaces as
// *AllocationFailedError and consumes no number.
func (a SequenceAllocator) AllocateNext(ctx context.Context) (int64, error) {
	next, err := a.counter.Next(ctx)
	if err != nil {
		return 0, NewAllocationFailedError(err)
	}
	return next, nil
}

// AssignIfAbsent gives the order a sequence number if it does not already
// carry one. It returns the order's number and whether this call allocated
// it.
//
// The check-then-allocate split makes the call idempotent: a retry on an
// order that already got its number returns that number without touching
// the counter. A counter failure surfaces as *AllocationFailedError with
// the order unchanged.
func (a SequenceAllocator) AssignIfAbsent(ctx context.Context, o *order.Order) (int64, bool, error) {
	if err := o.Validate(); err != nil {
		return 0, false, err
	}

	if o.SequenceNumber() != nil {
		return *o.SequenceNumber(), false, nil
	}

	next, err := a.AllocateNext(ctx)
	if err != nil {
		return 0, false, err
	}

	if err := o.AssignSequence(next); err != nil {
		return 0, false, err
	}

	return next, true, nil
}
