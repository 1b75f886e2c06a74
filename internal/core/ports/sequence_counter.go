package ports

import (
	"context"
)

// SequenceCounter defines the atomic counter behind sequence allocation.
// Next must increment and read in a single store-side statement so two
// concurrent callers can never observe the same value. It satisfies
// services.SequenceCounter.
type SequenceCounter interface {
	// Next atomically increments the shared counter and returns the new
	// value.
	Next(ctx context.Context) (int64, error)
}
