package services_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCounter struct {
	value int64
	calls int64
	err   error
}

func (c *fakeCounter) Next(_ context.Context) (int64, error) {
	atomic.AddInt64(&c.calls, 1)
	if c.err != nil {
		return 0, c.err
	}
	return atomic.AddInt64(&c.value, 1), nil
}

func makeOrderWithoutSequence(t *testing.T, orderNumber string) *order.Order {
	t.Helper()

	shipTo := order.ShipTo{Line1: "100 Main St", City: "Denver", State: "CO"}
	o, err := order.NewOrder(kernel.NewUUID(), orderNumber, "ACME", shipTo,
		[]*order.Line{makeLine(t, orderNumber, 1, "5", "12.50")})
	require.NoError(t, err)
	return o
}

func TestNewSequenceAllocator(t *testing.T) {
	t.Run("should create allocator with counter", func(t *testing.T) {
		_, err := services.NewSequenceAllocator(&fakeCounter{})

		assert.NoError(t, err)
	})

	t.Run("should fail without counter", func(t *testing.T) {
		_, err := services.NewSequenceAllocator(nil)

		assert.Error(t, err)
	})
}

func TestSequenceAllocator_AllocateNext(t *testing.T) {
	t.Run("should return increasing numbers from the counter", func(t *testing.T) {
		counter := &fakeCounter{value: 2000000}
		allocator, err := services.NewSequenceAllocator(counter)
		require.NoError(t, err)

		first, err := allocator.AllocateNext(context.Background())
		require.NoError(t, err)
		second, err := allocator.AllocateNext(context.Background())
		require.NoError(t, err)

		assert.Equal(t, int64(2000001), first)
		assert.Equal(t, int64(2000002), second)
	})

	t.Run("should wrap counter failures", func(t *testing.T) {
		counter := &fakeCounter{err: errors.New("connection reset")}
		allocator, err := services.NewSequenceAllocator(counter)
		require.NoError(t, err)

		_, err = allocator.AllocateNext(context.Background())

		require.ErrorIs(t, err, services.ErrAllocationFailed)
		var allocationErr *services.AllocationFailedError
		require.ErrorAs(t, err, &allocationErr)
	})
}

func TestSequenceAllocator_AssignIfAbsent(t *testing.T) {
	t.Run("should allocate the next number for a fresh order", func(t *testing.T) {
		counter := &fakeCounter{value: 2000000}
		allocator, err := services.NewSequenceAllocator(counter)
		require.NoError(t, err)
		o := makeOrderWithoutSequence(t, "PO-3001")

		number, allocated, err := allocator.AssignIfAbsent(context.Background(), o)

		require.NoError(t, err)
		assert.True(t, allocated)
		assert.Equal(t, int64(2000001), number)
		require.NotNil(t, o.SequenceNumber())
		assert.Equal(t, int64(2000001), *o.SequenceNumber())
	})

	t.Run("should be idempotent on retry", func(t *testing.T) {
		counter := &fakeCounter{}
		allocator, err := services.NewSequenceAllocator(counter)
		require.NoError(t, err)
		o := makeOrderWithoutSequence(t, "PO-3002")

		first, allocated, err := allocator.AssignIfAbsent(context.Background(), o)
		require.NoError(t, err)
		require.True(t, allocated)

		second, allocated, err := allocator.AssignIfAbsent(context.Background(), o)
		require.NoError(t, err)

		assert.False(t, allocated)
		assert.Equal(t, first, second)
		assert.Equal(t, int64(1), counter.calls)
	})

	t.Run("should leave the order unchanged on counter failure", func(t *testing.T) {
		counter := &fakeCounter{err: errors.New("connection reset")}
		allocator, err := services.NewSequenceAllocator(counter)
		require.NoError(t, err)
		o := makeOrderWithoutSequence(t, "PO-3003")

		_, allocated, err := allocator.AssignIfAbsent(context.Background(), o)

		require.ErrorIs(t, err, services.ErrAllocationFailed)
		var allocationErr *services.AllocationFailedError
		require.ErrorAs(t, err, &allocationErr)
		assert.False(t, allocated)
		assert.Nil(t, o.SequenceNumber())
	})

	t.Run("should issue distinct numbers to concurrent fresh orders", func(t *testing.T) {
		const n = 50

		counter := &fakeCounter{}
		allocator, err := services.NewSequenceAllocator(counter)
		require.NoError(t, err)

		orders := make([]*order.Order, n)
		for i := range orders {
			orders[i] = makeOrderWithoutSequence(t, "PO-4000")
		}

		var wg sync.WaitGroup
		results := make([]int64, n)
		for i := range orders {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				number, _, err := allocator.AssignIfAbsent(context.Background(), orders[i])
				assert.NoError(t, err)
				results[i] = number
			}(i)
		}
		wg.Wait()

		seen := make(map[int64]bool, n)
		for _, number := range results {
			assert.False(t, seen[number], "number %d issued twice", number)
			seen[number] = true
		}
		assert.Len(t, seen, n)
	})

	t.Run("should fail for an unconstructed order", func(t *testing.T) {
		allocator, err := services.NewSequenceAllocator(&fakeCounter{})
		require.NoError(t, err)

		var o order.Order
		_, _, err = allocator.AssignIfAbsent(context.Background(), &o)

		assert.Equal(t, order.ErrOrderIsNotConstructed, err)
	})
}
