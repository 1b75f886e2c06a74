package commands_test

import (
	"context"
	"testing"

	"orderdesk/internal/core/application/usecases/commands"
	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/domain/model/trail"
	"orderdesk/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllInStatus(ctx context.Context, status order.Status) ([]*order.Order, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockStatusHistoryRepository struct{ mock.Mock }

func (m *MockStatusHistoryRepository) Append(ctx context.Context, entry *trail.StatusHistoryEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockStatusHistoryRepository) GetAllForOrder(ctx context.Context, orderID kernel.UUID) ([]*trail.StatusHistoryEntry, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*trail.StatusHistoryEntry), args.Error(1)
}

type MockAuditLogRepository struct{ mock.Mock }

func (m *MockAuditLogRepository) Append(ctx context.Context, entry *trail.AuditLogEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockAuditLogRepository) GetAllForOrder(ctx context.Context, orderID kernel.UUID) ([]*trail.AuditLogEntry, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*trail.AuditLogEntry), args.Error(1)
}

type MockSequenceCounter struct{ mock.Mock }

func (m *MockSequenceCounter) Next(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockOrderUoW) StatusHistoryRepository() ports.StatusHistoryRepository {
	args := m.Called()
	return args.Get(0).(ports.StatusHistoryRepository)
}

func (m *MockOrderUoW) AuditLogRepository() ports.AuditLogRepository {
	args := m.Called()
	return args.Get(0).(ports.AuditLogRepository)
}

type MockUoW struct{ MockOrderUoW }

func (m *MockUoW) SequenceCounter() ports.SequenceCounter {
	args := m.Called()
	return args.Get(0).(ports.SequenceCounter)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

func makeStoredLine(t *testing.T, orderNumber string, lineNumber int) *order.Line {
	t.Helper()

	line, err := order.NewLine(
		kernel.NewUUID(), orderNumber, lineNumber, "CUST-SKU-1", "5", "EA", "12.50")
	require.NoError(t, err)
	return line
}

// makeStoredOrder builds an exportable order and walks it to the target
// status through the regular transitions.
func makeStoredOrder(t *testing.T, status order.Status) *order.Order {
	t.Helper()

	shipTo := order.ShipTo{Line1: "100 Main St", City: "Denver", State: "CO"}
	lines := []*order.Line{
		makeStoredLine(t, "PO-1001", 1),
		makeStoredLine(t, "PO-1001", 2),
	}
	o, err := order.NewOrder(kernel.NewUUID(), "PO-1001", "ACME", shipTo, lines)
	require.NoError(t, err)
	require.NoError(t, o.SetCarrier("UPS"))

	if status == order.Pending {
		return o
	}

	require.NoError(t, o.BeginReview())
	require.NoError(t, o.AssignSequence(2000001))
	if status == order.UnderReview {
		return o
	}

	if status == order.Cancelled {
		require.NoError(t, o.Cancel("jdoe", o.UpdatedAt(), "customer asked to cancel"))
		return o
	}

	require.NoError(t, o.MarkValidated())
	if status == order.Validated {
		return o
	}

	require.NoError(t, o.MarkExported("jdoe", o.UpdatedAt()))
	if status == order.Exported {
		return o
	}

	require.NoError(t, o.MarkErpProcessed())
	return o
}
