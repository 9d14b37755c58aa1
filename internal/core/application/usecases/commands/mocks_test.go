package commands_test

import (
	"context"
	"testing"
	"time"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockDeliveryRepository struct{ mock.Mock }

func (m *MockDeliveryRepository) Add(ctx context.Context, d *delivery.Delivery) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDeliveryRepository) Update(ctx context.Context, d *delivery.Delivery) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDeliveryRepository) Assign(ctx context.Context, d *delivery.Delivery) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDeliveryRepository) Get(ctx context.Context, orderID string) (*delivery.Delivery, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*delivery.Delivery), args.Error(1)
}

func (m *MockDeliveryRepository) GetAll(ctx context.Context) ([]*delivery.Delivery, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*delivery.Delivery), args.Error(1)
}

func (m *MockDeliveryRepository) GetAllUnassigned(ctx context.Context) ([]*delivery.Delivery, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*delivery.Delivery), args.Error(1)
}

func (m *MockDeliveryRepository) Delete(ctx context.Context, orderID string) error {
	args := m.Called(ctx, orderID)
	return args.Error(0)
}

type MockDriverDirectory struct{ mock.Mock }

func (m *MockDriverDirectory) DriversByCity(ctx context.Context, city string) ([]driver.Driver, error) {
	args := m.Called(ctx, city)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]driver.Driver), args.Error(1)
}

type MockDriverWorkload struct{ mock.Mock }

func (m *MockDriverWorkload) IncompleteTaskCount(ctx context.Context, driverID string) (int, error) {
	args := m.Called(ctx, driverID)
	return args.Int(0), args.Error(1)
}

type MockDispatchNotifier struct{ mock.Mock }

func (m *MockDispatchNotifier) Submit(ctx context.Context, task driver.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

type MockDeliveryAssigner struct{ mock.Mock }

func (m *MockDeliveryAssigner) Handle(ctx context.Context, cmd commands.AssignDriverCommand) error {
	args := m.Called(ctx, cmd)
	return args.Error(0)
}

// noopMetrics satisfies commands.SweepMetrics for tests that do not assert
// on instrumentation.
type noopMetrics struct{}

func (noopMetrics) SweepStarted()                        {}
func (noopMetrics) AssignmentResult(string)              {}
func (noopMetrics) SetUnassignedBacklog(int)             {}
func (noopMetrics) SetOldestUnassignedAge(time.Duration) {}

func testAddress(t *testing.T) kernel.Address {
	t.Helper()
	addr, err := kernel.NewAddress("12 Galle Rd", "Colombo", "Western", "00300")
	require.NoError(t, err)
	return addr
}

func newUnassignedDelivery(t *testing.T, orderID string) *delivery.Delivery {
	t.Helper()
	d, err := delivery.NewDelivery(
		orderID, "U1", "Alice", "+94111234567", "R1",
		testAddress(t),
		[]string{"Burger x2", "Fries x1"},
		21.50,
		time.Date(2025, 6, 1, 14, 30, 15, 0, time.UTC),
	)
	require.NoError(t, err)
	return d
}

func newAssignedDelivery(t *testing.T, orderID string) *delivery.Delivery {
	t.Helper()
	d := newUnassignedDelivery(t, orderID)
	require.NoError(t, d.Assign("D1", "Bob", "+94770000000"))
	return d
}
