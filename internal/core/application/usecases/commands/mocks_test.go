package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"sitebuilder/internal/core/application/usecases/commands"
	"sitebuilder/internal/core/domain/model/actor"
	"sitebuilder/internal/core/domain/model/customer"
	"sitebuilder/internal/core/domain/model/kernel"
	"sitebuilder/internal/core/domain/model/order"
	"sitebuilder/internal/core/ports"

	"github.com/shopspring/decimal"
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

func (m *MockOrderRepository) GetAllPastDue(ctx context.Context, asOf time.Time) ([]*order.Order, error) {
	args := m.Called(ctx, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockCustomerRepository struct{ mock.Mock }

func (m *MockCustomerRepository) Add(ctx context.Context, c *customer.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCustomerRepository) Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customer.Customer), args.Error(1)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) CustomerRepository() ports.CustomerRepository {
	args := m.Called()
	return args.Get(0).(ports.CustomerRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
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

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockPaymentProcessor struct{ mock.Mock }

func (m *MockPaymentProcessor) CreateIntent(
	ctx context.Context,
	cust *customer.Customer,
	plan order.Plan,
	amount decimal.Decimal,
) (ports.PaymentIntent, error) {
	args := m.Called(ctx, cust, plan, amount)
	return args.Get(0).(ports.PaymentIntent), args.Error(1)
}

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) NotifyStatusChanged(ctx context.Context, notification ports.StatusNotification) error {
	args := m.Called(ctx, notification)
	return args.Error(0)
}

type MockBlobStore struct{ mock.Mock }

func (m *MockBlobStore) Store(ctx context.Context, orderID, filename string, data []byte) (string, error) {
	args := m.Called(ctx, orderID, filename, data)
	return args.String(0), args.Error(1)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func validRequirements(t *testing.T) order.Requirements {
	t.Helper()
	reqs, err := order.NewRequirements(
		"Acme Site", "landing page", "home, about", "blue", "",
		order.ContactInfo{Name: "Jane Doe", Email: "jane@example.com"},
	)
	require.NoError(t, err)
	return reqs
}

func adminActor(t *testing.T) actor.Actor {
	t.Helper()
	a, err := actor.NewActor(kernel.NewUUID(), actor.RoleAdmin)
	require.NoError(t, err)
	return a
}

func customerActor(t *testing.T) actor.Actor {
	t.Helper()
	a, err := actor.NewActor(kernel.NewUUID(), actor.RoleCustomer)
	require.NoError(t, err)
	return a
}

func storedOrder(t *testing.T, ownerID kernel.UUID) *order.Order {
	t.Helper()
	o, err := order.NewOrder(
		kernel.NewUUID(), ownerID, order.PlanStarter, validRequirements(t),
		"pi_test", order.MethodCard, time.Now().UTC(),
	)
	require.NoError(t, err)
	return o
}

func storedCustomer(t *testing.T, id kernel.UUID) *customer.Customer {
	t.Helper()
	c, err := customer.NewCustomer(id, "Jane Doe", "jane@example.com")
	require.NoError(t, err)
	return c
}
