package commands_test

import (
	"context"
	"testing"

	"printshop/internal/adapters/out/memory"
	"printshop/internal/core/application/usecases/commands"
	"printshop/internal/core/domain/model/order"
	"printshop/internal/core/domain/model/settings"
	"printshop/internal/core/domain/services"
	"printshop/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCatalog struct{ mock.Mock }

func (m *MockCatalog) GetUser(ctx context.Context, username string) (order.UserSnapshot, error) {
	args := m.Called(ctx, username)
	return args.Get(0).(order.UserSnapshot), args.Error(1)
}

func (m *MockCatalog) GetMaterial(ctx context.Context, name string) (order.MaterialSnapshot, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(order.MaterialSnapshot), args.Error(1)
}

func (m *MockCatalog) StockGrams(ctx context.Context, material string) (int, error) {
	args := m.Called(ctx, material)
	return args.Int(0), args.Error(1)
}

func (m *MockCatalog) Consume(ctx context.Context, material string, grams int) error {
	args := m.Called(ctx, material, grams)
	return args.Error(0)
}

type MockStateRepository struct{ mock.Mock }

func (m *MockStateRepository) Save(ctx context.Context, snapshot ports.StateSnapshot) (ports.SaveSummary, error) {
	args := m.Called(ctx, snapshot)
	return args.Get(0).(ports.SaveSummary), args.Error(1)
}

func (m *MockStateRepository) Load(ctx context.Context) (ports.StateSnapshot, ports.LoadSummary, error) {
	args := m.Called(ctx)
	return args.Get(0).(ports.StateSnapshot), args.Get(1).(ports.LoadSummary), args.Error(2)
}

func maria() order.UserSnapshot {
	return order.NewUserSnapshot("maria", "maria@example.com", order.RoleCustomer)
}

func pla() order.MaterialSnapshot {
	return order.NewMaterialSnapshot("PLA", decimal.RequireFromString("0.05"), 210, "white")
}

func storedOrder(t *testing.T, id order.ID) *order.Order {
	t.Helper()
	o, err := order.NewOrder(id, maria(), pla(), "20x20x10mm", 1, "", 0.4)
	require.NoError(t, err)
	return o
}

type submitFixture struct {
	catalog *MockCatalog
	store   *memory.OrderManager
	ids     *order.IDGenerator
	config  *settings.Store
	handler *commands.SubmitOrderCommandHandler
}

func newSubmitFixture() *submitFixture {
	f := &submitFixture{
		catalog: new(MockCatalog),
		store:   memory.NewOrderManager(),
		ids:     order.NewIDGenerator(1000),
		config:  settings.NewStore(settings.Default()),
	}
	f.handler = commands.NewSubmitOrderCommandHandler(
		f.catalog,
		f.store,
		f.ids,
		services.NewPrintTimeEstimator(),
		services.NewPricingEngine(),
		f.config,
	)
	return f
}
