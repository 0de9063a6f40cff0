package services_test

import (
	"testing"

	"printshop/internal/core/domain/model/order"
	"printshop/internal/core/domain/model/settings"
	"printshop/internal/core/domain/services"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pla() order.MaterialSnapshot {
	return order.NewMaterialSnapshot("PLA", decimal.RequireFromString("0.05"), 210, "white")
}

func customer(role string) order.UserSnapshot {
	return order.NewUserSnapshot("maria", "maria@example.com", role)
}

func priceOrder(t *testing.T, role string, quantity int, hours float64, priority order.Priority) *order.Order {
	t.Helper()
	o, err := order.NewOrder(1, customer(role), pla(), "20x20x20mm", quantity, "", hours)
	require.NoError(t, err)
	require.NoError(t, o.SetPriority(priority))
	return o
}

func estimatedOrder(t *testing.T, role string, quantity int, priority order.Priority) *order.Order {
	t.Helper()
	hours := services.NewPrintTimeEstimator().EstimateHours("20x20x20mm", quantity)
	return priceOrder(t, role, quantity, hours, priority)
}

func assertDecimal(t *testing.T, name string, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, decimal.RequireFromString(want).Equal(got), "%s = %s, want %s", name, got, want)
}

func TestPricingEngine_Calculate(t *testing.T) {
	engine := services.NewPricingEngine()
	cfg := settings.Default()

	t.Run("material cost uses ten grams per item", func(t *testing.T) {
		// Given
		o := priceOrder(t, order.RoleCustomer, 2, 0.8, order.Normal)

		// When
		b := engine.Calculate(o, cfg)

		// Then
		assertDecimal(t, "material", "1.00", b.MaterialCost)
	})

	t.Run("regular order", func(t *testing.T) {
		o := priceOrder(t, order.RoleCustomer, 2, 0.8, order.Normal)

		b := engine.Calculate(o, cfg)

		assertDecimal(t, "process", "7.096", b.ProcessCost)
		assertDecimal(t, "subtotal", "8.096", b.Subtotal)
		assertDecimal(t, "bulk", "0", b.BulkDiscount)
		assertDecimal(t, "vip", "0", b.VIPDiscount)
		assertDecimal(t, "rush", "0", b.RushSurcharge)
		assertDecimal(t, "tax", "0.64768", b.Tax)
		assertDecimal(t, "total", "8.74368", b.Total)
		assert.Equal(t, "8.74 USD", b.Display())
	})

	t.Run("vip discount applies before tax", func(t *testing.T) {
		regular := engine.Calculate(priceOrder(t, order.RoleCustomer, 2, 0.8, order.Normal), cfg)
		vip := engine.Calculate(priceOrder(t, "VIP", 2, 0.8, order.Normal), cfg)

		assertDecimal(t, "vip discount", "-0.8096", vip.VIPDiscount)
		assertDecimal(t, "vip total", "7.869312", vip.Total)
		assertDecimal(t, "ratio", "0.9", vip.Total.Div(regular.Total))
	})

	t.Run("rush surcharge", func(t *testing.T) {
		b := engine.Calculate(priceOrder(t, order.RoleCustomer, 2, 0.8, order.Rush), cfg)

		assertDecimal(t, "rush", "2.024", b.RushSurcharge)
		assertDecimal(t, "total", "10.9296", b.Total)
	})

	t.Run("vip priority alone does not add a surcharge", func(t *testing.T) {
		b := engine.Calculate(priceOrder(t, order.RoleCustomer, 2, 0.8, order.VIP), cfg)

		assertDecimal(t, "total", "8.74368", b.Total)
	})

	t.Run("bulk discount", func(t *testing.T) {
		b := engine.Calculate(priceOrder(t, order.RoleCustomer, 10, 4, order.Normal), cfg)

		assertDecimal(t, "subtotal", "20.48", b.Subtotal)
		assertDecimal(t, "bulk", "-1.024", b.BulkDiscount)
		assertDecimal(t, "total", "21.01248", b.Total)
	})

	t.Run("discounts and surcharge compose multiplicatively", func(t *testing.T) {
		b := engine.Calculate(priceOrder(t, order.RoleVIP, 10, 4, order.Rush), cfg)

		// 20.48 * 0.95 * 0.90 * 1.25 * 1.08
		assertDecimal(t, "total", "23.63904", b.Total)
	})

	t.Run("zero quantity prices process cost with tax", func(t *testing.T) {
		b := engine.Calculate(priceOrder(t, order.RoleCustomer, 0, services.MinPrintHours, order.Normal), cfg)

		assertDecimal(t, "material", "0", b.MaterialCost)
		assertDecimal(t, "total", "5.68296", b.Total)
	})

	t.Run("reads the configuration it is given", func(t *testing.T) {
		o := priceOrder(t, order.RoleCustomer, 2, 0.8, order.Rush)
		store := settings.NewStore(settings.Default())
		before := engine.Calculate(o, store.Current())

		next := settings.Default()
		next.RushOrderSurcharge = decimal.RequireFromString("0.50")
		next.Currency = "EUR"
		require.NoError(t, store.Replace(next))
		after := engine.Calculate(o, store.Current())

		assert.True(t, after.Total.GreaterThan(before.Total))
		assert.Equal(t, "EUR", after.Currency)
	})
}

func TestPricingEngine_Properties(t *testing.T) {
	engine := services.NewPricingEngine()
	cfg := settings.Default()

	t.Run("price is non decreasing in quantity", func(t *testing.T) {
		for _, priority := range []order.Priority{order.Normal, order.Rush} {
			previous := decimal.Zero
			for q := 1; q <= 50; q++ {
				total := engine.Calculate(estimatedOrder(t, order.RoleCustomer, q, priority), cfg).Total
				assert.True(t, total.GreaterThanOrEqual(previous), "quantity %d: %s < %s", q, total, previous)
				previous = total
			}
		}
	})

	t.Run("vip pays less than a customer", func(t *testing.T) {
		for _, q := range []int{1, 5, 10, 25} {
			vip := engine.Calculate(estimatedOrder(t, order.RoleVIP, q, order.Normal), cfg).Total
			regular := engine.Calculate(estimatedOrder(t, order.RoleCustomer, q, order.Normal), cfg).Total
			assert.True(t, vip.LessThan(regular), "quantity %d", q)
		}
	})

	t.Run("rush costs more than normal", func(t *testing.T) {
		for _, q := range []int{1, 5, 10, 25} {
			rush := engine.Calculate(estimatedOrder(t, order.RoleCustomer, q, order.Rush), cfg).Total
			normal := engine.Calculate(estimatedOrder(t, order.RoleCustomer, q, order.Normal), cfg).Total
			assert.True(t, rush.GreaterThan(normal), "quantity %d", q)
		}
	})

	t.Run("bulk unit price is below small order unit price", func(t *testing.T) {
		perUnit := func(q int) decimal.Decimal {
			total := engine.Calculate(estimatedOrder(t, order.RoleCustomer, q, order.Normal), cfg).Total
			return total.Div(decimal.NewFromInt(int64(q)))
		}

		for small := 1; small < services.BulkQuantityThreshold; small++ {
			for _, bulk := range []int{10, 11, 20, 30} {
				assert.True(t, perUnit(bulk).LessThan(perUnit(small)), "bulk %d vs %d", bulk, small)
			}
		}
	})
}

func TestDerivePriority(t *testing.T) {
	o, err := order.NewOrder(1, customer(order.RoleCustomer), pla(), "1x1x1", 1, "RUSH - need ASAP", 0.1)
	require.NoError(t, err)

	t.Run("rush allowed", func(t *testing.T) {
		assert.Equal(t, order.Rush, services.DerivePriority(o, settings.Default()))
	})

	t.Run("rush disabled", func(t *testing.T) {
		cfg := settings.Default()
		cfg.AllowRushOrders = false

		assert.Equal(t, order.Normal, services.DerivePriority(o, cfg))
	})

	t.Run("no rush requested", func(t *testing.T) {
		plain, err := order.NewOrder(2, customer(order.RoleCustomer), pla(), "1x1x1", 1, "gift wrap", 0.1)
		require.NoError(t, err)

		assert.Equal(t, order.Normal, services.DerivePriority(plain, settings.Default()))
	})
}
