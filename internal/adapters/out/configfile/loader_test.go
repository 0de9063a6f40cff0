package configfile_test

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"printshop/internal/adapters/out/configfile"
	"printshop/internal/core/domain/model/settings"
	"printshop/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "system_config.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("should read every known key", func(t *testing.T) {
		// Given
		path := writeConfig(t, `# pricing
electricity_cost_per_hour=0.20
machine_time_cost_per_hour=3.00
base_setup_cost=7.5
tax_rate=0.2
max_order_quantity=50
max_order_value=2500
allow_rush_orders=false
rush_order_surcharge=0.5
currency=eur
`)

		// When
		cfg, err := configfile.Load(path)

		// Then
		require.NoError(t, err)
		assert.True(t, decimal.RequireFromString("0.20").Equal(cfg.ElectricityCostPerHour))
		assert.True(t, decimal.RequireFromString("3").Equal(cfg.MachineTimeCostPerHour))
		assert.True(t, decimal.RequireFromString("7.5").Equal(cfg.BaseSetupCost))
		assert.True(t, decimal.RequireFromString("0.2").Equal(cfg.TaxRate))
		assert.True(t, decimal.RequireFromString("2500").Equal(cfg.MaxOrderValue))
		assert.True(t, decimal.RequireFromString("0.5").Equal(cfg.RushOrderSurcharge))
		assert.Equal(t, 50, cfg.MaxOrderQuantity)
		assert.False(t, cfg.AllowRushOrders)
		assert.Equal(t, "EUR", cfg.Currency)
	})

	t.Run("should default missing keys and ignore unknown ones", func(t *testing.T) {
		path := writeConfig(t, "tax_rate=0.1\ntheme=dark\n")

		cfg, err := configfile.Load(path)

		require.NoError(t, err)
		want := settings.Default()
		want.TaxRate = decimal.RequireFromString("0.1")
		assert.True(t, want.Equal(cfg))
	})

	t.Run("should report every invalid value", func(t *testing.T) {
		path := writeConfig(t, "tax_rate=lots\nmax_order_quantity=1.5\nallow_rush_orders=maybe\n")

		_, err := configfile.Load(path)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "tax_rate")
		assert.Contains(t, err.Error(), "max_order_quantity")
		assert.Contains(t, err.Error(), "allow_rush_orders")
	})

	t.Run("should reject values the configuration does not accept", func(t *testing.T) {
		path := writeConfig(t, "max_order_quantity=0\n")

		_, err := configfile.Load(path)

		require.Error(t, err)
	})

	t.Run("should report a missing file", func(t *testing.T) {
		_, err := configfile.Load(filepath.Join(t.TempDir(), "absent.txt"))

		require.ErrorIs(t, err, fs.ErrNotExist)
	})
}

func TestParse(t *testing.T) {
	t.Run("keys are case insensitive and yes/no are booleans", func(t *testing.T) {
		cfg, err := configfile.Parse(map[string]string{
			"ALLOW_RUSH_ORDERS": "no",
			"Currency":          "gbp",
		})

		require.NoError(t, err)
		assert.False(t, cfg.AllowRushOrders)
		assert.Equal(t, "GBP", cfg.Currency)
	})

	t.Run("blank values count as unset", func(t *testing.T) {
		cfg, err := configfile.Parse(map[string]string{"currency": "  "})

		require.NoError(t, err)
		assert.Equal(t, "USD", cfg.Currency)
	})
}

func TestSave(t *testing.T) {
	t.Run("should write a file that loads back", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "conf", "system_config.txt")
		cfg := settings.Default()
		cfg.RushOrderSurcharge = decimal.RequireFromString("0.4")
		cfg.AllowRushOrders = false

		require.NoError(t, configfile.Save(path, cfg))
		loaded, err := configfile.Load(path)

		require.NoError(t, err)
		assert.True(t, cfg.Equal(loaded))
	})

	t.Run("should refuse an invalid configuration", func(t *testing.T) {
		cfg := settings.Default()
		cfg.TaxRate = decimal.RequireFromString("-1")

		err := configfile.Save(filepath.Join(t.TempDir(), "system_config.txt"), cfg)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
