// Package settings holds the process-wide pricing and order-limit configuration.
package settings

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"printshop/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// SystemConfig supplies every pricing constant and order limit. It is a value:
// callers read a copy from Store and pass it down, so a price is always computed
// against one consistent configuration.
type SystemConfig struct {
	ElectricityCostPerHour decimal.Decimal
	MachineTimeCostPerHour decimal.Decimal
	BaseSetupCost          decimal.Decimal
	TaxRate                decimal.Decimal
	RushOrderSurcharge     decimal.Decimal
	MaxOrderValue          decimal.Decimal
	MaxOrderQuantity       int
	AllowRushOrders        bool
	Currency               string
}

// Default returns the configuration used when system_config.txt is absent.
func Default() SystemConfig {
	return SystemConfig{
		ElectricityCostPerHour: decimal.RequireFromString("0.12"),
		MachineTimeCostPerHour: decimal.RequireFromString("2.50"),
		BaseSetupCost:          decimal.RequireFromString("5.00"),
		TaxRate:                decimal.RequireFromString("0.08"),
		RushOrderSurcharge:     decimal.RequireFromString("0.25"),
		MaxOrderValue:          decimal.RequireFromString("10000"),
		MaxOrderQuantity:       100,
		AllowRushOrders:        true,
		Currency:               "USD",
	}
}

// Validate rejects negative rates and limits and an empty currency.
func (c SystemConfig) Validate() error {
	nonNegative := func(name string, v decimal.Decimal) error {
		if v.IsNegative() {
			return errs.NewValueIsInvalidErrorWithCause(name, fmt.Errorf("%s is negative", v))
		}
		return nil
	}

	var quantityErr error
	if c.MaxOrderQuantity <= 0 {
		quantityErr = errs.NewValueIsInvalidErrorWithCause(
			"max_order_quantity",
			fmt.Errorf("%d is not greater than 0", c.MaxOrderQuantity),
		)
	}

	var currencyErr error
	if strings.TrimSpace(c.Currency) == "" {
		currencyErr = errs.NewValueIsRequiredError("currency")
	}

	return errors.Join(
		nonNegative("electricity_cost_per_hour", c.ElectricityCostPerHour),
		nonNegative("machine_time_cost_per_hour", c.MachineTimeCostPerHour),
		nonNegative("base_setup_cost", c.BaseSetupCost),
		nonNegative("tax_rate", c.TaxRate),
		nonNegative("rush_order_surcharge", c.RushOrderSurcharge),
		nonNegative("max_order_value", c.MaxOrderValue),
		quantityErr,
		currencyErr,
	)
}

// Store is the mutable, process-wide holder of the current SystemConfig.
type Store struct {
	mu      sync.RWMutex
	current SystemConfig
}

func NewStore(initial SystemConfig) *Store {
	return &Store{current: initial}
}

// Current returns the configuration in effect right now.
func (s *Store) Current() SystemConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Replace swaps in a new configuration after validating it.
func (s *Store) Replace(cfg SystemConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	s.current = cfg
	s.mu.Unlock()
	return nil
}

// Equal compares decimals numerically, so "0.10" equals "0.1".
func (c SystemConfig) Equal(other SystemConfig) bool {
	return c.ElectricityCostPerHour.Equal(other.ElectricityCostPerHour) &&
		c.MachineTimeCostPerHour.Equal(other.MachineTimeCostPerHour) &&
		c.BaseSetupCost.Equal(other.BaseSetupCost) &&
		c.TaxRate.Equal(other.TaxRate) &&
		c.RushOrderSurcharge.Equal(other.RushOrderSurcharge) &&
		c.MaxOrderValue.Equal(other.MaxOrderValue) &&
		c.MaxOrderQuantity == other.MaxOrderQuantity &&
		c.AllowRushOrders == other.AllowRushOrders &&
		c.Currency == other.Currency
}
