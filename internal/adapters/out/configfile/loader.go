// Package configfile reads and writes system_config.txt, the key=value file
// holding the shop's pricing constants and order limits.
package configfile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"printshop/internal/core/domain/model/settings"
	"printshop/internal/pkg/errs"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

const (
	KeyElectricityCostPerHour = "electricity_cost_per_hour"
	KeyMachineTimeCostPerHour = "machine_time_cost_per_hour"
	KeyBaseSetupCost          = "base_setup_cost"
	KeyTaxRate                = "tax_rate"
	KeyMaxOrderQuantity       = "max_order_quantity"
	KeyMaxOrderValue          = "max_order_value"
	KeyAllowRushOrders        = "allow_rush_orders"
	KeyRushOrderSurcharge     = "rush_order_surcharge"
	KeyCurrency               = "currency"
)

// Load reads the file at path. Keys absent from the file keep their default
// values; unknown keys are ignored. A missing file is reported as an error
// wrapping fs.ErrNotExist.
func Load(path string) (settings.SystemConfig, error) {
	values, err := godotenv.Read(path)
	if err != nil {
		return settings.SystemConfig{}, fmt.Errorf("read %s: %w", filepath.Base(path), err)
	}
	return Parse(values)
}

// Parse applies values on top of settings.Default and validates the result.
// Every bad value is reported, not only the first one.
func Parse(values map[string]string) (settings.SystemConfig, error) {
	cfg := settings.Default()
	p := parser{values: normalizeKeys(values)}

	p.decimal(KeyElectricityCostPerHour, &cfg.ElectricityCostPerHour)
	p.decimal(KeyMachineTimeCostPerHour, &cfg.MachineTimeCostPerHour)
	p.decimal(KeyBaseSetupCost, &cfg.BaseSetupCost)
	p.decimal(KeyTaxRate, &cfg.TaxRate)
	p.decimal(KeyRushOrderSurcharge, &cfg.RushOrderSurcharge)
	p.decimal(KeyMaxOrderValue, &cfg.MaxOrderValue)
	p.integer(KeyMaxOrderQuantity, &cfg.MaxOrderQuantity)
	p.boolean(KeyAllowRushOrders, &cfg.AllowRushOrders)
	if v, ok := p.values[KeyCurrency]; ok {
		cfg.Currency = strings.ToUpper(v)
	}

	if len(p.errs) > 0 {
		return settings.SystemConfig{}, errors.Join(p.errs...)
	}
	if err := cfg.Validate(); err != nil {
		return settings.SystemConfig{}, err
	}
	return cfg, nil
}

// Save writes cfg to path, replacing any existing file.
func Save(path string, cfg settings.SystemConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return godotenv.Write(Values(cfg), path)
}

// Values renders cfg as the key=value pairs understood by Parse.
func Values(cfg settings.SystemConfig) map[string]string {
	return map[string]string{
		KeyElectricityCostPerHour: cfg.ElectricityCostPerHour.String(),
		KeyMachineTimeCostPerHour: cfg.MachineTimeCostPerHour.String(),
		KeyBaseSetupCost:          cfg.BaseSetupCost.String(),
		KeyTaxRate:                cfg.TaxRate.String(),
		KeyMaxOrderQuantity:       strconv.Itoa(cfg.MaxOrderQuantity),
		KeyMaxOrderValue:          cfg.MaxOrderValue.String(),
		KeyAllowRushOrders:        strconv.FormatBool(cfg.AllowRushOrders),
		KeyRushOrderSurcharge:     cfg.RushOrderSurcharge.String(),
		KeyCurrency:               cfg.Currency,
	}
}

type parser struct {
	values map[string]string
	errs   []error
}

func (p *parser) decimal(key string, dst *decimal.Decimal) {
	raw, ok := p.values[key]
	if !ok {
		return
	}
	v, err := decimal.NewFromString(raw)
	if err != nil {
		p.errs = append(p.errs, errs.NewValueIsInvalidErrorWithCause(key, err))
		return
	}
	*dst = v
}

func (p *parser) integer(key string, dst *int) {
	raw, ok := p.values[key]
	if !ok {
		return
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		p.errs = append(p.errs, errs.NewValueIsInvalidErrorWithCause(key, err))
		return
	}
	*dst = v
}

func (p *parser) boolean(key string, dst *bool) {
	raw, ok := p.values[key]
	if !ok {
		return
	}
	switch strings.ToLower(raw) {
	case "yes", "on":
		*dst = true
		return
	case "no", "off":
		*dst = false
		return
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		p.errs = append(p.errs, errs.NewValueIsInvalidErrorWithCause(key, err))
		return
	}
	*dst = v
}

// normalizeKeys lowercases keys and drops empty values, which count as unset.
func normalizeKeys(values map[string]string) map[string]string {
	out := make(map[string]string, len(values))
	for k, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		out[strings.ToLower(strings.TrimSpace(k))] = v
	}
	return out
}
