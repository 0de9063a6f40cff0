package services

import (
	"printshop/internal/core/domain/model/order"
	"printshop/internal/core/domain/model/settings"

	"github.com/shopspring/decimal"
)

const (
	// GramsPerItem is the material budget of one printed item. Stock checks and
	// material cost both use it so prices match inventory consumption.
	GramsPerItem = 10

	// BulkQuantityThreshold is the smallest quantity that earns the bulk discount.
	BulkQuantityThreshold = 10
)

var (
	bulkDiscountFactor = decimal.RequireFromString("0.95")
	vipDiscountFactor  = decimal.RequireFromString("0.90")
)

// PriceBreakdown holds each step of a price calculation at full precision.
// Discounts and surcharges are stored as signed deltas: BulkDiscount and
// VIPDiscount are zero or negative, RushSurcharge and Tax zero or positive.
type PriceBreakdown struct {
	MaterialCost  decimal.Decimal
	ProcessCost   decimal.Decimal
	Subtotal      decimal.Decimal
	BulkDiscount  decimal.Decimal
	VIPDiscount   decimal.Decimal
	RushSurcharge decimal.Decimal
	Tax           decimal.Decimal
	Total         decimal.Decimal
	Currency      string
}

// Display renders the total with two decimals and the currency code.
func (b PriceBreakdown) Display() string {
	return b.Total.StringFixed(2) + " " + b.Currency
}

// PricingEngine computes order prices. It has no state; every call prices
// against the configuration it is given, so nothing is cached between calls.
type PricingEngine struct{}

func NewPricingEngine() PricingEngine {
	return PricingEngine{}
}

// Calculate prices an order:
//
//	material = quantity * GramsPerItem * costPerGram
//	process  = hours * (electricity + machine) + setup
//	subtotal = material + process
//	         * 0.95 when quantity >= 10
//	         * 0.90 when the user role is vip
//	         * (1 + rush surcharge) when priority is rush
//	         * (1 + tax rate)
//
// No bounds checking is done; zero quantity prices the process cost alone.
func (PricingEngine) Calculate(o *order.Order, cfg settings.SystemConfig) PriceBreakdown {
	quantity := decimal.NewFromInt(int64(o.Quantity()))
	hours := decimal.NewFromFloat(o.EstimatedPrintHours())

	materialCost := quantity.
		Mul(decimal.NewFromInt(GramsPerItem)).
		Mul(o.Material().CostPerGram())
	processCost := hours.
		Mul(cfg.ElectricityCostPerHour.Add(cfg.MachineTimeCostPerHour)).
		Add(cfg.BaseSetupCost)
	subtotal := materialCost.Add(processCost)

	running := subtotal

	bulkDiscount := decimal.Zero
	if o.Quantity() >= BulkQuantityThreshold {
		discounted := running.Mul(bulkDiscountFactor)
		bulkDiscount = discounted.Sub(running)
		running = discounted
	}

	vipDiscount := decimal.Zero
	if o.User().IsVIP() {
		discounted := running.Mul(vipDiscountFactor)
		vipDiscount = discounted.Sub(running)
		running = discounted
	}

	rushSurcharge := decimal.Zero
	if o.Priority() == order.Rush {
		rushSurcharge = running.Mul(cfg.RushOrderSurcharge)
		running = running.Add(rushSurcharge)
	}

	tax := running.Mul(cfg.TaxRate)
	total := running.Add(tax)

	return PriceBreakdown{
		MaterialCost:  materialCost,
		ProcessCost:   processCost,
		Subtotal:      subtotal,
		BulkDiscount:  bulkDiscount,
		VIPDiscount:   vipDiscount,
		RushSurcharge: rushSurcharge,
		Tax:           tax,
		Total:         total,
		Currency:      cfg.Currency,
	}
}

// DerivePriority returns Rush when the order asks for it and rush orders are
// currently allowed, Normal otherwise.
func DerivePriority(o *order.Order, cfg settings.SystemConfig) order.Priority {
	if o.RequestsRush() && cfg.AllowRushOrders {
		return order.Rush
	}
	return order.Normal
}
