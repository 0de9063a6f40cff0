// Package commands contains business operations that modify shop state.
// Every command is built by a constructor that validates its input, and every
// handler checks that guard before touching the registry, the queue or disk.
package commands

import (
	"printshop/internal/core/domain/model/order"
	"printshop/internal/core/domain/model/settings"
	"printshop/internal/core/domain/services"
)

// Collaborators of the command handlers that are not ports of their own.
type (
	// OrderIDSource hands out order IDs and is told about IDs restored from disk.
	OrderIDSource interface {
		Next() order.ID
		Observe(id order.ID)
	}

	// HoursEstimator predicts print time from free-text dimensions.
	HoursEstimator interface {
		EstimateHours(dimensions string, quantity int) float64
	}

	// PriceCalculator prices an order against one configuration.
	PriceCalculator interface {
		Calculate(o *order.Order, cfg settings.SystemConfig) services.PriceBreakdown
	}

	// ConfigProvider returns the configuration in effect right now.
	ConfigProvider interface {
		Current() settings.SystemConfig
	}
)
