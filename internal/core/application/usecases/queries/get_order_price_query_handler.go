package queries

import (
	"context"

	"printshop/internal/core/domain/model/order"
	"printshop/internal/core/domain/model/settings"
	"printshop/internal/core/domain/services"
	"printshop/internal/core/ports"
	"printshop/internal/pkg/errs"
)

type (
	// PriceCalculator prices an order against one configuration.
	PriceCalculator interface {
		Calculate(o *order.Order, cfg settings.SystemConfig) services.PriceBreakdown
	}

	// ConfigProvider returns the configuration in effect right now.
	ConfigProvider interface {
		Current() settings.SystemConfig
	}
)

// GetOrderPriceQueryResponse is a price quote for one order.
type GetOrderPriceQueryResponse struct {
	OrderID   order.ID
	Breakdown services.PriceBreakdown
}

type GetOrderPriceQueryHandler struct {
	registry ports.OrderRegistry
	pricer   PriceCalculator
	config   ConfigProvider
}

func NewGetOrderPriceQueryHandler(
	registry ports.OrderRegistry,
	pricer PriceCalculator,
	config ConfigProvider,
) GetOrderPriceQueryHandler {
	return GetOrderPriceQueryHandler{registry: registry, pricer: pricer, config: config}
}

func (h GetOrderPriceQueryHandler) Handle(
	_ context.Context,
	query GetOrderPriceQuery,
) (GetOrderPriceQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderPriceQueryResponse{}, err
	}

	o, ok := h.registry.GetByID(query.OrderID())
	if !ok {
		return GetOrderPriceQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}

	return GetOrderPriceQueryResponse{
		OrderID:   o.ID(),
		Breakdown: h.pricer.Calculate(o, h.config.Current()),
	}, nil
}
