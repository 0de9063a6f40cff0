package queries

import (
	"context"

	"printshop/internal/core/domain/model/order"
	"printshop/internal/core/ports"
)

type GetAllOrdersQueryHandler struct {
	registry ports.OrderRegistry
}

func NewGetAllOrdersQueryHandler(registry ports.OrderRegistry) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{registry: registry}
}

func (h GetAllOrdersQueryHandler) Handle(_ context.Context, query GetAllOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := h.registry.GetAll()
	if query.Status() == order.Unknown {
		return newOrderResponses(orders), nil
	}

	filtered := make([]*order.Order, 0, len(orders))
	for _, o := range orders {
		if o.Status() == query.Status() {
			filtered = append(filtered, o)
		}
	}
	return newOrderResponses(filtered), nil
}
