package queries

import (
	"context"

	"printshop/internal/core/ports"
	"printshop/internal/pkg/errs"
)

type GetOrderQueryHandler struct {
	registry ports.OrderRegistry
}

func NewGetOrderQueryHandler(registry ports.OrderRegistry) GetOrderQueryHandler {
	return GetOrderQueryHandler{registry: registry}
}

// Handle returns errs.ObjectNotFoundError for unknown IDs.
func (h GetOrderQueryHandler) Handle(_ context.Context, query GetOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	o, ok := h.registry.GetByID(query.OrderID())
	if !ok {
		return OrderResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}
	return NewOrderResponse(o), nil
}
