package commands

import (
	"context"

	"printshop/internal/core/domain/model/order"
	"printshop/internal/core/ports"
	"printshop/internal/pkg/errs"
)

// SetOrderPriorityCommandHandler applies a manual priority change. It does
// not consult AllowRushOrders: that setting only affects derived priorities.
type SetOrderPriorityCommandHandler struct {
	registry ports.OrderRegistry
}

func NewSetOrderPriorityCommandHandler(registry ports.OrderRegistry) *SetOrderPriorityCommandHandler {
	return &SetOrderPriorityCommandHandler{registry: registry}
}

func (h *SetOrderPriorityCommandHandler) Handle(_ context.Context, cmd SetOrderPriorityCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if err := h.registry.Update(cmd.OrderID(), func(o *order.Order) error {
		return o.SetPriority(cmd.Priority())
	}); err != nil {
		return nil, err
	}

	updated, ok := h.registry.GetByID(cmd.OrderID())
	if !ok {
		return nil, errs.NewObjectNotFoundError("order", cmd.OrderID().String())
	}
	return updated, nil
}
