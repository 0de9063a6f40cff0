package commands

import (
	"context"
	"fmt"

	"printshop/internal/core/domain/model/order"
	"printshop/internal/core/ports"
	"printshop/internal/pkg/errs"
)

// UpdateOrderStatusCommandHandler changes the status of a registered order.
// The change happens in place, so a queued order shows the new status too.
type UpdateOrderStatusCommandHandler struct {
	registry ports.OrderRegistry
}

func NewUpdateOrderStatusCommandHandler(registry ports.OrderRegistry) *UpdateOrderStatusCommandHandler {
	return &UpdateOrderStatusCommandHandler{registry: registry}
}

// Handle returns the order as it is after the change.
func (h *UpdateOrderStatusCommandHandler) Handle(_ context.Context, cmd UpdateOrderStatusCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	err := h.registry.Update(cmd.OrderID(), func(o *order.Order) error {
		if cmd.Force() {
			if !o.UpdateStatus(cmd.Status()) {
				return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a known status", cmd.Status()))
			}
			return nil
		}

		next, err := order.ParseStatus(cmd.Status())
		if err != nil {
			return err
		}
		return o.ChangeStatus(next)
	})
	if err != nil {
		return nil, err
	}

	updated, ok := h.registry.GetByID(cmd.OrderID())
	if !ok {
		return nil, errs.NewObjectNotFoundError("order", cmd.OrderID().String())
	}
	return updated, nil
}
