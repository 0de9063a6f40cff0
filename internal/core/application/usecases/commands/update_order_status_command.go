package commands

import (
	"errors"
	"math"
	"strings"

	"printshop/internal/core/domain/model/order"
	"printshop/internal/pkg/errs"
	"printshop/internal/pkg/guard"
)

var ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
	"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
)

// UpdateOrderStatusCommand moves an order to another status.
//
// By default the move must follow the status transition table. With force set
// the command behaves like the legacy updateStatus: any known status name is
// accepted regardless of the current one.
type UpdateOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID order.ID
	status  string
	force   bool

	guard guard.ConstructorGuard
}

func NewUpdateOrderStatusCommand(orderID order.ID, status string, force bool) (UpdateOrderStatusCommand, error) {
	cmd := UpdateOrderStatusCommand{
		force: force,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setStatus(status),
	); err != nil {
		return UpdateOrderStatusCommand{}, err
	}

	return cmd, nil
}

func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

func (c UpdateOrderStatusCommand) OrderID() order.ID { return c.orderID }
func (c UpdateOrderStatusCommand) Status() string    { return c.status }
func (c UpdateOrderStatusCommand) Force() bool       { return c.force }

func (c *UpdateOrderStatusCommand) setOrderID(id order.ID) error {
	if id <= 0 {
		return errs.NewValueIsOutOfRangeError("orderID", int64(id), 1, int64(math.MaxInt64))
	}

	c.orderID = id
	return nil
}

func (c *UpdateOrderStatusCommand) setStatus(status string) error {
	if strings.TrimSpace(status) == "" {
		return errs.NewValueIsRequiredError("status")
	}

	c.status = status
	return nil
}
