package commands

import (
	"errors"
	"math"

	"printshop/internal/core/domain/model/order"
	"printshop/internal/pkg/errs"
	"printshop/internal/pkg/guard"
)

var ErrSetOrderPriorityCommandIsNotConstructed = errors.New(
	"SetOrderPriorityCommand must be created via NewSetOrderPriorityCommand constructor",
)

// SetOrderPriorityCommand overrides the priority derived at submission.
type SetOrderPriorityCommand struct { //nolint:recvcheck //using for validation
	orderID  order.ID
	priority order.Priority

	guard guard.ConstructorGuard
}

func NewSetOrderPriorityCommand(orderID order.ID, priority order.Priority) (SetOrderPriorityCommand, error) {
	cmd := SetOrderPriorityCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setPriority(priority),
	); err != nil {
		return SetOrderPriorityCommand{}, err
	}

	return cmd, nil
}

func (c SetOrderPriorityCommand) Validate() error {
	return c.guard.Validate(ErrSetOrderPriorityCommandIsNotConstructed)
}

func (c SetOrderPriorityCommand) OrderID() order.ID        { return c.orderID }
func (c SetOrderPriorityCommand) Priority() order.Priority { return c.priority }

func (c *SetOrderPriorityCommand) setOrderID(id order.ID) error {
	if id <= 0 {
		return errs.NewValueIsOutOfRangeError("orderID", int64(id), 1, int64(math.MaxInt64))
	}

	c.orderID = id
	return nil
}

func (c *SetOrderPriorityCommand) setPriority(p order.Priority) error {
	if err := p.Validate(); err != nil {
		return err
	}

	c.priority = p
	return nil
}
