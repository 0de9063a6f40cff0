package commands

import (
	"errors"

	"printshop/internal/pkg/guard"
)

var ErrDequeueNextOrderCommandIsNotConstructed = errors.New(
	"DequeueNextOrderCommand must be created via NewDequeueNextOrderCommand constructor",
)

// DequeueNextOrderCommand takes the head of the print queue for fulfillment.
// The order stays in the registry; only the queue entry is removed.
type DequeueNextOrderCommand struct {
	guard guard.ConstructorGuard
}

func NewDequeueNextOrderCommand() DequeueNextOrderCommand {
	return DequeueNextOrderCommand{guard: guard.NewConstructorGuard()}
}

func (c DequeueNextOrderCommand) Validate() error {
	return c.guard.Validate(ErrDequeueNextOrderCommandIsNotConstructed)
}
