package commands

import (
	"errors"

	"printshop/internal/pkg/guard"
)

var ErrSaveStateCommandIsNotConstructed = errors.New(
	"SaveStateCommand must be created via NewSaveStateCommand constructor",
)

// SaveStateCommand persists the registry and the queue.
//
// Example:
//
//	cmd := NewSaveStateCommand()
//	summary, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("save failed: %w", err)
//	}
//	fmt.Printf("saved %d orders, %d queued\n", summary.Orders, summary.Queued)
type SaveStateCommand struct {
	guard guard.ConstructorGuard
}

func NewSaveStateCommand() SaveStateCommand {
	return SaveStateCommand{guard: guard.NewConstructorGuard()}
}

func (c SaveStateCommand) Validate() error {
	return c.guard.Validate(ErrSaveStateCommandIsNotConstructed)
}
