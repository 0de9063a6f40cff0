package commands

import (
	"errors"

	"printshop/internal/pkg/guard"
)

var ErrLoadStateCommandIsNotConstructed = errors.New(
	"LoadStateCommand must be created via NewLoadStateCommand constructor",
)

// LoadStateCommand replaces the in-memory registry and queue with the saved ones.
type LoadStateCommand struct {
	guard guard.ConstructorGuard
}

func NewLoadStateCommand() LoadStateCommand {
	return LoadStateCommand{guard: guard.NewConstructorGuard()}
}

func (c LoadStateCommand) Validate() error {
	return c.guard.Validate(ErrLoadStateCommandIsNotConstructed)
}
