package commands

import (
	"errors"
	"strings"

	"printshop/internal/pkg/errs"
	"printshop/internal/pkg/guard"
)

var ErrSubmitOrderCommandIsNotConstructed = errors.New(
	"SubmitOrderCommand must be created via NewSubmitOrderCommand constructor",
)

// SubmitOrderCommand represents a customer's print job request.
// Only the lookup keys are required here. Dimensions and quantity are checked
// by the handler, which turns bad values into a rejected OrderResult.
//
// Example:
//
//	cmd, err := NewSubmitOrderCommand("maria", "PLA", "20x20x10mm", 2, "RUSH please")
//	if err != nil {
//	    return fmt.Errorf("invalid submission: %w", err)
//	}
//
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return err
//	}
//	if !result.Accepted() {
//	    fmt.Printf("rejected: %s\n", result.Reason())
//	}
type SubmitOrderCommand struct { //nolint:recvcheck //using for validation
	username            string
	materialName        string
	dimensions          string
	quantity            int
	specialInstructions string

	guard guard.ConstructorGuard
}

// NewSubmitOrderCommand creates a submission. Username and material name are required.
func NewSubmitOrderCommand(
	username string,
	materialName string,
	dimensions string,
	quantity int,
	specialInstructions string,
) (SubmitOrderCommand, error) {
	cmd := SubmitOrderCommand{
		dimensions:          dimensions,
		quantity:            quantity,
		specialInstructions: specialInstructions,
		guard:               guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUsername(username),
		cmd.setMaterialName(materialName),
	); err != nil {
		return SubmitOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitOrderCommand) Validate() error {
	return c.guard.Validate(ErrSubmitOrderCommandIsNotConstructed)
}

func (c SubmitOrderCommand) Username() string            { return c.username }
func (c SubmitOrderCommand) MaterialName() string        { return c.materialName }
func (c SubmitOrderCommand) Dimensions() string          { return c.dimensions }
func (c SubmitOrderCommand) Quantity() int               { return c.quantity }
func (c SubmitOrderCommand) SpecialInstructions() string { return c.specialInstructions }

func (c *SubmitOrderCommand) setUsername(username string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return errs.NewValueIsRequiredError("username")
	}

	c.username = username
	return nil
}

func (c *SubmitOrderCommand) setMaterialName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("materialName")
	}

	c.materialName = name
	return nil
}
