package ports

import (
	"context"
	"errors"

	"printshop/internal/core/domain/model/order"
)

// ErrInsufficientStock is returned by Inventory.Consume when the material runs short.
var ErrInsufficientStock = errors.New("insufficient material stock")

// UserDirectory looks users up by username. Missing users yield errs.ObjectNotFoundError.
type UserDirectory interface {
	GetUser(ctx context.Context, username string) (order.UserSnapshot, error)
}

// MaterialCatalog looks materials up by name. Missing materials yield errs.ObjectNotFoundError.
type MaterialCatalog interface {
	GetMaterial(ctx context.Context, name string) (order.MaterialSnapshot, error)
}

// Inventory tracks material stock in grams.
type Inventory interface {
	// StockGrams returns the grams available for the material.
	StockGrams(ctx context.Context, material string) (int, error)

	// Consume removes grams atomically, or fails with ErrInsufficientStock and changes nothing.
	Consume(ctx context.Context, material string, grams int) error
}

// Catalog is the full lookup collaborator used by order submission.
type Catalog interface {
	UserDirectory
	MaterialCatalog
	Inventory
}
