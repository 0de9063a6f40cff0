package memory

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"printshop/internal/core/domain/model/order"
	"printshop/internal/core/ports"
	"printshop/internal/pkg/errs"
)

var _ ports.Catalog = (*Catalog)(nil)

type stockedMaterial struct {
	snapshot   order.MaterialSnapshot
	stockGrams int
}

// Catalog is an in-memory user directory, material catalog and inventory.
// Material names are matched case-insensitively, usernames exactly.
type Catalog struct {
	mu        sync.Mutex
	users     map[string]order.UserSnapshot
	materials map[string]*stockedMaterial
}

func NewCatalog() *Catalog {
	return &Catalog{
		users:     make(map[string]order.UserSnapshot),
		materials: make(map[string]*stockedMaterial),
	}
}

// SeedUser adds or replaces a user.
func (c *Catalog) SeedUser(user order.UserSnapshot) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.users[user.Username()] = user
}

// SeedMaterial adds or replaces a material with its stock.
func (c *Catalog) SeedMaterial(material order.MaterialSnapshot, stockGrams int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.materials[materialKey(material.Name())] = &stockedMaterial{
		snapshot:   material,
		stockGrams: stockGrams,
	}
}

func (c *Catalog) GetUser(_ context.Context, username string) (order.UserSnapshot, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	user, ok := c.users[username]
	if !ok {
		return order.UserSnapshot{}, errs.NewObjectNotFoundError("user", username)
	}
	return user, nil
}

func (c *Catalog) GetMaterial(_ context.Context, name string) (order.MaterialSnapshot, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	m, ok := c.materials[materialKey(name)]
	if !ok {
		return order.MaterialSnapshot{}, errs.NewObjectNotFoundError("material", name)
	}
	return m.snapshot, nil
}

func (c *Catalog) StockGrams(_ context.Context, material string) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	m, ok := c.materials[materialKey(material)]
	if !ok {
		return 0, errs.NewObjectNotFoundError("material", material)
	}
	return m.stockGrams, nil
}

func (c *Catalog) Consume(_ context.Context, material string, grams int) error {
	if grams < 0 {
		return errs.NewValueIsInvalidErrorWithCause("grams", fmt.Errorf("%d is negative", grams))
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	m, ok := c.materials[materialKey(material)]
	if !ok {
		return errs.NewObjectNotFoundError("material", material)
	}
	if m.stockGrams < grams {
		return fmt.Errorf("%w: %s has %dg, %dg requested", ports.ErrInsufficientStock, material, m.stockGrams, grams)
	}

	m.stockGrams -= grams
	return nil
}

func materialKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
