package memstore

import (
	"context"
	"sort"
	"sync"

	"comanda/internal/core/domain/model/menu"
)

// MenuCatalog is an in-memory ports.MenuCatalog seeded at startup.
type MenuCatalog struct {
	mu       sync.RWMutex
	products []menu.Product
}

// NewMenuCatalog creates a catalog holding the given products.
func NewMenuCatalog(products []menu.Product) *MenuCatalog {
	c := &MenuCatalog{}
	c.Seed(products)
	return c
}

// Seed replaces the catalog contents.
func (c *MenuCatalog) Seed(products []menu.Product) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.products = append([]menu.Product(nil), products...)
	sort.SliceStable(c.products, func(i, j int) bool {
		return c.products[i].Name() < c.products[j].Name()
	})
}

// ListProducts returns all products, sorted by name.
func (c *MenuCatalog) ListProducts(ctx context.Context) ([]menu.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]menu.Product(nil), c.products...), nil
}
