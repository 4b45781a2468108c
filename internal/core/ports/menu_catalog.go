package ports

import (
	"context"

	"comanda/internal/core/domain/model/menu"
)

// MenuCatalog lists the products a customer can order. The catalog is
// read-only from the core's point of view; seeding and editing happen out
// of band.
type MenuCatalog interface {
	ListProducts(ctx context.Context) ([]menu.Product, error)
}
