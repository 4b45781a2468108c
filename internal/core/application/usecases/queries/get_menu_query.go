package queries

import (
	"context"

	"comanda/internal/core/domain/model/menu"
	"comanda/internal/core/ports"
)

// GetMenuQueryHandler lists the product catalog. A one-shot read is enough
// here: the menu changes rarely and the customer refreshes it per visit,
// so no live subscription is held.
type GetMenuQueryHandler struct {
	catalog ports.MenuCatalog
}

// NewGetMenuQueryHandler creates a handler reading from the given catalog.
func NewGetMenuQueryHandler(catalog ports.MenuCatalog) GetMenuQueryHandler {
	return GetMenuQueryHandler{catalog: catalog}
}

// Handle lists all products.
func (h GetMenuQueryHandler) Handle(ctx context.Context) ([]menu.Product, error) {
	return h.catalog.ListProducts(ctx)
}
