// Package menu models the product catalog the customer orders from.
//
// The catalog is read-only inside this system: products are seeded out of
// band and the customer screen only lists them to build a cart. An order
// snapshots the name and price of each chosen product into its own items,
// so later catalog edits never rewrite order history.
package menu

import (
	"fmt"

	"comanda/internal/core/domain/model/kernel"
	"comanda/internal/pkg/errs"
)

// Product is one orderable entry of the catalog.
type Product struct {
	id          kernel.UUID
	name        string
	description string
	price       float64
}

// NewProduct creates a validated catalog entry. The description may be
// empty; name and a positive price are required.
func NewProduct(id kernel.UUID, name, description string, price float64) (Product, error) {
	if err := id.Validate(); err != nil {
		return Product{}, err
	}
	if name == "" {
		return Product{}, errs.NewValueIsRequiredError("product name")
	}
	if price <= 0 {
		return Product{}, errs.NewValueIsInvalidErrorWithCause("product price is invalid",
			fmt.Errorf("%v is not greater than 0", price))
	}
	return Product{id: id, name: name, description: description, price: price}, nil
}

// ID returns the product identifier.
func (p Product) ID() kernel.UUID {
	return p.id
}

// Name returns the product name.
func (p Product) Name() string {
	return p.name
}

// Description returns the product description, possibly empty.
func (p Product) Description() string {
	return p.description
}

// Price returns the current catalog price.
func (p Product) Price() float64 {
	return p.price
}
