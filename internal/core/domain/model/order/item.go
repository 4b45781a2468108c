package order

import (
	"fmt"

	"comanda/internal/pkg/errs"
)

// Item is a single line of an order: a menu item name and the price it was
// sold at. Items are captured when the cart is submitted and never change
// afterwards; re-ordering means a new Order.
//
// The price is denormalized onto the item on purpose: the order must show
// what the customer agreed to pay even if the menu price changes later.
type Item struct {
	name  string
	price float64
}

// NewItem creates a validated order line. The name must be non-empty and
// the price strictly positive.
func NewItem(name string, price float64) (Item, error) {
	if name == "" {
		return Item{}, errs.NewValueIsRequiredError("item name")
	}
	if price <= 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause("item price is invalid",
			fmt.Errorf("%v is not greater than 0", price))
	}
	return Item{name: name, price: price}, nil
}

// Name returns the menu item name.
func (i Item) Name() string {
	return i.name
}

// Price returns the agreed price of the item.
func (i Item) Price() float64 {
	return i.price
}

// Validate distinguishes constructed items from zero values read off the
// wire or out of a document.
func (i Item) Validate() error {
	if i.name == "" {
		return errs.NewValueIsRequiredError("item name")
	}
	if i.price <= 0 {
		return errs.NewValueIsInvalidError("item price is invalid")
	}
	return nil
}
