package commands

import (
	"errors"

	"comanda/internal/core/domain/model/kernel"
	"comanda/internal/core/domain/model/order"
	"comanda/internal/pkg/guard"
)

// ErrSubmitOrderCommandIsNotConstructed is returned when a
// SubmitOrderCommand bypassed its constructor.
var ErrSubmitOrderCommandIsNotConstructed = errors.New(
	"SubmitOrderCommand must be created via NewSubmitOrderCommand",
)

// SubmitOrderCommand is a request to turn a customer's cart into a new
// order. The cart may be empty at this point (the entity model rejects it
// with order.ErrEmptyCart before any store interaction) but the owner must
// be a constructed id.
type SubmitOrderCommand struct { //nolint:recvcheck //using for validation
	ownerID kernel.UUID
	items   []order.Item

	guard guard.ConstructorGuard
}

// NewSubmitOrderCommand creates a submission request for the given owner
// and cart contents.
func NewSubmitOrderCommand(ownerID kernel.UUID, items []order.Item) (SubmitOrderCommand, error) {
	cmd := SubmitOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOwnerID(ownerID); err != nil {
		return SubmitOrderCommand{}, err
	}
	cmd.items = append([]order.Item(nil), items...)

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitOrderCommand) Validate() error {
	return c.guard.Validate(ErrSubmitOrderCommandIsNotConstructed)
}

// OwnerID returns the customer submitting the cart.
func (c SubmitOrderCommand) OwnerID() kernel.UUID {
	return c.ownerID
}

// Items returns a copy of the cart contents.
func (c SubmitOrderCommand) Items() []order.Item {
	return append([]order.Item(nil), c.items...)
}

func (c *SubmitOrderCommand) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}
	c.ownerID = ownerID
	return nil
}
